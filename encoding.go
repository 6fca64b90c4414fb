package bytecursor

import (
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// result of decoding a single character from the head of a byte window
type decodeStatus int

const (
	decodeOK decodeStatus = iota
	// the window ends inside a possibly-valid multi-byte sequence
	decodeShort
	// the bytes at the head of the window are not a valid sequence
	decodeInvalid
)

// decodeStep decodes the first character of b, appending its UTF-8 form to
// dst. atEOF reports that b is the final window, so a trailing partial
// sequence is invalid rather than short. size is the number of source bytes
// the character occupies.
type decodeStep func(dst []byte, b []byte, atEOF bool) (out []byte, size int, status decodeStatus)

// Encoding is an immutable text codec used by string, regex and line
// operations. Decoding is byte-exact: a partially decoded trailing sequence
// is never presented as a character.
type Encoding struct {
	name     string
	maxBytes int // maximum source bytes per character
	step     decodeStep
}

// Name returns the encoding's name.
func (e *Encoding) Name() string { return e.name }

// predefined encodings
var (
	// UTF8 is the default encoding.
	UTF8 = &Encoding{name: "utf-8", maxBytes: utf8.UTFMax, step: stepUTF8}

	// UTF16LE and UTF16BE decode two-byte code units with surrogate pairs.
	UTF16LE = &Encoding{name: "utf-16le", maxBytes: 4, step: stepUTF16(false)}
	UTF16BE = &Encoding{name: "utf-16be", maxBytes: 4, step: stepUTF16(true)}

	// Latin1 and Windows1252 decode single bytes through their charmaps.
	Latin1      = FromCharmap(charmap.ISO8859_1)
	Windows1252 = FromCharmap(charmap.Windows1252)
)

// FromCharmap adapts any single-byte charmap from golang.org/x/text into a
// cursor encoding. Bytes the charmap leaves unmapped fail as invalid input.
func FromCharmap(cm *charmap.Charmap) *Encoding {
	return &Encoding{
		name:     cm.String(),
		maxBytes: 1,
		step: func(dst []byte, b []byte, atEOF bool) ([]byte, int, decodeStatus) {
			r := cm.DecodeByte(b[0])
			if r == utf8.RuneError {
				return dst, 0, decodeInvalid
			}
			return utf8.AppendRune(dst, r), 1, decodeOK
		},
	}
}

func stepUTF8(dst []byte, b []byte, atEOF bool) ([]byte, int, decodeStatus) {
	// FullRune treats invalid encodings as full width-1 error runes, so a
	// false result means a genuinely incomplete prefix of a valid sequence
	if !utf8.FullRune(b) {
		if atEOF {
			return dst, 0, decodeInvalid
		}
		return dst, 0, decodeShort
	}

	r, size := utf8.DecodeRune(b)
	if r == utf8.RuneError && size <= 1 {
		return dst, 0, decodeInvalid
	}
	// the window is already UTF-8, so the decoded bytes can be copied through
	return append(dst, b[:size]...), size, decodeOK
}

func stepUTF16(big bool) decodeStep {
	unit := func(b []byte) uint16 {
		if big {
			return uint16(b[0])<<8 | uint16(b[1])
		}
		return uint16(b[1])<<8 | uint16(b[0])
	}

	return func(dst []byte, b []byte, atEOF bool) ([]byte, int, decodeStatus) {
		if len(b) < 2 {
			if atEOF {
				return dst, 0, decodeInvalid
			}
			return dst, 0, decodeShort
		}

		u1 := unit(b)
		switch {
		case u1 < 0xD800 || u1 > 0xDFFF:
			return utf8.AppendRune(dst, rune(u1)), 2, decodeOK
		case u1 >= 0xDC00:
			// low surrogate with no preceding high surrogate
			return dst, 0, decodeInvalid
		}

		if len(b) < 4 {
			if atEOF {
				return dst, 0, decodeInvalid
			}
			return dst, 0, decodeShort
		}
		u2 := unit(b[2:])
		if u2 < 0xDC00 || u2 > 0xDFFF {
			return dst, 0, decodeInvalid
		}
		return utf8.AppendRune(dst, utf16.DecodeRune(rune(u1), rune(u2))), 4, decodeOK
	}
}
