package bytecursor

import (
	"bytes"
	"regexp"
	"regexp/syntax"
	"unicode/utf8"

	"go.uber.org/zap"
)

// textRequest is one of the three things the decode engine can be asked to
// satisfy: a fixed character count, a regular expression match, or a line.
type textRequest interface {
	// initialBytes is the heuristic for the first decode window, in source
	// bytes. It is a hint, not a bound.
	initialBytes(threshold, maxBytes int) int

	// check inspects the decoded-so-far text and, if the request is
	// satisfied, reports the token and the number of characters consumed
	// (which may exceed the token's length, e.g. a line's terminator).
	// atEOF means no further characters can ever be decoded.
	check(decoded []byte, atEOF bool) (token string, consumedChars int, ok bool)
}

// decodeText runs the incremental decode loop: decode a window of source
// bytes into the scratch area, test the request, and grow geometrically until
// the request is satisfied, the source is exhausted, or the token cap is hit.
// It never consumes; on success it returns the token and the number of source
// bytes the consumed character span occupies.
func (c *Cursor) decodeText(req textRequest, enc *Encoding) (string, int, error) {
	if c.disposed {
		return "", 0, ErrDisposed
	}
	if err := c.fill(c.threshold); err != nil {
		return "", 0, err
	}

	limit := c.available()
	capped := false
	if limit > c.threshold {
		limit = c.threshold
		capped = true
	}
	if limit == 0 {
		return "", 0, ErrEndOfStream
	}
	// whether reaching limit means the source genuinely has nothing more,
	// as opposed to the token cap cutting the window short
	finite := !capped && (c.src == nil || c.src.exhausted)

	window := c.buf[c.tail : c.tail+limit]
	decoded := c.scratch[:0]
	charSrc := c.charSrc[:0]
	srcUsed := 0

	bytesToTry := req.initialBytes(c.threshold, enc.maxBytes)
	if bytesToTry < 1 {
		bytesToTry = 1
	}
	if bytesToTry > limit {
		bytesToTry = limit
	}

	rounds := 0
	for {
		rounds++
		atEOF := bytesToTry == limit && finite

		// decode the bytes added since the previous round
		invalid := false
		for srcUsed < bytesToTry {
			out, size, status := enc.step(decoded, window[srcUsed:bytesToTry], atEOF)
			if status == decodeShort {
				break
			}
			if status == decodeInvalid {
				invalid = true
				break
			}
			decoded = out
			charSrc = append(charSrc, size)
			srcUsed += size
		}
		c.scratch, c.charSrc = decoded, charSrc

		if invalid {
			// salvage: the valid prefix may still satisfy the request
			if token, chars, ok := req.check(decoded, false); ok {
				if logging {
					logger.Debug("salvaged a token before an invalid sequence",
						zap.Int64("errorOffset", c.pos+int64(srcUsed)),
					)
				}
				return token, srcSpan(charSrc, chars), nil
			}
			return "", 0, &EncodingError{Offset: c.pos + int64(srcUsed), Encoding: enc.name}
		}

		if token, chars, ok := req.check(decoded, atEOF && srcUsed == bytesToTry); ok {
			if logging {
				logger.Debug("text request satisfied",
					zap.Int("rounds", rounds),
					zap.Int("srcBytes", srcSpan(charSrc, chars)),
				)
			}
			return token, srcSpan(charSrc, chars), nil
		}

		if bytesToTry < limit {
			bytesToTry *= 2
			if bytesToTry > limit {
				bytesToTry = limit
			}
			continue
		}

		// the window cannot grow further and the request is unmet; trailing
		// incomplete sequences at true end of input were already reported as
		// invalid by the decode step
		return "", 0, ErrEndOfStream
	}
}

// srcSpan sums the source byte lengths of the first chars characters.
func srcSpan(charSrc []int, chars int) int {
	n := 0
	for _, l := range charSrc[:chars] {
		n += l
	}
	return n
}

// runeCount counts the characters in a decoded prefix. The scratch holds one
// UTF-8 rune per decoded character, so stdlib counting is exact.
func runeCount(b []byte) int { return utf8.RuneCount(b) }

// charsRequest asks for exactly n characters.
type charsRequest int

func (n charsRequest) initialBytes(_, maxBytes int) int { return int(n) * maxBytes }

func (n charsRequest) check(decoded []byte, atEOF bool) (string, int, bool) {
	want := int(n)
	off := 0
	for i := 0; i < want; i++ {
		if off >= len(decoded) {
			return "", 0, false
		}
		_, size := utf8.DecodeRune(decoded[off:])
		off += size
	}
	return string(decoded[:off]), want, true
}

// regexRequest asks for a match of a compiled pattern. If the pattern has
// exactly one capture group the group's text is the token, otherwise the
// whole match is; either way everything through the end of the match is
// consumed.
type regexRequest struct {
	re *regexp.Regexp
}

func (r regexRequest) initialBytes(_, maxBytes int) int {
	chars := literalLength(r.re)
	if chars < 1 {
		chars = 8
	}
	return chars * maxBytes
}

func (r regexRequest) check(decoded []byte, atEOF bool) (string, int, bool) {
	loc := r.re.FindSubmatchIndex(decoded)
	if loc == nil {
		return "", 0, false
	}

	token := decoded[loc[0]:loc[1]]
	if r.re.NumSubexp() == 1 && loc[2] >= 0 {
		token = decoded[loc[2]:loc[3]]
	}
	return string(token), runeCount(decoded[:loc[1]]), true
}

// literalLength is the decode-window heuristic for a pattern: the number of
// characters of literal text it contains.
func literalLength(re *regexp.Regexp) int {
	parsed, err := syntax.Parse(re.String(), syntax.Perl)
	if err != nil {
		return 0
	}
	return countLiterals(parsed)
}

func countLiterals(re *syntax.Regexp) int {
	n := 0
	if re.Op == syntax.OpLiteral {
		n += len(re.Rune)
	}
	for _, sub := range re.Sub {
		n += countLiterals(sub)
	}
	return n
}

// lineRequest asks for the next line: everything up to a line feed, with a
// preceding carriage return trimmed from the token. At end of input the
// remaining characters form the final line.
type lineRequest struct{}

// a line's length is unknowable up front, so the first window is a quarter of
// the threshold and growth takes it from there
func (lineRequest) initialBytes(threshold, _ int) int {
	n := threshold / 4
	if n < 1 {
		n = 1
	}
	return n
}

func (lineRequest) check(decoded []byte, atEOF bool) (string, int, bool) {
	if idx := bytes.IndexByte(decoded, '\n'); idx >= 0 {
		line := decoded[:idx]
		if len(line) > 0 && line[len(line)-1] == '\r' {
			line = line[:len(line)-1]
		}
		return string(line), runeCount(decoded[:idx]) + 1, true
	}
	if atEOF && len(decoded) > 0 {
		return string(decoded), runeCount(decoded), true
	}
	return "", 0, false
}
