package bytecursor

import (
	"errors"
	"regexp"

	"github.com/bytecursor/bytecursor/bytecodec"
)

// try maps data-dependent failures to false. Disposed cursors and
// over-threshold requests are programmer errors and panic; everything else a
// Try caller can recover from.
func (c *Cursor) try(err error) bool {
	if err == nil {
		return true
	}
	if errors.Is(err, ErrDisposed) {
		panic(err)
	}
	var ce *CapacityError
	if errors.As(err, &ce) {
		panic(err)
	}
	return false
}

// readFixed ensures size bytes, decodes through fn, and consumes them.
func (c *Cursor) readFixed(size int, fn func(w []byte)) error {
	w, err := c.window(size)
	if err != nil {
		return err
	}
	fn(w)
	c.consume(size)
	return nil
}

// peekFixed is readFixed without the consume.
func (c *Cursor) peekFixed(size int, fn func(w []byte)) error {
	w, err := c.window(size)
	if err != nil {
		return err
	}
	fn(w)
	return nil
}

// ReadByte reads a single byte and advances the cursor.
func (c *Cursor) ReadByte() (byte, error) {
	var v byte
	err := c.readFixed(1, func(w []byte) { v = bytecodec.Byte(w, 0) })
	return v, err
}

// PeekByte returns the next byte without consuming it.
func (c *Cursor) PeekByte() (byte, error) {
	var v byte
	err := c.peekFixed(1, func(w []byte) { v = bytecodec.Byte(w, 0) })
	return v, err
}

// TryReadByte is ReadByte reporting data-dependent failures as false.
func (c *Cursor) TryReadByte() (byte, bool) {
	v, err := c.ReadByte()
	return v, c.try(err)
}

// TryPeekByte is PeekByte reporting data-dependent failures as false.
func (c *Cursor) TryPeekByte() (byte, bool) {
	v, err := c.PeekByte()
	return v, c.try(err)
}

// ReadInt8 reads a signed byte and advances the cursor.
func (c *Cursor) ReadInt8() (int8, error) {
	var v int8
	err := c.readFixed(1, func(w []byte) { v = bytecodec.Int8(w, 0) })
	return v, err
}

// PeekInt8 returns the next signed byte without consuming it.
func (c *Cursor) PeekInt8() (int8, error) {
	var v int8
	err := c.peekFixed(1, func(w []byte) { v = bytecodec.Int8(w, 0) })
	return v, err
}

// TryReadInt8 is ReadInt8 reporting data-dependent failures as false.
func (c *Cursor) TryReadInt8() (int8, bool) {
	v, err := c.ReadInt8()
	return v, c.try(err)
}

// TryPeekInt8 is PeekInt8 reporting data-dependent failures as false.
func (c *Cursor) TryPeekInt8() (int8, bool) {
	v, err := c.PeekInt8()
	return v, c.try(err)
}

// ReadInt16 reads a signed 16 bit integer and advances the cursor.
func (c *Cursor) ReadInt16() (int16, error) {
	var v int16
	err := c.readFixed(bytecodec.Int16Size, func(w []byte) { v = bytecodec.Int16(w, 0, c.swap) })
	return v, err
}

// PeekInt16 returns the next signed 16 bit integer without consuming it.
func (c *Cursor) PeekInt16() (int16, error) {
	var v int16
	err := c.peekFixed(bytecodec.Int16Size, func(w []byte) { v = bytecodec.Int16(w, 0, c.swap) })
	return v, err
}

// TryReadInt16 is ReadInt16 reporting data-dependent failures as false.
func (c *Cursor) TryReadInt16() (int16, bool) {
	v, err := c.ReadInt16()
	return v, c.try(err)
}

// TryPeekInt16 is PeekInt16 reporting data-dependent failures as false.
func (c *Cursor) TryPeekInt16() (int16, bool) {
	v, err := c.PeekInt16()
	return v, c.try(err)
}

// ReadUint16 reads an unsigned 16 bit integer and advances the cursor.
func (c *Cursor) ReadUint16() (uint16, error) {
	var v uint16
	err := c.readFixed(bytecodec.Int16Size, func(w []byte) { v = bytecodec.Uint16(w, 0, c.swap) })
	return v, err
}

// PeekUint16 returns the next unsigned 16 bit integer without consuming it.
func (c *Cursor) PeekUint16() (uint16, error) {
	var v uint16
	err := c.peekFixed(bytecodec.Int16Size, func(w []byte) { v = bytecodec.Uint16(w, 0, c.swap) })
	return v, err
}

// TryReadUint16 is ReadUint16 reporting data-dependent failures as false.
func (c *Cursor) TryReadUint16() (uint16, bool) {
	v, err := c.ReadUint16()
	return v, c.try(err)
}

// TryPeekUint16 is PeekUint16 reporting data-dependent failures as false.
func (c *Cursor) TryPeekUint16() (uint16, bool) {
	v, err := c.PeekUint16()
	return v, c.try(err)
}

// ReadInt32 reads a signed 32 bit integer and advances the cursor.
func (c *Cursor) ReadInt32() (int32, error) {
	var v int32
	err := c.readFixed(bytecodec.Int32Size, func(w []byte) { v = bytecodec.Int32(w, 0, c.swap) })
	return v, err
}

// PeekInt32 returns the next signed 32 bit integer without consuming it.
func (c *Cursor) PeekInt32() (int32, error) {
	var v int32
	err := c.peekFixed(bytecodec.Int32Size, func(w []byte) { v = bytecodec.Int32(w, 0, c.swap) })
	return v, err
}

// TryReadInt32 is ReadInt32 reporting data-dependent failures as false.
func (c *Cursor) TryReadInt32() (int32, bool) {
	v, err := c.ReadInt32()
	return v, c.try(err)
}

// TryPeekInt32 is PeekInt32 reporting data-dependent failures as false.
func (c *Cursor) TryPeekInt32() (int32, bool) {
	v, err := c.PeekInt32()
	return v, c.try(err)
}

// ReadUint32 reads an unsigned 32 bit integer and advances the cursor.
func (c *Cursor) ReadUint32() (uint32, error) {
	var v uint32
	err := c.readFixed(bytecodec.Int32Size, func(w []byte) { v = bytecodec.Uint32(w, 0, c.swap) })
	return v, err
}

// PeekUint32 returns the next unsigned 32 bit integer without consuming it.
func (c *Cursor) PeekUint32() (uint32, error) {
	var v uint32
	err := c.peekFixed(bytecodec.Int32Size, func(w []byte) { v = bytecodec.Uint32(w, 0, c.swap) })
	return v, err
}

// TryReadUint32 is ReadUint32 reporting data-dependent failures as false.
func (c *Cursor) TryReadUint32() (uint32, bool) {
	v, err := c.ReadUint32()
	return v, c.try(err)
}

// TryPeekUint32 is PeekUint32 reporting data-dependent failures as false.
func (c *Cursor) TryPeekUint32() (uint32, bool) {
	v, err := c.PeekUint32()
	return v, c.try(err)
}

// ReadInt64 reads a signed 64 bit integer and advances the cursor.
func (c *Cursor) ReadInt64() (int64, error) {
	var v int64
	err := c.readFixed(bytecodec.Int64Size, func(w []byte) { v = bytecodec.Int64(w, 0, c.swap) })
	return v, err
}

// PeekInt64 returns the next signed 64 bit integer without consuming it.
func (c *Cursor) PeekInt64() (int64, error) {
	var v int64
	err := c.peekFixed(bytecodec.Int64Size, func(w []byte) { v = bytecodec.Int64(w, 0, c.swap) })
	return v, err
}

// TryReadInt64 is ReadInt64 reporting data-dependent failures as false.
func (c *Cursor) TryReadInt64() (int64, bool) {
	v, err := c.ReadInt64()
	return v, c.try(err)
}

// TryPeekInt64 is PeekInt64 reporting data-dependent failures as false.
func (c *Cursor) TryPeekInt64() (int64, bool) {
	v, err := c.PeekInt64()
	return v, c.try(err)
}

// ReadUint64 reads an unsigned 64 bit integer and advances the cursor.
func (c *Cursor) ReadUint64() (uint64, error) {
	var v uint64
	err := c.readFixed(bytecodec.Int64Size, func(w []byte) { v = bytecodec.Uint64(w, 0, c.swap) })
	return v, err
}

// PeekUint64 returns the next unsigned 64 bit integer without consuming it.
func (c *Cursor) PeekUint64() (uint64, error) {
	var v uint64
	err := c.peekFixed(bytecodec.Int64Size, func(w []byte) { v = bytecodec.Uint64(w, 0, c.swap) })
	return v, err
}

// TryReadUint64 is ReadUint64 reporting data-dependent failures as false.
func (c *Cursor) TryReadUint64() (uint64, bool) {
	v, err := c.ReadUint64()
	return v, c.try(err)
}

// TryPeekUint64 is PeekUint64 reporting data-dependent failures as false.
func (c *Cursor) TryPeekUint64() (uint64, bool) {
	v, err := c.PeekUint64()
	return v, c.try(err)
}

// ReadFloat32 reads an IEEE 754 single precision float and advances the cursor.
func (c *Cursor) ReadFloat32() (float32, error) {
	var v float32
	err := c.readFixed(bytecodec.Float32Size, func(w []byte) { v = bytecodec.Float32(w, 0, c.swap) })
	return v, err
}

// PeekFloat32 returns the next single precision float without consuming it.
func (c *Cursor) PeekFloat32() (float32, error) {
	var v float32
	err := c.peekFixed(bytecodec.Float32Size, func(w []byte) { v = bytecodec.Float32(w, 0, c.swap) })
	return v, err
}

// TryReadFloat32 is ReadFloat32 reporting data-dependent failures as false.
func (c *Cursor) TryReadFloat32() (float32, bool) {
	v, err := c.ReadFloat32()
	return v, c.try(err)
}

// TryPeekFloat32 is PeekFloat32 reporting data-dependent failures as false.
func (c *Cursor) TryPeekFloat32() (float32, bool) {
	v, err := c.PeekFloat32()
	return v, c.try(err)
}

// ReadFloat64 reads an IEEE 754 double precision float and advances the cursor.
func (c *Cursor) ReadFloat64() (float64, error) {
	var v float64
	err := c.readFixed(bytecodec.Float64Size, func(w []byte) { v = bytecodec.Float64(w, 0, c.swap) })
	return v, err
}

// PeekFloat64 returns the next double precision float without consuming it.
func (c *Cursor) PeekFloat64() (float64, error) {
	var v float64
	err := c.peekFixed(bytecodec.Float64Size, func(w []byte) { v = bytecodec.Float64(w, 0, c.swap) })
	return v, err
}

// TryReadFloat64 is ReadFloat64 reporting data-dependent failures as false.
func (c *Cursor) TryReadFloat64() (float64, bool) {
	v, err := c.ReadFloat64()
	return v, c.try(err)
}

// TryPeekFloat64 is PeekFloat64 reporting data-dependent failures as false.
func (c *Cursor) TryPeekFloat64() (float64, bool) {
	v, err := c.PeekFloat64()
	return v, c.try(err)
}

// ReadBytes reads exactly n raw bytes into a fresh slice and advances the
// cursor.
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	w, err := c.window(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, w)
	c.consume(n)
	return out, nil
}

// PeekBytes returns the next n raw bytes without consuming them.
func (c *Cursor) PeekBytes(n int) ([]byte, error) {
	w, err := c.window(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, w)
	return out, nil
}

// TryReadBytes is ReadBytes reporting data-dependent failures as false.
func (c *Cursor) TryReadBytes(n int) ([]byte, bool) {
	v, err := c.ReadBytes(n)
	return v, c.try(err)
}

// TryPeekBytes is PeekBytes reporting data-dependent failures as false.
func (c *Cursor) TryPeekBytes(n int) ([]byte, bool) {
	v, err := c.PeekBytes(n)
	return v, c.try(err)
}

///////////////////////////////////////////////////////////////////////////////

func (c *Cursor) readText(req textRequest, enc *Encoding) (string, error) {
	token, n, err := c.decodeText(req, enc)
	if err != nil {
		return "", err
	}
	c.consume(n)
	c.stats.recordToken(n)
	return token, nil
}

func (c *Cursor) peekText(req textRequest, enc *Encoding) (string, error) {
	token, _, err := c.decodeText(req, enc)
	return token, err
}

// ReadString reads exactly chars characters in the cursor's encoding and
// advances past their bytes.
func (c *Cursor) ReadString(chars int) (string, error) {
	return c.readText(charsRequest(chars), c.enc)
}

// ReadStringEncoding is ReadString with a per-call encoding override.
func (c *Cursor) ReadStringEncoding(chars int, enc *Encoding) (string, error) {
	return c.readText(charsRequest(chars), enc)
}

// PeekString returns the next chars characters without consuming them.
func (c *Cursor) PeekString(chars int) (string, error) {
	return c.peekText(charsRequest(chars), c.enc)
}

// PeekStringEncoding is PeekString with a per-call encoding override.
func (c *Cursor) PeekStringEncoding(chars int, enc *Encoding) (string, error) {
	return c.peekText(charsRequest(chars), enc)
}

// TryReadString is ReadString reporting data-dependent failures as false.
func (c *Cursor) TryReadString(chars int) (string, bool) {
	v, err := c.ReadString(chars)
	return v, c.try(err)
}

// TryReadStringEncoding is ReadStringEncoding reporting data-dependent
// failures as false.
func (c *Cursor) TryReadStringEncoding(chars int, enc *Encoding) (string, bool) {
	v, err := c.ReadStringEncoding(chars, enc)
	return v, c.try(err)
}

// TryPeekString is PeekString reporting data-dependent failures as false.
func (c *Cursor) TryPeekString(chars int) (string, bool) {
	v, err := c.PeekString(chars)
	return v, c.try(err)
}

// TryPeekStringEncoding is PeekStringEncoding reporting data-dependent
// failures as false.
func (c *Cursor) TryPeekStringEncoding(chars int, enc *Encoding) (string, bool) {
	v, err := c.PeekStringEncoding(chars, enc)
	return v, c.try(err)
}

// ReadRegex decodes just enough text for re to match and advances past the
// end of the match. If re has exactly one capture group the group's text is
// returned, otherwise the whole match.
func (c *Cursor) ReadRegex(re *regexp.Regexp) (string, error) {
	return c.readText(regexRequest{re}, c.enc)
}

// ReadRegexEncoding is ReadRegex with a per-call encoding override.
func (c *Cursor) ReadRegexEncoding(re *regexp.Regexp, enc *Encoding) (string, error) {
	return c.readText(regexRequest{re}, enc)
}

// PeekRegex returns what ReadRegex would return without consuming anything.
func (c *Cursor) PeekRegex(re *regexp.Regexp) (string, error) {
	return c.peekText(regexRequest{re}, c.enc)
}

// PeekRegexEncoding is PeekRegex with a per-call encoding override.
func (c *Cursor) PeekRegexEncoding(re *regexp.Regexp, enc *Encoding) (string, error) {
	return c.peekText(regexRequest{re}, enc)
}

// TryReadRegex is ReadRegex reporting data-dependent failures as false.
func (c *Cursor) TryReadRegex(re *regexp.Regexp) (string, bool) {
	v, err := c.ReadRegex(re)
	return v, c.try(err)
}

// TryReadRegexEncoding is ReadRegexEncoding reporting data-dependent failures
// as false.
func (c *Cursor) TryReadRegexEncoding(re *regexp.Regexp, enc *Encoding) (string, bool) {
	v, err := c.ReadRegexEncoding(re, enc)
	return v, c.try(err)
}

// TryPeekRegex is PeekRegex reporting data-dependent failures as false.
func (c *Cursor) TryPeekRegex(re *regexp.Regexp) (string, bool) {
	v, err := c.PeekRegex(re)
	return v, c.try(err)
}

// TryPeekRegexEncoding is PeekRegexEncoding reporting data-dependent failures
// as false.
func (c *Cursor) TryPeekRegexEncoding(re *regexp.Regexp, enc *Encoding) (string, bool) {
	v, err := c.PeekRegexEncoding(re, enc)
	return v, c.try(err)
}

// ReadLine reads up to the next line feed and advances past it. The
// terminator, and a carriage return preceding it, is consumed but not
// returned. At end of input the remaining characters form the final line.
func (c *Cursor) ReadLine() (string, error) {
	return c.readText(lineRequest{}, c.enc)
}

// ReadLineEncoding is ReadLine with a per-call encoding override.
func (c *Cursor) ReadLineEncoding(enc *Encoding) (string, error) {
	return c.readText(lineRequest{}, enc)
}

// PeekLine returns the next line without consuming it.
func (c *Cursor) PeekLine() (string, error) {
	return c.peekText(lineRequest{}, c.enc)
}

// PeekLineEncoding is PeekLine with a per-call encoding override.
func (c *Cursor) PeekLineEncoding(enc *Encoding) (string, error) {
	return c.peekText(lineRequest{}, enc)
}

// TryReadLine is ReadLine reporting data-dependent failures as false.
func (c *Cursor) TryReadLine() (string, bool) {
	v, err := c.ReadLine()
	return v, c.try(err)
}

// TryReadLineEncoding is ReadLineEncoding reporting data-dependent failures
// as false.
func (c *Cursor) TryReadLineEncoding(enc *Encoding) (string, bool) {
	v, err := c.ReadLineEncoding(enc)
	return v, c.try(err)
}

// TryPeekLine is PeekLine reporting data-dependent failures as false.
func (c *Cursor) TryPeekLine() (string, bool) {
	v, err := c.PeekLine()
	return v, c.try(err)
}

// TryPeekLineEncoding is PeekLineEncoding reporting data-dependent failures
// as false.
func (c *Cursor) TryPeekLineEncoding(enc *Encoding) (string, bool) {
	v, err := c.PeekLineEncoding(enc)
	return v, c.try(err)
}
