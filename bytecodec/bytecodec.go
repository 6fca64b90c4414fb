// Package bytecodec implements stateless decoding of fixed-width values from
// a byte slice at arbitrary offsets
//
// initially tried to use encoding/binary's Read with a bytes.Reader, but that
// allocates a reader per call and always consumes from the front. The cursor
// needs to interpret a window at any offset, repeatedly, without allocation,
// so this implements the decode directly on the slice
//
// every function reads exactly the size of its type starting at offset and
// reassembles the bytes in wire order or swapped order. Bounds are the
// caller's responsibility: the cursor guarantees the window before invoking
// the codec, so these never fail
package bytecodec

import (
	"encoding/binary"
	"math"
)

// byte lengths of the decodable fixed-width types
const (
	Int8Size    = 1
	Int16Size   = 2
	Int32Size   = 4
	Int64Size   = 8
	Float32Size = 4
	Float64Size = 8
)

// the native convention is little endian; swap selects big endian
var native = binary.LittleEndian
var swapped = binary.ByteOrder(binary.BigEndian)

// Byte returns the byte at offset.
func Byte(buf []byte, offset int) byte { return buf[offset] }

// Int8 decodes a signed byte at offset.
func Int8(buf []byte, offset int) int8 { return int8(buf[offset]) }

// Uint16 decodes an unsigned 16 bit integer at offset.
func Uint16(buf []byte, offset int, swap bool) uint16 {
	if swap {
		return swapped.Uint16(buf[offset : offset+Int16Size])
	}
	return native.Uint16(buf[offset : offset+Int16Size])
}

// Int16 decodes a signed 16 bit integer at offset.
func Int16(buf []byte, offset int, swap bool) int16 {
	return int16(Uint16(buf, offset, swap))
}

// Uint32 decodes an unsigned 32 bit integer at offset.
func Uint32(buf []byte, offset int, swap bool) uint32 {
	if swap {
		return swapped.Uint32(buf[offset : offset+Int32Size])
	}
	return native.Uint32(buf[offset : offset+Int32Size])
}

// Int32 decodes a signed 32 bit integer at offset.
func Int32(buf []byte, offset int, swap bool) int32 {
	return int32(Uint32(buf, offset, swap))
}

// Uint64 decodes an unsigned 64 bit integer at offset.
func Uint64(buf []byte, offset int, swap bool) uint64 {
	if swap {
		return swapped.Uint64(buf[offset : offset+Int64Size])
	}
	return native.Uint64(buf[offset : offset+Int64Size])
}

// Int64 decodes a signed 64 bit integer at offset.
func Int64(buf []byte, offset int, swap bool) int64 {
	return int64(Uint64(buf, offset, swap))
}

// Float32 decodes an IEEE 754 single precision float at offset.
func Float32(buf []byte, offset int, swap bool) float32 {
	return math.Float32frombits(Uint32(buf, offset, swap))
}

// Float64 decodes an IEEE 754 double precision float at offset.
func Float64(buf []byte, offset int, swap bool) float64 {
	return math.Float64frombits(Uint64(buf, offset, swap))
}
