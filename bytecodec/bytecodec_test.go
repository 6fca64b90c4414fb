package bytecodec

import (
	"math"
	"testing"
)

func TestUint32(t *testing.T) {
	cases := []uint32{0, 10, 100, 200, 1000, 10000, 10000000, 1000000000, 4294967295}

	for _, val := range cases {
		b := []byte{
			byte(val & 0xFF),
			byte((val >> 8) & 0xFF),
			byte((val >> 16) & 0xFF),
			byte(val >> 24),
		}

		if got := Uint32(b, 0, false); got != val {
			t.Errorf("expected: %v, got %v", val, got)
		}

		r := []byte{b[3], b[2], b[1], b[0]}
		if got := Uint32(r, 0, true); got != val {
			t.Errorf("swapped, expected: %v, got %v", val, got)
		}
	}
}

func TestInt64(t *testing.T) {
	cases := []int64{0, 10, 1000, 10000000, 1000000000, 2147483647,
		4294967295, 10000000000000, 100000000000000000, 9223372036854775807, -1, -10000000}

	for _, val := range cases {
		b := []byte{
			byte(val & 0xFF),
			byte((val >> 8) & 0xFF),
			byte((val >> 16) & 0xFF),
			byte((val >> 24) & 0xFF),
			byte((val >> 32) & 0xFF),
			byte((val >> 40) & 0xFF),
			byte((val >> 48) & 0xFF),
			byte(val >> 56),
		}

		if got := Int64(b, 0, false); got != val {
			t.Errorf("expected: %v, got %v", val, got)
		}
	}
}

func TestOffset(t *testing.T) {
	b := []byte{0xFF, 0xFF, 0x01, 0x00, 0x00, 0x00}

	if got := Int32(b, 2, false); got != 1 {
		t.Errorf("expected 1 at offset 2, got %v", got)
	}

	if got := Int32(b, 2, true); got != 16777216 {
		t.Errorf("swapped, expected 16777216 at offset 2, got %v", got)
	}
}

func TestInt16(t *testing.T) {
	cases := []int16{0, 1, 256, 32767, -1, -32768}

	for _, val := range cases {
		b := []byte{byte(val & 0xFF), byte(uint16(val) >> 8)}

		if got := Int16(b, 0, false); got != val {
			t.Errorf("expected: %v, got %v", val, got)
		}
		r := []byte{b[1], b[0]}
		if got := Int16(r, 0, true); got != val {
			t.Errorf("swapped, expected: %v, got %v", val, got)
		}
	}
}

func TestFloats(t *testing.T) {
	cases := []float64{0, 1, -1, 3.14159, 2.5e307, math.MaxFloat64, math.Inf(1)}

	for _, val := range cases {
		bits := math.Float64bits(val)
		b := make([]byte, 8)
		for i := 0; i < 8; i++ {
			b[i] = byte(bits >> (8 * i))
		}

		if got := Float64(b, 0, false); got != val {
			t.Errorf("expected: %v, got %v", val, got)
		}
	}

	f := float32(1.5)
	bits := math.Float32bits(f)
	b := []byte{byte(bits), byte(bits >> 8), byte(bits >> 16), byte(bits >> 24)}
	if got := Float32(b, 0, false); got != f {
		t.Errorf("expected: %v, got %v", f, got)
	}
	r := []byte{b[3], b[2], b[1], b[0]}
	if got := Float32(r, 0, true); got != f {
		t.Errorf("swapped, expected: %v, got %v", f, got)
	}
}

func TestSignedBytes(t *testing.T) {
	b := []byte{0x80, 0x7F}

	if got := Int8(b, 0); got != -128 {
		t.Errorf("expected -128, got %v", got)
	}
	if got := Int8(b, 1); got != 127 {
		t.Errorf("expected 127, got %v", got)
	}
	if got := Byte(b, 0); got != 0x80 {
		t.Errorf("expected 0x80, got %v", got)
	}
}
