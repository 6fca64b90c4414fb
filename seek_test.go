package bytecursor

import (
	"bytes"
	"errors"
	"testing"
)

func TestSkipAdvancesPosition(t *testing.T) {
	c, err := FromBytes([]byte("0123456789"))
	if err != nil {
		t.Fatal(err)
	}

	if err := c.Skip(4); err != nil {
		t.Fatal(err)
	}
	if c.Position() != 4 {
		t.Errorf("expected position 4, got %v", c.Position())
	}

	b, err := c.ReadByte()
	if err != nil {
		t.Fatal(err)
	}
	if b != '4' {
		t.Errorf("expected '4', got %q", b)
	}

	if err := c.Skip(100); !errors.Is(err, ErrEndOfStream) {
		t.Errorf("expected ErrEndOfStream skipping past the end, got %v", err)
	}
}

func TestSkipPastBufferOnStream(t *testing.T) {
	data := make([]byte, 64)
	for i := range data {
		data[i] = byte(i)
	}

	// no seeker: skip must read and discard
	c, err := FromReader(&chunkReader{data: data, chunk: 5}, WithThreshold(8))
	if err != nil {
		t.Fatal(err)
	}

	if err := c.Skip(40); err != nil {
		t.Fatal(err)
	}
	if c.Position() != 40 {
		t.Errorf("expected position 40, got %v", c.Position())
	}

	b, err := c.ReadByte()
	if err != nil {
		t.Fatal(err)
	}
	if b != 40 {
		t.Errorf("expected byte 40, got %v", b)
	}
}

func TestSkipWithNativeSeek(t *testing.T) {
	data := make([]byte, 64)
	for i := range data {
		data[i] = byte(i)
	}

	// bytes.Reader seeks natively
	c, err := FromReader(bytes.NewReader(data), WithThreshold(8))
	if err != nil {
		t.Fatal(err)
	}

	if err := c.Skip(40); err != nil {
		t.Fatal(err)
	}
	if c.Position() != 40 {
		t.Errorf("expected position 40, got %v", c.Position())
	}

	b, err := c.ReadByte()
	if err != nil {
		t.Fatal(err)
	}
	if b != 40 {
		t.Errorf("expected byte 40, got %v", b)
	}
}

func TestSkipPastEndWithNativeSeek(t *testing.T) {
	data := make([]byte, 10)
	for i := range data {
		data[i] = byte(i)
	}

	// overrunning the stream must report end of stream and stop at the true
	// end, exactly like the read-and-discard fallback
	c, err := FromReader(bytes.NewReader(data), WithThreshold(8))
	if err != nil {
		t.Fatal(err)
	}

	if err := c.Skip(100); !errors.Is(err, ErrEndOfStream) {
		t.Errorf("expected ErrEndOfStream skipping past the end, got %v", err)
	}
	if c.Position() != 10 {
		t.Errorf("expected position 10 at the stream end, got %v", c.Position())
	}
	if !c.Exhausted() {
		t.Error("expected the source to be exhausted after the overrun")
	}
}

func TestSeekBackwardWithinWindow(t *testing.T) {
	c, err := FromBytes([]byte("0123456789"))
	if err != nil {
		t.Fatal(err)
	}

	first, err := c.ReadBytes(6)
	if err != nil {
		t.Fatal(err)
	}

	if err := c.SeekTo(2); err != nil {
		t.Fatal(err)
	}
	if c.Position() != 2 {
		t.Errorf("expected position 2, got %v", c.Position())
	}

	again, err := c.ReadBytes(4)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(again, first[2:6]) {
		t.Errorf("rewound read %q differs from original %q", again, first[2:6])
	}
}

func TestSeekForwardEqualsSkip(t *testing.T) {
	c, err := FromBytes([]byte("0123456789"))
	if err != nil {
		t.Fatal(err)
	}

	if err := c.SeekTo(7); err != nil {
		t.Fatal(err)
	}
	b, err := c.ReadByte()
	if err != nil {
		t.Fatal(err)
	}
	if b != '7' {
		t.Errorf("expected '7', got %q", b)
	}
}

func TestSeekBackwardOutsideWindow(t *testing.T) {
	data := make([]byte, 64)
	c, err := FromReader(&chunkReader{data: data, chunk: 8}, WithThreshold(8))
	if err != nil {
		t.Fatal(err)
	}

	// consume enough that a compaction has discarded the early bytes
	for i := 0; i < 4; i++ {
		if _, err := c.ReadBytes(8); err != nil {
			t.Fatal(err)
		}
	}

	if err := c.SeekTo(0); !errors.Is(err, ErrUnsupportedSeek) {
		t.Errorf("expected ErrUnsupportedSeek rewinding past the window, got %v", err)
	}
}

func TestMemorySeekToStart(t *testing.T) {
	c, err := FromBytes([]byte("abcdef"))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := c.ReadBytes(6); err != nil {
		t.Fatal(err)
	}

	// memory mode never compacts, so a full rewind is always in the window
	if err := c.SeekTo(0); err != nil {
		t.Fatal(err)
	}
	b, err := c.ReadByte()
	if err != nil {
		t.Fatal(err)
	}
	if b != 'a' {
		t.Errorf("expected 'a', got %q", b)
	}
}

func TestNegativeSkip(t *testing.T) {
	c, err := FromBytes([]byte("abc"))
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Skip(-1); err == nil {
		t.Error("expected an error for a negative skip")
	}
}
