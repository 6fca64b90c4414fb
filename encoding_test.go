package bytecursor

import (
	"testing"

	"golang.org/x/text/encoding/charmap"
)

func TestEncodingNames(t *testing.T) {
	cases := []struct {
		enc  *Encoding
		name string
	}{
		{UTF8, "utf-8"},
		{UTF16LE, "utf-16le"},
		{UTF16BE, "utf-16be"},
	}

	for _, tc := range cases {
		if tc.enc.Name() != tc.name {
			t.Errorf("expected %q, got %q", tc.name, tc.enc.Name())
		}
	}
}

func TestFromCharmap(t *testing.T) {
	koi := FromCharmap(charmap.KOI8R)

	// 0xD2 is Cyrillic 'р' in KOI8-R
	c, err := FromBytes([]byte{0xD2, 0xD5, 0xD3}, WithEncoding(koi))
	if err != nil {
		t.Fatal(err)
	}

	s, err := c.ReadString(3)
	if err != nil {
		t.Fatal(err)
	}
	if s != "рус" {
		t.Errorf("expected \"рус\", got %q", s)
	}
	if c.Position() != 3 {
		t.Errorf("expected position 3, got %v", c.Position())
	}
}

func TestWindows1252(t *testing.T) {
	// 0x93/0x94 are curly quotes in Windows-1252
	c, err := FromBytes([]byte{0x93, 'o', 'k', 0x94}, WithEncoding(Windows1252))
	if err != nil {
		t.Fatal(err)
	}

	s, err := c.ReadString(4)
	if err != nil {
		t.Fatal(err)
	}
	if s != "“ok”" {
		t.Errorf("expected curly quoted ok, got %q", s)
	}
}
