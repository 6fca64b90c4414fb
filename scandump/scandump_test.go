package scandump

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/bytecursor/bytecursor"
)

func TestDumpLines(t *testing.T) {
	var out bytes.Buffer
	err := Dump(strings.NewReader("alpha\nbeta\n"), &out, Config{})
	if err != nil {
		t.Fatal(err)
	}

	expected := "       0 \"alpha\"\n       6 \"beta\"\n2 token(s)\n"
	if out.String() != expected {
		t.Errorf("expected %q, got %q", expected, out.String())
	}
}

func TestDumpRegex(t *testing.T) {
	var out bytes.Buffer
	err := Dump(strings.NewReader("a=1 b=22 c=333"), &out, Config{
		Pattern: regexp.MustCompile(`(\w+)=\w+\s*`),
	})
	if err != nil {
		t.Fatal(err)
	}

	for _, tok := range []string{`"a"`, `"b"`, `"c"`} {
		if !strings.Contains(out.String(), tok) {
			t.Errorf("dump is missing token %s:\n%s", tok, out.String())
		}
	}
	if !strings.Contains(out.String(), "3 token(s)") {
		t.Errorf("expected 3 tokens:\n%s", out.String())
	}
}

func TestDumpInvalidInput(t *testing.T) {
	var out bytes.Buffer
	err := Dump(bytes.NewReader([]byte{'o', 'k', '\n', 0xFF, 0xFF}), &out, Config{})
	if err == nil {
		t.Fatal("expected an encoding error")
	}

	ee, ok := bytecursor.IsEncodingError(err)
	if !ok {
		t.Fatalf("expected an EncodingError, got %v", err)
	}
	if ee.Offset != 3 {
		t.Errorf("expected the error at offset 3, got %v", ee.Offset)
	}

	// the valid prefix was still dumped
	if !strings.Contains(out.String(), `"ok"`) {
		t.Errorf("expected the valid line to be dumped first:\n%s", out.String())
	}
}

func TestDumpStats(t *testing.T) {
	var out bytes.Buffer
	err := Dump(strings.NewReader("one\ntwo\nthree\n"), &out, Config{Stats: true, Threshold: 8})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "tokens: mean") {
		t.Errorf("expected a stats summary:\n%s", out.String())
	}
}
