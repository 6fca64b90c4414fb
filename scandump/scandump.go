// Package scandump implements a small utility that walks a byte stream with a
// cursor and prints its tokens with their absolute offsets
//
// the reading is implemented here while the cli is implemented in cmd/scandump,
// so that the dump logic stays testable against in-memory fixtures
//
// by default the stream is split into lines; passing a pattern switches to
// regex tokenization, where each dumped token is the next match (or its single
// capture group)
package scandump

import (
	"fmt"
	"io"
	"regexp"

	"github.com/bytecursor/bytecursor"
)

// Config controls a dump run.
type Config struct {
	// Encoding for text decoding, bytecursor.UTF8 if nil.
	Encoding *bytecursor.Encoding

	// Pattern switches from line to regex tokenization if non-nil.
	Pattern *regexp.Regexp

	// Threshold overrides the cursor's buffer threshold if positive.
	Threshold int

	// Stats appends a size distribution summary to the dump.
	Stats bool
}

func (c Config) options() []bytecursor.Option {
	opts := []bytecursor.Option{}
	if c.Encoding != nil {
		opts = append(opts, bytecursor.WithEncoding(c.Encoding))
	}
	if c.Threshold > 0 {
		opts = append(opts, bytecursor.WithThreshold(c.Threshold))
	}
	if c.Stats {
		opts = append(opts, bytecursor.WithStats())
	}
	return opts
}

// Dump reads tokens from r until the stream is exhausted and writes one line
// per token to w, prefixed with the token's absolute byte offset. The stream
// is always left drained up to the first undecodable byte, whose position is
// reported in the returned error.
func Dump(r io.Reader, w io.Writer, cfg Config) error {
	cur, err := bytecursor.FromReader(r, cfg.options()...)
	if err != nil {
		return err
	}
	defer cur.Close()

	return dump(cur, w, cfg)
}

// DumpFile is Dump over a memory-mapped file.
func DumpFile(path string, w io.Writer, cfg Config) error {
	cur, err := bytecursor.FromFile(path, cfg.options()...)
	if err != nil {
		return err
	}
	defer cur.Close()

	return dump(cur, w, cfg)
}

func dump(cur *bytecursor.Cursor, w io.Writer, cfg Config) error {
	count := 0
	for {
		offset := cur.Position()

		var token string
		var err error
		if cfg.Pattern != nil {
			token, err = cur.ReadRegex(cfg.Pattern)
		} else {
			token, err = cur.ReadLine()
		}
		if err == bytecursor.ErrEndOfStream {
			break
		}
		if err != nil {
			return err
		}

		count++
		if _, err := fmt.Fprintf(w, "%8d %q\n", offset, token); err != nil {
			return err
		}
	}

	fmt.Fprintf(w, "%d token(s)\n", count)

	if cfg.Stats {
		if snap, ok := cur.Stats(); ok {
			fmt.Fprintf(w, "tokens: mean %.1f bytes, p95 %d bytes\n", snap.TokenMean, snap.TokenP95)
			if snap.Refills > 0 {
				fmt.Fprintf(w, "refills: %d, mean %.1f bytes\n", snap.Refills, snap.RefillMean)
			}
		}
	}
	return nil
}
