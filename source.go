package bytecursor

import (
	"io"

	"github.com/pkg/errors"
)

// ownership of the underlying stream, resolved once at construction and never
// mutated. A borrowed stream is left open on Close.
type ownership int

const (
	owned ownership = iota
	borrowed
)

// source wraps the underlying reader with capability detection and read
// accounting. seeker and closer are nil when the reader does not support the
// corresponding operation.
type source struct {
	r         io.Reader
	seeker    io.Seeker
	closer    io.Closer
	own       ownership
	exhausted bool
	reads     int
	in        int64
}

func newSource(r io.Reader, own ownership) *source {
	s := &source{r: r, own: own}
	s.seeker, _ = r.(io.Seeker)
	s.closer, _ = r.(io.Closer)
	return s
}

func (s *source) canSeek() bool { return s.seeker != nil }

// read fills p with up to len(p) bytes from the underlying reader. End of
// input is reported by marking the source exhausted, not by an error; a
// return of (0, nil) with exhausted set means no more data will ever arrive.
func (s *source) read(p []byte) (int, error) {
	if s.exhausted {
		return 0, nil
	}

	n, err := s.r.Read(p)
	s.reads++
	s.in += int64(n)

	if err == io.EOF {
		s.exhausted = true
		return n, nil
	}
	if err != nil {
		return n, errors.Wrap(err, "source read")
	}
	if n == 0 {
		// a reader returning (0, nil) makes no progress; treat it as
		// misbehaving rather than spinning on it
		return 0, errors.Wrap(io.ErrNoProgress, "source read")
	}

	return n, nil
}

// discard skips n bytes on the source directly, using native seek when the
// reader supports it and a read-and-discard loop otherwise. scratch is
// borrowed for the discard loop. Either way the return reports how many bytes
// were actually skipped; an overrun clamps to the end of the stream.
func (s *source) discard(n int64, scratch []byte) (int64, error) {
	if s.seeker != nil {
		cur, err := s.seeker.Seek(0, io.SeekCurrent)
		if err != nil {
			return 0, errors.Wrap(err, "source seek")
		}
		end, err := s.seeker.Seek(0, io.SeekEnd)
		if err != nil {
			return 0, errors.Wrap(err, "source seek")
		}

		skip := n
		if rem := end - cur; rem < skip {
			skip = rem
		}
		if _, err := s.seeker.Seek(cur+skip, io.SeekStart); err != nil {
			return 0, errors.Wrap(err, "source seek")
		}
		if skip < n {
			s.exhausted = true
		}
		return skip, nil
	}

	var done int64
	for done < n {
		chunk := int64(len(scratch))
		if rem := n - done; rem < chunk {
			chunk = rem
		}
		r, err := s.read(scratch[:chunk])
		if err != nil {
			return done, err
		}
		if r == 0 {
			break
		}
		done += int64(r)
	}
	return done, nil
}

func (s *source) close() error {
	if s.own == borrowed || s.closer == nil {
		return nil
	}
	return errors.Wrap(s.closer.Close(), "closing source")
}
