package bytecursor

import (
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// DefaultThreshold is the default minimum number of buffered bytes the cursor
// maintains. It is also the hard cap on the byte length of a single decodable
// token.
const DefaultThreshold = 16384

// Cursor is a buffered reader over a byte source with typed primitive and
// text token operations. A Cursor is single-owner and not safe for concurrent
// use; independent cursors over independent sources are fully concurrent.
type Cursor struct {
	src *source // nil in memory mode

	buf       []byte // window storage, capacity 2×threshold in stream mode
	tail      int    // next unconsumed byte
	head      int    // end of valid data
	threshold int

	pos int64 // absolute position in the source, consistent with tail

	enc  *Encoding
	swap bool

	// decode scratch, reused across text requests
	scratch []byte
	charSrc []int

	stats    *cursorStats
	unmap    func() error
	disposed bool
}

type config struct {
	enc       *Encoding
	threshold int
	swap      bool
	own       ownership
	stats     bool
}

// Option configures a Cursor at construction.
type Option func(*config)

// WithEncoding sets the text encoding used by string, regex and line
// operations. The default is UTF8.
func WithEncoding(enc *Encoding) Option {
	return func(c *config) { c.enc = enc }
}

// WithThreshold sets the buffer threshold: the minimum number of bytes the
// cursor keeps buffered and the maximum byte length of a single token.
func WithThreshold(n int) Option {
	return func(c *config) { c.threshold = n }
}

// WithByteSwap makes all primitive reads reassemble bytes in swapped
// (big-endian) order instead of the native little-endian convention.
func WithByteSwap(swap bool) Option {
	return func(c *config) { c.swap = swap }
}

// WithLeaveOpen marks the underlying stream as borrowed: Close releases the
// cursor's buffers but leaves the stream open for the caller.
func WithLeaveOpen() Option {
	return func(c *config) { c.own = borrowed }
}

// WithStats enables recording of refill and token size histograms,
// retrievable through Stats.
func WithStats() Option {
	return func(c *config) { c.stats = true }
}

// FromReader constructs a Cursor over r, pre-filling the buffer up to the
// threshold. If r implements io.Closer the stream is owned by the cursor and
// closed on Close unless WithLeaveOpen is given.
func FromReader(r io.Reader, options ...Option) (*Cursor, error) {
	cfg := config{enc: UTF8, threshold: DefaultThreshold, own: owned}
	for _, o := range options {
		o(&cfg)
	}
	if cfg.threshold < 1 {
		return nil, errors.Errorf("buffer threshold must be positive, got %d", cfg.threshold)
	}

	c := &Cursor{
		src:       newSource(r, cfg.own),
		buf:       make([]byte, 2*cfg.threshold),
		threshold: cfg.threshold,
		enc:       cfg.enc,
		swap:      cfg.swap,
		scratch:   make([]byte, 0, cfg.threshold),
		charSrc:   make([]int, 0, cfg.threshold),
	}
	if cfg.stats {
		c.stats = newCursorStats()
	}

	if err := c.fill(c.threshold); err != nil {
		return nil, err
	}
	return c, nil
}

// FromBytes constructs a memory-mode Cursor over b: no source, no refills,
// the buffer is the byte slice itself. The cursor reads but never modifies b.
// The threshold, and with it the token cap, defaults to the full slice but
// never below DefaultThreshold.
func FromBytes(b []byte, options ...Option) (*Cursor, error) {
	cfg := config{enc: UTF8, own: owned}
	for _, o := range options {
		o(&cfg)
	}
	if cfg.threshold == 0 {
		// a short slice must exhaust, not trip the capacity check
		cfg.threshold = len(b)
		if cfg.threshold < DefaultThreshold {
			cfg.threshold = DefaultThreshold
		}
	}
	if cfg.threshold < 1 {
		return nil, errors.Errorf("buffer threshold must be positive, got %d", cfg.threshold)
	}

	// a decode window can never exceed the slice, so the scratch hint is
	// bounded by it even when the threshold is larger
	hint := cfg.threshold
	if len(b) < hint {
		hint = len(b)
	}

	c := &Cursor{
		buf:       b,
		head:      len(b),
		threshold: cfg.threshold,
		enc:       cfg.enc,
		swap:      cfg.swap,
		scratch:   make([]byte, 0, hint),
		charSrc:   make([]int, 0, hint),
	}
	if cfg.stats {
		c.stats = newCursorStats()
	}
	return c, nil
}

// Position returns the absolute byte offset of the next unconsumed byte.
func (c *Cursor) Position() int64 { return c.pos }

// Buffered returns the number of bytes resident in the window but not yet
// consumed.
func (c *Cursor) Buffered() int { return c.available() }

// Exhausted reports whether the source has been fully drained. Buffered bytes
// may still be readable.
func (c *Cursor) Exhausted() bool {
	return c.src == nil || c.src.exhausted
}

// Skip discards n bytes without decoding them. Buffered bytes are consumed
// first; the remainder is skipped on the source directly, with a native seek
// when the source supports one.
func (c *Cursor) Skip(n int64) error {
	if c.disposed {
		return ErrDisposed
	}
	if n < 0 {
		return errors.Errorf("cannot skip %d bytes, use SeekTo to move backward", n)
	}

	take := int64(c.available())
	if take > n {
		take = n
	}
	rem := n - take

	if c.src == nil {
		if rem > 0 {
			return ErrEndOfStream
		}
		c.consume(int(take))
		return nil
	}

	c.consume(int(take))
	if rem == 0 {
		return nil
	}
	if c.src.exhausted {
		return ErrEndOfStream
	}

	// the buffer is drained at this point; reset the window so the skipped
	// region can never be rewound into
	c.tail, c.head = 0, 0

	if logging && c.src.canSeek() {
		logger.Debug("skipping with a native seek",
			zap.Int64("bytes", rem),
			zap.Int64("position", c.pos),
		)
	}

	done, err := c.src.discard(rem, c.buf)
	c.pos += done
	if err != nil {
		return err
	}
	if done < rem {
		return ErrEndOfStream
	}
	return nil
}

// SeekTo moves the cursor to the absolute position target. Forward seeks are
// equivalent to Skip. Backward seeks are permitted only into bytes the buffer
// still retains, which is everything consumed since the last compaction;
// memory-mode cursors never compact and can rewind to offset 0.
func (c *Cursor) SeekTo(target int64) error {
	if c.disposed {
		return ErrDisposed
	}
	if target >= c.pos {
		return c.Skip(target - c.pos)
	}

	delta := c.pos - target
	if delta > int64(c.tail) {
		return ErrUnsupportedSeek
	}

	if logging {
		logger.Debug("rewinding inside the retained window",
			zap.Int64("from", c.pos),
			zap.Int64("to", target),
		)
	}
	c.tail -= int(delta)
	c.pos = target
	return nil
}

// Close releases the cursor's buffers and closes the underlying stream unless
// it was marked leave-open. Close is idempotent; every operation after it
// fails with ErrDisposed.
func (c *Cursor) Close() error {
	if c.disposed {
		return nil
	}
	c.disposed = true
	c.buf = nil
	c.scratch = nil
	c.charSrc = nil

	var err error
	if c.unmap != nil {
		err = c.unmap()
		c.unmap = nil
	}
	if c.src != nil {
		if cerr := c.src.close(); err == nil {
			err = cerr
		}
		c.src = nil
	}
	return err
}
