package bytecursor

import "github.com/codahale/hdrhistogram"

// cursorStats records refill and token size distributions when WithStats is
// given. Recording is nil-safe so the hot paths never branch on the option.
type cursorStats struct {
	refills *hdrhistogram.Histogram
	tokens  *hdrhistogram.Histogram
}

func newCursorStats() *cursorStats {
	// value range covers a single read or token, which is bounded by the
	// buffer capacity; 1GB leaves plenty of headroom for memory-mode tokens
	return &cursorStats{
		refills: hdrhistogram.New(1, 1<<30, 3),
		tokens:  hdrhistogram.New(1, 1<<30, 3),
	}
}

func (s *cursorStats) recordRefill(n int) {
	if s == nil || n < 1 {
		return
	}
	_ = s.refills.RecordValue(int64(n))
}

func (s *cursorStats) recordToken(n int) {
	if s == nil || n < 1 {
		return
	}
	_ = s.tokens.RecordValue(int64(n))
}

// StatsSnapshot summarizes the size distributions a cursor has seen. Useful
// for tuning the threshold against real inputs.
type StatsSnapshot struct {
	Refills    int64
	RefillMean float64
	RefillP95  int64

	Tokens    int64
	TokenMean float64
	TokenP95  int64
}

// Stats returns a snapshot of the recorded distributions. The second return
// is false if the cursor was constructed without WithStats.
func (c *Cursor) Stats() (StatsSnapshot, bool) {
	if c.stats == nil {
		return StatsSnapshot{}, false
	}
	return StatsSnapshot{
		Refills:    c.stats.refills.TotalCount(),
		RefillMean: c.stats.refills.Mean(),
		RefillP95:  c.stats.refills.ValueAtQuantile(95),
		Tokens:     c.stats.tokens.TotalCount(),
		TokenMean:  c.stats.tokens.Mean(),
		TokenP95:   c.stats.tokens.ValueAtQuantile(95),
	}, true
}
