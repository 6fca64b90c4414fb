package bytecursor

import "go.uber.org/zap"

func (c *Cursor) available() int { return c.head - c.tail }

// consume advances past n resident bytes. Bounds are checked by the callers.
func (c *Cursor) consume(n int) {
	c.tail += n
	c.pos += int64(n)
}

// compact copies the unconsumed window down to offset 0, making room at the
// top for a refill. Bytes before tail are discarded, which is what bounds
// backward seeking.
func (c *Cursor) compact() {
	if c.tail == 0 {
		return
	}
	copy(c.buf, c.buf[c.tail:c.head])
	c.head -= c.tail
	c.tail = 0
}

// fill refills the buffer from the source until at least min bytes are
// resident, the buffer is full, or the source is exhausted. It is a no-op in
// memory mode.
func (c *Cursor) fill(min int) error {
	if c.src == nil || c.src.exhausted || c.available() >= min {
		return nil
	}

	c.compact()
	for c.available() < min && c.head < len(c.buf) && !c.src.exhausted {
		n, err := c.src.read(c.buf[c.head:])
		if err != nil {
			return err
		}
		c.head += n
		if n > 0 {
			c.stats.recordRefill(n)
			if logging {
				logger.Debug("refilled buffer from source",
					zap.Int("read", n),
					zap.Int("available", c.available()),
					zap.Int64("position", c.pos),
				)
			}
		}
	}
	return nil
}

// ensureAvailable guarantees at least n bytes are resident starting at tail.
// Requests above the threshold are a caller programming error; requests the
// exhausted source cannot satisfy report ErrEndOfStream.
func (c *Cursor) ensureAvailable(n int) error {
	if n > c.threshold {
		return &CapacityError{Requested: n, Threshold: c.threshold}
	}
	if c.available() >= n {
		return nil
	}
	if err := c.fill(n); err != nil {
		return err
	}
	if c.available() < n {
		return ErrEndOfStream
	}
	return nil
}

// window returns the resident byte window after ensuring n bytes, without
// consuming anything.
func (c *Cursor) window(n int) ([]byte, error) {
	if c.disposed {
		return nil, ErrDisposed
	}
	if err := c.ensureAvailable(n); err != nil {
		return nil, err
	}
	return c.buf[c.tail:c.head], nil
}
