package bytecursor

import (
	"os"

	mmap "github.com/edsrzf/mmap-go"
	"github.com/pkg/errors"
)

// FromFile memory-maps the file at path read-only and returns a memory-mode
// cursor over the mapping. Close unmaps the file. The file handle itself is
// closed immediately after mapping; the mapping keeps the data alive.
func FromFile(path string, options ...Option) (*Cursor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening file for cursor")
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, errors.Wrap(err, "stating file for cursor")
	}

	// a zero-length mapping is an error on most platforms, but an empty
	// cursor is perfectly valid
	if info.Size() == 0 {
		return FromBytes(nil, options...)
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, errors.Wrapf(err, "memory mapping %s", path)
	}

	c, err := FromBytes(m, options...)
	if err != nil {
		_ = m.Unmap()
		return nil, err
	}
	c.unmap = m.Unmap
	return c, nil
}
