package pkg

import (
	"bytes"
	"sync/atomic"
)

// DefaultStride is the nominal size of one claimed chunk.
const DefaultStride = 32 * 1024 * 1024

// Dispenser hands out disjoint, line-aligned ranges of data to any number of
// concurrent callers. The cursor only ever moves forward by one atomic add.
type Dispenser struct {
	data   []byte
	stride int64
	cursor atomic.Int64
}

func NewDispenser(data []byte, stride int) *Dispenser {
	if stride <= 0 {
		stride = DefaultStride
	}
	// Claims past the end keep adding to the cursor, so it must not overflow.
	stride = min(stride, max(len(data), 1))
	return &Dispenser{data: data, stride: int64(stride)}
}

// Claim returns the next chunk [start, end). The line that straddles a
// nominal boundary belongs to the chunk whose nominal range ends there.
// ok is false once the data is exhausted.
func (d *Dispenser) Claim() (start, end int, ok bool) {
	size := int64(len(d.data))
	nominal := d.cursor.Add(d.stride) - d.stride
	if nominal >= size {
		return 0, 0, false
	}

	s := nominal
	if s > 0 {
		s = d.lineAfter(s)
		if s >= size {
			return 0, 0, false
		}
	}

	e := size
	if nominalEnd := nominal + d.stride; nominalEnd < size {
		e = d.lineAfter(nominalEnd)
	}

	return int(s), int(e), true
}

// lineAfter returns the offset just past the first newline at or after off,
// or the data length when there is none.
func (d *Dispenser) lineAfter(off int64) int64 {
	n := bytes.IndexByte(d.data[off:], '\n')
	if n < 0 {
		return int64(len(d.data))
	}
	return off + int64(n) + 1
}
