package report

import "fmt"

// Buffer is an append-only byte buffer with a hard size limit.
// Once a write would cross the limit the buffer is marked as overflowed
// and every later write is refused.
type Buffer struct {
	buf      []byte
	limit    int
	overflow bool
}

// NewBuffer creates a buffer holding at most limit bytes.
// A non-positive limit selects DefaultLimit.
func NewBuffer(limit int) *Buffer {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Buffer{limit: limit}
}

// Write appends p, or fails with ErrReportTooLarge without writing anything
func (b *Buffer) Write(p []byte) (int, error) {
	if b.overflow || len(b.buf)+len(p) > b.limit {
		b.overflow = true
		return 0, ErrReportTooLarge
	}
	b.buf = append(b.buf, p...)
	return len(p), nil
}

// Printf appends a formatted line. Overflow is reported by Bytes.
func (b *Buffer) Printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(b, format, args...)
}

// Bytes returns the accumulated content, or ErrReportTooLarge if any write overflowed
func (b *Buffer) Bytes() ([]byte, error) {
	if b.overflow {
		return nil, fmt.Errorf("%w (limit %d bytes)", ErrReportTooLarge, b.limit)
	}
	return b.buf, nil
}

func (b *Buffer) Len() int {
	return len(b.buf)
}

func (b *Buffer) Limit() int {
	return b.limit
}

// Reset drops the content and the overflow mark, releasing the backing array
func (b *Buffer) Reset() {
	b.buf = nil
	b.overflow = false
}
