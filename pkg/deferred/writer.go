// Package deferred holds terminal output back while a full-screen program
// owns the screen.
package deferred

import (
	"bytes"
	"io"
	"sync"
)

// Writer buffers all writes in memory until Flush is called. Safe for
// concurrent use.
type Writer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (d *Writer) Write(p []byte) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.buf.Write(p)
}

// Len reports the number of buffered bytes.
func (d *Writer) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.buf.Len()
}

// Flush writes all buffered data to w and clears the buffer.
func (d *Writer) Flush(w io.Writer) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.buf.Len() == 0 {
		return nil
	}

	_, err := d.buf.WriteTo(w)
	return err
}
