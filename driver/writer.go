package driver

import (
	"bufio"
	"io"
	"strconv"
)

// LineWriter formats (n, steps) records as "<n>: <steps>\n".
type LineWriter struct {
	w   *bufio.Writer
	buf []byte
}

// NewLineWriter buffers records in front of w. Call Flush when done.
func NewLineWriter(w io.Writer) *LineWriter {
	return &LineWriter{
		w:   bufio.NewWriterSize(w, 1<<16),
		buf: make([]byte, 0, 48),
	}
}

// WriteRecord writes "<n>: <steps>\n".
func (lw *LineWriter) WriteRecord(n int64, steps int) error {
	b := strconv.AppendInt(lw.buf[:0], n, 10)
	b = append(b, ':', ' ')
	b = strconv.AppendInt(b, int64(steps), 10)
	b = append(b, '\n')
	lw.buf = b
	_, err := lw.w.Write(b)
	return err
}

// Flush writes any buffered records to the underlying writer.
func (lw *LineWriter) Flush() error {
	return lw.w.Flush()
}
