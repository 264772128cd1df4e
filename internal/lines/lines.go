// Package lines reads text input one line at a time.
package lines

import (
	"bufio"
	"errors"
	"io"
	"os"
)

const readBufferSize = 64 * 1024

// Reader splits input on '\n' and strips the terminator. Unlike
// bufio.Scanner it has no line length limit, which matters for logs with
// very long lines; a '\r' before the newline is kept as part of the line.
type Reader struct {
	r     *bufio.Reader
	line  string
	err   error
	done  bool
	count int
}

// NewReader returns a Reader over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReaderSize(r, readBufferSize)}
}

// Scan advances to the next line. It returns false at end of input or on
// the first read error.
func (r *Reader) Scan() bool {
	if r.done {
		return false
	}
	s, err := r.r.ReadString('\n')
	if err != nil {
		r.done = true
		if !errors.Is(err, io.EOF) {
			r.err = err
			r.line = ""
			return false
		}
		if s == "" {
			r.line = ""
			return false
		}
		r.line = s
		r.count++
		return true
	}
	r.line = s[:len(s)-1]
	r.count++
	return true
}

// Text returns the current line.
func (r *Reader) Text() string {
	return r.line
}

// Err returns the first non-EOF read error.
func (r *Reader) Err() error {
	return r.err
}

// Count returns the number of lines read so far.
func (r *Reader) Count() int {
	return r.count
}

// Open opens path for reading. An empty path or "-" selects stdin, whose
// Close is a no-op.
func Open(path string, stdin io.Reader) (io.ReadCloser, error) {
	if IsStdio(path) {
		return io.NopCloser(stdin), nil
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return file, nil
}

// IsStdio reports whether path names a standard stream rather than a file.
func IsStdio(path string) bool {
	return path == "" || path == "-"
}
