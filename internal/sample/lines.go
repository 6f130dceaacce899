package sample

import (
	"bufio"
	"io"
	"strings"
)

// Lines returns an Iterator over r's lines with their trailing "\n" removed.
// A "\r" before the newline is kept; line content is not interpreted. A final
// line without a newline is yielded too. Check Err after the stream ends.
func Lines(r io.Reader) *LineIterator {
	return &LineIterator{r: bufio.NewReader(r)}
}

// LineIterator yields lines of unbounded length from a reader.
type LineIterator struct {
	r    *bufio.Reader
	line string
	err  error
}

func (l *LineIterator) Next() bool {
	if l.err != nil {
		return false
	}
	line, err := l.r.ReadString('\n')
	if err != nil && err != io.EOF {
		l.err = err
		return false
	}
	if line == "" {
		return false
	}
	l.line = strings.TrimSuffix(line, "\n")
	return true
}

func (l *LineIterator) Value() string { return l.line }

// Err reports the first read error, if any. Reaching the end of the stream is
// not an error.
func (l *LineIterator) Err() error { return l.err }
