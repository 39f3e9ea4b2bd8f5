package buffer

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

// Load reads r line by line and appends every line to the buffer.
// Trailing "\n" and "\r" bytes are stripped from each line, so CRLF files
// load as plain lines. A final line without a terminator is kept.
func (b *Buffer) Load(r io.Reader) error {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadBytes('\n')
		if len(line) > 0 {
			b.AppendLine(bytes.TrimRight(line, "\r\n"))
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading line %d: %w", len(b.lines)+1, err)
		}
	}
}

// NewFromReader creates a buffer loaded from r.
func NewFromReader(r io.Reader, opts ...Option) (*Buffer, error) {
	b := New(opts...)
	if err := b.Load(r); err != nil {
		return nil, err
	}
	return b, nil
}

// Size returns the length of the serialized form in bytes.
func (b *Buffer) Size() int {
	n := 0
	for _, l := range b.lines {
		n += l.Len() + 1
	}
	return n
}

// Serialize concatenates every line followed by a single "\n", including
// the last line.
func (b *Buffer) Serialize() []byte {
	out := make([]byte, 0, b.Size())
	for _, l := range b.lines {
		out = append(out, l.chars...)
		out = append(out, '\n')
	}
	return out
}

// WriteTo writes the serialized buffer to w.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.Serialize())
	return int64(n), err
}
