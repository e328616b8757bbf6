// Package code assembles generated source text from ordered segments. The
// chunk serializer concatenates the resulting blobs into the final output
// file, so segment order is significant and preserved exactly.
package code

import "bytes"

// Code is an immutable, fully assembled source blob.
type Code struct {
	source []byte
}

// Source returns the raw source bytes. The slice must not be modified.
func (c *Code) Source() []byte {
	return c.source
}

func (c *Code) String() string {
	return string(c.source)
}

// Size returns the blob length in bytes.
func (c *Code) Size() int {
	return len(c.source)
}

// Builder accumulates source segments in push order.
type Builder struct {
	buf bytes.Buffer
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Push appends a raw segment, ensuring it ends with a newline so adjacent
// segments never run together into one line.
func (b *Builder) Push(segment []byte) {
	b.buf.Write(segment)
	if n := len(segment); n > 0 && segment[n-1] != '\n' {
		b.buf.WriteByte('\n')
	}
}

// PushString appends a string segment.
func (b *Builder) PushString(segment string) {
	b.Push([]byte(segment))
}

// PushCode appends a previously built blob.
func (b *Builder) PushCode(c *Code) {
	b.Push(c.source)
}

// Build seals the accumulated segments into a Code blob. The builder must
// not be reused afterwards.
func (b *Builder) Build() *Code {
	return &Code{source: b.buf.Bytes()}
}
