package dynstr

import (
	"io"
	"unicode/utf8"
)

// builderSpanSize is the leaf size Builder cuts buffered writes at.
// Larger writes become leaves of their own without rebuffering.
const builderSpanSize = 4096

// Builder assembles a value incrementally. Small writes are buffered and
// cut into leaves at builderSpanSize; Build folds the leaves into a
// balanced tree in one pass, avoiding the deep spines that repeated Concat
// calls would produce.
//
// The zero value is ready to use.
type Builder struct {
	parts []*node
	buf   []byte
	total int
}

// NewBuilder creates a builder with preallocated span storage.
func NewBuilder() *Builder {
	return &Builder{parts: make([]*node, 0, 16)}
}

// WriteString appends a string. Strings at least builderSpanSize long are
// retained as shared windows without copying. Implements io.StringWriter.
func (b *Builder) WriteString(s string) (int, error) {
	if len(s) == 0 {
		return 0, nil
	}
	b.total += len(s)
	if len(b.buf) == 0 && len(s) >= builderSpanSize {
		b.parts = append(b.parts, newLeaf(s))
		return len(s), nil
	}
	b.buf = append(b.buf, s...)
	if len(b.buf) >= builderSpanSize {
		b.flush()
	}
	return len(s), nil
}

// Write appends bytes, copying them. Implements io.Writer.
func (b *Builder) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	b.total += len(p)
	b.buf = append(b.buf, p...)
	if len(b.buf) >= builderSpanSize {
		b.flush()
	}
	return len(p), nil
}

// WriteByte appends a single byte.
func (b *Builder) WriteByte(c byte) error {
	b.total++
	b.buf = append(b.buf, c)
	if len(b.buf) >= builderSpanSize {
		b.flush()
	}
	return nil
}

// WriteRune appends the UTF-8 encoding of r.
func (b *Builder) WriteRune(r rune) (int, error) {
	before := len(b.buf)
	b.buf = utf8.AppendRune(b.buf, r)
	n := len(b.buf) - before
	b.total += n
	if len(b.buf) >= builderSpanSize {
		b.flush()
	}
	return n, nil
}

// ReadFrom appends everything read from r. Implements io.ReaderFrom.
func (b *Builder) ReadFrom(r io.Reader) (int64, error) {
	buf := make([]byte, 64*1024) // 64KB read buffer
	var total int64
	for {
		n, err := r.Read(buf)
		if n > 0 {
			total += int64(n)
			_, _ = b.Write(buf[:n])
		}
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}

// flush converts the buffered bytes into a leaf.
func (b *Builder) flush() {
	if len(b.buf) == 0 {
		return
	}
	b.parts = append(b.parts, newLeaf(string(b.buf)))
	b.buf = b.buf[:0]
}

// Len returns the total number of bytes written.
func (b *Builder) Len() int {
	return b.total
}

// Reset clears the builder for reuse.
func (b *Builder) Reset() {
	b.parts = nil
	b.buf = b.buf[:0]
	b.total = 0
}

// Build creates the value from the accumulated data.
// After calling Build, the builder is reset.
func (b *Builder) Build() String {
	b.flush()
	out := fromNode(foldNodes(b.parts))
	b.Reset()
	return out
}

// String returns the accumulated text.
// Primarily for debugging; prefer Build for creating values.
func (b *Builder) String() string {
	out := make([]byte, 0, b.total)
	for _, p := range b.parts {
		out = append(out, p.text...)
	}
	out = append(out, b.buf...)
	return string(out)
}

// Join concatenates values with a separator between each pair. The result
// shares the operands' buffers, including a single tree for the separator
// reused at every joint.
func Join(values []String, sep String) String {
	switch len(values) {
	case 0:
		return String{}
	case 1:
		return values[0]
	}
	parts := make([]*node, 0, 2*len(values)-1)
	sepNode := sep.node()
	for i, v := range values {
		if i > 0 && sepNode != nil {
			parts = append(parts, sepNode)
		}
		if n := v.node(); n != nil {
			parts = append(parts, n)
		}
	}
	return fromNode(foldNodes(parts))
}

// Repeat returns v concatenated count times. The result is built by
// doubling, so it references O(log count) shared subtrees rather than
// count copies.
func Repeat(v String, count int) String {
	if count <= 0 || v.Len() == 0 {
		return String{}
	}
	if count == 1 {
		return v
	}
	var root *node
	base := v.node()
	for count > 0 {
		if count&1 == 1 {
			root = joinNodes(root, base)
		}
		count >>= 1
		if count > 0 {
			base = joinNodes(base, base)
		}
	}
	return fromNode(root)
}

// FromReader reads r to exhaustion into a value.
func FromReader(r io.Reader) (String, error) {
	var b Builder
	if _, err := b.ReadFrom(r); err != nil {
		return String{}, err
	}
	return b.Build(), nil
}
