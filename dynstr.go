package dynstr

import "strings"

// InlineThreshold is the byte length at which values switch from the inline
// representation to the shared tree. Content shorter than the threshold is
// always stored inline, no matter which operation produced it; content at or
// above it always references shared buffers.
const InlineThreshold = 16

// String is an immutable string value optimized for concatenation and
// slicing. Operations return new values; the receiver is never modified,
// which makes every value safe for concurrent readers.
//
// Short content lives directly inside the value. Longer content is held as
// a tree of windows into shared buffers, so copies of a String are cheap
// and concatenations reference their operands instead of copying them.
//
// The zero value is the empty string and is ready to use.
type String struct {
	buf  [InlineThreshold]byte // inline storage, valid when root == nil
	n    uint8                 // inline length, always < InlineThreshold
	root *node                 // shared tree, nil for inline values
}

// New creates an empty value. Equivalent to the zero String.
func New() String {
	return String{}
}

// FromString creates a value from a string. The string's backing bytes are
// shared, not copied; Go strings are immutable, so sharing is safe.
func FromString(s string) String {
	if len(s) < InlineThreshold {
		var v String
		v.n = uint8(copy(v.buf[:], s))
		return v
	}
	return String{root: newLeaf(s)}
}

// FromBytes creates a value from a byte slice. The bytes are copied, since
// the caller remains free to modify the slice afterwards.
func FromBytes(b []byte) String {
	if len(b) < InlineThreshold {
		var v String
		v.n = uint8(copy(v.buf[:], b))
		return v
	}
	return String{root: newLeaf(string(b))}
}

// fromNode is the single chokepoint through which every tree-producing
// operation returns. Content below InlineThreshold collapses to the inline
// form regardless of the shape that produced it; everything else keeps the
// tree.
func fromNode(root *node) String {
	if root == nil || root.length == 0 {
		return String{}
	}
	if root.length < InlineThreshold {
		var v String
		b := appendNode(v.buf[:0], root)
		v.n = uint8(len(b))
		return v
	}
	return String{root: root}
}

// node returns the tree form of s. Inline content is promoted to a fresh
// leaf with its own buffer; tree content is returned as-is.
func (s String) node() *node {
	if s.root != nil {
		return s.root
	}
	if s.n == 0 {
		return nil
	}
	return newLeaf(string(s.buf[:s.n]))
}

// isInline reports whether s uses the inline representation.
func (s String) isInline() bool {
	return s.root == nil
}

// Len returns the byte length. O(1) for both representations.
func (s String) Len() int {
	if s.root != nil {
		return s.root.length
	}
	return int(s.n)
}

// IsEmpty returns true if the value contains no bytes.
func (s String) IsEmpty() bool {
	return s.Len() == 0
}

// Concat returns s followed by each of the given values in order. Operands
// are shared, never copied, except that inline content joining a tree is
// promoted to a leaf with its own buffer. Concatenating with an empty value
// returns the other operand unchanged.
func (s String) Concat(others ...String) String {
	out := s
	for _, v := range others {
		out = out.concat(v)
	}
	return out
}

func (s String) concat(other String) String {
	if s.Len() == 0 {
		return other
	}
	if other.Len() == 0 {
		return s
	}
	if s.root == nil && other.root == nil {
		if total := int(s.n) + int(other.n); total < InlineThreshold {
			var out String
			out.n = uint8(total)
			copy(out.buf[:], s.buf[:s.n])
			copy(out.buf[s.n:], other.buf[:other.n])
			return out
		}
	}
	return fromNode(joinNodes(s.node(), other.node()))
}

// Slice returns the bytes in the half-open range [start, end). The bounds
// must satisfy 0 <= start <= end <= Len(); anything else reports a
// *RangeError, and bounds are never clamped.
//
// A full-range slice returns s itself. Results at or above InlineThreshold
// share the receiver's buffers: covered subtrees are reused and partially
// covered leaves are re-windowed without copying bytes. Shorter results are
// copied into the inline form.
func (s String) Slice(start, end int) (String, error) {
	if start < 0 || start > end || end > s.Len() {
		return String{}, &RangeError{Start: start, End: end, Len: s.Len()}
	}
	switch {
	case start == 0 && end == s.Len():
		return s, nil
	case start == end:
		return String{}, nil
	}
	if s.root == nil {
		var out String
		out.n = uint8(copy(out.buf[:], s.buf[start:end]))
		return out, nil
	}
	return fromNode(narrow(s.root, start, end)), nil
}

// ByteAt returns the byte at the given offset.
// Returns 0 and false if the offset is out of range.
func (s String) ByteAt(offset int) (byte, bool) {
	if offset < 0 || offset >= s.Len() {
		return 0, false
	}
	if s.root == nil {
		return s.buf[offset], true
	}
	n := s.root
	for !n.isLeaf() {
		if leftLen := n.left.length; offset < leftLen {
			n = n.left
		} else {
			offset -= leftLen
			n = n.right
		}
	}
	return n.text[offset], true
}

// String returns the full content as a string.
// Use sparingly for large values.
func (s String) String() string {
	if s.root == nil {
		return string(s.buf[:s.n])
	}
	var sb strings.Builder
	sb.Grow(s.root.length)
	it := s.Leaves()
	for it.Next() {
		sb.WriteString(it.Text())
	}
	return sb.String()
}

// Bytes returns a fresh copy of the content.
// Mutating the result does not affect s.
func (s String) Bytes() []byte {
	return s.AppendTo(make([]byte, 0, s.Len()))
}

// AppendTo appends the content to dst and returns the extended slice.
func (s String) AppendTo(dst []byte) []byte {
	if s.root == nil {
		return append(dst, s.buf[:s.n]...)
	}
	return appendNode(dst, s.root)
}

// Depth returns the height of the share tree. Inline values have depth 0.
// Useful for debugging and testing structure reuse.
func (s String) Depth() int {
	return nodeDepth(s.root)
}

// LeafCount returns the number of retained buffer windows.
// Inline values have no windows. Useful for debugging.
func (s String) LeafCount() int {
	return nodeLeafCount(s.root)
}
