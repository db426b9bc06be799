package dynstr

import (
	"sort"
	"unicode/utf8"
)

// Indexed is a random-access view over a value. Construction walks the tree
// once and records the absolute offset of every buffer window; lookups then
// binary-search the table instead of descending the tree, with a fast path
// for repeated access to the same window.
//
// An Indexed shares the value's buffers and stays valid forever, since
// values never change. It is not safe for concurrent use.
type Indexed struct {
	spans  []string
	starts []int // starts[i] is the offset of spans[i]; one extra entry holds the total
	last   int   // window hit by the previous lookup
}

// NewIndexed builds a random-access view over s.
func NewIndexed(s String) *Indexed {
	ix := &Indexed{}
	it := s.Leaves()
	for it.Next() {
		ix.spans = append(ix.spans, it.Text())
		ix.starts = append(ix.starts, it.Offset())
	}
	ix.starts = append(ix.starts, s.Len())
	return ix
}

// Len returns the byte length of the underlying value.
func (ix *Indexed) Len() int {
	return ix.starts[len(ix.starts)-1]
}

// locate returns the window index holding the byte at off and the offset
// within that window. Requires 0 <= off < Len().
func (ix *Indexed) locate(off int) (int, int) {
	if i := ix.last; ix.starts[i] <= off && off < ix.starts[i+1] {
		return i, off - ix.starts[i]
	}
	i := sort.Search(len(ix.spans), func(i int) bool {
		return ix.starts[i+1] > off
	})
	ix.last = i
	return i, off - ix.starts[i]
}

// Byte returns the byte at the given offset.
// Returns 0 and false if the offset is out of range.
func (ix *Indexed) Byte(off int) (byte, bool) {
	if off < 0 || off >= ix.Len() {
		return 0, false
	}
	i, rel := ix.locate(off)
	return ix.spans[i][rel], true
}

// RuneAt decodes the rune starting at the given byte offset, stitching
// sequences that continue in the following window. Returns utf8.RuneError
// and size 0 if the offset is out of range, and utf8.RuneError with size 1
// for bytes that do not start a valid sequence.
func (ix *Indexed) RuneAt(off int) (rune, int) {
	if off < 0 || off >= ix.Len() {
		return utf8.RuneError, 0
	}
	i, rel := ix.locate(off)
	rest := ix.spans[i][rel:]
	if utf8.FullRuneInString(rest) {
		return utf8.DecodeRuneInString(rest)
	}
	var win [utf8.UTFMax]byte
	k := copy(win[:], rest)
	for j := i + 1; j < len(ix.spans) && k < utf8.UTFMax; j++ {
		k += copy(win[k:], ix.spans[j])
	}
	return utf8.DecodeRune(win[:k])
}
