package dynstr

import "unicode/utf8"

// LeafIterator walks the retained buffer windows of a value in order.
// Inline values yield a single window holding their content.
type LeafIterator struct {
	src        String
	stack      []*node
	span       string
	pos        int
	inlineNext bool
}

// Leaves returns an iterator over the buffer windows of s.
func (s String) Leaves() *LeafIterator {
	it := &LeafIterator{src: s}
	it.Reset()
	return it
}

// Reset restarts the iteration from the beginning.
func (it *LeafIterator) Reset() {
	it.stack = it.stack[:0]
	it.span = ""
	it.pos = 0
	it.inlineNext = false
	if it.src.root != nil {
		if it.stack == nil {
			it.stack = make([]*node, 0, 16)
		}
		it.stack = append(it.stack, it.src.root)
	} else if it.src.n > 0 {
		it.inlineNext = true
	}
}

// Next advances to the next window.
// Returns true if there is one, false when iteration is complete.
func (it *LeafIterator) Next() bool {
	it.pos += len(it.span)
	it.span = ""
	if it.inlineNext {
		it.inlineNext = false
		it.span = string(it.src.buf[:it.src.n])
		return true
	}
	for len(it.stack) > 0 {
		top := len(it.stack) - 1
		n := it.stack[top]
		it.stack = it.stack[:top]
		if n.isLeaf() {
			it.span = n.text
			return true
		}
		it.stack = append(it.stack, n.right, n.left)
	}
	return false
}

// Text returns the current window.
func (it *LeafIterator) Text() string {
	return it.span
}

// Offset returns the byte offset of the start of the current window.
func (it *LeafIterator) Offset() int {
	return it.pos
}

// RuneIterator iterates over the runes of a value, decoding UTF-8 sequences
// that span window boundaries. Invalid bytes yield utf8.RuneError with size
// one, matching a range loop over a Go string.
type RuneIterator struct {
	leaves *LeafIterator
	span   string
	win    [utf8.UTFMax]byte // stitch buffer for boundary-straddling runes
	winLen int
	r      rune
	size   int
	pos    int
}

// Runes returns an iterator over the runes of s.
func (s String) Runes() *RuneIterator {
	return &RuneIterator{leaves: s.Leaves()}
}

// Reset restarts the iteration from the beginning.
func (it *RuneIterator) Reset() {
	it.leaves.Reset()
	it.span = ""
	it.winLen = 0
	it.r = 0
	it.size = 0
	it.pos = 0
}

// Next advances to the next rune.
// Returns true if there is one, false when iteration is complete.
func (it *RuneIterator) Next() bool {
	it.pos += it.size
	it.size = 0

	if it.winLen == 0 {
		for len(it.span) == 0 {
			if !it.leaves.Next() {
				return false
			}
			it.span = it.leaves.Text()
		}
		// Fast path: the rune is wholly inside the current window.
		if utf8.FullRuneInString(it.span) {
			it.r, it.size = utf8.DecodeRuneInString(it.span)
			it.span = it.span[it.size:]
			return true
		}
	}

	// Assemble up to UTFMax bytes across window boundaries.
	for it.winLen < utf8.UTFMax && !utf8.FullRune(it.win[:it.winLen]) {
		if len(it.span) == 0 {
			if !it.leaves.Next() {
				break
			}
			it.span = it.leaves.Text()
			continue
		}
		it.win[it.winLen] = it.span[0]
		it.span = it.span[1:]
		it.winLen++
	}
	if it.winLen == 0 {
		return false
	}
	it.r, it.size = utf8.DecodeRune(it.win[:it.winLen])
	copy(it.win[:], it.win[it.size:it.winLen])
	it.winLen -= it.size
	return true
}

// Rune returns the current rune.
func (it *RuneIterator) Rune() rune {
	return it.r
}

// Size returns the byte size of the current rune.
func (it *RuneIterator) Size() int {
	return it.size
}

// Offset returns the byte offset of the current rune.
func (it *RuneIterator) Offset() int {
	return it.pos
}

// RuneCount returns the number of runes in s. Runes split across window
// boundaries are counted once; invalid bytes count one rune each.
func (s String) RuneCount() int {
	count := 0
	for it := s.Runes(); it.Next(); {
		count++
	}
	return count
}
