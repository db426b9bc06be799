package dynstr

// Finder streams the match offsets of a pattern through a value using
// Knuth-Morris-Pratt, walking buffer windows without materializing the
// text. Matches may overlap. An empty pattern matches once, at offset 0.
type Finder struct {
	leaves  *LeafIterator
	span    string
	base    int // offset of the current window
	idx     int // next byte within the window
	pattern []byte
	lps     []int // longest proper prefix-suffix lengths
	matched int
	done    bool
}

// Find returns a Finder locating pattern within s.
func (s String) Find(pattern String) *Finder {
	f := &Finder{
		leaves:  s.Leaves(),
		pattern: pattern.Bytes(),
	}
	f.lps = buildLPS(f.pattern)
	return f
}

// buildLPS computes the KMP failure table: lps[i] is the length of the
// longest proper prefix of pattern[:i+1] that is also its suffix.
func buildLPS(pattern []byte) []int {
	lps := make([]int, len(pattern))
	k := 0
	for i := 1; i < len(pattern); i++ {
		for k > 0 && pattern[i] != pattern[k] {
			k = lps[k-1]
		}
		if pattern[i] == pattern[k] {
			k++
		}
		lps[i] = k
	}
	return lps
}

// Next returns the offset of the next match.
// Returns -1 and false when no further match exists.
func (f *Finder) Next() (int, bool) {
	if f.done {
		return -1, false
	}
	if len(f.pattern) == 0 {
		f.done = true
		return 0, true
	}
	for {
		if f.idx >= len(f.span) {
			if !f.leaves.Next() {
				f.done = true
				return -1, false
			}
			f.span = f.leaves.Text()
			f.base = f.leaves.Offset()
			f.idx = 0
			continue
		}
		c := f.span[f.idx]
		f.idx++
		for f.matched > 0 && c != f.pattern[f.matched] {
			f.matched = f.lps[f.matched-1]
		}
		if c == f.pattern[f.matched] {
			f.matched++
		}
		if f.matched == len(f.pattern) {
			f.matched = f.lps[f.matched-1]
			return f.base + f.idx - len(f.pattern), true
		}
	}
}

// Index returns the byte offset of the first occurrence of pattern in s,
// or -1 if pattern is not present. An empty pattern is found at 0.
func (s String) Index(pattern String) int {
	if at, ok := s.Find(pattern).Next(); ok {
		return at
	}
	return -1
}

// Contains reports whether pattern occurs in s.
func (s String) Contains(pattern String) bool {
	return s.Index(pattern) >= 0
}

// FindAll returns the offsets of every occurrence of pattern in s,
// including overlapping ones. Returns nil when there is no match.
func (s String) FindAll(pattern String) []int {
	var out []int
	f := s.Find(pattern)
	for at, ok := f.Next(); ok; at, ok = f.Next() {
		out = append(out, at)
	}
	return out
}
