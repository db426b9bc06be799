package dynstr

import "github.com/rivo/uniseg"

// GraphemeIterator steps over user-perceived characters (extended grapheme
// clusters). Cluster boundaries depend on context that may span buffer
// windows, so the iterator materializes the value once up front.
type GraphemeIterator struct {
	g *uniseg.Graphemes
}

// Graphemes returns a grapheme cluster iterator over s.
func (s String) Graphemes() *GraphemeIterator {
	return &GraphemeIterator{g: uniseg.NewGraphemes(s.String())}
}

// Next advances to the next cluster.
// Returns true if there is one, false when iteration is complete.
func (it *GraphemeIterator) Next() bool {
	return it.g.Next()
}

// Text returns the current cluster.
func (it *GraphemeIterator) Text() string {
	return it.g.Str()
}

// Runes returns the runes of the current cluster.
func (it *GraphemeIterator) Runes() []rune {
	return it.g.Runes()
}

// Positions returns the byte range [from, to) of the current cluster.
func (it *GraphemeIterator) Positions() (int, int) {
	return it.g.Positions()
}

// Reset restarts the iteration from the beginning.
func (it *GraphemeIterator) Reset() {
	it.g.Reset()
}

// GraphemeCount returns the number of extended grapheme clusters in s.
func (s String) GraphemeCount() int {
	return uniseg.GraphemeClusterCount(s.String())
}
