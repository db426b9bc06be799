package dynstr

// Split slices s around each occurrence of sep, following the semantics of
// strings.Split: an empty s with a non-empty sep yields one empty piece, an
// empty sep splits after each rune, and both empty yields no pieces.
// Pieces share the receiver's buffers; pieces shorter than InlineThreshold
// come back inline.
func (s String) Split(sep String) []String {
	return s.SplitN(sep, -1)
}

// SplitN is Split with a piece limit, following strings.SplitN:
// n > 0 yields at most n pieces, the last holding the unsplit remainder;
// n == 0 yields nil; n < 0 yields all pieces.
func (s String) SplitN(sep String, n int) []String {
	if n == 0 {
		return nil
	}
	if sep.Len() == 0 {
		return s.explode(n)
	}
	var out []String
	start := 0
	f := s.Find(sep)
	for n < 0 || len(out) < n-1 {
		at, ok := f.Next()
		if !ok {
			break
		}
		if at < start {
			// Overlapping occurrence inside the previous separator.
			continue
		}
		piece, _ := s.Slice(start, at)
		out = append(out, piece)
		start = at + sep.Len()
	}
	rest, _ := s.Slice(start, s.Len())
	return append(out, rest)
}

// explode splits s after each rune, strings.Split style: n-1 single-rune
// pieces with the remainder in the last piece.
func (s String) explode(n int) []String {
	count := s.RuneCount()
	if n < 0 || n > count {
		n = count
	}
	out := make([]String, 0, n)
	at := 0
	it := s.Runes()
	for i := 0; i < n-1; i++ {
		it.Next()
		next := at + it.Size()
		piece, _ := s.Slice(at, next)
		out = append(out, piece)
		at = next
	}
	if n > 0 {
		piece, _ := s.Slice(at, s.Len())
		out = append(out, piece)
	}
	return out
}
