package dynstr

import (
	"bytes"
	"strings"
)

// Equal reports whether s and other hold the same bytes. Equality is
// content-based: values compare equal regardless of how their trees are
// shaped, without materializing either side.
func (s String) Equal(other String) bool {
	if s.Len() != other.Len() {
		return false
	}
	return Compare(s, other) == 0
}

// Compare orders a and b lexicographically by byte.
// The result is -1 if a < b, 0 if a == b, and +1 if a > b.
func Compare(a, b String) int {
	if a.root == nil && b.root == nil {
		return bytes.Compare(a.buf[:a.n], b.buf[:b.n])
	}

	// Walk both windows streams, comparing the shared prefix of the two
	// current windows and carrying the remainders forward.
	ia, ib := a.Leaves(), b.Leaves()
	var sa, sb string
	for {
		for len(sa) == 0 {
			if !ia.Next() {
				if len(sb) > 0 || ib.Next() {
					return -1
				}
				return 0
			}
			sa = ia.Text()
		}
		for len(sb) == 0 {
			if !ib.Next() {
				return 1
			}
			sb = ib.Text()
		}
		k := len(sa)
		if len(sb) < k {
			k = len(sb)
		}
		if c := strings.Compare(sa[:k], sb[:k]); c != 0 {
			return c
		}
		sa, sb = sa[k:], sb[k:]
	}
}

// FNV-1a parameters (64-bit).
const (
	fnvOffset64 = 14695981039346656037
	fnvPrime64  = 1099511628211
)

// Hash returns a 64-bit FNV-1a digest of the content. Values that are Equal
// hash identically whatever their representation.
func (s String) Hash() uint64 {
	h := uint64(fnvOffset64)
	if s.root == nil {
		for _, b := range s.buf[:s.n] {
			h ^= uint64(b)
			h *= fnvPrime64
		}
		return h
	}
	it := s.Leaves()
	for it.Next() {
		t := it.Text()
		for i := 0; i < len(t); i++ {
			h ^= uint64(t[i])
			h *= fnvPrime64
		}
	}
	return h
}
