// Package dynstr provides an immutable string value optimized for
// concatenation and slicing.
//
// A value is either stored inline in a small fixed buffer or as a binary
// tree whose leaves are windows into shared immutable buffers. Concatenation
// joins trees without copying text, and slicing re-windows leaves in place,
// so both stay cheap no matter how large the operands grow. Short results
// always collapse back to the inline form, keeping small strings free of
// pointer chasing and heap traffic.
//
// Key properties:
//   - O(1) concatenation regardless of operand size
//   - Copy-free slicing for results at or above the inline threshold
//   - Operations return new values; existing values are never modified
//   - Content-based equality, ordering, and hashing independent of shape
//   - Safe for concurrent readers without synchronization
//
// Basic usage:
//
//	s := dynstr.FromString("hello, ")
//	s = s.Concat(dynstr.FromString("world"))
//	part, err := s.Slice(7, 12)       // "world"
//	text := s.String()                // "hello, world"
//
// Iterators, finders, readers, and indexed views hold traversal state and
// are not safe for concurrent use; the values they walk are.
package dynstr
