package dynstr

import "io"

// WriteTo writes the content to w, one buffer window at a time, without
// materializing the value. Implements io.WriterTo.
func (s String) WriteTo(w io.Writer) (int64, error) {
	if s.root == nil {
		n, err := w.Write(s.buf[:s.n])
		return int64(n), err
	}
	var total int64
	it := s.Leaves()
	for it.Next() {
		n, err := io.WriteString(w, it.Text())
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Reader streams a value's bytes. It implements io.Reader, io.ByteReader,
// and io.WriterTo.
type Reader struct {
	leaves *LeafIterator
	span   string
}

// NewReader returns a reader over the content of s.
func NewReader(s String) *Reader {
	return &Reader{leaves: s.Leaves()}
}

// Read fills p from the remaining content. Implements io.Reader.
func (r *Reader) Read(p []byte) (int, error) {
	for len(r.span) == 0 {
		if !r.leaves.Next() {
			return 0, io.EOF
		}
		r.span = r.leaves.Text()
	}
	n := copy(p, r.span)
	r.span = r.span[n:]
	return n, nil
}

// ReadByte returns the next byte. Implements io.ByteReader.
func (r *Reader) ReadByte() (byte, error) {
	for len(r.span) == 0 {
		if !r.leaves.Next() {
			return 0, io.EOF
		}
		r.span = r.leaves.Text()
	}
	b := r.span[0]
	r.span = r.span[1:]
	return b, nil
}

// WriteTo drains the remaining content into w. Implements io.WriterTo.
func (r *Reader) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for {
		if len(r.span) > 0 {
			n, err := io.WriteString(w, r.span)
			total += int64(n)
			r.span = r.span[n:]
			if err != nil {
				return total, err
			}
		}
		if !r.leaves.Next() {
			return total, nil
		}
		r.span = r.leaves.Text()
	}
}

// Reset restarts the reader from the beginning of the value.
func (r *Reader) Reset() {
	r.leaves.Reset()
	r.span = ""
}
