package dynstr

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestWriteTo(t *testing.T) {
	tests := []struct {
		name string
		s    String
	}{
		{"empty", New()},
		{"inline", FromString("short text")},
		{"single window", FromString(strings.Repeat("window ", 5))},
		{"concatenated", FromString(strings.Repeat("left ", 4)).Concat(FromString(strings.Repeat("right ", 4)))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			n, err := tt.s.WriteTo(&buf)
			if err != nil {
				t.Fatalf("WriteTo: %v", err)
			}
			if n != int64(tt.s.Len()) {
				t.Errorf("wrote %d bytes, want %d", n, tt.s.Len())
			}
			if buf.String() != tt.s.String() {
				t.Errorf("got %q, want %q", buf.String(), tt.s.String())
			}
		})
	}
}

type failingWriter struct {
	allow int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.allow <= 0 {
		return 0, errors.New("write refused")
	}
	w.allow--
	return len(p), nil
}

func TestWriteToError(t *testing.T) {
	s := FromString(strings.Repeat("a", 20)).Concat(FromString(strings.Repeat("b", 20)))
	w := &failingWriter{allow: 1}
	n, err := s.WriteTo(w)
	if err == nil {
		t.Fatal("expected write error")
	}
	if n != 20 {
		t.Errorf("reported %d bytes before failure, want 20", n)
	}
}

func TestReader(t *testing.T) {
	text := strings.Repeat("streamed content ", 8)
	s := FromString(text[:40]).Concat(FromString(text[40:]))
	got, err := io.ReadAll(NewReader(s))
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(got) != text {
		t.Errorf("got %q, want %q", got, text)
	}
}

func TestReaderSmallBuffer(t *testing.T) {
	text := strings.Repeat("piecewise reads ", 4)
	r := NewReader(FromString(text))
	var out []byte
	p := make([]byte, 7)
	for {
		n, err := r.Read(p)
		out = append(out, p[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Read: %v", err)
		}
	}
	if string(out) != text {
		t.Errorf("got %q, want %q", out, text)
	}
}

func TestReaderByte(t *testing.T) {
	text := strings.Repeat("x", 16) + strings.Repeat("y", 16)
	r := NewReader(FromString(text[:16]).Concat(FromString(text[16:])))
	for i := 0; i < len(text); i++ {
		b, err := r.ReadByte()
		if err != nil {
			t.Fatalf("ReadByte at %d: %v", i, err)
		}
		if b != text[i] {
			t.Errorf("byte %d = %q, want %q", i, b, text[i])
		}
	}
	if _, err := r.ReadByte(); err != io.EOF {
		t.Errorf("expected io.EOF after end, got %v", err)
	}
}

func TestReaderInline(t *testing.T) {
	got, err := io.ReadAll(NewReader(FromString("inline")))
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(got) != "inline" {
		t.Errorf("got %q", got)
	}
}

func TestReaderEmpty(t *testing.T) {
	r := NewReader(New())
	if n, err := r.Read(make([]byte, 8)); n != 0 || err != io.EOF {
		t.Errorf("Read on empty = %d, %v, want 0, io.EOF", n, err)
	}
}

func TestReaderWriteTo(t *testing.T) {
	text := strings.Repeat("drained ", 6)
	r := NewReader(FromString(text))

	// Consume a few bytes first; WriteTo drains the rest.
	p := make([]byte, 5)
	if _, err := io.ReadFull(r, p); err != nil {
		t.Fatalf("ReadFull: %v", err)
	}
	var buf bytes.Buffer
	n, err := r.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if want := int64(len(text) - 5); n != want {
		t.Errorf("drained %d bytes, want %d", n, want)
	}
	if buf.String() != text[5:] {
		t.Errorf("got %q, want %q", buf.String(), text[5:])
	}
}

func TestReaderReset(t *testing.T) {
	text := strings.Repeat("again ", 5)
	r := NewReader(FromString(text))
	first, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("first ReadAll: %v", err)
	}
	r.Reset()
	second, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("second ReadAll: %v", err)
	}
	if string(first) != text || string(second) != text {
		t.Errorf("reads = %q, %q, want %q", first, second, text)
	}
}

func TestReaderCopy(t *testing.T) {
	// io.Copy picks up the WriterTo fast path.
	text := strings.Repeat("copied without a scratch buffer ", 4)
	var buf bytes.Buffer
	n, err := io.Copy(&buf, NewReader(FromString(text)))
	if err != nil {
		t.Fatalf("Copy: %v", err)
	}
	if n != int64(len(text)) || buf.String() != text {
		t.Errorf("copied %d bytes, got %q", n, buf.String())
	}
}
