package dynstr

import (
	"bytes"
	"strings"
	"testing"
)

func TestLeafIterator(t *testing.T) {
	left := FromString(strings.Repeat("a", 20))
	right := FromString(strings.Repeat("b", 30))
	s := left.Concat(right)

	it := s.Leaves()
	var got []string
	var offsets []int
	for it.Next() {
		got = append(got, it.Text())
		offsets = append(offsets, it.Offset())
	}

	if len(got) != 2 {
		t.Fatalf("got %d windows, want 2", len(got))
	}
	if got[0] != strings.Repeat("a", 20) || got[1] != strings.Repeat("b", 30) {
		t.Errorf("windows = %q", got)
	}
	if offsets[0] != 0 || offsets[1] != 20 {
		t.Errorf("offsets = %v, want [0 20]", offsets)
	}
	if it.Next() {
		t.Error("exhausted iterator should keep returning false")
	}
}

func TestLeafIteratorInline(t *testing.T) {
	it := FromString("small").Leaves()
	if !it.Next() {
		t.Fatal("inline value should yield one window")
	}
	if it.Text() != "small" || it.Offset() != 0 {
		t.Errorf("window = %q at %d", it.Text(), it.Offset())
	}
	if it.Next() {
		t.Error("inline value should yield exactly one window")
	}
}

func TestLeafIteratorEmpty(t *testing.T) {
	if New().Leaves().Next() {
		t.Error("empty value should yield no windows")
	}
}

func TestLeafIteratorReset(t *testing.T) {
	s := FromString(strings.Repeat("m", 20)).Concat(FromString(strings.Repeat("n", 20)))
	it := s.Leaves()
	first := 0
	for it.Next() {
		first++
	}
	it.Reset()
	second := 0
	for it.Next() {
		second++
	}
	if first != 2 || second != 2 {
		t.Errorf("window counts after reset: %d then %d, want 2 and 2", first, second)
	}
}

func TestRuneIterator(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"ascii", "hello world"},
		{"accented", "héllo wörld"},
		{"cjk", "日本語のテキスト"},
		{"emoji", "emoji 🎉 test"},
		{"mixed long", strings.Repeat("ab日", 40)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := FromString(tt.text)
			var runes []rune
			var offsets []int
			for it := s.Runes(); it.Next(); {
				runes = append(runes, it.Rune())
				offsets = append(offsets, it.Offset())
			}

			want := []rune(tt.text)
			if len(runes) != len(want) {
				t.Fatalf("got %d runes, want %d", len(runes), len(want))
			}
			wantOff := 0
			for i := range want {
				if runes[i] != want[i] {
					t.Errorf("rune %d = %c, want %c", i, runes[i], want[i])
				}
				if offsets[i] != wantOff {
					t.Errorf("offset %d = %d, want %d", i, offsets[i], wantOff)
				}
				wantOff += len(string(want[i]))
			}
		})
	}
}

func TestRuneIteratorAcrossWindows(t *testing.T) {
	// Force a multi-byte sequence to straddle two windows: the first ends
	// with the lead byte of U+4E16, the second starts with its continuation
	// bytes.
	head := FromBytes(append(bytes.Repeat([]byte{'a'}, 15), 0xE4))
	tail := FromBytes(append([]byte{0xB8, 0x96}, bytes.Repeat([]byte{'b'}, 14)...))
	if head.isInline() || tail.isInline() {
		t.Fatal("setup: operands must be shared so the boundary survives")
	}
	s := head.Concat(tail)

	var runes []rune
	for it := s.Runes(); it.Next(); {
		runes = append(runes, it.Rune())
	}

	want := []rune(strings.Repeat("a", 15) + "世" + strings.Repeat("b", 14))
	if len(runes) != len(want) {
		t.Fatalf("got %d runes, want %d", len(runes), len(want))
	}
	if runes[15] != '世' {
		t.Errorf("straddling rune = %q, want 世", runes[15])
	}
	for i, r := range want {
		if runes[i] != r {
			t.Errorf("rune %d = %q, want %q", i, runes[i], r)
		}
	}
}

func TestRuneIteratorInvalidBytes(t *testing.T) {
	// Invalid bytes decode as one replacement rune each, like a range loop
	// over the equivalent Go string.
	raw := append([]byte("ok"), 0xFF, 0xFE)
	raw = append(raw, []byte(" after")...)
	s := FromBytes(raw)

	var got []rune
	for it := s.Runes(); it.Next(); {
		got = append(got, it.Rune())
	}
	var want []rune
	for _, r := range string(raw) {
		want = append(want, r)
	}
	if len(got) != len(want) {
		t.Fatalf("got %d runes, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("rune %d = %U, want %U", i, got[i], want[i])
		}
	}
}

func TestRuneIteratorReset(t *testing.T) {
	s := FromString("résumé")
	it := s.Runes()
	for it.Next() {
	}
	it.Reset()
	var got []rune
	for it.Next() {
		got = append(got, it.Rune())
	}
	if string(got) != "résumé" {
		t.Errorf("after reset got %q", string(got))
	}
}

func TestRuneCount(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"日本語", 3},
		{strings.Repeat("ab日", 50), 150},
	}
	for _, tt := range tests {
		if got := FromString(tt.text).RuneCount(); got != tt.want {
			t.Errorf("RuneCount(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestRuneCountAcrossWindows(t *testing.T) {
	head := FromBytes(append(bytes.Repeat([]byte{'x'}, 15), 0xF0))
	tail := FromBytes(append([]byte{0x9F, 0x8E, 0x89}, bytes.Repeat([]byte{'y'}, 13)...))
	s := head.Concat(tail)
	// 15 ASCII + one emoji + 13 ASCII.
	if got := s.RuneCount(); got != 29 {
		t.Errorf("RuneCount = %d, want 29", got)
	}
}
