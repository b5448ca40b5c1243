package sink

import (
	"bytes"
	"testing"
)

func TestBuffer_AppendUTF8Raw(t *testing.T) {
	seq := func(b ...byte) []byte {
		return b
	}

	tests := []struct {
		caption string
		c       rune
		bytes   []byte
	}{
		{
			caption: "NUL is a single byte",
			c:       0x0000,
			bytes:   seq(0x00),
		},
		{
			caption: "U+007F is the last single-byte code point",
			c:       0x007F,
			bytes:   seq(0x7F),
		},
		{
			caption: "U+0080 is the first two-byte code point",
			c:       0x0080,
			bytes:   seq(0xC2, 0x80),
		},
		{
			caption: "U+07FF is the last two-byte code point",
			c:       0x07FF,
			bytes:   seq(0xDF, 0xBF),
		},
		{
			caption: "U+0800 is the first three-byte code point",
			c:       0x0800,
			bytes:   seq(0xE0, 0xA0, 0x80),
		},
		{
			caption: "U+FFFF is the last three-byte code point",
			c:       0xFFFF,
			bytes:   seq(0xEF, 0xBF, 0xBF),
		},
		{
			caption: "U+10000 is the first four-byte code point",
			c:       0x10000,
			bytes:   seq(0xF0, 0x90, 0x80, 0x80),
		},
		{
			caption: "U+10FFFF is the last four-byte code point",
			c:       0x10FFFF,
			bytes:   seq(0xF4, 0x8F, 0xBF, 0xBF),
		},
		{
			caption: "a high surrogate follows the three-byte template",
			c:       0xD800,
			bytes:   seq(0xED, 0xA0, 0x80),
		},
		{
			caption: "a low surrogate follows the three-byte template",
			c:       0xDFFF,
			bytes:   seq(0xED, 0xBF, 0xBF),
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			var b Buffer
			b.AppendUTF8Raw(tt.c)
			if !bytes.Equal(b.Bytes(), tt.bytes) {
				t.Fatalf("unexpected encoding of U+%04X: want: % X, got: % X", tt.c, tt.bytes, b.Bytes())
			}
		})
	}
}

func TestBuffer_AppendUTF8Raw_RoundTrip(t *testing.T) {
	// The raw emitter and the standard decoder must agree on all
	// non-surrogate code points.
	for c := rune(0); c <= 0x10FFFF; c++ {
		if c >= 0xD800 && c <= 0xDFFF {
			continue
		}
		var b Buffer
		b.AppendUTF8Raw(c)
		if got := []rune(string(b.Bytes())); len(got) != 1 || got[0] != c {
			t.Fatalf("U+%04X does not round-trip: got: %v", c, got)
		}
	}
}

func TestBuffer_AppendByte(t *testing.T) {
	var b Buffer
	for _, c := range []byte{0x61, 0x00, 0xFF} {
		b.AppendByte(c)
	}
	if want := []byte{0x61, 0x00, 0xFF}; !bytes.Equal(b.Bytes(), want) {
		t.Fatalf("unexpected contents: want: % X, got: % X", want, b.Bytes())
	}
	if b.Len() != 3 {
		t.Fatalf("unexpected length: want: 3, got: %v", b.Len())
	}
}

func TestBuffer_BytesReturnsACopy(t *testing.T) {
	var b Buffer
	b.AppendByte('a')
	bs := b.Bytes()
	bs[0] = 'z'
	if got := b.Bytes(); got[0] != 'a' {
		t.Fatalf("buffer contents changed through the returned slice: got: %q", got)
	}
}
