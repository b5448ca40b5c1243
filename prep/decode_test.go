package prep

import "testing"

func TestDecodeUTF16(t *testing.T) {
	units := func(us ...uint16) []uint16 {
		return us
	}

	tests := []struct {
		caption string
		units   []uint16
		cs      []rune
		errPos  int
	}{
		{
			caption: "BMP code units pass through",
			units:   units(0x0061, 0x0438, 0x4F60),
			cs:      []rune{0x0061, 0x0438, 0x4F60},
		},
		{
			caption: "an empty input decodes to an empty sequence",
			units:   units(),
			cs:      []rune{},
		},
		{
			caption: "a surrogate pair combines into a supplementary code point",
			units:   units(0xD83C, 0xDCA1),
			cs:      []rune{0x1F0A1},
		},
		{
			caption: "the first supplementary code point decodes",
			units:   units(0xD800, 0xDC00),
			cs:      []rune{0x10000},
		},
		{
			caption: "the last supplementary code point decodes",
			units:   units(0xDBFF, 0xDFFF),
			cs:      []rune{0x10FFFF},
		},
		{
			caption: "a lone high surrogate fails",
			units:   units(0xD800),
			cs:      nil,
			errPos:  0,
		},
		{
			caption: "a lone low surrogate fails",
			units:   units(0xDC00),
			cs:      nil,
			errPos:  0,
		},
		{
			caption: "two consecutive high surrogates fail",
			units:   units(0xD800, 0xD800),
			cs:      nil,
			errPos:  0,
		},
		{
			caption: "a low surrogate before a high surrogate fails",
			units:   units(0xDC00, 0xD800),
			cs:      nil,
			errPos:  0,
		},
		{
			caption: "a high surrogate before a BMP character fails",
			units:   units(0xD800, 0x0061),
			cs:      nil,
			errPos:  0,
		},
		{
			caption: "a trailing lone surrogate fails at its index",
			units:   units(0x0061, 0x0062, 0xDBFF),
			cs:      nil,
			errPos:  2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			cs, err := DecodeUTF16(tt.units)
			if tt.cs == nil {
				prepErr, ok := err.(*Error)
				if !ok {
					t.Fatalf("expected a decode error, got: %v", err)
				}
				if prepErr.Kind != ErrInvalidSurrogatePair {
					t.Fatalf("unexpected error kind: want: %v, got: %v", ErrInvalidSurrogatePair, prepErr.Kind)
				}
				if prepErr.Pos != tt.errPos {
					t.Fatalf("unexpected error position: want: %v, got: %v", tt.errPos, prepErr.Pos)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if len(cs) != len(tt.cs) {
				t.Fatalf("unexpected length: want: %v, got: %v", len(tt.cs), len(cs))
			}
			for i, c := range tt.cs {
				if cs[i] != c {
					t.Fatalf("unexpected code point at %v: want: U+%04X, got: U+%04X", i, c, cs[i])
				}
			}
		})
	}
}

func TestDecodeScalars(t *testing.T) {
	tests := []struct {
		caption string
		src     string
		cs      []rune
	}{
		{
			caption: "well-formed UTF-8 decodes to its code points",
			src:     "aи你\U0001F0A1",
			cs:      []rune{0x0061, 0x0438, 0x4F60, 0x1F0A1},
		},
		{
			caption: "the three-byte encoding of a surrogate is kept",
			src:     "\xED\xA0\x80",
			cs:      []rune{0xD800},
		},
		{
			caption: "a surrogate encoding between letters is kept",
			src:     "a\xED\xBF\xBFz",
			cs:      []rune{0x0061, 0xDFFF, 0x007A},
		},
		{
			caption: "an overlong encoding degrades to U+FFFD per byte",
			src:     "\xC0\xAF",
			cs:      []rune{0xFFFD, 0xFFFD},
		},
		{
			caption: "a stray continuation byte degrades to U+FFFD",
			src:     "\x80",
			cs:      []rune{0xFFFD},
		},
		{
			caption: "a truncated sequence degrades to U+FFFD",
			src:     "\xE4\xBD",
			cs:      []rune{0xFFFD, 0xFFFD},
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			cs := decodeScalars(tt.src)
			if len(cs) != len(tt.cs) {
				t.Fatalf("unexpected length: want: %v, got: %v", len(tt.cs), len(cs))
			}
			for i, c := range tt.cs {
				if cs[i] != c {
					t.Fatalf("unexpected code point at %v: want: U+%04X, got: U+%04X", i, c, cs[i])
				}
			}
		})
	}
}
