package prep

import "testing"

func TestCheckBidi(t *testing.T) {
	tests := []struct {
		caption string
		cs      []rune
		ok      bool
	}{
		{
			caption: "an empty sequence passes",
			cs:      []rune{},
			ok:      true,
		},
		{
			caption: "a purely left-to-right sequence passes",
			cs:      []rune("abc"),
			ok:      true,
		},
		{
			caption: "a purely right-to-left sequence passes",
			cs:      []rune("\u05D0\u05D1\u05D2"),
			ok:      true,
		},
		{
			caption: "neutral characters inside a right-to-left sequence pass",
			cs:      []rune("\u0627\u0031\u0628"),
			ok:      true,
		},
		{
			caption: "a single right-to-left character passes",
			cs:      []rune("\u05BE"),
			ok:      true,
		},
		{
			caption: "an LCat character in a right-to-left sequence fails",
			cs:      []rune("\u05BE\uFBA8a\u05BE\uFBA8"),
			ok:      false,
		},
		{
			caption: "a right-to-left sequence must not end with a neutral",
			cs:      []rune("\u0627\u0031"),
			ok:      false,
		},
		{
			caption: "a right-to-left sequence must not begin with a neutral",
			cs:      []rune("\u0031\u0627"),
			ok:      false,
		},
		{
			caption: "neutral-only sequences are unconstrained",
			cs:      []rune("123 456"),
			ok:      true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			err := checkBidi(tt.cs)
			if tt.ok {
				if err != nil {
					t.Fatal(err)
				}
				return
			}
			prepErr, ok := err.(*Error)
			if !ok {
				t.Fatalf("expected a bidi error, got: %v", err)
			}
			if prepErr.Kind != ErrBidiViolation {
				t.Fatalf("unexpected error kind: want: %v, got: %v", ErrBidiViolation, prepErr.Kind)
			}
		})
	}
}
