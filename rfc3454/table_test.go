package rfc3454

import "testing"

func TestTable_Contains(t *testing.T) {
	tests := []struct {
		caption string
		table   Table
		c       rune
		want    bool
	}{
		{
			caption: "a code point inside a range is a member",
			table:   TableC21,
			c:       0x000A,
			want:    true,
		},
		{
			caption: "a single-code-point range matches its code point",
			table:   TableC21,
			c:       0x007F,
			want:    true,
		},
		{
			caption: "a code point between ranges is not a member",
			table:   TableC21,
			c:       0x0020,
			want:    false,
		},
		{
			caption: "the lower bound of a range is a member",
			table:   TableC12,
			c:       0x2000,
			want:    true,
		},
		{
			caption: "the upper bound of a range is a member",
			table:   TableC12,
			c:       0x200B,
			want:    true,
		},
		{
			caption: "one past the upper bound is not a member",
			table:   TableC12,
			c:       0x200C,
			want:    false,
		},
		{
			caption: "membership works beyond the BMP",
			table:   TableC9,
			c:       0xE0041,
			want:    true,
		},
		{
			caption: "the last private use code point is in C.3",
			table:   TableC3,
			c:       0x10FFFD,
			want:    true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			if got := tt.table.Contains(tt.c); got != tt.want {
				t.Fatalf("unexpected membership of U+%04X: want: %v, got: %v", tt.c, tt.want, got)
			}
		})
	}
}

func TestTable_ContainsAgreesWithLinearScan(t *testing.T) {
	for _, table := range []Table{TableA1, TableC12, TableC22, TableD1, TableD2} {
		for _, r := range table {
			for _, c := range []rune{r.From - 1, r.From, r.To, r.To + 1} {
				want := false
				for _, s := range table {
					if c >= s.From && c <= s.To {
						want = true
						break
					}
				}
				if got := table.Contains(c); got != want {
					t.Fatalf("binary search disagrees with linear scan at U+%04X: want: %v, got: %v", c, want, got)
				}
			}
		}
	}
}

func TestMapTable_Lookup(t *testing.T) {
	tests := []struct {
		caption string
		table   MapTable
		c       rune
		rep     string
		ok      bool
	}{
		{
			caption: "soft hyphen maps to nothing",
			table:   TableB1,
			c:       0x00AD,
			rep:     "",
			ok:      true,
		},
		{
			caption: "a variation selector maps to nothing",
			table:   TableB1,
			c:       0xFE0F,
			rep:     "",
			ok:      true,
		},
		{
			caption: "an unmapped code point has no B.1 entry",
			table:   TableB1,
			c:       0x0061,
			ok:      false,
		},
		{
			caption: "an ASCII capital folds to lower case",
			table:   TableB2,
			c:       'A',
			rep:     "a",
			ok:      true,
		},
		{
			caption: "sharp s folds to a two-character sequence",
			table:   TableB2,
			c:       0x00DF,
			rep:     "ss",
			ok:      true,
		},
		{
			caption: "a Roman numeral folds within its fold range",
			table:   TableB2,
			c:       0x2168,
			rep:     "ⅸ",
			ok:      true,
		},
		{
			caption: "a Cyrillic capital folds by offset",
			table:   TableB2,
			c:       0x0418,
			rep:     "и",
			ok:      true,
		},
		{
			caption: "the Kelvin sign folds to k",
			table:   TableB2,
			c:       0x212A,
			rep:     "k",
			ok:      true,
		},
		{
			caption: "a Deseret capital folds beyond the BMP",
			table:   TableB2,
			c:       0x10400,
			rep:     "\U00010428",
			ok:      true,
		},
		{
			caption: "a lower case letter has no B.2 entry",
			table:   TableB2,
			c:       'a',
			ok:      false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			rep, ok := tt.table.Lookup(tt.c)
			if ok != tt.ok {
				t.Fatalf("unexpected presence of U+%04X: want: %v, got: %v", tt.c, tt.ok, ok)
			}
			if rep != tt.rep {
				t.Fatalf("unexpected replacement for U+%04X: want: %+q, got: %+q", tt.c, tt.rep, rep)
			}
		})
	}
}

func TestTableB2_IsSorted(t *testing.T) {
	for i := 1; i < len(TableB2); i++ {
		if TableB2[i-1].From >= TableB2[i].From {
			t.Fatalf("B.2 is not strictly sorted at index %v: U+%04X then U+%04X", i, TableB2[i-1].From, TableB2[i].From)
		}
	}
}

func TestTablesAreSortedAndDisjoint(t *testing.T) {
	for _, tt := range []struct {
		name  string
		table Table
	}{
		{"A.1", TableA1},
		{"C.1.2", TableC12},
		{"C.2.1", TableC21},
		{"C.2.2", TableC22},
		{"C.3", TableC3},
		{"C.4", TableC4},
		{"C.5", TableC5},
		{"C.6", TableC6},
		{"C.7", TableC7},
		{"C.8", TableC8},
		{"C.9", TableC9},
		{"D.1", TableD1},
		{"D.2", TableD2},
	} {
		for i, r := range tt.table {
			if r.From > r.To {
				t.Fatalf("%v: inverted range at index %v: U+%04X..U+%04X", tt.name, i, r.From, r.To)
			}
			if i > 0 && tt.table[i-1].To >= r.From {
				t.Fatalf("%v: overlapping ranges at index %v", tt.name, i)
			}
		}
	}
}
