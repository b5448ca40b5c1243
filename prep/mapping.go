package prep

import "github.com/nihei9/stringprep/rfc3454"

// applyMapping runs the character mapping stage over cs. Per code point,
// exactly one rule fires:
//
//  1. with NormalizeKC, a B.2 entry replaces the code point by its
//     case-folded sequence;
//  2. with MapToNothing, a B.1 code point is deleted;
//  3. with MapToSpace, a C.1.2 code point becomes U+0020;
//  4. with MapSCRAMLoginChars, `,` becomes `=2C` and `=` becomes `=3D`;
//  5. otherwise the code point passes through unchanged.
//
// Rules are tried in order and the first match wins; U+200B sits in both
// B.1 and C.1.2, so deletion takes precedence over space mapping there.
func applyMapping(cs []rune, p Profile) []rune {
	out := make([]rune, 0, len(cs))
	for _, c := range cs {
		if p&NormalizeKC != 0 {
			if rep, ok := rfc3454.TableB2.Lookup(c); ok {
				out = append(out, []rune(rep)...)
				continue
			}
		}
		if p&MapToNothing != 0 {
			if _, ok := rfc3454.TableB1.Lookup(c); ok {
				continue
			}
		}
		if p&MapToSpace != 0 && rfc3454.TableC12.Contains(c) {
			out = append(out, ' ')
			continue
		}
		if p&MapSCRAMLoginChars != 0 {
			switch c {
			case ',':
				out = append(out, '=', '2', 'C')
				continue
			case '=':
				out = append(out, '=', '3', 'D')
				continue
			}
		}
		out = append(out, c)
	}
	return out
}
