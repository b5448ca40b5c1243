package prep

import "golang.org/x/text/unicode/norm"

// normalizeKC applies Unicode Normalization Form KC to cs. The case folding
// of table B.2 has already happened in the mapping stage, so a
// case-preserving normalizer is exactly what is needed here.
//
// Code points in the surrogate range cannot survive a round trip through a
// Go string, so runs between surrogates are normalized separately and the
// surrogates themselves are carried over verbatim for the prohibition
// checker to report.
func normalizeKC(cs []rune) []rune {
	out := make([]rune, 0, len(cs))
	run := make([]rune, 0, len(cs))
	flush := func() {
		if len(run) == 0 {
			return
		}
		out = append(out, []rune(norm.NFKC.String(string(run)))...)
		run = run[:0]
	}
	for _, c := range cs {
		if isSurrogate(c) {
			flush()
			out = append(out, c)
			continue
		}
		run = append(run, c)
	}
	flush()
	return out
}
