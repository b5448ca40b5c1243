package prep

import "github.com/nihei9/stringprep/rfc3454"

// checkBidi enforces requirements 2 and 3 of RFC 3454 section 6 on the
// mapped and normalized sequence:
//
//   - a sequence containing RandALCat characters (table D.1) must contain
//     no LCat character (table D.2), and
//   - it must both begin and end with a RandALCat character.
//
// A sequence without RandALCat characters is unconstrained, as is the empty
// sequence.
func checkBidi(cs []rune) error {
	var hasRandAL, hasL, firstIsRandAL, lastIsRandAL bool
	for i, c := range cs {
		randAL := rfc3454.TableD1.Contains(c)
		if randAL {
			hasRandAL = true
		} else if rfc3454.TableD2.Contains(c) {
			hasL = true
		}
		if i == 0 {
			firstIsRandAL = randAL
		}
		lastIsRandAL = randAL
	}
	if hasRandAL && (hasL || !firstIsRandAL || !lastIsRandAL) {
		return &Error{Kind: ErrBidiViolation}
	}
	return nil
}
