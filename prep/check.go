package prep

import "github.com/nihei9/stringprep/rfc3454"

// prohibition ties a forbid flag to its class table.
type prohibition struct {
	flag  Profile
	class string
	table rfc3454.Table
}

var prohibitions = []prohibition{
	{ForbidNonASCIISpaces, "C.1.2", rfc3454.TableC12},
	{ForbidASCIIControl, "C.2.1", rfc3454.TableC21},
	{ForbidNonASCIIControl, "C.2.2", rfc3454.TableC22},
	{ForbidPrivateUse, "C.3", rfc3454.TableC3},
	{ForbidNonCharacter, "C.4", rfc3454.TableC4},
	{ForbidSurrogate, "C.5", rfc3454.TableC5},
	{ForbidInappropriateForPlainText, "C.6", rfc3454.TableC6},
	{ForbidInappropriateForCanonRep, "C.7", rfc3454.TableC7},
	{ForbidChangeDisplayAndDeprecated, "C.8", rfc3454.TableC8},
	{ForbidTagging, "C.9", rfc3454.TableC9},
	{ForbidUnassigned, "A.1", rfc3454.TableA1},
}

// checkProhibited scans cs against every table whose flag is enabled and
// fails on the first hit. A.1 membership means the code point is unassigned
// in Unicode 3.2, so for ForbidUnassigned a hit likewise rejects.
func checkProhibited(cs []rune, p Profile) error {
	for i, c := range cs {
		for _, pr := range prohibitions {
			if p&pr.flag == 0 {
				continue
			}
			if pr.table.Contains(c) {
				return &Error{Kind: ErrProhibitedCharacter, CodePoint: c, Pos: i, Class: pr.class}
			}
		}
	}
	return nil
}
