// Package prep implements the stringprep preparation pipeline of RFC 3454:
// character mapping, NFKC normalization, prohibited-character checks,
// bidirectional checks, and UTF-8 serialization into a caller-supplied sink.
//
// The pipeline is configured by a Profile bitmask. The package does not
// define named profiles such as SASLprep; callers fix their own flag
// combinations (see the saslprep package).
package prep

// A Profile selects the mapping steps and prohibition checks a preparation
// applies. Flags combine by bitwise OR. The bidirectional checks of
// RFC 3454 section 6 are not flag-controlled; they always run.
type Profile uint64

const (
	// MapToNothing deletes the characters of table B.1.
	MapToNothing Profile = 1 << iota

	// MapToSpace maps the non-ASCII spaces of table C.1.2 to U+0020.
	MapToSpace

	// MapSCRAMLoginChars escapes `,` to `=2C` and `=` to `=3D` as required
	// for SCRAM login names (RFC 5802 section 5.1).
	MapSCRAMLoginChars

	// NormalizeKC applies the case-folding map of table B.2 and then
	// Unicode Normalization Form KC.
	NormalizeKC

	// ForbidNonASCIISpaces rejects table C.1.2.
	ForbidNonASCIISpaces

	// ForbidASCIIControl rejects table C.2.1.
	ForbidASCIIControl

	// ForbidNonASCIIControl rejects table C.2.2.
	ForbidNonASCIIControl

	// ForbidPrivateUse rejects table C.3.
	ForbidPrivateUse

	// ForbidNonCharacter rejects table C.4.
	ForbidNonCharacter

	// ForbidSurrogate rejects table C.5.
	ForbidSurrogate

	// ForbidInappropriateForPlainText rejects table C.6.
	ForbidInappropriateForPlainText

	// ForbidInappropriateForCanonRep rejects table C.7.
	ForbidInappropriateForCanonRep

	// ForbidChangeDisplayAndDeprecated rejects table C.8.
	ForbidChangeDisplayAndDeprecated

	// ForbidTagging rejects table C.9.
	ForbidTagging

	// ForbidUnassigned rejects code points unassigned in Unicode 3.2
	// (table A.1).
	ForbidUnassigned
)
