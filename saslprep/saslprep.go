// Package saslprep fixes the profile combinations SASL mechanisms use on
// top of the prep codec: the SASLprep profile of RFC 4013 and its SCRAM
// variant that additionally escapes the login characters of RFC 5802.
package saslprep

import (
	"github.com/nihei9/stringprep/prep"
	"github.com/nihei9/stringprep/sink"
)

// Profile is the SASLprep preparation: delete B.1, map non-ASCII spaces to
// space, normalize with NFKC (which folds case via B.2), and forbid every
// prohibited class including unassigned code points.
const Profile = prep.MapToNothing |
	prep.MapToSpace |
	prep.NormalizeKC |
	prep.ForbidNonASCIISpaces |
	prep.ForbidASCIIControl |
	prep.ForbidNonASCIIControl |
	prep.ForbidPrivateUse |
	prep.ForbidNonCharacter |
	prep.ForbidSurrogate |
	prep.ForbidInappropriateForPlainText |
	prep.ForbidInappropriateForCanonRep |
	prep.ForbidChangeDisplayAndDeprecated |
	prep.ForbidTagging |
	prep.ForbidUnassigned

// SCRAMUsernameProfile additionally escapes `,` and `=`, which delimit
// attribute/value pairs in SCRAM messages.
const SCRAMUsernameProfile = Profile | prep.MapSCRAMLoginChars

// Prepare applies the SASLprep profile to s and returns the prepared UTF-8
// bytes.
func Prepare(s string) ([]byte, error) {
	var b sink.Buffer
	if err := prep.Encode(&b, s, Profile); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// PrepareUsername applies the SCRAM username variant to s.
func PrepareUsername(s string) ([]byte, error) {
	var b sink.Buffer
	if err := prep.Encode(&b, s, SCRAMUsernameProfile); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}
