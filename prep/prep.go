package prep

import "github.com/nihei9/stringprep/sink"

// Encode prepares s according to p and appends the UTF-8 serialization of
// the result to w. The stages run in a fixed order: mapping, NFKC
// normalization (when NormalizeKC is set), prohibition checks,
// bidirectional checks, serialization.
//
// s is read as a sequence of already-composed code points. Three-byte
// encodings of surrogate code points are admitted so fixtures built with
// sink.(*Buffer).AppendUTF8Raw flow through to the prohibition checker.
//
// On failure w may hold a partial prefix; the caller must discard it.
func Encode(w sink.Sink, s string, p Profile) error {
	return EncodeRunes(w, decodeScalars(s), p)
}

// EncodeUTF16 prepares a sequence of 16-bit code units. Surrogate pairs
// combine into supplementary code points; a lone or mis-ordered surrogate
// fails with ErrInvalidSurrogatePair before any other stage runs.
func EncodeUTF16(w sink.Sink, units []uint16, p Profile) error {
	cs, err := DecodeUTF16(units)
	if err != nil {
		return err
	}
	return EncodeRunes(w, cs, p)
}

// EncodeRunes prepares an already-decoded code point sequence.
func EncodeRunes(w sink.Sink, cs []rune, p Profile) error {
	cs = applyMapping(cs, p)
	if p&NormalizeKC != 0 {
		cs = normalizeKC(cs)
	}
	if err := checkProhibited(cs, p); err != nil {
		return err
	}
	if err := checkBidi(cs); err != nil {
		return err
	}
	for _, c := range cs {
		w.AppendUTF8Raw(c)
	}
	return nil
}
