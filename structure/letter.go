package structure

// BaseLetter is the assigned single-letter base code for a recognised
// nucleic-acid residue. It is a small sum type: a residue is either a
// Canonical base (A, G, C, U, T, I, P in uppercase) or a Modified one
// (any of the same letters, lowercase, assigned by an atom-presence
// heuristic rather than by resname). The case carries semantics end to
// end; String renders it.
type BaseLetter struct {
	letter byte // always a letter 'A'-'Z' or lowercase 'a'-'z'; 0 is the zero value
}

// Canonical returns a BaseLetter for an unmodified, resname-recognised
// base. ch must be uppercase.
func Canonical(ch byte) BaseLetter { return BaseLetter{letter: upper(ch)} }

// Modified returns a BaseLetter for a modified or unusual base whose
// letter was assigned by the atom-presence heuristic. ch must be
// lowercase.
func Modified(ch byte) BaseLetter { return BaseLetter{letter: lower(ch)} }

func upper(ch byte) byte {
	if ch >= 'a' && ch <= 'z' {
		return ch - 'a' + 'A'
	}
	return ch
}

func lower(ch byte) byte {
	if ch >= 'A' && ch <= 'Z' {
		return ch - 'A' + 'a'
	}
	return ch
}

// IsZero reports whether no letter has been assigned.
func (b BaseLetter) IsZero() bool { return b.letter == 0 }

// IsModified reports whether the residue this letter came from is
// modified or unusual (lowercase letter).
func (b BaseLetter) IsModified() bool {
	return b.letter >= 'a' && b.letter <= 'z'
}

// Byte returns the raw letter byte, case preserved.
func (b BaseLetter) Byte() byte { return b.letter }

// Canon returns the case-folded (uppercase) letter, for table lookups
// that are defined per base identity regardless of modification status.
func (b BaseLetter) Canon() byte { return upper(b.letter) }

func (b BaseLetter) String() string {
	if b.letter == 0 {
		return ""
	}
	return string(b.letter)
}
