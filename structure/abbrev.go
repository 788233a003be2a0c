package structure

// canonicalResnames maps a resname (or the already-DNA-normalised form of
// a two-letter mmCIF resname such as "DA") to its canonical, uppercase
// BaseLetter. Unlike the teacher's amino-acid abbrev.go, a miss here is
// not necessarily an error: it falls through to the atom-presence
// heuristic in AssignLetter.
var canonicalResnames = map[string]byte{
	"A": 'A', "ADE": 'A',
	"G": 'G', "GUA": 'G',
	"C": 'C', "CYT": 'C',
	"U": 'U', "URA": 'U',
	"T": 'T', "THY": 'T',
	"I": 'I', "INO": 'I',
	"P": 'P', "PSU": 'P',
}

// modifiedResnames maps well-known modified-base PDB component IDs
// straight to their (lowercase) BaseLetter, bypassing the atom-presence
// heuristic. This list is intentionally small: anything not here still
// gets a fair shot at the heuristic in §4.1 step 2.
var modifiedResnames = map[string]byte{
	"5MC": 'c', "OMC": 'c', "CBV": 'c',
	"1MA": 'a', "2MA": 'a', "6MA": 'a',
	"7MG": 'g', "2MG": 'g', "OMG": 'g', "M2G": 'g',
	"H2U": 'u', "4SU": 'u', "OMU": 'u', "PSU": 'u',
	"5MU": 't',
	"DI": 'i',
}

// purineRing and pyrimidineRing are the minimal ring-atom sets §4.1
// requires for a residue to be classified as a base purely on atom
// presence (independent of resname).
var purineRing = []string{"N1", "C2", "N3", "C4", "C5", "C6", "N7", "C8", "N9"}
var pyrimidineRing = []string{"N1", "C2", "N3", "C4", "C5", "C6"}

// ringKind classifies the ring system present among the given atom names:
// 1 for purine, 0 for pyrimidine, -1 for neither.
func ringKind(names map[string]bool) int {
	if hasAll(names, purineRing) {
		return 1
	}
	if hasAll(names, pyrimidineRing) {
		return 0
	}
	return -1
}

func hasAll(names map[string]bool, want []string) bool {
	for _, n := range want {
		if !names[n] {
			return false
		}
	}
	return true
}

// modifiedTemplate is one entry in the fixed a,g,c,u,t,p,i priority order
// §4.1 requires for atom-presence letter assignment.
type modifiedTemplate struct {
	letter byte
	match  func(names map[string]bool) bool
}

// modifiedTemplates is evaluated in order; the first match wins. The
// discriminants mirror original_source's identify_uncommon: purines are
// split on N2 (guanine family) vs N6 (adenine family) vs O6-without-N2
// (inosine family); pyrimidines are split on C5M (thymine family), N4
// (cytosine family), default uracil.
var modifiedTemplates = []modifiedTemplate{
	{'a', func(n map[string]bool) bool { return ringKind(n) == 1 && n["N6"] && !n["O6"] }},
	{'g', func(n map[string]bool) bool { return ringKind(n) == 1 && n["O6"] && n["N2"] }},
	{'c', func(n map[string]bool) bool { return ringKind(n) == 0 && n["N4"] && !n["C5M"] }},
	{'u', func(n map[string]bool) bool {
		return ringKind(n) == 0 && !n["N4"] && !n["C5M"] && n["O4"]
	}},
	{'t', func(n map[string]bool) bool { return ringKind(n) == 0 && n["C5M"] }},
	{'p', func(n map[string]bool) bool { return ringKind(n) == 0 && !n["N4"] && !n["O2P"] && n["O2'"] }},
	{'i', func(n map[string]bool) bool { return ringKind(n) == 1 && n["O6"] && !n["N2"] }},
}

// AssignLetter implements §4.1: resname table lookup first, then the
// atom-presence heuristic in fixed priority order, then the bare ring
// fallback to lowercase 'n' (not pairable). ok is false when the residue
// is not recognised as a base at all.
func AssignLetter(resname string, atoms []Atom) (letter BaseLetter, ok bool) {
	rn := normalizeResname(resname)

	if ch, found := modifiedResnames[rn]; found {
		return Modified(ch), true
	}
	if ch, found := canonicalResnames[rn]; found {
		return Canonical(ch), true
	}

	names := make(map[string]bool, len(atoms))
	for _, a := range atoms {
		names[a.Name] = true
	}

	kind := ringKind(names)
	if kind < 0 {
		return BaseLetter{}, false
	}
	for _, tmpl := range modifiedTemplates {
		if tmpl.match(names) {
			return Modified(tmpl.letter), true
		}
	}
	// Ring present but no template matched: recognised as a base shape
	// but not pairable, per §4.1 step 3.
	return Modified('n'), true
}

// normalizeResname folds DNA's two-letter "D"-prefixed component IDs
// (DA, DC, DG, DT, DI) down to the single canonical letter, matching
// original_source's canonical_residue_name.
func normalizeResname(resname string) string {
	rn := resname
	if len(rn) == 2 && rn[0] == 'D' {
		switch rn[1] {
		case 'A', 'T', 'G', 'C', 'I', 'U':
			return string(rn[1])
		}
	}
	return rn
}

// IsPairable reports whether a letter assigned by AssignLetter can
// participate in pairing; the §4.1 step-3 'n' fallback cannot.
func IsPairable(l BaseLetter) bool {
	return !l.IsZero() && l.Byte() != 'n'
}
