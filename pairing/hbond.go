package pairing

import (
	"github.com/OOAAHH/RNAView/structure"
)

// hbAtom is one entry in an edge-atom table (§4.4, §4.5 step 1): an
// atom that can act as a donor and/or acceptor on a named
// Watson-Crick/Hoogsteen/Sugar edge, plus the ring atom it is bonded to
// (needed for the donor-donorNeighbour-acceptor pseudo-angle).
type hbAtom struct {
	name     string
	neighbor string
	donor    bool
	acceptor bool
	edge     byte // 'W', 'H', or 'S'
}

// edgeAtoms is keyed by canonical (uppercase) BaseLetter. The ribose
// O2' entry is common to every base's sugar edge.
var edgeAtoms = map[byte][]hbAtom{
	'A': {
		{"N1", "C2", false, true, 'W'},
		{"N6", "C6", true, false, 'W'},
		{"N7", "C8", false, true, 'H'},
		{"N3", "C2", false, true, 'S'},
		{"O2'", "C2'", true, true, 'S'},
	},
	'G': {
		{"O6", "C6", false, true, 'W'},
		{"N1", "C2", true, false, 'W'},
		{"N2", "C2", true, false, 'W'},
		{"N7", "C8", false, true, 'H'},
		{"O6", "C6", false, true, 'H'},
		{"N3", "C2", false, true, 'S'},
		{"N2", "C2", true, false, 'S'},
		{"O2'", "C2'", true, true, 'S'},
	},
	'I': {
		{"O6", "C6", false, true, 'W'},
		{"N1", "C2", true, false, 'W'},
		{"N7", "C8", false, true, 'H'},
		{"N3", "C2", false, true, 'S'},
		{"O2'", "C2'", true, true, 'S'},
	},
	'C': {
		{"O2", "C2", false, true, 'W'},
		{"N3", "C2", false, true, 'W'},
		{"N4", "C4", true, false, 'W'},
		{"O2'", "C2'", true, true, 'S'},
	},
	'U': {
		{"O2", "C2", false, true, 'W'},
		{"N3", "C2", true, false, 'W'},
		{"O4", "C4", false, true, 'W'},
		{"O4", "C4", false, true, 'H'},
		{"O2'", "C2'", true, true, 'S'},
	},
	'T': {
		{"O2", "C2", false, true, 'W'},
		{"N3", "C2", true, false, 'W'},
		{"O4", "C4", false, true, 'W'},
		{"O4", "C4", false, true, 'H'},
		{"O2'", "C2'", true, true, 'S'},
	},
	// Pseudouridine's glycosidic link moves from N1 to C5, but its
	// hydrogen-bonding face is otherwise the same as uracil's.
	'P': {
		{"O2", "C2", false, true, 'W'},
		{"N3", "C2", true, false, 'W'},
		{"O4", "C4", false, true, 'W'},
		{"O2'", "C2'", true, true, 'S'},
	},
}

// wcTemplate names, for each canonical base pair, one hydrogen bond
// diagnostic of the canonical Watson-Crick geometry (§4.5 step 3).
// donorAtom/acceptorAtom always name the donor and acceptor regardless
// of which residue they sit on; donorOnA records whether the donor is
// the atom on base a (residue i) or base b (residue j), since a real
// WC pair's three bonds don't all point the same direction (G's O6
// accepts from C's N4, the reverse of G's N1/N2 donating).
type wcPair struct {
	donorAtom, acceptorAtom string
	donorOnA                bool
}

// wcTemplates[a][b] gives the hydrogen bonds that must all be observed
// for a full canonical WC match between base a and base b
// (order-sensitive: a is residue i, b is residue j).
var wcTemplates = map[[2]byte][]wcPair{
	{'A', 'T'}: {{"N6", "O4", true}, {"N3", "N1", false}},
	{'A', 'U'}: {{"N6", "O4", true}, {"N3", "N1", false}},
	{'G', 'C'}: {{"N1", "N3", true}, {"N2", "O2", true}, {"N4", "O6", false}},
}

func reverseKey(k [2]byte) [2]byte { return [2]byte{k[1], k[0]} }

// HydrogenBond is one observed donor-acceptor contact between two
// residues (§3).
type HydrogenBond struct {
	DonorAtom, AcceptorAtom string
	// DonorIsI is true when the donor atom belongs to residue i (the
	// lower BaseIndex of the candidate pair being evaluated).
	DonorIsI bool
	Distance float64
}

// hbondResult is the C5 enumerator's output for one candidate pair:
// every observed bond plus the two derived counts §4.4 specifies.
type hbondResult struct {
	Bonds       []HydrogenBond
	WCMatches   int
	TotalCount  int
}

// enumerateHBonds implements C5: every donor(residue a)-acceptor(residue
// b) and donor(residue b)-acceptor(residue a) combination is tested
// against the distance and pseudo-angle gates.
func enumerateHBonds(all []structure.Atom, ri, rj structure.Residue, li, lj structure.BaseLetter, c Constants) hbondResult {
	var res hbondResult

	tryDirection := func(donorRes, accRes structure.Residue, donorLetter, accLetter structure.BaseLetter, donorIsI bool) {
		for _, d := range edgeAtoms[donorLetter.Canon()] {
			if !d.donor {
				continue
			}
			if !donorRes.HasAtoms(all, d.name, d.neighbor) {
				continue
			}
			donorAtom, _ := donorRes.AtomByName(all, d.name)
			neighbor, _ := donorRes.AtomByName(all, d.neighbor)
			for _, a := range edgeAtoms[accLetter.Canon()] {
				if !a.acceptor {
					continue
				}
				if !accRes.HasAtoms(all, a.name) {
					continue
				}
				accAtom, _ := accRes.AtomByName(all, a.name)
				dist := structure.Distance(donorAtom.Vec(), accAtom.Vec())
				if dist > c.HBondMaxDist {
					continue
				}
				angle := structure.AngleBetween(
					donorAtom.Vec().Sub(neighbor.Vec()),
					accAtom.Vec().Sub(donorAtom.Vec()),
				)
				angleDeg := structure.Degrees(angle)
				if angleDeg < c.HBondMinAngle {
					continue
				}
				res.Bonds = append(res.Bonds, HydrogenBond{
					DonorAtom:    d.name,
					AcceptorAtom: a.name,
					DonorIsI:     donorIsI,
					Distance:     dist,
				})
			}
		}
	}

	tryDirection(ri, rj, li, lj, true)
	tryDirection(rj, ri, lj, li, false)

	res.TotalCount = len(res.Bonds)
	res.WCMatches = countWCMatches(res.Bonds, li, lj)
	return res
}

func countWCMatches(bonds []HydrogenBond, li, lj structure.BaseLetter) int {
	key := [2]byte{li.Canon(), lj.Canon()}
	tmpl, ok := wcTemplates[key]
	swapped := false
	if !ok {
		tmpl, ok = wcTemplates[reverseKey(key)]
		swapped = true
	}
	if !ok {
		return 0
	}
	matches := 0
	for _, want := range tmpl {
		donorIsI := want.donorOnA
		if swapped {
			donorIsI = !donorIsI
		}
		for _, b := range bonds {
			if b.DonorAtom == want.donorAtom && b.AcceptorAtom == want.acceptorAtom && b.DonorIsI == donorIsI {
				matches++
				break
			}
		}
	}
	return matches
}

func isFullWCMatch(li, lj structure.BaseLetter, wcMatches int) bool {
	key := [2]byte{li.Canon(), lj.Canon()}
	tmpl, ok := wcTemplates[key]
	if !ok {
		tmpl, ok = wcTemplates[reverseKey(key)]
	}
	return ok && wcMatches == len(tmpl)
}
