package pairing

import "github.com/OOAAHH/RNAView/structure"

// verdict is the raw, per-candidate classification produced by C6/C7,
// before C8 deduplicates, marks tertiary pairs, and sorts.
type verdict struct {
	I, J int // 0-based indices into the base-residue slices

	Kind        Kind
	LW          string
	Orientation string
	Saenger     string
	Note        string
	SynI, SynJ  bool

	BondCount int // drives the best-pair pass in C8

	// EdgeI, EdgeJ are the per-residue best-edge letters ('W', 'H', 'S',
	// or '?') C8 uses to derive the bond-composition tail annotation
	// (§4.5 step 5).
	EdgeI, EdgeJ byte
}

// edgeTally counts, per edge letter, how many reported bonds touch that
// residue's edge atoms (§4.5 step 1).
func edgeTally(all []structure.Atom, r structure.Residue, letter structure.BaseLetter, bonds []HydrogenBond, residueIsI bool) map[byte]int {
	tally := map[byte]int{}
	atomsByEdge := map[string]byte{}
	for _, e := range edgeAtoms[letter.Canon()] {
		if _, seen := atomsByEdge[e.name]; !seen {
			atomsByEdge[e.name] = e.edge
		}
	}
	for _, b := range bonds {
		var atomName string
		if b.DonorIsI == residueIsI {
			atomName = b.DonorAtom
		} else {
			atomName = b.AcceptorAtom
		}
		if edge, ok := atomsByEdge[atomName]; ok {
			tally[edge]++
		}
	}
	return tally
}

// bestEdge picks the edge with the highest tally, ties broken W > H > S,
// and '?' when no edge participated at all (§4.5 step 1).
func bestEdge(tally map[byte]int) byte {
	order := []byte{'W', 'H', 'S'}
	best := byte('?')
	bestCount := 0
	for _, e := range order {
		if tally[e] > bestCount {
			best = e
			bestCount = tally[e]
		}
	}
	return best
}

// classifyPair implements C5+C6+C7's cooperative verdict for one
// candidate: hydrogen-bond-based pairing is attempted first; on failure
// (or if the geometry never qualified for the pair band) it falls back
// to the stacking detector.
func classifyPair(
	all []structure.Atom,
	ri, rj structure.Residue,
	li, lj structure.BaseLetter,
	fi, fj structure.Frame,
	band candidateBand,
	c Constants,
	prof *Profile,
) (verdict, bool) {
	var v verdict

	chiI, okI := structure.Chi(all, ri, li)
	chiJ, okJ := structure.Chi(all, rj, lj)
	v.SynI = okI && structure.IsSyn(chiI)
	v.SynJ = okJ && structure.IsSyn(chiJ)

	if band.pairBand {
		prof.addHbondPairCall()
		hb := enumerateHBonds(all, ri, rj, li, lj, c)
		if hb.TotalCount > 0 {
			prof.addLWPairTypeCall()
			edgeI := bestEdge(edgeTally(all, ri, li, hb.Bonds, true))
			edgeJ := bestEdge(edgeTally(all, rj, lj, hb.Bonds, false))

			orientation := "tran"
			if fi.Normal.Dot(fj.Normal) > 0 {
				orientation = "cis"
			}

			if edgeI == 'W' && edgeJ == 'W' && isFullWCMatch(li, lj, hb.WCMatches) {
				if orientation == "cis" {
					v.LW = "+/+"
				} else {
					v.LW = "-/-"
				}
				v.Saenger = lookupSaenger(li.Canon(), lj.Canon(), orientation)
			} else if edgeI == 'W' && edgeJ == 'W' {
				v.LW = "W/W"
				v.Saenger = "n/a"
			} else {
				v.LW = string(edgeI) + "/" + string(edgeJ)
			}

			if edgeI == '?' && edgeJ == '?' {
				v.Kind = KindUnknown
				v.LW = ""
				v.Note = "no classifiable edge"
			} else {
				v.Kind = KindPair
				v.Orientation = orientation
			}
			v.EdgeI, v.EdgeJ = edgeI, edgeJ
			v.BondCount = hb.TotalCount
			return v, true
		}
	}

	prof.addBaseStackCall()
	if stacked, ok := classifyStack(fi, fj, c); ok {
		_ = stacked
		v.Kind = KindStacked
		return v, true
	}

	return verdict{}, false
}
