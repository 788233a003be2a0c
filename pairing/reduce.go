package pairing

import "sort"

// reduce implements C8: deduplicate candidate verdicts that share an
// (i,j) key (preferring a hydrogen-bond verdict over a stacking one),
// greedily select the best pair per residue per strand, mark every
// other kind=pair verdict as tertiary, and sort into the canonical
// ascending (i,j) order (§4.7).
func reduce(verdicts []verdict, prof *Profile) []verdict {
	byKey := map[[2]int]verdict{}
	for _, v := range verdicts {
		key := [2]int{v.I, v.J}
		existing, ok := byKey[key]
		if !ok {
			byKey[key] = v
			continue
		}
		// A hydrogen-bond-backed verdict (kind=pair or kind=unknown, both
		// produced only when bonds were actually observed) always beats a
		// kind=stacked verdict for the same index pair.
		if existing.Kind == KindStacked && v.Kind != KindStacked {
			byKey[key] = v
		}
	}

	deduped := make([]verdict, 0, len(byKey))
	for _, v := range byKey {
		deduped = append(deduped, v)
	}
	sort.Slice(deduped, func(a, b int) bool {
		if deduped[a].I != deduped[b].I {
			return deduped[a].I < deduped[b].I
		}
		return deduped[a].J < deduped[b].J
	})

	best := selectBestPairs(deduped, prof)
	for i := range deduped {
		v := &deduped[i]
		if v.Kind != KindPair {
			continue
		}
		if !best[[2]int{v.I, v.J}] {
			mark := tertiaryMark(*v)
			if v.Note == "" {
				v.Note = mark
			} else {
				v.Note = mark + v.Note
			}
		}
	}

	return deduped
}

// tertiaryMark implements §4.5 step 5's tail annotation: a bare "!" when
// the bond composition can't be characterized (an unresolved '?' edge),
// otherwise "!(<code>)" or "!1H(<code>)" for a single-bond pair, where
// <code> is "b_b" when both residues' best edge is a base-ring edge
// (W or H) and "b_s" when either resolved to the sugar edge.
func tertiaryMark(v verdict) string {
	code := bondCompositionCode(v.EdgeI, v.EdgeJ)
	if code == "" {
		return "!"
	}
	if v.BondCount == 1 {
		return "!1H(" + code + ")"
	}
	return "!(" + code + ")"
}

func bondCompositionCode(edgeI, edgeJ byte) string {
	resolved := func(e byte) bool { return e == 'W' || e == 'H' || e == 'S' }
	if !resolved(edgeI) || !resolved(edgeJ) {
		return ""
	}
	if edgeI == 'S' || edgeJ == 'S' {
		return "b_s"
	}
	return "b_b"
}

// selectBestPairs runs the greedy best-pair partition (§4.7 step 2):
// each residue index may anchor at most one "best" pair, chosen by
// descending bond count then ascending sequence separation |i-j|, and
// candidates are visited in that same priority order so that a residue
// already claimed by a stronger pair can't be reassigned to a weaker
// one.
func selectBestPairs(sorted []verdict, prof *Profile) map[[2]int]bool {
	pairs := make([]verdict, 0, len(sorted))
	for _, v := range sorted {
		if v.Kind == KindPair {
			pairs = append(pairs, v)
		}
	}
	sort.SliceStable(pairs, func(a, b int) bool {
		if pairs[a].BondCount != pairs[b].BondCount {
			return pairs[a].BondCount > pairs[b].BondCount
		}
		sepA := pairs[a].J - pairs[a].I
		sepB := pairs[b].J - pairs[b].I
		return sepA < sepB
	})

	claimed := map[int]bool{}
	best := map[[2]int]bool{}
	for _, v := range pairs {
		prof.addBestPairCheckPairsCall()
		if claimed[v.I] || claimed[v.J] {
			continue
		}
		claimed[v.I] = true
		claimed[v.J] = true
		best[[2]int{v.I, v.J}] = true
	}
	return best
}
