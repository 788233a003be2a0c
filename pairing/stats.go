package pairing

import "strings"

// computeStats implements C10: the summary counts that close out a run
// (§4.9). total_pairs counts only kind=pair records; pair_type_counts
// keys are "<edge_i><edge_j>-<orient>" built from the LW edge characters
// and the two-letter orientation code, not the raw LW string.
func computeStats(totalBases int, records []PairRecord) Stats {
	stats := Stats{
		TotalBases:     totalBases,
		PairTypeCounts: map[string]int{},
	}
	for _, r := range records {
		if r.Kind == KindPair {
			stats.TotalPairs++
			stats.PairTypeCounts[pairTypeKey(r.LW, r.Orientation)]++
		}
	}
	return stats
}

// pairTypeKey builds the "<edge_i><edge_j>-<orient>" key from an LW code
// like "W/W" or "+/+" and an orientation of "cis" or "tran" (§4.9).
func pairTypeKey(lw, orientation string) string {
	edgeI, edgeJ, _ := strings.Cut(lw, "/")
	orient := "cis"
	if orientation != "cis" {
		orient = "tra"
	}
	return edgeI + edgeJ + "-" + orient
}
