package pairing

import (
	"math"

	"github.com/OOAAHH/RNAView/structure"
)

// candidateBand names which permitted geometric band, if any, a pair
// survived (§4.3): a candidate may qualify for the pair band, the stack
// band, both, or neither.
type candidateBand struct {
	pairBand  bool
	stackBand bool
}

func (c candidateBand) any() bool { return c.pairBand || c.stackBand }

// candidateFilter implements C4: a cheap O(N^2) prune on origin-origin
// distance and inter-normal/plane geometry, evaluated in order and
// rejecting as soon as one predicate fails. It never yields a final
// verdict, only whether the pair deserves the expensive H-bond and
// stacking checks.
func candidateFilter(fi, fj structure.Frame, c Constants) candidateBand {
	if !fi.Valid || !fj.Valid {
		return candidateBand{}
	}

	d := structure.Distance(fi.Origin, fj.Origin)
	if d > c.CandOriginMax {
		return candidateBand{}
	}

	thetaN := structure.AngleBetween(fi.Normal, fj.Normal)
	// Fold to the acute angle, since §4.3 measures the absolute
	// inter-normal angle regardless of normal sign convention.
	if thetaN > math.Pi/2 {
		thetaN = math.Pi - thetaN
	}
	thetaDeg := structure.Degrees(thetaN)

	var band candidateBand
	if thetaDeg <= c.CandNormalAnglePairMax {
		band.pairBand = true
	}
	if thetaDeg <= c.CandNormalAngleStackMax {
		band.stackBand = true
	}
	if !band.any() {
		return band
	}

	// Third predicate (§4.3): the perpendicular component of the
	// origin-origin vector onto frame i's plane, cheaply distinguishing
	// in-plane pairing from stacking before C5/C7 confirm the verdict.
	perp := math.Abs(structure.PlaneOffset(fj.Origin, fi.Origin, fi.Normal))
	if band.pairBand && perp > c.CandPerpPairMax {
		band.pairBand = false
	}
	if band.stackBand && (perp < c.CandPerpStackMin || perp > c.CandPerpStackMax) {
		band.stackBand = false
	}
	return band
}

// candidatePairs enumerates every (i,j) with i<j whose frames are both
// valid and that survives candidateFilter, in ascending (i,j) order —
// the same iteration order the reducer's final sort assumes.
func candidatePairs(frames []structure.Frame, c Constants, prof *Profile) []pairIJ {
	var out []pairIJ
	for i := 0; i < len(frames); i++ {
		if !frames[i].Valid {
			continue
		}
		for j := i + 1; j < len(frames); j++ {
			if !frames[j].Valid {
				continue
			}
			band := candidateFilter(frames[i], frames[j], c)
			if !band.any() {
				continue
			}
			prof.addCandPair()
			out = append(out, pairIJ{I: i, J: j, band: band})
		}
	}
	return out
}

// pairIJ is a 0-based candidate index pair (into the frames/residues
// slices, not yet BaseIndex) carrying which geometric bands it passed.
type pairIJ struct {
	I, J int
	band candidateBand
}
