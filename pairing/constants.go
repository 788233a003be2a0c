package pairing

// Constants centralises the geometric and hydrogen-bond thresholds used
// throughout C4-C7, per §9's "multiple geometric predicates with
// tie-breaks" design note: named here once, shared by every predicate
// and by the tests, instead of scattered as magic numbers. The values are
// the "≈" figures given in the component design sections, except the
// CandPerp* bands, which those sections leave open.
type Constants struct {
	// CandOriginMax is D_CAND (§4.3): the maximum origin-to-origin
	// distance for a pair to be considered a candidate at all.
	CandOriginMax float64

	// CandNormalAnglePairMax and CandNormalAngleStackMax are the
	// permitted inter-normal angle bands (§4.3) for pair-like and
	// stack-like candidates respectively.
	CandNormalAnglePairMax  float64
	CandNormalAngleStackMax float64

	// CandPerpPairMax bounds the perpendicular projection of the
	// origin-origin vector onto frame i's normal for the pair band
	// (§4.3): a coplanar pair keeps this small. CandPerpStackMin and
	// CandPerpStackMax give the same projection's band for the stack
	// band, looser than C7's final StackPerpMin/StackPerpMax so this
	// cheap prune never rejects a candidate the fine-grained check would
	// have accepted.
	CandPerpPairMax                    float64
	CandPerpStackMin, CandPerpStackMax float64

	// HBondMaxDist is D_HB (§4.4): heavy-atom donor-acceptor distance
	// ceiling.
	HBondMaxDist float64

	// HBondMinAngle is A_HB_MIN (§4.4): the minimum pseudo-angle formed
	// by (donor, donor-neighbour, acceptor).
	HBondMinAngle float64

	// StackNormalCos is the |n_i . n_j| floor for stacking (§4.6),
	// expressed directly as a cosine so callers need not re-derive it
	// from an angle.
	StackNormalCos float64

	// StackPerpMin and StackPerpMax bound the inter-plane perpendicular
	// separation for stacking (§4.6).
	StackPerpMin, StackPerpMax float64

	// StackLateralMax bounds the origin-origin lateral offset for
	// stacking (§4.6).
	StackLateralMax float64
}

// Default holds the thresholds named directly in the component design
// sections (§4.3, §4.4, §4.6). emit.WriteLegacyPreamble prints six of
// these fields (CandOriginMax, CandNormalAnglePairMax, HBondMaxDist,
// HBondMinAngle, StackPerpMin, StackPerpMax) as the criteria lines of
// the legacy BPRS preamble.
var Default = Constants{
	CandOriginMax:           15.0,
	CandNormalAnglePairMax:  65.0,
	CandNormalAngleStackMax: 30.0,
	CandPerpPairMax:         2.5,
	CandPerpStackMin:        1.5,
	CandPerpStackMax:        6.0,
	HBondMaxDist:            3.4,
	HBondMinAngle:           90.0,
	StackNormalCos:          0.8660254037844387, // cos(30 deg)
	StackPerpMin:            2.8,
	StackPerpMax:            4.2,
	StackLateralMax:         5.0,
}
