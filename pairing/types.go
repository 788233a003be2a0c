// Package pairing implements the candidate filter, hydrogen-bond
// enumerator, Leontis-Westhof/Saenger classifier, stacking detector,
// pair-set reducer, multiplet synthesis and statistics that together
// form the base-pair detection and classification core: given a parsed
// structure.Structure, Analyze produces the finalized, deterministic
// record set.
package pairing

import "github.com/OOAAHH/RNAView/structure"

// BaseIndex is the 1-based ordinal of a residue within the subset
// recognised as a base, in upstream presentation order (§3).
type BaseIndex int

// Kind is the exhaustive partition of a PairRecord's classification.
type Kind string

const (
	KindPair    Kind = "pair"
	KindStacked Kind = "stacked"
	KindUnknown Kind = "unknown"
)

// PairRecord is one finalized entry in the base-pair record set (§3).
type PairRecord struct {
	I, J BaseIndex

	ResI, ResJ structure.ResidueID
	LetterI, LetterJ structure.BaseLetter

	Kind Kind

	// LW is the two-character edge code joined by "/" (e.g. "W/W",
	// "+/-"), set only when Kind == KindPair.
	LW string

	// Orientation is "cis" or "tran", set only when Kind == KindPair.
	Orientation string

	SynI, SynJ bool

	// Saenger is a roman-numeral code, "n/a", or "" (absent), set only
	// when Kind == KindPair.
	Saenger string

	// Note carries the tail annotation: a tertiary mark ("!") and/or a
	// secondary-structure observation string.
	Note string
}

// Multiplet is a higher-order base association derived from the pair
// graph (§3, §4.8): three or more BaseIndex values that form a
// connected component.
type Multiplet struct {
	Indices []BaseIndex
	Text    string
}

// Stats aggregates totals over the finalized record set (§4.9).
type Stats struct {
	TotalPairs int
	TotalBases int
	// PairTypeCounts keys are "<edge_i><edge_j>-<orient>", e.g. "WW-cis".
	PairTypeCounts map[string]int
}

// Result is the complete output of Analyze: the finalized pair set,
// derived multiplets, and aggregate statistics, immutable once returned
// (§3's lifecycle invariant).
type Result struct {
	BasePairs  []PairRecord
	Multiplets []Multiplet
	Stats      Stats
}
