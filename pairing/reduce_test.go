package pairing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReduceDedupPrefersHydrogenBondOverStack(t *testing.T) {
	in := []verdict{
		{I: 0, J: 1, Kind: KindStacked},
		{I: 0, J: 1, Kind: KindPair, LW: "+/+", BondCount: 2},
	}
	out := reduce(in, nil)
	assert.Len(t, out, 1)
	assert.Equal(t, KindPair, out[0].Kind)
}

func TestReduceSortsAscendingByIJ(t *testing.T) {
	in := []verdict{
		{I: 3, J: 4, Kind: KindStacked},
		{I: 0, J: 5, Kind: KindStacked},
		{I: 0, J: 1, Kind: KindStacked},
	}
	out := reduce(in, nil)
	assert.Equal(t, []int{0, 0, 3}, []int{out[0].I, out[1].I, out[2].I})
	assert.Equal(t, []int{1, 5, 4}, []int{out[0].J, out[1].J, out[2].J})
}

func TestReduceMarksNonBestPairsTertiary(t *testing.T) {
	// Residue 1 is a candidate partner in two pairs; only the
	// stronger (higher bond count) one should survive as non-tertiary.
	in := []verdict{
		{I: 0, J: 1, Kind: KindPair, BondCount: 3},
		{I: 1, J: 2, Kind: KindPair, BondCount: 1},
	}
	out := reduce(in, nil)
	assert.Len(t, out, 2)
	for _, v := range out {
		if v.I == 0 && v.J == 1 {
			assert.Empty(t, v.Note)
		}
		if v.I == 1 && v.J == 2 {
			assert.True(t, strings.Contains(v.Note, "!"))
		}
	}
}

func TestReduceAnnotatesTertiaryPairsWithBondComposition(t *testing.T) {
	// Three disjoint groups, each with a strong best pair claiming its
	// two residues and a weaker non-best pair whose tertiary mark must
	// reflect its own bond composition.
	in := []verdict{
		{I: 0, J: 1, Kind: KindPair, BondCount: 5},
		{I: 1, J: 2, Kind: KindPair, BondCount: 1, EdgeI: 'W', EdgeJ: 'H'},

		{I: 10, J: 11, Kind: KindPair, BondCount: 5},
		{I: 11, J: 12, Kind: KindPair, BondCount: 2, EdgeI: 'W', EdgeJ: 'S'},

		{I: 20, J: 21, Kind: KindPair, BondCount: 5},
		{I: 21, J: 22, Kind: KindPair, BondCount: 2},
	}
	out := reduce(in, nil)
	byKey := map[[2]int]verdict{}
	for _, v := range out {
		byKey[[2]int{v.I, v.J}] = v
	}
	assert.Empty(t, byKey[[2]int{0, 1}].Note)
	assert.Equal(t, "!1H(b_b)", byKey[[2]int{1, 2}].Note)
	assert.Empty(t, byKey[[2]int{10, 11}].Note)
	assert.Equal(t, "!(b_s)", byKey[[2]int{11, 12}].Note)
	assert.Empty(t, byKey[[2]int{20, 21}].Note)
	assert.Equal(t, "!", byKey[[2]int{21, 22}].Note)
}

func TestReduceTicksBestPairCheckPairsCallOnProfile(t *testing.T) {
	in := []verdict{
		{I: 0, J: 1, Kind: KindPair, BondCount: 3},
		{I: 1, J: 2, Kind: KindPair, BondCount: 1},
		{I: 3, J: 4, Kind: KindStacked},
	}
	prof := &Profile{}
	reduce(in, prof)
	assert.EqualValues(t, 2, prof.BestPairCheckPairsCalls)
}

func TestReduceLeavesUnknownAndStackedAlone(t *testing.T) {
	in := []verdict{
		{I: 0, J: 1, Kind: KindUnknown, Note: "no classifiable edge"},
		{I: 2, J: 3, Kind: KindStacked},
	}
	out := reduce(in, nil)
	for _, v := range out {
		if v.Kind == KindUnknown {
			assert.Equal(t, "no classifiable edge", v.Note)
		}
		if v.Kind == KindStacked {
			assert.Empty(t, v.Note)
		}
	}
}
