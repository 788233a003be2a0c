package pairing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/OOAAHH/RNAView/structure"
)

func TestSynthesizeMultipletsFindsTriangle(t *testing.T) {
	records := []PairRecord{
		{I: 1, J: 2, Kind: KindPair, LetterI: structure.Canonical('G'), LetterJ: structure.Canonical('C'), LW: "W/W"},
		{I: 2, J: 3, Kind: KindPair, LetterI: structure.Canonical('C'), LetterJ: structure.Canonical('A'), LW: "H/S"},
		{I: 1, J: 3, Kind: KindPair, LetterI: structure.Canonical('G'), LetterJ: structure.Canonical('A'), LW: "S/H"},
	}
	out := synthesizeMultiplets(records)
	assert.Len(t, out, 1)
	assert.Equal(t, []BaseIndex{1, 2, 3}, out[0].Indices)
	assert.Equal(t, "1: G-C (W/W)+1: G-A (S/H)+2: C-A (H/S)", out[0].Text)
}

func TestSynthesizeMultipletsIgnoresSimpleDimers(t *testing.T) {
	records := []PairRecord{
		{I: 1, J: 2, Kind: KindPair},
		{I: 3, J: 4, Kind: KindPair},
	}
	assert.Empty(t, synthesizeMultiplets(records))
}

func TestSynthesizeMultipletsIgnoresStackedAndUnknown(t *testing.T) {
	records := []PairRecord{
		{I: 1, J: 2, Kind: KindStacked},
		{I: 2, J: 3, Kind: KindUnknown},
		{I: 1, J: 3, Kind: KindStacked},
	}
	assert.Empty(t, synthesizeMultiplets(records))
}

func TestSynthesizeMultipletsHandlesDisjointComponents(t *testing.T) {
	records := []PairRecord{
		{I: 1, J: 2, Kind: KindPair},
		{I: 2, J: 3, Kind: KindPair},
		{I: 1, J: 3, Kind: KindPair},
		{I: 10, J: 11, Kind: KindPair},
		{I: 11, J: 12, Kind: KindPair},
		{I: 10, J: 12, Kind: KindPair},
	}
	out := synthesizeMultiplets(records)
	assert.Len(t, out, 2)
	assert.Equal(t, []BaseIndex{1, 2, 3}, out[0].Indices)
	assert.Equal(t, []BaseIndex{10, 11, 12}, out[1].Indices)
}
