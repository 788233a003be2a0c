package pairing_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/OOAAHH/RNAView/pairing"
	"github.com/OOAAHH/RNAView/structure"
)

func TestAnalyzeRejectsNilStructure(t *testing.T) {
	_, err := pairing.Analyze(nil, pairing.Default, nil, nil)
	assert.True(t, errors.Is(err, pairing.ErrMalformedStructure))
}

func TestAnalyzeReturnsEmptyResultForStructureWithNoPairableResidues(t *testing.T) {
	var malformed []string
	sink := recordingSink{onMalformed: func(reason string) {
		malformed = append(malformed, reason)
	}}

	s := &structure.Structure{
		Atoms: []structure.Atom{{Name: "PB", X: 0, Y: 0, Z: 0}},
		Residues: []structure.Residue{
			{ID: structure.ResidueID{Chain: "A", ResSeq: 1}, Name: "HOH", AtomStart: 0, AtomEnd: 1},
		},
	}
	result, err := pairing.Analyze(s, pairing.Default, sink, nil)
	assert.NoError(t, err)
	assert.Empty(t, result.BasePairs)
	assert.Empty(t, result.Multiplets)
	assert.Equal(t, 0, result.Stats.TotalPairs)
	assert.Equal(t, 0, result.Stats.TotalBases)
	assert.Len(t, malformed, 1)
}

func TestAnalyzeSkipsUnrecognisedResiduesViaSink(t *testing.T) {
	var skipped []string
	sink := recordingSink{onSkip: func(reason, chain string, resseq int) {
		skipped = append(skipped, chain)
	}}

	s := &structure.Structure{
		Atoms: []structure.Atom{{Name: "PB", X: 0, Y: 0, Z: 0}},
		Residues: []structure.Residue{
			{ID: structure.ResidueID{Chain: "A", ResSeq: 1}, Name: "HOH", AtomStart: 0, AtomEnd: 1},
		},
	}
	_, err := pairing.Analyze(s, pairing.Default, sink, nil)
	assert.NoError(t, err)
	assert.Equal(t, []string{"A"}, skipped)
}

type recordingSink struct {
	onSkip      func(reason, chain string, resseq int)
	onMalformed func(reason string)
}

func (r recordingSink) SkippedResidue(reason, chain string, resseq int) {
	if r.onSkip != nil {
		r.onSkip(reason, chain, resseq)
	}
}

func (r recordingSink) AmbiguousPair(reason string, i, j int) {}

func (r recordingSink) MalformedStructure(reason string) {
	if r.onMalformed != nil {
		r.onMalformed(reason)
	}
}
