package structure_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/OOAAHH/RNAView/structure"
)

func TestTruncateChainIDs(t *testing.T) {
	s := &structure.Structure{
		Residues: []structure.Residue{
			{ID: structure.ResidueID{Chain: "AA"}},
			{ID: structure.ResidueID{Chain: "B"}},
			{ID: structure.ResidueID{Chain: "C1"}},
		},
	}
	structure.TruncateChainIDs(s)
	assert.Equal(t, "A", s.Residues[0].ID.Chain)
	assert.Equal(t, "B", s.Residues[1].ID.Chain)
	assert.Equal(t, "C", s.Residues[2].ID.Chain)
}
