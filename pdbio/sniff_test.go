package pdbio_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/OOAAHH/RNAView/pdbio"
)

func TestParseAppliesConfiguredMinChainBases(t *testing.T) {
	lines := []string{
		atomLine(1, "P", ' ', "G", 'A', 1, ' ', 0, 0, 0),
		atomLine(2, "C1'", ' ', "G", 'A', 1, ' ', 1, 0, 0),
		atomLine(3, "P", ' ', "C", 'A', 2, ' ', 0, 5, 0),
		atomLine(4, "C1'", ' ', "C", 'A', 2, ' ', 1, 5, 0),
		atomLine(5, "P", ' ', "U", 'A', 3, ' ', 0, 10, 0),
		atomLine(6, "C1'", ' ', "U", 'A', 3, ' ', 1, 10, 0),
	}
	path := writeTempPDB(t, lines)

	opts := pdbio.DefaultOptions()
	opts.MinChainBases = 4
	_, _, err := pdbio.Parse(path, opts)
	assert.Error(t, err, "chain A has only 3 residues, below the configured minimum of 4")
}

func TestParseZeroMinChainBasesFallsBackToDefault(t *testing.T) {
	lines := []string{
		atomLine(1, "P", ' ', "G", 'A', 1, ' ', 0, 0, 0),
		atomLine(2, "C1'", ' ', "G", 'A', 1, ' ', 1, 0, 0),
		atomLine(3, "P", ' ', "C", 'A', 2, ' ', 0, 5, 0),
		atomLine(4, "C1'", ' ', "C", 'A', 2, ' ', 1, 5, 0),
	}
	path := writeTempPDB(t, lines)

	s, _, err := pdbio.Parse(path, pdbio.Options{})
	assert.NoError(t, err)
	assert.Len(t, s.Residues, 2)
}
