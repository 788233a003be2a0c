package pdbio_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/OOAAHH/RNAView/pdbio"
)

func atomLine(serial int, name string, altloc byte, resname string, chain byte, resseq int, icode byte, x, y, z float64) string {
	return fmt.Sprintf("ATOM  %5d %-4s%c%3s %c%4d%c   %8.3f%8.3f%8.3f%6.2f%6.2f          %2s",
		serial, name, altloc, resname, chain, resseq, icode, x, y, z, 1.0, 0.0, "")
}

func writeTempPDB(t *testing.T, lines []string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "test.pdb")
	err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644)
	assert.NoError(t, err)
	return path
}

func TestParsePDBTwoResidueChain(t *testing.T) {
	lines := []string{
		atomLine(1, "P", ' ', "G", 'A', 1, ' ', 0, 0, 0),
		atomLine(2, "C1'", ' ', "G", 'A', 1, ' ', 1, 0, 0),
		atomLine(3, "N9", ' ', "G", 'A', 1, ' ', 2, 0, 0),
		atomLine(4, "P", ' ', "C", 'A', 2, ' ', 0, 5, 0),
		atomLine(5, "C1'", ' ', "C", 'A', 2, ' ', 1, 5, 0),
		"END",
	}
	path := writeTempPDB(t, lines)

	s, numModels, err := pdbio.ParsePDB(path)
	assert.NoError(t, err)
	assert.Equal(t, 1, numModels)
	assert.Len(t, s.Residues, 2)
	assert.Equal(t, "G", s.Residues[0].Name)
	assert.Equal(t, 3, s.Residues[0].AtomEnd-s.Residues[0].AtomStart)
	assert.Equal(t, "C", s.Residues[1].Name)
}

func TestParsePDBDropsSingletonChains(t *testing.T) {
	lines := []string{
		atomLine(1, "P", ' ', "G", 'A', 1, ' ', 0, 0, 0),
		atomLine(2, "C1'", ' ', "G", 'A', 1, ' ', 1, 0, 0),
		atomLine(3, "P", ' ', "C", 'A', 2, ' ', 0, 5, 0),
		atomLine(4, "C1'", ' ', "C", 'A', 2, ' ', 1, 5, 0),
		atomLine(5, "P", ' ', "NA", 'B', 1, ' ', 9, 9, 9),
	}
	path := writeTempPDB(t, lines)

	s, _, err := pdbio.ParsePDB(path)
	assert.NoError(t, err)
	for _, r := range s.Residues {
		assert.Equal(t, "A", r.ID.Chain)
	}
}

func TestParsePDBDropsWater(t *testing.T) {
	lines := []string{
		atomLine(1, "P", ' ', "G", 'A', 1, ' ', 0, 0, 0),
		atomLine(2, "C1'", ' ', "G", 'A', 1, ' ', 1, 0, 0),
		atomLine(3, "P", ' ', "C", 'A', 2, ' ', 0, 5, 0),
		atomLine(4, "C1'", ' ', "C", 'A', 2, ' ', 1, 5, 0),
		atomLine(5, "O", ' ', "HOH", 'A', 3, ' ', 9, 9, 9),
	}
	path := writeTempPDB(t, lines)

	s, _, err := pdbio.ParsePDB(path)
	assert.NoError(t, err)
	for _, r := range s.Residues {
		assert.NotEqual(t, "HOH", r.Name)
	}
}
