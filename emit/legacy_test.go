package emit_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/OOAAHH/RNAView/emit"
	"github.com/OOAAHH/RNAView/pairing"
)

func TestWriteLegacyPreambleShape(t *testing.T) {
	out := emit.WriteLegacyPreamble("1ehz.pdb", pairing.Default)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Equal(t, "PDB data file name: 1ehz.pdb", lines[0])
	assert.Equal(t, "CRITERIA USED TO GENERATE BASE-PAIR: ", lines[2])
	assert.Len(t, lines, 10)
	assert.True(t, strings.HasPrefix(lines[1], "----"))
	assert.True(t, strings.HasPrefix(lines[len(lines)-1], "----"))
}
