package emit

import (
	"fmt"
	"strings"

	"github.com/OOAAHH/RNAView/pairing"
)

const legacySeparator = "-----------------------------------------------------------"

// WriteLegacyPreamble renders the ten-line BPRS criteria block (six of
// its lines are criterion values) that precedes BEGIN_base-pair in the
// legacy .out format, for byte-exact
// compatibility with tooling that still expects it (§12 supplemented
// feature; the §6.1 contract itself only requires the three bracketed
// sections). pdbDataFileName is echoed verbatim as the first line, the
// way the legacy tool stamped its input path.
//
// Grounded on original_source/rust/src/out_full.rs's parse_out_full/
// parse_bprs: a "PDB data file name:" header, a dashed separator, the
// "CRITERIA USED TO GENERATE BASE-PAIR: " label, six single-value
// lines, and a closing separator.
func WriteLegacyPreamble(pdbDataFileName string, c pairing.Constants) string {
	var b strings.Builder
	fmt.Fprintf(&b, "PDB data file name: %s\n", pdbDataFileName)
	b.WriteString(legacySeparator)
	b.WriteByte('\n')
	b.WriteString("CRITERIA USED TO GENERATE BASE-PAIR: \n")
	criteria := []float64{
		c.CandOriginMax,
		c.CandNormalAnglePairMax,
		c.HBondMaxDist,
		c.HBondMinAngle,
		c.StackPerpMin,
		c.StackPerpMax,
	}
	for _, v := range criteria {
		fmt.Fprintf(&b, "%.3f\n", v)
	}
	b.WriteString(legacySeparator)
	b.WriteByte('\n')
	return b.String()
}
