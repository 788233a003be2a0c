package pairing

import (
	"math"

	"github.com/OOAAHH/RNAView/structure"
)

// classifyStack implements C7: a candidate that failed hydrogen-bond
// pairing (or never qualified for the pair band) is reclassified as
// stacked when its base planes are nearly parallel, separated by a
// perpendicular gap typical of pi-stacking, and not offset too far
// laterally (§4.6).
func classifyStack(fi, fj structure.Frame, c Constants) (bool, bool) {
	if !fi.Valid || !fj.Valid {
		return false, false
	}

	cosTheta := math.Abs(fi.Normal.Dot(fj.Normal))
	if cosTheta < c.StackNormalCos {
		return false, false
	}

	offset := fj.Origin.Sub(fi.Origin)
	perp := math.Abs(offset.Dot(fi.Normal))
	if perp < c.StackPerpMin || perp > c.StackPerpMax {
		return false, false
	}

	lateral := math.Sqrt(math.Max(0, offset.Dot(offset)-perp*perp))
	if lateral > c.StackLateralMax {
		return false, false
	}

	return true, true
}
