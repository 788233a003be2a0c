package structure_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/OOAAHH/RNAView/structure"
)

func TestDistance(t *testing.T) {
	a := structure.Vec3{X: 0, Y: 0, Z: 0}
	b := structure.Vec3{X: 3, Y: 4, Z: 0}
	assert.InDelta(t, 5.0, structure.Distance(a, b), 1e-9)
}

func TestAngleBetweenOrthogonal(t *testing.T) {
	a := structure.Vec3{X: 1, Y: 0, Z: 0}
	b := structure.Vec3{X: 0, Y: 1, Z: 0}
	assert.InDelta(t, math.Pi/2, structure.AngleBetween(a, b), 1e-9)
}

func TestDihedralRightAngle(t *testing.T) {
	p0 := structure.Vec3{X: 1, Y: 0, Z: 1}
	p1 := structure.Vec3{X: 0, Y: 0, Z: 1}
	p2 := structure.Vec3{X: 0, Y: 0, Z: 0}
	p3 := structure.Vec3{X: 0, Y: 1, Z: 0}
	got := structure.Dihedral(p0, p1, p2, p3)
	assert.InDelta(t, math.Pi/2, math.Abs(got), 1e-9)
}

func TestPlaneOffset(t *testing.T) {
	origin := structure.Vec3{}
	normal := structure.Vec3{X: 0, Y: 0, Z: 1}
	p := structure.Vec3{X: 5, Y: 5, Z: 2}
	assert.InDelta(t, 2.0, structure.PlaneOffset(p, origin, normal), 1e-9)
}
