package pairing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/OOAAHH/RNAView/structure"
)

func TestClassifyStackAcceptsParallelStackedPlanes(t *testing.T) {
	fi := structure.Frame{Origin: structure.Vec3{X: 0, Y: 0, Z: 0}, Normal: structure.Vec3{Z: 1}, Valid: true}
	fj := structure.Frame{Origin: structure.Vec3{X: 0.5, Y: 0.5, Z: 3.4}, Normal: structure.Vec3{Z: 1}, Valid: true}
	stacked, ok := classifyStack(fi, fj, Default)
	assert.True(t, ok)
	assert.True(t, stacked)
}

func TestClassifyStackRejectsTooCloseOrFar(t *testing.T) {
	fi := structure.Frame{Origin: structure.Vec3{}, Normal: structure.Vec3{Z: 1}, Valid: true}
	fjClose := structure.Frame{Origin: structure.Vec3{Z: 1.0}, Normal: structure.Vec3{Z: 1}, Valid: true}
	_, ok := classifyStack(fi, fjClose, Default)
	assert.False(t, ok)

	fjFar := structure.Frame{Origin: structure.Vec3{Z: 10.0}, Normal: structure.Vec3{Z: 1}, Valid: true}
	_, ok = classifyStack(fi, fjFar, Default)
	assert.False(t, ok)
}

func TestClassifyStackRejectsLargeLateralOffset(t *testing.T) {
	fi := structure.Frame{Origin: structure.Vec3{}, Normal: structure.Vec3{Z: 1}, Valid: true}
	fj := structure.Frame{Origin: structure.Vec3{X: 20, Z: 3.4}, Normal: structure.Vec3{Z: 1}, Valid: true}
	_, ok := classifyStack(fi, fj, Default)
	assert.False(t, ok)
}

func TestClassifyStackRejectsInvalidFrames(t *testing.T) {
	fi := structure.Frame{Valid: false}
	fj := structure.Frame{Origin: structure.Vec3{Z: 3.4}, Normal: structure.Vec3{Z: 1}, Valid: true}
	_, ok := classifyStack(fi, fj, Default)
	assert.False(t, ok)
}
