package pairing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/OOAAHH/RNAView/structure"
)

func validFrame(origin structure.Vec3, normal structure.Vec3) structure.Frame {
	return structure.Frame{Origin: origin, Normal: normal, Valid: true}
}

func TestCandidateFilterInvalidFrame(t *testing.T) {
	fi := structure.Frame{Valid: false}
	fj := validFrame(structure.Vec3{}, structure.Vec3{Z: 1})
	assert.False(t, candidateFilter(fi, fj, Default).any())
}

func TestCandidateFilterTooFar(t *testing.T) {
	fi := validFrame(structure.Vec3{X: 0}, structure.Vec3{Z: 1})
	fj := validFrame(structure.Vec3{X: 100}, structure.Vec3{Z: 1})
	assert.False(t, candidateFilter(fi, fj, Default).any())
}

func TestCandidateFilterPairBandParallelClose(t *testing.T) {
	// Purely lateral offset (no perpendicular component along the
	// normal): coplanar, so it qualifies for the pair band only.
	fi := validFrame(structure.Vec3{X: 0}, structure.Vec3{Z: 1})
	fj := validFrame(structure.Vec3{X: 5}, structure.Vec3{Z: 1})
	band := candidateFilter(fi, fj, Default)
	assert.True(t, band.pairBand)
	assert.False(t, band.stackBand)
}

func TestCandidateFilterPairBandOnlyAtWiderAngle(t *testing.T) {
	// 45 degree inter-normal angle: within the pair band, outside the
	// tighter stack band.
	fi := validFrame(structure.Vec3{X: 0}, structure.Vec3{Z: 1})
	fj := validFrame(structure.Vec3{X: 5}, structure.Vec3{Y: 1, Z: 1})
	band := candidateFilter(fi, fj, Default)
	assert.True(t, band.pairBand)
	assert.False(t, band.stackBand)
}

func TestCandidateFilterStackBandAtVerticalOffset(t *testing.T) {
	// Nearly parallel normals with a perpendicular offset in the
	// stacking range (and outside the pair band's coplanar range).
	fi := validFrame(structure.Vec3{X: 0, Z: 0}, structure.Vec3{Z: 1})
	fj := validFrame(structure.Vec3{X: 0, Z: 3.4}, structure.Vec3{Z: 1})
	band := candidateFilter(fi, fj, Default)
	assert.False(t, band.pairBand)
	assert.True(t, band.stackBand)
}

func TestCandidateFilterRejectsPerpendicularOffsetOutsideBothBands(t *testing.T) {
	fi := validFrame(structure.Vec3{X: 0, Z: 0}, structure.Vec3{Z: 1})
	fj := validFrame(structure.Vec3{X: 0, Z: 8}, structure.Vec3{Z: 1})
	band := candidateFilter(fi, fj, Default)
	assert.False(t, band.any())
}

func TestCandidatePairsSkipsInvalidFrames(t *testing.T) {
	frames := []structure.Frame{
		validFrame(structure.Vec3{X: 0}, structure.Vec3{Z: 1}),
		{Valid: false},
		validFrame(structure.Vec3{X: 5}, structure.Vec3{Z: 1}),
	}
	prof := &Profile{}
	out := candidatePairs(frames, Default, prof)
	assert.Len(t, out, 1)
	assert.Equal(t, 0, out[0].I)
	assert.Equal(t, 2, out[0].J)
	assert.EqualValues(t, 1, prof.CandPairs)
}
