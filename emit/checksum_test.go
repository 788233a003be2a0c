package emit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/OOAAHH/RNAView/emit"
)

func TestChecksumHexIsDeterministic(t *testing.T) {
	h1 := emit.ChecksumHex(sampleResult())
	h2 := emit.ChecksumHex(sampleResult())
	assert.Equal(t, h1, h2)
	assert.Len(t, h1, 64)
}

func TestChecksumHexChangesWithContent(t *testing.T) {
	r := sampleResult()
	h1 := emit.ChecksumHex(r)
	r.Stats.TotalBases++
	h2 := emit.ChecksumHex(r)
	assert.NotEqual(t, h1, h2)
}

func TestChecksumHexInvariantToInputOrder(t *testing.T) {
	r1 := sampleResult()
	r2 := sampleResult()
	r2.BasePairs[0], r2.BasePairs[1] = r2.BasePairs[1], r2.BasePairs[0]
	assert.Equal(t, emit.ChecksumHex(r1), emit.ChecksumHex(r2))
}
