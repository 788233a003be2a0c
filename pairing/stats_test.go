package pairing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeStats(t *testing.T) {
	records := []PairRecord{
		{Kind: KindPair, LW: "+/+", Orientation: "cis"},
		{Kind: KindPair, LW: "+/+", Orientation: "cis"},
		{Kind: KindPair, LW: "+/+", Orientation: "tran"},
		{Kind: KindPair, LW: "W/W", Orientation: "cis"},
		{Kind: KindStacked},
		{Kind: KindUnknown},
	}
	stats := computeStats(6, records)
	assert.Equal(t, 6, stats.TotalBases)
	assert.Equal(t, 4, stats.TotalPairs)
	assert.Equal(t, 2, stats.PairTypeCounts["++-cis"])
	assert.Equal(t, 1, stats.PairTypeCounts["++-tra"])
	assert.Equal(t, 1, stats.PairTypeCounts["WW-cis"])
	assert.Len(t, stats.PairTypeCounts, 3)
}

func TestPairTypeKey(t *testing.T) {
	assert.Equal(t, "++-cis", pairTypeKey("+/+", "cis"))
	assert.Equal(t, "WW-tra", pairTypeKey("W/W", "tran"))
}
