package structure_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/OOAAHH/RNAView/structure"
)

func TestAssignLetterCanonical(t *testing.T) {
	cases := []struct {
		resname string
		want    byte
	}{
		{"A", 'A'}, {"ADE", 'A'},
		{"DG", 'G'},
		{"C", 'C'},
		{"U", 'U'},
		{"DT", 'T'},
	}
	for _, c := range cases {
		l, ok := structure.AssignLetter(c.resname, nil)
		assert.True(t, ok, c.resname)
		assert.False(t, l.IsModified(), c.resname)
		assert.Equal(t, c.want, l.Byte(), c.resname)
	}
}

func TestAssignLetterModifiedByResname(t *testing.T) {
	l, ok := structure.AssignLetter("PSU", nil)
	assert.True(t, ok)
	assert.True(t, l.IsModified())
	assert.Equal(t, byte('u'), l.Byte())
}

func TestAssignLetterAtomHeuristic(t *testing.T) {
	atoms := []structure.Atom{
		{Name: "N1"}, {Name: "C2"}, {Name: "N3"}, {Name: "C4"},
		{Name: "C5"}, {Name: "C6"}, {Name: "N7"}, {Name: "C8"}, {Name: "N9"},
		{Name: "N6"},
	}
	l, ok := structure.AssignLetter("XYZ", atoms)
	assert.True(t, ok)
	assert.True(t, l.IsModified())
	assert.Equal(t, byte('a'), l.Byte())
}

func TestAssignLetterUnrecognised(t *testing.T) {
	_, ok := structure.AssignLetter("HOH", nil)
	assert.False(t, ok)
}

func TestIsPairable(t *testing.T) {
	assert.True(t, structure.IsPairable(structure.Canonical('A')))
	assert.False(t, structure.IsPairable(structure.Modified('n')))
}
