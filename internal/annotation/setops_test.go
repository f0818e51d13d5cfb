package annotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntersection(t *testing.T) {
	c := contentFixture()
	other := NewCollection([]Event{c.Events[1].Copy()})

	out := c.Intersection(other)
	require.Equal(t, 1, out.Len())
	assert.Equal(t, "mouse clicking", out.Events[0].EventLabel)
}

func TestIntersectionDisjoint(t *testing.T) {
	c := contentFixture()
	other := NewCollection([]Event{
		{Filename: "other.wav", EventLabel: "dog", Onset: Float(0.0), Offset: Float(1.0)},
	})

	assert.Equal(t, 0, c.Intersection(other).Len())
}

// Difference returns self-sourced records whose id falls in the
// symmetric difference of the two id sets. Records only present in the
// other collection have no source record here and are never returned.
func TestDifferenceReturnsSelfOnlyRecords(t *testing.T) {
	c := contentFixture()
	other := NewCollection([]Event{
		c.Events[0].Copy(),
		{Filename: "other.wav", EventLabel: "dog", Onset: Float(0.0), Offset: Float(1.0)},
	})

	out := c.Difference(other)

	// The shared record is excluded; the dog record exists only in
	// other and cannot be sourced from c.
	require.Equal(t, 4, out.Len())
	for i := range out.Events {
		assert.NotEqual(t, c.Events[0].ID(), out.Events[i].ID())
		assert.NotEqual(t, "dog", out.Events[i].EventLabel)
	}
}

func TestDifferenceIdentical(t *testing.T) {
	c := contentFixture()
	assert.Equal(t, 0, c.Difference(c.Copy()).Len())
}
