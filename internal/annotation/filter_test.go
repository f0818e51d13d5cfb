package annotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterSingleField(t *testing.T) {
	c := contentFixture()

	assert.Equal(t, 3, c.Filter(Filter{SceneLabel: "office"}).Len())
	assert.Equal(t, 2, c.Filter(Filter{EventLabel: "speech"}).Len())
	assert.Equal(t, 3, c.Filter(Filter{Filename: "audio_001.wav"}).Len())
}

func TestFilterAndSemantics(t *testing.T) {
	c := contentFixture()

	out := c.Filter(Filter{SceneLabel: "office", EventLabel: "speech"})
	assert.Equal(t, 1, out.Len())
	assert.Equal(t, "audio_001.wav", out.Events[0].Filename)
	assert.Equal(t, "speech", out.Events[0].EventLabel)
}

func TestFilterListOrSemantics(t *testing.T) {
	c := contentFixture()

	out := c.Filter(Filter{EventList: []string{"printer", "mouse clicking"}})
	assert.Equal(t, 3, out.Len())

	// Singular value and list merge with OR within the field.
	out = c.Filter(Filter{EventLabel: "speech", EventList: []string{"printer"}})
	assert.Equal(t, 4, out.Len())
}

func TestFilterTags(t *testing.T) {
	c := tagFixture()

	assert.Equal(t, 2, c.Filter(Filter{Tag: "cat"}).Len())
	assert.Equal(t, 3, c.Filter(Filter{TagList: []string{"cat", "dog"}}).Len())
	assert.Equal(t, 1, c.Filter(Filter{Tag: "bird", TagList: []string{"cat"}}).Len())
	assert.Equal(t, 0, c.Filter(Filter{Tag: "horse"}).Len())
}

func TestFilterResultDoesNotAliasSource(t *testing.T) {
	c := contentFixture()
	out := c.Filter(Filter{SceneLabel: "office"})

	*out.Events[0].Onset = 99.0
	assert.InDelta(t, 1.0, *c.Events[0].Onset, 1e-9)
}
