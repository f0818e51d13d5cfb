package annotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniqueAccessors(t *testing.T) {
	c := contentFixture()

	assert.Equal(t, []string{"audio_001.wav", "audio_002.wav"}, c.UniqueFiles())
	assert.Equal(t, []string{"mouse clicking", "printer", "speech"}, c.UniqueEventLabels())
	assert.Equal(t, []string{"meeting", "office"}, c.UniqueSceneLabels())
	assert.Equal(t, 2, c.FileCount())
	assert.Equal(t, 3, c.EventLabelCount())
	assert.Equal(t, 2, c.SceneLabelCount())
}

func TestUniqueTags(t *testing.T) {
	c := tagFixture()

	assert.Equal(t, []string{"bird", "cat", "dog"}, c.UniqueTags())
	assert.Equal(t, 3, c.TagCount())
}

func TestMaxOffset(t *testing.T) {
	c := contentFixture()
	assert.InDelta(t, 10.0, c.MaxOffset(), 1e-9)

	empty := &Collection{}
	assert.InDelta(t, 0.0, empty.MaxOffset(), 1e-9)
}

func TestAddTime(t *testing.T) {
	c := contentFixture()
	c.AddTime(2.5)

	assert.InDelta(t, 3.5, *c.Events[0].Onset, 1e-9)
	assert.InDelta(t, 12.5, *c.Events[0].Offset, 1e-9)
}

func TestSortByOnset(t *testing.T) {
	c := NewCollection([]Event{
		{Filename: "a.wav", Onset: Float(5.0), Offset: Float(6.0)},
		{Filename: "a.wav", Onset: Float(1.0), Offset: Float(2.0)},
		{Filename: "a.wav", Onset: Float(3.0), Offset: Float(4.0)},
	})
	c.SortByOnset()

	assert.InDelta(t, 1.0, *c.Events[0].Onset, 1e-9)
	assert.InDelta(t, 3.0, *c.Events[1].Onset, 1e-9)
	assert.InDelta(t, 5.0, *c.Events[2].Onset, 1e-9)
}

func TestCollectionCopyDoesNotAlias(t *testing.T) {
	c := contentFixture()
	clone := c.Copy()

	*clone.Events[0].Onset = 42.0
	clone.Events[0].EventLabel = "altered"

	assert.InDelta(t, 1.0, *c.Events[0].Onset, 1e-9)
	assert.Equal(t, "speech", c.Events[0].EventLabel)
}

func TestContentIDs(t *testing.T) {
	c := contentFixture()
	ids := c.ContentIDs()

	assert.Len(t, ids, c.Len())
	seen := make(map[string]struct{})
	for _, id := range ids {
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, c.Len(), "fixture events all have distinct content")
}
