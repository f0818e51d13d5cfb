package annotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventStatCounts(t *testing.T) {
	c := contentFixture()

	stats := c.EventStatCounts(nil)
	require.Len(t, stats, 3)

	byLabel := make(map[string]EventStat, len(stats))
	for _, s := range stats {
		byLabel[s.Label] = s
	}

	speech := byLabel["speech"]
	assert.Equal(t, 2, speech.Count)
	assert.InDelta(t, 17.0, speech.TotalLength, 1e-9)
	assert.InDelta(t, 8.5, speech.AverageLength, 1e-6)

	printer := byLabel["printer"]
	assert.Equal(t, 2, printer.Count)
	assert.InDelta(t, 4.0, printer.TotalLength, 1e-9)
}

func TestEventStatCountsRestrictedLabels(t *testing.T) {
	c := contentFixture()

	stats := c.EventStatCounts([]string{"speech", "unknown"})
	require.Len(t, stats, 2)
	assert.Equal(t, 2, stats[0].Count)
	assert.Equal(t, 0, stats[1].Count)
	assert.InDelta(t, 0.0, stats[1].AverageLength, 1e-9)
}

func TestSceneStatCounts(t *testing.T) {
	c := contentFixture()

	counts := c.SceneStatCounts(nil)
	require.Len(t, counts, 2)
	assert.Equal(t, LabelCount{Label: "meeting", Count: 2}, counts[0])
	assert.Equal(t, LabelCount{Label: "office", Count: 3}, counts[1])
}

func TestTagStatCounts(t *testing.T) {
	c := tagFixture()

	counts := c.TagStatCounts(nil)
	require.Len(t, counts, 3)
	assert.Equal(t, LabelCount{Label: "bird", Count: 1}, counts[0])
	assert.Equal(t, LabelCount{Label: "cat", Count: 2}, counts[1])
	assert.Equal(t, LabelCount{Label: "dog", Count: 2}, counts[2])
}

func TestStatsBundle(t *testing.T) {
	c := contentFixture()
	result := c.Stats(nil, nil, nil)

	assert.Len(t, result.Events, 3)
	assert.Len(t, result.Scenes, 2)
	assert.Empty(t, result.Tags)
}
