package annotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitTags(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{"hash delimited", "cat#dog#bird", []string{"bird", "cat", "dog"}},
		{"comma delimited", "dog, cat", []string{"cat", "dog"}},
		{"semicolon delimited", "dog;cat;", []string{"cat", "dog"}},
		{"colon delimited", "dog:cat", []string{"cat", "dog"}},
		{"single tag", "dog", []string{"dog"}},
		{"none literal", "none", nil},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitTags(tt.value))
		})
	}
}

func TestTagNormalizationIdempotent(t *testing.T) {
	var e Event
	e.SetTagList([]string{"bird", "cat", "dog"})
	first := append([]string(nil), e.Tags...)

	e.SetTagList(e.Tags)
	assert.Equal(t, first, e.Tags)
}

func TestEventIDStability(t *testing.T) {
	a, err := NewEventFromFields(map[string]any{
		"filename":    "audio_001.wav",
		"scene_label": "office",
		"event_label": "speech",
		"onset":       1.0,
		"offset":      10.0,
	})
	require.NoError(t, err)

	// Same content through legacy field names.
	b, err := NewEventFromFields(map[string]any{
		"event_label":  "speech",
		"file":         "audio_001.wav",
		"event_onset":  "1.0",
		"event_offset": "10.0",
		"scene_label":  "office",
	})
	require.NoError(t, err)

	assert.Equal(t, a.ID(), b.ID())
	assert.Len(t, a.ID(), 32)
}

func TestEventIDDiffers(t *testing.T) {
	a := Event{Filename: "audio_001.wav", EventLabel: "speech", Onset: Float(1.0), Offset: Float(2.0)}
	b := Event{Filename: "audio_001.wav", EventLabel: "speech", Onset: Float(1.0), Offset: Float(2.5)}
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestNewEventFromFieldsLegacyMigration(t *testing.T) {
	e, err := NewEventFromFields(map[string]any{
		"file":         "audio_001.wav",
		"event_onset":  1.5,
		"event_offset": 3.0,
	})
	require.NoError(t, err)

	assert.Equal(t, "audio_001.wav", e.Filename)
	require.NotNil(t, e.Onset)
	require.NotNil(t, e.Offset)
	assert.InDelta(t, 1.5, *e.Onset, 1e-9)
	assert.InDelta(t, 3.0, *e.Offset, 1e-9)
}

func TestNewEventFromFieldsCanonicalWins(t *testing.T) {
	e, err := NewEventFromFields(map[string]any{
		"filename": "canonical.wav",
		"file":     "legacy.wav",
	})
	require.NoError(t, err)
	assert.Equal(t, "canonical.wav", e.Filename)
}

func TestActiveWithinSegment(t *testing.T) {
	e := Event{Onset: Float(3.0), Offset: Float(5.0)}

	assert.True(t, e.ActiveWithinSegment(2.0, 4.0), "onset inside segment")
	assert.True(t, e.ActiveWithinSegment(4.0, 6.0), "offset inside segment")
	assert.True(t, e.ActiveWithinSegment(3.5, 4.5), "event spans segment")
	assert.False(t, e.ActiveWithinSegment(5.5, 7.0), "event before segment")
	assert.False(t, e.ActiveWithinSegment(0.0, 2.0), "event after segment")
}

func TestEventCopyDoesNotAlias(t *testing.T) {
	original := Event{
		Filename: "audio_001.wav",
		Onset:    Float(1.0),
		Offset:   Float(2.0),
		Tags:     []string{"cat"},
	}

	clone := original.Copy()
	*clone.Onset = 99.0
	clone.Tags[0] = "dog"

	assert.InDelta(t, 1.0, *original.Onset, 1e-9)
	assert.Equal(t, "cat", original.Tags[0])
}
