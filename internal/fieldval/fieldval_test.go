package fieldval

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  Kind
	}{
		{"empty", "", KindEmpty},
		{"whitespace only", "   ", KindEmpty},
		{"integer", "42", KindNumber},
		{"float", "3.14", KindNumber},
		{"negative float", "-0.5", KindNumber},
		{"comma decimal", "3,14", KindNumber},
		{"scientific", "1e-3", KindNumber},
		{"wav file", "audio_001.wav", KindAudioFile},
		{"flac file", "recording.flac", KindAudioFile},
		{"mp3 uppercase ext", "track.MP3", KindAudioFile},
		{"raw file", "stream.raw", KindAudioFile},
		{"npy file", "features.npy", KindDataFile},
		{"pickle file", "meta.cpickle", KindDataFile},
		{"gob file", "events.gob", KindDataFile},
		{"semicolon list", "cat;dog;bird", KindList},
		{"colon list", "a:b", KindList},
		{"hash list", "one#two", KindList},
		{"single letter", "a", KindAlpha1},
		{"two letters", "ab", KindAlpha2},
		{"word", "speech", KindString},
		{"sentence", "mouse clicking", KindString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.token))
		})
	}
}

func TestClassifyOrder(t *testing.T) {
	// A numeric token with a list delimiter classifies as number first.
	assert.Equal(t, KindNumber, Classify("1,5"))
	// An audio filename is recognized before list splitting could
	// apply.
	assert.Equal(t, KindAudioFile, Classify("a.wav"))
}
