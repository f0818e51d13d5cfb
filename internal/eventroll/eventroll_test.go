package eventroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	encoder := Encoder{
		LabelList:      []string{"speech", "printer"},
		TimeResolution: 1.0,
	}

	roll, err := encoder.Encode([]Item{
		{Label: "speech", Onset: 1.0, Offset: 3.0},
		{Label: "printer", Onset: 2.5, Offset: 4.0},
	}, EncodeOptions{})
	require.NoError(t, err)

	// Max offset 4.0 at 1s resolution gives 4 frames.
	assert.Equal(t, 4, roll.Frames())
	assert.Equal(t, []float64{0, 1, 1, 0}, roll.Data[0])
	// Onset 2.5 floors to frame 2, offset 4.0 ceils to frame 4.
	assert.Equal(t, []float64{0, 0, 1, 1}, roll.Data[1])
}

func TestEncodeSubSecondResolution(t *testing.T) {
	encoder := Encoder{
		LabelList:      []string{"speech"},
		TimeResolution: 0.5,
	}

	roll, err := encoder.Encode([]Item{
		{Label: "speech", Onset: 0.4, Offset: 1.1},
	}, EncodeOptions{})
	require.NoError(t, err)

	// Length 1.1s ceils to 3 frames; onset floors to frame 0, offset
	// ceils to frame 3.
	assert.Equal(t, 3, roll.Frames())
	assert.Equal(t, []float64{1, 1, 1}, roll.Data[0])
}

func TestEncodeClipsBeyondLength(t *testing.T) {
	encoder := Encoder{
		LabelList:      []string{"speech"},
		TimeResolution: 1.0,
	}

	roll, err := encoder.Encode([]Item{
		{Label: "speech", Onset: 1.0, Offset: 10.0},
	}, EncodeOptions{LengthFrames: 5})
	require.NoError(t, err)

	assert.Equal(t, 5, roll.Frames())
	assert.Equal(t, []float64{0, 1, 1, 1, 1}, roll.Data[0])
}

func TestEncodeExplicitLengthSeconds(t *testing.T) {
	encoder := Encoder{
		LabelList:      []string{"speech"},
		TimeResolution: 0.01,
	}

	roll, err := encoder.Encode(nil, EncodeOptions{LengthSeconds: 2.0})
	require.NoError(t, err)
	assert.Equal(t, 200, roll.Frames())
}

func TestEncodeUnknownLabel(t *testing.T) {
	encoder := Encoder{
		LabelList:      []string{"speech"},
		TimeResolution: 1.0,
	}

	_, err := encoder.Encode([]Item{
		{Label: "dog", Onset: 0.0, Offset: 1.0},
	}, EncodeOptions{})
	assert.Error(t, err)
}

func TestEncodeValidation(t *testing.T) {
	_, err := (&Encoder{TimeResolution: 1.0}).Encode(nil, EncodeOptions{})
	assert.Error(t, err, "missing label list")

	_, err = (&Encoder{LabelList: []string{"speech"}}).Encode(nil, EncodeOptions{})
	assert.Error(t, err, "missing time resolution")
}
