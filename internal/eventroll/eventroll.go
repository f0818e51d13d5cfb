// Package eventroll converts labeled time intervals into binary
// activity matrices, one row per label and one column per time frame.
package eventroll

import (
	"math"

	"github.com/dcasekit/dcase-go/internal/errors"
)

// Item is one labeled activity interval.
type Item struct {
	Label  string
	Onset  float64
	Offset float64
}

// Roll is a binary activity matrix. Data is indexed [label][frame].
type Roll struct {
	Labels         []string
	TimeResolution float64
	Data           [][]float64
}

// Frames returns the number of time frames.
func (r *Roll) Frames() int {
	if len(r.Data) == 0 {
		return 0
	}
	return len(r.Data[0])
}

// Encoder turns interval lists into event rolls with a fixed label
// order and time resolution.
type Encoder struct {
	LabelList      []string
	TimeResolution float64
}

// EncodeOptions override the roll length. LengthFrames wins over
// LengthSeconds; with neither set the maximum item offset decides.
type EncodeOptions struct {
	LengthFrames  int
	LengthSeconds float64
}

// Encode builds the binary activity matrix for the items. Onsets are
// floored and offsets ceiled to frames, events running past the roll
// end are clipped, unknown labels rejected.
func (enc *Encoder) Encode(items []Item, opts EncodeOptions) (*Roll, error) {
	if len(enc.LabelList) == 0 {
		return nil, errors.Newf("no label list set").
			Component("eventroll").Category(errors.CategoryValidation).Build()
	}
	if enc.TimeResolution <= 0 {
		return nil, errors.Newf("invalid time resolution [%f]", enc.TimeResolution).
			Component("eventroll").Category(errors.CategoryValidation).Build()
	}

	frames := opts.LengthFrames
	if frames == 0 {
		length := opts.LengthSeconds
		if length == 0 {
			for _, item := range items {
				if item.Offset > length {
					length = item.Offset
				}
			}
		}
		frames = enc.lengthToFrames(length)
	}

	rowIndex := make(map[string]int, len(enc.LabelList))
	for i, label := range enc.LabelList {
		rowIndex[label] = i
	}

	data := make([][]float64, len(enc.LabelList))
	for i := range data {
		data[i] = make([]float64, frames)
	}

	for _, item := range items {
		if item.Label == "" {
			continue
		}
		row, ok := rowIndex[item.Label]
		if !ok {
			return nil, errors.Newf("label [%s] not in label list", item.Label).
				Component("eventroll").Category(errors.CategoryValidation).
				Context("label_list", enc.LabelList).Build()
		}

		onset := int(math.Floor(item.Onset / enc.TimeResolution))
		offset := int(math.Ceil(item.Offset / enc.TimeResolution))
		if offset > frames {
			offset = frames
		}
		if onset > frames {
			continue
		}
		if onset < 0 {
			onset = 0
		}
		for frame := onset; frame < offset; frame++ {
			data[row][frame] = 1
		}
	}

	return &Roll{
		Labels:         append([]string(nil), enc.LabelList...),
		TimeResolution: enc.TimeResolution,
		Data:           data,
	}, nil
}

func (enc *Encoder) lengthToFrames(seconds float64) int {
	return int(math.Ceil(seconds / enc.TimeResolution))
}
