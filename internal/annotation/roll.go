package annotation

import (
	"github.com/dcasekit/dcase-go/internal/errors"
	"github.com/dcasekit/dcase-go/internal/eventroll"
)

// RollOptions control event roll encoding.
type RollOptions struct {
	// LabelList fixes the row order. Defaults to the collection's
	// sorted unique event labels.
	LabelList []string
	// TimeResolution is the frame length in seconds, 0.01 by default.
	TimeResolution float64
	// LengthSeconds overrides the roll length; the maximum offset is
	// used when zero.
	LengthSeconds float64
}

// ToEventRoll encodes the collection as a binary activity matrix. The
// collection must cover at most one file; spanning multiple files is an
// error since their time axes are unrelated.
func (c *Collection) ToEventRoll(opts RollOptions) (*eventroll.Roll, error) {
	if files := c.UniqueFiles(); len(files) > 1 {
		return nil, errors.Newf("collection spans %d files, event roll needs a single file", len(files)).
			Component("annotation").Category(errors.CategoryValidation).
			Context("files", files).Build()
	}

	labels := opts.LabelList
	if len(labels) == 0 {
		labels = c.UniqueEventLabels()
	}
	resolution := opts.TimeResolution
	if resolution == 0 {
		resolution = 0.01
	}

	items := make([]eventroll.Item, 0, len(c.Events))
	for i := range c.Events {
		e := &c.Events[i]
		if e.Onset == nil || e.Offset == nil || e.EventLabel == "" {
			continue
		}
		items = append(items, eventroll.Item{
			Label:  e.EventLabel,
			Onset:  *e.Onset,
			Offset: *e.Offset,
		})
	}

	encoder := eventroll.Encoder{LabelList: labels, TimeResolution: resolution}
	return encoder.Encode(items, eventroll.EncodeOptions{LengthSeconds: opts.LengthSeconds})
}
