package annotation

import (
	"github.com/dcasekit/dcase-go/internal/errors"
)

// Segment describes a time window to cut out of a collection.
type Segment struct {
	Start float64
	Stop  float64
	// Filename disambiguates which file the window applies to.
	// Required when the collection spans multiple files.
	Filename string
	// ZeroTime rebases surviving events so the window start becomes
	// time zero.
	ZeroTime bool
	// Trim clips surviving events to the window bounds.
	Trim bool
}

// FilterTimeSegment returns the events active within the time window,
// deep-copied, optionally rebased to window-relative time and clipped to
// the window. Events that collapse to zero length after clipping are
// discarded.
func (c *Collection) FilterTimeSegment(seg Segment) (*Collection, error) {
	filename := seg.Filename
	if filename == "" {
		files := c.UniqueFiles()
		if len(files) > 1 {
			return nil, errors.Newf("collection spans %d files, segment filtering needs a filename", len(files)).
				Component("annotation").Category(errors.CategoryValidation).
				Context("files", files).Build()
		}
		if len(files) == 1 {
			filename = files[0]
		}
	}

	out := &Collection{}
	for i := range c.Events {
		e := &c.Events[i]
		if e.Filename != filename {
			continue
		}
		if !e.ActiveWithinSegment(seg.Start, seg.Stop) {
			continue
		}

		// Events can carry a single endpoint, the missing bound is
		// left untouched.
		clipped := e.Copy()
		if seg.ZeroTime {
			if clipped.Onset != nil {
				*clipped.Onset -= seg.Start
				if seg.Trim && *clipped.Onset < 0 {
					*clipped.Onset = 0
				}
			}
			if clipped.Offset != nil {
				*clipped.Offset -= seg.Start
				if length := seg.Stop - seg.Start; seg.Trim && *clipped.Offset > length {
					*clipped.Offset = length
				}
			}
		} else if seg.Trim {
			if clipped.Onset != nil && *clipped.Onset < seg.Start {
				*clipped.Onset = seg.Start
			}
			if clipped.Offset != nil && *clipped.Offset > seg.Stop {
				*clipped.Offset = seg.Stop
			}
		}
		if clipped.Onset != nil && clipped.Offset != nil && *clipped.Onset == *clipped.Offset {
			continue
		}
		out.Append(clipped)
	}
	return out, nil
}
