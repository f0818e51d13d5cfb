package annotation

import "math"

// timeEpsilon is the near-zero threshold used when merging activity
// intervals, the spacing between 1.0 and the next representable float.
var timeEpsilon = math.Nextafter(1, 2) - 1

// ProcessOptions control event cleanup. Nil thresholds disable the
// corresponding step, a zero threshold still filters zero and negative
// length events respectively merges touching events.
type ProcessOptions struct {
	MinimumEventLength *float64
	MinimumEventGap    *float64
}

// ProcessEvents enforces minimum event length and minimum gap per
// (filename, event label) group. Events shorter than the minimum length
// are dropped first; then, scanning in onset order, an event whose gap
// to the buffered run is at most the minimum gap extends the run,
// replacing the run's offset with its own. Unlabeled events do not
// belong to any group and are dropped. Returns a new collection.
func (c *Collection) ProcessEvents(opts ProcessOptions) *Collection {
	out := &Collection{}
	files := c.UniqueFiles()
	if len(files) == 0 {
		files = []string{""}
	}

	for _, filename := range files {
		for _, label := range c.UniqueEventLabels() {
			group := c.eventsFor(filename, label)
			sortEventsByOnset(group)

			if opts.MinimumEventLength != nil {
				kept := group[:0]
				for _, e := range group {
					if *e.Offset-*e.Onset >= *opts.MinimumEventLength {
						kept = append(kept, e)
					}
				}
				group = kept
			}

			if len(group) == 0 {
				continue
			}
			if opts.MinimumEventGap == nil {
				out.Append(group...)
				continue
			}

			bufferedOnset := *group[0].Onset
			bufferedOffset := *group[0].Offset
			for i := 1; i < len(group); i++ {
				if *group[i].Onset-bufferedOffset > *opts.MinimumEventGap {
					merged := group[i].Copy()
					merged.Onset = Float(bufferedOnset)
					merged.Offset = Float(bufferedOffset)
					out.Append(merged)

					bufferedOnset = *group[i].Onset
					bufferedOffset = *group[i].Offset
				} else {
					bufferedOffset = *group[i].Offset
				}
			}
			merged := group[len(group)-1].Copy()
			merged.Onset = Float(bufferedOnset)
			merged.Offset = Float(bufferedOffset)
			out.Append(merged)
		}
	}
	return out
}

// MapEvents relabels events to a single target label, per file and per
// source label in onset order. When sourceLabels is empty all event
// labels are mapped. No merging takes place; follow with ProcessEvents
// when adjacent runs should collapse.
func (c *Collection) MapEvents(targetLabel string, sourceLabels []string) *Collection {
	if len(sourceLabels) == 0 {
		sourceLabels = c.UniqueEventLabels()
	}

	out := &Collection{}
	for _, filename := range c.UniqueFiles() {
		for _, label := range sourceLabels {
			group := c.eventsFor(filename, label)
			sortEventsByOnset(group)
			for _, e := range group {
				mapped := e.Copy()
				mapped.EventLabel = targetLabel
				out.Append(mapped)
			}
		}
	}
	return out
}

// EventInactivityOptions control inactivity interval derivation.
type EventInactivityOptions struct {
	// EventLabel is assigned to the produced intervals, "inactivity" by
	// default.
	EventLabel string
	// SourceLabels restricts which event labels count as activity. All
	// labels when empty.
	SourceLabels []string
	// DurationList gives the total duration per file. Files without an
	// entry fall back to the maximum activity offset seen.
	DurationList map[string]float64
}

// EventInactivity derives the gaps between activity: all selected events
// are mapped to one activity label, merged with near-zero thresholds
// into clean non-overlapping intervals, and the complement per file is
// emitted from time zero to the file duration. The result is re-merged
// with the same thresholds and sorted by onset.
func (c *Collection) EventInactivity(opts EventInactivityOptions) *Collection {
	label := opts.EventLabel
	if label == "" {
		label = "inactivity"
	}

	eps := Float(timeEpsilon)
	activity := c.MapEvents("activity", opts.SourceLabels).
		ProcessEvents(ProcessOptions{MinimumEventLength: eps, MinimumEventGap: eps})

	out := &Collection{}
	for _, filename := range activity.UniqueFiles() {
		group := activity.eventsFor(filename, "activity")
		sortEventsByOnset(group)

		cursor := 0.0
		maxOffset := 0.0
		for _, e := range group {
			if *e.Onset > cursor {
				out.Append(Event{
					Filename:   filename,
					EventLabel: label,
					Onset:      Float(cursor),
					Offset:     Float(*e.Onset),
				})
			}
			cursor = *e.Offset
			if *e.Offset > maxOffset {
				maxOffset = *e.Offset
			}
		}

		duration, ok := opts.DurationList[filename]
		if !ok {
			duration = maxOffset
		}
		if duration > cursor {
			out.Append(Event{
				Filename:   filename,
				EventLabel: label,
				Onset:      Float(cursor),
				Offset:     Float(duration),
			})
		}
	}

	out = out.ProcessEvents(ProcessOptions{MinimumEventLength: eps, MinimumEventGap: eps})
	out.SortByOnset()
	return out
}

// eventsFor collects the events with the given filename and event
// label, with both onset and offset set. Copies are returned so callers
// may rewrite interval bounds.
func (c *Collection) eventsFor(filename, label string) []Event {
	var out []Event
	for i := range c.Events {
		e := &c.Events[i]
		if e.Filename != filename || e.EventLabel != label {
			continue
		}
		if e.Onset == nil || e.Offset == nil {
			continue
		}
		out = append(out, e.Copy())
	}
	return out
}

func sortEventsByOnset(events []Event) {
	(&Collection{Events: events}).SortByOnset()
}
