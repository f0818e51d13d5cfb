package annotation

// statsEpsilon guards average-length division against empty classes.
const statsEpsilon = 1e-10

// EventStat aggregates one event-label class.
type EventStat struct {
	Label         string
	Count         int
	TotalLength   float64
	AverageLength float64
}

// LabelCount pairs a label or tag with its occurrence count.
type LabelCount struct {
	Label string
	Count int
}

// Stats bundles the per-class aggregates of a collection.
type Stats struct {
	Events []EventStat
	Scenes []LabelCount
	Tags   []LabelCount
}

// Stats computes counts and aggregate durations per event label, scene
// label and tag. Non-empty label lists restrict which classes are
// reported; unknown labels report zero counts.
func (c *Collection) Stats(eventLabels, sceneLabels, tagList []string) Stats {
	return Stats{
		Events: c.EventStatCounts(eventLabels),
		Scenes: c.SceneStatCounts(sceneLabels),
		Tags:   c.TagStatCounts(tagList),
	}
}

// EventStatCounts returns per-event-label counts and durations, for the
// given labels or all labels present.
func (c *Collection) EventStatCounts(labels []string) []EventStat {
	if len(labels) == 0 {
		labels = c.UniqueEventLabels()
	}

	out := make([]EventStat, 0, len(labels))
	for _, label := range labels {
		stat := EventStat{Label: label}
		for i := range c.Events {
			e := &c.Events[i]
			if e.EventLabel != label {
				continue
			}
			stat.Count++
			if e.Onset != nil && e.Offset != nil {
				stat.TotalLength += *e.Offset - *e.Onset
			}
		}
		stat.AverageLength = stat.TotalLength / (float64(stat.Count) + statsEpsilon)
		out = append(out, stat)
	}
	return out
}

// SceneStatCounts returns per-scene-label event counts.
func (c *Collection) SceneStatCounts(labels []string) []LabelCount {
	if len(labels) == 0 {
		labels = c.UniqueSceneLabels()
	}

	out := make([]LabelCount, 0, len(labels))
	for _, label := range labels {
		count := 0
		for i := range c.Events {
			if c.Events[i].SceneLabel == label {
				count++
			}
		}
		out = append(out, LabelCount{Label: label, Count: count})
	}
	return out
}

// TagStatCounts returns per-tag occurrence counts.
func (c *Collection) TagStatCounts(tags []string) []LabelCount {
	if len(tags) == 0 {
		tags = c.UniqueTags()
	}

	out := make([]LabelCount, 0, len(tags))
	for _, tag := range tags {
		count := 0
		for i := range c.Events {
			if containsTag(c.Events[i].Tags, tag) {
				count++
			}
		}
		out = append(out, LabelCount{Label: tag, Count: count})
	}
	return out
}
