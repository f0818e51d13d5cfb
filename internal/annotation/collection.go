package annotation

import (
	"fmt"
	"sort"
	"strings"
)

// Collection holds a set of annotation events together with the file
// they were loaded from. The zero value is an empty, unbound collection.
type Collection struct {
	Events   []Event
	Filename string
	Format   Format
}

// NewCollection wraps a slice of events. The slice is used directly, not
// copied.
func NewCollection(events []Event) *Collection {
	return &Collection{Events: events}
}

// Append adds events to the collection.
func (c *Collection) Append(events ...Event) {
	c.Events = append(c.Events, events...)
}

// Len returns the number of events.
func (c *Collection) Len() int {
	return len(c.Events)
}

// Copy returns a deep copy of the collection.
func (c *Collection) Copy() *Collection {
	out := &Collection{
		Events:   make([]Event, 0, len(c.Events)),
		Filename: c.Filename,
		Format:   c.Format,
	}
	for _, e := range c.Events {
		out.Events = append(out.Events, e.Copy())
	}
	return out
}

// UniqueFiles returns the distinct audio file names, sorted.
func (c *Collection) UniqueFiles() []string {
	return c.uniqueStrings(func(e *Event) string { return e.Filename })
}

// UniqueEventLabels returns the distinct event labels, sorted. Events
// without a label are skipped.
func (c *Collection) UniqueEventLabels() []string {
	return c.uniqueStrings(func(e *Event) string { return e.EventLabel })
}

// UniqueSceneLabels returns the distinct scene labels, sorted.
func (c *Collection) UniqueSceneLabels() []string {
	return c.uniqueStrings(func(e *Event) string { return e.SceneLabel })
}

// UniqueIdentifiers returns the distinct identifiers, sorted.
func (c *Collection) UniqueIdentifiers() []string {
	return c.uniqueStrings(func(e *Event) string { return e.Identifier })
}

// UniqueSourceLabels returns the distinct source labels, sorted.
func (c *Collection) UniqueSourceLabels() []string {
	return c.uniqueStrings(func(e *Event) string { return e.SourceLabel })
}

// UniqueTags returns the distinct tags across all events, sorted.
func (c *Collection) UniqueTags() []string {
	seen := make(map[string]struct{})
	for i := range c.Events {
		for _, tag := range c.Events[i].Tags {
			if tag != "" {
				seen[tag] = struct{}{}
			}
		}
	}
	return sortedKeys(seen)
}

// FileCount returns the number of distinct audio files referenced.
func (c *Collection) FileCount() int {
	return len(c.UniqueFiles())
}

// EventLabelCount returns the number of distinct event labels.
func (c *Collection) EventLabelCount() int {
	return len(c.UniqueEventLabels())
}

// SceneLabelCount returns the number of distinct scene labels.
func (c *Collection) SceneLabelCount() int {
	return len(c.UniqueSceneLabels())
}

// TagCount returns the number of distinct tags.
func (c *Collection) TagCount() int {
	return len(c.UniqueTags())
}

// IdentifierCount returns the number of distinct identifiers.
func (c *Collection) IdentifierCount() int {
	return len(c.UniqueIdentifiers())
}

// MaxOffset returns the largest event offset in the collection, 0 when
// no event carries an offset.
func (c *Collection) MaxOffset() float64 {
	max := 0.0
	for i := range c.Events {
		if off := c.Events[i].Offset; off != nil && *off > max {
			max = *off
		}
	}
	return max
}

// AddTime shifts every onset and offset by the given amount of seconds.
// The collection is modified in place and returned for chaining.
func (c *Collection) AddTime(seconds float64) *Collection {
	for i := range c.Events {
		if c.Events[i].Onset != nil {
			*c.Events[i].Onset += seconds
		}
		if c.Events[i].Offset != nil {
			*c.Events[i].Offset += seconds
		}
	}
	return c
}

// SortByOnset orders events by onset, events without onset first, with
// offset as a tie breaker.
func (c *Collection) SortByOnset() *Collection {
	sort.SliceStable(c.Events, func(i, j int) bool {
		a, b := &c.Events[i], &c.Events[j]
		av, bv := floatOrZero(a.Onset), floatOrZero(b.Onset)
		if av != bv {
			return av < bv
		}
		return floatOrZero(a.Offset) < floatOrZero(b.Offset)
	})
	return c
}

// SortByFile orders events by file name, then onset.
func (c *Collection) SortByFile() *Collection {
	sort.SliceStable(c.Events, func(i, j int) bool {
		a, b := &c.Events[i], &c.Events[j]
		if a.Filename != b.Filename {
			return a.Filename < b.Filename
		}
		return floatOrZero(a.Onset) < floatOrZero(b.Onset)
	})
	return c
}

// FieldUnion returns the sorted union of field names populated anywhere
// in the collection, the default column set of header-bearing CSV
// output.
func (c *Collection) FieldUnion() []string {
	seen := make(map[string]struct{})
	for i := range c.Events {
		e := &c.Events[i]
		if e.Filename != "" {
			seen["filename"] = struct{}{}
		}
		if e.Onset != nil {
			seen["onset"] = struct{}{}
		}
		if e.Offset != nil {
			seen["offset"] = struct{}{}
		}
		if e.SceneLabel != "" {
			seen["scene_label"] = struct{}{}
		}
		if e.EventLabel != "" {
			seen["event_label"] = struct{}{}
		}
		if len(e.Tags) > 0 {
			seen["tags"] = struct{}{}
		}
		if e.Identifier != "" {
			seen["identifier"] = struct{}{}
		}
		if e.SourceLabel != "" {
			seen["source_label"] = struct{}{}
		}
		if e.SetLabel != "" {
			seen["set_label"] = struct{}{}
		}
		if e.FilenameOriginal != "" {
			seen["filename_original"] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

// ContentIDs returns the content hash of every event, in event order.
func (c *Collection) ContentIDs() []string {
	ids := make([]string, len(c.Events))
	for i := range c.Events {
		ids[i] = c.Events[i].ID()
	}
	return ids
}

// String renders a short human readable summary.
func (c *Collection) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Collection :: %d events", len(c.Events))
	if c.Filename != "" {
		fmt.Fprintf(&b, " [%s]", c.Filename)
	}
	fmt.Fprintf(&b, ", %d files, %d event labels", c.FileCount(), c.EventLabelCount())
	return b.String()
}

func (c *Collection) uniqueStrings(get func(*Event) string) []string {
	seen := make(map[string]struct{})
	for i := range c.Events {
		if v := get(&c.Events[i]); v != "" {
			seen[v] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
