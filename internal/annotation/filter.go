package annotation

// Filter selects events by field value. Within one field the singular
// value and the list are merged and matched with OR; across fields the
// criteria combine with AND. Tags are matched differently: Tag requires
// the single tag to be present on the event, TagList requires a
// non-empty intersection with the event's tags, and both conditions
// must hold independently when both are given.
type Filter struct {
	Filename    string
	FileList    []string
	SceneLabel  string
	SceneList   []string
	EventLabel  string
	EventList   []string
	Identifier  string
	IDList      []string
	SourceLabel string
	SourceList  []string
	Tag         string
	TagList     []string
}

// Filter returns a new collection holding deep copies of the events that
// satisfy every criterion.
func (c *Collection) Filter(f Filter) *Collection {
	files := mergeCriteria(f.Filename, f.FileList)
	scenes := mergeCriteria(f.SceneLabel, f.SceneList)
	events := mergeCriteria(f.EventLabel, f.EventList)
	identifiers := mergeCriteria(f.Identifier, f.IDList)
	sources := mergeCriteria(f.SourceLabel, f.SourceList)

	out := &Collection{}
	for i := range c.Events {
		e := &c.Events[i]
		if !matchCriteria(e.Filename, files) {
			continue
		}
		if !matchCriteria(e.SceneLabel, scenes) {
			continue
		}
		if !matchCriteria(e.EventLabel, events) {
			continue
		}
		if !matchCriteria(e.Identifier, identifiers) {
			continue
		}
		if !matchCriteria(e.SourceLabel, sources) {
			continue
		}
		if f.Tag != "" && !containsTag(e.Tags, f.Tag) {
			continue
		}
		if len(f.TagList) > 0 && !intersectsTags(e.Tags, f.TagList) {
			continue
		}
		out.Append(e.Copy())
	}
	return out
}

func mergeCriteria(single string, list []string) map[string]struct{} {
	if single == "" && len(list) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(list)+1)
	if single != "" {
		set[single] = struct{}{}
	}
	for _, v := range list {
		if v != "" {
			set[v] = struct{}{}
		}
	}
	return set
}

func matchCriteria(value string, set map[string]struct{}) bool {
	if set == nil {
		return true
	}
	_, ok := set[value]
	return ok
}

func containsTag(tags []string, wanted string) bool {
	for _, t := range tags {
		if t == wanted {
			return true
		}
	}
	return false
}

func intersectsTags(tags, wanted []string) bool {
	for _, w := range wanted {
		if containsTag(tags, w) {
			return true
		}
	}
	return false
}
