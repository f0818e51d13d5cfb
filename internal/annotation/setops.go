package annotation

// Intersection returns deep copies of the events in c whose content id
// also appears in other.
func (c *Collection) Intersection(other *Collection) *Collection {
	otherIDs := idSet(other)
	out := &Collection{}
	for i := range c.Events {
		if _, ok := otherIDs[c.Events[i].ID()]; ok {
			out.Append(c.Events[i].Copy())
		}
	}
	return out
}

// Difference returns deep copies of the events in c whose content id is
// in the symmetric difference of the two collections' id sets. Events
// present only in other have no source record here and are never
// returned; events sharing an id across both sides are excluded.
func (c *Collection) Difference(other *Collection) *Collection {
	selfIDs := idSet(c)
	otherIDs := idSet(other)

	symmetric := make(map[string]struct{})
	for id := range selfIDs {
		if _, ok := otherIDs[id]; !ok {
			symmetric[id] = struct{}{}
		}
	}
	for id := range otherIDs {
		if _, ok := selfIDs[id]; !ok {
			symmetric[id] = struct{}{}
		}
	}

	out := &Collection{}
	for i := range c.Events {
		if _, ok := symmetric[c.Events[i].ID()]; ok {
			out.Append(c.Events[i].Copy())
		}
	}
	return out
}

func idSet(c *Collection) map[string]struct{} {
	out := make(map[string]struct{}, len(c.Events))
	for i := range c.Events {
		out[c.Events[i].ID()] = struct{}{}
	}
	return out
}
