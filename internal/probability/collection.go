package probability

import "sort"

// Collection holds a set of probability records together with the file
// they were loaded from.
type Collection struct {
	Records  []Record
	Filename string
}

// NewCollection wraps a slice of records. The slice is used directly,
// not copied.
func NewCollection(records []Record) *Collection {
	return &Collection{Records: records}
}

// Append adds records to the collection.
func (c *Collection) Append(records ...Record) {
	c.Records = append(c.Records, records...)
}

// Len returns the number of records.
func (c *Collection) Len() int {
	return len(c.Records)
}

// Copy returns a deep copy of the collection.
func (c *Collection) Copy() *Collection {
	out := &Collection{
		Records:  make([]Record, 0, len(c.Records)),
		Filename: c.Filename,
	}
	for _, r := range c.Records {
		out.Records = append(out.Records, r.Copy())
	}
	return out
}

// UniqueFiles returns the distinct audio file names, sorted.
func (c *Collection) UniqueFiles() []string {
	seen := make(map[string]struct{})
	for i := range c.Records {
		if c.Records[i].Filename != "" {
			seen[c.Records[i].Filename] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

// UniqueLabels returns the distinct labels, sorted.
func (c *Collection) UniqueLabels() []string {
	seen := make(map[string]struct{})
	for i := range c.Records {
		if c.Records[i].Label != "" {
			seen[c.Records[i].Label] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

// UniqueIndices returns the distinct indices, ascending. Records without
// an index contribute nothing.
func (c *Collection) UniqueIndices() []int {
	seen := make(map[int]struct{})
	for i := range c.Records {
		if c.Records[i].Index != nil {
			seen[*c.Records[i].Index] = struct{}{}
		}
	}
	out := make([]int, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

// Filter selects records matching all given criteria: filename equality,
// file list membership and label equality. Empty criteria match
// everything. Returned records are deep copies.
type Filter struct {
	Filename string
	FileList []string
	Label    string
}

// Filter returns a new collection of the records satisfying every
// criterion.
func (c *Collection) Filter(f Filter) *Collection {
	fileSet := make(map[string]struct{}, len(f.FileList))
	for _, name := range f.FileList {
		fileSet[name] = struct{}{}
	}

	out := &Collection{}
	for i := range c.Records {
		r := &c.Records[i]
		if f.Filename != "" && r.Filename != f.Filename {
			continue
		}
		if len(fileSet) > 0 {
			if _, ok := fileSet[r.Filename]; !ok {
				continue
			}
		}
		if f.Label != "" && r.Label != f.Label {
			continue
		}
		out.Append(r.Copy())
	}
	return out
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
