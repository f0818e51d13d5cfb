package probability

// MatrixOptions control matrix assembly.
type MatrixOptions struct {
	// LabelList fixes the row order. Defaults to the collection's
	// sorted unique labels.
	LabelList []string
	// Filename restricts the records to one file before assembly.
	Filename string
	// FileList fixes the column order for file-based matrices.
	// Defaults to the collection's sorted unique files.
	FileList []string
	// DefaultValue fills cells no record covers.
	DefaultValue float64
}

// Matrix is a labels-by-columns probability table. Columns are either
// record indices or file names, whichever axis the source data carried.
type Matrix struct {
	Labels []string
	// Files names the columns of a file-based matrix, nil for an
	// index-based one.
	Files []string
	Data  [][]float64
}

// AsMatrix arranges the records into a labels x columns table. When any
// record carries an index the columns are the distinct indices in
// ascending order, otherwise one column per file. Cells without a
// record keep the default value; duplicate cells keep the last record.
func (c *Collection) AsMatrix(opts MatrixOptions) *Matrix {
	source := c
	if opts.Filename != "" {
		source = c.Filter(Filter{Filename: opts.Filename})
	}

	labels := opts.LabelList
	if len(labels) == 0 {
		labels = source.UniqueLabels()
	}
	rowIndex := make(map[string]int, len(labels))
	for i, label := range labels {
		rowIndex[label] = i
	}

	indices := source.UniqueIndices()
	if len(indices) > 0 {
		return source.indexMatrix(labels, rowIndex, indices, opts.DefaultValue)
	}

	files := opts.FileList
	if len(files) == 0 {
		files = source.UniqueFiles()
	}
	return source.fileMatrix(labels, rowIndex, files, opts.DefaultValue)
}

func (c *Collection) indexMatrix(labels []string, rowIndex map[string]int, indices []int, defaultValue float64) *Matrix {
	columnIndex := make(map[int]int, len(indices))
	for i, v := range indices {
		columnIndex[v] = i
	}

	data := newMatrix(len(labels), len(indices), defaultValue)
	for i := range c.Records {
		r := &c.Records[i]
		if r.Index == nil || r.Probability == nil {
			continue
		}
		row, ok := rowIndex[r.Label]
		if !ok {
			continue
		}
		col, ok := columnIndex[*r.Index]
		if !ok {
			continue
		}
		data[row][col] = *r.Probability
	}
	return &Matrix{Labels: append([]string(nil), labels...), Data: data}
}

func (c *Collection) fileMatrix(labels []string, rowIndex map[string]int, files []string, defaultValue float64) *Matrix {
	columnIndex := make(map[string]int, len(files))
	for i, name := range files {
		columnIndex[name] = i
	}

	data := newMatrix(len(labels), len(files), defaultValue)
	for i := range c.Records {
		r := &c.Records[i]
		if r.Probability == nil {
			continue
		}
		row, ok := rowIndex[r.Label]
		if !ok {
			continue
		}
		col, ok := columnIndex[r.Filename]
		if !ok {
			continue
		}
		data[row][col] = *r.Probability
	}
	return &Matrix{
		Labels: append([]string(nil), labels...),
		Files:  append([]string(nil), files...),
		Data:   data,
	}
}

func newMatrix(rows, cols int, fill float64) [][]float64 {
	data := make([][]float64, rows)
	for i := range data {
		row := make([]float64, cols)
		if fill != 0 {
			for j := range row {
				row[j] = fill
			}
		}
		data[i] = row
	}
	return data
}
