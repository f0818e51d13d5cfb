package annotation

import (
	"encoding/csv"
	"encoding/gob"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dcasekit/dcase-go/internal/errors"
	"github.com/dcasekit/dcase-go/internal/fieldval"
	"github.com/dcasekit/dcase-go/internal/logging"
)

var log = logging.Logger("annotation")

// LoadOptions control delimited text parsing.
type LoadOptions struct {
	// Fields forces the column-to-field mapping instead of layout
	// sniffing. Column count must match.
	Fields []string
	// CSVHeader reads the field names from the first row. Unset means
	// true for the csv format and false otherwise.
	CSVHeader *bool
	// Delimiter overrides delimiter sniffing when non-zero.
	Delimiter rune
	// Decimal selects the decimal separator convention, point by
	// default.
	Decimal Decimal
}

// SaveOptions control delimited text output.
type SaveOptions struct {
	// Fields forces the output columns. When empty, each event is
	// written in the column layout its populated fields dictate.
	Fields []string
	// CSVHeader writes the field names as the first row. Unset means
	// true for the csv format and false otherwise.
	CSVHeader *bool
	// Delimiter overrides the format's default column delimiter.
	Delimiter rune
}

// Load reads an annotation collection from a file. The format is
// resolved from the file extension.
func Load(path string, opts LoadOptions) (*Collection, error) {
	format, err := DetectFormat(path)
	if err != nil {
		log.Error("unable to resolve annotation format", "path", path, "error", err)
		return nil, err
	}
	if _, err := os.Stat(path); err != nil {
		log.Error("annotation file not accessible", "path", path, "error", err)
		return nil, errors.Newf("annotation file not accessible: %w", err).
			Component("annotation").Category(errors.CategoryFileIO).
			Context("path", path).Build()
	}

	var c *Collection
	switch format {
	case FormatYAML:
		c, err = loadYAML(path)
	case FormatGob:
		c, err = loadGob(path)
	default:
		c, err = loadDelimited(path, format, opts)
	}
	if err != nil {
		log.Error("annotation load failed", "path", path, "format", string(format), "error", err)
		return nil, err
	}
	c.Filename = path
	c.Format = format
	log.Debug("annotation file loaded", "path", path, "events", c.Len())
	return c, nil
}

// Save writes the collection to a file, format resolved from the
// extension. The collection's Filename and Format are updated on
// success.
func Save(c *Collection, path string, opts SaveOptions) error {
	format, err := DetectFormat(path)
	if err != nil {
		log.Error("unable to resolve annotation format", "path", path, "error", err)
		return err
	}

	switch format {
	case FormatYAML:
		err = saveYAML(c, path)
	case FormatGob:
		err = saveGob(c, path)
	default:
		err = saveDelimited(c, path, format, opts)
	}
	if err != nil {
		log.Error("annotation save failed", "path", path, "format", string(format), "error", err)
		return err
	}
	c.Filename = path
	c.Format = format
	log.Debug("annotation file saved", "path", path, "events", c.Len())
	return nil
}

func loadDelimited(path string, format Format, opts LoadOptions) (*Collection, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Newf("reading annotation file: %w", err).
			Component("annotation").Category(errors.CategoryFileIO).
			Context("path", path).Build()
	}
	return parseDelimited(string(raw), format, opts)
}

func parseDelimited(content string, format Format, opts LoadOptions) (*Collection, error) {
	decimal := opts.Decimal
	if decimal == "" {
		decimal = DecimalPoint
	}
	delimiter := opts.Delimiter
	if delimiter == 0 {
		delimiter = sniffDelimiter(sampleLines(content, 10), decimal)
	}

	reader := csv.NewReader(strings.NewReader(content))
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = delimiter != ' '

	fields := opts.Fields
	header := csvHeader(opts.CSVHeader, format)
	c := &Collection{}
	row := 0
	for {
		cells, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Newf("parsing row %d: %w", row, err).
				Component("annotation").Category(errors.CategoryFileParsing).Build()
		}
		row++
		if blankRow(cells) {
			continue
		}
		if row == 1 && header {
			// Explicit fields override the header names, the row is
			// still consumed.
			if len(fields) == 0 {
				fields = append([]string(nil), cells...)
			}
			continue
		}

		event, err := parseRow(cells, fields, decimal)
		if err != nil {
			return nil, errors.Newf("row %d: %w", row, err).
				Component("annotation").Category(errors.CategoryFileParsing).
				Context("cells", cells).Build()
		}
		c.Append(event)
	}
	return c, nil
}

func parseRow(cells, fields []string, decimal Decimal) (Event, error) {
	if len(fields) > 0 {
		trimmed := cells
		for len(trimmed) > 0 && strings.TrimSpace(trimmed[len(trimmed)-1]) == "" {
			trimmed = trimmed[:len(trimmed)-1]
		}
		if len(trimmed) > len(fields) {
			return Event{}, errors.Newf("expected %d columns, got %d", len(fields), len(trimmed)).
				Component("annotation").Category(errors.CategoryFileParsing).Build()
		}
		// Trailing unset cells are legal, empty cells map to unset
		// fields.
		padded := make([]string, len(fields))
		copy(padded, trimmed)
		return buildEvent(rowLayout{fields: fields}, padded, decimal)
	}

	trimmed, shape := classifyRow(cells)
	layout, ok := matchRowLayout(shape)
	if !ok {
		return Event{}, errors.Newf("unrecognized row layout %v", shapeString(shape)).
			Component("annotation").Category(errors.CategoryFileParsing).Build()
	}
	return buildEvent(layout, trimmed, decimal)
}

func saveDelimited(c *Collection, path string, format Format, opts SaveOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Newf("creating annotation file: %w", err).
			Component("annotation").Category(errors.CategoryFileIO).
			Context("path", path).Build()
	}
	defer f.Close()

	delimiter := opts.Delimiter
	if delimiter == 0 {
		if format == FormatCSV {
			delimiter = ','
		} else {
			delimiter = '\t'
		}
	}

	writer := csv.NewWriter(f)
	writer.Comma = delimiter

	fields := opts.Fields
	if format == FormatCSV && len(fields) == 0 {
		fields = c.FieldUnion()
	}
	if csvHeader(opts.CSVHeader, format) && len(fields) > 0 {
		if err := writer.Write(fields); err != nil {
			return writeError(err, path)
		}
	}

	for i := range c.Events {
		var cells []string
		var err error
		if len(fields) > 0 {
			cells, err = c.Events[i].fieldCells(fields)
		} else {
			cells, err = c.Events[i].FieldList()
		}
		if err != nil {
			return err
		}
		if err := writer.Write(cells); err != nil {
			return writeError(err, path)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return writeError(err, path)
	}
	return f.Sync()
}

// fieldCells renders the event's values for an explicit column list.
// Unset fields become empty cells.
func (e *Event) fieldCells(fields []string) ([]string, error) {
	cells := make([]string, 0, len(fields))
	for _, name := range fields {
		switch name {
		case "filename", "file":
			cells = append(cells, e.Filename)
		case "onset", "event_onset":
			if e.Onset != nil {
				cells = append(cells, formatFloat(*e.Onset))
			} else {
				cells = append(cells, "")
			}
		case "offset", "event_offset":
			if e.Offset != nil {
				cells = append(cells, formatFloat(*e.Offset))
			} else {
				cells = append(cells, "")
			}
		case "scene_label":
			cells = append(cells, e.SceneLabel)
		case "event_label":
			cells = append(cells, e.EventLabel)
		case "tags":
			if len(e.Tags) > 0 {
				cells = append(cells, strings.Join(e.Tags, ";")+";")
			} else {
				cells = append(cells, "")
			}
		case "identifier":
			cells = append(cells, e.Identifier)
		case "source_label":
			cells = append(cells, e.SourceLabel)
		case "set_label":
			cells = append(cells, e.SetLabel)
		case "filename_original":
			cells = append(cells, e.FilenameOriginal)
		default:
			return nil, errors.Newf("unknown annotation field [%s]", name).
				Component("annotation").Category(errors.CategoryValidation).Build()
		}
	}
	return cells, nil
}

func loadYAML(path string) (*Collection, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Newf("reading annotation file: %w", err).
			Component("annotation").Category(errors.CategoryFileIO).
			Context("path", path).Build()
	}
	var events []Event
	if err := yaml.Unmarshal(raw, &events); err != nil {
		return nil, errors.Newf("decoding YAML annotations: %w", err).
			Component("annotation").Category(errors.CategoryFileParsing).
			Context("path", path).Build()
	}
	c := &Collection{}
	for i := range events {
		events[i].normalize()
		c.Append(events[i])
	}
	return c, nil
}

func saveYAML(c *Collection, path string) error {
	raw, err := yaml.Marshal(c.Events)
	if err != nil {
		return errors.Newf("encoding YAML annotations: %w", err).
			Component("annotation").Category(errors.CategoryFileParsing).Build()
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return writeError(err, path)
	}
	return nil
}

func loadGob(path string) (*Collection, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Newf("reading annotation file: %w", err).
			Component("annotation").Category(errors.CategoryFileIO).
			Context("path", path).Build()
	}
	defer f.Close()

	var events []Event
	if err := gob.NewDecoder(f).Decode(&events); err != nil {
		return nil, errors.Newf("decoding annotations: %w", err).
			Component("annotation").Category(errors.CategoryFileParsing).
			Context("path", path).Build()
	}
	return &Collection{Events: events}, nil
}

func saveGob(c *Collection, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Newf("creating annotation file: %w", err).
			Component("annotation").Category(errors.CategoryFileIO).
			Context("path", path).Build()
	}
	defer f.Close()

	if err := gob.NewEncoder(f).Encode(c.Events); err != nil {
		return writeError(err, path)
	}
	return f.Sync()
}

func writeError(err error, path string) error {
	return errors.Newf("writing annotation file: %w", err).
		Component("annotation").Category(errors.CategoryFileIO).
		Context("path", path).Build()
}

// csvHeader resolves the tri-state header option: the csv format carries
// a header row unless the caller opts out.
func csvHeader(opt *bool, format Format) bool {
	if opt != nil {
		return *opt
	}
	return format == FormatCSV
}

func blankRow(cells []string) bool {
	for _, cell := range cells {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func sampleLines(content string, n int) string {
	lines := strings.SplitN(content, "\n", n+1)
	if len(lines) > n {
		lines = lines[:n]
	}
	return strings.Join(lines, "\n")
}

func shapeString(shape []fieldval.Kind) string {
	parts := make([]string, len(shape))
	for i, k := range shape {
		parts[i] = string(k)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
