package probability

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dcasekit/dcase-go/internal/errors"
	"github.com/dcasekit/dcase-go/internal/fieldval"
	"github.com/dcasekit/dcase-go/internal/logging"
)

var log = logging.Logger("probability")

// Load reads a probability collection from a delimited text file. The
// delimiter is sniffed, tab preferred. Two row layouts are accepted:
// filename+label+probability and the same with a trailing integer
// index.
func Load(path string) (*Collection, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Error("probability file not accessible", "path", path, "error", err)
		return nil, errors.Newf("probability file not accessible: %w", err).
			Component("probability").Category(errors.CategoryFileIO).
			Context("path", path).Build()
	}

	c, err := parse(string(raw))
	if err != nil {
		log.Error("probability load failed", "path", path, "error", err)
		return nil, err
	}
	c.Filename = path
	log.Debug("probability file loaded", "path", path, "records", c.Len())
	return c, nil
}

func parse(content string) (*Collection, error) {
	delimiter := sniffDelimiter(content)
	reader := csv.NewReader(strings.NewReader(content))
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = delimiter != ' '

	c := &Collection{}
	row := 0
	for {
		cells, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Newf("parsing row %d: %w", row, err).
				Component("probability").Category(errors.CategoryFileParsing).Build()
		}
		row++
		if blankRow(cells) {
			continue
		}

		record, err := parseRow(cells)
		if err != nil {
			return nil, errors.Newf("row %d: %w", row, err).
				Component("probability").Category(errors.CategoryFileParsing).
				Context("cells", cells).Build()
		}
		c.Append(record)
	}
	return c, nil
}

func parseRow(cells []string) (Record, error) {
	shape := make([]fieldval.Kind, len(cells))
	for i, cell := range cells {
		kind := fieldval.Classify(cell)
		if kind == fieldval.KindAlpha1 || kind == fieldval.KindAlpha2 {
			kind = fieldval.KindString
		}
		shape[i] = kind
	}

	valid := len(shape) == 3 &&
		shape[0] == fieldval.KindAudioFile &&
		shape[1] == fieldval.KindString &&
		shape[2] == fieldval.KindNumber
	withIndex := len(shape) == 4 &&
		shape[0] == fieldval.KindAudioFile &&
		shape[1] == fieldval.KindString &&
		shape[2] == fieldval.KindNumber &&
		shape[3] == fieldval.KindNumber
	if !valid && !withIndex {
		return Record{}, errors.Newf("unrecognized row layout %v", shape).
			Component("probability").Category(errors.CategoryFileParsing).Build()
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(cells[2]), 64)
	if err != nil {
		return Record{}, errors.Newf("invalid probability cell [%s]: %w", cells[2], err).
			Component("probability").Category(errors.CategoryFileParsing).Build()
	}
	record := Record{
		Filename:    strings.TrimSpace(cells[0]),
		Label:       strings.TrimSpace(cells[1]),
		Probability: Float(value),
	}
	if withIndex {
		index, err := strconv.Atoi(strings.TrimSpace(cells[3]))
		if err != nil {
			return Record{}, errors.Newf("invalid index cell [%s]: %w", cells[3], err).
				Component("probability").Category(errors.CategoryFileParsing).Build()
		}
		record.Index = Int(index)
	}
	return record, nil
}

// Save writes the collection as delimited text, one record per row.
func Save(c *Collection, path string, delimiter rune) error {
	if delimiter == 0 {
		delimiter = '\t'
	}

	f, err := os.Create(path)
	if err != nil {
		log.Error("probability save failed", "path", path, "error", err)
		return errors.Newf("creating probability file: %w", err).
			Component("probability").Category(errors.CategoryFileIO).
			Context("path", path).Build()
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	writer.Comma = delimiter
	for i := range c.Records {
		r := &c.Records[i]
		cells := []string{
			r.Filename,
			r.Label,
			strconv.FormatFloat(floatOrZero(r.Probability), 'f', -1, 64),
		}
		if r.Index != nil {
			cells = append(cells, strconv.Itoa(*r.Index))
		}
		if err := writer.Write(cells); err != nil {
			log.Error("probability save failed", "path", path, "error", err)
			return errors.Newf("writing probability file: %w", err).
				Component("probability").Category(errors.CategoryFileIO).
				Context("path", path).Build()
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Error("probability save failed", "path", path, "error", err)
		return errors.Newf("writing probability file: %w", err).
			Component("probability").Category(errors.CategoryFileIO).
			Context("path", path).Build()
	}
	c.Filename = path
	log.Debug("probability file saved", "path", path, "records", c.Len())
	return f.Sync()
}

func sniffDelimiter(sample string) rune {
	for _, candidate := range []rune{'\t', ',', ';', ' '} {
		if strings.ContainsRune(sample, candidate) {
			return candidate
		}
	}
	return '\t'
}

func blankRow(cells []string) bool {
	for _, cell := range cells {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
