package annotation

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/dcasekit/dcase-go/internal/errors"
)

// Format identifies an on-disk serialization for annotation collections.
type Format string

const (
	FormatTXT  Format = "txt"
	FormatAnn  Format = "ann"
	FormatCSV  Format = "csv"
	FormatYAML Format = "yaml"
	FormatGob  Format = "gob"
)

// Decimal selects the decimal separator convention of numeric cells in
// delimited text files.
type Decimal string

const (
	DecimalPoint Decimal = "point"
	DecimalComma Decimal = "comma"
)

var formatByExtension = map[string]Format{
	".txt":  FormatTXT,
	".ann":  FormatAnn,
	".csv":  FormatCSV,
	".yaml": FormatYAML,
	".yml":  FormatYAML,
	".gob":  FormatGob,
}

// DetectFormat resolves the serialization format from a file name
// extension.
func DetectFormat(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	format, ok := formatByExtension[ext]
	if !ok {
		return "", errors.Newf("unknown annotation file format [%s]", ext).
			Component("annotation").Category(errors.CategoryValidation).
			Context("path", path).Build()
	}
	return format, nil
}

// Delimiters considered when sniffing delimited text, in preference
// order.
var delimiterCandidates = []rune{'\t', ',', ';', ' '}

// sniffDelimiter picks the column delimiter from a content sample. The
// first candidate present in the sample wins. Comma is skipped as a
// candidate when it doubles as the decimal separator.
func sniffDelimiter(sample string, decimal Decimal) rune {
	for _, candidate := range delimiterCandidates {
		if candidate == ',' && decimal == DecimalComma {
			continue
		}
		if strings.ContainsRune(sample, candidate) {
			return candidate
		}
	}
	return '\t'
}

func sortStrings(values []string) {
	sort.Strings(values)
}
