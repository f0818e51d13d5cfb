// Package fieldval classifies raw text tokens from loosely structured
// annotation files into coarse field kinds. Annotation files in the wild
// carry no headers, so the kind sequence of a row is the only reliable way
// to decide which column layout the row follows.
package fieldval

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Kind is the coarse type assigned to a single cell of a delimited row.
type Kind string

const (
	KindEmpty     Kind = "EMPTY"
	KindNumber    Kind = "NUMBER"
	KindAudioFile Kind = "AUDIOFILE"
	KindDataFile  Kind = "DATAFILE"
	KindAlpha1    Kind = "ALPHA1"
	KindAlpha2    Kind = "ALPHA2"
	KindList      Kind = "LIST"
	KindString    Kind = "STRING"
)

// audioFileExtensions covers the audio container formats recognized as
// filename cells.
var audioFileExtensions = map[string]bool{
	".wav":  true,
	".flac": true,
	".mp3":  true,
	".aac":  true,
	".aiff": true,
	".aif":  true,
	".ogg":  true,
	".raw":  true,
}

// dataFileExtensions covers serialized data formats. The pickle and npy
// entries keep compatibility with annotation lists produced by Python
// tooling, gob is the native binary format of this library.
var dataFileExtensions = map[string]bool{
	".cpickle": true,
	".pickle":  true,
	".npy":     true,
	".gob":     true,
	".yaml":    true,
}

var listSplitter = regexp.MustCompile(`[;:#"]+`)

// Classify assigns a Kind to a raw cell token. Classification is ordered,
// first match wins: empty, number, audio file, data file, list, one or two
// letter code, generic string.
func Classify(token string) Kind {
	token = strings.TrimSpace(token)

	switch {
	case token == "":
		return KindEmpty
	case isNumber(token):
		return KindNumber
	case isAudioFile(token):
		return KindAudioFile
	case isDataFile(token):
		return KindDataFile
	case isList(token):
		return KindList
	case isAlpha(token, 1):
		return KindAlpha1
	case isAlpha(token, 2):
		return KindAlpha2
	default:
		return KindString
	}
}

// isNumber reports whether the token parses as a float or complex number.
// Decimal commas are normalized to decimal points before parsing so that
// locale formatted files classify the same way.
func isNumber(token string) bool {
	normalized := strings.ReplaceAll(token, ",", ".")
	if _, err := strconv.ParseFloat(normalized, 64); err == nil {
		return true
	}
	if _, err := strconv.ParseComplex(normalized, 128); err == nil {
		return true
	}
	return false
}

func isAudioFile(token string) bool {
	return audioFileExtensions[strings.ToLower(filepath.Ext(token))]
}

func isDataFile(token string) bool {
	return dataFileExtensions[strings.ToLower(filepath.Ext(token))]
}

// isList reports whether the token splits into more than one part on any
// of the list delimiters. A trailing delimiter alone is enough, which is
// how single tag cells like "birds;" stay recognizable as tag lists.
func isList(token string) bool {
	return len(listSplitter.Split(token, -1)) > 1
}

func isAlpha(token string, length int) bool {
	if len(token) != length {
		return false
	}
	for _, r := range token {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
