// Package annotation provides the event meta data model used throughout
// the toolkit: a record type for one labeled time segment on an audio
// file, and a collection type owning multi-format (de)serialization,
// filtering, interval algebra, set algebra and statistics.
package annotation

import (
	"crypto/md5" //nolint:gosec // content fingerprint, not security
	"encoding/hex"
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/dcasekit/dcase-go/internal/errors"
)

// Event represents one annotated time interval on one audio file. Every
// field is optional, the zero value means "not set". Onset and offset are
// pointers so that an explicit 0.0 stays distinguishable from absence.
type Event struct {
	Filename    string   `yaml:"filename,omitempty"`
	Onset       *float64 `yaml:"onset,omitempty"`
	Offset      *float64 `yaml:"offset,omitempty"`
	SceneLabel  string   `yaml:"scene_label,omitempty"`
	EventLabel  string   `yaml:"event_label,omitempty"`
	Tags        []string `yaml:"tags,omitempty"`
	Identifier  string   `yaml:"identifier,omitempty"`
	SourceLabel string   `yaml:"source_label,omitempty"`
	SetLabel    string   `yaml:"set_label,omitempty"`
	// FilenameOriginal keeps the pre-processing file name when the
	// annotated file is a rename or a cut of another recording.
	FilenameOriginal string `yaml:"filename_original,omitempty"`
}

// Float returns a pointer to v. Convenience for building events with
// literal onset and offset values.
func Float(v float64) *float64 {
	return &v
}

// Bool returns a pointer to v. Convenience for tri-state options.
func Bool(v bool) *bool {
	return &v
}

// tagDelimiters in priority order, first delimiter found in the string is
// used for splitting.
var tagDelimiters = []string{"#", ",", ";", ":"}

// SplitTags normalizes a delimited tag string into a sorted tag list.
// The first matching delimiter wins, parts are stripped, blank entries
// dropped and the result sorted alphabetically. The literal string "none"
// yields an empty list.
func SplitTags(value string) []string {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, "none") {
		return nil
	}

	parts := []string{value}
	for _, delimiter := range tagDelimiters {
		if strings.Contains(value, delimiter) {
			parts = strings.Split(value, delimiter)
			break
		}
	}

	return normalizeTagList(parts)
}

func normalizeTagList(parts []string) []string {
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			tags = append(tags, part)
		}
	}
	sort.Strings(tags)
	if len(tags) == 0 {
		return nil
	}
	return tags
}

// normalizeLabel strips the label and maps the literal "none" (any case)
// to the empty string.
func normalizeLabel(value string) string {
	value = strings.TrimSpace(value)
	if strings.EqualFold(value, "none") {
		return ""
	}
	return value
}

// normalizePath keeps relative file paths in forward-slash form so that
// annotation files exchange cleanly across platforms. Absolute paths are
// left untouched.
func normalizePath(value string) string {
	if value == "" || filepath.IsAbs(value) {
		return value
	}
	return filepath.ToSlash(filepath.Clean(value))
}

// SetFilename assigns the filename, canonicalizing relative paths.
func (e *Event) SetFilename(value string) {
	e.Filename = normalizePath(value)
}

// SetSceneLabel assigns the scene label with normalization.
func (e *Event) SetSceneLabel(value string) {
	e.SceneLabel = normalizeLabel(value)
}

// SetEventLabel assigns the event label with normalization.
func (e *Event) SetEventLabel(value string) {
	e.EventLabel = normalizeLabel(value)
}

// SetTags assigns tags from a delimited string, re-applying the full tag
// normalization.
func (e *Event) SetTags(value string) {
	e.Tags = SplitTags(value)
}

// SetTagList assigns tags from a list, re-applying strip/drop/sort
// normalization.
func (e *Event) SetTagList(tags []string) {
	e.Tags = normalizeTagList(tags)
}

// normalize re-applies field normalization after a decoder has populated
// the struct directly, bypassing the setters.
func (e *Event) normalize() {
	e.Filename = normalizePath(e.Filename)
	e.SceneLabel = normalizeLabel(e.SceneLabel)
	e.EventLabel = normalizeLabel(e.EventLabel)
	e.Tags = normalizeTagList(e.Tags)
	e.Identifier = strings.TrimSpace(e.Identifier)
	e.SourceLabel = strings.TrimSpace(e.SourceLabel)
	e.SetLabel = strings.TrimSpace(e.SetLabel)
	e.FilenameOriginal = normalizePath(e.FilenameOriginal)
}

// NewEventFromFields builds an Event from a loose field map, the shape
// rows take after CSV or YAML parsing. Legacy field names are migrated
// once: "file" to "filename", "event_onset" to "onset" and "event_offset"
// to "offset", only when the canonical key is absent.
func NewEventFromFields(fields map[string]any) (Event, error) {
	migrated := make(map[string]any, len(fields))
	for key, value := range fields {
		migrated[key] = value
	}
	for legacy, canonical := range map[string]string{
		"file":         "filename",
		"event_onset":  "onset",
		"event_offset": "offset",
	} {
		if value, ok := migrated[legacy]; ok {
			if _, exists := migrated[canonical]; !exists {
				migrated[canonical] = value
			}
			delete(migrated, legacy)
		}
	}

	var event Event
	for key, value := range migrated {
		switch key {
		case "filename":
			event.SetFilename(toString(value))
		case "onset":
			v, err := toFloat(value)
			if err != nil {
				return Event{}, errors.Newf("invalid onset value [%v]: %w", value, err).
					Component("annotation").Category(errors.CategoryValidation).Build()
			}
			event.Onset = &v
		case "offset":
			v, err := toFloat(value)
			if err != nil {
				return Event{}, errors.Newf("invalid offset value [%v]: %w", value, err).
					Component("annotation").Category(errors.CategoryValidation).Build()
			}
			event.Offset = &v
		case "scene_label":
			event.SetSceneLabel(toString(value))
		case "event_label":
			event.SetEventLabel(toString(value))
		case "tags":
			switch tags := value.(type) {
			case string:
				event.SetTags(tags)
			case []string:
				event.SetTagList(tags)
			case []any:
				list := make([]string, 0, len(tags))
				for _, tag := range tags {
					list = append(list, toString(tag))
				}
				event.SetTagList(list)
			}
		case "identifier":
			event.Identifier = strings.TrimSpace(toString(value))
		case "source_label":
			event.SourceLabel = strings.TrimSpace(toString(value))
		case "set_label":
			event.SetLabel = strings.TrimSpace(toString(value))
		case "filename_original":
			event.FilenameOriginal = normalizePath(toString(value))
		}
	}
	return event, nil
}

func toString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

func toFloat(value any) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case string:
		return strconv.ParseFloat(strings.TrimSpace(strings.ReplaceAll(v, ",", ".")), 64)
	default:
		return 0, fmt.Errorf("unsupported numeric type %T", value)
	}
}

// ID returns the content-derived identifier of the event: the MD5 digest
// over the populated semantic fields. Two events with identical content
// share the same id regardless of how they were constructed, which is the
// basis of collection set algebra.
func (e *Event) ID() string {
	var b strings.Builder
	b.WriteString(e.Filename)
	b.WriteString(e.SceneLabel)
	b.WriteString(e.EventLabel)
	b.WriteString(e.Identifier)
	b.WriteString(e.SourceLabel)
	b.WriteString(e.SetLabel)
	if len(e.Tags) > 0 {
		b.WriteString(strings.Join(e.Tags, ","))
	}
	if e.Onset != nil && *e.Onset != 0 {
		fmt.Fprintf(&b, "%8.4f", *e.Onset)
	}
	if e.Offset != nil && *e.Offset != 0 {
		fmt.Fprintf(&b, "%8.4f", *e.Offset)
	}

	sum := md5.Sum([]byte(b.String())) //nolint:gosec // content fingerprint, not security
	return hex.EncodeToString(sum[:])
}

// ActiveWithinSegment reports whether the event is active anywhere inside
// the segment [start, stop]: its onset or offset falls inside the
// segment, or the event spans the segment entirely.
func (e *Event) ActiveWithinSegment(start, stop float64) bool {
	if e.Onset != nil && start <= *e.Onset && *e.Onset <= stop {
		return true
	}
	if e.Offset != nil && start <= *e.Offset && *e.Offset <= stop {
		return true
	}
	if e.Onset != nil && e.Offset != nil && *e.Onset <= start && *e.Offset >= stop {
		return true
	}
	return false
}

// Copy returns a deep copy of the event. Returned copies never alias the
// original's onset, offset or tag storage.
func (e *Event) Copy() Event {
	clone := *e
	if e.Onset != nil {
		v := *e.Onset
		clone.Onset = &v
	}
	if e.Offset != nil {
		v := *e.Offset
		clone.Offset = &v
	}
	if e.Tags != nil {
		clone.Tags = append([]string(nil), e.Tags...)
	}
	return clone
}

// String returns a compact single-line summary for logs.
func (e *Event) String() string {
	parts := make([]string, 0, 6)
	if e.Filename != "" {
		parts = append(parts, e.Filename)
	}
	if e.SceneLabel != "" {
		parts = append(parts, e.SceneLabel)
	}
	if e.Onset != nil && e.Offset != nil {
		parts = append(parts, fmt.Sprintf("%.3f-%.3f", *e.Onset, *e.Offset))
	}
	if e.EventLabel != "" {
		parts = append(parts, e.EventLabel)
	}
	if len(e.Tags) > 0 {
		parts = append(parts, strings.Join(e.Tags, ";"))
	}
	return strings.Join(parts, " ")
}
