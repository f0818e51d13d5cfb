package annotation

import (
	"strconv"
	"strings"

	"github.com/dcasekit/dcase-go/internal/errors"
	"github.com/dcasekit/dcase-go/internal/fieldval"
)

// Column layouts supported by the delimited text format. Each layout maps
// a classified cell-kind sequence to the annotation fields the columns
// carry, in file order. The table is checked top to bottom, first match
// wins.
var rowLayouts = []rowLayout{
	{shape: kinds(fieldval.KindAudioFile), fields: []string{"filename"}},
	{shape: kinds(fieldval.KindNumber, fieldval.KindNumber), fields: []string{"onset", "offset"}},
	{shape: kinds(fieldval.KindNumber, fieldval.KindNumber, fieldval.KindString), fields: []string{"onset", "offset", "event_label"}},
	{shape: kinds(fieldval.KindAudioFile, fieldval.KindString), fields: []string{"filename", "scene_label"}},
	{shape: kinds(fieldval.KindAudioFile, fieldval.KindString, fieldval.KindString), fields: []string{"filename", "scene_label", "identifier"}},
	{shape: kinds(fieldval.KindAudioFile, fieldval.KindString, fieldval.KindAudioFile), fields: []string{"filename", "scene_label", "filename_original"}},
	{shape: kinds(fieldval.KindAudioFile, fieldval.KindNumber, fieldval.KindNumber), fields: []string{"filename", "onset", "offset"}},
	{shape: kinds(fieldval.KindAudioFile, fieldval.KindNumber, fieldval.KindNumber, fieldval.KindString), fields: []string{"filename", "onset", "offset", "event_label"}},
	{shape: kinds(fieldval.KindAudioFile, fieldval.KindNumber, fieldval.KindNumber, fieldval.KindString, fieldval.KindString), fields: []string{"filename", "onset", "offset", "event_label", "identifier"}},
	{shape: kinds(fieldval.KindAudioFile, fieldval.KindString, fieldval.KindNumber, fieldval.KindNumber), fields: []string{"filename", "scene_label", "onset", "offset"}},
	{shape: kinds(fieldval.KindAudioFile, fieldval.KindString, fieldval.KindNumber, fieldval.KindNumber, fieldval.KindString), fields: []string{"filename", "scene_label", "onset", "offset", "event_label"}},
	{shape: kinds(fieldval.KindAudioFile, fieldval.KindString, fieldval.KindNumber, fieldval.KindNumber, fieldval.KindString, fieldval.KindString), fields: []string{"filename", "scene_label", "onset", "offset", "event_label", "source_label"}},
	{shape: kinds(fieldval.KindAudioFile, fieldval.KindString, fieldval.KindNumber, fieldval.KindNumber, fieldval.KindString, fieldval.KindString, fieldval.KindString), fields: []string{"filename", "scene_label", "onset", "offset", "event_label", "source_label", "identifier"}},
	{shape: kinds(fieldval.KindAudioFile, fieldval.KindList), fields: []string{"filename", "tags"}},
	{shape: kinds(fieldval.KindAudioFile, fieldval.KindList, fieldval.KindString), fields: []string{"filename", "tags", "identifier"}},
	{shape: kinds(fieldval.KindAudioFile, fieldval.KindString, fieldval.KindList), fields: []string{"filename", "scene_label", "tags"}},
	{shape: kinds(fieldval.KindAudioFile, fieldval.KindString, fieldval.KindList, fieldval.KindString), fields: []string{"filename", "scene_label", "tags", "identifier"}},
	{shape: kinds(fieldval.KindAudioFile, fieldval.KindString, fieldval.KindNumber, fieldval.KindNumber, fieldval.KindList), fields: []string{"filename", "scene_label", "onset", "offset", "tags"}},
	{shape: kinds(fieldval.KindAudioFile, fieldval.KindString, fieldval.KindList, fieldval.KindNumber, fieldval.KindNumber), fields: []string{"filename", "scene_label", "tags", "onset", "offset"}},
}

type rowLayout struct {
	shape  []fieldval.Kind
	fields []string
}

func kinds(k ...fieldval.Kind) []fieldval.Kind {
	return k
}

// classifyRow returns the cell-kind sequence of a row in canonical form:
// one and two letter codes classify as short alpha kinds but behave as
// generic strings for layout purposes, and trailing empty cells (a
// dangling delimiter at the line end) are ignored together with their
// cells.
func classifyRow(cells []string) ([]string, []fieldval.Kind) {
	shape := make([]fieldval.Kind, 0, len(cells))
	for _, cell := range cells {
		kind := fieldval.Classify(cell)
		if kind == fieldval.KindAlpha1 || kind == fieldval.KindAlpha2 {
			kind = fieldval.KindString
		}
		shape = append(shape, kind)
	}
	for len(shape) > 0 && shape[len(shape)-1] == fieldval.KindEmpty {
		shape = shape[:len(shape)-1]
		cells = cells[:len(cells)-1]
	}
	return cells, shape
}

// matchRowLayout finds the field mapping for a classified row shape.
func matchRowLayout(shape []fieldval.Kind) (rowLayout, bool) {
	for _, layout := range rowLayouts {
		if shapeEqual(layout.shape, shape) {
			return layout, true
		}
	}
	return rowLayout{}, false
}

func shapeEqual(a, b []fieldval.Kind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// buildEvent converts a layout-matched row into an Event. Numeric cells
// are decimal-comma normalized before conversion, string cells stripped.
func buildEvent(layout rowLayout, cells []string, decimal Decimal) (Event, error) {
	fields := make(map[string]any, len(layout.fields))
	for i, name := range layout.fields {
		cell := strings.TrimSpace(cells[i])
		if cell == "" {
			// Unset cell of an explicit column list.
			continue
		}
		switch name {
		case "onset", "offset":
			if decimal == DecimalComma {
				cell = strings.ReplaceAll(cell, ",", ".")
			}
			value, err := strconv.ParseFloat(strings.ReplaceAll(cell, ",", "."), 64)
			if err != nil {
				return Event{}, errors.Newf("invalid numeric cell [%s]: %w", cell, err).
					Component("annotation").Category(errors.CategoryFileParsing).Build()
			}
			fields[name] = value
		default:
			fields[name] = cell
		}
	}
	return NewEventFromFields(fields)
}

// FieldList returns the event's values as delimited-text cells in the
// column order dictated by its populated field set. The populated set
// must match one of the supported layouts, otherwise the event cannot be
// represented in the plain text format.
func (e *Event) FieldList() ([]string, error) {
	var present []string
	if e.Filename != "" {
		present = append(present, "filename")
	}
	if e.Onset != nil {
		present = append(present, "onset")
	}
	if e.Offset != nil {
		present = append(present, "offset")
	}
	if e.SceneLabel != "" {
		present = append(present, "scene_label")
	}
	if e.EventLabel != "" {
		present = append(present, "event_label")
	}
	if len(e.Tags) > 0 {
		present = append(present, "tags")
	}
	if e.Identifier != "" {
		present = append(present, "identifier")
	}
	if e.SourceLabel != "" {
		present = append(present, "source_label")
	}
	if e.FilenameOriginal != "" {
		present = append(present, "filename_original")
	}

	onset := func() string { return formatFloat(*e.Onset) }
	offset := func() string { return formatFloat(*e.Offset) }
	tags := func() string { return strings.Join(e.Tags, ";") + ";" }

	switch fieldSetKey(present) {
	case "filename":
		return []string{e.Filename}, nil
	case "onset,offset":
		return []string{onset(), offset()}, nil
	case "event_label,onset,offset":
		return []string{onset(), offset(), e.EventLabel}, nil
	case "event_label,filename":
		return []string{e.Filename, e.EventLabel}, nil
	case "filename,onset,offset":
		return []string{e.Filename, onset(), offset()}, nil
	case "event_label,filename,onset,offset":
		return []string{e.Filename, onset(), offset(), e.EventLabel}, nil
	case "filename,scene_label":
		return []string{e.Filename, e.SceneLabel}, nil
	case "filename,identifier,scene_label":
		return []string{e.Filename, e.SceneLabel, e.Identifier}, nil
	case "filename,filename_original,scene_label":
		return []string{e.Filename, e.SceneLabel, e.FilenameOriginal}, nil
	case "filename,onset,offset,scene_label":
		return []string{e.Filename, e.SceneLabel, onset(), offset()}, nil
	case "event_label,filename,onset,offset,scene_label":
		return []string{e.Filename, e.SceneLabel, onset(), offset(), e.EventLabel}, nil
	case "event_label,filename,identifier,onset,offset,scene_label":
		return []string{e.Filename, e.SceneLabel, onset(), offset(), e.EventLabel, e.Identifier}, nil
	case "event_label,filename,onset,offset,scene_label,source_label":
		return []string{e.Filename, e.SceneLabel, onset(), offset(), e.EventLabel, e.SourceLabel}, nil
	case "event_label,filename,identifier,onset,offset,scene_label,source_label":
		return []string{e.Filename, e.SceneLabel, onset(), offset(), e.EventLabel, e.SourceLabel, e.Identifier}, nil
	case "filename,tags":
		return []string{e.Filename, tags()}, nil
	case "filename,identifier,tags":
		return []string{e.Filename, tags(), e.Identifier}, nil
	case "filename,scene_label,tags":
		return []string{e.Filename, e.SceneLabel, tags()}, nil
	case "filename,identifier,scene_label,tags":
		return []string{e.Filename, e.SceneLabel, tags(), e.Identifier}, nil
	case "filename,onset,offset,scene_label,tags":
		return []string{e.Filename, e.SceneLabel, onset(), offset(), tags()}, nil
	default:
		return nil, errors.Newf("unsupported field combination [%s]", fieldSetKey(present)).
			Component("annotation").Category(errors.CategoryValidation).
			Context("fields", present).Build()
	}
}

// fieldSetKey produces a stable lookup key from the populated field
// names, alphabetical order.
func fieldSetKey(fields []string) string {
	sorted := append([]string(nil), fields...)
	sortStrings(sorted)
	return strings.Join(sorted, ",")
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
