package datastore

import (
	"strings"

	"github.com/dcasekit/dcase-go/internal/annotation"
)

// EventRecord is the relational shape of one annotation event. The
// content hash keyed unique index makes imports idempotent: re-importing
// the same annotation file changes nothing.
type EventRecord struct {
	ID          uint   `gorm:"primaryKey"`
	ContentID   string `gorm:"uniqueIndex;size:32"`
	Filename    string `gorm:"index"`
	Onset       *float64
	Offset      *float64
	SceneLabel  string `gorm:"index"`
	EventLabel  string `gorm:"index"`
	Tags        string
	Identifier  string
	SourceLabel string
	SetLabel    string
}

// fromEvent converts an annotation event into its relational shape.
func fromEvent(e *annotation.Event) EventRecord {
	return EventRecord{
		ContentID:   e.ID(),
		Filename:    e.Filename,
		Onset:       copyFloat(e.Onset),
		Offset:      copyFloat(e.Offset),
		SceneLabel:  e.SceneLabel,
		EventLabel:  e.EventLabel,
		Tags:        strings.Join(e.Tags, ";"),
		Identifier:  e.Identifier,
		SourceLabel: e.SourceLabel,
		SetLabel:    e.SetLabel,
	}
}

// toEvent converts a stored record back into an annotation event.
func (r *EventRecord) toEvent() annotation.Event {
	e := annotation.Event{
		Filename:    r.Filename,
		Onset:       copyFloat(r.Onset),
		Offset:      copyFloat(r.Offset),
		SceneLabel:  r.SceneLabel,
		EventLabel:  r.EventLabel,
		Identifier:  r.Identifier,
		SourceLabel: r.SourceLabel,
		SetLabel:    r.SetLabel,
	}
	if r.Tags != "" {
		e.SetTags(r.Tags)
	}
	return e
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}
