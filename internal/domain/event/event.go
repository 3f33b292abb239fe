// Package event defines the Event record.
package event

import (
	"errors"
	"fmt"
	"time"

	"github.com/jsamuelsen11/club-records/internal/domain/people"
	"github.com/jsamuelsen11/club-records/internal/domain/record"
)

// Rule names reported by Event validation.
const (
	RuleStartBeforeEnd     = "start_before_end"
	RuleDatathonSize       = "datathon_min_registrants"
	RuleRegistrantRequired = "registrant_required"
)

// DatathonMinRegistrants is the minimum team pool for a datathon.
const DatathonMinRegistrants = 10

// Event is a scheduled club activity.
type Event struct {
	Name        string              `json:"name" validate:"min=2,max=100"`
	Type        Type                `json:"event_type"`
	Registrants []people.Registrant `json:"registrants" validate:"-"`
	Location    string              `json:"location" validate:"min=2,max=200"`
	StartTime   time.Time           `json:"start_time"`
	EndTime     time.Time           `json:"end_time"`
	// RegisterCount is derived from Registrants.
	RegisterCount int `json:"register_count"`
}

// Duration returns how long the event lasts.
func (e Event) Duration() time.Duration {
	return e.EndTime.Sub(e.StartTime)
}

// Schema builds an Event. The start/end ordering is checked on the raw input,
// before either datetime is coerced.
var Schema = &record.Schema[Event]{
	Name: "event",
	Before: []record.Check{{
		Name:    RuleStartBeforeEnd,
		Fields:  []string{"start_time", "end_time"},
		Message: "end time must be after start time",
		OK:      startBeforeEnd,
	}},
	Read: func(r *record.Reader) Event {
		registrants := record.ListOneOf(r, "registrants", people.Registrants...)
		return Event{
			Name:          r.String("name"),
			Type:          record.Enum(r, "event_type", Types()),
			Registrants:   registrants,
			Location:      r.String("location"),
			StartTime:     r.Time("start_time"),
			EndTime:       r.Time("end_time"),
			RegisterCount: len(registrants),
		}
	},
	Rules: []record.Rule[Event]{
		{
			Name:   RuleDatathonSize,
			Path:   "registrants",
			Fields: []string{"event_type", "registrants"},
			Check: func(e *Event, _ record.Env) error {
				if e.Type == TypeDatathon && e.RegisterCount < DatathonMinRegistrants {
					return fmt.Errorf("datathon events require at least %d registrants, got %d",
						DatathonMinRegistrants, e.RegisterCount)
				}
				return nil
			},
		},
		{
			Name:   RuleRegistrantRequired,
			Path:   "registrants",
			Fields: []string{"event_type", "registrants"},
			Check: func(e *Event, _ record.Env) error {
				if e.Type != TypeNetworking && e.RegisterCount < 1 {
					return errNoRegistrants
				}
				return nil
			},
		},
	},
}

var errNoRegistrants = errors.New("events other than Networking require at least one registrant")

// startBeforeEnd holds unless both datetimes are present, readable, and out
// of order. Missing or malformed values are left to field validation.
func startBeforeEnd(raw record.Raw) bool {
	start, ok := record.TimeValue(raw["start_time"])
	if !ok {
		return true
	}
	end, ok := record.TimeValue(raw["end_time"])
	if !ok {
		return true
	}
	return end.After(start)
}

// Parse builds an Event from raw field values.
func Parse(raw record.Raw, opts ...record.Option) (Event, error) {
	return Schema.Parse(raw, opts...)
}
