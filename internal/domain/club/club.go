// Package club defines the Club aggregate: its members, partner companies,
// and events.
package club

import (
	"fmt"

	"github.com/jsamuelsen11/club-records/internal/domain/company"
	"github.com/jsamuelsen11/club-records/internal/domain/event"
	"github.com/jsamuelsen11/club-records/internal/domain/people"
	"github.com/jsamuelsen11/club-records/internal/domain/record"
)

// Rule names reported by Club validation.
const (
	RuleNotEmpty        = "club_not_empty"
	RuleLargeClubEvents = "large_club_events"
)

// Thresholds for the large-club rule.
const (
	LargeClubMembers   = 100
	LargeClubMinEvents = 3
)

// Club groups people, partner companies and events.
type Club struct {
	Name             string                   `json:"name" validate:"min=2,max=100"`
	Members          []people.Registrant      `json:"members" validate:"-"`
	PartnerCompanies []company.PartnerCompany `json:"partner_companies" validate:"-"`
	Events           []event.Event            `json:"events" validate:"-"`
}

// Schema builds a Club. The non-empty check looks at the raw collections
// before any default is applied.
var Schema = &record.Schema[Club]{
	Name: "club",
	Before: []record.Check{{
		Name:    RuleNotEmpty,
		Fields:  []string{"members", "partner_companies", "events"},
		Message: "a club must have at least one member, partner company or event",
		OK: func(raw record.Raw) bool {
			return !raw.Empty("members") || !raw.Empty("partner_companies") || !raw.Empty("events")
		},
	}},
	Read: func(r *record.Reader) Club {
		return Club{
			Name:             r.String("name"),
			Members:          record.ListOneOf(r, "members", people.Registrants...),
			PartnerCompanies: record.List(r, "partner_companies", company.PartnerSchema),
			Events:           record.List(r, "events", event.Schema),
		}
	},
	Rules: []record.Rule[Club]{{
		Name:   RuleLargeClubEvents,
		Path:   "events",
		Fields: []string{"members", "events"},
		Check: func(c *Club, _ record.Env) error {
			if len(c.Members) > LargeClubMembers && len(c.Events) < LargeClubMinEvents {
				return fmt.Errorf("clubs with more than %d members must hold at least %d events, got %d",
					LargeClubMembers, LargeClubMinEvents, len(c.Events))
			}
			return nil
		},
	}},
}

// Parse builds a Club from raw field values.
func Parse(raw record.Raw, opts ...record.Option) (Club, error) {
	return Schema.Parse(raw, opts...)
}

// ParseJSON builds a Club from a JSON document, such as one produced by a
// language model asked to describe a club.
func ParseJSON(data []byte, opts ...record.Option) (Club, error) {
	return Schema.ParseJSON(data, opts...)
}
