package event

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/jsamuelsen11/club-records/internal/domain"
	"github.com/jsamuelsen11/club-records/internal/domain/record"
)

func researcher(i int) map[string]any {
	return map[string]any{
		"name":           "Ada Lovelace",
		"email":          fmt.Sprintf("ada%d@example.com", i),
		"id":             i + 1,
		"field_of_study": "Computer Science",
	}
}

func registrants(n int) []any {
	out := make([]any, n)
	for i := range out {
		out[i] = researcher(i)
	}
	return out
}

func validRaw(eventType string, n int) record.Raw {
	return record.Raw{
		"name":        "Go Meetup",
		"event_type":  eventType,
		"registrants": registrants(n),
		"location":    "Paris",
		"start_time":  "2025-06-01T18:00:00Z",
		"end_time":    "2025-06-01T21:00:00Z",
	}
}

func parseErr(t *testing.T, err error) *domain.ValidationError {
	t.Helper()

	if err == nil {
		t.Fatal("Parse() = nil, want error")
	}
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	return verr
}

func TestParse_Valid(t *testing.T) {
	t.Parallel()

	e, err := Parse(validRaw("Workshop", 2))
	if err != nil {
		t.Fatalf("Parse() error = %v, want nil", err)
	}
	if e.RegisterCount != 2 {
		t.Errorf("RegisterCount = %d, want 2", e.RegisterCount)
	}
	if e.Duration() != 3*time.Hour {
		t.Errorf("Duration() = %v, want 3h", e.Duration())
	}
}

func TestParse_StartBeforeEnd(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		start   any
		end     any
		wantErr bool
	}{
		{name: "end after start", start: "2025-06-01T18:00:00Z", end: "2025-06-01T18:00:01Z"},
		{name: "end equals start", start: "2025-06-01T18:00:00Z", end: "2025-06-01T18:00:00Z", wantErr: true},
		{name: "end before start", start: "2025-06-02T00:00:00Z", end: "2025-06-01T00:00:00Z", wantErr: true},
		{name: "time values", start: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC), end: time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			raw := validRaw("Workshop", 1)
			raw["start_time"] = tt.start
			raw["end_time"] = tt.end
			_, err := Parse(raw)
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("Parse() error = %v, want nil", err)
				}
				return
			}
			verr := parseErr(t, err)
			if !verr.HasRule(RuleStartBeforeEnd) {
				t.Errorf("HasRule(%q) = false, got %v", RuleStartBeforeEnd, verr.Violations)
			}
		})
	}
}

func TestParse_StartBeforeEndShortCircuits(t *testing.T) {
	t.Parallel()

	raw := validRaw("Datathon", 0)
	raw["name"] = "X"
	raw["end_time"] = "2025-05-01T00:00:00Z"

	_, err := Parse(raw)
	verr := parseErr(t, err)
	if len(verr.Violations) != 1 || verr.Violations[0].Rule != RuleStartBeforeEnd {
		t.Errorf("want only %q, got %v", RuleStartBeforeEnd, verr.Violations)
	}
}

func TestParse_MalformedTimesAreFieldErrors(t *testing.T) {
	t.Parallel()

	raw := validRaw("Workshop", 1)
	raw["start_time"] = "tomorrow"
	delete(raw, "end_time")

	_, err := Parse(raw)
	verr := parseErr(t, err)
	if verr.HasRule(RuleStartBeforeEnd) {
		t.Errorf("pre-check ran on unreadable input: %v", verr.Violations)
	}
	if !verr.Has("start_time") || !verr.Has("end_time") {
		t.Errorf("want start_time and end_time violations, got %v", verr.Paths())
	}
}

func TestParse_RegistrantRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		eventType string
		count     int
		wantRules []string
	}{
		{name: "datathon with ten", eventType: "Datathon", count: 10},
		{name: "datathon with nine", eventType: "Datathon", count: 9, wantRules: []string{RuleDatathonSize}},
		{name: "empty datathon", eventType: "Datathon", count: 0, wantRules: []string{RuleDatathonSize, RuleRegistrantRequired}},
		{name: "empty workshop", eventType: "Workshop", count: 0, wantRules: []string{RuleRegistrantRequired}},
		{name: "empty conference", eventType: "Conference", count: 0, wantRules: []string{RuleRegistrantRequired}},
		{name: "empty networking is exempt", eventType: "Networking", count: 0},
		{name: "seminar with one", eventType: "Seminar", count: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse(validRaw(tt.eventType, tt.count))
			if len(tt.wantRules) == 0 {
				if err != nil {
					t.Fatalf("Parse() error = %v, want nil", err)
				}
				return
			}
			verr := parseErr(t, err)
			for _, rule := range tt.wantRules {
				if !verr.HasRule(rule) {
					t.Errorf("HasRule(%q) = false, got %v", rule, verr.Violations)
				}
			}
			if len(verr.Violations) != len(tt.wantRules) {
				t.Errorf("got %d violations, want %d", len(verr.Violations), len(tt.wantRules))
			}
		})
	}
}

func TestParse_InvalidRegistrantSkipsCountRules(t *testing.T) {
	t.Parallel()

	raw := validRaw("Datathon", 3)
	regs := raw["registrants"].([]any)
	regs[1] = map[string]any{"name": "Bob"}

	_, err := Parse(raw)
	verr := parseErr(t, err)
	if !verr.Has("registrants[1]") {
		t.Errorf("want registrants[1] violation, got %v", verr.Paths())
	}
	if verr.HasRule(RuleDatathonSize) {
		t.Errorf("count rule ran on invalid registrants: %v", verr.Violations)
	}
}

func TestParse_Idempotent(t *testing.T) {
	t.Parallel()

	a, err := Parse(validRaw("Conference", 4))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	b, err := Parse(validRaw("Conference", 4))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if a.Name != b.Name || !a.StartTime.Equal(b.StartTime) || len(a.Registrants) != len(b.Registrants) {
		t.Errorf("Parse() not idempotent: %+v vs %+v", a, b)
	}
	if !reflect.DeepEqual(a.Registrants, b.Registrants) {
		t.Errorf("Registrants differ: %+v vs %+v", a.Registrants, b.Registrants)
	}
}
