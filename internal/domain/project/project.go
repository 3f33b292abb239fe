// Package project defines the Project record a task belongs to.
package project

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/jsamuelsen11/club-records/internal/domain/record"
	"github.com/jsamuelsen11/club-records/internal/domain/staff"
)

// Project is client work assigned to a staff member.
type Project struct {
	Name       string         `json:"name"`
	Client     string         `json:"client"`
	AssignedTo staff.Assignee `json:"assigned_to" validate:"-"`
	Deadline   *time.Time     `json:"deadline"`
	// BudgetEuros is optional but must be positive when set.
	BudgetEuros       *float64          `json:"budget_euros" validate:"omitnil,gt=0"`
	DocumentationLink DocumentationLink `json:"documentation_link" validate:"-"`
}

// DocumentationLink points at project documentation. It is either an
// http(s) URL or a free-form internal reference.
type DocumentationLink struct {
	value string
	isURL bool
}

// IsURL reports whether the link resolved as a URL.
func (d DocumentationLink) IsURL() bool { return d.isURL }

// String implements fmt.Stringer.
func (d DocumentationLink) String() string { return d.value }

// MarshalJSON renders the link as a plain JSON string.
func (d DocumentationLink) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.value)
}

var errNotText = errors.New("must be a string")

// DocumentationLinks lists the candidate shapes of a DocumentationLink.
var DocumentationLinks = []record.Variant[DocumentationLink]{
	record.Scalar("url", func(v any) (DocumentationLink, error) {
		s, ok := v.(string)
		if !ok {
			return DocumentationLink{}, errNotText
		}
		if err := record.Constraint(s, "http_url"); err != nil {
			return DocumentationLink{}, err
		}
		return DocumentationLink{value: s, isURL: true}, nil
	}),
	record.Scalar("text", func(v any) (DocumentationLink, error) {
		s, ok := v.(string)
		if !ok {
			return DocumentationLink{}, errNotText
		}
		return DocumentationLink{value: strings.TrimSpace(s)}, nil
	}),
}

// Schema builds a Project.
var Schema = &record.Schema[Project]{
	Name: "project",
	Read: func(r *record.Reader) Project {
		return Project{
			Name:              r.String("name"),
			Client:            r.String("client"),
			AssignedTo:        record.OneOf(r, "assigned_to", staff.Assignees...),
			Deadline:          r.OptTime("deadline"),
			BudgetEuros:       r.OptFloat("budget_euros"),
			DocumentationLink: record.OneOf(r, "documentation_link", DocumentationLinks...),
		}
	},
}

// Parse builds a Project from raw field values.
func Parse(raw record.Raw, opts ...record.Option) (Project, error) {
	return Schema.Parse(raw, opts...)
}
