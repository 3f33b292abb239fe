// Package task defines the Task record: a unit of project work.
package task

import (
	"errors"
	"time"

	"github.com/jsamuelsen11/club-records/internal/domain/project"
	"github.com/jsamuelsen11/club-records/internal/domain/record"
	"github.com/jsamuelsen11/club-records/internal/domain/staff"
)

// Rule names reported by Task validation.
const (
	RuleDueDateNotPast        = "due_date_not_past"
	RuleDocumentationPriority = "documentation_priority"
)

var (
	errDueDatePast       = errors.New("due date cannot be in the past")
	errDocumentationHigh = errors.New("documentation tasks should not have high priority")
)

// Task is a piece of work within a project.
type Task struct {
	Title       string          `json:"title" validate:"min=5,not_placeholder"`
	Type        Type            `json:"task_type"`
	AssignedTo  staff.Assignee  `json:"assigned_to" validate:"-"`
	Priority    Priority        `json:"priority"`
	DueDate     *time.Time      `json:"due_date"`
	IsCompleted bool            `json:"is_completed"`
	Project     project.Project `json:"project" validate:"-"`
}

// Schema builds a Task. Priority defaults to medium and is_completed to false.
var Schema = &record.Schema[Task]{
	Name: "task",
	Read: func(r *record.Reader) Task {
		return Task{
			Title:       r.String("title"),
			Type:        record.Enum(r, "task_type", Types()),
			AssignedTo:  record.OneOf(r, "assigned_to", staff.Assignees...),
			Priority:    record.EnumDefault(r, "priority", Priorities(), PriorityMedium),
			DueDate:     r.OptTime("due_date"),
			IsCompleted: r.BoolDefault("is_completed", false),
			Project:     record.Nested(r, "project", project.Schema),
		}
	},
	Rules: []record.Rule[Task]{
		{
			Name:   RuleDueDateNotPast,
			Path:   "due_date",
			Fields: []string{"due_date"},
			Check: func(t *Task, env record.Env) error {
				if t.DueDate != nil && t.DueDate.Before(env.Now) {
					return errDueDatePast
				}
				return nil
			},
		},
		{
			Name:   RuleDocumentationPriority,
			Fields: []string{"task_type", "priority"},
			Check: func(t *Task, _ record.Env) error {
				if t.Type == TypeDocumentation && t.Priority == PriorityHigh {
					return errDocumentationHigh
				}
				return nil
			},
		},
	},
}

// Parse builds a Task from raw field values. Use record.WithClock to pin the
// instant the due date is compared against.
func Parse(raw record.Raw, opts ...record.Option) (Task, error) {
	return Schema.Parse(raw, opts...)
}
