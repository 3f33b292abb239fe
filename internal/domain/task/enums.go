package task

// Priority ranks how urgent a task is.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Priorities returns every defined priority from lowest to highest.
func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

// IsValid returns true if the priority is one of the defined constants.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (p Priority) String() string {
	return string(p)
}

// Type classifies the work a task represents.
type Type string

const (
	TypeFeature       Type = "feature"
	TypeBugfix        Type = "bugfix"
	TypeDocumentation Type = "documentation"
	TypeResearch      Type = "research"
)

// Types returns every defined task type in declaration order.
func Types() []Type {
	return []Type{TypeFeature, TypeBugfix, TypeDocumentation, TypeResearch}
}

// IsValid returns true if the task type is one of the defined constants.
func (t Type) IsValid() bool {
	switch t {
	case TypeFeature, TypeBugfix, TypeDocumentation, TypeResearch:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (t Type) String() string {
	return string(t)
}
