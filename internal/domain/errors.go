package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrForbidden   = errors.New("forbidden")
	ErrUnavailable = errors.New("unavailable")
)

// MsgRequired is the message attached to a missing mandatory field.
const MsgRequired = "field required"

// ViolationKind classifies a single validation failure.
type ViolationKind string

const (
	// KindField is a single-field constraint failure: type mismatch, bound,
	// length, pattern, or unrecognized enum value.
	KindField ViolationKind = "field"
	// KindRule is a cross-field business rule failure.
	KindRule ViolationKind = "rule"
	// KindUnion means no candidate variant of a union field matched.
	KindUnion ViolationKind = "union"
)

// Violation describes one failed check found while constructing a record.
type Violation struct {
	Kind ViolationKind
	// Path locates the offending value, e.g. "members[3].company.website".
	// Empty for rules that apply to the whole record.
	Path    string
	Rule    string
	Message string
	Value   any
	// Fields lists the sibling fields a cross-field rule read.
	Fields []string
	// Variants holds each attempted candidate's failures for KindUnion.
	Variants []VariantFailure
}

// VariantFailure records why one candidate of a union did not match.
type VariantFailure struct {
	Variant    string
	Violations []Violation
}

// String renders the violation as "path: message".
func (v Violation) String() string {
	if v.Path == "" {
		return v.Message
	}
	return v.Path + ": " + v.Message
}

// ValidationError provides programmatic access to every validation failure
// found in one construction pass. Use errors.Is(err, ErrValidation) for simple
// checks, or errors.As(err, &verr) to inspect verr.Violations.
type ValidationError struct {
	Violations []Violation
}

// NewFieldError returns a ValidationError holding a single field violation.
// It is the shorthand used by adapters for request-level problems.
func NewFieldError(path, msg string) *ValidationError {
	return &ValidationError{Violations: []Violation{{
		Kind:    KindField,
		Path:    path,
		Rule:    "invalid",
		Message: msg,
	}}}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.String())
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Fields flattens the violations into a path -> message map. When several
// violations share a path their messages are joined with "; ". Record-level
// rules without a path are keyed by rule name.
func (e *ValidationError) Fields() map[string]string {
	fields := make(map[string]string, len(e.Violations))
	for _, v := range e.Violations {
		key := v.Path
		if key == "" {
			key = v.Rule
		}
		if prev, ok := fields[key]; ok {
			fields[key] = prev + "; " + v.Message
			continue
		}
		fields[key] = v.Message
	}
	return fields
}

// Has reports whether any violation is located at path.
func (e *ValidationError) Has(path string) bool {
	for _, v := range e.Violations {
		if v.Path == path {
			return true
		}
	}
	return false
}

// HasRule reports whether any violation was raised by the named rule.
func (e *ValidationError) HasRule(rule string) bool {
	for _, v := range e.Violations {
		if v.Rule == rule {
			return true
		}
	}
	return false
}

// Paths returns the distinct violation paths in sorted order.
func (e *ValidationError) Paths() []string {
	seen := make(map[string]bool, len(e.Violations))
	paths := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		if seen[v.Path] {
			continue
		}
		seen[v.Path] = true
		paths = append(paths, v.Path)
	}
	sort.Strings(paths)
	return paths
}
