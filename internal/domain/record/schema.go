package record

import (
	"slices"

	"github.com/jsamuelsen11/club-records/internal/domain"
)

// Check is a pre-check over the raw input, evaluated before any coercion or
// default filling. It sees absent fields as absent.
type Check struct {
	Name    string
	Fields  []string
	Message string
	OK      func(raw Raw) bool
}

// Rule is a cross-field predicate over an assembled record.
type Rule[T any] struct {
	Name string
	// Path is the field the violation is attached to. Empty for whole-record rules.
	Path string
	// Fields lists every field the rule reads. The rule is skipped when any
	// of them already failed.
	Fields []string
	// Explicit restricts the rule to inputs that supplied all of Fields,
	// so default values are trusted rather than re-validated.
	Explicit bool
	Check    func(v *T, env Env) error
}

// Schema describes how to build and validate a record of type T.
type Schema[T any] struct {
	// Name identifies the record kind in union failures.
	Name   string
	Before []Check
	Read   func(r *Reader) T
	Rules  []Rule[T]
}

// Parse builds a T from raw, returning a *domain.ValidationError listing
// every violation when the input is not acceptable.
func (s *Schema[T]) Parse(raw Raw, opts ...Option) (T, error) {
	v, vs := s.parse("", raw, newOptions(opts))
	if len(vs) > 0 {
		var zero T
		return zero, &domain.ValidationError{Violations: vs}
	}
	return v, nil
}

// ParseJSON decodes a JSON object and parses it.
func (s *Schema[T]) ParseJSON(data []byte, opts ...Option) (T, error) {
	raw, err := DecodeJSON(data)
	if err != nil {
		var zero T
		return zero, err
	}
	return s.Parse(raw, opts...)
}

func (s *Schema[T]) parse(path string, raw Raw, o *options) (T, []domain.Violation) {
	var zero T

	var pre []domain.Violation
	for _, c := range s.Before {
		if c.OK(raw) {
			continue
		}
		pre = append(pre, domain.Violation{
			Kind:    domain.KindRule,
			Path:    path,
			Rule:    c.Name,
			Message: c.Message,
			Fields:  c.Fields,
		})
	}
	if len(pre) > 0 {
		return zero, pre
	}

	r := newReader(raw, path, o)
	v := s.Read(r)
	vs := r.errs

	for _, fv := range constraintViolations(&v) {
		if r.failed[fv.field] {
			continue
		}
		r.failed[fv.field] = true
		fv.v.Path = joinPath(path, fv.v.Path)
		vs = append(vs, fv.v)
	}

	env := Env{Now: o.now()}
	for _, rule := range s.Rules {
		if slices.ContainsFunc(rule.Fields, r.Failed) {
			continue
		}
		if rule.Explicit && !all(rule.Fields, r.Provided) {
			continue
		}
		if err := rule.Check(&v, env); err != nil {
			vs = append(vs, domain.Violation{
				Kind:    domain.KindRule,
				Path:    joinPath(path, rule.Path),
				Rule:    rule.Name,
				Message: err.Error(),
				Fields:  rule.Fields,
			})
		}
	}

	if len(vs) > 0 {
		return zero, vs
	}
	return v, nil
}

func (s *Schema[T]) parseValue(path string, v any, o *options) (T, []domain.Violation) {
	raw, ok := asRaw(v)
	if !ok {
		var zero T
		return zero, []domain.Violation{{
			Kind:    domain.KindField,
			Path:    path,
			Rule:    "type",
			Message: "must be an object",
			Value:   v,
		}}
	}
	return s.parse(path, raw, o)
}

func all(names []string, pred func(string) bool) bool {
	for _, n := range names {
		if !pred(n) {
			return false
		}
	}
	return true
}

// Nested reads a required field holding a single record described by s.
func Nested[T any](r *Reader, name string, s *Schema[T]) T {
	v, ok := r.lookup(name)
	if !ok {
		var zero T
		return zero
	}
	out, vs := s.parseValue(r.pathOf(name), v, r.opts)
	r.absorb(name, vs)
	return out
}

// List reads a field holding a list of records described by s. An absent
// field yields an empty list. Each failing element is reported under its index.
func List[T any](r *Reader, name string, s *Schema[T]) []T {
	return listOf(r, name, func(path string, v any) (T, []domain.Violation) {
		return s.parseValue(path, v, r.opts)
	})
}

func listOf[T any](r *Reader, name string, parse func(path string, v any) (T, []domain.Violation)) []T {
	v, ok := r.lookupDefault(name)
	if !ok {
		return []T{}
	}
	items, ok := asList(v)
	if !ok {
		r.fail(name, "type", "must be a list", v)
		return []T{}
	}

	out := make([]T, 0, len(items))
	for i, item := range items {
		val, vs := parse(indexPath(r.path, name, i), item)
		r.absorb(name, vs)
		out = append(out, val)
	}
	return out
}
