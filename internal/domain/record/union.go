package record

import (
	"strings"

	"github.com/jsamuelsen11/club-records/internal/domain"
)

// Variant is one candidate shape of a union-typed field.
type Variant[U any] struct {
	Name  string
	parse func(path string, v any, o *options) (U, []domain.Violation)
}

// As makes a record schema a union candidate, converting a successful parse
// into the union type with wrap.
func As[T, U any](s *Schema[T], wrap func(T) U) Variant[U] {
	return Variant[U]{
		Name: s.Name,
		parse: func(path string, v any, o *options) (U, []domain.Violation) {
			t, vs := s.parseValue(path, v, o)
			if len(vs) > 0 {
				var zero U
				return zero, vs
			}
			return wrap(t), nil
		},
	}
}

// Scalar makes a single-value conversion a union candidate. A conversion
// error becomes a field violation at the union's path.
func Scalar[U any](name string, conv func(v any) (U, error)) Variant[U] {
	return Variant[U]{
		Name: name,
		parse: func(path string, v any, _ *options) (U, []domain.Violation) {
			u, err := conv(v)
			if err != nil {
				return u, []domain.Violation{{
					Kind:    domain.KindField,
					Path:    path,
					Rule:    name,
					Message: err.Error(),
					Value:   v,
				}}
			}
			return u, nil
		},
	}
}

// resolve tries each variant in order and keeps the first full success.
func resolve[U any](path string, v any, o *options, variants []Variant[U]) (U, []domain.Violation) {
	failures := make([]domain.VariantFailure, 0, len(variants))
	names := make([]string, 0, len(variants))
	for _, variant := range variants {
		u, vs := variant.parse(path, v, o)
		if len(vs) == 0 {
			return u, nil
		}
		failures = append(failures, domain.VariantFailure{Variant: variant.Name, Violations: vs})
		names = append(names, variant.Name)
	}

	var zero U
	return zero, []domain.Violation{{
		Kind:     domain.KindUnion,
		Path:     path,
		Rule:     "union",
		Message:  "did not match any of: " + strings.Join(names, ", "),
		Value:    v,
		Variants: failures,
	}}
}

// OneOf reads a required union-typed field.
func OneOf[U any](r *Reader, name string, variants ...Variant[U]) U {
	v, ok := r.lookup(name)
	if !ok {
		var zero U
		return zero
	}
	u, vs := resolve(r.pathOf(name), v, r.opts, variants)
	r.absorb(name, vs)
	return u
}

// ListOneOf reads a list whose elements are union-typed. An absent field
// yields an empty list.
func ListOneOf[U any](r *Reader, name string, variants ...Variant[U]) []U {
	return listOf(r, name, func(path string, v any) (U, []domain.Violation) {
		return resolve(path, v, r.opts, variants)
	})
}
