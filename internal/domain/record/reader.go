package record

import (
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/club-records/internal/domain"
)

// Reader extracts typed fields from a Raw mapping for one record, collecting
// a violation for every field that is missing or cannot be coerced.
// A Reader is created by Schema.Parse; Read functions must not retain it.
type Reader struct {
	raw    Raw
	path   string
	opts   *options
	errs   []domain.Violation
	failed map[string]bool
}

func newReader(raw Raw, path string, o *options) *Reader {
	return &Reader{raw: raw, path: path, opts: o, failed: make(map[string]bool)}
}

// Provided reports whether the input carried a non-null value for name.
func (r *Reader) Provided(name string) bool {
	return r.raw.Has(name)
}

// Failed reports whether name already produced a violation.
func (r *Reader) Failed(name string) bool {
	return r.failed[name]
}

func (r *Reader) pathOf(name string) string {
	return joinPath(r.path, name)
}

func (r *Reader) fail(name, rule, msg string, value any) {
	r.failed[name] = true
	r.errs = append(r.errs, domain.Violation{
		Kind:    domain.KindField,
		Path:    r.pathOf(name),
		Rule:    rule,
		Message: msg,
		Value:   value,
	})
}

// absorb attaches violations produced by a nested parse to field name.
func (r *Reader) absorb(name string, vs []domain.Violation) {
	if len(vs) == 0 {
		return
	}
	r.failed[name] = true
	r.errs = append(r.errs, vs...)
}

// lookup returns the raw value for a required field, recording a violation
// when it is absent.
func (r *Reader) lookup(name string) (any, bool) {
	v, ok := r.raw[name]
	if !ok {
		r.fail(name, "required", domain.MsgRequired, nil)
		return nil, false
	}
	if v == nil {
		r.fail(name, "type", "must not be null", nil)
		return nil, false
	}
	return v, true
}

// lookupOptional returns the raw value when present, treating null as absent.
func (r *Reader) lookupOptional(name string) (any, bool) {
	v, ok := r.raw[name]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// lookupDefault returns the raw value when the key is present. A key that is
// present but null is a type violation, since null is not the default.
func (r *Reader) lookupDefault(name string) (any, bool) {
	v, ok := r.raw[name]
	if !ok {
		return nil, false
	}
	if v == nil {
		r.fail(name, "type", "must not be null", nil)
		return nil, false
	}
	return v, true
}

func coerce[T any](r *Reader, name string, v any, conv func(any) (T, error)) (T, bool) {
	out, err := conv(v)
	if err != nil {
		r.fail(name, "type", err.Error(), v)
		return out, false
	}
	return out, true
}

func required[T any](r *Reader, name string, conv func(any) (T, error)) T {
	var zero T
	v, ok := r.lookup(name)
	if !ok {
		return zero
	}
	out, _ := coerce(r, name, v, conv)
	return out
}

func optional[T any](r *Reader, name string, conv func(any) (T, error)) *T {
	v, ok := r.lookupOptional(name)
	if !ok {
		return nil
	}
	out, ok := coerce(r, name, v, conv)
	if !ok {
		return nil
	}
	return &out
}

func withDefault[T any](r *Reader, name string, def T, conv func(any) (T, error)) T {
	v, ok := r.lookupDefault(name)
	if !ok {
		return def
	}
	out, ok := coerce(r, name, v, conv)
	if !ok {
		return def
	}
	return out
}

// String reads a required string field.
func (r *Reader) String(name string) string { return required(r, name, toString) }

// OptString reads an optional string field; nil when absent or null.
func (r *Reader) OptString(name string) *string { return optional(r, name, toString) }

// Int reads a required integer field.
func (r *Reader) Int(name string) int { return required(r, name, toInt) }

// IntDefault reads an integer field, returning def when it is absent.
func (r *Reader) IntDefault(name string, def int) int { return withDefault(r, name, def, toInt) }

// OptInt reads an optional integer field.
func (r *Reader) OptInt(name string) *int { return optional(r, name, toInt) }

// Float reads a required number field.
func (r *Reader) Float(name string) float64 { return required(r, name, toFloat) }

// FloatDefault reads a number field, returning def when it is absent.
func (r *Reader) FloatDefault(name string, def float64) float64 {
	return withDefault(r, name, def, toFloat)
}

// OptFloat reads an optional number field.
func (r *Reader) OptFloat(name string) *float64 { return optional(r, name, toFloat) }

// BoolDefault reads a boolean field, returning def when it is absent.
func (r *Reader) BoolDefault(name string, def bool) bool {
	return withDefault(r, name, def, toBool)
}

// Time reads a required datetime field.
func (r *Reader) Time(name string) time.Time { return required(r, name, toTime) }

// OptTime reads an optional datetime field.
func (r *Reader) OptTime(name string) *time.Time { return optional(r, name, toTime) }

// Enum reads a required field restricted to values.
func Enum[E ~string](r *Reader, name string, values []E) E {
	v, ok := r.lookup(name)
	if !ok {
		return ""
	}
	return enumValue(r, name, v, values)
}

// EnumDefault reads a field restricted to values, returning def when absent.
func EnumDefault[E ~string](r *Reader, name string, values []E, def E) E {
	v, ok := r.lookupDefault(name)
	if !ok {
		return def
	}
	if e := enumValue(r, name, v, values); e != "" {
		return e
	}
	return def
}

func enumValue[E ~string](r *Reader, name string, v any, values []E) E {
	s, err := toString(v)
	if err == nil {
		for _, e := range values {
			if string(e) == s {
				return e
			}
		}
	}

	quoted := make([]string, len(values))
	for i, e := range values {
		quoted[i] = fmt.Sprintf("%q", string(e))
	}
	r.fail(name, "enum", "must be one of "+strings.Join(quoted, ", "), v)
	return ""
}

func joinPath(prefix, name string) string {
	switch {
	case prefix == "":
		return name
	case name == "":
		return prefix
	case strings.HasPrefix(name, "["):
		return prefix + name
	}
	return prefix + "." + name
}

func indexPath(prefix, name string, i int) string {
	return fmt.Sprintf("%s[%d]", joinPath(prefix, name), i)
}
