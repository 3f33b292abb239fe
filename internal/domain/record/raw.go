package record

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"

	"github.com/jsamuelsen11/club-records/internal/domain"
)

// Raw is the untyped field-name to value mapping a record is built from.
type Raw map[string]any

// Has reports whether name is present with a non-null value.
func (r Raw) Has(name string) bool {
	v, ok := r[name]
	return ok && v != nil
}

// DecodeJSON decodes a single JSON object into a Raw mapping. Numbers are
// kept as json.Number so integer fields are not routed through float64.
// Anything but whitespace after the object is rejected.
func DecodeJSON(data []byte) (Raw, error) {
	var raw Raw
	if err := DecodeStrict(data, &raw); err != nil {
		return nil, JSONError("invalid JSON object", err)
	}
	if raw == nil {
		return nil, domain.NewFieldError("", "expected a JSON object, got null")
	}
	return raw, nil
}

// ErrTrailingData reports input left over after the first JSON value.
var ErrTrailingData = errors.New("unexpected data after the JSON value")

// DecodeStrict decodes exactly one JSON value from data into dst, keeping
// numbers as json.Number.
func DecodeStrict(data []byte, dst any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	if err := dec.Decode(dst); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return ErrTrailingData
	}
	return nil
}

// JSONError reports undecodable input as a record-level "json" violation.
func JSONError(msg string, err error) *domain.ValidationError {
	return &domain.ValidationError{Violations: []domain.Violation{{
		Kind:    domain.KindField,
		Rule:    "json",
		Message: fmt.Sprintf("%s: %v", msg, err),
	}}}
}

// asRaw converts a nested value into a Raw mapping.
func asRaw(v any) (Raw, bool) {
	switch m := v.(type) {
	case Raw:
		return m, true
	case map[string]any:
		return Raw(m), true
	}
	return nil, false
}

// asList converts a collection value into a slice of elements.
func asList(v any) ([]any, bool) {
	switch l := v.(type) {
	case []any:
		return l, true
	case []Raw:
		out := make([]any, len(l))
		for i := range l {
			out[i] = l[i]
		}
		return out, true
	case []map[string]any:
		out := make([]any, len(l))
		for i := range l {
			out[i] = l[i]
		}
		return out, true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// isEmpty reports whether a raw value counts as "nothing supplied":
// absent, null, false, zero, or an empty string, list, or mapping.
func isEmpty(v any) bool {
	if v == nil {
		return true
	}
	if l, ok := asList(v); ok {
		return len(l) == 0
	}
	if m, ok := asRaw(v); ok {
		return len(m) == 0
	}
	switch x := v.(type) {
	case string:
		return x == ""
	case bool:
		return !x
	case json.Number:
		f, err := x.Float64()
		return err == nil && f == 0
	}
	rv := reflect.ValueOf(v)
	return rv.IsZero()
}

// Empty reports whether the raw mapping supplies nothing for name.
func (r Raw) Empty(name string) bool {
	return isEmpty(r[name])
}
