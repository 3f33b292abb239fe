package record

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"
)

var (
	errNotString = errors.New("must be a string")
	errNotInt    = errors.New("must be an integer")
	errNotFloat  = errors.New("must be a number")
	errNotBool   = errors.New("must be a boolean")
	errNotTime   = errors.New("must be a datetime")
)

// toString accepts only string values. Numbers and booleans are not stringified.
func toString(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", errNotString
	}
	return s, nil
}

// toInt accepts integers, integral floats, and base-10 numeric strings.
// Booleans and fractional numbers are rejected.
func toInt(v any) (int, error) {
	switch x := v.(type) {
	case bool:
		return 0, errNotInt
	case float64:
		return integral(x)
	case float32:
		return integral(float64(x))
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return int(i), nil
		}
		f, err := x.Float64()
		if err != nil {
			return 0, errNotInt
		}
		return integral(f)
	case string:
		s := strings.TrimSpace(x)
		if i, err := strconv.Atoi(s); err == nil {
			return i, nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, errNotInt
		}
		return integral(f)
	}

	i, err := cast.ToIntE(v)
	if err != nil {
		return 0, errNotInt
	}
	return i, nil
}

func integral(f float64) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, fmt.Errorf("%w without a fractional part", errNotInt)
	}
	// float64(math.MaxInt64) rounds up to 2^63, which no int64 holds.
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, fmt.Errorf("%w within range", errNotInt)
	}
	return int(f), nil
}

// toFloat accepts any numeric value or numeric string.
func toFloat(v any) (float64, error) {
	switch x := v.(type) {
	case bool:
		return 0, errNotFloat
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return 0, errNotFloat
		}
		return f, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, errNotFloat
		}
		return f, nil
	}

	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) {
		return 0, errNotFloat
	}
	return f, nil
}

// toBool accepts booleans, the integers 0 and 1, and the usual textual forms.
func toBool(v any) (bool, error) {
	switch x := v.(type) {
	case bool:
		return x, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(x)) {
		case "true", "t", "yes", "y", "on", "1":
			return true, nil
		case "false", "f", "no", "n", "off", "0":
			return false, nil
		}
		return false, errNotBool
	}

	i, err := toInt(v)
	if err != nil || (i != 0 && i != 1) {
		return false, errNotBool
	}
	return i == 1, nil
}

// toTime accepts time.Time values, RFC 3339 and ISO-8601 date or datetime
// strings, and whole Unix seconds given as a number or a digit string.
// Values without a zone are taken as UTC.
func toTime(v any) (time.Time, error) {
	switch x := v.(type) {
	case time.Time:
		return x, nil
	case *time.Time:
		if x == nil {
			return time.Time{}, errNotTime
		}
		return *x, nil
	case bool:
		return time.Time{}, errNotTime
	case json.Number, float64, float32, int, int32, int64:
		return unixSeconds(x)
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return time.Time{}, errNotTime
		}
		if _, err := strconv.ParseInt(s, 10, 64); err == nil {
			return unixSeconds(s)
		}
	}

	t, err := cast.ToTimeInDefaultLocationE(v, time.UTC)
	if err != nil {
		return time.Time{}, errNotTime
	}
	return t, nil
}

func unixSeconds(v any) (time.Time, error) {
	sec, err := toInt(v)
	if err != nil {
		return time.Time{}, errNotTime
	}
	return time.Unix(int64(sec), 0).UTC(), nil
}

// TimeValue coerces a raw value to a time, for Before checks that compare
// datetimes on unparsed input.
func TimeValue(v any) (time.Time, bool) {
	if v == nil {
		return time.Time{}, false
	}
	t, err := toTime(v)
	return t, err == nil
}
