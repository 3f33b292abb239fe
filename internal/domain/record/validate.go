package record

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/jsamuelsen11/club-records/internal/domain"
)

var (
	emailPattern      = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	personNamePattern = regexp.MustCompile(`^\p{L}+(?:[ '\-]\p{L}+)*$`)

	// placeholders are titles too generic to describe any piece of work.
	placeholders = map[string]bool{"task": true, "todo": true, "fix": true}
)

var validate = sync.OnceValue(func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	must(v.RegisterValidation("email_shape", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	}))
	must(v.RegisterValidation("person_name", func(fl validator.FieldLevel) bool {
		return personNamePattern.MatchString(fl.Field().String())
	}))
	must(v.RegisterValidation("not_placeholder", func(fl validator.FieldLevel) bool {
		return !placeholders[strings.ToLower(strings.TrimSpace(fl.Field().String()))]
	}))
	must(v.RegisterValidation("multiple_of", multipleOf))

	return v
})

func must(err error) {
	if err != nil {
		panic(err)
	}
}

func multipleOf(fl validator.FieldLevel) bool {
	step, err := strconv.ParseInt(fl.Param(), 10, 64)
	if err != nil || step == 0 {
		return false
	}
	f := fl.Field()
	switch f.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return f.Int()%step == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return f.Uint()%uint64(step) == 0
	default:
		return false
	}
}

type fieldViolation struct {
	field string
	v     domain.Violation
}

// constraintViolations runs the struct-tag constraints over v. Nested records
// are tagged `validate:"-"` and validated by their own schema, so every
// reported field is a direct or promoted field of v.
func constraintViolations(v any) []fieldViolation {
	if reflect.Indirect(reflect.ValueOf(v)).Kind() != reflect.Struct {
		return nil
	}
	err := validate().Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []fieldViolation{{v: domain.Violation{
			Kind:    domain.KindField,
			Rule:    "constraint",
			Message: err.Error(),
		}}}
	}

	out := make([]fieldViolation, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, fieldViolation{
			field: fe.Field(),
			v: domain.Violation{
				Kind:    domain.KindField,
				Path:    fe.Field(),
				Rule:    fe.Tag(),
				Message: describe(fe),
				Value:   fe.Value(),
			},
		})
	}
	return out
}

// Constraint checks a single value against a validator tag expression,
// returning a descriptive error when it does not hold.
func Constraint(value any, tag string) error {
	err := validate().Var(value, tag)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return errors.New(describe(verrs[0]))
	}
	return err
}

func describe(fe validator.FieldError) string {
	param := fe.Param()
	switch fe.Tag() {
	case "required":
		return domain.MsgRequired
	case "min":
		return boundMessage(fe.Kind(), "at least", param)
	case "max":
		return boundMessage(fe.Kind(), "at most", param)
	case "gt":
		return "must be greater than " + param
	case "gte":
		return "must be greater than or equal to " + param
	case "lt":
		return "must be less than " + param
	case "lte":
		return "must be less than or equal to " + param
	case "http_url":
		return "must be a valid http or https URL"
	case "email_shape":
		return "must be a valid email address"
	case "person_name":
		return "must contain only letters, spaces, hyphens or apostrophes"
	case "not_placeholder":
		return "must be more descriptive than a generic placeholder"
	case "multiple_of":
		return "must be a multiple of " + param
	case "excludesall":
		if param == "0123456789" {
			return "must not contain digits"
		}
		return fmt.Sprintf("must not contain any of %q", param)
	}
	return fmt.Sprintf("failed the %q constraint", fe.Tag())
}

func boundMessage(kind reflect.Kind, bound, param string) string {
	switch kind {
	case reflect.String:
		return fmt.Sprintf("must be %s %s characters long", bound, param)
	case reflect.Slice, reflect.Array, reflect.Map:
		return fmt.Sprintf("must contain %s %s items", bound, param)
	default:
		return fmt.Sprintf("must be %s %s", bound, param)
	}
}
