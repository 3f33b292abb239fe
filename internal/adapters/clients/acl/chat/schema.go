package chat

import (
	"maps"
	"slices"

	"github.com/jsamuelsen11/club-records/internal/domain/company"
	"github.com/jsamuelsen11/club-records/internal/domain/event"
	"github.com/jsamuelsen11/club-records/internal/domain/people"
)

// ResponseFormatJSONSchema asks the API for output matching a JSON schema.
const ResponseFormatJSONSchema = "json_schema"

// ClubSchemaName names the club schema in structured-output requests.
const ClubSchemaName = "club"

// ClubResponseFormat requests a club document in strict structured-output
// mode. Strict schemas must list every property as required and forbid
// extra keys, so optional fields are expressed as nullable types.
func ClubResponseFormat() *ResponseFormatDTO {
	return &ResponseFormatDTO{
		Type: ResponseFormatJSONSchema,
		JSONSchema: &JSONSchemaDTO{
			Name:   ClubSchemaName,
			Strict: true,
			Schema: clubSchema(),
		},
	}
}

func clubSchema() map[string]any {
	partner := object(map[string]any{
		"name":           str(),
		"website":        nullable("string"),
		"sector":         enum(company.Sectors()),
		"employee_count": integer(),
		"is_active":      boolean(),
	})

	person := func(extra map[string]any) map[string]any {
		props := map[string]any{"name": str(), "email": str(), "id": integer()}
		maps.Copy(props, extra)
		return object(props)
	}
	member := person(map[string]any{"company": partner})
	freelancer := person(map[string]any{
		"specialty":  enum(people.Specialties()),
		"companies":  array(partner),
		"daily_rate": nullable("integer"),
	})
	researcher := person(map[string]any{
		"field_of_study":     enum(people.FieldsOfStudy()),
		"number_of_articles": integer(),
		"companies":          array(partner),
	})
	registrant := map[string]any{"anyOf": []any{member, freelancer, researcher}}

	ev := object(map[string]any{
		"name":        str(),
		"event_type":  enum(event.Types()),
		"location":    str(),
		"start_time":  str(),
		"end_time":    str(),
		"registrants": array(registrant),
	})

	return object(map[string]any{
		"name":              str(),
		"members":           array(registrant),
		"partner_companies": array(partner),
		"events":            array(ev),
	})
}

func object(props map[string]any) map[string]any {
	required := slices.Sorted(maps.Keys(props))
	return map[string]any{
		"type":                 "object",
		"properties":           props,
		"required":             required,
		"additionalProperties": false,
	}
}

func array(items map[string]any) map[string]any {
	return map[string]any{"type": "array", "items": items}
}

func str() map[string]any     { return map[string]any{"type": "string"} }
func integer() map[string]any { return map[string]any{"type": "integer"} }
func boolean() map[string]any { return map[string]any{"type": "boolean"} }

func nullable(typ string) map[string]any {
	return map[string]any{"type": []string{typ, "null"}}
}

func enum[S ~string](values []S) map[string]any {
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = string(v)
	}
	return map[string]any{"type": "string", "enum": names}
}
