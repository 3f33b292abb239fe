package chat

import (
	"encoding/json"
	"maps"
	"slices"
	"testing"

	"github.com/jsamuelsen11/club-records/internal/domain/company"
	"github.com/jsamuelsen11/club-records/internal/domain/event"
)

// walkObjects calls fn for every object schema reachable from s.
func walkObjects(s map[string]any, fn func(map[string]any)) {
	if s["type"] == "object" {
		fn(s)
		for _, p := range s["properties"].(map[string]any) {
			walkObjects(p.(map[string]any), fn)
		}
	}
	if items, ok := s["items"].(map[string]any); ok {
		walkObjects(items, fn)
	}
	if variants, ok := s["anyOf"].([]any); ok {
		for _, v := range variants {
			walkObjects(v.(map[string]any), fn)
		}
	}
}

func TestClubResponseFormat_StrictObjects(t *testing.T) {
	t.Parallel()

	rf := ClubResponseFormat()
	if rf.Type != ResponseFormatJSONSchema || rf.JSONSchema == nil || !rf.JSONSchema.Strict {
		t.Fatalf("ClubResponseFormat() = %+v", rf)
	}

	count := 0
	walkObjects(rf.JSONSchema.Schema, func(obj map[string]any) {
		count++
		if obj["additionalProperties"] != false {
			t.Errorf("object allows extra keys: %v", obj)
		}
		props := slices.Sorted(maps.Keys(obj["properties"].(map[string]any)))
		if !slices.Equal(obj["required"].([]string), props) {
			t.Errorf("required = %v, want every property %v", obj["required"], props)
		}
	})
	// club, partner company, member, freelancer, researcher, event
	if count < 6 {
		t.Errorf("visited %d object schemas, want at least 6", count)
	}

	if _, err := json.Marshal(rf); err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
}

func TestClubResponseFormat_DomainEnums(t *testing.T) {
	t.Parallel()

	schema := ClubResponseFormat().JSONSchema.Schema
	props := schema["properties"].(map[string]any)

	partner := props["partner_companies"].(map[string]any)["items"].(map[string]any)
	sectors := partner["properties"].(map[string]any)["sector"].(map[string]any)["enum"].([]string)
	if len(sectors) != len(company.Sectors()) || sectors[0] != string(company.Sectors()[0]) {
		t.Errorf("sector enum = %v, want %v", sectors, company.Sectors())
	}

	ev := props["events"].(map[string]any)["items"].(map[string]any)
	types := ev["properties"].(map[string]any)["event_type"].(map[string]any)["enum"].([]string)
	if !slices.Contains(types, string(event.TypeNetworking)) {
		t.Errorf("event_type enum = %v, want Networking listed", types)
	}
}

func TestClubResponseFormat_RegistrantVariantOrder(t *testing.T) {
	t.Parallel()

	members := ClubResponseFormat().JSONSchema.Schema["properties"].(map[string]any)["members"].(map[string]any)
	variants := members["items"].(map[string]any)["anyOf"].([]any)
	if len(variants) != 3 {
		t.Fatalf("len(anyOf) = %d, want 3", len(variants))
	}

	marker := []string{"company", "specialty", "field_of_study"}
	for i, v := range variants {
		props := v.(map[string]any)["properties"].(map[string]any)
		if _, ok := props[marker[i]]; !ok {
			t.Errorf("variant %d lacks %q: resolution order must be member, freelancer, researcher", i, marker[i])
		}
	}
}
