package chat

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/club-records/internal/domain"
	"github.com/jsamuelsen11/club-records/internal/domain/company"
	"github.com/jsamuelsen11/club-records/internal/domain/event"
	"github.com/jsamuelsen11/club-records/internal/domain/people"
	"github.com/jsamuelsen11/club-records/internal/domain/record"
	"github.com/jsamuelsen11/club-records/internal/ports"
)

const systemPrompt = "You are a helpful assistant that generates club information. " +
	"Answer with a single JSON object and nothing else."

// temperature keeps generations varied without drifting off the schema.
const temperature = 0.7

// ErrNoCompletion is returned when the response carries no usable content.
// It matches domain.ErrUnavailable.
var ErrNoCompletion = fmt.Errorf("no usable completion: %w", domain.ErrUnavailable)

// ToRequest builds the chat request asking model for a club shaped by spec.
func ToRequest(model string, spec ports.GenerationSpec) RequestDTO {
	t := temperature
	return RequestDTO{
		Model: model,
		Messages: []MessageDTO{
			{Role: RoleSystem, Content: systemPrompt + "\n\n" + clubShape()},
			{Role: RoleUser, Content: fmt.Sprintf(
				"Generate a club with plausible and relevant information. "+
					"The club must contain %d companies, %d members and %d events.",
				spec.Companies, spec.Members, spec.Events)},
		},
		ResponseFormat: ClubResponseFormat(),
		Temperature:    &t,
	}
}

// ToRaw extracts the first choice's content as an unvalidated record.
// Content that is not a JSON object is reported as a validation error.
func ToRaw(resp ResponseDTO) (record.Raw, error) {
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("response %s has no choices: %w", resp.ID, ErrNoCompletion)
	}
	choice := resp.Choices[0]

	switch {
	case choice.Message.Refusal != "":
		return nil, fmt.Errorf("model refused: %s: %w", choice.Message.Refusal, ErrNoCompletion)
	case choice.FinishReason == "length":
		return nil, fmt.Errorf("completion truncated at the token limit: %w", domain.ErrUnavailable)
	case strings.TrimSpace(choice.Message.Content) == "":
		return nil, fmt.Errorf("empty completion: %w", ErrNoCompletion)
	}

	return record.DecodeJSON([]byte(stripFence(choice.Message.Content)))
}

// stripFence removes a ```json fence some models wrap around JSON output.
func stripFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "```"))
}

// clubShape describes the expected JSON document, listing the allowed enum
// values straight from the domain so the prompt cannot drift from the rules.
func clubShape() string {
	var b strings.Builder
	b.WriteString("The JSON object has keys: name (string), partner_companies, members, events.\n")
	b.WriteString("A company has: name, website (http(s) URL, required for Finance), sector, employee_count (1-99999), is_active.\n")
	b.WriteString("A member has: id (positive integer), name (letters, spaces, hyphens or apostrophes), email, company (a partner company).\n")
	b.WriteString("An event has: name, event_type, location, start_time and end_time (RFC 3339, start before end), ")
	b.WriteString("registrants (members; at least one, at least 10 for a Datathon).\n")
	fmt.Fprintf(&b, "sector is one of: %s.\n", join(company.Sectors()))
	fmt.Fprintf(&b, "event_type is one of: %s.\n", join(event.Types()))
	fmt.Fprintf(&b, "Freelancer specialties, if any registrant is a freelancer: %s.", join(people.Specialties()))
	return b.String()
}

func join[S ~string](values []S) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
