package services

import (
	"context"
	"encoding/json"
	"strings"
)

// TripDetails are the fields the extractor can pull from free text. All
// optional: nil means the user has not said it yet.
type TripDetails struct {
	Destination *string  `json:"destination"`
	Days        *int     `json:"days"`
	Budget      *float64 `json:"budget"`
}

const extractionPrompt = `Extract travel details from the user's message.
Reply with RAW JSON only, no markdown, no explanation, exactly these keys:
{"destination": string or null, "days": number or null, "budget": number or null}
Use null for anything the message does not state.`

// ExtractTripDetails asks the model for the structured fields hidden in free
// text. Any malformed response degrades to all-nil fields so the caller just
// asks the user again; extraction never returns an error.
func ExtractTripDetails(ctx context.Context, llm ChatCompleter, input string) TripDetails {
	raw, err := llm.Complete(ctx, []ChatMessage{
		{Role: RoleSystem, Content: extractionPrompt},
		{Role: RoleUser, Content: input},
	}, ExtractionProfile)
	if err != nil {
		return TripDetails{}
	}

	return ParseTripDetails(raw)
}

// ParseTripDetails parses the model's extraction output. The response is
// untrusted text: code fences are stripped and every parse failure yields the
// zero value.
func ParseTripDetails(raw string) TripDetails {
	cleaned := stripCodeFences(raw)

	// Models sometimes wrap the object in prose; take the outermost braces.
	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start == -1 || end == -1 || end < start {
		return TripDetails{}
	}

	var details TripDetails
	if err := json.Unmarshal([]byte(cleaned[start:end+1]), &details); err != nil {
		return TripDetails{}
	}

	// Reject nonsense values rather than carrying them into the trip state.
	if details.Days != nil && *details.Days <= 0 {
		details.Days = nil
	}
	if details.Budget != nil && *details.Budget <= 0 {
		details.Budget = nil
	}
	if details.Destination != nil && strings.TrimSpace(*details.Destination) == "" {
		details.Destination = nil
	}

	return details
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if idx := strings.LastIndex(s, "```"); idx != -1 {
			s = s[:idx]
		}
	}
	return strings.TrimSpace(s)
}
