package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTripDetails(t *testing.T) {
	goa := "Goa"
	days := 3
	budget := 10000.0

	tests := []struct {
		name string
		raw  string
		want TripDetails
	}{
		{
			"plain json",
			`{"destination": "Goa", "days": 3, "budget": 10000}`,
			TripDetails{Destination: &goa, Days: &days, Budget: &budget},
		},
		{
			"fenced json",
			"```json\n{\"destination\": \"Goa\", \"days\": 3, \"budget\": 10000}\n```",
			TripDetails{Destination: &goa, Days: &days, Budget: &budget},
		},
		{
			"json wrapped in prose",
			`Here is the extraction: {"destination": "Goa", "days": null, "budget": null} as requested.`,
			TripDetails{Destination: &goa},
		},
		{
			"partial fields",
			`{"destination": null, "days": 3, "budget": null}`,
			TripDetails{Days: &days},
		},
		{"not json at all", "I could not find any trip details, sorry!", TripDetails{}},
		{"empty response", "", TripDetails{}},
		{"broken json", `{"destination": "Goa", "days": `, TripDetails{}},
		{"wrong types", `{"destination": 42, "days": "three", "budget": []}`, TripDetails{}},
		{"negative days dropped", `{"destination": "Goa", "days": -2, "budget": 10000}`, TripDetails{Destination: &goa, Budget: &budget}},
		{"zero budget dropped", `{"destination": "Goa", "days": 3, "budget": 0}`, TripDetails{Destination: &goa, Days: &days}},
		{"blank destination dropped", `{"destination": "  ", "days": 3, "budget": null}`, TripDetails{Days: &days}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseTripDetails(tt.raw)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractTripDetailsModelFailure(t *testing.T) {
	llm := &stubLLM{err: errors.New("model unavailable")}

	got := ExtractTripDetails(context.Background(), llm, "trip to goa")
	assert.Equal(t, TripDetails{}, got)
}

func TestExtractTripDetailsUsesExtractionProfile(t *testing.T) {
	llm := &stubLLM{responses: []string{`{"destination": "Goa", "days": null, "budget": null}`}}

	got := ExtractTripDetails(context.Background(), llm, "I want to see Goa")
	require.NotNil(t, got.Destination)
	assert.Equal(t, "Goa", *got.Destination)

	require.Len(t, llm.calls, 1)
	assert.Equal(t, ExtractionProfile, llm.calls[0].profile)
	assert.Equal(t, RoleSystem, llm.calls[0].messages[0].Role)
	assert.Equal(t, "I want to see Goa", llm.calls[0].messages[1].Content)
}
