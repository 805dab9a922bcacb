package services

import (
	"context"
	"fmt"
	"strings"
)

// TripContext is everything the generator may embed in the prompt. Distance,
// transport and weather are filled in form mode only; chat mode carries just
// destination, days and budget.
type TripContext struct {
	Source      string
	Destination string
	Days        int
	Budget      float64
	DistanceKm  int
	Transport   []TransportOption
	Weather     string
}

func itinerarySystemPrompt(days int) string {
	return fmt.Sprintf(`You are TripGenix, a strict travel assistant.

RULES:
- Answer ONLY travel, hotels, food, places queries
- Create EXACTLY %d days itinerary, labelled Day 1 to Day %d, no more, no fewer
- State the weather ONCE only, not per day; it is expected current weather, not a future guarantee
- Use price ranges and general descriptions only; never invent exact seasonal dates, exact prices or specific vehicle numbers`, days, days)
}

// GenerateItinerary builds the constrained prompt for a fully-resolved trip
// and invokes the model once. The model's text comes back verbatim; the
// constraints are not re-checked against the output.
func GenerateItinerary(ctx context.Context, llm ChatCompleter, trip TripContext) (string, error) {
	var user strings.Builder

	user.WriteString("Trip Details:\n")
	if trip.Source != "" {
		fmt.Fprintf(&user, "Source: %s\n", trip.Source)
	}
	fmt.Fprintf(&user, "Destination: %s\n", trip.Destination)
	fmt.Fprintf(&user, "Total days: %d\n", trip.Days)
	fmt.Fprintf(&user, "Budget: INR %.0f\n", trip.Budget)

	if trip.Transport != nil {
		fmt.Fprintf(&user, "Distance: Approx %d km\n", trip.DistanceKm)
		fmt.Fprintf(&user, "\nExpected weather in %s:\n%s\n", trip.Destination, trip.Weather)
		fmt.Fprintf(&user, "\nTransport options:\n%s", FormatTransportOptions(trip.Transport))

		fmt.Fprintf(&user, `
Output format:
1. Distance
2. Transport options
3. Best transport with justification
4. Weather (once only)
5. Day-wise itinerary, Day 1 to Day %d, each with Morning, Afternoon, Evening, Food and Approximate cost
6. Emergency numbers
7. Do's and Don'ts`, trip.Days)
	} else {
		fmt.Fprintf(&user, `
Output format:
1. Day-wise itinerary, Day 1 to Day %d, each with Morning, Afternoon, Evening, Food and Approximate cost
2. Budget breakdown
3. Emergency numbers
4. Do's and Don'ts`, trip.Days)
	}

	return llm.Complete(ctx, []ChatMessage{
		{Role: RoleSystem, Content: itinerarySystemPrompt(trip.Days)},
		{Role: RoleUser, Content: user.String()},
	}, ItineraryProfile)
}
