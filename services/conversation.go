package services

import (
	"context"
	"fmt"
	"strings"
)

// ─── Conversation State ───────────────────────────────────────────────────────

type ConversationPhase int

const (
	// GatheringDetails: slot-filling until destination, days and budget are
	// all known, then generate.
	GatheringDetails ConversationPhase = iota
	// AwaitingContinue: an itinerary was just delivered; waiting for a
	// yes/no on planning another trip.
	AwaitingContinue
)

// ConversationState is everything one chat session carries between turns.
// Owned by the session store and passed by reference into Step; nothing else
// mutates it.
type ConversationState struct {
	Phase    ConversationPhase
	Trip     TripDetails
	Messages []ChatMessage
}

// ─── Fixed replies ────────────────────────────────────────────────────────────

const (
	refusalReply = "Sorry! Main sirf travel + weather + places related questions answer karta hoon."

	chatSystemPrompt = "You are TripGenix. Answer ONLY travel, hotels, food, places queries."

	askDestination = "Where would you like to go?"
	askDays        = "How many days is the trip?"
	askBudget      = "What is your budget (INR)?"

	continuePrompt = "Would you like to plan another trip? (yes/no)"
	goodbyeReply   = "Alright, happy travels!"
	yesNoReprompt  = "Please reply yes or no - would you like to plan another trip?"
	nextTripReply  = "Great! " + askDestination
)

var (
	affirmativeTokens = map[string]bool{"yes": true, "haan": true, "y": true}
	negativeTokens    = map[string]bool{"no": true, "nah": true, "n": true}
)

// ─── Orchestrator ─────────────────────────────────────────────────────────────

type Orchestrator struct {
	llm ChatCompleter
}

func NewOrchestrator(llm ChatCompleter) *Orchestrator {
	return &Orchestrator{llm: llm}
}

// Step advances one conversation by a single user message and returns the
// assistant reply. The state is mutated in place; both turns are appended to
// the transcript. Only a model failure during itinerary generation surfaces
// as an error.
func (o *Orchestrator) Step(ctx context.Context, state *ConversationState, input string) (string, error) {
	state.Messages = append(state.Messages, ChatMessage{Role: RoleUser, Content: input})

	var reply string
	var err error

	switch state.Phase {
	case AwaitingContinue:
		reply = o.stepAwaitingContinue(state, input)
	default:
		reply, err = o.stepGathering(ctx, state, input)
	}
	if err != nil {
		return "", err
	}

	state.Messages = append(state.Messages, ChatMessage{Role: RoleAssistant, Content: reply})
	return reply, nil
}

func (o *Orchestrator) stepGathering(ctx context.Context, state *ConversationState, input string) (string, error) {
	if !IsAllowedQuery(input) {
		return refusalReply, nil
	}

	extracted := ExtractTripDetails(ctx, o.llm, input)
	advanced := mergeTripDetails(&state.Trip, extracted)

	// First missing field, fixed priority order.
	var next string
	switch {
	case state.Trip.Destination == nil:
		next = askDestination
	case state.Trip.Days == nil:
		next = askDays
	case state.Trip.Budget == nil:
		next = askBudget
	}

	if next == "" {
		itinerary, err := GenerateItinerary(ctx, o.llm, TripContext{
			Destination: *state.Trip.Destination,
			Days:        *state.Trip.Days,
			Budget:      *state.Trip.Budget,
		})
		if err != nil {
			return "", fmt.Errorf("itinerary generation failed: %w", err)
		}

		state.Phase = AwaitingContinue
		return itinerary + "\n\n" + continuePrompt, nil
	}

	if advanced {
		return next, nil
	}

	// In-domain input that filled no slot is a free-form question: answer it
	// through the persona over the transcript, then keep gathering. A model
	// failure here degrades to just asking again.
	answer, err := o.openChat(ctx, state)
	if err != nil {
		return next, nil
	}
	return answer + "\n\n" + next, nil
}

func (o *Orchestrator) openChat(ctx context.Context, state *ConversationState) (string, error) {
	messages := make([]ChatMessage, 0, len(state.Messages)+1)
	messages = append(messages, ChatMessage{Role: RoleSystem, Content: chatSystemPrompt})
	messages = append(messages, state.Messages...)

	return o.llm.Complete(ctx, messages, OpenChatProfile)
}

func (o *Orchestrator) stepAwaitingContinue(state *ConversationState, input string) string {
	token := strings.ToLower(strings.TrimSpace(input))

	switch {
	case affirmativeTokens[token]:
		state.Trip = TripDetails{}
		state.Phase = GatheringDetails
		return nextTripReply
	case negativeTokens[token]:
		return goodbyeReply
	default:
		return yesNoReprompt
	}
}

// mergeTripDetails fills in newly-known fields and reports whether any slot
// advanced. A nil extraction never clears a field the user already gave.
func mergeTripDetails(trip *TripDetails, extracted TripDetails) bool {
	advanced := false
	if trip.Destination == nil && extracted.Destination != nil {
		trip.Destination = extracted.Destination
		advanced = true
	}
	if trip.Days == nil && extracted.Days != nil {
		trip.Days = extracted.Days
		advanced = true
	}
	if trip.Budget == nil && extracted.Budget != nil {
		trip.Budget = extracted.Budget
		advanced = true
	}
	return advanced
}
