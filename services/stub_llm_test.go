package services

import (
	"context"
	"errors"
)

type llmCall struct {
	messages []ChatMessage
	profile  CallProfile
}

// stubLLM scripts model responses in call order and records every call.
type stubLLM struct {
	responses []string
	err       error
	calls     []llmCall
}

func (s *stubLLM) Complete(_ context.Context, messages []ChatMessage, profile CallProfile) (string, error) {
	s.calls = append(s.calls, llmCall{messages: messages, profile: profile})
	if s.err != nil {
		return "", s.err
	}
	if len(s.calls) > len(s.responses) {
		return "", errors.New("stub: no scripted response left")
	}
	return s.responses[len(s.calls)-1], nil
}
