package services

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// ChatMessage is one turn of a conversation, in model wire order.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// CallProfile carries the sampling parameters tuned per task.
type CallProfile struct {
	MaxTokens   int
	Temperature float32
}

// One profile per call site: extraction wants near-deterministic short
// output, itinerary generation wants room and consistency, open chat sits
// in between.
var (
	ExtractionProfile = CallProfile{MaxTokens: 200, Temperature: 0.1}
	ItineraryProfile  = CallProfile{MaxTokens: 1400, Temperature: 0.3}
	OpenChatProfile   = CallProfile{MaxTokens: 600, Temperature: 0.4}
)

// ChatCompleter is the model endpoint as seen by the extractor, the planner
// and the orchestrator. Tests substitute a stub.
type ChatCompleter interface {
	Complete(ctx context.Context, messages []ChatMessage, profile CallProfile) (string, error)
}

// ─── AI Client ────────────────────────────────────────────────────────────────

type AIClient struct {
	client *openai.Client
	model  string
}

var aiClient *AIClient

const llmTimeout = 60 * time.Second

func InitAI() {
	apiKey := os.Getenv("LLM_API_KEY")
	model := os.Getenv("LLM_MODEL")
	if model == "" {
		model = "HuggingFaceH4/zephyr-7b-beta"
	}

	config := openai.DefaultConfig(apiKey)
	if baseURL := os.Getenv("LLM_BASE_URL"); baseURL != "" {
		config.BaseURL = baseURL
	}

	aiClient = &AIClient{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}

	if apiKey != "" {
		log.Println("✅ AI initialized with model:", model)
	} else {
		log.Println("⚠️  LLM_API_KEY not set — itinerary generation will fail with a fixed error")
	}
}

func GetAIClient() *AIClient {
	return aiClient
}

func (c *AIClient) Complete(ctx context.Context, messages []ChatMessage, profile CallProfile) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, llmTimeout)
	defer cancel()

	wireMessages := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		wireMessages = append(wireMessages, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    wireMessages,
		MaxTokens:   profile.MaxTokens,
		Temperature: profile.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from model")
	}

	return resp.Choices[0].Message.Content, nil
}
