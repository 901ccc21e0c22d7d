// Package ai generates mnemonic explanations for vocabulary words through
// the OpenAI API.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/example/grevocab/pkg/models"
)

// ChatGPT represents a client for the OpenAI ChatGPT API
type ChatGPT struct {
	apiKey      string
	apiURL      string
	maxTokens   int
	temperature float64
	client      *http.Client
}

// New creates a new ChatGPT client
func New(apiKey string) (*ChatGPT, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable is not set")
	}

	return &ChatGPT{
		apiKey:      apiKey,
		apiURL:      "https://api.openai.com/v1/chat/completions",
		maxTokens:   200,
		temperature: 0.7,
		client:      &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// Message represents a message in the ChatGPT conversation
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest represents a request to the ChatGPT API
type ChatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
}

// ChatResponse represents a response from the ChatGPT API
type ChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// ExplainWord generates a short mnemonic explanation with an example
// sentence for the given word
func (c *ChatGPT) ExplainWord(ctx context.Context, word *models.Word) (string, error) {
	prompt := fmt.Sprintf(
		"Explain the GRE vocabulary word '%s' (meaning: %s). Give a short memorable mnemonic and one example sentence. Keep it under 80 words.",
		word.Word, word.Definition,
	)

	messages := []Message{
		{Role: "system", Content: "You are a GRE vocabulary tutor. You create short, memorable explanations that help students retain difficult words."},
		{Role: "user", Content: prompt},
	}

	return c.complete(ctx, messages, c.maxTokens, c.temperature)
}

// ExplainWordWithFallback generates an explanation, falling back to the
// stored definition when the API is unavailable
func (c *ChatGPT) ExplainWordWithFallback(ctx context.Context, word *models.Word) string {
	explanation, err := c.ExplainWord(ctx, word)
	if err != nil {
		if word.Definition != "" {
			return fmt.Sprintf("%s: %s", word.Word, word.Definition)
		}
		return fmt.Sprintf("No explanation is available for '%s' right now.", word.Word)
	}
	return explanation
}

func (c *ChatGPT) complete(ctx context.Context, messages []Message, maxTokens int, temperature float64) (string, error) {
	request := ChatRequest{
		Model:       "gpt-3.5-turbo",
		Messages:    messages,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}

	requestData, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.apiURL, bytes.NewBuffer(requestData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %v", err)
	}
	defer resp.Body.Close()

	var response ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("failed to decode response: %v", err)
	}

	if response.Error != nil {
		return "", fmt.Errorf("API error: %s", response.Error.Message)
	}

	if len(response.Choices) == 0 {
		return "", fmt.Errorf("no response choices returned")
	}

	return strings.TrimSpace(response.Choices[0].Message.Content), nil
}
