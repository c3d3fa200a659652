// Package gemini implements the llm.Client interface on the Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// Config holds configuration for the Gemini client
type Config struct {
	// APIKey for the Gemini API
	APIKey string

	// Model to generate with, e.g. "gemini-2.0-flash"
	Model string
}

// Client calls the Gemini generateContent API
type Client struct {
	client *genai.Client
	model  string
}

// ErrEmptyResponse is returned when the API answers without any candidate text
var ErrEmptyResponse = errors.New("gemini returned no candidates")

// New creates a new Gemini client
func New(ctx context.Context, cfg *Config) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.APIKey == "" {
		return nil, errors.New("api key cannot be empty")
	}

	model := cfg.Model
	if model == "" {
		model = "gemini-2.0-flash"
	}

	genClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &Client{
		client: genClient,
		model:  model,
	}, nil
}

// Generate sends the prompt and returns the generated text
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	res, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if len(res.Candidates) == 0 || res.Candidates[0].Content == nil || len(res.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}

	return res.Candidates[0].Content.Parts[0].Text, nil
}
