package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GeminiClient implements domain.LLMClient against the Gemini API using an
// API key credential. Whether a key is configured decides the classifier's
// mode, so construction fails loudly on a missing key instead of guessing.
type GeminiClient struct {
	client    *genai.Client
	modelName string
}

func NewGeminiClient(ctx context.Context, apiKey, modelName string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is empty")
	}
	if modelName == "" {
		modelName = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	return &GeminiClient{client: client, modelName: modelName}, nil
}

// GenerateContent sends one user message under the given system instruction
// and returns the raw text of the reply. Classification wants structure, not
// creativity, hence the low temperature.
func (g *GeminiClient) GenerateContent(ctx context.Context, system, user string) (string, error) {
	temp := float32(0.1)
	outputTokens := int32(1024)

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
		Temperature:       &temp,
		MaxOutputTokens:   outputTokens,
	}

	contents := []*genai.Content{genai.NewContentFromText(user, genai.RoleUser)}

	res, err := g.client.Models.GenerateContent(ctx, g.modelName, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	text := res.Text()
	if text == "" {
		return "", fmt.Errorf("gemini returned empty text")
	}
	return text, nil
}
