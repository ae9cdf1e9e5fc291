package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/genai"

	"github.com/careerfuture/backend/config"
)

// StudioModel generates text through the Gemini Developer API using an API key.
type StudioModel struct {
	client    *genai.Client
	modelName string
	genConfig *genai.GenerateContentConfig
}

// NewStudioModel creates a Gemini Developer API text model. httpClient
// carries the outbound timeout.
func NewStudioModel(ctx context.Context, cfg *config.Config, httpClient *http.Client) (*StudioModel, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     cfg.GeminiAPIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &StudioModel{
		client:    client,
		modelName: cfg.GeminiModel,
		genConfig: &genai.GenerateContentConfig{
			Temperature: genai.Ptr[float32](chatTemperature),
		},
	}, nil
}

// Close is a no-op; the client holds no resources beyond its HTTP client.
func (m *StudioModel) Close() error {
	return nil
}

// Name returns the backend and model in use.
func (m *StudioModel) Name() string {
	return config.BackendGeminiAPI + "/" + m.modelName
}

// GenerateText sends prompt to the model and returns the response text.
func (m *StudioModel) GenerateText(ctx context.Context, prompt string) (string, error) {
	result, err := m.client.Models.GenerateContent(ctx, m.modelName, genai.Text(prompt), m.genConfig)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text := result.Text()
	if text == "" {
		return "", errors.New("no response from Gemini")
	}
	return text, nil
}
