package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cloud.google.com/go/vertexai/genai"
	"google.golang.org/api/option"

	"github.com/careerfuture/backend/config"
	"github.com/careerfuture/backend/utils"
)

// VertexModel generates text through Vertex AI.
type VertexModel struct {
	client    *genai.Client
	model     *genai.GenerativeModel
	modelName string
}

func vertexOptions() []option.ClientOption {
	return []option.ClientOption{option.WithUserAgent(utils.UserAgent)}
}

// NewVertexModel creates a Vertex AI backed text model
func NewVertexModel(ctx context.Context, cfg *config.Config) (*VertexModel, error) {
	client, err := genai.NewClient(ctx, cfg.ProjectID, cfg.Location, vertexOptions()...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Vertex AI client: %w", err)
	}

	model := client.GenerativeModel(cfg.GeminiModel)
	model.SetTemperature(chatTemperature)
	model.SetTopP(0.9)
	model.SetMaxOutputTokens(2048)

	return &VertexModel{
		client:    client,
		model:     model,
		modelName: cfg.GeminiModel,
	}, nil
}

// Close closes the Vertex AI client
func (m *VertexModel) Close() error {
	return m.client.Close()
}

// Name returns the backend and model in use.
func (m *VertexModel) Name() string {
	return config.BackendVertexAI + "/" + m.modelName
}

// GenerateText sends prompt to the model and returns the text parts of the
// first candidate.
func (m *VertexModel) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := m.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text := extractText(resp)
	if text == "" {
		return "", errors.New("no response from Gemini")
	}
	return text, nil
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String()
}
