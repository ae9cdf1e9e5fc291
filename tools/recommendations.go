package tools

import (
	"context"
	"encoding/json"

	"github.com/careerfuture/backend/models"
	"github.com/careerfuture/backend/recommendations"
)

// RecommendationsTool returns recommendation cards
type RecommendationsTool struct {
	generator *recommendations.Generator
}

// NewRecommendationsTool creates a new recommendations tool
func NewRecommendationsTool(generator *recommendations.Generator) *RecommendationsTool {
	return &RecommendationsTool{generator: generator}
}

func (t *RecommendationsTool) Name() string {
	return "get_recommendations"
}

func (t *RecommendationsTool) Description() string {
	return `Get course, job, event and workshop recommendations.
The goal defaults to advancement. The job card is only offered for the Technology interest.`
}

func (t *RecommendationsTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"career_level": map[string]interface{}{
				"type":        "string",
				"description": "Career level, e.g. Senior",
			},
			"interests": map[string]interface{}{
				"type":        "array",
				"items":       map[string]interface{}{"type": "string"},
				"description": "Interest areas, e.g. Technology",
			},
			"goal": map[string]interface{}{
				"type":        "string",
				"enum":        t.generator.Goals(),
				"description": "Career goal",
			},
		},
	}
}

// RecommendationsInput is the input of get_recommendations
type RecommendationsInput struct {
	CareerLevel string   `json:"career_level"`
	Interests   []string `json:"interests"`
	Goal        string   `json:"goal"`
}

func (t *RecommendationsTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var in RecommendationsInput
	if err := decodeInput(input, &in); err != nil {
		return NewErrorResult(err.Error())
	}

	if in.Goal == "" {
		in.Goal = models.DefaultGoal
	}

	return NewSuccessResult(t.generator.Generate(in.CareerLevel, in.Interests, in.Goal))
}
