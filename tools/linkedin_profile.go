package tools

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/careerfuture/backend/linkedin"
	"github.com/careerfuture/backend/models"
)

// LinkedInProfileTool resolves a LinkedIn profile URL
type LinkedInProfileTool struct {
	analyzer *linkedin.Analyzer
}

// NewLinkedInProfileTool creates a new LinkedIn profile tool
func NewLinkedInProfileTool(analyzer *linkedin.Analyzer) *LinkedInProfileTool {
	return &LinkedInProfileTool{analyzer: analyzer}
}

func (t *LinkedInProfileTool) Name() string {
	return "analyze_linkedin_profile"
}

func (t *LinkedInProfileTool) Description() string {
	return `Analyze a LinkedIn profile from its public URL.
Returns the profile, the chat preferences derived from it and onboarding suggestions.`
}

func (t *LinkedInProfileTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"linkedin_url": map[string]interface{}{
				"type":        "string",
				"description": "Profile URL, e.g. https://www.linkedin.com/in/chase-thompson012/",
			},
		},
		"required": []string{"linkedin_url"},
	}
}

// LinkedInProfileInput is the input of analyze_linkedin_profile
type LinkedInProfileInput struct {
	LinkedInURL string `json:"linkedin_url"`
}

// LinkedInProfileOutput is the output of analyze_linkedin_profile
type LinkedInProfileOutput struct {
	Profile     *models.ProfileRecord     `json:"profile"`
	Preferences models.UserPreferences    `json:"preferences"`
	Suggestions models.ProfileSuggestions `json:"suggestions"`
}

func (t *LinkedInProfileTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var in LinkedInProfileInput
	if err := decodeInput(input, &in); err != nil {
		return NewErrorResult(err.Error())
	}
	if strings.TrimSpace(in.LinkedInURL) == "" {
		return NewErrorResult("linkedin_url is required")
	}

	profile, err := t.analyzer.AnalyzeProfile(in.LinkedInURL)
	if err != nil {
		return NewErrorResult(err.Error())
	}

	return NewSuccessResult(LinkedInProfileOutput{
		Profile:     profile,
		Preferences: linkedin.PreferencesFromProfile(profile),
		Suggestions: linkedin.Suggestions(profile),
	})
}
