package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/careerfuture/backend/models"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("PROJECT_ID", "")
	t.Setenv("CV_BUCKET_NAME", "")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRecommendCommand(t *testing.T) {
	out, err := execute(t, "recommend", "--goal", "skill", "--interest", "Technology")
	require.NoError(t, err)

	var set models.RecommendationSet
	require.NoError(t, yaml.Unmarshal([]byte(out), &set))
	require.Len(t, set.Courses, 1)
	assert.Equal(t, "LinkedIn Learning: Tech Leadership Course Series", set.Courses[0].Title)
	require.Len(t, set.Jobs, 1)
	assert.Equal(t, "TechCorp", set.Jobs[0].Company)
	assert.Len(t, set.Events, 1)
	assert.Len(t, set.Workshops, 1)
}

func TestProfileCommand(t *testing.T) {
	out, err := execute(t, "profile", "https://www.linkedin.com/in/chase-thompson012/")
	require.NoError(t, err)

	var result struct {
		Profile     models.ProfileRecord      `yaml:"profile"`
		Suggestions models.ProfileSuggestions `yaml:"suggestions"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &result))
	assert.Equal(t, "Chase Thompson", result.Profile.Name)
	assert.Equal(t, "chase-thompson012", result.Profile.ProfileID)
	assert.Len(t, result.Suggestions.RecommendedQuestions, 3)
}

func TestProfileCommandRejectsURLWithoutID(t *testing.T) {
	_, err := execute(t, "profile", "https://www.linkedin.com/company/acme")
	assert.Error(t, err)
}

func TestAskCommandUsesPredefinedAnswer(t *testing.T) {
	out, err := execute(t, "ask", "How can I advance from senior developer to tech lead?")
	require.NoError(t, err)
	assert.Contains(t, out, "[predefined]")
}

func TestRecommendCommandFromLinkedInProfile(t *testing.T) {
	t.Cleanup(func() { recommendLinkedIn = "" })

	out, err := execute(t, "recommend", "--linkedin", "https://www.linkedin.com/in/sarah-marketing/")
	require.NoError(t, err)

	var set models.RecommendationSet
	require.NoError(t, yaml.Unmarshal([]byte(out), &set))
	require.Len(t, set.Courses, 1)
	assert.Equal(t, "LinkedIn Learning: Tech Leadership Course Series", set.Courses[0].Title)
	assert.Empty(t, set.Jobs)
}

func TestAskCommandIndustryLeavesDefaults(t *testing.T) {
	t.Cleanup(func() { askIndustry = models.DefaultIndustry })

	out, err := execute(t, "ask", "--industry", "Finance", "How can I advance from senior developer to tech lead?")
	require.NoError(t, err)
	assert.Contains(t, out, "[fallback]")
	assert.NotContains(t, out, "[predefined]")
}
