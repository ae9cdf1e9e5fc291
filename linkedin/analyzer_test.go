package linkedin

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/careerfuture/backend/models"
)

func newTestAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	a, err := NewAnalyzer(zap.NewNop())
	require.NoError(t, err)
	return a
}

func TestExtractProfileID(t *testing.T) {
	tests := []struct {
		url    string
		wantID string
		wantOK bool
	}{
		{"https://www.linkedin.com/in/chase-thompson012/", "chase-thompson012", true},
		{"https://www.linkedin.com/in/john-doe-tech", "john-doe-tech", true},
		{"https://linkedin.com/in/sarah-marketing/details/skills/", "sarah-marketing", true},
		{"https://www.linkedin.com/in/someone?trk=public_profile", "someone", true},
		{"linkedin.com/in/no-scheme", "no-scheme", true},
		{"  https://www.linkedin.com/in/padded  ", "padded", true},
		{"https://www.linkedin.com/in/abc%zz", "abc%zz", true},
		{"www.linkedin.com:443/in/john-doe-tech", "john-doe-tech", true},
		{"https://www.linkedin.com/in/jane%20doe/", "jane%20doe", true},
		{"linkedin.com:443/in/someone#about", "someone", true},
		{"https://www.linkedin.com/company/techcorp/", "", false},
		{"https://www.linkedin.com/in/", "", false},
		{"https://www.linkedin.com/in//", "", false},
		{"", "", false},
		{"://bad url", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			id, ok := ExtractProfileID(tt.url)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestAnalyzeKnownProfile(t *testing.T) {
	a := newTestAnalyzer(t)
	url := "https://www.linkedin.com/in/chase-thompson012/"

	profile, err := a.AnalyzeProfile(url)
	require.NoError(t, err)

	assert.Equal(t, &models.ProfileRecord{
		Name:              "Chase Thompson",
		Title:             "Mechanical Engineering Student | Passionate about Automotive Design and Innovation",
		Company:           "Weber State University",
		Location:          "Ogden, Utah, United States",
		Skills:            []string{"SOLIDWORKS", "MATLAB", "Data Analysis", "Leadership", "Spot Welding"},
		ExperienceLevel:   "Entry Level",
		Education:         "Bachelor of Science - BS, Mechanical Engineering",
		Interests:         []string{"Engineering", "Technology", "Leadership"},
		CareerGoal:        "advancement",
		PreferredLocation: "On-site",
		YearsExperience:   "1-3 years",
		Industry:          "Manufacturing",
		Summary:           "Seeking a long-term career with opportunities for growth and advancement in the aerospace and manufacturing industries.",
		ProfileID:         "chase-thompson012",
		LinkedInURL:       url,
	}, profile)
}

func TestAnalyzeUnknownProfile(t *testing.T) {
	a := newTestAnalyzer(t)

	profile, err := a.AnalyzeProfile("https://www.linkedin.com/in/nobody-here")
	require.NoError(t, err)
	assert.Equal(t, "LinkedIn User", profile.Name)
	assert.Equal(t, "Professional", profile.Title)
	assert.Equal(t, "Technology", profile.Industry)
	assert.Equal(t, "Bachelor's Degree", profile.Education)
	assert.Equal(t, "nobody-here", profile.ProfileID)
}

func TestAnalyzeLenientURLs(t *testing.T) {
	a := newTestAnalyzer(t)

	profile, err := a.AnalyzeProfile("https://www.linkedin.com/in/abc%zz")
	require.NoError(t, err)
	assert.Equal(t, "LinkedIn User", profile.Name)
	assert.Equal(t, "abc%zz", profile.ProfileID)

	profile, err = a.AnalyzeProfile("www.linkedin.com:443/in/john-doe-tech")
	require.NoError(t, err)
	assert.Equal(t, "John Doe", profile.Name)
	assert.Equal(t, "john-doe-tech", profile.ProfileID)
}

func TestAnalyzeInvalidURL(t *testing.T) {
	a := newTestAnalyzer(t)

	profile, err := a.AnalyzeProfile("https://example.com/profile")
	assert.Nil(t, profile)
	assert.True(t, errors.Is(err, ErrInvalidProfileURL))
}

func TestLookupReturnsCopies(t *testing.T) {
	a := newTestAnalyzer(t)

	first := a.Lookup("john-doe-tech")
	first.Skills[0] = "COBOL"
	first.Name = "Someone Else"

	second := a.Lookup("john-doe-tech")
	assert.Equal(t, "JavaScript", second.Skills[0])
	assert.Equal(t, "John Doe", second.Name)
	assert.Equal(t, "https://www.linkedin.com/in/john-doe-tech/", second.LinkedInURL)
}

func TestPreferencesFromProfile(t *testing.T) {
	a := newTestAnalyzer(t)
	profile := a.Lookup("sarah-marketing")

	prefs := PreferencesFromProfile(profile)
	assert.Equal(t, []string{"Marketing", "Leadership"}, prefs.Interests)
	assert.Equal(t, "Mid-Level", prefs.CareerLevel)
	assert.Equal(t, "skill", prefs.Goal)
	assert.Equal(t, "Marketing", prefs.Industry)
	assert.Equal(t, "Hybrid", prefs.Location)
	assert.Equal(t, "3-5 years", prefs.Experience)
	assert.True(t, prefs.LinkedInConnected)
	assert.Same(t, profile, prefs.ProfileData)

	t.Run("empty fields fall back", func(t *testing.T) {
		prefs := PreferencesFromProfile(&models.ProfileRecord{Name: "Blank"})
		assert.Equal(t, models.DefaultInterests(), prefs.Interests)
		assert.Equal(t, models.DefaultCareerLevel, prefs.CareerLevel)
		assert.Equal(t, "Technology", prefs.Industry)
		assert.Equal(t, models.DefaultExperience, prefs.Experience)
	})
}

func TestSuggestions(t *testing.T) {
	a := newTestAnalyzer(t)

	t.Run("entry level", func(t *testing.T) {
		s := Suggestions(a.Lookup("chase-thompson012"))
		assert.Equal(t, "Welcome, Chase Thompson! I've analyzed your LinkedIn profile and personalized your experience.", s.WelcomeMessage)
		assert.Equal(t, "Based on your profile, you're a Entry Level professional in Manufacturing with expertise in SOLIDWORKS, MATLAB, Data Analysis.", s.ProfileSummary)
		assert.Equal(t, "How can I advance from my current role?", s.RecommendedQuestions[0])
		assert.Equal(t, []string{"Project Management", "Strategic Thinking", "Leadership"}, s.SkillGaps)
		assert.Equal(t, "Focus on skill development and gaining experience in Manufacturing", s.CareerPath)
	})

	t.Run("mid level", func(t *testing.T) {
		s := Suggestions(a.Lookup("sarah-marketing"))
		assert.Equal(t, "What skills do I need for senior positions?", s.RecommendedQuestions[0])
		assert.Equal(t, "Develop leadership skills and specialize in Marketing", s.CareerPath)
	})

	t.Run("senior", func(t *testing.T) {
		s := Suggestions(a.Lookup("john-doe-tech"))
		assert.Equal(t, "Show me senior leadership opportunities", s.RecommendedQuestions[2])
		assert.Equal(t, []string{"Board Communication", "Strategic Vision", "Change Management"}, s.SkillGaps)
		assert.Equal(t, "Build executive presence and strategic thinking in Technology", s.CareerPath)
	})

	t.Run("unrecognised level", func(t *testing.T) {
		s := Suggestions(&models.ProfileRecord{ExperienceLevel: "Principal"})
		assert.Equal(t, "Welcome, User! I've analyzed your LinkedIn profile and personalized your experience.", s.WelcomeMessage)
		assert.Equal(t, []string{"Leadership", "Strategic Thinking"}, s.SkillGaps)
		assert.Equal(t, "Focus on continuous learning and skill development", s.CareerPath)
		assert.Equal(t, "How can I advance to director level?", s.RecommendedQuestions[1])
	})
}
