// Package linkedin resolves LinkedIn profile URLs against a fixed table of
// demo profiles and derives chat preferences and onboarding suggestions from
// the result.
package linkedin

import (
	_ "embed"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/careerfuture/backend/models"
)

//go:embed profiles.yaml
var profilesYAML []byte

// ErrInvalidProfileURL is returned when no profile id can be read from a URL.
var ErrInvalidProfileURL = errors.New("could not extract profile ID from LinkedIn URL")

type fixtureFile struct {
	Profiles map[string]models.ProfileRecord `yaml:"profiles"`
	Default  models.ProfileRecord            `yaml:"default"`
}

// Analyzer looks profiles up in the embedded fixture table. The table is
// read-only after construction; every lookup hands out a copy.
type Analyzer struct {
	profiles map[string]models.ProfileRecord
	fallback models.ProfileRecord
	logger   *zap.Logger
}

// NewAnalyzer loads the embedded profile table.
func NewAnalyzer(logger *zap.Logger) (*Analyzer, error) {
	var fixtures fixtureFile
	if err := yaml.Unmarshal(profilesYAML, &fixtures); err != nil {
		return nil, fmt.Errorf("failed to parse profile fixtures: %w", err)
	}
	if len(fixtures.Profiles) == 0 {
		return nil, errors.New("profile fixtures are empty")
	}

	return &Analyzer{
		profiles: fixtures.Profiles,
		fallback: fixtures.Default,
		logger:   logger.With(zap.String("component", "linkedin")),
	}, nil
}

// ExtractProfileID returns the path segment following "in" in a profile URL,
// e.g. "chase-thompson012" for https://www.linkedin.com/in/chase-thompson012/.
// The id is returned as written, without unescaping.
func ExtractProfileID(rawURL string) (string, bool) {
	parts := strings.Split(strings.Trim(profilePath(strings.TrimSpace(rawURL)), "/"), "/")
	for i, part := range parts {
		if part != "in" || i+1 >= len(parts) {
			continue
		}
		id, _, _ := strings.Cut(parts[i+1], "?")
		if id == "" {
			return "", false
		}
		return id, true
	}
	return "", false
}

// profilePath is the path of rawURL. Input url.Parse rejects, such as a bad
// percent escape or a host:port without a scheme, is split by hand.
func profilePath(rawURL string) string {
	if parsed, err := url.Parse(rawURL); err == nil && parsed.Path != "" {
		return parsed.EscapedPath()
	}
	if _, rest, ok := strings.Cut(rawURL, "://"); ok {
		rawURL = rest
	}
	if i := strings.IndexAny(rawURL, "?#"); i >= 0 {
		rawURL = rawURL[:i]
	}
	return rawURL
}

// ProfileURL is the canonical public URL of a profile id.
func ProfileURL(profileID string) string {
	return "https://www.linkedin.com/in/" + profileID + "/"
}

// AnalyzeProfile resolves a profile URL. Unknown ids yield the placeholder
// profile; only a URL without a profile id is an error.
func (a *Analyzer) AnalyzeProfile(rawURL string) (*models.ProfileRecord, error) {
	id, ok := ExtractProfileID(rawURL)
	if !ok {
		a.logger.Warn("could not extract profile id", zap.String("url", rawURL))
		return nil, ErrInvalidProfileURL
	}

	profile := a.Lookup(id)
	profile.LinkedInURL = rawURL
	return profile, nil
}

// Lookup returns a copy of the profile stored under id, or of the placeholder
// profile when id is unknown.
func (a *Analyzer) Lookup(id string) *models.ProfileRecord {
	fixture, known := a.profiles[id]
	if !known {
		a.logger.Info("using default profile for unknown id", zap.String("profile_id", id))
		fixture = a.fallback
	} else {
		a.logger.Debug("profile analyzed", zap.String("profile_id", id))
	}

	profile := fixture.Clone()
	profile.ProfileID = id
	profile.LinkedInURL = ProfileURL(id)
	return profile
}

// PreferencesFromProfile maps a profile onto chat preferences and marks the
// visitor as LinkedIn-connected.
func PreferencesFromProfile(profile *models.ProfileRecord) models.UserPreferences {
	prefs := models.UserPreferences{
		Interests:         profile.Interests,
		CareerLevel:       orDefault(profile.ExperienceLevel, models.DefaultCareerLevel),
		Goal:              orDefault(profile.CareerGoal, models.DefaultGoal),
		Industry:          orDefault(profile.Industry, "Technology"),
		Location:          orDefault(profile.PreferredLocation, models.DefaultLocation),
		Experience:        orDefault(profile.YearsExperience, models.DefaultExperience),
		LinkedInConnected: true,
		ProfileData:       profile,
	}
	if len(prefs.Interests) == 0 {
		prefs.Interests = models.DefaultInterests()
	}
	return prefs
}

// Suggestions builds the welcome text, questions and gaps shown after connecting.
func Suggestions(profile *models.ProfileRecord) models.ProfileSuggestions {
	name := orDefault(profile.Name, "User")
	level := orDefault(profile.ExperienceLevel, models.DefaultCareerLevel)
	industry := orDefault(profile.Industry, "Technology")

	return models.ProfileSuggestions{
		WelcomeMessage: fmt.Sprintf("Welcome, %s! I've analyzed your LinkedIn profile and personalized your experience.", name),
		ProfileSummary: fmt.Sprintf("Based on your profile, you're a %s professional in %s with expertise in %s.",
			level, industry, strings.Join(profile.TopSkills(3), ", ")),
		RecommendedQuestions: recommendedQuestions(level),
		SkillGaps:            skillGaps(level),
		CareerPath:           careerPath(level, industry),
	}
}

func recommendedQuestions(level string) []string {
	switch level {
	case "Entry Level":
		return []string{
			"How can I advance from my current role?",
			"What skills should I develop for career growth?",
			"Show me entry-level opportunities in my field",
		}
	case "Mid-Level":
		return []string{
			"What skills do I need for senior positions?",
			"How can I transition to leadership roles?",
			"Show me mid-level opportunities in my industry",
		}
	default:
		return []string{
			"What skills do I need for executive positions?",
			"How can I advance to director level?",
			"Show me senior leadership opportunities",
		}
	}
}

func skillGaps(level string) []string {
	switch level {
	case "Entry Level":
		return []string{"Project Management", "Strategic Thinking", "Leadership"}
	case "Mid-Level":
		return []string{"Executive Communication", "Strategic Planning", "Team Leadership"}
	case "Senior":
		return []string{"Board Communication", "Strategic Vision", "Change Management"}
	default:
		return []string{"Leadership", "Strategic Thinking"}
	}
}

func careerPath(level, industry string) string {
	switch level {
	case "Entry Level":
		return "Focus on skill development and gaining experience in " + industry
	case "Mid-Level":
		return "Develop leadership skills and specialize in " + industry
	case "Senior":
		return "Build executive presence and strategic thinking in " + industry
	default:
		return "Focus on continuous learning and skill development"
	}
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
