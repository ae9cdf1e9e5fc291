package models

// ProfileRecord is a LinkedIn profile as known to the analyzer.
// @Description LinkedIn profile data
type ProfileRecord struct {
	Name              string   `json:"name" yaml:"name" example:"Chase Thompson"`
	Title             string   `json:"title" yaml:"title"`
	Company           string   `json:"company" yaml:"company"`
	Location          string   `json:"location" yaml:"location"`
	Skills            []string `json:"skills" yaml:"skills"`
	ExperienceLevel   string   `json:"experience_level" yaml:"experience_level" example:"Entry Level"`
	Education         string   `json:"education" yaml:"education"`
	Interests         []string `json:"interests" yaml:"interests"`
	CareerGoal        string   `json:"career_goal" yaml:"career_goal" example:"advancement"`
	PreferredLocation string   `json:"preferred_location" yaml:"preferred_location"`
	YearsExperience   string   `json:"years_experience" yaml:"years_experience"`
	Industry          string   `json:"industry" yaml:"industry" example:"Manufacturing"`
	Summary           string   `json:"summary" yaml:"summary"`
	ProfileID         string   `json:"profile_id,omitempty" yaml:"profile_id,omitempty" example:"chase-thompson012"`
	LinkedInURL       string   `json:"linkedin_url,omitempty" yaml:"linkedin_url,omitempty"`
}

// Clone returns a deep copy so callers can never mutate shared fixtures.
func (p ProfileRecord) Clone() *ProfileRecord {
	out := p
	out.Skills = cloneStrings(p.Skills)
	out.Interests = cloneStrings(p.Interests)
	return &out
}

// cloneStrings copies s, keeping nil as an empty list so JSON clients always
// receive an array.
func cloneStrings(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}

// TopSkills returns at most n skills.
func (p ProfileRecord) TopSkills(n int) []string {
	if len(p.Skills) < n {
		return p.Skills
	}
	return p.Skills[:n]
}

// ProfileSuggestions is the onboarding guidance shown after a profile connects.
// @Description Personalized suggestions derived from a LinkedIn profile
type ProfileSuggestions struct {
	WelcomeMessage       string   `json:"welcome_message" yaml:"welcome_message"`
	ProfileSummary       string   `json:"profile_summary" yaml:"profile_summary"`
	RecommendedQuestions []string `json:"recommended_questions" yaml:"recommended_questions"`
	SkillGaps            []string `json:"skill_gaps" yaml:"skill_gaps"`
	CareerPath           string   `json:"career_path" yaml:"career_path"`
}
