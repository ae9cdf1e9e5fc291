package models

import "encoding/json"

// Default preference values. A visitor that has not touched any filter
// carries exactly these.
const (
	DefaultCareerLevel = "Entry Level"
	DefaultGoal        = "advancement"
	DefaultIndustry    = "All Industries"
	DefaultLocation    = "Remote"
	DefaultExperience  = "3-5 years"
)

// DefaultInterests returns a fresh copy of the default interest set.
func DefaultInterests() []string {
	return []string{"Technology", "Leadership"}
}

// UserPreferences is the per-request view of the visitor's filters.
// @Description Career preferences sent with a chat message
type UserPreferences struct {
	Interests         []string       `json:"interests" yaml:"interests" example:"Technology,Leadership"`
	CareerLevel       string         `json:"career_level" yaml:"career_level" example:"Entry Level"`
	Goal              string         `json:"goal" yaml:"goal" example:"advancement"`
	Industry          string         `json:"industry" yaml:"industry" example:"All Industries"`
	Location          string         `json:"location" yaml:"location" example:"Remote"`
	Experience        string         `json:"experience" yaml:"experience" example:"3-5 years"`
	LinkedInConnected bool           `json:"linkedin_connected" yaml:"linkedin_connected"`
	ProfileData       *ProfileRecord `json:"profile_data,omitempty" yaml:"profile_data,omitempty"`
}

// DefaultPreferences returns the preferences of a visitor with untouched filters.
func DefaultPreferences() UserPreferences {
	return UserPreferences{
		Interests:   DefaultInterests(),
		CareerLevel: DefaultCareerLevel,
		Goal:        DefaultGoal,
		Industry:    DefaultIndustry,
		Location:    DefaultLocation,
		Experience:  DefaultExperience,
	}
}

// preferencesWire accepts both the snake_case keys and the camelCase keys the
// browser client sends. Pointers distinguish "absent" from "empty".
type preferencesWire struct {
	Interests              *[]string      `json:"interests"`
	CareerLevel            *string        `json:"career_level"`
	CareerLevelCamel       *string        `json:"careerLevel"`
	Goal                   *string        `json:"goal"`
	Industry               *string        `json:"industry"`
	Location               *string        `json:"location"`
	Experience             *string        `json:"experience"`
	LinkedInConnected      *bool          `json:"linkedin_connected"`
	LinkedInConnectedCamel *bool          `json:"linkedinConnected"`
	ProfileData            *ProfileRecord `json:"profile_data"`
	ProfileDataCamel       *ProfileRecord `json:"profileData"`
}

// UnmarshalJSON decodes on top of the defaults: keys that are absent or null
// keep their default value.
func (p *UserPreferences) UnmarshalJSON(data []byte) error {
	var w preferencesWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	out := DefaultPreferences()
	if w.Interests != nil {
		out.Interests = *w.Interests
	}
	if v := firstString(w.CareerLevel, w.CareerLevelCamel); v != nil {
		out.CareerLevel = *v
	}
	if w.Goal != nil {
		out.Goal = *w.Goal
	}
	if w.Industry != nil {
		out.Industry = *w.Industry
	}
	if w.Location != nil {
		out.Location = *w.Location
	}
	if w.Experience != nil {
		out.Experience = *w.Experience
	}
	switch {
	case w.LinkedInConnected != nil:
		out.LinkedInConnected = *w.LinkedInConnected
	case w.LinkedInConnectedCamel != nil:
		out.LinkedInConnected = *w.LinkedInConnectedCamel
	}
	out.ProfileData = w.ProfileData
	if out.ProfileData == nil {
		out.ProfileData = w.ProfileDataCamel
	}

	*p = out
	return nil
}

func firstString(values ...*string) *string {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}

// IsDefault reports whether all six filter values equal the defaults.
// Interests compare as a set.
func (p UserPreferences) IsDefault() bool {
	return sameSet(p.Interests, DefaultInterests()) &&
		p.CareerLevel == DefaultCareerLevel &&
		p.Goal == DefaultGoal &&
		p.Industry == DefaultIndustry &&
		p.Location == DefaultLocation &&
		p.Experience == DefaultExperience
}

// HasProfile reports whether a connected LinkedIn profile is attached.
func (p UserPreferences) HasProfile() bool {
	return p.LinkedInConnected && p.ProfileData != nil
}

func sameSet(a, b []string) bool {
	set := make(map[string]struct{}, len(a))
	for _, v := range a {
		set[v] = struct{}{}
	}
	other := make(map[string]struct{}, len(b))
	for _, v := range b {
		if _, ok := set[v]; !ok {
			return false
		}
		other[v] = struct{}{}
	}
	return len(set) == len(other)
}
