package models

// ItemType tags a recommendation card.
type ItemType string

const (
	ItemCourse   ItemType = "COURSE"
	ItemJob      ItemType = "JOB"
	ItemEvent    ItemType = "EVENT"
	ItemWorkshop ItemType = "WORKSHOP"
)

// RecommendationItem is a single recommendation card.
// @Description A course, job, event or workshop recommendation
type RecommendationItem struct {
	Title       string   `json:"title" yaml:"title" example:"Leadership Skills for Tech Professionals"`
	Description string   `json:"description" yaml:"description"`
	Duration    string   `json:"duration,omitempty" yaml:"duration,omitempty" example:"8 weeks"`
	Price       string   `json:"price,omitempty" yaml:"price,omitempty" example:"Free"`
	Format      string   `json:"format,omitempty" yaml:"format,omitempty" example:"Online"`
	Location    string   `json:"location,omitempty" yaml:"location,omitempty"`
	Salary      string   `json:"salary,omitempty" yaml:"salary,omitempty"`
	Company     string   `json:"company,omitempty" yaml:"company,omitempty"`
	Date        string   `json:"date,omitempty" yaml:"date,omitempty"`
	Spots       string   `json:"spots,omitempty" yaml:"spots,omitempty"`
	Link        string   `json:"link,omitempty" yaml:"link,omitempty"`
	Type        ItemType `json:"type" yaml:"type" example:"COURSE"`
}

// RecommendationSet groups recommendations by kind. Lists are never nil so
// they encode as [] rather than null.
// @Description Recommendations grouped by kind
type RecommendationSet struct {
	Courses   []RecommendationItem `json:"courses" yaml:"courses"`
	Jobs      []RecommendationItem `json:"jobs" yaml:"jobs"`
	Events    []RecommendationItem `json:"events" yaml:"events"`
	Workshops []RecommendationItem `json:"workshops" yaml:"workshops"`
}

// NewRecommendationSet returns a set with empty, non-nil lists.
func NewRecommendationSet() RecommendationSet {
	return RecommendationSet{
		Courses:   []RecommendationItem{},
		Jobs:      []RecommendationItem{},
		Events:    []RecommendationItem{},
		Workshops: []RecommendationItem{},
	}
}
