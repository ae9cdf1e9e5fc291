// Package recommendations builds the "Recommended for You" card lists from
// an embedded catalog.
package recommendations

import (
	_ "embed"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/careerfuture/backend/models"
)

//go:embed catalog.yaml
var catalogYAML []byte

type catalog struct {
	Courses        map[string]models.RecommendationItem `yaml:"courses"`
	TechnologyJobs []models.RecommendationItem          `yaml:"technology_jobs"`
	Events         []models.RecommendationItem          `yaml:"events"`
	Workshops      []models.RecommendationItem          `yaml:"workshops"`
}

// Generator selects catalog entries for a set of filters.
type Generator struct {
	catalog catalog
}

// NewGenerator loads the embedded catalog.
func NewGenerator() (*Generator, error) {
	var c catalog
	if err := yaml.Unmarshal(catalogYAML, &c); err != nil {
		return nil, fmt.Errorf("failed to parse recommendation catalog: %w", err)
	}
	return &Generator{catalog: c}, nil
}

// Generate returns one course for a known goal, the technology job when
// "Technology" is among interests, and the standing event and workshop.
// careerLevel does not change the selection.
func (g *Generator) Generate(careerLevel string, interests []string, goal string) models.RecommendationSet {
	set := models.NewRecommendationSet()

	if course, ok := g.catalog.Courses[goal]; ok {
		set.Courses = append(set.Courses, course)
	}
	if slices.Contains(interests, "Technology") {
		set.Jobs = append(set.Jobs, g.catalog.TechnologyJobs...)
	}
	set.Events = append(set.Events, g.catalog.Events...)
	set.Workshops = append(set.Workshops, g.catalog.Workshops...)

	return set
}

// ForPreferences is Generate driven by chat preferences.
func (g *Generator) ForPreferences(prefs models.UserPreferences) models.RecommendationSet {
	return g.Generate(prefs.CareerLevel, prefs.Interests, prefs.Goal)
}

// Goals lists the goals that select a course.
func (g *Generator) Goals() []string {
	goals := make([]string, 0, len(g.catalog.Courses))
	for goal := range g.catalog.Courses {
		goals = append(goals, goal)
	}
	slices.Sort(goals)
	return goals
}
