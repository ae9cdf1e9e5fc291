package recommendations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerfuture/backend/models"
)

func newTestGenerator(t *testing.T) *Generator {
	t.Helper()
	g, err := NewGenerator()
	require.NoError(t, err)
	return g
}

func TestCourseByGoal(t *testing.T) {
	g := newTestGenerator(t)

	tests := []struct {
		goal  string
		title string
	}{
		{"advancement", "Leadership Skills for Tech Professionals"},
		{"skill", "LinkedIn Learning: Tech Leadership Course Series"},
		{"job", "LinkedIn Job Search Mastery Course"},
	}

	seen := map[string]bool{}
	for _, tt := range tests {
		t.Run(tt.goal, func(t *testing.T) {
			set := g.Generate("", nil, tt.goal)
			require.Len(t, set.Courses, 1)
			assert.Equal(t, tt.title, set.Courses[0].Title)
			assert.Equal(t, models.ItemCourse, set.Courses[0].Type)
			assert.False(t, seen[set.Courses[0].Title], "course titles are distinct")
			seen[set.Courses[0].Title] = true
		})
	}

	assert.Equal(t, []string{"advancement", "job", "skill"}, g.Goals())
}

func TestAdvancementCourseDetails(t *testing.T) {
	set := newTestGenerator(t).Generate("Senior", []string{"Technology"}, "advancement")

	course := set.Courses[0]
	assert.Equal(t, "Develop essential leadership skills to advance your career", course.Description)
	assert.Equal(t, "8 weeks", course.Duration)
	assert.Equal(t, "Free", course.Price)
	assert.Equal(t, "Online", course.Format)
}

func TestUnknownGoalHasNoCourse(t *testing.T) {
	set := newTestGenerator(t).Generate("Entry Level", []string{"Technology"}, "networking")
	assert.Empty(t, set.Courses)
	assert.NotNil(t, set.Courses)
}

func TestJobsFollowTechnologyInterest(t *testing.T) {
	g := newTestGenerator(t)

	set := g.Generate("", []string{"Leadership", "Technology"}, "advancement")
	require.Len(t, set.Jobs, 1)
	assert.Equal(t, models.RecommendationItem{
		Title:       "Senior Tech Lead - Remote",
		Description: "Leading development team in innovative tech company",
		Location:    "Remote",
		Salary:      "$120k-150k",
		Company:     "TechCorp",
		Link:        "https://www.linkedin.com/jobs/",
		Type:        models.ItemJob,
	}, set.Jobs[0])

	set = g.Generate("", []string{"Marketing"}, "advancement")
	assert.Empty(t, set.Jobs)
}

func TestEventsAndWorkshopsAlwaysPresent(t *testing.T) {
	g := newTestGenerator(t)

	for _, goal := range []string{"advancement", "skill", "job", ""} {
		set := g.Generate("", nil, goal)
		require.Len(t, set.Events, 1, goal)
		require.Len(t, set.Workshops, 1, goal)

		assert.Equal(t, "Tech Leadership Summit 2024", set.Events[0].Title)
		assert.Equal(t, "Dec 15, 2024", set.Events[0].Date)
		assert.Equal(t, "Helsinki", set.Events[0].Location)
		assert.Equal(t, "$299", set.Events[0].Price)

		assert.Equal(t, "Strategic Thinking Workshop", set.Workshops[0].Title)
		assert.Equal(t, "15 spots left", set.Workshops[0].Spots)
		assert.Equal(t, models.ItemWorkshop, set.Workshops[0].Type)
	}
}

func TestGenerateDoesNotShareBackingArrays(t *testing.T) {
	g := newTestGenerator(t)

	first := g.Generate("", []string{"Technology"}, "advancement")
	first.Events[0].Title = "changed"
	first.Jobs[0].Title = "changed"

	second := g.Generate("", []string{"Technology"}, "advancement")
	assert.Equal(t, "Tech Leadership Summit 2024", second.Events[0].Title)
	assert.Equal(t, "Senior Tech Lead - Remote", second.Jobs[0].Title)
}

func TestForPreferences(t *testing.T) {
	prefs := models.DefaultPreferences()
	prefs.Goal = "job"

	set := newTestGenerator(t).ForPreferences(prefs)
	require.Len(t, set.Courses, 1)
	assert.Equal(t, "LinkedIn Job Search Mastery Course", set.Courses[0].Title)
	assert.Len(t, set.Jobs, 1)
}
