package responses

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/careerfuture/backend/models"
)

type fakeGenerator struct {
	calls    int
	lastMsg  string
	lastPref models.UserPreferences
}

func (f *fakeGenerator) Generate(_ context.Context, message string, prefs models.UserPreferences) (string, models.ReplySource) {
	f.calls++
	f.lastMsg = message
	f.lastPref = prefs
	return "generated: " + message, models.SourceFallback
}

func newTestManager(t *testing.T) (*Manager, *fakeGenerator) {
	t.Helper()
	gen := &fakeGenerator{}
	m, err := NewManager(gen, zap.NewNop())
	require.NoError(t, err)
	return m, gen
}

func connectedPrefs() models.UserPreferences {
	prefs := models.DefaultPreferences()
	prefs.Industry = "Manufacturing"
	prefs.LinkedInConnected = true
	prefs.ProfileData = &models.ProfileRecord{
		Name:            "Chase Thompson",
		Title:           "Mechanical Engineering Student",
		Company:         "Weber State University",
		Skills:          []string{"SOLIDWORKS", "MATLAB", "Data Analysis", "Leadership"},
		ExperienceLevel: "Entry Level",
		Industry:        "Manufacturing",
	}
	return prefs
}

func TestCategoriesOrder(t *testing.T) {
	m, _ := newTestManager(t)
	assert.Equal(t, []Category{
		CategoryAdvancement, CategoryDirectorSkills, CategoryRemoteJobs, CategoryLeadershipWorkshops,
	}, m.Categories())
}

func TestMatchQuestion(t *testing.T) {
	m, _ := newTestManager(t)

	tests := []struct {
		message string
		want    Category
		ok      bool
	}{
		{"How can I advance from Senior Developer to Tech Lead?", CategoryAdvancement, true},
		{"  I want to BECOME TECH LEAD soon ", CategoryAdvancement, true},
		{"What skills do I need for a director position?", CategoryDirectorSkills, true},
		{"executive skills needed", CategoryDirectorSkills, true},
		{"Show me remote job opportunities in tech", CategoryRemoteJobs, true},
		{"any work from home tech jobs?", CategoryRemoteJobs, true},
		{"What workshops are available for leadership skills?", CategoryLeadershipWorkshops, true},
		{"leadership training please", CategoryLeadershipWorkshops, true},
		{"remote opportunities in leadership training", CategoryRemoteJobs, true},
		{"find useful events for me", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			got, ok := m.MatchQuestion(tt.message)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestShouldUsePredefined(t *testing.T) {
	m, _ := newTestManager(t)
	phrase := "advance from senior developer to tech lead"

	t.Run("default preferences", func(t *testing.T) {
		category, ok := m.ShouldUsePredefined(phrase, models.DefaultPreferences())
		assert.True(t, ok)
		assert.Equal(t, CategoryAdvancement, category)
	})

	t.Run("no match", func(t *testing.T) {
		_, ok := m.ShouldUsePredefined("tell me a joke", models.DefaultPreferences())
		assert.False(t, ok)
	})

	t.Run("any non-default value", func(t *testing.T) {
		changes := map[string]func(*models.UserPreferences){
			"interests":    func(p *models.UserPreferences) { p.Interests = []string{"Marketing"} },
			"career level": func(p *models.UserPreferences) { p.CareerLevel = "Senior" },
			"goal":         func(p *models.UserPreferences) { p.Goal = "job" },
			"industry":     func(p *models.UserPreferences) { p.Industry = "Finance" },
			"location":     func(p *models.UserPreferences) { p.Location = "On-site" },
			"experience":   func(p *models.UserPreferences) { p.Experience = "10+ years" },
		}
		for name, change := range changes {
			t.Run(name, func(t *testing.T) {
				prefs := models.DefaultPreferences()
				change(&prefs)
				_, ok := m.ShouldUsePredefined(phrase, prefs)
				assert.False(t, ok)
			})
		}
	})

	t.Run("linkedin connected overrides filters", func(t *testing.T) {
		category, ok := m.ShouldUsePredefined("leadership workshops", connectedPrefs())
		assert.True(t, ok)
		assert.Equal(t, CategoryLeadershipWorkshops, category)
	})
}

func TestPredefinedResponseDefault(t *testing.T) {
	m, _ := newTestManager(t)

	text, err := m.PredefinedResponse(CategoryAdvancement, models.DefaultPreferences())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(text, "Perfect! I can see you're interested in <strong>Technology</strong> and <strong>Leadership</strong> - that's an excellent combination for advancing to Tech Lead! 🚀"))
	assert.Contains(t, text, "Based on your <strong>3-5 years</strong> of experience")
	assert.Contains(t, text, "<h4>3. Remote Leadership Skills</h4>")
	assert.True(t, strings.HasSuffix(text, "Check out the recommendations below! 🔗"))

	for _, category := range m.Categories() {
		text, err := m.PredefinedResponse(category, models.DefaultPreferences())
		require.NoError(t, err, category)
		assert.NotEmpty(t, text)
		assert.NotContains(t, text, "{{")
	}

	text, err = m.PredefinedResponse(CategoryRemoteJobs, models.DefaultPreferences())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(text, "Fantastic!"))
	assert.Contains(t, text, "<strong>GitLab</strong>")
}

func TestPredefinedResponseLinkedIn(t *testing.T) {
	m, _ := newTestManager(t)
	prefs := connectedPrefs()

	text, err := m.PredefinedResponse(CategoryAdvancement, prefs)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(text, "Perfect, Chase Thompson! 🎯"))
	assert.Contains(t, text, "<strong>Key Skills:</strong> SOLIDWORKS, MATLAB, Data Analysis")
	assert.Contains(t, text, "Your expertise in <strong>SOLIDWORKS, MATLAB</strong>")
	assert.Contains(t, text, "Express interest in leadership roles at Weber State University")

	text, err = m.PredefinedResponse(CategoryDirectorSkills, prefs)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(text, "Excellent question, Chase Thompson! 🎯"))

	text, err = m.PredefinedResponse(CategoryRemoteJobs, prefs)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(text, "Fantastic, Chase Thompson! 🌐"))

	text, err = m.PredefinedResponse(CategoryLeadershipWorkshops, prefs)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(text, "Excellent choice, Chase Thompson! 🎓"))
	assert.Contains(t, text, "<h4>For Entry Level Professionals:</h4>")
}

func TestPredefinedResponseEscapesProfileData(t *testing.T) {
	m, _ := newTestManager(t)
	prefs := connectedPrefs()
	prefs.ProfileData.Name = "<script>alert(1)</script>"

	text, err := m.PredefinedResponse(CategoryAdvancement, prefs)
	require.NoError(t, err)
	assert.NotContains(t, text, "<script>")
	assert.Contains(t, text, "&lt;script&gt;")
}

func TestPredefinedResponseUnknownCategory(t *testing.T) {
	m, _ := newTestManager(t)
	_, err := m.PredefinedResponse(Category("salary_negotiation"), models.DefaultPreferences())
	assert.Error(t, err)
}

func TestRespond(t *testing.T) {
	ctx := context.Background()

	t.Run("canned advancement answer for default preferences", func(t *testing.T) {
		m, gen := newTestManager(t)
		reply := m.Respond(ctx, "advance from senior developer to tech lead", models.DefaultPreferences())

		assert.Equal(t, models.SourcePredefined, reply.Source)
		assert.Equal(t, CategoryAdvancement, reply.Category)
		assert.True(t, strings.HasPrefix(reply.Text, "Perfect! I can see"))
		assert.Zero(t, gen.calls)
	})

	t.Run("canned phrases with changed filters go to the generator", func(t *testing.T) {
		phrases := []string{
			"advance from senior developer to tech lead",
			"what skills do i need for a director position",
			"show me remote job opportunities in tech",
			"what workshops are available for leadership skills",
		}
		for _, phrase := range phrases {
			m, gen := newTestManager(t)
			prefs := models.DefaultPreferences()
			prefs.Goal = "skill"

			reply := m.Respond(ctx, phrase, prefs)
			assert.Equal(t, models.SourceFallback, reply.Source, phrase)
			assert.Equal(t, "generated: "+phrase, reply.Text)
			assert.Equal(t, 1, gen.calls)
			assert.Equal(t, "skill", gen.lastPref.Goal)
		}
	})

	t.Run("linkedin personalised answer", func(t *testing.T) {
		m, gen := newTestManager(t)
		reply := m.Respond(ctx, "remote tech jobs", connectedPrefs())

		assert.Equal(t, models.SourceLinkedIn, reply.Source)
		assert.Equal(t, CategoryRemoteJobs, reply.Category)
		assert.Zero(t, gen.calls)
	})

	t.Run("unmatched message", func(t *testing.T) {
		m, gen := newTestManager(t)
		reply := m.Respond(ctx, "find useful events for me", models.DefaultPreferences())

		assert.Equal(t, "generated: find useful events for me", reply.Text)
		assert.Equal(t, "find useful events for me", gen.lastMsg)
		assert.Empty(t, reply.Category)
	})
}
