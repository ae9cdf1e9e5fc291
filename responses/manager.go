// Package responses decides how a chat message is answered: with a canned,
// preference-aware answer for the four showcase questions, or by handing the
// message to the text generator.
package responses

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/careerfuture/backend/models"
)

// Category identifies one of the showcase questions.
type Category string

const (
	CategoryAdvancement         Category = "advancement"
	CategoryDirectorSkills      Category = "director_skills"
	CategoryRemoteJobs          Category = "remote_jobs"
	CategoryLeadershipWorkshops Category = "leadership_workshops"
)

var (
	//go:embed phrases.yaml
	phrasesYAML []byte

	//go:embed templates/*.tmpl
	templateFS embed.FS
)

// TextGenerator answers messages that have no canned reply.
type TextGenerator interface {
	Generate(ctx context.Context, message string, prefs models.UserPreferences) (string, models.ReplySource)
}

// Reply is an answer together with where it came from.
type Reply struct {
	Text     string
	Source   models.ReplySource
	Category Category
}

type phraseGroup struct {
	Category Category `yaml:"category"`
	Variants []string `yaml:"variants"`
}

// Manager holds the phrase table and answer templates. It is safe for
// concurrent use; nothing in it changes after NewManager returns.
type Manager struct {
	phrases   []phraseGroup
	templates *template.Template
	generator TextGenerator
	logger    *zap.Logger
}

// NewManager loads the embedded phrase table and templates.
func NewManager(generator TextGenerator, logger *zap.Logger) (*Manager, error) {
	var phrases []phraseGroup
	if err := yaml.Unmarshal(phrasesYAML, &phrases); err != nil {
		return nil, fmt.Errorf("failed to parse phrase table: %w", err)
	}

	tmpl, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse response templates: %w", err)
	}

	m := &Manager{
		phrases:   phrases,
		templates: tmpl,
		generator: generator,
		logger:    logger.With(zap.String("component", "responses")),
	}
	for _, category := range m.Categories() {
		for _, name := range []string{templateName(category, false), templateName(category, true)} {
			if m.templates.Lookup(name) == nil {
				return nil, fmt.Errorf("missing response template %s", name)
			}
		}
	}
	return m, nil
}

// Categories lists the known categories in match order.
func (m *Manager) Categories() []Category {
	out := make([]Category, 0, len(m.phrases))
	for _, group := range m.phrases {
		out = append(out, group.Category)
	}
	return out
}

// MatchQuestion returns the first category with a variant contained in message.
func (m *Manager) MatchQuestion(message string) (Category, bool) {
	normalized := strings.ToLower(strings.TrimSpace(message))
	if normalized == "" {
		return "", false
	}
	for _, group := range m.phrases {
		for _, variant := range group.Variants {
			if strings.Contains(normalized, variant) {
				return group.Category, true
			}
		}
	}
	return "", false
}

// ShouldUsePredefined reports whether message gets a canned answer: it must
// match a category, and the visitor must either be LinkedIn-connected or have
// untouched filters.
func (m *Manager) ShouldUsePredefined(message string, prefs models.UserPreferences) (Category, bool) {
	category, ok := m.MatchQuestion(message)
	if !ok {
		return "", false
	}
	if prefs.LinkedInConnected || prefs.IsDefault() {
		return category, true
	}
	return "", false
}

// PredefinedResponse renders the canned answer for category. A connected
// profile selects the personalised variant.
func (m *Manager) PredefinedResponse(category Category, prefs models.UserPreferences) (string, error) {
	personalised := prefs.HasProfile()
	var data any
	if personalised {
		data = newProfileView(prefs.ProfileData)
	} else {
		data = preferenceView{Experience: prefs.Experience}
	}

	var buf bytes.Buffer
	if err := m.templates.ExecuteTemplate(&buf, templateName(category, personalised), data); err != nil {
		return "", fmt.Errorf("failed to render %s response: %w", category, err)
	}
	return strings.TrimSpace(buf.String()), nil
}

// Respond answers a chat message. Rendering failures fall through to the
// generator so a reply is always produced.
func (m *Manager) Respond(ctx context.Context, message string, prefs models.UserPreferences) Reply {
	if category, ok := m.ShouldUsePredefined(message, prefs); ok {
		text, err := m.PredefinedResponse(category, prefs)
		if err == nil {
			source := models.SourcePredefined
			if prefs.HasProfile() {
				source = models.SourceLinkedIn
			}
			m.logger.Debug("predefined response", zap.String("category", string(category)), zap.String("source", string(source)))
			return Reply{Text: text, Source: source, Category: category}
		}
		m.logger.Error("predefined response failed", zap.String("category", string(category)), zap.Error(err))
	}

	text, source := m.generator.Generate(ctx, message, prefs)
	return Reply{Text: text, Source: source}
}

func templateName(category Category, personalised bool) string {
	if personalised {
		return "linkedin_" + string(category) + ".tmpl"
	}
	return string(category) + ".tmpl"
}

type preferenceView struct {
	Experience string
}

type profileView struct {
	Name            string
	Title           string
	Company         string
	ExperienceLevel string
	Industry        string
	TopSkills       string
	KeySkills       string
}

func newProfileView(p *models.ProfileRecord) profileView {
	return profileView{
		Name:            fallback(p.Name, "User"),
		Title:           fallback(p.Title, "Professional"),
		Company:         fallback(p.Company, "Company"),
		ExperienceLevel: fallback(p.ExperienceLevel, models.DefaultCareerLevel),
		Industry:        fallback(p.Industry, "Technology"),
		TopSkills:       strings.Join(p.TopSkills(3), ", "),
		KeySkills:       strings.Join(p.TopSkills(2), ", "),
	}
}

func fallback(value, def string) string {
	if value == "" {
		return def
	}
	return value
}
