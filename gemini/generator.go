// Package gemini wraps the hosted Gemini text models and turns chat messages
// into HTML replies, with a static fallback whenever generation is not possible.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	"go.uber.org/zap"

	"github.com/careerfuture/backend/config"
	"github.com/careerfuture/backend/models"
	"github.com/careerfuture/backend/utils"
)

const chatTemperature = 0.7

// ErrNoBackend is returned by NewBackend when no credentials are configured.
var ErrNoBackend = errors.New("no Gemini backend configured")

// TextModel turns a prompt into text.
type TextModel interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Backend is a TextModel bound to a live client.
type Backend interface {
	TextModel
	Name() string
	Close() error
}

// NewBackend picks the backend selected by cfg: the Developer API when an API
// key is set, Vertex AI when a project is set, ErrNoBackend otherwise.
func NewBackend(ctx context.Context, cfg *config.Config) (Backend, error) {
	switch cfg.GeneratorBackend() {
	case config.BackendGeminiAPI:
		model, err := NewStudioModel(ctx, cfg, utils.NewHTTPClient(cfg.HTTPTimeout()))
		if err != nil {
			return nil, err
		}
		return model, nil
	case config.BackendVertexAI:
		model, err := NewVertexModel(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return model, nil
	default:
		return nil, ErrNoBackend
	}
}

// Generator answers free-form chat messages.
type Generator struct {
	model  TextModel
	logger *zap.Logger
}

// NewGenerator creates a generator. A nil model makes every reply the fallback.
func NewGenerator(model TextModel, logger *zap.Logger) *Generator {
	return &Generator{
		model:  model,
		logger: logger.With(zap.String("component", "gemini")),
	}
}

// Available reports whether a text model is configured.
func (g *Generator) Available() bool {
	return g.model != nil
}

// Generate asks the model for a reply and renders it to HTML. Any failure is
// logged and answered with the fallback text; errors never reach the caller.
func (g *Generator) Generate(ctx context.Context, message string, prefs models.UserPreferences) (string, models.ReplySource) {
	if !g.Available() {
		return Fallback(message, prefs), models.SourceFallback
	}

	text, err := g.model.GenerateText(ctx, BuildPrompt(message, prefs))
	if err != nil {
		g.logger.Error("generation failed, using fallback", zap.Error(err))
		return Fallback(message, prefs), models.SourceFallback
	}

	rendered := RenderHTML(text)
	if strings.TrimSpace(rendered) == "" {
		g.logger.Warn("generation returned no usable text, using fallback")
		return Fallback(message, prefs), models.SourceFallback
	}

	g.logger.Debug("response generated", zap.Int("length", len(rendered)))
	return rendered, models.SourceGenerated
}

// BuildPrompt builds the context-aware prompt for message. The visitor's
// question is repeated so the model keeps it in focus.
func BuildPrompt(message string, prefs models.UserPreferences) string {
	return fmt.Sprintf(`You are a professional career planning assistant for a career development platform built around LinkedIn.

**The user is asking this specific question: "%[1]s"**

User Context:
- Interests: %[2]s
- Career Level: %[3]s
- Goal: %[4]s
- Preferred Location: %[5]s
- Experience: %[6]s

**Your response MUST directly answer their question: "%[1]s"**

Write a personalized response that:
1. Directly answers the question first
2. Acknowledges their interests and preferences
3. Gives actionable career advice related to the question
4. Mentions relevant LinkedIn resources (LinkedIn Learning, LinkedIn Jobs, LinkedIn Events, LinkedIn Groups)
5. Suggests concrete next steps
6. Uses a professional but friendly tone, with emojis used sparingly
7. Takes their career goal and experience level into account

FORMAT:
- Use HTML tags such as <strong>, <em>, <h3>, <h4>, <ul>, <li> for web display
- If they ask about events, prioritize LinkedIn Events, conferences and workshops
- If they ask about jobs, prioritize job opportunities and application strategy
- If they ask about skills, prioritize LinkedIn Learning courses and skill paths

Remember: the question "%[1]s" is the most important thing to address.`,
		message,
		strings.Join(prefs.Interests, ", "),
		prefs.CareerLevel,
		prefs.Goal,
		prefs.Location,
		prefs.Experience,
	)
}

// Fallback is the static reply used whenever no generated text is available.
// The message and interests are HTML-escaped.
func Fallback(message string, prefs models.UserPreferences) string {
	return fmt.Sprintf(`I understand you're asking about "%s".

Based on your interests in <strong>%s</strong> and your goal of <strong>%s</strong>, I'd be happy to help you explore this topic further.

You can:
• Ask me about career advancement strategies
• Inquire about specific skills for leadership roles
• Explore remote job opportunities
• Find leadership workshops and events

What specific aspect would you like to dive deeper into? I'm here to provide personalized guidance based on your career goals! 🚀`,
		html.EscapeString(message),
		html.EscapeString(strings.Join(prefs.Interests, ", ")),
		html.EscapeString(prefs.Goal),
	)
}
