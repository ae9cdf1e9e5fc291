package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/careerfuture/backend/auth"
	"github.com/careerfuture/backend/linkedin"
	"github.com/careerfuture/backend/logging"
	"github.com/careerfuture/backend/models"
	"github.com/careerfuture/backend/responses"
)

// Responder answers a chat message.
type Responder interface {
	Respond(ctx context.Context, message string, prefs models.UserPreferences) responses.Reply
}

// ChatHandler handles chat requests
type ChatHandler struct {
	responder Responder
	profiles  *linkedin.Analyzer
	logger    *zap.Logger
}

// NewChatHandler creates a new chat handler
func NewChatHandler(responder Responder, profiles *linkedin.Analyzer, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		responder: responder,
		profiles:  profiles,
		logger:    logger.With(zap.String("component", "chat")),
	}
}

// Chat answers a career question
// @Summary Chat with the career assistant
// @Description Answer a career question. The four showcase questions get a predefined answer when the filters are untouched or a LinkedIn profile is connected; everything else goes to Gemini, with a static fallback. A LinkedIn session token restores the connected profile.
// @Tags Chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.ChatRequest true "Chat message"
// @Success 200 {object} models.ChatResponse "Assistant reply (HTML)"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 500 {object} models.ErrorResponse "Failed to generate response"
// @Router /chat [post]
func (h *ChatHandler) Chat(c *gin.Context) {
	log := logging.FromContext(c, h.logger)

	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("invalid chat request", zap.Error(err))
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		respondError(c, http.StatusBadRequest, "Message is required")
		return
	}

	prefs := models.DefaultPreferences()
	if req.Preferences != nil {
		prefs = *req.Preferences
	}
	if auth.IsAuthenticated(c) && !prefs.LinkedInConnected {
		claims := auth.GetAuthClaims(c)
		prefs = linkedin.PreferencesFromProfile(h.profiles.Lookup(claims.ProfileID))
		log.Debug("restored LinkedIn session", zap.String("profile_id", claims.ProfileID))
	}

	log.Info("chat request", zap.String("message", preview(req.Message, 50)))

	var reply responses.Reply
	if err := guard(func() { reply = h.responder.Respond(c.Request.Context(), req.Message, prefs) }); err != nil {
		log.Error("failed to generate response", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to generate response")
		return
	}

	log.Info("chat response generated", zap.String("source", string(reply.Source)))
	c.JSON(http.StatusOK, models.ChatResponse{
		Status:   models.StatusSuccess,
		Response: reply.Text,
		Source:   reply.Source,
	})
}

func preview(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
