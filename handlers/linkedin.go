package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/careerfuture/backend/auth"
	"github.com/careerfuture/backend/linkedin"
	"github.com/careerfuture/backend/logging"
	"github.com/careerfuture/backend/models"
)

// LinkedInHandler connects LinkedIn profiles
type LinkedInHandler struct {
	analyzer   *linkedin.Analyzer
	jwtService *auth.JWTService
	logger     *zap.Logger
}

// NewLinkedInHandler creates a new LinkedIn handler
func NewLinkedInHandler(analyzer *linkedin.Analyzer, jwtService *auth.JWTService, logger *zap.Logger) *LinkedInHandler {
	return &LinkedInHandler{
		analyzer:   analyzer,
		jwtService: jwtService,
		logger:     logger.With(zap.String("component", "linkedin")),
	}
}

// ConnectLinkedIn analyses a LinkedIn profile URL
// @Summary Connect LinkedIn profile
// @Description Analyse a LinkedIn profile URL and return the profile, the chat preferences derived from it, onboarding suggestions and a session token that restores the profile on later chat requests.
// @Tags LinkedIn
// @Accept json
// @Produce json
// @Param request body models.ConnectLinkedInRequest true "LinkedIn profile URL"
// @Success 200 {object} models.ConnectLinkedInResponse "Connected profile"
// @Failure 400 {object} models.ErrorResponse "LinkedIn URL is required"
// @Failure 500 {object} models.ErrorResponse "Failed to analyze LinkedIn profile"
// @Router /connect-linkedin [post]
func (h *LinkedInHandler) ConnectLinkedIn(c *gin.Context) {
	log := logging.FromContext(c, h.logger)

	var req models.ConnectLinkedInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("invalid connect request", zap.Error(err))
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	rawURL := strings.TrimSpace(req.LinkedInURL)
	if rawURL == "" {
		respondError(c, http.StatusBadRequest, "LinkedIn URL is required")
		return
	}

	var (
		profile     *models.ProfileRecord
		analyzeErr  error
		prefs       models.UserPreferences
		suggestions models.ProfileSuggestions
	)
	if err := guard(func() {
		profile, analyzeErr = h.analyzer.AnalyzeProfile(rawURL)
		if analyzeErr == nil {
			prefs = linkedin.PreferencesFromProfile(profile)
			suggestions = linkedin.Suggestions(profile)
		}
	}); err != nil {
		log.Error("failed to analyze LinkedIn profile", zap.String("url", rawURL), zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to analyze LinkedIn profile")
		return
	}
	if errors.Is(analyzeErr, linkedin.ErrInvalidProfileURL) {
		respondError(c, http.StatusBadRequest, "Could not extract profile ID from LinkedIn URL")
		return
	}
	if analyzeErr != nil {
		log.Error("failed to analyze LinkedIn profile", zap.String("url", rawURL), zap.Error(analyzeErr))
		respondError(c, http.StatusInternalServerError, "Failed to analyze LinkedIn profile")
		return
	}

	token, err := h.jwtService.GenerateToken(profile)
	if err != nil {
		log.Error("failed to issue session token", zap.String("profile_id", profile.ProfileID), zap.Error(err))
	}

	log.Info("LinkedIn profile connected",
		zap.String("profile_id", profile.ProfileID),
		zap.String("experience_level", profile.ExperienceLevel),
	)
	c.JSON(http.StatusOK, models.ConnectLinkedInResponse{
		Status:             models.StatusSuccess,
		ProfileData:        profile,
		UpdatedPreferences: prefs,
		Suggestions:        suggestions,
		SessionToken:       token,
	})
}

// GetSession restores the profile behind a session token
// @Summary Get connected LinkedIn profile
// @Description Return the profile and preferences restored from a LinkedIn session token
// @Tags LinkedIn
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.LinkedInSessionResponse "Connected profile"
// @Failure 401 {object} models.ErrorResponse "Invalid or expired token"
// @Router /linkedin/profile [get]
func (h *LinkedInHandler) GetSession(c *gin.Context) {
	claims := auth.GetAuthClaims(c)
	if claims == nil {
		respondError(c, http.StatusUnauthorized, "Not connected")
		return
	}

	profile := h.analyzer.Lookup(claims.ProfileID)
	c.JSON(http.StatusOK, models.LinkedInSessionResponse{
		Status:      models.StatusSuccess,
		ProfileData: profile,
		Preferences: linkedin.PreferencesFromProfile(profile),
	})
}
