package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/careerfuture/backend/logging"
	"github.com/careerfuture/backend/models"
	"github.com/careerfuture/backend/recommendations"
)

// RecommendationsHandler serves the "Recommended for You" lists
type RecommendationsHandler struct {
	generator *recommendations.Generator
	logger    *zap.Logger
}

// NewRecommendationsHandler creates a new recommendations handler
func NewRecommendationsHandler(generator *recommendations.Generator, logger *zap.Logger) *RecommendationsHandler {
	return &RecommendationsHandler{
		generator: generator,
		logger:    logger.With(zap.String("component", "recommendations")),
	}
}

// GetRecommendations returns recommendations for the given filters
// @Summary Get recommendations
// @Description Courses depend on the goal, the job card on the Technology interest; the event and workshop are always included.
// @Tags Recommendations
// @Produce json
// @Param career_level query string false "Career level"
// @Param interests query []string false "Interests (repeat the parameter; interests[] is also accepted)" collectionFormat(multi)
// @Param goal query string false "Career goal" Enums(advancement, skill, job) default(advancement)
// @Success 200 {object} models.RecommendationsResponse "Recommendations"
// @Router /recommendations [get]
func (h *RecommendationsHandler) GetRecommendations(c *gin.Context) {
	careerLevel := c.Query("career_level")
	interests := append(c.QueryArray("interests"), c.QueryArray("interests[]")...)
	goal := c.DefaultQuery("goal", models.DefaultGoal)

	set := h.generator.Generate(careerLevel, interests, goal)

	logging.FromContext(c, h.logger).Info("recommendations generated",
		zap.String("career_level", careerLevel),
		zap.String("goal", goal),
		zap.Strings("interests", interests),
		zap.Int("courses", len(set.Courses)),
		zap.Int("jobs", len(set.Jobs)),
		zap.Int("events", len(set.Events)),
		zap.Int("workshops", len(set.Workshops)),
	)

	c.JSON(http.StatusOK, models.RecommendationsResponse{
		Status:          models.StatusSuccess,
		Recommendations: set,
	})
}
