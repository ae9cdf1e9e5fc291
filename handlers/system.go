package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/careerfuture/backend/models"
	"github.com/careerfuture/backend/tools"
	"github.com/careerfuture/backend/web"
)

// SystemHandler serves the index page, health check and tool listing
type SystemHandler struct {
	version   string
	generator string
	registry  *tools.ToolRegistry
}

// NewSystemHandler creates a new system handler. generator names the active
// text backend, or is empty when chat runs on fallback text only.
func NewSystemHandler(version, generator string, registry *tools.ToolRegistry) *SystemHandler {
	if generator == "" {
		generator = "fallback"
	}
	return &SystemHandler{
		version:   version,
		generator: generator,
		registry:  registry,
	}
}

// Index serves the single-page frontend
func (h *SystemHandler) Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", web.IndexHTML)
}

// HealthCheck returns server health status
// @Summary Health check
// @Description Check if the server is running and healthy
// @Tags System
// @Produce json
// @Success 200 {object} models.HealthResponse "Server is healthy"
// @Router /health [get]
func (h *SystemHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "healthy",
		Version:   h.version,
		Generator: h.generator,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// GetTools returns available MCP tools
// @Summary List available tools
// @Description Get a list of all available MCP tools for AI agents
// @Tags Tools
// @Produce json
// @Success 200 {object} map[string]interface{} "List of tools"
// @Router /tools [get]
func (h *SystemHandler) GetTools(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"tools": h.registry.Definitions(),
	})
}

// NotFound answers unknown routes
func NotFound(c *gin.Context) {
	respondError(c, http.StatusNotFound, "Not found")
}
