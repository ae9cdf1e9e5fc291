// Package server assembles the HTTP router and runs it until the context is
// cancelled.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/careerfuture/backend/auth"
	_ "github.com/careerfuture/backend/docs"
	"github.com/careerfuture/backend/handlers"
	"github.com/careerfuture/backend/logging"
	"github.com/careerfuture/backend/mcp"
)

// shutdownTimeout gives outstanding requests time to complete.
const shutdownTimeout = 30 * time.Second

// NewRouter wires middleware and routes.
func NewRouter(s *Services) *gin.Engine {
	router := gin.New()

	router.Use(logging.Recovery(s.Logger))
	router.Use(logging.RequestLogger(s.Logger))
	router.Use(cors.New(corsConfig(s.Config.AllowedOrigins)))

	chatHandler := handlers.NewChatHandler(s.Chat, s.Profiles, s.Logger)
	recommendationsHandler := handlers.NewRecommendationsHandler(s.Recommendations, s.Logger)
	cvHandler := handlers.NewCVHandler(s.CV, s.Archive, s.Config.MaxUploadMB, s.Logger)
	linkedInHandler := handlers.NewLinkedInHandler(s.Profiles, s.JWT, s.Logger)
	systemHandler := handlers.NewSystemHandler(Version, s.GeneratorName, s.Tools)
	mcpServer := mcp.NewServer(s.Tools, Version, s.Logger)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/", systemHandler.Index)
	router.GET("/health", systemHandler.HealthCheck)

	api := router.Group("/api")
	{
		// Chat (optional auth - a LinkedIn session token restores the profile)
		api.POST("/chat", auth.OptionalAuthMiddleware(s.JWT), chatHandler.Chat)

		api.GET("/recommendations", recommendationsHandler.GetRecommendations)
		api.POST("/upload-cv", cvHandler.UploadCV)

		api.POST("/connect-linkedin", linkedInHandler.ConnectLinkedIn)
		api.GET("/linkedin/profile", auth.AuthMiddleware(s.JWT), linkedInHandler.GetSession)

		// Tools introspection endpoint
		api.GET("/tools", systemHandler.GetTools)

		// MCP endpoints for external AI agents
		mcpServer.RegisterRoutes(api)
	}

	router.NoRoute(handlers.NotFound)

	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", logging.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", logging.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
		cfg.AllowCredentials = true
	}
	return cfg
}

// NewHTTPServer creates the HTTP server listening on addr.
func NewHTTPServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}

// Run serves srv until ctx is cancelled, then shuts it down gracefully.
func Run(ctx context.Context, srv *http.Server, logger *zap.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		logger.Info("server exited gracefully")
		return nil
	})

	return g.Wait()
}
