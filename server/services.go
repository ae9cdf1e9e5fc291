package server

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/careerfuture/backend/auth"
	"github.com/careerfuture/backend/config"
	"github.com/careerfuture/backend/cv"
	"github.com/careerfuture/backend/gemini"
	"github.com/careerfuture/backend/linkedin"
	"github.com/careerfuture/backend/recommendations"
	"github.com/careerfuture/backend/responses"
	"github.com/careerfuture/backend/storage"
	"github.com/careerfuture/backend/tools"
)

// Version is reported by /health and the MCP initialize call.
const Version = "1.0.0"

// Services holds the components shared by the HTTP server and the CLI.
type Services struct {
	Config          *config.Config
	Logger          *zap.Logger
	GeneratorName   string
	Chat            *responses.Manager
	Profiles        *linkedin.Analyzer
	Recommendations *recommendations.Generator
	CV              *cv.Analyzer
	Archive         storage.CVArchive
	JWT             *auth.JWTService
	Tools           *tools.ToolRegistry

	closers []func() error
}

// NewServices builds every component from cfg. The text generator and the CV
// archive are optional: missing credentials or a failing client are logged
// and the service runs without them.
func NewServices(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Services, error) {
	s := &Services{
		Config: cfg,
		Logger: logger,
		JWT:    auth.NewJWTService(cfg),
		CV:     cv.NewAnalyzer(logger),
	}

	var model gemini.TextModel
	backend, err := gemini.NewBackend(ctx, cfg)
	switch {
	case errors.Is(err, gemini.ErrNoBackend):
		logger.Info("no Gemini credentials configured, chat will use fallback text")
	case err != nil:
		logger.Warn("failed to initialize Gemini backend, chat will use fallback text", zap.Error(err))
	default:
		logger.Info("Gemini backend initialized",
			zap.String("backend", backend.Name()),
			zap.String("model", cfg.GeminiModel),
		)
		model = backend
		s.GeneratorName = backend.Name()
		s.closers = append(s.closers, backend.Close)
	}

	s.Chat, err = responses.NewManager(gemini.NewGenerator(model, logger), logger)
	if err != nil {
		s.Close()
		return nil, err
	}

	s.Profiles, err = linkedin.NewAnalyzer(logger)
	if err != nil {
		s.Close()
		return nil, err
	}

	s.Recommendations, err = recommendations.NewGenerator()
	if err != nil {
		s.Close()
		return nil, err
	}

	if cfg.CVBucketName != "" {
		archive, err := storage.NewCloudStorageClient(ctx, cfg)
		if err != nil {
			logger.Warn("failed to initialize Cloud Storage client, CVs will not be archived", zap.Error(err))
		} else {
			logger.Info("CV archive enabled", zap.String("bucket", cfg.CVBucketName))
			s.Archive = archive
			s.closers = append(s.closers, archive.Close)
		}
	}

	s.Tools = tools.NewToolRegistry()
	for _, tool := range []tools.Tool{
		tools.NewLinkedInProfileTool(s.Profiles),
		tools.NewRecommendationsTool(s.Recommendations),
		tools.NewCareerChatTool(s.Chat),
	} {
		if err := s.Tools.Register(tool); err != nil {
			s.Close()
			return nil, fmt.Errorf("failed to register tools: %w", err)
		}
	}

	return s, nil
}

// Close releases the outbound clients.
func (s *Services) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	s.closers = nil
	return errors.Join(errs...)
}
