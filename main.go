package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/careerfuture/backend/config"
	"github.com/careerfuture/backend/logging"
)

// @title CareerFuture API
// @version 1.0
// @description Career assistant backend: chat with predefined and Gemini-generated answers, recommendations, CV analysis and LinkedIn profile connection.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token from /connect-linkedin.

var (
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "careerfuture",
	Short: "CareerFuture career assistant backend",
	Long: `CareerFuture serves the career assistant API: chat, recommendations,
CV upload and LinkedIn profile connection.

Run without arguments to start the HTTP server.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Load .env file if present (for local development)
		envErr := godotenv.Load()

		cfg = config.Load()
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("configuration error: %w", err)
		}

		var err error
		logger, err = logging.New(cfg.Debug)
		if err != nil {
			return err
		}
		if envErr != nil {
			logger.Debug("no .env file found, using environment variables")
		}

		if cfg.Debug {
			gin.SetMode(gin.DebugMode)
		} else {
			gin.SetMode(gin.ReleaseMode)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(recommendCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
