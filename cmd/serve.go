package cmd

import (
	"fmt"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/arcanaland/arcana/internal/server"
)

var serveVerbose bool

// serveCmd runs the reading proxy.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the reading proxy service",
	Long: `Serve starts the HTTP proxy that the app sends its card context to.
It applies the fixed reading instruction and forwards to the Gemini API.

Configuration comes from the environment (a .env file is honored):
  GEMINI_API_KEY           upstream credential (required for readings)
  GEMINI_MODEL             upstream model (default gemini-2.5-flash)
  ARCANA_LISTEN_ADDR       listen address (default :8080)
  ARCANA_UPSTREAM_TIMEOUT  upstream timeout (default 60s)`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// A missing .env is fine; the environment may be set directly.
		_ = godotenv.Load()

		logConfig := zap.NewProductionConfig()
		if serveVerbose {
			logConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err := logConfig.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logger.Sync()

		cfg := server.ConfigFromEnv()
		if cfg.GeminiAPIKey == "" {
			logger.Warn("GEMINI_API_KEY not set; reading requests will fail until it is configured")
		}

		api := server.NewAPI(server.NewGeminiClient(cfg), logger)

		logger.Info("reading proxy listening",
			zap.String("addr", cfg.ListenAddr),
			zap.String("model", cfg.GeminiModel))

		return http.ListenAndServe(cfg.ListenAddr, api)
	},
}

func init() {
	serveCmd.Flags().BoolVarP(&serveVerbose, "verbose", "v", false, "enable debug logging")
	RootCmd.AddCommand(serveCmd)
}
