package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ppiankov/benkhawiya/internal/app"
	"github.com/ppiankov/benkhawiya/internal/platform/logger"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the Benkhawiya web service",
	Long: `Serve the web interface and JSON API:
  GET  /                               web interface
  GET  /api                            API information
  GET  /health                         liveness and catalog status
  GET  /principles                     the 42 principles
  POST /council/consult?question=...   consult the council
  GET  /mathematics/golden-ratio/{n}   golden-ratio progression

The listen port comes from --port, BENKHAWIYA_SERVER_PORT or PORT (default 8000).

Example:
  benkhawiya serve
  PORT=9000 benkhawiya serve
  benkhawiya serve --host 127.0.0.1 --port 8080`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("host", "", "listen host (overrides server.host)")
	serveCmd.Flags().Int("port", 0, "listen port (overrides server.port and PORT)")
	_ = viper.BindPFlag("server.host", serveCmd.Flags().Lookup("host"))
	_ = viper.BindPFlag("server.port", serveCmd.Flags().Lookup("port"))
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Log.Mode)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, log, cfg)
	if err != nil {
		log.Sync()
		return err
	}
	defer a.Close()

	return a.Run(ctx)
}
