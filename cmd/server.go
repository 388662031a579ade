package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ALPHA-CODE-HUB/voice-vot/internal/chat"
	"github.com/ALPHA-CODE-HUB/voice-vot/internal/config"
	"github.com/ALPHA-CODE-HUB/voice-vot/internal/llm"
	"github.com/ALPHA-CODE-HUB/voice-vot/internal/server"
	"github.com/ALPHA-CODE-HUB/voice-vot/internal/transcribe"
)

var serverPort int

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the voice interview bot backend",
	Long:  `Starts the HTTP backend serving the chat proxy, the mock speech-to-text endpoint, and the liveness probe.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Local development keeps the provider key in a .env file.
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			logrus.WithError(err).Warn("Could not load .env file")
		}

		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if serverPort > 0 {
			cfg.Port = serverPort
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		// A missing credential is fatal here, before the listener binds:
		// the server must not come up unable to answer chat requests.
		provider, err := llm.NewProvider(string(cfg.Provider), cfg.Model, cfg.RefererURL, cfg.AppTitle,
			time.Duration(cfg.ProviderTimeoutSeconds)*time.Second)
		if err != nil {
			return fmt.Errorf("creating completion provider: %w", err)
		}

		chatSvc := chat.New(provider, cfg.Model)

		sttSvc, err := transcribe.New(cfg.UploadsDir)
		if err != nil {
			return fmt.Errorf("creating transcription service: %w", err)
		}

		srv := server.New(server.Config{
			Port:       cfg.Port,
			BasePath:   cfg.BasePath(),
			Production: cfg.Production,
			PublicDir:  cfg.PublicDir,
		}, chatSvc, sttSvc)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			logrus.Info("Shutting down server...")
			srv.Shutdown(context.Background())
		}()

		logrus.WithFields(logrus.Fields{
			"provider": provider.Name(),
			"model":    cfg.Model,
			"mode":     cfg.Mode,
		}).Infof("voicevot v%s starting on port %d", Version, cfg.Port)

		return srv.Start()
	},
}

func init() {
	serverCmd.Flags().IntVar(&serverPort, "port", 0, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serverCmd)
}
