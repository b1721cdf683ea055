package main

import (
	"fmt"
	"net"
	"os"

	"github.com/de-tools/tda-copilot/pkg/server"
	"github.com/de-tools/tda-copilot/pkg/services/assessment"
	"github.com/de-tools/tda-copilot/pkg/services/config"
	"github.com/de-tools/tda-copilot/pkg/services/report"
	"github.com/de-tools/tda-copilot/pkg/services/scoring"
	"github.com/de-tools/tda-copilot/pkg/services/session"
	"github.com/spf13/cobra"
)

var (
	cfgPath string
	envPath string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:          "web",
		Short:        "Start the web server for TDA Copilot",
		SilenceUsage: true,
		RunE:         runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "", "Path to a config file")
	rootCmd.Flags().StringVar(&envPath, "env-file", ".env", "Path to a .env file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(config.LoadOptions{ConfigFile: cfgPath, DotEnvFile: envPath})
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := cfg.Log.Logger(os.Stdout)
	ctx := logger.WithContext(cmd.Context())

	if cfg.Analysis.Seed != 0 {
		logger.Info().Uint64("seed", cfg.Analysis.Seed).Msg("scores are reproducible")
	}

	manager := session.NewManager(
		ctx,
		assessment.NewAnalyzer(scoring.FromSeed(cfg.Analysis.Seed)),
		report.NewBuilder(),
		session.Options{Delay: cfg.Analysis.Delay},
	)
	defer manager.Close()

	api := server.NewWebAPI(server.Config{
		Addr:            net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		MaxUploadBytes:  cfg.Server.MaxUploadBytes,
		Dependencies: server.Dependencies{
			Session: manager,
			Logger:  logger,
		},
	})

	return api.Start(ctx)
}
