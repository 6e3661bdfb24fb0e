package cli

import (
	"os"

	"github.com/MakeNowJust/heredoc"
	"github.com/goto/salt/log"
	"github.com/spf13/cobra"

	"github.com/lucasa/framework/config"
	"github.com/lucasa/framework/internal/server"
	"github.com/lucasa/framework/internal/store/postgres"
)

func cmdServe() *cobra.Command {
	return &cobra.Command{
		Use:     "serve",
		Short:   "Serve the HTTP API",
		Long:    heredoc.Doc(`Serve the HTTP API on the host and port defined in config.`),
		Aliases: []string{"server", "start"},
		Example: heredoc.Doc(`
			$ framework serve
		`),
		Args: cobra.NoArgs,
		Annotations: map[string]string{
			"group:core": "true",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			return runServer(cmd, cfg)
		},
	}
}

func runServer(cmd *cobra.Command, cfg config.Config) error {
	logger := initLogger(cfg.LogLevel)
	logger.Info("starting", "version", Version)

	pgClient, err := postgres.NewClient(postgresConfig(cfg))
	if err != nil {
		return err
	}
	defer pgClient.Close()

	router, err := server.NewRouter(server.Deps{
		Logger: logger,
		Config: cfg,
		Assets: postgres.NewListRepository(pgClient, "assets", "asset"),
	})
	if err != nil {
		return err
	}

	return server.Serve(cmd.Context(), logger, cfg, router)
}

func initLogger(logLevel string) *log.Logrus {
	return log.NewLogrus(
		log.LogrusWithLevel(logLevel),
		log.LogrusWithWriter(os.Stdout),
	)
}

func postgresConfig(cfg config.Config) postgres.Config {
	return postgres.Config{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		Name:     cfg.DBName,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		SSLMode:  cfg.DBSSLMode,
	}
}
