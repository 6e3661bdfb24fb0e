package cli

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/lucasa/framework/config"
	"github.com/lucasa/framework/internal/store/postgres"
)

func cmdMigrate() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run storage migrations",
		Example: heredoc.Doc(`
			$ framework migrate
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			logger := initLogger(cfg.LogLevel)

			client, err := postgres.NewClient(postgresConfig(cfg))
			if err != nil {
				return err
			}
			defer client.Close()

			ver, err := client.Migrate(postgresConfig(cfg))
			if err != nil {
				return err
			}
			logger.Info("migration done", "version", ver)
			return nil
		},
	}
}
