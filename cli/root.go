package cli

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
)

func New() *cobra.Command {
	var rootCmd = &cobra.Command{
		Use:           "framework <command> [flags]",
		Short:         "List-query processing service",
		Long:          "REST list endpoints with sort, filter, pagination and field projection semantics.",
		SilenceErrors: true,
		SilenceUsage:  false,
		Example: heredoc.Doc(`
			$ framework serve
			$ framework migrate
		`),
		Annotations: map[string]string{
			"group": "core",
			"help:learn": heredoc.Doc(`
				Use 'framework <command> --help' for info about a command.
			`),
		},
	}

	rootCmd.AddCommand(
		cmdServe(),
		cmdMigrate(),
		cmdVersion(),
	)

	return rootCmd
}
