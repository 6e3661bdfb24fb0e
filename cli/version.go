package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version of the current build. Overridden by the build system.
var Version = "dev"

func cmdVersion() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(Version)
			return nil
		},
	}
}
