package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mybank-dev/mybank/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "mybank",
		Short:   "Secure & simple single-account banking session",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newRunCommand())

	return rootCmd
}
