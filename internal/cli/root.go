// Package cli holds the langshare command tree.
package cli

import (
	"context"

	"langshare/internal/languages"
	"langshare/internal/shared/configs"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// ServiceFactory builds the LanguageService a command runs against.
type ServiceFactory func(ctx context.Context, config *configs.Config) languages.LanguageService

// NewRootCmd returns the langshare root command with all subcommands attached.
func NewRootCmd(newService ServiceFactory) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "langshare",
		Short:         "Language composition of GitHub users",
		Long:          `Report the language composition of a GitHub user's owned repositories as byte counts and shares that sum to exactly one.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// A missing .env is fine, GITHUB_TOKEN may come from the environment
			_ = godotenv.Load()
		},
	}

	rootCmd.AddCommand(newReportCmd(newService))
	return rootCmd
}
