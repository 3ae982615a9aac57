package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/adminboard/internal/config"
	"github.com/rshade/adminboard/internal/dataset"
	"github.com/rshade/adminboard/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the adminboard CLI.
// It wires up configuration, logging and tracing, and adds one command group
// per entity plus the config group.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:           "adminboard",
		Short:         "Browse and edit the admin dashboard lists",
		Long:          "adminboard: filter, page, add, edit and delete Users and Products from the terminal",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			overlay, _ := cmd.Flags().GetString("config")
			if overlay != "" {
				config.InitGlobalConfigWithOverlay(cmd.Context(), overlay)
			} else {
				config.InitGlobalConfig()
			}

			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "YAML file merged section by section over the config file")
	cmd.PersistentFlags().Int("page-size", 0, "rows per page (0 = use config default)")
	cmd.PersistentFlags().String("id-strategy", "", "id strategy for new records: sequence, count, ulid, uuid")

	for _, name := range dataset.Names() {
		cmd.AddCommand(newEntityCmd(name))
	}
	cmd.AddCommand(newConfigCmd())

	return cmd
}

const rootCmdExample = `  # Show the first page of users
  adminboard users list

  # Search products and show page 2 as JSON
  adminboard products list --query electronics --page 2 --output json

  # Sort products by price, most expensive first
  adminboard products list --sort price:desc

  # Open the interactive page
  adminboard users tui

  # Replay a script of edits against the sample products
  adminboard products apply --file ops.yaml

  # Initialize configuration
  adminboard config init`

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigShowCmd(), NewConfigValidateCmd())
	return cmd
}
