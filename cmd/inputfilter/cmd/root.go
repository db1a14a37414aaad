package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version information, set at build time.
var (
	Version = "dev"
	Commit  = "none"
)

// NewRootCommand creates the root command of the inputfilter CLI.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inputfilter",
		Short: "Filter and validate structured data against a definition",
		Long: `inputfilter validates JSON or YAML data against a declarative
definition of inputs, filters and validators.

Settings are read from INPUTFILTER_* environment variables and can be
overridden with flags.`,
		Version:       fmt.Sprintf("%s (commit: %s)", Version, Commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringSlice("env-file", nil, "load variables from these .env files")
	cmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn or error")
	cmd.PersistentFlags().String("log-format", "", "log format: text or json")
	cmd.PersistentFlags().String("locale", "", "translate messages into this language, e.g. de")
	cmd.PersistentFlags().String("translations", "", "JSON or YAML translations file")

	cmd.AddCommand(NewValidateCommand())

	return cmd
}
