package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/catcher/pkg/config"
	"github.com/arthur-debert/catcher/pkg/logging"
)

var (
	verbosity int
	cfgFile   string

	rootCmd = &cobra.Command{
		Use:   "catcher",
		Short: "Inspect and exercise exception-routing configuration",
		Long: `catcher routes exceptions to handlers registered by type, checking the
most recently registered handler first and matching by declared ancestry.

This tool validates a catcher configuration, shows the resolved type
hierarchy and reporting mask, and can raise test exceptions through a
configured registry.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command. Called once from main.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default searches catcher.toml / catcher.yaml)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(raiseCmd)
	rootCmd.AddCommand(configDefaultCmd)
}

var configDefaultCmd = &cobra.Command{
	Use:   "config-default",
	Short: "Print the built-in default configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := config.DefaultTOML()
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}
