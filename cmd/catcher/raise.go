package main

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/catcher/pkg/bridge"
	"github.com/arthur-debert/catcher/pkg/config"
	"github.com/arthur-debert/catcher/pkg/exc"
	"github.com/arthur-debert/catcher/pkg/logging"
	"github.com/arthur-debert/catcher/pkg/registry"
)

var (
	raiseType     string
	raiseMessage  string
	raiseCode     int
	raiseFile     string
	raiseLine     int
	raiseSeverity string
)

var raiseCmd = &cobra.Command{
	Use:   "raise",
	Short: "Raise a test exception through the configured registry",
	Long: `raise builds a registry and bridge from the configuration, installs the
interception hooks on an in-process host, and raises either a typed
exception (--type) or a raw runtime error (--severity) through it. The
default catch-all prints the standard diagnostic for anything unhandled.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logging.GetLogger("cmd.raise")

		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		mask, err := cfg.Mask()
		if err != nil {
			return err
		}
		hier, err := cfg.BuildHierarchy()
		if err != nil {
			return err
		}

		reg := registry.New()
		host := bridge.NewProcessHost(mask)
		br := bridge.New(reg, host,
			bridge.WithHierarchy(hier),
			bridge.WithOutput(cmd.OutOrStdout()),
			bridge.WithDefaultCatcher(cfg.DefaultHandler),
		)
		if err := br.Install(); err != nil {
			return err
		}
		defer func() {
			if err := br.Restore(); err != nil {
				logger.Warn().Err(err).Msg("Failed to restore interception")
			}
		}()

		if raiseSeverity != "" {
			sev, err := bridge.ParseSeverity(raiseSeverity)
			if err != nil {
				return err
			}
			logger.Info().Str("severity", sev.String()).Msg("Raising runtime error")
			host.RaiseError(sev, raiseMessage, raiseFile, raiseLine)
			return nil
		}

		e := hier.New(raiseType, raiseMessage).
			WithLocation(raiseFile, raiseLine).
			WithCode(raiseCode)
		logger.Info().Str("type", e.Type).Msg("Raising exception")
		host.RaiseException(e)
		return nil
	},
}

func init() {
	raiseCmd.Flags().StringVar(&raiseType, "type", exc.Root, "Exception type to raise")
	raiseCmd.Flags().StringVar(&raiseMessage, "message", "test exception", "Exception message")
	raiseCmd.Flags().IntVar(&raiseCode, "code", 0, "Numeric exception code")
	raiseCmd.Flags().StringVar(&raiseFile, "file", "", "Originating file")
	raiseCmd.Flags().IntVar(&raiseLine, "line", 0, "Originating line")
	raiseCmd.Flags().StringVar(&raiseSeverity, "severity", "", "Raise a raw runtime error with this severity instead")
}
