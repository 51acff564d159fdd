package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/catcher/pkg/config"
	"github.com/arthur-debert/catcher/pkg/exc"
	"github.com/arthur-debert/catcher/pkg/logging"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	dimStyle   = lipgloss.NewStyle().Faint(true)
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate configuration and show the resolved type hierarchy",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logging.GetLogger("cmd.check")

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
		logger.Debug().Int("types", len(cfg.Types)).Msg("Configuration loaded")

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, titleStyle.Render("Configuration OK"))
		fmt.Fprintf(out, "%s %s\n", labelStyle.Render("Reporting:"), mask)
		fmt.Fprintf(out, "%s %v\n", labelStyle.Render("Default handler:"), cfg.DefaultHandler)

		types := hier.Types()
		fmt.Fprintf(out, "%s %d declared\n", labelStyle.Render("Types:"), len(types))
		for _, name := range types {
			chain := append([]string{name}, hier.Chain(name)...)
			fmt.Fprintf(out, "  %s\n", dimStyle.Render(strings.Join(chain, " < ")))
		}
		if len(types) == 0 {
			fmt.Fprintf(out, "  %s\n", dimStyle.Render("(only "+exc.Root+")"))
		}
		return nil
	},
}
