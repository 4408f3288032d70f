package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kredita/kredita/internal/tui"
	"github.com/kredita/kredita/internal/tui/themes"
)

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive credit analyzer dashboard",
		Long: `Open the full-screen dashboard: paste bank SMS or statement text,
parse it into transactions, and calculate your credit-health score.

Shortcuts: Ctrl+Enter or Ctrl+S to score, Ctrl+P to parse only,
F1-F3 to load sample messages, Ctrl+H for the full key list.`,
		RunE: runDashboard,
	}
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	return tui.Run(cmd.Context(), tui.Config{
		BaseURL: viper.GetString("api.url"),
		Theme:   themes.Default,
	})
}
