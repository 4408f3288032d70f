package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kredita/kredita/internal/analytics"
	"github.com/kredita/kredita/internal/api"
	"github.com/kredita/kredita/internal/model"
	"github.com/kredita/kredita/internal/tui/themes"
)

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [file...]",
		Short: "Score message files without opening the dashboard",
		Long: `Submit one or more text files of bank SMS / statement messages to the
analysis service and print the score and category breakdown for each.
With no arguments the text is read from stdin.`,
		RunE: runAnalyze,
	}

	cmd.Flags().Bool("parse-only", false, "extract transactions without scoring")
	cmd.Flags().Bool("json", false, "print raw JSON instead of formatted output")
	_ = viper.BindPFlag("analyze.parse_only", cmd.Flags().Lookup("parse-only"))
	_ = viper.BindPFlag("analyze.json", cmd.Flags().Lookup("json"))

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	client := api.NewClient(viper.GetString("api.url"))
	parseOnly := viper.GetBool("analyze.parse_only")
	asJSON := viper.GetBool("analyze.json")

	if err := client.Health(cmd.Context()); err != nil {
		slog.Warn("analysis service health check failed", "url", client.BaseURL(), "error", err)
	}

	if len(args) == 0 {
		text, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		return analyzeOne(cmd, client, "stdin", string(text), parseOnly, asJSON)
	}

	var bar *progressbar.ProgressBar
	if len(args) > 1 && !asJSON {
		bar = progressbar.NewOptions(len(args),
			progressbar.OptionSetWriter(cmd.ErrOrStderr()),
			progressbar.OptionShowCount(),
			progressbar.OptionSetWidth(40),
			progressbar.OptionSetDescription("Analyzing files..."),
		)
	}

	for _, path := range args {
		text, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		if err := analyzeOne(cmd, client, path, string(text), parseOnly, asJSON); err != nil {
			return err
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if bar != nil {
		fmt.Fprintln(cmd.ErrOrStderr())
	}
	return nil
}

func analyzeOne(cmd *cobra.Command, client *api.Client, name, text string, parseOnly, asJSON bool) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	if parseOnly {
		txns, err := client.Parse(ctx, text)
		if err != nil {
			return fmt.Errorf("%s: %s", name, api.UserMessage("parse", err))
		}
		if asJSON {
			return printJSON(out, map[string]any{"file": name, "transactions": txns})
		}
		fmt.Fprintln(out, renderReport(name, txns, nil))
		return nil
	}

	txns, result, err := client.Score(ctx, text)
	if err != nil {
		return fmt.Errorf("%s: %s", name, api.UserMessage("score", err))
	}
	if asJSON {
		return printJSON(out, map[string]any{"file": name, "transactions": txns, "result": result})
	}
	fmt.Fprintln(out, renderReport(name, txns, result))
	return nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderReport(name string, txns []model.Transaction, result *model.ScoreResult) string {
	theme := themes.Default
	var b strings.Builder

	if result != nil {
		label := model.ScoreLabel(result.Score)
		score := lipglossScore(theme, result.Score)
		b.WriteString(fmt.Sprintf("Score: %s  %s\n", score, theme.Subtitle.Render(label)))
		b.WriteString(fmt.Sprintf("Income ₹%s  Expense ₹%s  EMI ₹%s  Savings ₹%s\n",
			analytics.FormatAmount(result.Metrics.Income),
			analytics.FormatAmount(result.Metrics.Expense),
			analytics.FormatAmount(result.Metrics.EMI),
			analytics.FormatAmount(result.Metrics.Savings)))
	}

	groups, total := analytics.Breakdown(txns)
	b.WriteString(fmt.Sprintf("%d transactions, ₹%s total\n", len(txns), analytics.FormatAmount(total)))
	for _, g := range groups {
		pct := analytics.PercentOf(g.Value, total)
		b.WriteString(fmt.Sprintf("  %-14s ₹%s (%.1f%%)\n", g.Name, analytics.FormatAmount(g.Value), pct))
	}

	return theme.BorderedBox.Render(strings.TrimRight(
		theme.Bold.Render(name)+"\n"+b.String(), "\n"))
}

func lipglossScore(theme themes.Theme, score int) string {
	return theme.Bold.Foreground(theme.ScoreColor(score)).Render(fmt.Sprintf("%d/100", score))
}
