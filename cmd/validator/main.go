package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/eshaffer321/freshbooks-go/internal/config"
	"github.com/eshaffer321/freshbooks-go/pkg/freshbooks"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "validator",
		Short:        "Run read-only smoke checks against a live FreshBooks account",
		SilenceUsage: true,
	}
	cmd.AddCommand(newRunCommand(), newChecksCommand())
	return cmd
}

func newRunCommand() *cobra.Command {
	var (
		checkList string
		outputDir string
		envFile   string
		verbose   bool
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the validation checks and write a JSON report",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := defaultCheckNames()
			if checkList != "" {
				names = strings.Split(checkList, ",")
			}

			client, err := newClient(envFile, verbose)
			if err != nil {
				return err
			}
			defer client.Close()

			if err := os.MkdirAll(outputDir, 0755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}

			v := NewValidator(client, cmd.OutOrStdout(), verbose)
			report := v.Run(cmd.Context(), names)

			reportPath := filepath.Join(outputDir, fmt.Sprintf("validation_report_%d.json", time.Now().Unix()))
			if err := saveReport(report, reportPath); err != nil {
				return fmt.Errorf("failed to save report: %w", err)
			}
			printSummary(cmd.OutOrStdout(), report, reportPath)

			if report.Failed > 0 {
				return fmt.Errorf("%d of %d checks failed", report.Failed, report.TotalTests)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&checkList, "checks", "", "Comma-separated list of checks to run (empty for all)")
	cmd.Flags().StringVar(&outputDir, "output", "./validation_results", "Output directory for results")
	cmd.Flags().StringVar(&envFile, "env", "", "Path to a .env file")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Verbose output")
	return cmd
}

func newChecksCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "checks",
		Short: "List the available checks",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, c := range checks {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-14s %s\n", c.Name, c.Description); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newClient(envFile string, verbose bool) (*freshbooks.Client, error) {
	var paths []string
	if envFile != "" {
		paths = append(paths, envFile)
	}
	cfg, err := config.Load(paths...)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var out io.Writer = io.Discard
	if verbose {
		out = os.Stderr
	}
	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: cfg.LogLevel}))

	return freshbooks.NewClient(&freshbooks.ClientOptions{
		Token:       cfg.FreshBooks.AccessToken,
		AccountID:   cfg.FreshBooks.AccountID,
		BusinessID:  cfg.FreshBooks.BusinessID,
		BaseURL:     cfg.FreshBooks.APIURL,
		Timeout:     cfg.FreshBooks.Timeout,
		Logger:      logger,
		RetryConfig: cfg.RetryConfig(),
		RateLimiter: freshbooks.NewIntervalLimiter(cfg.FreshBooks.RequestInterval),
		SentryDSN:   cfg.Sentry.DSN,
	})
}
