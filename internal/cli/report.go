package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"langshare/internal/models"
	"langshare/internal/shared/configs"
	"langshare/internal/shared/loggers"

	"github.com/spf13/cobra"
)

const (
	flagConfig    = "config"
	flagPrecision = "precision"
	flagPasses    = "passes"
	flagJSON      = "json"
	flagLogLevel  = "log-level"
)

type reportOptions struct {
	configPath string
	precision  int
	passes     int
	json       bool
	logLevel   string
}

func newReportCmd(newService ServiceFactory) *cobra.Command {
	options := &reportOptions{}

	reportCmd := &cobra.Command{
		Use:   "report <user>",
		Short: "Print the language report of a GitHub user",
		Long:  `Fetch the owned, non-archived repositories of a GitHub user and print per-language byte counts and normalized shares.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, newService, options, args[0])
		},
	}

	reportCmd.Flags().StringVar(&options.configPath, flagConfig, "./configs/configs.yml", "Path to the config file")
	reportCmd.Flags().IntVar(&options.precision, flagPrecision, 0, "Decimal places of every share (overrides shares.precision)")
	reportCmd.Flags().IntVar(&options.passes, flagPasses, 0, "Redistribution passes (overrides shares.max_passes)")
	reportCmd.Flags().BoolVar(&options.json, flagJSON, false, "Print the report as JSON")
	reportCmd.Flags().StringVar(&options.logLevel, flagLogLevel, "warn", "Log level of diagnostics written to stderr")

	return reportCmd
}

func runReport(cmd *cobra.Command, newService ServiceFactory, options *reportOptions, login string) error {
	config, err := configs.LoadConfig(options.configPath)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed(flagPrecision) {
		config.Shares.Precision = options.precision
	}
	if cmd.Flags().Changed(flagPasses) {
		config.Shares.MaxPasses = options.passes
	}

	logger, err := loggers.NewWithWriter(options.logLevel, loggers.FormatConsole, os.Stderr)
	if err != nil {
		return fmt.Errorf("invalid --%s %q: %w", flagLogLevel, options.logLevel, err)
	}
	ctx := logger.WithContext(cmd.Context())

	report, err := newService(ctx, config).UserLanguages(ctx, login)
	if err != nil {
		return err
	}

	if options.json {
		return writeReportJSON(cmd.OutOrStdout(), report)
	}
	return writeReportTable(cmd.OutOrStdout(), report, config.Shares.Precision)
}

func writeReportJSON(w io.Writer, report *models.LanguageReport) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}

func writeReportTable(w io.Writer, report *models.LanguageReport, precision int) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "LANGUAGE\tBYTES\tSHARE\t")
	for _, language := range report.Languages {
		fmt.Fprintf(tw, "%s\t%d\t%s\t\n",
			language.Name,
			language.Count,
			strconv.FormatFloat(language.Share, 'f', precision, 64))
	}
	fmt.Fprintf(tw, "TOTAL\t%d\t\t\n", report.Total)
	return tw.Flush()
}
