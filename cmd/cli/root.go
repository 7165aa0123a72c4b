package main

import (
	"fmt"
	"io"
	"os"
	"strategyalign/cmd"
	"strategyalign/internal/domain"
	"strategyalign/internal/logger"
	"strategyalign/internal/util"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

const (
	format_Table = "table"
	format_Json  = "json"
	format_Csv   = "csv"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "strategyalign",
		Short: "Measure how a portfolio lines up with a set of strategy screens",
		Long: `strategyalign joins a portfolio of holdings onto a reference matrix of
per-symbol strategy signals and reports which strategies the portfolio
leans towards, how holdings overlap across strategies, and which holdings
had no reference data.`,
		SilenceUsage: true,
	}
	root.AddCommand(newAnalyzeCmd(), newServeCmd())
	return root
}

func newAnalyzeCmd() *cobra.Command {
	var (
		portfolioPath string
		referencePath string
		configPath    string
		format        string
		exportTable   string
	)

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "Score a portfolio csv against a reference csv",
		Long: `Score a portfolio csv against a reference csv.

Examples:
  strategyalign analyze --portfolio holdings.csv --reference screens.csv
  strategyalign analyze --portfolio holdings.csv --reference screens.csv --format json
  strategyalign analyze --portfolio holdings.csv --reference screens.csv --format csv --table overlap`,
		RunE: func(c *cobra.Command, args []string) error {
			return runAnalyze(c, analyzeOptions{
				PortfolioPath: portfolioPath,
				ReferencePath: referencePath,
				ConfigPath:    configPath,
				Format:        format,
				ExportTable:   exportTable,
			})
		},
	}

	analyzeCmd.Flags().StringVar(&portfolioPath, "portfolio", "", "Path to the portfolio csv")
	analyzeCmd.Flags().StringVar(&referencePath, "reference", "", "Path to the reference matrix csv")
	analyzeCmd.Flags().StringVar(&configPath, "config", "", "Path to a yaml config, defaults to the ALIGN_ENV config")
	analyzeCmd.Flags().StringVar(&format, "format", format_Table, "Output format: table, json, csv")
	analyzeCmd.Flags().StringVar(&exportTable, "table", "summary", "Table to write with --format csv: summary, overlap, unmatched")
	analyzeCmd.MarkFlagRequired("portfolio")
	analyzeCmd.MarkFlagRequired("reference")

	return analyzeCmd
}

func newServeCmd() *cobra.Command {
	var (
		port       int
		configPath string
	)

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the http api",
		RunE: func(c *cobra.Command, args []string) error {
			apiHandler, cfg, err := cmd.InitializeDependencies(configPath)
			if err != nil {
				return err
			}
			if c.Flags().Changed("port") {
				cfg.Api.Port = port
			}
			logger.FromContext(c.Context()).Infow("starting api", "port", cfg.Api.Port)
			return apiHandler.StartApi(cfg.Api.Port)
		},
	}

	serveCmd.Flags().IntVar(&port, "port", 3009, "Port to listen on, overrides config")
	serveCmd.Flags().StringVar(&configPath, "config", "", "Path to a yaml config, defaults to the ALIGN_ENV config")

	return serveCmd
}

type analyzeOptions struct {
	PortfolioPath string
	ReferencePath string
	ConfigPath    string
	Format        string
	ExportTable   string
}

func runAnalyze(c *cobra.Command, opts analyzeOptions) error {
	cfg, err := util.LoadConfig(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	alignmentApp, err := cmd.InitializeAlignmentApp(*cfg)
	if err != nil {
		return err
	}

	portfolio, err := os.Open(opts.PortfolioPath)
	if err != nil {
		return fmt.Errorf("failed to open portfolio: %w", err)
	}
	defer portfolio.Close()
	reference, err := os.Open(opts.ReferencePath)
	if err != nil {
		return fmt.Errorf("failed to open reference: %w", err)
	}
	defer reference.Close()

	result, err := alignmentApp.AnalyzeCsv(c.Context(), portfolio, reference)
	if err != nil {
		return err
	}

	out := c.OutOrStdout()
	switch strings.ToLower(opts.Format) {
	case format_Json:
		_, err = fmt.Fprintln(out, util.PrettyJSON(result))
		return err
	case format_Csv:
		table, err := domain.NewExportTable(opts.ExportTable)
		if err != nil {
			return err
		}
		csv, err := alignmentApp.Export(*result, *table)
		if err != nil {
			return err
		}
		_, err = io.WriteString(out, csv)
		return err
	case format_Table:
		return renderTable(out, *result)
	default:
		return fmt.Errorf("unknown format %s", opts.Format)
	}
}

func renderTable(out io.Writer, result domain.AlignmentResult) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "RANK\tSTRATEGY\tQUALIFYING\tQUALIFYING %\tWEIGHTED %\tSCORE\tBADGE")
	for _, s := range result.Summaries {
		fmt.Fprintf(w, "%d\t%s\t%d\t%v\t%v\t%v\t%s\n",
			s.Rank,
			s.Strategy,
			s.QualifyingCount,
			s.QualifyingPercent,
			s.WeightedPercent,
			s.AlignmentScore,
			s.Badge,
		)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "STRATEGIES QUALIFIED\tHOLDINGS")
	for _, b := range result.Overlap {
		fmt.Fprintf(w, "%d\t%d\n", b.StrategiesQualified, b.HoldingCount)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "weight source: %s, holdings: %d, unmatched: %d\n", result.WeightSource, result.TotalHoldings, len(result.Unmatched))
	for _, u := range result.Unmatched {
		fmt.Fprintf(w, "  %s\t%v\n", u.Symbol, u.Weight)
	}

	if result.Insight != nil {
		fmt.Fprintln(w)
		fmt.Fprintln(w, result.Insight.Summary)
	}

	return w.Flush()
}
