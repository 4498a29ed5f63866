package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/arloliu/breakscan/chow"
	"github.com/arloliu/breakscan/dataset"
)

var (
	// Global flags
	verbose bool
	cfgFile string

	// Scan flags
	valueColumn string
	timeColumn  string
	timeFormat  string
	minSegment  int
	confidence  float64
	critical    float64
	workers     int
	curvePath   string
	reportPath  string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "breakscan",
	Short: "breakscan - structural break detection for time series",
	Long: `breakscan detects structural breaks in univariate time series using
the Chow test.

It scans every admissible breakpoint, fits regression lines to the pooled
sample and to both segments, and judges the largest F-statistic against a
critical value from the F-distribution.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// scanCmd runs break detection over one CSV file
var scanCmd = &cobra.Command{
	Use:   "scan [file]",
	Short: "Detect the structural break in a CSV series",
	Long: `Loads a series from a delimited file, scans all candidate breakpoints
and prints the detection report.

Compressed inputs (.gz, .zst, .s2, .lz4) are decompressed transparently, and
the --curve and --report outputs are compressed the same way when their paths
carry a compression extension.

Example:
  breakscan scan PCEPI.csv --value PCEPI --time observation_date \
      --curve curve.csv --report report.json`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: "+defaultConfigFile+" if present)")

	// Scan flags
	scanCmd.Flags().StringVar(&valueColumn, "value", "", "Value column name")
	scanCmd.Flags().StringVar(&timeColumn, "time", "", "Time column name (enables chronological sorting)")
	scanCmd.Flags().StringVar(&timeFormat, "time-format", "", "Time column layout in Go reference time form")
	scanCmd.Flags().IntVar(&minSegment, "min-segment", 0, "Minimum observations on each side of a breakpoint")
	scanCmd.Flags().Float64Var(&confidence, "confidence", 0, "Confidence level for the derived critical value")
	scanCmd.Flags().Float64Var(&critical, "critical", 0, "Explicit critical value (overrides --confidence)")
	scanCmd.Flags().IntVar(&workers, "workers", 0, "Goroutines evaluating candidates")
	scanCmd.Flags().StringVar(&curvePath, "curve", "", "Write the per-candidate F curve to this CSV file")
	scanCmd.Flags().StringVar(&reportPath, "report", "", "Write the detection report to this JSON file")

	rootCmd.AddCommand(scanCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runScan loads the series, runs detection and writes the requested outputs.
func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := loadFileConfig(cfgFile, cmd.Flags().Changed("config"))
	if err != nil {
		return err
	}
	applyFlagOverrides(cmd, &cfg)

	path := args[0]
	logger.Debug("loading series",
		zap.String("path", path),
		zap.String("value_column", cfg.ValueColumn),
		zap.String("time_column", cfg.TimeColumn),
	)

	s, err := dataset.LoadCSV(path, cfg.csvOptions()...)
	if err != nil {
		return fmt.Errorf("load series: %w", err)
	}
	logger.Info("series loaded",
		zap.String("series", s.Name()),
		zap.Int("n", s.Len()),
		zap.Bool("timed", s.Timed()),
	)

	report, err := chow.Detect(s, cfg.chowOptions()...)
	if err != nil {
		return fmt.Errorf("detect break: %w", err)
	}
	logger.Info("scan finished",
		zap.Bool("detected", report.Decision.Detected),
		zap.Int("breakpoint", report.Decision.Breakpoint),
		zap.Float64("f_stat", report.Decision.F),
		zap.Float64("critical", report.Decision.Critical),
	)

	fmt.Println(report)

	if curvePath != "" {
		if err := dataset.WriteCurveCSV(curvePath, report.Scan); err != nil {
			return fmt.Errorf("write curve: %w", err)
		}
		logger.Info("curve written", zap.String("path", curvePath))
	}
	if reportPath != "" {
		if err := dataset.WriteReportJSON(reportPath, report); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		logger.Info("report written", zap.String("path", reportPath))
	}

	return nil
}

// applyFlagOverrides layers explicitly set flags over the file config.
func applyFlagOverrides(cmd *cobra.Command, cfg *fileConfig) {
	flags := cmd.Flags()
	if flags.Changed("value") {
		cfg.ValueColumn = valueColumn
	}
	if flags.Changed("time") {
		cfg.TimeColumn = timeColumn
	}
	if flags.Changed("time-format") {
		cfg.TimeFormat = timeFormat
	}
	if flags.Changed("min-segment") {
		cfg.MinSegment = minSegment
	}
	if flags.Changed("confidence") {
		cfg.Confidence = confidence
	}
	if flags.Changed("critical") {
		cfg.Critical = critical
	}
	if flags.Changed("workers") {
		cfg.Workers = workers
	}
}
