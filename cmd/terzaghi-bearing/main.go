package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/iwvelando/terzaghi-bearing/internal/analysis"
	"github.com/iwvelando/terzaghi-bearing/internal/config"
	"github.com/iwvelando/terzaghi-bearing/pkg/constants"
	"github.com/iwvelando/terzaghi-bearing/pkg/output"
	"github.com/iwvelando/terzaghi-bearing/pkg/report"
	"github.com/iwvelando/terzaghi-bearing/pkg/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info" // Default to info level
	}

	// Parse log level
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	// Determine output format
	format := loggingConfig.Format
	if format == "" {
		format = "json" // Default to JSON for production
	}

	// Configure encoder
	var config zap.Config
	switch format {
	case "console":
		config = zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		config = zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	// Configure output file if specified
	if loggingConfig.OutputFile != "" {
		// Ensure the directory exists
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		// Test if we can create/write to the file
		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		config.OutputPaths = []string{loggingConfig.OutputFile}
		config.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return config.Build()
}

// resolveOutputFormat applies the pretty default and validates the result.
func resolveOutputFormat(conf *config.Configuration) (string, error) {
	outputFormat := conf.Output.Format
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		return "", err
	}
	return outputFormat, nil
}

// loadConfiguration loads the config file named by the --config flag. When
// allowMissing is set a missing file is treated as empty.
func loadConfiguration(cmd *cobra.Command, allowMissing bool) (*config.Configuration, error) {
	configLocation, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	load := config.LoadConfiguration
	if allowMissing {
		load = config.LoadOptionalConfiguration
	}

	conf, err := load(configLocation, cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration at %s: %w", configLocation, err)
	}
	return conf, nil
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "terzaghi-bearing",
		Short: "Ultimate bearing capacity of shallow foundations by the Terzaghi method",
		Long: `Computes the ultimate bearing capacity of a shallow foundation from the
footing described in the configuration file. Any foundation value can be
overridden on the command line or with TERZAGHI_* environment variables.`,
		Example: `  # Compute from config.yaml
  terzaghi-bearing

  # Override the footing width and print JSON
  terzaghi-bearing --config site.yaml --width 2.5 --output-format json

  # Also write a PDF calculation sheet
  terzaghi-bearing --pdf out/f1.pdf`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE:         runCompute,
	}

	pf := root.PersistentFlags()
	pf.String("config", constants.DefaultConfigFile, "path to configuration file")
	pf.String("output-format", "", "type of output override: pretty, csv, json, yaml")
	pf.String("log-level", "", "log level override (debug, info, warn, error)")

	f := root.Flags()
	f.String("unit-system", "", "unit system: imperial or si")
	f.Float64("unit-weight-water", 0, "unit weight of water in the unit system's unit weight")
	f.String("name", "", "footing name")
	f.Float64("cohesion", 0, "soil cohesion")
	f.Int("friction-angle", 0, "soil friction angle in whole degrees (0-41)")
	f.Float64("depth", 0, "depth of the footing base below ground")
	f.Float64("unit-weight", 0, "total unit weight of the soil")
	f.Float64("width", 0, "footing width")
	f.String("shape", "", "footing shape: square, continuous or circular")
	f.Float64("groundwater-depth", 0, "depth of the water table below ground")
	f.Float64("factor-of-safety", 0, "factor of safety for the allowable bearing capacity")
	f.String("pdf", "", "write a PDF calculation sheet to this path")
	f.String("xlsx", "", "write an XLSX workbook to this path")

	root.AddCommand(newFactorsCommand())
	return root
}

func runCompute(cmd *cobra.Command, _ []string) error {
	conf, err := loadConfiguration(cmd, false)
	if err != nil {
		return err
	}

	// Initialize logging based on config; the log-level flag is already bound.
	logger, err := initializeLogger(conf.Logging, "")
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	outputFormat, err := resolveOutputFormat(conf)
	if err != nil {
		logger.Error(err.Error(), zap.String("op", "main"))
		return err
	}

	// Validate configuration and display any warnings
	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	a, err := analysis.GetBearingCapacity(logger, *conf)
	if err != nil {
		logger.Error("failed to compute bearing capacity",
			zap.String("op", "main"),
			zap.Error(err),
		)
		return err
	}

	if err := output.Write(cmd.OutOrStdout(), outputFormat, a); err != nil {
		return err
	}

	if err := report.Save(logger, conf.Report, a); err != nil {
		logger.Error("failed to write reports",
			zap.String("op", "main"),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
