package main

import (
	"fmt"

	"github.com/iwvelando/terzaghi-bearing/pkg/output"
	"github.com/iwvelando/terzaghi-bearing/pkg/terzaghi"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newFactorsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "factors",
		Short: "Print the Terzaghi bearing capacity factor table",
		Long: `Prints Nc, Nq and Nγ for every tabulated friction angle (0-41 degrees).
The configuration file is optional for this command; it only supplies the
output format and logging settings.`,
		Args: cobra.NoArgs,
		RunE: runFactors,
	}
}

func runFactors(cmd *cobra.Command, _ []string) error {
	conf, err := loadConfiguration(cmd, true)
	if err != nil {
		return err
	}

	logger, err := initializeLogger(conf.Logging, "")
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	outputFormat, err := resolveOutputFormat(conf)
	if err != nil {
		logger.Error(err.Error(), zap.String("op", "factors"))
		return err
	}

	table := terzaghi.FactorTable()
	logger.Debug("printing factor table",
		zap.String("op", "factors"),
		zap.Int("rows", len(table)),
	)
	return output.WriteFactorTable(cmd.OutOrStdout(), outputFormat, table)
}
