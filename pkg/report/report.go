package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/iwvelando/terzaghi-bearing/internal/analysis"
	"github.com/iwvelando/terzaghi-bearing/internal/config"
	"go.uber.org/zap"
)

// Save writes every report named in conf. Empty paths are skipped.
func Save(logger *zap.Logger, conf config.ReportConfig, a *analysis.Analysis) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	targets := []struct {
		path   string
		render func(io.Writer, *analysis.Analysis) error
	}{
		{conf.PDF, WritePDF},
		{conf.XLSX, WriteXLSX},
	}

	for _, target := range targets {
		if target.path == "" {
			continue
		}
		if err := saveFile(target.path, a, target.render); err != nil {
			return err
		}
		logger.Info("wrote report",
			zap.String("op", "report.Save"),
			zap.String("path", target.path),
		)
	}
	return nil
}

func saveFile(path string, a *analysis.Analysis, render func(io.Writer, *analysis.Analysis) error) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create report directory %s: %w", dir, err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report %s: %w", path, err)
	}
	defer func() {
		if closeErr := file.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("failed to close report %s: %w", path, closeErr)
		}
	}()

	if err := render(file, a); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}
	return nil
}
