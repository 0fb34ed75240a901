package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/iwvelando/terzaghi-bearing/pkg/constants"
	"github.com/iwvelando/terzaghi-bearing/pkg/format"
	"github.com/iwvelando/terzaghi-bearing/pkg/terzaghi"
	"gopkg.in/yaml.v3"
)

// WriteFactorTable renders the bearing capacity factor table in the named
// output format.
func WriteFactorTable(w io.Writer, outputFormat string, table []terzaghi.AngleFactors) error {
	switch outputFormat {
	case constants.OutputFormatPretty:
		if _, err := heading.Fprintf(w, "--- Terzaghi bearing capacity factors ---\n"); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%-5s | %-7s | %-7s | %-7s\n", "φ (°)", "Nc", "Nq", "Nγ"); err != nil {
			return err
		}
		for _, row := range table {
			if _, err := fmt.Fprintf(w, "%-5d | %-7s | %-7s | %-7s\n",
				row.Angle, format.Plain(row.Nc), format.Plain(row.Nq), format.Plain(row.Ngamma)); err != nil {
				return err
			}
		}
		return nil
	case constants.OutputFormatCSV:
		cw := csv.NewWriter(w)
		if err := cw.Write([]string{"angle", "nc", "nq", "ngamma"}); err != nil {
			return err
		}
		for _, row := range table {
			record := []string{
				strconv.Itoa(row.Angle),
				strconv.FormatFloat(row.Nc, 'f', -1, 64),
				strconv.FormatFloat(row.Nq, 'f', -1, 64),
				strconv.FormatFloat(row.Ngamma, 'f', -1, 64),
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	case constants.OutputFormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(table)
	case constants.OutputFormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(table); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unsupported output format %s", outputFormat)
}
