package dataset

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/arloliu/breakscan/chow"
	"github.com/arloliu/breakscan/compress"
)

// WriteCurveCSV writes the per-candidate scan curve as a CSV table with the
// columns breakpoint, f_stat and p_value, one row per evaluated candidate in
// ascending breakpoint order.
//
// A compression extension on the path (.gz, .zst, .s2, .lz4) compresses the
// payload before writing.
//
// Parameters:
//   - path: Destination file
//   - result: Scan result to export
//
// Returns:
//   - error: Encoding or file system error
func WriteCurveCSV(path string, result *chow.ScanResult) error {
	if result == nil {
		return errors.New("cannot export nil scan result")
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	records := make([][]string, 0, len(result.Candidates)+1)
	records = append(records, []string{"breakpoint", "f_stat", "p_value"})
	for _, c := range result.Candidates {
		records = append(records, []string{
			strconv.Itoa(c.Breakpoint),
			strconv.FormatFloat(c.F, 'g', -1, 64),
			strconv.FormatFloat(c.PValue, 'g', -1, 64),
		})
	}

	if err := w.WriteAll(records); err != nil {
		return fmt.Errorf("encode scan curve: %w", err)
	}

	return writeFile(path, buf.Bytes())
}

// WriteReportJSON writes a detection report as indented JSON.
//
// The scan curve is not part of the report payload; export it separately
// with WriteCurveCSV. A compression extension on the path compresses the
// payload before writing.
//
// Parameters:
//   - path: Destination file
//   - report: Report to export
//
// Returns:
//   - error: Encoding or file system error
func WriteReportJSON(path string, report *chow.Report) error {
	if report == nil {
		return errors.New("cannot export nil report")
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	data = append(data, '\n')

	return writeFile(path, data)
}

// writeFile writes data to path, compressing first when the path carries a
// compression extension.
func writeFile(path string, data []byte) error {
	if codec, ok := compress.ByExtension(filepath.Ext(path)); ok {
		compressed, err := codec.Compress(data)
		if err != nil {
			return fmt.Errorf("compress %s: %w", path, err)
		}
		data = compressed
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}
