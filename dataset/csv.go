package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/arloliu/breakscan/compress"
	"github.com/arloliu/breakscan/internal/options"
	"github.com/arloliu/breakscan/series"
)

// CSVConfig holds the parsing configuration applied by LoadCSV and ReadCSV.
type CSVConfig struct {
	// ValueColumn is the header name of the observation column.
	ValueColumn string
	// ValueIndex selects the observation column by position instead of by
	// name; negative resolves ValueColumn against the header.
	ValueIndex int
	// TimeColumn is the header name of the timestamp column; empty disables
	// timestamp parsing and keeps the file order.
	TimeColumn string
	// TimeFormat is the time.Parse layout for the timestamp column.
	TimeFormat string
	// Delimiter separates fields.
	Delimiter rune
	// Header reports whether the first row is a header row.
	Header bool
}

// CSVOption is a functional option for CSVConfig.
type CSVOption = options.Option[*CSVConfig]

// defaultCSVConfig returns the default config: comma-delimited input with a
// header row, observations in the "value" column, timestamps disabled.
func defaultCSVConfig() CSVConfig {
	return CSVConfig{
		ValueColumn: "value",
		ValueIndex:  -1,
		TimeFormat:  "2006-01-02",
		Delimiter:   ',',
		Header:      true,
	}
}

// WithValueColumn selects the observation column by header name.
func WithValueColumn(name string) CSVOption {
	return options.New(func(cfg *CSVConfig) error {
		if name == "" {
			return errors.New("value column name cannot be empty")
		}
		cfg.ValueColumn = name
		cfg.ValueIndex = -1

		return nil
	})
}

// WithValueIndex selects the observation column by zero-based position,
// bypassing the header lookup. Required for headerless input with more than
// one column.
func WithValueIndex(index int) CSVOption {
	return options.New(func(cfg *CSVConfig) error {
		if index < 0 {
			return fmt.Errorf("value column index must be non-negative, got %d", index)
		}
		cfg.ValueIndex = index

		return nil
	})
}

// WithTimeColumn selects the timestamp column by header name. Rows are
// sorted by the parsed timestamps before the observation index is assigned.
func WithTimeColumn(name string) CSVOption {
	return options.New(func(cfg *CSVConfig) error {
		if name == "" {
			return errors.New("time column name cannot be empty")
		}
		cfg.TimeColumn = name

		return nil
	})
}

// WithTimeFormat sets the time.Parse layout for the timestamp column.
// The default layout is "2006-01-02".
func WithTimeFormat(layout string) CSVOption {
	return options.New(func(cfg *CSVConfig) error {
		if layout == "" {
			return errors.New("time format cannot be empty")
		}
		cfg.TimeFormat = layout

		return nil
	})
}

// WithDelimiter sets the field delimiter. The default is a comma.
func WithDelimiter(delimiter rune) CSVOption {
	return options.New(func(cfg *CSVConfig) error {
		if delimiter == 0 || delimiter == '\n' || delimiter == '\r' {
			return fmt.Errorf("invalid field delimiter %q", delimiter)
		}
		cfg.Delimiter = delimiter

		return nil
	})
}

// WithoutHeader marks the input as headerless. The observation column then
// defaults to position 0 unless WithValueIndex overrides it, and time
// columns are unavailable.
func WithoutHeader() CSVOption {
	return options.NoError(func(cfg *CSVConfig) {
		cfg.Header = false
	})
}

// LoadCSV reads a delimited file into a Series.
//
// When the file name carries a compression extension (.gz, .zst, .s2, .lz4)
// the payload is decompressed before parsing. The series name is the file
// base name with the compression and content extensions trimmed, so
// "data/PCEPI.csv.gz" produces a series named "PCEPI".
//
// Parameters:
//   - path: File to read
//   - opts: Optional parsing configuration (column selection, time layout,
//     delimiter, header presence)
//
// Returns:
//   - *series.Series: Parsed series, sorted chronologically when a time
//     column is configured
//   - error: File access, decompression or parsing error
//
// Example:
//
//	s, err := dataset.LoadCSV("pcepi.csv",
//	    dataset.WithValueColumn("PCEPI"),
//	    dataset.WithTimeColumn("observation_date"),
//	)
func LoadCSV(path string, opts ...CSVOption) (*series.Series, error) {
	name := seriesName(path)

	if codec, ok := compress.ByExtension(filepath.Ext(path)); ok {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		data, err := codec.Decompress(raw)
		if err != nil {
			return nil, fmt.Errorf("decompress %s: %w", path, err)
		}

		return ReadCSV(bytes.NewReader(data), name, opts...)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	return ReadCSV(f, name, opts...)
}

// ReadCSV parses delimited observation data from a reader into a Series.
//
// Cleaning mirrors LoadCSV: rows whose value or timestamp cell is blank or a
// missing-data marker (NA, N/A, NaN, null) are dropped, any other cell that
// fails to parse is an error, and rows are sorted by parsed timestamp before
// the observation index is assigned.
//
// Parameters:
//   - r: Source of uncompressed delimited data
//   - name: Series name attached to the result
//   - opts: Optional parsing configuration
//
// Returns:
//   - *series.Series: Parsed series
//   - error: Configuration or parsing error
func ReadCSV(r io.Reader, name string, opts ...CSVOption) (*series.Series, error) {
	cfg := defaultCSVConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}
	if !cfg.Header {
		if cfg.TimeColumn != "" {
			return nil, errors.New("time column selection requires a header row")
		}
		if cfg.ValueIndex < 0 {
			cfg.ValueIndex = 0
		}
	}

	reader := csv.NewReader(r)
	reader.Comma = cfg.Delimiter
	reader.TrimLeadingSpace = true

	valueIdx := cfg.ValueIndex
	timeIdx := -1
	row := 0

	if cfg.Header {
		header, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty input, expected a header row")
		}
		if err != nil {
			return nil, fmt.Errorf("read header: %w", err)
		}
		row++

		if valueIdx < 0 {
			valueIdx = findColumn(header, cfg.ValueColumn)
			if valueIdx < 0 {
				return nil, fmt.Errorf("value column %q not found in header %v", cfg.ValueColumn, header)
			}
		}
		if cfg.TimeColumn != "" {
			timeIdx = findColumn(header, cfg.TimeColumn)
			if timeIdx < 0 {
				return nil, fmt.Errorf("time column %q not found in header %v", cfg.TimeColumn, header)
			}
		}
	}

	timed := timeIdx >= 0

	var values []float64
	var obs []observation

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", row+1, err)
		}
		row++

		if valueIdx >= len(record) {
			return nil, fmt.Errorf("row %d has %d fields, value column is at index %d", row, len(record), valueIdx)
		}
		valueCell := strings.TrimSpace(record[valueIdx])

		if timed {
			timeCell := strings.TrimSpace(record[timeIdx])
			if isMissing(valueCell) || isMissing(timeCell) {
				continue
			}
			ts, err := time.Parse(cfg.TimeFormat, timeCell)
			if err != nil {
				return nil, fmt.Errorf("row %d: parse time %q: %w", row, timeCell, err)
			}
			v, err := parseValue(valueCell, row)
			if err != nil {
				return nil, err
			}
			obs = append(obs, observation{time: ts, value: v})

			continue
		}

		if isMissing(valueCell) {
			continue
		}
		v, err := parseValue(valueCell, row)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}

	if !timed {
		return series.New(name, values)
	}

	slices.SortStableFunc(obs, func(a, b observation) int {
		return a.time.Compare(b.time)
	})

	values = make([]float64, len(obs))
	times := make([]time.Time, len(obs))
	for i, o := range obs {
		values[i] = o.value
		times[i] = o.time
	}

	return series.NewTimed(name, values, times)
}

// observation pairs one parsed row's timestamp and value for sorting.
type observation struct {
	time  time.Time
	value float64
}

// findColumn returns the index of the named column, or -1. Header cells are
// compared after trimming surrounding whitespace.
func findColumn(header []string, name string) int {
	for i, cell := range header {
		if strings.TrimSpace(cell) == name {
			return i
		}
	}

	return -1
}

// isMissing reports whether a cell is a missing-data marker.
func isMissing(cell string) bool {
	switch strings.ToLower(cell) {
	case "", "na", "n/a", "nan", "null":
		return true
	}

	return false
}

// parseValue parses an observation cell, rejecting non-finite values.
func parseValue(cell string, row int) (float64, error) {
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, fmt.Errorf("row %d: parse value %q: %w", row, cell, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("row %d: non-finite value %q", row, cell)
	}

	return v, nil
}

// seriesName derives a series name from a file path by trimming the
// compression extension, then the content extension.
func seriesName(path string) string {
	base := filepath.Base(path)
	if ext := filepath.Ext(base); compress.TypeByExtension(ext) != compress.TypeNone {
		base = strings.TrimSuffix(base, ext)
	}

	return strings.TrimSuffix(base, filepath.Ext(base))
}
