package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/breakscan/chow"
	"github.com/arloliu/breakscan/dataset"
)

// defaultConfigFile is read when --config is not given and the file exists.
const defaultConfigFile = "breakscan.yaml"

// fileConfig holds the YAML-provided scan defaults. Explicitly set flags
// override these values.
type fileConfig struct {
	ValueColumn string  `yaml:"value_column"`
	TimeColumn  string  `yaml:"time_column"`
	TimeFormat  string  `yaml:"time_format"`
	MinSegment  int     `yaml:"min_segment"`
	Confidence  float64 `yaml:"confidence"`
	Critical    float64 `yaml:"critical_value"`
	Workers     int     `yaml:"workers"`
}

// defaultFileConfig mirrors the library defaults.
func defaultFileConfig() fileConfig {
	return fileConfig{
		ValueColumn: "value",
		TimeColumn:  "",
		TimeFormat:  "2006-01-02",
		MinSegment:  10,
		Confidence:  0.95,
		Critical:    0,
		Workers:     1,
	}
}

// loadFileConfig reads scan defaults from a YAML file. An absent file is an
// error only when the path was given explicitly; the implicit default path
// may be missing.
func loadFileConfig(path string, explicit bool) (fileConfig, error) {
	cfg := defaultFileConfig()
	if path == "" {
		path = defaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}

		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// csvOptions translates the config into dataset parsing options.
func (c *fileConfig) csvOptions() []dataset.CSVOption {
	opts := []dataset.CSVOption{
		dataset.WithValueColumn(c.ValueColumn),
	}
	if c.TimeColumn != "" {
		opts = append(opts, dataset.WithTimeColumn(c.TimeColumn))
	}
	if c.TimeFormat != "" {
		opts = append(opts, dataset.WithTimeFormat(c.TimeFormat))
	}

	return opts
}

// chowOptions translates the config into detection options.
func (c *fileConfig) chowOptions() []chow.Option {
	opts := []chow.Option{
		chow.WithMinSegment(c.MinSegment),
		chow.WithConfidence(c.Confidence),
		chow.WithWorkers(c.Workers),
	}
	if c.Critical > 0 {
		opts = append(opts, chow.WithCriticalValue(c.Critical))
	}

	return opts
}
