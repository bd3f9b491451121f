package experiment

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tspcompare/tsp"
)

// Default batch shape: groups of 10 and 11 cities, 50 instances each.
const (
	DefaultMinNodes = 10
	DefaultMaxNodes = 11
	DefaultTrials   = 50
	DefaultSeed     = 1
	DefaultCSVPath  = "mainRes.csv"
)

// Config describes one batch run. Zero paths disable the matching sink.
type Config struct {
	MinNodes int     `yaml:"min_nodes"`
	MaxNodes int     `yaml:"max_nodes"`
	Trials   int     `yaml:"trials"`
	Workers  int     `yaml:"workers"`
	Seed     int64   `yaml:"seed"`
	RelTol   float64 `yaml:"rel_tol"`

	CSVPath     string `yaml:"csv_path"`
	FallbackDir string `yaml:"fallback_dir"`
	SQLitePath  string `yaml:"sqlite_path"`
}

// DefaultConfig returns the stock batch: one worker per CPU, CSV output to
// DefaultCSVPath falling back to the working directory, no database.
func DefaultConfig() Config {
	return Config{
		MinNodes:    DefaultMinNodes,
		MaxNodes:    DefaultMaxNodes,
		Trials:      DefaultTrials,
		Workers:     runtime.NumCPU(),
		Seed:        DefaultSeed,
		RelTol:      tsp.DefaultRelTol,
		CSVPath:     DefaultCSVPath,
		FallbackDir: ".",
	}
}

// LoadConfig reads a YAML file over DefaultConfig: keys present in the file
// win, absent keys keep their defaults. Unknown keys are rejected. An empty
// file yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	file, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer file.Close()

	d := yaml.NewDecoder(file)
	d.KnownFields(true)
	if err = d.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("decode %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// Validate reports the first field outside its range, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.MinNodes < 3:
		return fmt.Errorf("%w: min_nodes %d < 3", ErrInvalidConfig, c.MinNodes)
	case c.MaxNodes < c.MinNodes:
		return fmt.Errorf("%w: max_nodes %d < min_nodes %d", ErrInvalidConfig, c.MaxNodes, c.MinNodes)
	case c.MaxNodes > tsp.MaxExactCities:
		return fmt.Errorf("%w: max_nodes %d > %d", ErrInvalidConfig, c.MaxNodes, tsp.MaxExactCities)
	case c.Trials < 1:
		return fmt.Errorf("%w: trials %d < 1", ErrInvalidConfig, c.Trials)
	case c.Workers < 1:
		return fmt.Errorf("%w: workers %d < 1", ErrInvalidConfig, c.Workers)
	case c.RelTol < 0 || math.IsNaN(c.RelTol) || math.IsInf(c.RelTol, 0):
		return fmt.Errorf("%w: rel_tol %v", ErrInvalidConfig, c.RelTol)
	}

	return nil
}

// Groups is the number of group sizes the run covers.
func (c Config) Groups() int {
	return c.MaxNodes - c.MinNodes + 1
}

// Total is the number of instances the run compares.
func (c Config) Total() int {
	return c.Groups() * c.Trials
}
