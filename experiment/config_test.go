package experiment_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspcompare/experiment"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := experiment.DefaultConfig()
	require.NoError(t, cfg.Validate())
	require.Equal(t, 10, cfg.MinNodes)
	require.Equal(t, 11, cfg.MaxNodes)
	require.Equal(t, 50, cfg.Trials)
	require.Equal(t, 100, cfg.Total())
}

func TestLoadConfig_OverridesDefaults(t *testing.T) {
	path := writeFile(t, "min_nodes: 4\nmax_nodes: 6\ntrials: 3\nworkers: 2\nsqlite_path: out.db\n")

	cfg, err := experiment.LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 4, cfg.MinNodes)
	require.Equal(t, 6, cfg.MaxNodes)
	require.Equal(t, 3, cfg.Trials)
	require.Equal(t, 2, cfg.Workers)
	require.Equal(t, "out.db", cfg.SQLitePath)
	// Untouched keys keep their defaults.
	require.Equal(t, experiment.DefaultCSVPath, cfg.CSVPath)
	require.Equal(t, int64(experiment.DefaultSeed), cfg.Seed)
}

func TestLoadConfig_EmptyFile(t *testing.T) {
	cfg, err := experiment.LoadConfig(writeFile(t, ""))
	require.NoError(t, err)
	want := experiment.DefaultConfig()
	require.Equal(t, want, cfg)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := experiment.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = experiment.LoadConfig(writeFile(t, "trails: 5\n"))
	require.Error(t, err, "unknown key")

	_, err = experiment.LoadConfig(writeFile(t, "max_nodes: 40\n"))
	require.ErrorIs(t, err, experiment.ErrInvalidConfig)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		edit func(*experiment.Config)
	}{
		{"min below 3", func(c *experiment.Config) { c.MinNodes = 2 }},
		{"max below min", func(c *experiment.Config) { c.MaxNodes = c.MinNodes - 1 }},
		{"max above exact limit", func(c *experiment.Config) { c.MaxNodes = 23 }},
		{"no trials", func(c *experiment.Config) { c.Trials = 0 }},
		{"no workers", func(c *experiment.Config) { c.Workers = 0 }},
		{"negative tolerance", func(c *experiment.Config) { c.RelTol = -1 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := experiment.DefaultConfig()
			tc.edit(&cfg)
			require.ErrorIs(t, cfg.Validate(), experiment.ErrInvalidConfig)
		})
	}
}
