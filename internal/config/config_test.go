package config_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gdql/songsim/internal/config"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv(config.EnvConfigPath, "")
	t.Setenv(config.EnvLexiconPath, "")
	t.Chdir(dir)
	return dir
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	home := isolate(t)

	cfg, path, exists, err := config.Load("")
	require.NoError(t, err)
	require.False(t, exists)
	require.Equal(t, filepath.Join(home, ".config", "songsim", "config.toml"), path)
	require.Equal(t, 0.6, cfg.Detection.Threshold)
	require.True(t, cfg.InMemoryLexicon())
	require.Equal(t, "plain", cfg.Output.Format)
	require.Equal(t, "auto", cfg.Output.Color)
	require.Equal(t, "console", cfg.Logging.Format)
	require.Equal(t, 2, cfg.Generator.ChorusLines)
}

func TestLoad_CustomPath(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[detection]
threshold = 0.75

[lexicon]
path = "~/words.db"

[output]
format = " TABLE "
color = "never"

[logging]
level = "DEBUG"
format = "json"

[generator]
seed = 42
chorus_lines = 0
`), 0o644))

	cfg, resolved, exists, err := config.Load(path)
	require.NoError(t, err)
	require.True(t, exists)
	require.Equal(t, path, resolved)
	require.Equal(t, 0.75, cfg.Detection.Threshold)
	require.Equal(t, filepath.Join(dir, "words.db"), cfg.Lexicon.Path)
	require.False(t, cfg.InMemoryLexicon())
	require.Equal(t, "table", cfg.Output.Format)
	require.Equal(t, "never", cfg.Output.Color)
	require.Equal(t, "debug", cfg.Logging.Level)
	require.Equal(t, "json", cfg.Logging.Format)
	require.Equal(t, uint64(42), cfg.Generator.Seed)
	require.Equal(t, 2, cfg.Generator.ChorusLines, "non-positive falls back to default")
}

func TestLoad_ProjectFile(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "songsim.toml"), []byte("[detection]\nthreshold = 0.9\n"), 0o644))

	cfg, path, exists, err := config.Load("")
	require.NoError(t, err)
	require.True(t, exists)
	require.Equal(t, filepath.Join(dir, "songsim.toml"), path)
	require.Equal(t, 0.9, cfg.Detection.Threshold)
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "env.toml")
	require.NoError(t, os.WriteFile(path, []byte("[lexicon]\npath = \"file.db\"\n"), 0o644))
	t.Setenv(config.EnvConfigPath, path)
	t.Setenv(config.EnvLexiconPath, ":memory:")

	cfg, resolved, exists, err := config.Load("")
	require.NoError(t, err)
	require.True(t, exists)
	require.Equal(t, path, resolved)
	require.True(t, cfg.InMemoryLexicon())
}

func TestLoad_ParseErrors(t *testing.T) {
	dir := isolate(t)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[detection\n"), 0o644))
	_, _, _, err := config.Load(bad)
	require.ErrorContains(t, err, "parse config")

	unknown := filepath.Join(dir, "unknown.toml")
	require.NoError(t, os.WriteFile(unknown, []byte("[detection]\nthreshhold = 0.5\n"), 0o644))
	_, _, _, err = config.Load(unknown)
	require.ErrorContains(t, err, "parse config")
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	cfg = config.Default()
	cfg.Detection.Threshold = math.NaN()
	require.Error(t, cfg.Validate())

	cfg = config.Default()
	cfg.Detection.Threshold = 5
	require.NoError(t, cfg.Validate(), "threshold is unconstrained")

	cfg = config.Default()
	cfg.Output.Format = "xml"
	require.Error(t, cfg.Validate())

	cfg = config.Default()
	cfg.Output.Color = "sometimes"
	require.Error(t, cfg.Validate())

	cfg = config.Default()
	cfg.Logging.Level = "verbose"
	require.Error(t, cfg.Validate())

	cfg = config.Default()
	cfg.Generator.ChorusLines = 100
	require.Error(t, cfg.Validate())
}

func TestCreateSample(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "nested", "config.toml")
	require.NoError(t, config.CreateSample(path))

	cfg, _, exists, err := config.Load(path)
	require.NoError(t, err)
	require.True(t, exists)
	require.Equal(t, config.Default().Detection, cfg.Detection)
}
