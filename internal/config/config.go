package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// EnvConfigPath names the environment variable that overrides the config file location.
const EnvConfigPath = "SONGSIM_CONFIG"

// EnvLexiconPath overrides [lexicon] path after the file is read.
const EnvLexiconPath = "SONGSIM_LEXICON"

// Detection configures similarity checks.
type Detection struct {
	Threshold float64 `toml:"threshold"`
}

// Lexicon locates the generator word database. ":memory:" uses the built-in sample.
type Lexicon struct {
	Path string `toml:"path"`
}

// Output configures result rendering.
type Output struct {
	Format string `toml:"format"` // plain, table, json, csv
	Color  string `toml:"color"`  // auto, always, never
}

// Logging contains configuration for log output.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Generator configures the lyric generator.
type Generator struct {
	Seed        uint64 `toml:"seed"` // 0 seeds from the clock
	ChorusLines int    `toml:"chorus_lines"`
}

// Config encapsulates all configuration values for songsim.
type Config struct {
	Detection Detection `toml:"detection"`
	Lexicon   Lexicon   `toml:"lexicon"`
	Output    Output    `toml:"output"`
	Logging   Logging   `toml:"logging"`
	Generator Generator `toml:"generator"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/songsim/config.toml")
}

// Load locates, parses, and validates a configuration file. It returns the config,
// the path it resolved, and whether that file existed.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if value, ok := os.LookupEnv(EnvLexiconPath); ok && strings.TrimSpace(value) != "" {
		cfg.Lexicon.Path = value
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path == "" {
		path = strings.TrimSpace(os.Getenv(EnvConfigPath))
	}
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("songsim.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// ExpandPath exposes the path expansion rules (tilde, absolute) for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}
