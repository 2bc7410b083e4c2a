package main

import (
	"context"
	"io"
	"log/slog"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/gdql/songsim/internal/config"
	"github.com/gdql/songsim/internal/data/sqlite"
	"github.com/gdql/songsim/internal/errors"
	"github.com/gdql/songsim/internal/formatter"
	"github.com/gdql/songsim/internal/generator"
	"github.com/gdql/songsim/internal/logging"
)

type globalFlags struct {
	config   string
	format   string
	logLevel string
	lexicon  string
}

type commandContext struct {
	flags *globalFlags

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(flags *globalFlags) *commandContext {
	return &commandContext{flags: flags}
}

// ensureConfig loads the config file once and layers the persistent flags over it.
func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(strings.TrimSpace(c.flags.config))
		if err != nil {
			c.configErr = err
			return
		}
		if v := strings.TrimSpace(c.flags.format); v != "" {
			cfg.Output.Format = strings.ToLower(v)
		}
		if v := strings.TrimSpace(c.flags.logLevel); v != "" {
			cfg.Logging.Level = strings.ToLower(v)
		}
		if v := strings.TrimSpace(c.flags.lexicon); v != "" && v != sqlite.MemoryPath {
			expanded, err := config.ExpandPath(v)
			if err != nil {
				c.configErr = err
				return
			}
			cfg.Lexicon.Path = expanded
		} else if v == sqlite.MemoryPath {
			cfg.Lexicon.Path = v
		}
		if err := cfg.Validate(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) logger(cmd *cobra.Command) (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Writer: cmd.ErrOrStderr(),
	})
}

func (c *commandContext) outputFormat() (formatter.OutputFormat, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return formatter.FormatPlain, err
	}
	return formatter.ParseFormat(cfg.Output.Format)
}

func (c *commandContext) newFormatter(w io.Writer) formatter.Formatter {
	mode := formatter.ColorAuto
	if cfg, err := c.ensureConfig(); err == nil {
		mode = cfg.Output.Color
	}
	return formatter.New(formatter.WithColor(formatter.ShouldColorize(mode, w)))
}

func (c *commandContext) lexiconPath() string {
	cfg, err := c.ensureConfig()
	if err != nil || strings.TrimSpace(cfg.Lexicon.Path) == "" {
		return sqlite.MemoryPath
	}
	return cfg.Lexicon.Path
}

func openLexicon(path string) (*sqlite.DB, error) {
	db, err := sqlite.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrLexicon, err, "open %s", path)
	}
	return db, nil
}

// newGenerator builds a generator over the configured lexicon. seed 0 defers to the
// config, and a config seed of 0 seeds from the clock.
func (c *commandContext) newGenerator(ctx context.Context, logger *slog.Logger, seed uint64) (*generator.Generator, func(), error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, err
	}
	db, err := openLexicon(c.lexiconPath())
	if err != nil {
		return nil, nil, err
	}
	if seed == 0 {
		seed = cfg.Generator.Seed
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	gen, err := generator.New(ctx, db, rand.New(rand.NewPCG(seed, seed>>1)),
		generator.WithChorusLines(cfg.Generator.ChorusLines),
		generator.WithLogger(logging.WithComponent(logger, "generator")),
	)
	if err != nil {
		db.Close()
		return nil, nil, errors.Wrap(errors.ErrLexicon, err, "load lexicon")
	}
	return gen, func() { db.Close() }, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
