package config

import "strings"

func (c *Config) normalize() error {
	if err := c.normalizeLexicon(); err != nil {
		return err
	}
	c.normalizeOutput()
	c.normalizeLogging()
	if c.Generator.ChorusLines <= 0 {
		c.Generator.ChorusLines = defaultChorusLines
	}
	return nil
}

func (c *Config) normalizeLexicon() error {
	p := strings.TrimSpace(c.Lexicon.Path)
	if p == "" || p == defaultLexiconPath {
		c.Lexicon.Path = defaultLexiconPath
		return nil
	}
	expanded, err := expandPath(p)
	if err != nil {
		return err
	}
	c.Lexicon.Path = expanded
	return nil
}

func (c *Config) normalizeOutput() {
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	if c.Output.Format == "" {
		c.Output.Format = defaultFormat
	}
	c.Output.Color = strings.ToLower(strings.TrimSpace(c.Output.Color))
	if c.Output.Color == "" {
		c.Output.Color = defaultColor
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console", "text":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

// InMemoryLexicon reports whether the lexicon is the ephemeral built-in one.
func (c *Config) InMemoryLexicon() bool {
	return c.Lexicon.Path == defaultLexiconPath
}
