package config

import (
	"fmt"
	"math"
)

// Validate ensures the configuration is usable. The threshold may be any finite
// number: values above 1 simply match nothing.
func (c *Config) Validate() error {
	if math.IsNaN(c.Detection.Threshold) || math.IsInf(c.Detection.Threshold, 0) {
		return fmt.Errorf("detection.threshold must be a finite number")
	}
	switch c.Output.Format {
	case "plain", "text", "table", "json", "csv":
	default:
		return fmt.Errorf("output.format: unsupported value %q", c.Output.Format)
	}
	switch c.Output.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("output.color: unsupported value %q", c.Output.Color)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	if c.Generator.ChorusLines > 16 {
		return fmt.Errorf("generator.chorus_lines must be at most 16")
	}
	return nil
}
