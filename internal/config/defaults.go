package config

const (
	defaultThreshold   = 0.6
	defaultLexiconPath = ":memory:"
	defaultFormat      = "plain"
	defaultColor       = "auto"
	defaultLogLevel    = "warn"
	defaultLogFormat   = "console"
	defaultChorusLines = 2
)

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Detection: Detection{Threshold: defaultThreshold},
		Lexicon:   Lexicon{Path: defaultLexiconPath},
		Output:    Output{Format: defaultFormat, Color: defaultColor},
		Logging:   Logging{Level: defaultLogLevel, Format: defaultLogFormat},
		Generator: Generator{ChorusLines: defaultChorusLines},
	}
}
