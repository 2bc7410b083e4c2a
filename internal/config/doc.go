// Package config loads, normalizes, and validates songsim configuration.
//
// Settings come from a TOML file (flag, SONGSIM_CONFIG, ~/.config/songsim/config.toml
// or ./songsim.toml, first match wins) layered over Default(). A missing file is not
// an error.
package config
