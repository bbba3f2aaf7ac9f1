// Package config loads the prover's saturation and display settings
// from a tableau.toml file, layered with flag and environment
// overrides. Grounded on steveyegge-beads: internal/labelmutex/policy.go
// decodes a YAML-ish config through a dedicated viper.New() instance,
// and internal/formula/parser.go / cmd/bd/formula.go both decode
// structured config with github.com/BurntSushi/toml directly. This
// package does both: TOML for the on-disk default, viper for the
// flag/env overlay a cobra command binds at startup.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Color selects when the trace sink colorizes its output.
type Color string

const (
	ColorAuto   Color = "auto"
	ColorAlways Color = "always"
	ColorNever  Color = "never"
)

// TraceFormat selects how the CLI renders the expansion trace.
type TraceFormat string

const (
	FormatText    TraceFormat = "text"
	FormatDOT     TraceFormat = "dot"
	FormatMermaid TraceFormat = "mermaid"
)

// Config holds the prover's tunable, non-functional settings. None of
// spec.md's [MODULE] semantics are configurable — this only adjusts
// the bounded-saturation ceiling and how the trace is displayed.
type Config struct {
	MaxGammaRounds int         `toml:"max_gamma_rounds"`
	Color          Color       `toml:"color"`
	TraceFormat    TraceFormat `toml:"trace_format"`
}

// Default returns the built-in configuration used when no
// tableau.toml file is present.
func Default() Config {
	return Config{
		MaxGammaRounds: 64,
		Color:          ColorAuto,
		TraceFormat:    FormatText,
	}
}

// Load reads path as a TOML document into a Config seeded with
// Default(), so a partial file only overrides the keys it sets. A
// missing file is not an error: it just yields the defaults, the same
// "absent file -> nil, nil" behavior labelmutex.ParseMutexGroups uses
// for its own optional config file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "decoding config file %s", path)
	}
	return cfg, nil
}

// BindOverrides layers environment-variable and already-parsed flag
// values from v on top of cfg, returning the merged result. Flags take
// precedence over the environment, which takes precedence over the
// file defaults already baked into cfg — the usual viper precedence
// order, applied explicitly here because cfg itself comes from a
// hand-decoded TOML file rather than from viper's own file reader.
func BindOverrides(cfg Config, v *viper.Viper) Config {
	v.SetEnvPrefix("TABLEAU")
	v.AutomaticEnv()

	if v.IsSet("max_gamma_rounds") {
		cfg.MaxGammaRounds = v.GetInt("max_gamma_rounds")
	}
	if v.IsSet("color") {
		cfg.Color = Color(v.GetString("color"))
	}
	if v.IsSet("trace_format") {
		cfg.TraceFormat = TraceFormat(v.GetString("trace_format"))
	}
	return cfg
}
