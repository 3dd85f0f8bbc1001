// SPDX-License-Identifier: MIT

// Package config resolves seqtool's controller from defaults, environment and
// command-line flags, and reads YAML collection files.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// EnvPrefix prefixes every environment variable read by seqtool.
const EnvPrefix = "SEQTOOL_"

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Controller holds flags/env values controlling one seqtool run.
type Controller struct {
	Color     bool       `koanf:"color"`
	Distinct  bool       `koanf:"distinct"`
	File      string     `koanf:"file"`
	Format    string     `koanf:"format"`
	Help      bool       `koanf:"help"`
	Version   bool       `koanf:"version"`
	Quiet     int        `koanf:"quiet"`
	Verbose   int        `koanf:"verbose"`
	Verbosity string     `koanf:"verbosity"`
	LogLevel  slog.Level `koanf:"-"`
}

var levels = []slog.Level{
	slog.LevelDebug,
	slog.LevelInfo,
	slog.LevelWarn,
	slog.LevelError,
}

// RegisterFlags declares seqtool options on fs. color is the default for --color.
func RegisterFlags(fs *pflag.FlagSet, color bool) {
	fs.Bool("color", color, "Force color output.")
	fs.Bool("distinct", false, "Drop duplicate values from each input set, keeping first occurrence.")
	fs.StringP("file", "f", "", "Path to YAML file listing collections. Use - for stdin.")
	fs.StringP("format", "o", FormatText, "Output format: text or yaml.")
	fs.BoolP("help", "?", false, "Show this help message and exit.")
	fs.BoolP("version", "V", false, "Show version and exit.")
	fs.CountP("quiet", "q", "Decrease log verbosity.")
	fs.CountP("verbose", "v", "Increase log verbosity.")
}

// Load parses args with fs and merges defaults, SEQTOOL_* environment and
// flags, flags taking precedence.
func Load(fs *pflag.FlagSet, args []string) (c Controller, err error) {
	err = fs.Parse(args)
	if err != nil {
		return
	}

	k := koanf.New(".")
	err = k.Load(confmap.Provider(map[string]any{
		"format":    FormatText,
		"verbosity": "",
	}, k.Delim()), nil)
	if err != nil {
		return c, fmt.Errorf("defaults: %w", err)
	}

	err = k.Load(env.Provider(EnvPrefix, k.Delim(), func(key string) string {
		slog.Debug("Loading seqtool environment var.", "var", key)
		key = strings.TrimPrefix(key, EnvPrefix)
		return strings.ReplaceAll(strings.ToLower(key), "_", "-")
	}), nil)
	if err != nil {
		return c, fmt.Errorf("environment: %w", err)
	}

	err = k.Load(posflag.Provider(fs, k.Delim(), k), nil)
	if err != nil {
		return c, fmt.Errorf("flags: %w", err)
	}

	err = k.Unmarshal("", &c)
	if err != nil {
		return c, fmt.Errorf("config: %w", err)
	}

	c.Format = strings.ToLower(c.Format)
	if c.Format != FormatText && c.Format != FormatYAML {
		return c, fmt.Errorf("config: unknown format %q", c.Format)
	}
	c.LogLevel = c.level()
	return c, nil
}

func (c Controller) level() slog.Level {
	if c.Verbosity != "" {
		var level slog.Level
		err := level.UnmarshalText([]byte(c.Verbosity))
		if err == nil {
			return level
		}
		slog.Warn("Bad verbosity.", "source", "env", "value", c.Verbosity)
	}
	// Default log level is INFO, which index is 1.
	index := 1 - c.Verbose + c.Quiet
	index = max(0, min(index, len(levels)-1))
	return levels[index]
}
