// SPDX-License-Identifier: MIT

// Package logging installs the process-wide slog handler for seqtool.
package logging

import (
	"io"
	"log/slog"
	"os"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// CurrentLevel is the level of the last installed handler.
var CurrentLevel slog.Level

var levelStrings = map[slog.Level]string{
	slog.LevelDebug: "\033[2mDEBUG",
	slog.LevelInfo:  "\033[1mINFO ",
	slog.LevelWarn:  "\033[1;38;5;185mWARN ",
	slog.LevelError: "\033[1;31mERROR",
}

// DefaultColor enables color on a terminal unless NO_COLOR is set.
func DefaultColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
}

// SetLoggingHandler installs a tint handler when color is true and a plain
// text handler otherwise, both writing to w.
func SetLoggingHandler(w io.Writer, level slog.Level, color bool) {
	CurrentLevel = level
	var h slog.Handler
	if color {
		h = tint.NewHandler(w, &tint.Options{
			Level:       level,
			ReplaceAttr: replaceAttr(true),
			TimeFormat:  "15:04:05",
		})
	} else {
		h = slog.NewTextHandler(w, &slog.HandlerOptions{
			Level:       level,
			ReplaceAttr: replaceAttr(false),
		})
	}
	slog.SetDefault(slog.New(h))
}

func replaceAttr(color bool) func(groups []string, a slog.Attr) slog.Attr {
	return func(groups []string, a slog.Attr) slog.Attr {
		if color && a.Key == slog.LevelKey && len(groups) == 0 {
			if level, ok := a.Value.Any().(slog.Level); ok {
				if s, found := levelStrings[level]; found {
					a.Value = slog.StringValue(s)
				}
			}
		}
		if a.Value.Kind() == slog.KindAny {
			if set, ok := a.Value.Any().(mapset.Set[string]); ok {
				a.Value = slog.AnyValue(slices.Sorted(slices.Values(set.ToSlice())))
			}
		}
		if a.Key == "err" && a.Value.Kind() == slog.KindAny && a.Value.Any() == nil {
			// Drop nil error.
			a.Key = ""
		}
		return a
	}
}
