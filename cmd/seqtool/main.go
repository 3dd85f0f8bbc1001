// SPDX-License-Identifier: MIT

// Command seqtool runs corelib sequence operations from the command line.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/katalvlaran/corelib/internal/config"
	"github.com/katalvlaran/corelib/internal/logging"
	"github.com/katalvlaran/corelib/internal/seqtool"
	"github.com/lithammer/dedent"
	"github.com/lmittmann/tint"
	"github.com/spf13/pflag"
)

var version string // set at link time

func init() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [OPTIONS] COMMAND ARGS...\n\n", os.Args[0])
		pflag.PrintDefaults()
		os.Stderr.Write([]byte(dedent.Dedent(`

		Commands:
		  product SET...          cartesian product of the sets
		  power   SET N           SET raised to the power N
		  pair    SET SET         product of two sets
		  insert  SET INDEX ITEM  insert ITEM into SET at INDEX
		  equal   SET SET         compare two sets as sequences

		A SET is a comma-separated list of values; an empty argument is the empty set.
		Collections from --file are appended after positional sets.
		`)))
	}
}

func main() {
	color := logging.DefaultColor()
	// Bootstrap logging first to log in setup.
	logging.SetLoggingHandler(os.Stderr, slog.LevelInfo, color)

	config.RegisterFlags(pflag.CommandLine, color)
	controller, err := config.Load(pflag.CommandLine, os.Args[1:])
	if err != nil {
		slog.Error("Bad configuration.", tint.Err(err))
		os.Exit(1)
	}
	if controller.Help {
		pflag.Usage()
		return
	} else if controller.Version {
		showVersion()
		return
	}

	logging.SetLoggingHandler(os.Stderr, controller.LogLevel, controller.Color)
	slog.Debug("Starting seqtool.", "version", version, "runtime", runtime.Version())

	err = seqtool.Run(controller, pflag.Args(), os.Stdin, os.Stdout)
	if err != nil {
		slog.Error("Fatal error.", tint.Err(err))
		if logging.CurrentLevel > slog.LevelDebug {
			slog.Error("Run seqtool with --verbose to get more informations.")
		}
		os.Exit(1)
	}
}

func showVersion() {
	v := version
	if v == "" {
		if info, ok := debug.ReadBuildInfo(); ok {
			v = info.Main.Version
		}
	}
	fmt.Printf("seqtool %s\n", v)
	fmt.Printf("%s %s %s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
