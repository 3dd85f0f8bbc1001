// SPDX-License-Identifier: MIT

// Package seqtool implements the seqtool subcommands on top of the corelib
// packages.
package seqtool

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/katalvlaran/corelib/cartesian"
	"github.com/katalvlaran/corelib/equality"
	"github.com/katalvlaran/corelib/internal/config"
	"github.com/katalvlaran/corelib/seq"
)

// ErrUsage reports a malformed command line.
var ErrUsage = errors.New("seqtool: usage error")

// Run executes the subcommand named by args[0].
func Run(c config.Controller, args []string, stdin io.Reader, w io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: missing command", ErrUsage)
	}
	command, args := args[0], args[1:]
	slog.Debug("Running command.", "command", command, "args", args)

	switch command {
	case "power":
		return power(c, args, w)
	case "insert":
		return insert(c, args, w)
	case "product", "pair", "equal":
	default:
		return fmt.Errorf("%w: unknown command %q", ErrUsage, command)
	}

	sets, err := loadSets(c, args, stdin)
	if err != nil {
		return err
	}
	switch command {
	case "product":
		return product(c, sets, w)
	case "pair":
		return pair(c, sets, w)
	default:
		return equal(sets, w)
	}
}

// ParseSet splits a comma-separated set; the empty string is the empty set.
func ParseSet(arg string) []string {
	if arg == "" {
		return []string{}
	}
	return strings.Split(arg, ",")
}

// loadSets gathers positional sets followed by collections from --file.
func loadSets(c config.Controller, args []string, stdin io.Reader) ([][]string, error) {
	var sets [][]string
	for _, arg := range args {
		sets = append(sets, ParseSet(arg))
	}
	if c.File != "" {
		in, err := config.ReadFile(c.File, stdin)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", c.File, err)
		}
		slog.Debug("Loaded collections file.", "path", c.File, "collections", len(in.Collections))
		sets = append(sets, in.Collections...)
	}
	if c.Distinct {
		for i, set := range sets {
			var dropped mapset.Set[string]
			sets[i], dropped = config.Distinct(set)
			if dropped.Cardinality() > 0 {
				slog.Info("Dropped duplicate values.", "set", i, "values", dropped)
			}
		}
	}
	return sets, nil
}

func product(c config.Controller, sets [][]string, w io.Writer) error {
	lengths := make([]int, len(sets))
	for i, s := range sets {
		lengths[i] = len(s)
	}
	slog.Debug("Computing cartesian product.", "collections", len(sets), "expected", cartesian.Count(lengths...))

	tuples, err := cartesian.Product(cartesian.Sequences(sets...))
	if err != nil {
		return err
	}
	return writeTuples(w, c.Format, tuples)
}

func power(c config.Controller, args []string, w io.Writer) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: power expects SET N", ErrUsage)
	}
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("%w: power: %w", ErrUsage, err)
	}
	set := ParseSet(args[0])
	if c.Distinct {
		set, _ = config.Distinct(set)
	}

	tuples, err := cartesian.Power(slices.Values(set), n)
	if err != nil {
		return err
	}
	return writeTuples(w, c.Format, tuples)
}

func pair(c config.Controller, sets [][]string, w io.Writer) error {
	if len(sets) != 2 {
		return fmt.Errorf("%w: pair expects exactly two sets, got %d", ErrUsage, len(sets))
	}
	tuples, err := cartesian.Pair(slices.Values(sets[0]), slices.Values(sets[1]))
	if err != nil {
		return err
	}
	return writeTuples(w, c.Format, tuples)
}

func insert(c config.Controller, args []string, w io.Writer) error {
	if len(args) != 3 {
		return fmt.Errorf("%w: insert expects SET INDEX ITEM", ErrUsage)
	}
	at, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("%w: insert: %w", ErrUsage, err)
	}

	out, err := seq.Insert(slices.Values(ParseSet(args[0])), at, args[2])
	if err != nil {
		return err
	}
	values, err := seq.Collect(out)
	if err != nil {
		return err
	}
	return writeValues(w, c.Format, values)
}

func equal(sets [][]string, w io.Writer) error {
	if len(sets) != 2 {
		return fmt.Errorf("%w: equal expects exactly two sets, got %d", ErrUsage, len(sets))
	}
	c := equality.NewDefault[string]()
	x, y := slices.Values(sets[0]), slices.Values(sets[1])
	hx, err := c.Hash(x)
	if err != nil {
		return err
	}
	hy, err := c.Hash(y)
	if err != nil {
		return err
	}
	slog.Debug("Hashed sequences.", "first", hx, "second", hy)

	_, err = fmt.Fprintln(w, c.Equal(x, y))
	return err
}
