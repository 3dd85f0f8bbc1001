// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	mapset "github.com/deckarep/golang-set/v2"
	"gopkg.in/yaml.v3"
)

// InputFile is the YAML document accepted by --file.
//
//	collections:
//	- [a1, a2]
//	- [b1]
type InputFile struct {
	Collections [][]string `yaml:"collections"`
}

// ReadFile loads collections from path. "-" reads stdin.
func ReadFile(path string, stdin io.Reader) (InputFile, error) {
	var r io.Reader
	if path == "-" {
		slog.Debug("Reading collections from stdin.")
		r = stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return InputFile{}, err
		}
		defer f.Close()
		r = f
	}
	return ParseFile(r)
}

// ParseFile decodes an InputFile, rejecting unknown keys.
func ParseFile(r io.Reader) (in InputFile, err error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	err = dec.Decode(&in)
	if errors.Is(err, io.EOF) {
		// Empty document.
		return in, nil
	}
	if err != nil {
		return in, fmt.Errorf("yaml: %w", err)
	}
	for i, c := range in.Collections {
		if c == nil {
			in.Collections[i] = []string{}
		}
	}
	return in, nil
}

// Distinct drops repeated values from values, keeping the first occurrence,
// and returns the set of dropped values.
func Distinct(values []string) ([]string, mapset.Set[string]) {
	seen := mapset.NewThreadUnsafeSetWithSize[string](len(values))
	dropped := mapset.NewThreadUnsafeSet[string]()
	out := make([]string, 0, len(values))
	for _, v := range values {
		if !seen.Add(v) {
			dropped.Add(v)
			continue
		}
		out = append(out, v)
	}
	return out, dropped
}
