// SPDX-License-Identifier: MIT

package seqtool

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/corelib/internal/config"
	"gopkg.in/yaml.v3"
)

// writeTuples prints one tuple per line in text format, or a YAML list of
// flow sequences.
func writeTuples(w io.Writer, format string, tuples [][]string) error {
	if format == config.FormatYAML {
		doc := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, t := range tuples {
			row := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Style: yaml.FlowStyle}
			for _, v := range t {
				row.Content = append(row.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v})
			}
			doc.Content = append(doc.Content, row)
		}
		if len(tuples) == 0 {
			doc.Style = yaml.FlowStyle
		}
		return encode(w, doc)
	}

	for _, t := range tuples {
		if _, err := fmt.Fprintln(w, strings.Join(t, " ")); err != nil {
			return err
		}
	}
	return nil
}

// writeValues prints values space-separated, or as a YAML list.
func writeValues(w io.Writer, format string, values []string) error {
	if format == config.FormatYAML {
		return encode(w, values)
	}
	_, err := fmt.Fprintln(w, strings.Join(values, " "))
	return err
}

func encode(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
