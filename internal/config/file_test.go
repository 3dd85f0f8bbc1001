package config_test

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/corelib/internal/config"
	"github.com/lithammer/dedent"
)

func (suite *Suite) TestParseFile() {
	r := suite.Require()

	raw := dedent.Dedent(`
	collections:
	- [a1, a2]
	- []
	-
	- [c1]
	`)
	in, err := config.ParseFile(strings.NewReader(raw))
	r.NoError(err)
	r.Equal([][]string{{"a1", "a2"}, {}, {}, {"c1"}}, in.Collections)
}

func (suite *Suite) TestParseFileEmpty() {
	r := suite.Require()

	in, err := config.ParseFile(strings.NewReader(""))
	r.NoError(err)
	r.Empty(in.Collections)
}

func (suite *Suite) TestParseFileUnknownKey() {
	r := suite.Require()

	_, err := config.ParseFile(strings.NewReader("sets: []\n"))
	r.ErrorContains(err, "yaml:")
}

func (suite *Suite) TestReadFile() {
	r := suite.Require()

	path := filepath.Join(suite.T().TempDir(), "sets.yml")
	r.NoError(os.WriteFile(path, []byte("collections: [[x, y]]\n"), 0o600))

	in, err := config.ReadFile(path, nil)
	r.NoError(err)
	r.Equal([][]string{{"x", "y"}}, in.Collections)

	in, err = config.ReadFile("-", strings.NewReader("collections: [[z]]\n"))
	r.NoError(err)
	r.Equal([][]string{{"z"}}, in.Collections)

	_, err = config.ReadFile(filepath.Join(suite.T().TempDir(), "missing.yml"), nil)
	r.Error(err)
}

func (suite *Suite) TestDistinct() {
	r := suite.Require()

	out, dropped := config.Distinct([]string{"b", "a", "b", "c", "a"})
	r.Equal([]string{"b", "a", "c"}, out)
	r.True(dropped.Contains("a", "b"))
	r.Equal(2, dropped.Cardinality())

	out, dropped = config.Distinct(nil)
	r.Empty(out)
	r.Equal(0, dropped.Cardinality())
}
