package config_test

import (
	"log/slog"

	"github.com/katalvlaran/corelib/internal/config"
	"github.com/spf13/pflag"
)

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("seqtool", pflag.ContinueOnError)
	config.RegisterFlags(fs, false)
	return fs
}

func (suite *Suite) TestLoadDefaults() {
	r := suite.Require()

	c, err := config.Load(newFlagSet(), []string{"product", "a,b"})
	r.NoError(err)
	r.Equal(config.FormatText, c.Format)
	r.False(c.Distinct)
	r.False(c.Color)
	r.Equal(slog.LevelInfo, c.LogLevel)
}

func (suite *Suite) TestLoadFlags() {
	r := suite.Require()

	fs := newFlagSet()
	c, err := config.Load(fs, []string{"-vv", "--distinct", "-o", "YAML", "-f", "sets.yml", "product"})
	r.NoError(err)
	r.True(c.Distinct)
	r.Equal(config.FormatYAML, c.Format)
	r.Equal("sets.yml", c.File)
	r.Equal(2, c.Verbose)
	r.Equal(slog.LevelDebug, c.LogLevel)
	r.Equal([]string{"product"}, fs.Args())
}

func (suite *Suite) TestLoadQuietClamps() {
	r := suite.Require()

	c, err := config.Load(newFlagSet(), []string{"-qqqqq"})
	r.NoError(err)
	r.Equal(slog.LevelError, c.LogLevel)
}

func (suite *Suite) TestLoadEnvironment() {
	r := suite.Require()
	suite.T().Setenv("SEQTOOL_FORMAT", "yaml")
	suite.T().Setenv("SEQTOOL_DISTINCT", "true")
	suite.T().Setenv("SEQTOOL_VERBOSITY", "WARN")

	c, err := config.Load(newFlagSet(), nil)
	r.NoError(err)
	r.Equal(config.FormatYAML, c.Format)
	r.True(c.Distinct)
	r.Equal(slog.LevelWarn, c.LogLevel)
}

func (suite *Suite) TestLoadFlagOverridesEnvironment() {
	r := suite.Require()
	suite.T().Setenv("SEQTOOL_FORMAT", "yaml")

	c, err := config.Load(newFlagSet(), []string{"--format", "text"})
	r.NoError(err)
	r.Equal(config.FormatText, c.Format)
}

func (suite *Suite) TestLoadBadFormat() {
	r := suite.Require()

	_, err := config.Load(newFlagSet(), []string{"--format", "xml"})
	r.ErrorContains(err, "unknown format")
}

func (suite *Suite) TestLoadBadVerbosityFallsBack() {
	r := suite.Require()
	suite.T().Setenv("SEQTOOL_VERBOSITY", "LOUD")

	c, err := config.Load(newFlagSet(), nil)
	r.NoError(err)
	r.Equal(slog.LevelInfo, c.LogLevel)
}
