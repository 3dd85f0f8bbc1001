package logging_test

import (
	"bytes"
	"log/slog"
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/katalvlaran/corelib/internal/logging"
	"github.com/stretchr/testify/assert"
)

// TestSetLoggingHandler_Plain checks level filtering and attribute rewriting.
func TestSetLoggingHandler_Plain(t *testing.T) {
	var buf bytes.Buffer
	logging.SetLoggingHandler(&buf, slog.LevelInfo, false)
	defer logging.SetLoggingHandler(&bytes.Buffer{}, slog.LevelInfo, false)

	assert.Equal(t, slog.LevelInfo, logging.CurrentLevel)

	slog.Debug("Hidden.")
	slog.Info("Dropped duplicates.", "values", mapset.NewSet("b", "a"), "err", nil)

	out := buf.String()
	assert.NotContains(t, out, "Hidden.")
	assert.Contains(t, out, "Dropped duplicates.")
	assert.Contains(t, out, "values=\"[a b]\"")
	assert.NotContains(t, out, "err=")
}

// TestSetLoggingHandler_Color checks the tint handler honours the level.
func TestSetLoggingHandler_Color(t *testing.T) {
	var buf bytes.Buffer
	logging.SetLoggingHandler(&buf, slog.LevelWarn, true)
	defer logging.SetLoggingHandler(&bytes.Buffer{}, slog.LevelInfo, false)

	slog.Info("Hidden.")
	slog.Warn("Shown.")

	out := buf.String()
	assert.NotContains(t, out, "Hidden.")
	assert.Contains(t, out, "Shown.")
}

// TestDefaultColor honours NO_COLOR.
func TestDefaultColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.False(t, logging.DefaultColor())
}
