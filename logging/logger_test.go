package logging_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvillar/palm/logging"
)

func TestSetLogger(t *testing.T) {
	old := logging.Logger()
	defer logging.SetLogger(old)

	var buf bytes.Buffer
	logging.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	logging.Logger().Debug("placed", slog.String("src", "ann.jpg"))

	assert.Contains(t, buf.String(), "placed")
	assert.Contains(t, buf.String(), "src=ann.jpg")
}

func TestSetLogger_Nil(t *testing.T) {
	old := logging.Logger()
	defer logging.SetLogger(old)

	logging.SetLogger(nil)

	log := logging.Logger()
	require.NotNil(t, log)
	assert.Equal(t, slog.DiscardHandler, log.Handler())
}

func TestNew(t *testing.T) {
	tests := []struct {
		level, format string
		debug         bool
		json          bool
	}{
		{"debug", "text", true, false},
		{"info", "json", false, true},
		{"WARN", "JSON", false, true},
		{"bogus", "", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.level+"/"+tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			log := logging.New(tt.level, tt.format, &buf)
			log.Debug("dbg")
			log.Error("boom")

			out := buf.String()
			assert.Equal(t, tt.debug, strings.Contains(out, "dbg"))
			assert.Contains(t, out, "boom")
			assert.Equal(t, tt.json, strings.HasPrefix(out, "{"))
		})
	}
}

func TestBufferedLogHandler(t *testing.T) {
	h := logging.NewBufferedLogHandler(&slog.HandlerOptions{Level: slog.LevelInfo})
	log := slog.New(h).With("page", 2).WithGroup("elem")

	log.Debug("hidden")
	log.Warn("element skipped", "index", 3)

	assert.False(t, h.Contains("hidden"))
	assert.True(t, h.Contains("element skipped"))
	assert.True(t, h.Contains("page=2"))
	assert.True(t, h.Contains("elem.index=3"))

	h.Reset()
	assert.Empty(t, h.String())
}
