package logger

import (
	"bytes"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsboard/internal/config"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("WARN"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestReadableHandler_Format(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewReadableHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	log.With(slog.String("component", "renderer")).Info("Section rendered",
		slog.String("op", "newslist.Render"),
		slog.Int("rows", 3),
		slog.Any("error", errors.New("boom")),
	)

	line := buf.String()
	assert.Contains(t, line, "INFO [renderer] (newslist.Render): Section rendered")
	assert.Contains(t, line, "rows=3")
	assert.Contains(t, line, `error="boom"`)
	assert.True(t, strings.HasSuffix(line, "\n"))
}

func TestReadableHandler_AddSource(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewReadableHandler(&buf, &slog.HandlerOptions{AddSource: true}))

	log.Info("with source")

	assert.Regexp(t, `<logger_test\.go:\d+>: with source`, buf.String())
}

func TestReadableHandler_KeepsAttrsAndGroups(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewReadableHandler(&buf, nil))

	log.With(slog.String("section", "news")).WithGroup("http").Info("done", slog.Int("status", 200))

	assert.Contains(t, buf.String(), "section=news")
	assert.Contains(t, buf.String(), "http.status=200")
}

func TestReadableHandler_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewReadableHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))

	log.Info("hidden")
	log.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "WARN: shown")
}

func TestReadableHandler_Duration(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewReadableHandler(&buf, nil))

	log.Info("sync", slog.Duration("duration", 1234567*time.Microsecond))

	assert.Contains(t, buf.String(), "duration=1.235s")
}

func TestLevelDispatcherHandler_RoutesErrors(t *testing.T) {
	var out, errOut bytes.Buffer
	log := slog.New(NewLevelDispatcherHandler(&out, &errOut, nil))

	log.Info("regular")
	log.Error("failure")

	assert.Contains(t, out.String(), "regular")
	assert.NotContains(t, out.String(), "failure")
	assert.Contains(t, errOut.String(), "failure")
}

func TestShortenURL(t *testing.T) {
	assert.Equal(t, "https://example.com/news.yaml", shortenURL("https://example.com/news.yaml"))
	long := "https://example.com/a/very/long/path/to/some/announcements/document.yaml"
	assert.Equal(t, "https://example.com/...", shortenURL(long))
}

func TestNew_WritesFiles(t *testing.T) {
	dir := t.TempDir()
	cfg := config.LoggerConfig{
		Level:     "debug",
		File:      filepath.Join(dir, "app.log"),
		ErrorFile: filepath.Join(dir, "app_error.log"),
	}

	log, err := New(cfg)
	require.NoError(t, err)
	log.Debug("debug line")
	log.Error("error line")

	assert.FileExists(t, cfg.File)
	assert.FileExists(t, cfg.ErrorFile)
}

func TestNew_BadPath(t *testing.T) {
	_, err := New(config.LoggerConfig{File: filepath.Join(t.TempDir(), "missing", "app.log")})
	assert.Error(t, err)
}
