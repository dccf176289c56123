package fetcher

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileFetcher_Fetch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "news.yaml")
	require.NoError(t, os.WriteFile(path, []byte("items: []"), 0o600))
	fetcher := NewFileFetcher(slog.New(slog.NewTextHandler(io.Discard, nil)))

	for _, location := range []string{path, "file://" + path} {
		reader, err := fetcher.Fetch(context.Background(), location)
		require.NoError(t, err)
		data, err := io.ReadAll(reader)
		reader.Close()
		require.NoError(t, err)
		assert.Equal(t, "items: []", string(data))
	}
}

func TestFileFetcher_Missing(t *testing.T) {
	fetcher := NewFileFetcher(slog.New(slog.NewTextHandler(io.Discard, nil)))

	reader, err := fetcher.Fetch(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))

	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Nil(t, reader)
}

func TestFetcher_Dispatch(t *testing.T) {
	testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("remote"))
	}))
	defer testServer.Close()
	path := filepath.Join(t.TempDir(), "news.yaml")
	require.NoError(t, os.WriteFile(path, []byte("local"), 0o600))
	fetcher := New(slog.New(slog.NewTextHandler(io.Discard, nil)))

	for location, want := range map[string]string{testServer.URL: "remote", path: "local"} {
		reader, err := fetcher.Fetch(context.Background(), location)
		require.NoError(t, err)
		data, _ := io.ReadAll(reader)
		reader.Close()
		assert.Equal(t, want, string(data))
	}
}

func TestIsRemote(t *testing.T) {
	assert.True(t, IsRemote("https://example.com/news.yaml"))
	assert.True(t, IsRemote("HTTP://example.com"))
	assert.False(t, IsRemote("./news.yaml"))
	assert.False(t, IsRemote("file:///tmp/news.yaml"))
}
