package fetcher

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// FileFetcher читает документы с новостями с локального диска.
type FileFetcher struct {
	log *slog.Logger
}

func NewFileFetcher(log *slog.Logger) *FileFetcher {
	return &FileFetcher{log: log}
}

// Fetch открывает файл; префикс file:// допускается.
func (f *FileFetcher) Fetch(ctx context.Context, location string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path := strings.TrimPrefix(location, "file://")
	file, err := os.Open(path)
	if err != nil {
		f.log.Error("Failed to open news document",
			slog.String("component", "fetcher"),
			slog.String("path", path),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return file, nil
}

// Fetcher выбирает способ загрузки по схеме адреса:
// http(s) загружается по сети, все остальное читается как файл.
type Fetcher struct {
	http *HTTPFetcher
	file *FileFetcher
}

func New(log *slog.Logger) *Fetcher {
	return &Fetcher{
		http: NewHTTPFetcher(log),
		file: NewFileFetcher(log),
	}
}

func (f *Fetcher) Fetch(ctx context.Context, location string) (io.ReadCloser, error) {
	if IsRemote(location) {
		return f.http.Fetch(ctx, location)
	}
	return f.file.Fetch(ctx, location)
}

// IsRemote сообщает, указывает ли адрес на HTTP-ресурс.
func IsRemote(location string) bool {
	lower := strings.ToLower(location)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
