package fetcher

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const defaultHTTPTimeout = 15 * time.Second

// HTTPFetcher загружает документы с новостями по HTTP.
// Обрабатывает ошибки сети, таймауты и неуспешные HTTP-статусы.
type HTTPFetcher struct {
	client *http.Client
	log    *slog.Logger
}

// NewHTTPFetcher создает HTTPFetcher с клиентом, ограниченным по времени ответа.
func NewHTTPFetcher(log *slog.Logger) *HTTPFetcher {
	return &HTTPFetcher{
		client: &http.Client{Timeout: defaultHTTPTimeout},
		log:    log,
	}
}

// Fetch выполняет GET-запрос и возвращает тело ответа.
// Тело должно быть закрыто вызывающей стороной.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	log := f.log.With(slog.String("component", "fetcher"), slog.String("url", url))
	log.Debug("Fetching news document")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		log.Error("Failed to create HTTP request", slog.Any("error", err))
		return nil, fmt.Errorf("failed to create request for url %s: %w", url, err)
	}
	req.Header.Set("Accept", "application/yaml, application/json;q=0.9, text/plain;q=0.5")
	resp, err := f.client.Do(req)
	if err != nil {
		log.Error("HTTP request failed", slog.Any("error", err))
		return nil, fmt.Errorf("failed to fetch url %s: %w", url, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		log.Error("Unexpected status code", slog.Int("status_code", resp.StatusCode))
		return nil, fmt.Errorf("unexpected status code: %d for url %s", resp.StatusCode, url)
	}
	log.Debug("Successfully fetched news document")
	return resp.Body, nil
}
