package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"newsboard/internal/metrics"
	"newsboard/internal/newslist"
	"newsboard/storage"
)

// contentSecurityPolicy разрешает только встроенные стили страницы.
const contentSecurityPolicy = "default-src 'none'; style-src 'unsafe-inline'; base-uri 'none'; frame-ancestors 'none'"

type sectionGetter interface {
	GetTree(ctx context.Context, slug string) (newslist.Tree, error)
}

type Handler struct {
	log            *slog.Logger
	sections       sectionGetter
	defaultSection string
}

func NewHandler(log *slog.Logger, getter sectionGetter, defaultSection string) *Handler {
	return &Handler{
		log:            log,
		sections:       getter,
		defaultSection: defaultSection,
	}
}

// index - хендлер для GET /: страница секции по умолчанию.
func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	h.servePage(w, r, h.defaultSection)
}

// sectionPage - хендлер для GET /news/{slug}.
func (h *Handler) sectionPage(w http.ResponseWriter, r *http.Request) {
	h.servePage(w, r, r.PathValue("slug"))
}

func (h *Handler) servePage(w http.ResponseWriter, r *http.Request, slug string) {
	const op = "transport.http/servePage"
	log := h.requestLogger(r, op).With(slog.String("section", slug))

	tree, ok := h.loadTree(w, r, log, slug)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := newslist.WritePage(&buf, tree); err != nil {
		log.Error("Failed to render page", slog.Any("error", err))
		respondWithError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	metrics.RecordRender("page")
	respondWithHTML(w, http.StatusOK, buf.Bytes())
}

// getSection - хендлер для GET /api/news/{slug}.
// По умолчанию отдает визуальное дерево в JSON, с ?format=html - HTML-фрагмент.
func (h *Handler) getSection(w http.ResponseWriter, r *http.Request) {
	const op = "transport.http/getSection"
	slug := r.PathValue("slug")
	log := h.requestLogger(r, op).With(slog.String("section", slug))

	format := r.URL.Query().Get("format")
	if format != "" && format != "json" && format != "html" {
		log.Warn("invalid format parameter", slog.String("format", format))
		respondWithError(w, http.StatusBadRequest, "Invalid 'format' parameter")
		return
	}
	tree, ok := h.loadTree(w, r, log, slug)
	if !ok {
		return
	}
	if format == "html" {
		var buf bytes.Buffer
		if err := newslist.WriteHTML(&buf, tree); err != nil {
			log.Error("Failed to render fragment", slog.Any("error", err))
			respondWithError(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}
		metrics.RecordRender("html")
		respondWithHTML(w, http.StatusOK, buf.Bytes())
		return
	}
	metrics.RecordRender("json")
	respondWithJSON(w, http.StatusOK, tree)
}

func (h *Handler) loadTree(w http.ResponseWriter, r *http.Request, log *slog.Logger, slug string) (newslist.Tree, bool) {
	tree, err := h.sections.GetTree(r.Context(), slug)
	if errors.Is(err, storage.ErrSectionNotFound) {
		log.Warn("section not found")
		respondWithError(w, http.StatusNotFound, "Section Not Found")
		return newslist.Tree{}, false
	}
	if err != nil {
		log.Error("Failed to get section", slog.Any("error", err))
		respondWithError(w, http.StatusInternalServerError, "Internal Server Error")
		return newslist.Tree{}, false
	}
	return tree, true
}

// healthCheck - хендлер для проверки состояния сервиса
func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) requestLogger(r *http.Request, op string) *slog.Logger {
	return h.log.With(
		slog.String("op", op),
		slog.String("request_id", RequestIDFromContext(r.Context())),
	)
}

// Вспомогательные функции для ответов
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

func respondWithJSON(w http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "Failed to marshal JSON response"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

func respondWithHTML(w http.ResponseWriter, code int, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Security-Policy", contentSecurityPolicy)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	w.Write(body)
}
