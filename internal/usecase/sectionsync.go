package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"newsboard/internal/config"
	"newsboard/internal/metrics"
)

// SectionSyncUseCase переносит документ с новостями из источника в хранилище:
// загрузка, разбор и сохранение с сохранением порядка элементов.
type SectionSyncUseCase struct {
	fetcher SourceFetcher
	parser  DocumentParser
	storage SectionStorage
	log     *slog.Logger
}

func NewSectionSyncUseCase(
	fetcher SourceFetcher,
	parser DocumentParser,
	storage SectionStorage,
	log *slog.Logger,
) *SectionSyncUseCase {
	return &SectionSyncUseCase{
		fetcher: fetcher,
		parser:  parser,
		storage: storage,
		log:     log,
	}
}

// SyncSource выполняет полный цикл синхронизации одного источника.
// Ключ секции берется из документа, затем из конфигурации источника,
// затем используется ключ по умолчанию.
func (uc *SectionSyncUseCase) SyncSource(ctx context.Context, src config.Source) (err error) {
	start := time.Now()
	defer func() {
		metrics.RecordSync(err == nil, time.Since(start))
	}()
	log := uc.log.With(
		slog.String("component", "section-sync"),
		slog.String("source_url", src.Location),
	)
	log.Info("Section sync started")

	reader, err := uc.fetcher.Fetch(ctx, src.Location)
	if err != nil {
		log.Error("Source fetch failed", slog.String("stage", "fetch"), slog.Any("error", err))
		return fmt.Errorf("fetch failed for %s: %w", src.Location, err)
	}
	defer reader.Close()

	section, err := uc.parser.Parse(ctx, reader)
	if err != nil {
		log.Error("Document parsing failed", slog.String("stage", "parse"), slog.Any("error", err))
		return fmt.Errorf("parse failed for %s: %w", src.Location, err)
	}
	if section.Slug == "" {
		section.Slug = src.Slug
	}
	section.Slug = section.SlugOrDefault()

	saved, err := uc.storage.SaveSection(ctx, section)
	if err != nil {
		log.Error("Section save failed", slog.String("stage", "save"), slog.Any("error", err))
		return fmt.Errorf("save failed for %s: %w", src.Location, err)
	}

	log.Info("Section sync completed",
		slog.String("section", section.Slug),
		slog.Int("items_saved", saved),
		slog.Duration("duration", time.Since(start)),
	)
	return nil
}
