package usecase

import (
	"context"
	"io"

	"newsboard/internal/domain"
)

// SourceFetcher загружает документ с новостями по адресу (файл или URL).
// Возвращает io.ReadCloser, который должен быть закрыт после использования.
type SourceFetcher interface {
	Fetch(ctx context.Context, location string) (io.ReadCloser, error)
}

// DocumentParser разбирает документ в секцию новостей.
type DocumentParser interface {
	Parse(ctx context.Context, reader io.Reader) (*domain.Section, error)
}

// SectionStorage сохраняет секцию целиком.
type SectionStorage interface {
	SaveSection(ctx context.Context, section *domain.Section) (int, error)
}

// SectionReader читает секцию по ключу.
type SectionReader interface {
	GetSection(ctx context.Context, slug string) (*domain.Section, error)
}
