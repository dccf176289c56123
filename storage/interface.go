package storage

import (
	"context"
	"errors"

	"newsboard/internal/domain"
)

// ErrSectionNotFound возвращается, если секции с указанным ключом нет в хранилище.
var ErrSectionNotFound = errors.New("section not found")

// Storage определяет общий интерфейс хранилища секций новостей.
// Порядок элементов секции сохраняется в точности таким, каким его задал вызывающий.
type Storage interface {
	SaveSection(ctx context.Context, section *domain.Section) (int, error)
	GetSection(ctx context.Context, slug string) (*domain.Section, error)
	Close()
}
