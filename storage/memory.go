package storage

import (
	"context"
	"fmt"
	"sync"

	"newsboard/internal/domain"
)

// MemoryNewsDB хранит секции в памяти процесса.
// Сервис всегда работает с PostgreSQL; эта реализация нужна тестам
// сценариев, которым не требуется база данных.
type MemoryNewsDB struct {
	mu       sync.RWMutex
	sections map[string]domain.Section
}

func NewMemoryNewsDB() *MemoryNewsDB {
	return &MemoryNewsDB{sections: make(map[string]domain.Section)}
}

func (db *MemoryNewsDB) SaveSection(ctx context.Context, section *domain.Section) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	stored := domain.Section{
		Slug:  section.SlugOrDefault(),
		Title: section.Title,
		Items: append([]domain.Item(nil), section.Items...),
	}
	db.mu.Lock()
	db.sections[stored.Slug] = stored
	db.mu.Unlock()
	return len(stored.Items), nil
}

func (db *MemoryNewsDB) GetSection(ctx context.Context, slug string) (*domain.Section, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	db.mu.RLock()
	stored, ok := db.sections[slug]
	db.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("storage.memory.GetSection: %q: %w", slug, ErrSectionNotFound)
	}
	stored.Items = append([]domain.Item(nil), stored.Items...)
	return &stored, nil
}

func (db *MemoryNewsDB) Close() {}
