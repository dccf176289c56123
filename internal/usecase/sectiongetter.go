package usecase

import (
	"context"

	"newsboard/internal/newslist"
)

// SectionGetterUseCase читает секцию из хранилища и строит ее визуальное дерево.
type SectionGetterUseCase struct {
	storage SectionReader
}

func NewSectionGetterUseCase(s SectionReader) *SectionGetterUseCase {
	return &SectionGetterUseCase{storage: s}
}

// GetTree возвращает визуальное дерево секции.
// Ошибка хранилища возвращается без изменений, чтобы транспорт
// мог отличить отсутствующую секцию от сбоя.
func (uc *SectionGetterUseCase) GetTree(ctx context.Context, slug string) (newslist.Tree, error) {
	section, err := uc.storage.GetSection(ctx, slug)
	if err != nil {
		return newslist.Tree{}, err
	}
	return newslist.Render(*section), nil
}
