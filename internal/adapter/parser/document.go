package parser

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"gopkg.in/yaml.v3"

	"newsboard/internal/domain"
)

// ErrInvalidDocument возвращается для документов, не прошедших проверку.
var ErrInvalidDocument = errors.New("invalid news document")

type documentYAML struct {
	Slug  string     `yaml:"slug"`
	Title string     `yaml:"title"`
	Items []itemYAML `yaml:"items"`
}

type itemYAML struct {
	ID      string `yaml:"id"`
	Date    string `yaml:"date"`
	Content string `yaml:"content"`
	Tag     string `yaml:"tag"`
}

// DocumentParser разбирает документ с новостями в формате YAML или JSON.
type DocumentParser struct {
	log *slog.Logger
}

func NewDocumentParser(log *slog.Logger) *DocumentParser {
	return &DocumentParser{
		log: log,
	}
}

// Parse читает документ и возвращает секцию с элементами в исходном порядке.
// JSON разбирается тем же декодером, так как является подмножеством YAML.
func (p *DocumentParser) Parse(ctx context.Context, reader io.Reader) (*domain.Section, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var doc documentYAML
	decoder := yaml.NewDecoder(reader)
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidDocument)
		}
		p.log.Error("Error decoding news document",
			slog.String("component", "parser"),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	section := domain.Section{
		Slug:  strings.TrimSpace(doc.Slug),
		Title: doc.Title,
		Items: make([]domain.Item, 0, len(doc.Items)),
	}
	for i, itemDTO := range doc.Items {
		if strings.TrimSpace(itemDTO.Content) == "" {
			return nil, fmt.Errorf("%w: items[%d]: content is required", ErrInvalidDocument, i)
		}
		section.Items = append(section.Items, domain.Item{
			ID:      itemDTO.ID,
			Date:    itemDTO.Date,
			Content: itemDTO.Content,
			Tag:     itemDTO.Tag,
		})
	}
	p.log.Debug("News document parsed",
		slog.String("component", "parser"),
		slog.Int("items_found", len(section.Items)),
	)
	return &section, nil
}
