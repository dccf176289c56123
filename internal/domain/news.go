package domain

// DefaultTitle используется, когда у секции не задан заголовок.
const DefaultTitle = "News"

// DefaultSlug - ключ секции по умолчанию.
const DefaultSlug = "news"

// Item представляет отдельное объявление в списке новостей.
// Date хранится как есть: строка не обязана быть корректной датой.
// Пустой Tag означает отсутствие тега.
type Item struct {
	ID      string `json:"id,omitempty" yaml:"id,omitempty"`
	Date    string `json:"date" yaml:"date"`
	Content string `json:"content" yaml:"content"`
	Tag     string `json:"tag,omitempty" yaml:"tag,omitempty"`
}

// Section представляет упорядоченный список новостей с заголовком.
// Порядок Items является порядком отображения и задается вызывающей стороной.
type Section struct {
	Slug  string `json:"slug,omitempty" yaml:"slug,omitempty"`
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
	Items []Item `json:"items" yaml:"items"`
}

// HeadingOrDefault возвращает заголовок секции или DefaultTitle.
func (s Section) HeadingOrDefault() string {
	if s.Title == "" {
		return DefaultTitle
	}
	return s.Title
}

// SlugOrDefault возвращает ключ секции или DefaultSlug.
func (s Section) SlugOrDefault() string {
	if s.Slug == "" {
		return DefaultSlug
	}
	return s.Slug
}
