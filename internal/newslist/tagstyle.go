package newslist

import "strings"

// Palette - пара цветов фона и текста бейджа.
type Palette struct {
	Background string `json:"background"`
	Text       string `json:"text"`
}

// TagStyle описывает оформление бейджа тега.
// Class содержит набор utility-классов для светлой и темной темы,
// Light и Dark - те же цвета в явном виде для HTML-страницы и терминала.
type TagStyle struct {
	Name  string  `json:"name"`
	Class string  `json:"class"`
	Light Palette `json:"light"`
	Dark  Palette `json:"dark"`
}

// CSSClass возвращает имя CSS-класса бейджа, используемого страницей по умолчанию.
func (s TagStyle) CSSClass() string {
	return "newsboard-tag-" + strings.ToLower(s.Name)
}

// DefaultTag - тег, стиль которого применяется к неизвестным тегам.
const DefaultTag = "News"

var knownTags = []string{"Award", "Conference", "Paper", "Talk", "News"}

var tagStyles = map[string]TagStyle{
	"Award": {
		Name:  "Award",
		Class: "bg-amber-100 text-amber-700 dark:bg-amber-900/30 dark:text-amber-400",
		Light: Palette{Background: "#fef3c7", Text: "#b45309"},
		Dark:  Palette{Background: "#3b2a12", Text: "#fbbf24"},
	},
	"Conference": {
		Name:  "Conference",
		Class: "bg-blue-100 text-blue-700 dark:bg-blue-900/30 dark:text-blue-400",
		Light: Palette{Background: "#dbeafe", Text: "#1d4ed8"},
		Dark:  Palette{Background: "#1e2a4a", Text: "#60a5fa"},
	},
	"Paper": {
		Name:  "Paper",
		Class: "bg-green-100 text-green-700 dark:bg-green-900/30 dark:text-green-400",
		Light: Palette{Background: "#dcfce7", Text: "#15803d"},
		Dark:  Palette{Background: "#183a26", Text: "#4ade80"},
	},
	"Talk": {
		Name:  "Talk",
		Class: "bg-purple-100 text-purple-700 dark:bg-purple-900/30 dark:text-purple-400",
		Light: Palette{Background: "#f3e8ff", Text: "#7e22ce"},
		Dark:  Palette{Background: "#2f1f47", Text: "#c084fc"},
	},
	"News": {
		Name:  "News",
		Class: "bg-neutral-100 text-neutral-600 dark:bg-neutral-800 dark:text-neutral-400",
		Light: Palette{Background: "#f5f5f5", Text: "#525252"},
		Dark:  Palette{Background: "#262626", Text: "#a3a3a3"},
	},
}

// ResolveStyle возвращает стиль бейджа для тега.
// Пустой тег означает отсутствие бейджа и дает nil.
// Неизвестный тег не отбрасывается: он оформляется стилем DefaultTag.
// Возвращается копия записи таблицы, таблица остается неизменной.
func ResolveStyle(tag string) *TagStyle {
	if tag == "" {
		return nil
	}
	style, ok := tagStyles[tag]
	if !ok {
		style = tagStyles[DefaultTag]
	}
	return &style
}

// IsKnownTag сообщает, есть ли у тега собственный стиль.
func IsKnownTag(tag string) bool {
	_, ok := tagStyles[tag]
	return ok
}

// KnownTags возвращает теги с собственным стилем в фиксированном порядке.
func KnownTags() []string {
	out := make([]string, len(knownTags))
	copy(out, knownTags)
	return out
}

// KnownStyles возвращает стили всех известных тегов в порядке KnownTags.
func KnownStyles() []TagStyle {
	out := make([]TagStyle, 0, len(knownTags))
	for _, tag := range knownTags {
		out = append(out, tagStyles[tag])
	}
	return out
}
