package newslist

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"strconv"
	"time"
)

//go:embed section.html
var sectionTemplateSource string

//go:embed page.html
var pageTemplateSource string

var templateFuncs = template.FuncMap{
	"ms": func(d time.Duration) template.CSS {
		return template.CSS(strconv.FormatInt(d.Milliseconds(), 10) + "ms")
	},
	"px": func(v float64) template.CSS {
		return template.CSS(strconv.FormatFloat(v, 'f', -1, 64) + "px")
	},
	"num": func(v float64) template.CSS {
		return template.CSS(strconv.FormatFloat(v, 'f', -1, 64))
	},
	// цвета берутся только из фиксированной таблицы стилей
	"color": func(hex string) template.CSS {
		return template.CSS(hex)
	},
}

var (
	sectionTemplate = template.Must(template.New("section").Funcs(templateFuncs).Parse(sectionTemplateSource))
	pageTemplate    = template.Must(template.Must(sectionTemplate.Clone()).New("page").Parse(pageTemplateSource))
)

type pageData struct {
	Tree    Tree
	Section Transition
	Row     Transition
	Styles  []TagStyle
}

// WriteHTML записывает HTML-фрагмент секции.
// Анимация появления задается CSS-свойствами animation-duration и
// animation-delay у каждого элемента; ключевые кадры определяет страница.
func WriteHTML(w io.Writer, tree Tree) error {
	if err := sectionTemplate.Execute(w, tree); err != nil {
		return fmt.Errorf("newslist.WriteHTML: %w", err)
	}
	return nil
}

// WritePage записывает полную HTML-страницу с одной секцией,
// стилями бейджей для светлой и темной темы и ключевыми кадрами анимации.
func WritePage(w io.Writer, tree Tree) error {
	data := pageData{
		Tree:    tree,
		Section: SectionEntrance(),
		Row:     RowEntrance(0),
		Styles:  KnownStyles(),
	}
	if err := pageTemplate.ExecuteTemplate(w, "page", data); err != nil {
		return fmt.Errorf("newslist.WritePage: %w", err)
	}
	return nil
}
