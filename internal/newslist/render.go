package newslist

import (
	"encoding/json"
	"strconv"
	"time"

	"newsboard/internal/domain"
	"newsboard/internal/metrics"
)

const (
	sectionDuration = 600 * time.Millisecond
	sectionDelay    = 500 * time.Millisecond
	sectionOffsetY  = 20

	rowDuration = 300 * time.Millisecond
	rowStagger  = 50 * time.Millisecond
	rowOffsetX  = -8
)

// Motion - визуальное состояние элемента: прозрачность и смещение в пикселях.
type Motion struct {
	Opacity float64 `json:"opacity"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
}

// Transition описывает однократную анимацию появления элемента:
// из Initial в Animate за Duration, начиная через Delay после монтирования.
type Transition struct {
	Initial  Motion
	Animate  Motion
	Duration time.Duration
	Delay    time.Duration
}

// MarshalJSON отдает длительности в миллисекундах.
func (t Transition) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Initial    Motion `json:"initial"`
		Animate    Motion `json:"animate"`
		DurationMS int64  `json:"duration_ms"`
		DelayMS    int64  `json:"delay_ms"`
	}{
		Initial:    t.Initial,
		Animate:    t.Animate,
		DurationMS: t.Duration.Milliseconds(),
		DelayMS:    t.Delay.Milliseconds(),
	})
}

// Badge - бейдж тега. Label всегда совпадает с исходным тегом,
// даже если стиль взят у тега по умолчанию.
type Badge struct {
	Label string   `json:"label"`
	Style TagStyle `json:"style"`
}

// Row - строка списка: подпись даты, необязательный бейдж и текст.
type Row struct {
	Key       string     `json:"key"`
	Index     int        `json:"index"`
	DateLabel string     `json:"date_label"`
	Badge     *Badge     `json:"badge,omitempty"`
	Content   string     `json:"content"`
	Entrance  Transition `json:"entrance"`
}

// Tree - визуальное дерево секции новостей.
type Tree struct {
	Heading  string     `json:"heading"`
	Rows     []Row      `json:"rows"`
	Entrance Transition `json:"entrance"`
}

// Render строит визуальное дерево секции.
// Строки идут строго в порядке section.Items: без сортировки, фильтрации
// и удаления дубликатов. Пустой список дает заголовок без строк.
// Функция не меняет входные данные и безопасна для параллельного вызова.
func Render(section domain.Section) Tree {
	tree := Tree{
		Heading:  section.HeadingOrDefault(),
		Rows:     make([]Row, 0, len(section.Items)),
		Entrance: SectionEntrance(),
	}
	for i, item := range section.Items {
		label, parsed := formatDate(item.Date)
		if !parsed {
			metrics.DateFallbacksTotal.Inc()
		}
		row := Row{
			Key:       rowKey(item, i),
			Index:     i,
			DateLabel: label,
			Content:   item.Content,
			Entrance:  RowEntrance(i),
		}
		if style := ResolveStyle(item.Tag); style != nil {
			if !IsKnownTag(item.Tag) {
				metrics.UnknownTagsTotal.Inc()
			}
			row.Badge = &Badge{Label: item.Tag, Style: *style}
		}
		tree.Rows = append(tree.Rows, row)
	}
	metrics.RenderedRows.Observe(float64(len(tree.Rows)))
	return tree
}

// SectionEntrance - появление секции целиком: снизу вверх с проявлением.
func SectionEntrance() Transition {
	return Transition{
		Initial:  Motion{Opacity: 0, Y: sectionOffsetY},
		Animate:  Motion{Opacity: 1},
		Duration: sectionDuration,
		Delay:    sectionDelay,
	}
}

// RowEntrance - появление строки слева направо.
// Задержка растет с индексом строки и дает каскадный эффект.
func RowEntrance(index int) Transition {
	if index < 0 {
		index = 0
	}
	return Transition{
		Initial:  Motion{Opacity: 0, X: rowOffsetX},
		Animate:  Motion{Opacity: 1},
		Duration: rowDuration,
		Delay:    time.Duration(index) * rowStagger,
	}
}

// rowKey использует явный ID, если он задан; иначе ключ строится по позиции
// и остается стабильным только пока список не переупорядочивается.
func rowKey(item domain.Item, index int) string {
	if item.ID != "" {
		return item.ID
	}
	return "news-" + strconv.Itoa(index)
}
