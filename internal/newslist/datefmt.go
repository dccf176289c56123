package newslist

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// dateLabelLayout - короткая форма даты: сокращенный месяц и год из четырех цифр.
// Названия месяцев в пакете time всегда английские, поэтому результат
// не зависит от локали окружения.
const dateLabelLayout = "Jan 2006"

// FormatDate преобразует строку с датой в подпись вида "Jan 2024".
// Разбор выполняется в UTC, чтобы дата без времени не сдвигалась
// на соседний месяц из-за часового пояса сервера.
// Если строку не удалось разобрать, она возвращается без изменений.
func FormatDate(dateStr string) string {
	label, _ := formatDate(dateStr)
	return label
}

// formatDate дополнительно сообщает, удалось ли разобрать дату.
func formatDate(dateStr string) (string, bool) {
	trimmed := strings.TrimSpace(dateStr)
	if trimmed == "" {
		return dateStr, false
	}
	t, err := dateparse.ParseIn(trimmed, time.UTC)
	if err != nil || !hasExplicitYear(trimmed, t) {
		return dateStr, false
	}
	return t.In(time.UTC).Format(dateLabelLayout), true
}

// hasExplicitYear отсекает результаты, которые парсер достроил по неполной
// строке: год должен быть от 1 до 9999 и явно присутствовать во входе.
// Так "1.2" не превращается в "Jan 0000", а число не читается как unix-время.
func hasExplicitYear(input string, t time.Time) bool {
	year := t.Year()
	if year < 1 || year > 9999 {
		return false
	}
	return strings.Contains(input, fmt.Sprintf("%04d", year))
}
