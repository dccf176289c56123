package newslist

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	minDateColumnWidth = 8
	defaultTermWidth   = 80
)

// TerminalOptions управляет выводом секции в терминал.
type TerminalOptions struct {
	// Width - ширина вывода в колонках; 0 означает 80.
	Width int
	// Dark выбирает палитру бейджей для темного фона.
	Dark bool
	// Output определяет цветовой профиль; nil означает вывод без цветов.
	Output io.Writer
}

// RenderTerminal отрисовывает дерево для терминала средствами lipgloss.
// Анимация в терминале не воспроизводится, порядок строк сохраняется.
func RenderTerminal(tree Tree, opts TerminalOptions) string {
	out := opts.Output
	if out == nil {
		out = io.Discard
	}
	width := opts.Width
	if width <= 0 {
		width = defaultTermWidth
	}
	r := lipgloss.NewRenderer(out)
	r.SetHasDarkBackground(opts.Dark)

	headingStyle := r.NewStyle().
		Bold(true).
		MarginBottom(1)
	dateWidth := dateColumnWidth(tree.Rows)
	dateStyle := r.NewStyle().
		Width(dateWidth).
		Foreground(lipgloss.AdaptiveColor{Light: "#a3a3a3", Dark: "#737373"})
	rowStyle := r.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(lipgloss.AdaptiveColor{Light: "#e5e5e5", Dark: "#404040"}).
		PaddingLeft(1)
	contentWidth := width - dateWidth - 4
	if contentWidth < 10 {
		contentWidth = 10
	}
	contentStyle := r.NewStyle().
		Width(contentWidth).
		Foreground(lipgloss.AdaptiveColor{Light: "#404040", Dark: "#d4d4d4"})

	lines := []string{headingStyle.Render(tree.Heading)}
	for _, row := range tree.Rows {
		body := row.Content
		if row.Badge != nil {
			badge := r.NewStyle().
				Padding(0, 1).
				Foreground(lipgloss.AdaptiveColor{Light: row.Badge.Style.Light.Text, Dark: row.Badge.Style.Dark.Text}).
				Background(lipgloss.AdaptiveColor{Light: row.Badge.Style.Light.Background, Dark: row.Badge.Style.Dark.Background}).
				Render(row.Badge.Label)
			body = badge + " " + body
		}
		line := lipgloss.JoinHorizontal(lipgloss.Top,
			dateStyle.Render(row.DateLabel),
			" ",
			contentStyle.Render(body),
		)
		lines = append(lines, rowStyle.Render(line))
	}
	return strings.Join(lines, "\n") + "\n"
}

// dateColumnWidth - ширина колонки дат, одинаковая для всех строк секции.
func dateColumnWidth(rows []Row) int {
	width := minDateColumnWidth
	for _, row := range rows {
		if w := lipgloss.Width(row.DateLabel); w > width {
			width = w
		}
	}
	return width
}
