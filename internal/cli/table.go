package cli

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	colGap     = 2
	headerTint = lipgloss.Color("#fe8019")
	ruleTint   = lipgloss.Color("#928374")
)

// renderTable writes headers, a rule and rows with every column padded to its
// widest cell. Widths are display cells, so wide Japanese text stays aligned.
// Colour is only emitted when w is a terminal.
func renderTable(w io.Writer, headers []string, rows [][]string) error {
	if len(headers) == 0 {
		return nil
	}
	r := lipgloss.NewRenderer(w)
	headerStyle := r.NewStyle().Foreground(headerTint).Bold(true)
	ruleStyle := r.NewStyle().Foreground(ruleTint)

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < len(headers) && i < len(row); i++ {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}

	var b strings.Builder
	line := func(cells []string, style func(string) string) {
		for i := range headers {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			b.WriteString(style(cell))
			if i < len(headers)-1 {
				b.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(cell)+colGap))
			}
		}
		b.WriteString("\n")
	}

	line(headers, func(s string) string { return headerStyle.Render(s) })
	rule := make([]string, len(widths))
	for i, n := range widths {
		rule[i] = strings.Repeat("─", n)
	}
	line(rule, func(s string) string { return ruleStyle.Render(s) })
	for _, row := range rows {
		line(row, func(s string) string { return s })
	}

	_, err := io.WriteString(w, b.String())
	return err
}
