package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// writeTable draws an ASCII grid. Cells may span several lines.
// writeTable 绘制 ASCII 表格，单元格可以包含多行。
func (p *Printer) writeTable(columns []string, rows [][]string) error {
	widths := make([]int, len(columns))
	for i, c := range columns {
		widths[i] = cellWidth(c)
	}
	for _, row := range rows {
		for i, v := range row {
			if w := cellWidth(v); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	sep := separator(widths)
	b.WriteString(sep)
	writeRow(&b, widths, columns, func(s string) string { return p.header.Render(s) })
	b.WriteString(sep)
	for _, row := range rows {
		writeRow(&b, widths, row, nil)
	}
	if len(rows) > 0 {
		b.WriteString(sep)
	}

	_, err := p.w.Write([]byte(b.String()))
	return err
}

func separator(widths []int) string {
	var b strings.Builder
	b.WriteByte('+')
	for _, w := range widths {
		b.WriteString(strings.Repeat("-", w+2))
		b.WriteByte('+')
	}
	b.WriteByte('\n')
	return b.String()
}

func writeRow(b *strings.Builder, widths []int, cells []string, style func(string) string) {
	lines := make([][]string, len(cells))
	height := 1
	for i, c := range cells {
		lines[i] = strings.Split(c, "\n")
		if len(lines[i]) > height {
			height = len(lines[i])
		}
	}

	for l := 0; l < height; l++ {
		b.WriteByte('|')
		for i, w := range widths {
			text := ""
			if l < len(lines[i]) {
				text = lines[i][l]
			}
			pad := strings.Repeat(" ", w-lipgloss.Width(text))
			if style != nil && text != "" {
				text = style(text)
			}
			b.WriteString(" " + text + pad + " |")
		}
		b.WriteByte('\n')
	}
}

// cellWidth is the display width of the widest line in s.
func cellWidth(s string) int {
	w := 0
	for _, line := range strings.Split(s, "\n") {
		if lw := lipgloss.Width(line); lw > w {
			w = lw
		}
	}
	return w
}
