// Package table renders query results as an aligned terminal table.
package table

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/eduardofuncao/pgbridge/internal/styles"
)

const (
	maxCellWidth = 36
	ellipsis     = "…"
)

// Render prints column headers and rows with width-aware alignment,
// followed by a row-count/elapsed footer.
func Render(columns []string, data [][]string, elapsed time.Duration) error {
	if len(columns) == 0 {
		fmt.Println(styles.Faint.Render("Nothing to show here..."))
		return nil
	}

	widths := columnWidths(columns, data)

	var b strings.Builder
	b.WriteString(renderRow(columns, widths, styles.TableHeader))
	b.WriteString("\n")
	b.WriteString(renderSeparator(widths))
	b.WriteString("\n")
	for _, row := range data {
		b.WriteString(renderRow(row, widths, styles.TableCell))
		b.WriteString("\n")
	}
	b.WriteString(styles.Faint.Render(
		fmt.Sprintf("%dx%d in %.2fs", len(data), len(columns), elapsed.Seconds())))

	fmt.Println(b.String())
	return nil
}

// TSV flattens the result for clipboard export.
func TSV(columns []string, data [][]string) string {
	var b strings.Builder
	b.WriteString(strings.Join(columns, "\t"))
	for _, row := range data {
		b.WriteString("\n")
		b.WriteString(strings.Join(row, "\t"))
	}
	return b.String()
}

func columnWidths(columns []string, data [][]string) []int {
	widths := make([]int, len(columns))
	for i, col := range columns {
		widths[i] = runewidth.StringWidth(col)
	}
	for _, row := range data {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	for i := range widths {
		if widths[i] > maxCellWidth {
			widths[i] = maxCellWidth
		}
	}
	return widths
}

func renderRow(cells []string, widths []int, style lipgloss.Style) string {
	rendered := make([]string, len(widths))
	for i := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		cell = runewidth.Truncate(cell, widths[i], ellipsis)
		cell = runewidth.FillRight(cell, widths[i])
		rendered[i] = style.Render(cell)
	}
	return strings.Join(rendered, styles.TableBorder.Render(" │ "))
}

func renderSeparator(widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = strings.Repeat("─", w)
	}
	return styles.TableBorder.Render(strings.Join(parts, "─┼─"))
}
