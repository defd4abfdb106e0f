package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

const maxCellWidth = 40

// table aligns columns by display width so accented and wide labels line up.
type table struct {
	header []string
	rows   [][]string
	right  map[int]bool // Right-aligned (numeric) columns
}

func newTable(header ...string) *table {
	return &table{header: header, right: map[int]bool{}}
}

// alignRight marks numeric columns.
func (t *table) alignRight(cols ...int) *table {
	for _, c := range cols {
		t.right[c] = true
	}
	return t
}

func (t *table) add(cells ...string) {
	t.rows = append(t.rows, cells)
}

// separator adds a rule line before the next row, typically the totals.
func (t *table) separator() {
	t.rows = append(t.rows, nil)
}

func (t *table) widths() []int {
	widths := make([]int, len(t.header))
	for i, h := range t.header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], min(runewidth.StringWidth(cell), maxCellWidth))
			}
		}
	}
	return widths
}

func (t *table) line(cells []string, widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		var cell string
		if i < len(cells) {
			cell = runewidth.Truncate(cells[i], w, "…")
		}
		if t.right[i] {
			parts[i] = runewidth.FillLeft(cell, w)
		} else {
			parts[i] = runewidth.FillRight(cell, w)
		}
	}
	return strings.TrimRight(strings.Join(parts, "  "), " ")
}

func (t *table) render(w io.Writer) {
	widths := t.widths()
	total := 2 * (len(widths) - 1)
	for _, width := range widths {
		total += width
	}

	_, _ = fmt.Fprintln(w, headerStyle.Render(t.line(t.header, widths)))
	_, _ = fmt.Fprintln(w, strings.Repeat("─", total))
	for _, row := range t.rows {
		if row == nil {
			_, _ = fmt.Fprintln(w, strings.Repeat("─", total))
			continue
		}
		_, _ = fmt.Fprintln(w, t.line(row, widths))
	}
}
