package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/jeanpaul/rolodex/internal/book"
)

// TableRenderer renders records as a Name / Birthday / Phones table. It
// satisfies the cli.Renderer interface.
type TableRenderer struct{}

func (TableRenderer) Table(recs []*book.Record) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(TableBorderStyle).
		Headers("Name", "Birthday", "Phones").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return TableHeaderStyle
			}
			return TableCellStyle
		})

	for _, rec := range recs {
		birthday := "-"
		if b, ok := rec.Birthday(); ok {
			birthday = b.String()
		}
		phones := "-"
		if len(rec.Phones()) > 0 {
			parts := make([]string, len(rec.Phones()))
			for i, p := range rec.Phones() {
				parts[i] = string(p)
			}
			phones = strings.Join(parts, ", ")
		}
		t.Row(string(rec.Name()), birthday, phones)
	}
	return t.Render()
}
