package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorCyan)
	tableBorderStyle = lipgloss.NewStyle().Foreground(ColorDimGray)
	tableCellStyle   = lipgloss.NewStyle().PaddingRight(1)
)

// TemplateRow describes one template kind in the --list-templates table.
type TemplateRow struct {
	Name        string
	Aliases     string
	Dir         string
	Description string
	Default     bool
}

// RenderTemplateTable renders the available template kinds, one per row.
func RenderTemplateTable(rows []TemplateRow) string {
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(tableBorderStyle).
		Headers("TEMPLATE", "ALIASES", "DIRECTORY", "DESCRIPTION").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return tableCellStyle
		})

	for _, r := range rows {
		name := r.Name
		if r.Default {
			name += " (default)"
		}
		tbl.Row(name, StyleDim.Render(r.Aliases), r.Dir, r.Description)
	}

	return tbl.String()
}
