package controller

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mouse-blink/jstruct/internal/domain"
	m "github.com/mouse-blink/jstruct/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(1, 0, 0, 2)

	pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 0, 1, 2)

	areaStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	areaFocusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6")).Bold(true)

	rowFocusedStyle  = lipgloss.NewStyle().Background(lipgloss.Color("237"))
	cellFocusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11"))

	labelStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	textStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	placeholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Faint(true)
	choiceStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	buttonStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)

	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Padding(1, 0, 0, 2)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Padding(0, 0, 0, 2)
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Padding(0, 0, 0, 2)

	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	hunkStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// gridRenderer draws a grid. When showFocus is false the focus is ignored;
// editor, when set, replaces the focused cell.
type gridRenderer struct {
	grid      domain.Grid
	focus     m.FocusState
	showFocus bool
	editor    string
}

func (r gridRenderer) render() string {
	if len(r.grid.Areas) == 0 {
		return "  (no members)\n"
	}

	var b strings.Builder

	for a, area := range r.grid.Areas {
		style := areaStyle
		if r.showFocus && r.focus.Level == m.FocusArea && r.focus.AreaIndex == a {
			style = areaFocusedStyle
		}

		b.WriteString("  " + style.Render(area.Kind.Title()) + "\n")

		for i, row := range area.Rows {
			b.WriteString("    " + r.renderRow(a, i, row) + "\n")
		}

		b.WriteString("\n")
	}

	return b.String()
}

func (r gridRenderer) renderRow(area, index int, row domain.Row) string {
	rowFocused := r.showFocus && r.focus.Level != m.FocusArea &&
		r.focus.AreaIndex == area && r.focus.RowIndex == index

	parts := make([]string, 0, len(row.Cells))

	for c, cell := range row.Cells {
		if !cell.Visible {
			continue
		}

		if rowFocused && r.focus.Level == m.FocusColumn && r.focus.ColumnIndex == c {
			if r.editor != "" {
				parts = append(parts, r.editor)
			} else {
				parts = append(parts, cellFocusedStyle.Render(cellText(cell)))
			}

			continue
		}

		parts = append(parts, renderCell(cell))
	}

	line := strings.Join(parts, " ")
	if rowFocused && r.focus.Level == m.FocusRow {
		return rowFocusedStyle.Render("› " + line)
	}

	return "  " + line
}

func cellText(cell domain.Cell) string {
	switch cell.Kind {
	case domain.CellChoice:
		return "‹" + cell.Value + "›"
	case domain.CellButton:
		return "[ " + cell.Value + " ]"
	case domain.CellText:
		if cell.Value == "" {
			return cell.Placeholder
		}
	case domain.CellLabel:
	}

	return cell.Value
}

func renderCell(cell domain.Cell) string {
	text := cellText(cell)

	switch cell.Kind {
	case domain.CellChoice:
		return choiceStyle.Render(text)
	case domain.CellButton:
		return buttonStyle.Render(text)
	case domain.CellText:
		if cell.Value == "" {
			return placeholderStyle.Render(text)
		}

		return textStyle.Render(text)
	case domain.CellLabel:
	}

	return labelStyle.Render(text)
}

func colorDiff(diff string) string {
	lines := strings.SplitAfter(diff, "\n")

	var b strings.Builder

	for _, line := range lines {
		body := strings.TrimSuffix(line, "\n")
		nl := line[len(body):]

		switch {
		case strings.HasPrefix(body, "+++"), strings.HasPrefix(body, "---"):
			b.WriteString(labelStyle.Bold(true).Render(body))
		case strings.HasPrefix(body, "@@"):
			b.WriteString(hunkStyle.Render(body))
		case strings.HasPrefix(body, "+"):
			b.WriteString(addedStyle.Render(body))
		case strings.HasPrefix(body, "-"):
			b.WriteString(removedStyle.Render(body))
		default:
			b.WriteString(body)
		}

		b.WriteString(nl)
	}

	return b.String()
}
