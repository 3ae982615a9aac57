package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/adminboard/internal/listctl"
	"github.com/rshade/adminboard/internal/pagination"
)

// Column widths.
const (
	colWidthID  = 4
	colWidthMax = 30
	colGap      = "  "
)

// statusField names the column rendered as a badge.
const statusField = "status"

// Column is one table column.
type Column struct {
	Field listctl.Field
	Width int
}

// Columns returns the id column followed by every schema field, sized to fit
// the labels and the given rows.
func Columns(schema *listctl.Schema, rows []listctl.Record, f *Formatter) []Column {
	cols := []Column{{Field: listctl.Field{Name: listctl.IDField, Label: "ID"}, Width: colWidthID}}
	for _, field := range schema.Fields {
		cols = append(cols, Column{Field: field, Width: len([]rune(field.Label))})
	}
	for _, r := range rows {
		for i := range cols {
			w := len([]rune(f.Cell(cols[i].Field, r)))
			cols[i].Width = min(colWidthMax, max(cols[i].Width, w))
		}
	}
	return cols
}

// headerLine renders the column labels.
func headerLine(cols []Column) string {
	parts := make([]string, 0, len(cols))
	for _, c := range cols {
		parts = append(parts, fmt.Sprintf("%-*s", c.Width, strings.ToUpper(c.Field.Label)))
	}
	return strings.Join(parts, colGap)
}

// rowLine renders one record. When styled, status badges are colored and the
// pending edit, if it targets this row, replaces the edited cell.
func rowLine(cols []Column, r listctl.Record, f *Formatter, edit *listctl.EditBuffer, styled bool) string {
	parts := make([]string, 0, len(cols))
	for _, c := range cols {
		if edit != nil && edit.RecordID == r.ID() && edit.Field == c.Field.Name {
			// The edited cell may grow past its column.
			parts = append(parts, fmt.Sprintf("%-*s", c.Width, "["+edit.Value+"▏]"))
			continue
		}
		text := f.Cell(c.Field, r)
		cell := fmt.Sprintf("%-*s", c.Width, truncate(text, c.Width))
		if styled && c.Field.Name == statusField {
			cell = BadgeStyle(text).Render(cell)
		}
		parts = append(parts, cell)
	}
	return strings.Join(parts, colGap)
}

// PageBar renders the pagination control as plain text, for example
// "‹ Prev  1 … 4 [5] 6 … 10  Next ›". Disabled arrows are omitted.
func PageBar(page listctl.Page) string {
	return pageBar(page, func(n int) string { return fmt.Sprintf("[%d]", n) }, func(s string) string { return s })
}

// styledPageBar renders the pagination control with the current page
// highlighted and disabled arrows dimmed.
func styledPageBar(page listctl.Page) string {
	return pageBar(page,
		func(n int) string { return CurrentPageStyle.Render(fmt.Sprintf(" %d ", n)) },
		func(s string) string { return SubtleStyle.Render(s) },
	)
}

func pageBar(page listctl.Page, current func(int) string, disabled func(string) string) string {
	var parts []string

	prev := "‹ Prev"
	if page.HasPrevious {
		parts = append(parts, prev)
	} else {
		parts = append(parts, disabled(prev))
	}

	for _, l := range page.Links {
		switch {
		case l.Ellipsis:
			parts = append(parts, "…")
		case l.Current:
			parts = append(parts, current(l.Page))
		default:
			parts = append(parts, fmt.Sprintf("%d", l.Page))
		}
	}

	next := "Next ›"
	if page.HasNext {
		parts = append(parts, next)
	} else {
		parts = append(parts, disabled(next))
	}

	return strings.Join(parts, " ")
}

// RenderPage renders a page as a styled, non-interactive table with caption
// and page bar.
func RenderPage(schema *listctl.Schema, page listctl.Page, f *Formatter) string {
	var b strings.Builder

	title := Title(schema.Name)
	if page.Query != "" {
		title += SubtleStyle.Render(fmt.Sprintf("  matching %q", page.Query))
	}
	b.WriteString(TitleStyle.Render(title))
	b.WriteString("\n\n")

	cols := Columns(schema, page.Rows, f)
	b.WriteString(TableHeaderStyle.Render(headerLine(cols)))
	b.WriteString("\n")
	if len(page.Rows) == 0 {
		b.WriteString(SubtleStyle.Render(fmt.Sprintf("No %s found.", schema.Name)))
		b.WriteString("\n")
	}
	for _, r := range page.Rows {
		b.WriteString(rowLine(cols, r, f, nil, true))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		SubtleStyle.Render(page.Caption()), "    ", styledPageBar(page)))
	b.WriteString("\n")
	return b.String()
}

// sortLabel describes the active sort.
func sortLabel(field, order string) string {
	if field == "" {
		return "none"
	}
	arrow := "↑"
	if order == pagination.SortOrderDesc {
		arrow = "↓"
	}
	return field + " " + arrow
}
