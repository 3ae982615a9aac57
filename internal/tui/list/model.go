package listview

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// RenderFunc renders one row. The selected parameter reports whether the
// cursor is on it.
type RenderFunc[T any] func(item T, selected bool) string

// CursorModel is a selectable list of rows.
type CursorModel[T any] struct {
	items      []T
	renderFunc RenderFunc[T]
	selected   int
}

// NewCursorModel creates a cursor over items with the first row selected.
func NewCursorModel[T any](items []T, renderFunc RenderFunc[T]) *CursorModel[T] {
	return &CursorModel[T]{items: items, renderFunc: renderFunc}
}

// Init implements tea.Model.
func (m *CursorModel[T]) Init() tea.Cmd {
	return nil
}

// Update moves the cursor on up/down, j/k, home and end.
//
//nolint:exhaustive // Only navigation keys are handled.
func (m *CursorModel[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || len(m.items) == 0 {
		return m, nil
	}

	switch key.Type {
	case tea.KeyUp:
		m.SetSelected(m.selected - 1)
	case tea.KeyDown:
		m.SetSelected(m.selected + 1)
	case tea.KeyHome:
		m.SetSelected(0)
	case tea.KeyEnd:
		m.SetSelected(len(m.items) - 1)
	case tea.KeyRunes:
		if len(key.Runes) == 1 {
			switch key.Runes[0] {
			case 'j':
				m.SetSelected(m.selected + 1)
			case 'k':
				m.SetSelected(m.selected - 1)
			}
		}
	default:
	}
	return m, nil
}

// View renders every row, one per line.
func (m *CursorModel[T]) View() string {
	lines := make([]string, 0, len(m.items))
	for i, item := range m.items {
		lines = append(lines, m.renderFunc(item, i == m.selected))
	}
	return strings.Join(lines, "\n")
}

// SetItems replaces the rows, keeping the selection index in range.
func (m *CursorModel[T]) SetItems(items []T) {
	m.items = items
	m.SetSelected(m.selected)
}

// SetRenderFunc replaces the row renderer.
func (m *CursorModel[T]) SetRenderFunc(fn RenderFunc[T]) {
	m.renderFunc = fn
}

// Items returns the rows.
func (m *CursorModel[T]) Items() []T {
	return m.items
}

// ItemCount returns the number of rows.
func (m *CursorModel[T]) ItemCount() int {
	return len(m.items)
}

// Selected returns the selected row index.
func (m *CursorModel[T]) Selected() int {
	return m.selected
}

// SetSelected moves the cursor to index, capped to the valid range.
func (m *CursorModel[T]) SetSelected(index int) {
	switch {
	case len(m.items) == 0 || index < 0:
		m.selected = 0
	case index >= len(m.items):
		m.selected = len(m.items) - 1
	default:
		m.selected = index
	}
}

// SelectedItem returns the selected row, or nil when there are no rows.
func (m *CursorModel[T]) SelectedItem() *T {
	if len(m.items) == 0 {
		return nil
	}
	return &m.items[m.selected]
}
