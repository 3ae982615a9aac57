package tui

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/adminboard/internal/listctl"
	"github.com/rshade/adminboard/internal/notify"
	"github.com/rshade/adminboard/internal/pagination"
	listview "github.com/rshade/adminboard/internal/tui/list"
)

// Key strings.
const (
	keyEnter    = "enter"
	keyEsc      = "esc"
	keyTab      = "tab"
	keyShiftTab = "shift+tab"
	keyCtrlC    = "ctrl+c"
	keySlash    = "/"
)

// PageMode is the interaction mode of a PageModel.
type PageMode int

const (
	// ModeBrowse navigates rows and pages.
	ModeBrowse PageMode = iota
	// ModeSearch sends keystrokes to the search box.
	ModeSearch
	// ModeAdd shows the create form.
	ModeAdd
	// ModeEdit edits one cell of the selected row.
	ModeEdit
	// ModeConfirmDelete waits for y/n.
	ModeConfirmDelete
)

// PageModel is the Bubble Tea model for one list page. It renders the
// controller's current page and forwards every user action to it.
type PageModel struct {
	ctrl   *listctl.Controller
	toasts *notify.Recorder
	format *Formatter

	mode PageMode
	rows *listview.CursorModel[listctl.Record]

	search textinput.Model

	form      []textinput.Model
	formField []listctl.Field
	formFocus int

	editFields []listctl.Field
	editFocus  int

	pendingDelete string

	cols []Column

	sortFields []string
	sortIdx    int

	width    int
	height   int
	quitting bool
}

// NewPageModel creates a page over ctrl. toasts must be the sink the
// controller notifies; its latest entry is shown as the toast line.
func NewPageModel(ctrl *listctl.Controller, toasts *notify.Recorder, currency string) *PageModel {
	m := &PageModel{
		ctrl:       ctrl,
		toasts:     toasts,
		format:     NewFormatter(currency),
		search:     newSearchInput(ctrl.Schema().Name),
		sortFields: append([]string{""}, fieldNames(ctrl.Schema().Fields)...),
		width:      defaultWidth,
		height:     defaultHeight,
	}
	m.search.SetValue(ctrl.Query())
	if field, _ := ctrl.Sort(); field != "" {
		m.sortIdx = max(slices.Index(m.sortFields, field), 0)
	}
	m.rows = listview.NewCursorModel[listctl.Record](nil, m.renderRow)
	m.refresh()
	return m
}

func newSearchInput(entity string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = fmt.Sprintf("Search %s...", entity)
	ti.Prompt = "Search: "
	ti.CharLimit = filterInputCharLimit
	ti.Width = filterInputWidth
	return ti
}

func fieldNames(fields []listctl.Field) []string {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		out = append(out, f.Name)
	}
	return out
}

// Mode returns the current interaction mode.
func (m *PageModel) Mode() PageMode {
	return m.mode
}

// Controller returns the controller behind the page.
func (m *PageModel) Controller() *listctl.Controller {
	return m.ctrl
}

// Quitting reports whether the user asked to quit.
func (m *PageModel) Quitting() bool {
	return m.quitting
}

// SelectedRecord returns the record under the cursor.
func (m *PageModel) SelectedRecord() (listctl.Record, bool) {
	r := m.rows.SelectedItem()
	if r == nil {
		return listctl.Record{}, false
	}
	return *r, true
}

// refresh re-reads the current page after any change.
func (m *PageModel) refresh() {
	m.rows.SetItems(m.ctrl.Paged().Rows)
	m.cols = Columns(m.ctrl.Schema(), m.rows.Items(), m.format)
}

// Init initializes the model.
func (m *PageModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m *PageModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if msg.String() == keyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		switch m.mode {
		case ModeSearch:
			return m.updateSearch(msg)
		case ModeAdd:
			return m.updateAdd(msg)
		case ModeEdit:
			return m.updateEdit(msg)
		case ModeConfirmDelete:
			return m.updateConfirmDelete(msg)
		case ModeBrowse:
			return m.updateBrowse(msg)
		}
	}
	return m, nil
}

// updateBrowse handles keys while navigating.
func (m *PageModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case keySlash:
		m.mode = ModeSearch
		m.search.CursorEnd()
		return m, m.search.Focus()
	case keyEsc:
		if m.ctrl.Query() != "" {
			m.search.SetValue("")
			m.ctrl.SetQuery("")
			m.refresh()
		}
	case "left", "h":
		m.ctrl.PreviousPage()
		m.refresh()
	case "right", "l":
		m.ctrl.NextPage()
		m.refresh()
	case "a":
		return m, m.openForm()
	case "d":
		if r, ok := m.SelectedRecord(); ok {
			m.pendingDelete = r.ID()
			m.mode = ModeConfirmDelete
		}
	case "e":
		m.startEdit(0)
	case "s":
		m.sortIdx = (m.sortIdx + 1) % len(m.sortFields)
		_, order := m.ctrl.Sort()
		m.applySort(m.sortFields[m.sortIdx], order)
	case "S":
		field, order := m.ctrl.Sort()
		if order == pagination.SortOrderDesc {
			order = pagination.SortOrderAsc
		} else {
			order = pagination.SortOrderDesc
		}
		m.applySort(field, order)
	default:
		m.rows.Update(msg)
	}
	return m, nil
}

func (m *PageModel) applySort(field, order string) {
	// Fields come from the schema, so SetSort cannot reject them.
	_ = m.ctrl.SetSort(field, order)
	m.refresh()
}

// updateSearch sends keys to the search box and filters as the user types.
func (m *PageModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keyEnter:
		m.mode = ModeBrowse
		m.search.Blur()
		return m, nil
	case keyEsc:
		m.mode = ModeBrowse
		m.search.Blur()
		m.search.SetValue("")
		m.ctrl.SetQuery("")
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != m.ctrl.Query() {
		m.ctrl.SetQuery(m.search.Value())
		m.refresh()
	}
	return m, cmd
}

// openForm shows an empty create form, one input per stored field.
func (m *PageModel) openForm() tea.Cmd {
	m.formField = m.ctrl.Schema().InputFields()
	m.form = make([]textinput.Model, len(m.formField))
	for i, f := range m.formField {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = f.Label
		ti.CharLimit = formInputCharLimit
		ti.Width = formInputWidth
		m.form[i] = ti
	}
	m.formFocus = 0
	m.mode = ModeAdd
	if len(m.form) == 0 {
		return nil
	}
	return m.form[0].Focus()
}

func (m *PageModel) focusForm(i int) tea.Cmd {
	m.form[m.formFocus].Blur()
	m.formFocus = (i + len(m.form)) % len(m.form)
	return m.form[m.formFocus].Focus()
}

// updateAdd handles keys in the create form. Enter submits; a rejected
// submission keeps the form open so the user can fix it.
func (m *PageModel) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if len(m.form) == 0 {
		m.closeForm()
		return m, nil
	}
	switch msg.String() {
	case keyEsc:
		m.closeForm()
		return m, nil
	case keyTab, "down":
		return m, m.focusForm(m.formFocus + 1)
	case keyShiftTab, "up":
		return m, m.focusForm(m.formFocus - 1)
	case keyEnter:
		input := make(map[string]string, len(m.form))
		for i, f := range m.formField {
			input[f.Name] = m.form[i].Value()
		}
		if _, err := m.ctrl.Add(input); err != nil {
			m.focusInvalid(err)
			return m, nil
		}
		m.closeForm()
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.form[m.formFocus], cmd = m.form[m.formFocus].Update(msg)
	return m, cmd
}

// focusInvalid moves focus to the first rejected field.
func (m *PageModel) focusInvalid(err error) {
	var verr *listctl.ValidationError
	if !errors.As(err, &verr) || len(verr.Fields) == 0 {
		return
	}
	for i, f := range m.formField {
		if f.Name == verr.Fields[0].Field {
			m.focusForm(i)
			return
		}
	}
}

func (m *PageModel) closeForm() {
	m.form = nil
	m.formField = nil
	m.formFocus = 0
	m.mode = ModeBrowse
}

// startEdit begins editing editable field i of the selected row.
func (m *PageModel) startEdit(i int) {
	r, ok := m.SelectedRecord()
	if !ok {
		return
	}
	m.editFields = m.ctrl.Schema().EditableFields()
	if len(m.editFields) == 0 {
		return
	}
	m.editFocus = (i + len(m.editFields)) % len(m.editFields)
	field := m.editFields[m.editFocus]
	m.ctrl.BeginEdit(r.ID(), field.Name, r.Text(field.Name))
	m.mode = ModeEdit
}

// updateEdit handles keys while a cell is edited. Tab moves to the next
// editable field, discarding the pending value.
//
//nolint:exhaustive // Remaining key types are ignored while editing.
func (m *PageModel) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	edit := m.ctrl.Editing()
	if edit == nil {
		m.mode = ModeBrowse
		return m, nil
	}

	switch msg.Type {
	case tea.KeyEnter:
		_, _ = m.ctrl.CommitEdit()
		m.mode = ModeBrowse
		m.refresh()
	case tea.KeyEsc:
		m.ctrl.CancelEdit()
		m.mode = ModeBrowse
	case tea.KeyTab:
		m.startEdit(m.editFocus + 1)
	case tea.KeyShiftTab:
		m.startEdit(m.editFocus - 1)
	case tea.KeyBackspace:
		if r := []rune(edit.Value); len(r) > 0 {
			m.ctrl.ChangeEditValue(string(r[:len(r)-1]))
		}
	case tea.KeySpace:
		m.ctrl.ChangeEditValue(edit.Value + " ")
	case tea.KeyRunes:
		m.ctrl.ChangeEditValue(edit.Value + string(msg.Runes))
	default:
	}
	return m, nil
}

// updateConfirmDelete waits for y to delete or n/esc to keep the record.
func (m *PageModel) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		_, _ = m.ctrl.Delete(m.pendingDelete)
		m.pendingDelete = ""
		m.mode = ModeBrowse
		m.refresh()
	case "n", "N", keyEsc:
		m.pendingDelete = ""
		m.mode = ModeBrowse
	}
	return m, nil
}

// renderRow renders one table row for the cursor.
func (m *PageModel) renderRow(r listctl.Record, selected bool) string {
	line := rowLine(m.cols, r, m.format, m.ctrl.Editing(), !selected)
	if selected {
		return TableSelectedStyle.Render(line)
	}
	return line
}

// View renders the page.
func (m *PageModel) View() string {
	if m.quitting {
		return ""
	}

	schema := m.ctrl.Schema()
	page := m.ctrl.Paged()
	field, order := m.ctrl.Sort()

	var b strings.Builder
	b.WriteString(TitleStyle.Render(Title(schema.Name)))
	b.WriteString(SubtleStyle.Render(fmt.Sprintf("  %d total  sort: %s", m.ctrl.Len(), sortLabel(field, order))))
	b.WriteString("\n")

	if m.mode == ModeSearch || m.search.Value() != "" {
		b.WriteString(m.search.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(TableHeaderStyle.Render(headerLine(m.cols)))
	b.WriteString("\n")
	if m.rows.ItemCount() == 0 {
		b.WriteString(SubtleStyle.Render(fmt.Sprintf("No %s found.", schema.Name)))
	} else {
		b.WriteString(m.rows.View())
	}
	b.WriteString("\n\n")

	b.WriteString(SubtleStyle.Render(page.Caption()))
	b.WriteString("    ")
	b.WriteString(styledPageBar(page))
	b.WriteString("\n")

	switch m.mode {
	case ModeAdd:
		b.WriteString("\n")
		b.WriteString(m.renderForm(schema))
	case ModeConfirmDelete:
		b.WriteString("\n")
		b.WriteString(m.renderConfirm(schema))
	case ModeEdit:
		if edit := m.ctrl.Editing(); edit != nil {
			b.WriteString("\n")
			b.WriteString(LabelStyle.Render(fmt.Sprintf("Editing %s of #%s", edit.Field, edit.RecordID)))
			b.WriteString("\n")
		}
	case ModeBrowse, ModeSearch:
	}

	if n, ok := m.toasts.Last(); ok {
		b.WriteString("\n")
		b.WriteString(ToastStyle(n.Severity).Render(n.Title + ": " + n.Description))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(HelpStyle.Render(m.help()))
	return b.String()
}

func (m *PageModel) renderForm(schema *listctl.Schema) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Add " + schema.Singular))
	b.WriteString("\n")
	for i, f := range m.formField {
		label := LabelStyle
		if i == m.formFocus {
			label = FocusedLabelStyle
		}
		b.WriteString(label.Render(fmt.Sprintf("%-10s", f.Label)))
		b.WriteString(" ")
		b.WriteString(m.form[i].View())
		b.WriteString("\n")
	}
	return BoxStyle.Render(strings.TrimRight(b.String(), "\n")) + "\n"
}

func (m *PageModel) renderConfirm(schema *listctl.Schema) string {
	name := m.pendingDelete
	if r, err := m.ctrl.Get(m.pendingDelete); err == nil {
		name = schema.Title(r)
	}
	return BoxStyle.Render(fmt.Sprintf("Delete %s %q? (y/n)", strings.ToLower(schema.Singular), name)) + "\n"
}

func (m *PageModel) help() string {
	switch m.mode {
	case ModeSearch:
		return "type to filter • enter: done • esc: clear"
	case ModeAdd:
		return "tab/shift+tab: field • enter: save • esc: cancel"
	case ModeEdit:
		return "type to edit • tab: next field • enter: save • esc: cancel"
	case ModeConfirmDelete:
		return "y: delete • n/esc: keep"
	case ModeBrowse:
	}
	return "/: search • ←/→ h/l: page • ↑/↓ j/k: select • a: add • e: edit • d: delete • s/S: sort • q: quit"
}
