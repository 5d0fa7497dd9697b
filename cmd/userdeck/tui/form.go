package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"userdeck/internal/user"
	"userdeck/internal/validate"
)

// formModel is the add/edit dialog: one text input per editable field plus a
// per-field error map. Fields are validated when focus leaves them and again
// all at once on submit; a submit with any failing field never reaches the
// network.
type formModel struct {
	inputs  []textinput.Model
	errors  map[string]string
	focus   int
	editing bool // true when the dialog replaces an existing record
}

// formFields mirrors validate.FieldOrder; index i of inputs holds field i.
var formFields = validate.FieldOrder

var formLabels = map[string]string{
	validate.FieldName:     "Name",
	validate.FieldUsername: "Username",
	validate.FieldEmail:    "Email",
	validate.FieldPhone:    "Phone",
	validate.FieldWebsite:  "Website (optional)",
}

func newFormModel() formModel {
	inputs := make([]textinput.Model, len(formFields))
	for i, field := range formFields {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = formLabels[field]
		in.CharLimit = 80
		in.Width = 40
		inputs[i] = in
	}
	return formModel{
		inputs: inputs,
		errors: make(map[string]string),
	}
}

func (f *formModel) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.errors = make(map[string]string)
	f.focus = 0
	f.editing = false
}

// populate pre-fills the inputs from an existing record for editing.
func (f *formModel) populate(u user.User) {
	d := user.DraftOf(u)
	values := map[string]string{
		validate.FieldName:     d.Name,
		validate.FieldUsername: d.Username,
		validate.FieldEmail:    d.Email,
		validate.FieldPhone:    d.Phone,
		validate.FieldWebsite:  d.Website,
	}
	for i, field := range formFields {
		f.inputs[i].SetValue(values[field])
	}
	f.editing = true
}

// values snapshots the raw input text, trimmed, keyed by field name.
func (f *formModel) values() map[string]string {
	out := make(map[string]string, len(formFields))
	for i, field := range formFields {
		out[field] = strings.TrimSpace(f.inputs[i].Value())
	}
	return out
}

// draft converts the inputs to a submission payload. Callers must have
// validated first.
func (f *formModel) draft() user.Draft {
	v := f.values()
	return user.Draft{
		Name:     v[validate.FieldName],
		Username: v[validate.FieldUsername],
		Email:    v[validate.FieldEmail],
		Phone:    v[validate.FieldPhone],
		Website:  v[validate.FieldWebsite],
	}
}

// validateField checks a single field and records or clears its error.
func (f *formModel) validateField(i int) {
	field := formFields[i]
	msg := validate.Field(field, strings.TrimSpace(f.inputs[i].Value()))
	if msg == "" {
		delete(f.errors, field)
	} else {
		f.errors[field] = msg
	}
}

// validateAll checks every field; returns true when the form may be
// submitted.
func (f *formModel) validateAll() bool {
	f.errors = validate.Form(f.values())
	return len(f.errors) == 0
}

// setFocus moves input focus, validating the field being left.
func (f *formModel) setFocus(i int) tea.Cmd {
	if i == f.focus {
		return nil
	}
	f.validateField(f.focus)
	f.inputs[f.focus].Blur()
	f.focus = i
	return f.inputs[f.focus].Focus()
}

func (f *formModel) next() tea.Cmd {
	return f.setFocus((f.focus + 1) % len(f.inputs))
}

func (f *formModel) prev() tea.Cmd {
	return f.setFocus((f.focus + len(f.inputs) - 1) % len(f.inputs))
}

// openAddDialog opens the form blank.
func (m *Model) openAddDialog() {
	m.form.reset()
	m.store.ClearEditing()
	m.dialog = dialogForm
	m.notice = notice{}
	m.form.inputs[0].Focus()
}

// openEditDialog opens the form pre-filled and marks the record as the edit
// target so the submit path knows which ID to replace.
func (m *Model) openEditDialog(u user.User) {
	m.form.reset()
	m.form.populate(u)
	m.store.SetEditing(u.ID)
	m.dialog = dialogForm
	m.notice = notice{}
	m.form.inputs[0].Focus()
}

// handleFormKey drives the form dialog. Input is locked while a submission
// round trip is in flight; the dialog itself stays open on remote failure so
// the user can retry without retyping.
func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.submitting {
		return m, nil
	}

	switch msg.Type {
	case tea.KeyEsc:
		m.store.ClearEditing()
		m.closeDialog()
		return m, nil

	case tea.KeyTab, tea.KeyDown:
		return m, m.form.next()

	case tea.KeyShiftTab, tea.KeyUp:
		return m, m.form.prev()

	case tea.KeyEnter:
		return m.submitForm()
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

// submitForm validates and, only if every field passes, dispatches the
// remote call. Validation failure keeps the dialog open with the messages
// rendered inline and nothing on the wire.
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	if !m.form.validateAll() {
		return m, nil
	}

	draft := m.form.draft()
	if id, ok := m.store.Editing(); ok && m.form.editing {
		m.submitting = true
		return m, tea.Batch(m.spinner.Tick, m.replaceUser(id, draft))
	}
	m.submitting = true
	return m, tea.Batch(m.spinner.Tick, m.createUser(draft))
}
