package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"userdeck/cmd/userdeck/ui"
)

const helpMarkdown = `# userdeck keys

## Table

| Key | Action |
|-----|--------|
| ` + "`↑` / `↓`" + ` | Move row selection |
| ` + "`←` / `→`" + ` | Previous / next page |
| ` + "`/`" + ` | Search (name, username, email) |
| ` + "`a`" + ` | Add user |
| ` + "`e` / `enter`" + ` | Edit selected user |
| ` + "`d`" + ` | Delete selected user |
| ` + "`r`" + ` | Reload from server |
| ` + "`q` / `esc`" + ` | Quit |

## Dialogs

| Key | Action |
|-----|--------|
| ` + "`tab` / `↑` / `↓`" + ` | Move between fields |
| ` + "`enter`" + ` | Submit |
| ` + "`esc`" + ` | Cancel |

Changes are sent to the server first and shown only after it confirms them.
`

func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(m.renderLoading())
	case m.loadErr != nil:
		b.WriteString(m.renderLoadError())
	default:
		b.WriteString(m.renderTable())
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	content := b.String()

	switch m.dialog {
	case dialogForm:
		return m.overlay(m.renderForm())
	case dialogConfirm:
		return m.overlay(m.renderConfirm())
	}

	return content
}

func (m Model) renderHeader() string {
	title := m.styles.Header.Render(" userdeck ")
	badge := m.styles.Badge.Render("user management")
	return lipgloss.JoinHorizontal(lipgloss.Center, title, " ", badge)
}

func (m Model) renderLoading() string {
	return fmt.Sprintf("%s Loading users...", m.spinner.View())
}

func (m Model) renderLoadError() string {
	var b strings.Builder
	b.WriteString(m.styles.Error.Render("Failed to load users. Please try again later."))
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render(m.loadErr.Error()))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Muted.Render("Press r to retry."))
	return b.String()
}

func (m Model) renderTable() string {
	p := m.project()

	var b strings.Builder

	// Search line plus the live match count.
	count := m.styles.Muted.Render(fmt.Sprintf("(%d users)", p.FilteredCount))
	if m.search.Focused() || m.search.Value() != "" {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, m.search.View(), "  ", count))
	} else {
		hint := m.styles.Muted.Render("Press / to search")
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, hint, "  ", count))
	}
	b.WriteString("\n\n")

	table := ui.NewTable("", []string{"ID", "Name", "Username", "Email", "Phone", "Website"})
	table.EmptyText = "No users"
	table.Selected = m.selected
	for _, u := range p.Visible {
		table.AddRow(
			strconv.Itoa(u.ID),
			u.Name,
			u.Username,
			u.Email,
			u.Phone,
			u.Website,
		)
	}
	b.WriteString(table.View(m.styles))
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render(fmt.Sprintf("Page %d / %d", p.Page, p.TotalPages)))

	if m.notice.text != "" {
		b.WriteString("\n\n")
		if m.notice.isErr {
			b.WriteString(m.styles.Error.Render(m.notice.text))
		} else {
			b.WriteString(m.styles.Success.Render(m.notice.text))
		}
	}

	return b.String()
}

func (m Model) renderFooter() string {
	hints := "a add · e edit · d delete · / search · ←/→ page · r reload · ? help · q quit"
	return m.styles.Footer.Render(hints)
}

// renderForm draws the add/edit dialog with inline validation messages under
// each failing field.
func (m Model) renderForm() string {
	var b strings.Builder

	title, submitLabel := "Add New User", "Add User"
	if m.form.editing {
		title, submitLabel = "Edit User", "Update User"
	}
	b.WriteString(m.styles.Title.Render(title))
	b.WriteString("\n\n")

	for i, field := range formFields {
		label := formLabels[field]
		if i == m.form.focus {
			b.WriteString(m.styles.Bold.Render(label))
		} else {
			b.WriteString(m.styles.Muted.Render(label))
		}
		b.WriteString("\n")
		b.WriteString(m.form.inputs[i].View())
		b.WriteString("\n")
		if msg, ok := m.form.errors[field]; ok {
			b.WriteString(m.styles.FieldError.Render(msg))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if m.submitting {
		b.WriteString(fmt.Sprintf("%s Saving...", m.spinner.View()))
	} else if m.notice.isErr && m.notice.text != "" {
		b.WriteString(m.styles.Error.Render(m.notice.text))
	} else {
		b.WriteString(m.styles.Muted.Render(fmt.Sprintf("enter %s · tab next field · esc cancel", submitLabel)))
	}

	return m.styles.Modal.Render(b.String())
}

// renderConfirm draws the delete-confirmation dialog naming the target.
func (m Model) renderConfirm() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Delete User"))
	b.WriteString("\n\n")

	if id, ok := m.store.Editing(); ok {
		if u, found := m.store.Get(id); found {
			b.WriteString(fmt.Sprintf("Delete %s (%s)?", u.Name, u.Email))
		} else {
			b.WriteString("Delete this user?")
		}
	} else {
		b.WriteString("Delete this user?")
	}
	b.WriteString("\n\n")

	if m.submitting {
		b.WriteString(fmt.Sprintf("%s Deleting...", m.spinner.View()))
	} else if m.notice.isErr && m.notice.text != "" {
		b.WriteString(m.styles.Error.Render(m.notice.text))
		b.WriteString("\n")
		b.WriteString(m.styles.Muted.Render("enter retry · esc cancel"))
	} else {
		b.WriteString(m.styles.Muted.Render("enter/y confirm · esc/n cancel"))
	}

	return m.styles.Modal.Render(b.String())
}

// overlay centers a dialog in the terminal. The table behind it is not
// redrawn; each dialog fully owns the screen while open.
func (m Model) overlay(dialog string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, dialog)
}

func (m Model) renderHelp() string {
	body := m.safeRenderMarkdown(helpMarkdown)
	footer := m.styles.Muted.Render("Press any key to close.")
	return body + "\n" + footer
}

// safeRenderMarkdown falls back to plain text when the renderer is absent or
// panics on malformed input.
func (m Model) safeRenderMarkdown(s string) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = s
		}
	}()
	if m.renderer == nil {
		return s
	}
	rendered, err := m.renderer.Render(s)
	if err != nil {
		return s
	}
	return rendered
}
