// Package tui provides the interactive terminal interface for userdeck.
// The interface is split across multiple files for maintainability:
//   - model.go: Types, Init, Update loop (this file)
//   - form.go: Add/edit form dialog and validation wiring
//   - view.go: Rendering functions
//
// The model owns the control flow mandated by the sync discipline: a user
// action dispatches a remote call, the local collection is mutated only in
// the message handler that fires after the call resolved successfully, and
// the table is re-derived from the collection on the very next render. The
// view therefore never shows a mutation that was not acknowledged remotely.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"

	"userdeck/cmd/userdeck/ui"
	"userdeck/internal/store"
	"userdeck/internal/user"
	"userdeck/internal/view"
)

// Accessor is the remote boundary the interface dispatches through. Each
// method is a single attempt; no retries, no in-flight cancellation.
type Accessor interface {
	FetchAll(ctx context.Context) ([]user.User, error)
	Create(ctx context.Context, draft user.Draft) (user.User, error)
	Replace(ctx context.Context, id int, draft user.Draft) error
	Delete(ctx context.Context, id int) error
}

// dialog identifies which modal is open, if any. Each dialog is either
// closed or open; at most one is open at a time.
type dialog int

const (
	dialogNone dialog = iota
	dialogForm
	dialogConfirm
)

// Config holds everything needed to construct the interface.
type Config struct {
	Accessor Accessor
	PageSize int
	Timeout  time.Duration
	Styles   ui.Styles
	Logger   *zap.Logger
}

// notice is the transient status line standing in for the original toasts.
type notice struct {
	text  string
	isErr bool
}

// Model is the main model for the interactive interface.
type Model struct {
	// Backend
	api     Accessor
	store   *store.Store
	timeout time.Duration
	logger  *zap.Logger

	// UI components
	styles   ui.Styles
	spinner  spinner.Model
	search   textinput.Model
	form     formModel
	renderer *glamour.TermRenderer
	resize   ui.Debouncer

	// View state
	width    int
	height   int
	pageSize int
	page     int // 1-indexed, reset to 1 on every search change
	selected int // row index within the visible page
	showHelp bool

	// Dialog state machine
	dialog     dialog
	submitting bool // a create/replace/delete round trip is in flight

	// Load state
	loading bool
	loadErr error

	notice notice
}

// Messages for tea updates. Mutation messages are delivered only after the
// corresponding remote call succeeded, so handling them is the commit point.
type (
	usersLoadedMsg []user.User
	loadFailedMsg  struct{ err error }

	createdMsg struct{ draft user.Draft }
	updatedMsg struct {
		id    int
		draft user.Draft
	}
	deletedMsg struct{ id int }

	opFailedMsg struct {
		op  string // "add", "update", "delete"
		err error
	}
)

// New constructs the interface model.
func New(cfg Config) Model {
	if cfg.PageSize <= 0 {
		cfg.PageSize = view.DefaultPageSize
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = cfg.Styles.Spinner

	search := textinput.New()
	search.Placeholder = "Search name, username, email..."
	search.Prompt = "/ "
	search.CharLimit = 64

	return Model{
		api:      cfg.Accessor,
		store:    store.New(),
		timeout:  cfg.Timeout,
		logger:   cfg.Logger,
		styles:   cfg.Styles,
		spinner:  sp,
		search:   search,
		form:     newFormModel(),
		resize:   ui.NewDebouncer(ui.DefaultResizeDuration),
		pageSize: cfg.PageSize,
		page:     1,
		loading:  true,
	}
}

// Init kicks off the initial fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetchUsers())
}

// project derives the current visible subset from the collection, the search
// text, and the page cursor.
func (m Model) project() view.Projection {
	return view.Project(m.store.All(), m.search.Value(), m.page, m.pageSize)
}

// clampSelection keeps the row cursor inside the visible subset.
func (m *Model) clampSelection(p view.Projection) {
	if m.selected >= len(p.Visible) {
		m.selected = len(p.Visible) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.search.Width = min(48, msg.Width-8)
		// Rebuilding the markdown renderer is the expensive part of a
		// resize, so it waits until the burst settles.
		return m, m.resize.Trigger()

	case ui.DebounceMsg:
		if m.resize.Current(msg) {
			m.renderer, _ = glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(min(76, m.width-4)),
			)
		}
		return m, nil

	case spinner.TickMsg:
		if m.loading || m.submitting {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case usersLoadedMsg:
		m.loading = false
		m.loadErr = nil
		m.store.Load([]user.User(msg))
		m.page = 1
		m.selected = 0
		m.logger.Info("users loaded", zap.Int("count", m.store.Len()))
		return m, nil

	case loadFailedMsg:
		m.loading = false
		m.loadErr = msg.err
		m.logger.Warn("initial load failed", zap.Error(msg.err))
		return m, nil

	case createdMsg:
		// Commit point: remote create succeeded. The echoed ID is a
		// placeholder, so the record is numbered locally.
		m.submitting = false
		u := user.User{ID: m.store.NextID()}
		msg.draft.Apply(&u)
		m.store.Add(u)
		m.store.ClearEditing()
		m.closeDialog()
		m.notice = notice{text: "User added successfully"}
		m.clampSelection(m.project())
		return m, nil

	case updatedMsg:
		// Commit point: remote replace succeeded. The local merge uses the
		// submitted draft, never the response body. A target deleted while
		// the dialog was open makes this a silent no-op.
		m.submitting = false
		m.store.Update(msg.id, msg.draft)
		m.store.ClearEditing()
		m.closeDialog()
		m.notice = notice{text: "User updated successfully"}
		return m, nil

	case deletedMsg:
		m.submitting = false
		m.store.Remove(msg.id)
		m.store.ClearEditing()
		m.closeDialog()
		m.notice = notice{text: "User deleted successfully"}
		// Removing the last record of the final page invalidates the page
		// cursor, so it is re-derived along with the row selection.
		p := m.project()
		m.page = p.Page
		m.clampSelection(p)
		return m, nil

	case opFailedMsg:
		// The dialog stays open so the user can retry; only the
		// notification changes.
		m.submitting = false
		m.notice = notice{
			text:  fmt.Sprintf("Failed to %s user. Please try again.", msg.op),
			isErr: true,
		}
		m.logger.Warn("remote operation failed",
			zap.String("op", msg.op),
			zap.Error(msg.err))
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey routes key input by interface state: dialogs first, then the
// search box, then the table.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch m.dialog {
	case dialogForm:
		return m.handleFormKey(msg)
	case dialogConfirm:
		return m.handleConfirmKey(msg)
	}

	if m.search.Focused() {
		return m.handleSearchKey(msg)
	}

	return m.handleTableKey(msg)
}

// handleSearchKey feeds input to the search box. Every change re-derives the
// view with the page reset to 1 so a shrinking match set never leaves the
// cursor on an out-of-range page.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc:
		m.search.Blur()
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != before {
		m.page = 1
		m.selected = 0
	}
	return m, cmd
}

func (m Model) handleTableKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := m.project()

	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit

	case "?":
		m.showHelp = true
		return m, nil

	case "/":
		m.search.Focus()
		return m, textinput.Blink

	case "r":
		// Manual reload; also the retry path for a failed initial load.
		m.loading = true
		m.loadErr = nil
		return m, tea.Batch(m.spinner.Tick, m.fetchUsers())

	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case "down", "j":
		if m.selected < len(p.Visible)-1 {
			m.selected++
		}
		return m, nil

	case "left", "h":
		if m.page > 1 {
			m.page--
			m.selected = 0
		}
		return m, nil

	case "right", "l":
		if m.page < p.TotalPages {
			m.page++
			m.selected = 0
		}
		return m, nil

	case "a":
		if m.loading || m.loadErr != nil {
			return m, nil
		}
		m.openAddDialog()
		return m, textinput.Blink

	case "e", "enter":
		if u, ok := m.selectedUser(p); ok {
			m.openEditDialog(u)
			return m, textinput.Blink
		}
		return m, nil

	case "d", "delete", "backspace":
		if u, ok := m.selectedUser(p); ok {
			m.store.SetEditing(u.ID)
			m.dialog = dialogConfirm
			m.notice = notice{}
		}
		return m, nil
	}

	return m, nil
}

// handleConfirmKey drives the delete-confirmation dialog.
func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.submitting {
		return m, nil
	}

	switch msg.String() {
	case "esc", "n":
		m.store.ClearEditing()
		m.closeDialog()
		return m, nil

	case "enter", "y":
		id, ok := m.store.Editing()
		if !ok {
			m.closeDialog()
			return m, nil
		}
		m.submitting = true
		return m, tea.Batch(m.spinner.Tick, m.deleteUser(id))
	}

	return m, nil
}

// selectedUser resolves the highlighted row to a record.
func (m Model) selectedUser(p view.Projection) (user.User, bool) {
	if m.selected < 0 || m.selected >= len(p.Visible) {
		return user.User{}, false
	}
	return p.Visible[m.selected], true
}

func (m *Model) closeDialog() {
	m.dialog = dialogNone
	m.form.reset()
}

// =============================================================================
// REMOTE DISPATCH
// =============================================================================
// Every command performs exactly one round trip and reports the outcome as a
// message; the store is only touched in the message handlers above.

func (m Model) fetchUsers() tea.Cmd {
	api, timeout := m.api, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		users, err := api.FetchAll(ctx)
		if err != nil {
			return loadFailedMsg{err: err}
		}
		return usersLoadedMsg(users)
	}
}

func (m Model) createUser(draft user.Draft) tea.Cmd {
	api, timeout := m.api, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if _, err := api.Create(ctx, draft); err != nil {
			return opFailedMsg{op: "add", err: err}
		}
		return createdMsg{draft: draft}
	}
}

func (m Model) replaceUser(id int, draft user.Draft) tea.Cmd {
	api, timeout := m.api, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := api.Replace(ctx, id, draft); err != nil {
			return opFailedMsg{op: "update", err: err}
		}
		return updatedMsg{id: id, draft: draft}
	}
}

func (m Model) deleteUser(id int) tea.Cmd {
	api, timeout := m.api, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := api.Delete(ctx, id); err != nil {
			return opFailedMsg{op: "delete", err: err}
		}
		return deletedMsg{id: id}
	}
}

// Run starts the interactive interface and blocks until it exits.
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
