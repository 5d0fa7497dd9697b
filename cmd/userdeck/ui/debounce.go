package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DebounceMsg is delivered when a debounce window elapses. Seq identifies the
// Trigger call that opened the window; receivers must discard messages from
// superseded windows (see Debouncer.Current).
type DebounceMsg struct {
	Seq int
}

// Debouncer collapses rapid successive events, such as window resize bursts,
// into one settled notification inside a bubbletea update loop. Each Trigger
// opens a new window and invalidates the previous one.
type Debouncer struct {
	seq      int
	duration time.Duration
}

// NewDebouncer creates a debouncer with the specified settle duration.
func NewDebouncer(duration time.Duration) Debouncer {
	return Debouncer{duration: duration}
}

// Trigger opens a debounce window and returns the command that delivers its
// DebounceMsg after the settle duration.
func (d *Debouncer) Trigger() tea.Cmd {
	d.seq++
	seq := d.seq
	return tea.Tick(d.duration, func(time.Time) tea.Msg {
		return DebounceMsg{Seq: seq}
	})
}

// Current reports whether msg belongs to the most recent window.
func (d Debouncer) Current(msg DebounceMsg) bool {
	return msg.Seq == d.seq
}

// DefaultResizeDuration is the recommended debounce duration for resize
// events.
const DefaultResizeDuration = 300 * time.Millisecond
