package views

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DebouncedMsg carries a value whose quiet period elapsed
type DebouncedMsg struct {
	Tag   string
	Seq   int
	Value any
}

// Debouncer delays a value and drops it when a newer one arrives first.
// Only the latest trigger is ever applied.
type Debouncer struct {
	tag   string
	delay time.Duration
	seq   int
}

// NewDebouncer creates a debouncer whose messages carry tag
func NewDebouncer(tag string, delay time.Duration) *Debouncer {
	return &Debouncer{tag: tag, delay: delay}
}

// Trigger supersedes any pending value and schedules v
func (d *Debouncer) Trigger(v any) tea.Cmd {
	d.seq++
	msg := DebouncedMsg{Tag: d.tag, Seq: d.seq, Value: v}
	if d.delay <= 0 {
		return func() tea.Msg { return msg }
	}
	return tea.Tick(d.delay, func(time.Time) tea.Msg { return msg })
}

// Current reports whether msg is this debouncer's latest value
func (d *Debouncer) Current(msg DebouncedMsg) bool {
	return msg.Tag == d.tag && msg.Seq == d.seq
}

// Cancel drops any pending value
func (d *Debouncer) Cancel() {
	d.seq++
}
