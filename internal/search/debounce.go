package search

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DebounceDelay is how long typing has to pause before a search goes out.
const DebounceDelay = 500 * time.Millisecond

var lastDebouncerID int64

func nextDebouncerID() int {
	return int(atomic.AddInt64(&lastDebouncerID, 1))
}

// DebounceMsg is delivered when an armed timer expires. Only the tick of the
// most recent Arm is live; Fire tells them apart.
type DebounceMsg struct {
	id  int
	tag int
}

// Debouncer is a cancellable one-shot timer for the bubbletea loop. Each Arm
// supersedes the previous one, so a burst of arms produces a single live
// tick after the last of them.
type Debouncer struct {
	id    int
	tag   int
	armed bool
}

func NewDebouncer() Debouncer {
	return Debouncer{id: nextDebouncerID()}
}

// Arm cancels any pending timer and schedules a DebounceMsg after delay.
func (d *Debouncer) Arm(delay time.Duration) tea.Cmd {
	d.tag++
	d.armed = true
	id, tag := d.id, d.tag
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return DebounceMsg{id: id, tag: tag}
	})
}

// Cancel drops the pending timer, if any.
func (d *Debouncer) Cancel() {
	if !d.armed {
		return
	}
	d.armed = false
	d.tag++
}

// Fire reports whether msg is the live tick of this debouncer and, if so,
// disarms it. Ticks from cancelled or superseded arms return false.
func (d *Debouncer) Fire(msg DebounceMsg) bool {
	if msg.id != d.id || msg.tag != d.tag || !d.armed {
		return false
	}
	d.armed = false
	return true
}

func (d Debouncer) Pending() bool {
	return d.armed
}
