package timer

import (
	"fmt"
	"pomodorotimer/models"
)

// Phase identifies what the timer is counting down
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseWork
	PhaseShortBreak
	PhaseLongBreak
)

// String returns a human-readable phase name
func (p Phase) String() string {
	switch p {
	case PhaseWork:
		return "Work"
	case PhaseShortBreak:
		return "Short Break"
	case PhaseLongBreak:
		return "Long Break"
	default:
		return "Idle"
	}
}

// IsBreak reports whether the phase is one of the two break kinds
func (p Phase) IsBreak() bool {
	return p == PhaseShortBreak || p == PhaseLongBreak
}

// Event is the outcome of a single tick
type Event int

const (
	EventNone Event = iota
	EventWorkComplete
	EventBreakComplete
)

// Timer is the countdown state machine. It holds no clock of its own; the
// owner calls Tick once per second from whatever loop drives the UI.
type Timer struct {
	settings  *models.Settings
	phase     Phase
	paused    bool
	remaining int // seconds
	completed int // work sessions since the last long break
}

// New creates an idle timer bound to the given settings
func New(settings *models.Settings) *Timer {
	return &Timer{
		settings: settings,
		phase:    PhaseIdle,
	}
}

// StartWork begins a fresh work countdown
func (t *Timer) StartWork() {
	t.phase = PhaseWork
	t.paused = false
	t.remaining = t.settings.WorkMinutes * 60
}

// StartBreak begins the appropriate break countdown. Choosing a long break
// consumes the completed-session counter.
func (t *Timer) StartBreak() {
	kind := t.NextBreakKind()
	if kind == PhaseLongBreak {
		t.completed = 0
		t.remaining = t.settings.LongBreakMinutes * 60
	} else {
		t.remaining = t.settings.ShortBreakMinutes * 60
	}
	t.phase = kind
	t.paused = false
}

// NextBreakKind reports which break a completed work session has earned
func (t *Timer) NextBreakKind() Phase {
	if t.completed >= t.settings.SessionsPerLongBreak {
		return PhaseLongBreak
	}
	return PhaseShortBreak
}

// Pause suspends the running countdown
func (t *Timer) Pause() {
	if t.phase != PhaseIdle {
		t.paused = true
	}
}

// Resume continues a paused countdown
func (t *Timer) Resume() {
	t.paused = false
}

// Reset returns the timer to its idle state. History and settings are
// untouched; the long-break counter starts over.
func (t *Timer) Reset() {
	t.phase = PhaseIdle
	t.paused = false
	t.remaining = 0
	t.completed = 0
}

// Tick counts down by one second and handles the transition when the
// countdown reaches zero. A finished work phase increments the completed
// counter and either flows straight into its break (auto-start) or parks the
// timer idle until the user acts. A finished break does the same toward the
// next work session.
func (t *Timer) Tick() Event {
	if t.phase == PhaseIdle || t.paused || t.remaining <= 0 {
		return EventNone
	}

	t.remaining--
	if t.remaining > 0 {
		return EventNone
	}

	if t.phase == PhaseWork {
		t.completed++
		if t.settings.AutoStart {
			t.StartBreak()
		} else {
			t.phase = PhaseIdle
		}
		return EventWorkComplete
	}

	if t.settings.AutoStart {
		t.StartWork()
	} else {
		t.phase = PhaseIdle
	}
	return EventBreakComplete
}

// Phase returns the current phase
func (t *Timer) Phase() Phase {
	return t.phase
}

// Paused reports whether a countdown is suspended
func (t *Timer) Paused() bool {
	return t.paused
}

// Remaining returns the seconds left in the current countdown
func (t *Timer) Remaining() int {
	return t.remaining
}

// Completed returns the work sessions finished since the last long break
func (t *Timer) Completed() int {
	return t.completed
}

// FormatClock converts a number of seconds into a MM:SS display string
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
