package timer

import (
	"pomodorotimer/models"
	"testing"
)

func testSettings() *models.Settings {
	return &models.Settings{
		WorkMinutes:          1,
		ShortBreakMinutes:    1,
		LongBreakMinutes:     2,
		SessionsPerLongBreak: 2,
	}
}

// TestCountdownReachesZero tests that ticking a work phase for its full
// duration ends it and leaves the work phase
func TestCountdownReachesZero(t *testing.T) {
	for _, minutes := range []int{1, 3, 25} {
		settings := testSettings()
		settings.WorkMinutes = minutes

		tm := New(settings)
		tm.StartWork()
		if tm.Remaining() != minutes*60 {
			t.Fatalf("Expected %d seconds after StartWork, got %d", minutes*60, tm.Remaining())
		}

		var event Event
		for i := 0; i < minutes*60; i++ {
			event = tm.Tick()
		}

		if tm.Remaining() != 0 {
			t.Errorf("Expected 0 seconds remaining, got %d", tm.Remaining())
		}
		if event != EventWorkComplete {
			t.Errorf("Expected EventWorkComplete on final tick, got %v", event)
		}
		if tm.Phase() == PhaseWork {
			t.Error("Timer should have left the work phase")
		}
	}
}

// TestTickBeforeZeroReturnsNothing tests that intermediate ticks emit no event
func TestTickBeforeZeroReturnsNothing(t *testing.T) {
	tm := New(testSettings())
	tm.StartWork()

	for i := 0; i < 59; i++ {
		if event := tm.Tick(); event != EventNone {
			t.Fatalf("Tick %d should be silent, got %v", i, event)
		}
	}
	if tm.Remaining() != 1 {
		t.Errorf("Expected 1 second remaining, got %d", tm.Remaining())
	}
}

// TestIdleTimerDoesNotTick tests that an idle timer ignores ticks
func TestIdleTimerDoesNotTick(t *testing.T) {
	tm := New(testSettings())
	if event := tm.Tick(); event != EventNone {
		t.Errorf("Idle tick should return EventNone, got %v", event)
	}
	if tm.Remaining() != 0 {
		t.Errorf("Idle tick should not change remaining, got %d", tm.Remaining())
	}
}

// TestPauseStopsCountdown tests pause and resume behavior
func TestPauseStopsCountdown(t *testing.T) {
	tm := New(testSettings())
	tm.StartWork()
	tm.Tick()
	tm.Pause()

	before := tm.Remaining()
	for i := 0; i < 10; i++ {
		tm.Tick()
	}
	if tm.Remaining() != before {
		t.Errorf("Paused timer should not count down: %d vs %d", tm.Remaining(), before)
	}

	tm.Resume()
	tm.Tick()
	if tm.Remaining() != before-1 {
		t.Errorf("Resumed timer should count down again, got %d", tm.Remaining())
	}
}

// TestLongBreakScheduling tests that the long break arrives after the
// configured number of work sessions and resets the counter
func TestLongBreakScheduling(t *testing.T) {
	settings := testSettings() // long break every 2 sessions
	tm := New(settings)

	completeWork := func() {
		tm.StartWork()
		for tm.Phase() == PhaseWork {
			tm.Tick()
		}
	}

	completeWork()
	if kind := tm.NextBreakKind(); kind != PhaseShortBreak {
		t.Fatalf("After 1 session expected short break, got %v", kind)
	}
	tm.StartBreak()
	if tm.Phase() != PhaseShortBreak {
		t.Fatalf("Expected short break phase, got %v", tm.Phase())
	}

	completeWork()
	if kind := tm.NextBreakKind(); kind != PhaseLongBreak {
		t.Fatalf("After 2 sessions expected long break, got %v", kind)
	}
	tm.StartBreak()
	if tm.Phase() != PhaseLongBreak {
		t.Fatalf("Expected long break phase, got %v", tm.Phase())
	}
	if tm.Completed() != 0 {
		t.Errorf("Long break should reset the session counter, got %d", tm.Completed())
	}
	if tm.Remaining() != settings.LongBreakMinutes*60 {
		t.Errorf("Expected long break duration %d, got %d", settings.LongBreakMinutes*60, tm.Remaining())
	}

	// The cycle starts over with a short break
	completeWork()
	if kind := tm.NextBreakKind(); kind != PhaseShortBreak {
		t.Errorf("Counter should have reset, expected short break, got %v", kind)
	}
}

// TestAutoStartFlowsWorkIntoBreak tests that auto-start chains phases without
// user action
func TestAutoStartFlowsWorkIntoBreak(t *testing.T) {
	settings := testSettings()
	settings.AutoStart = true
	tm := New(settings)

	tm.StartWork()
	var event Event
	for i := 0; i < settings.WorkMinutes*60; i++ {
		event = tm.Tick()
	}
	if event != EventWorkComplete {
		t.Fatalf("Expected EventWorkComplete, got %v", event)
	}
	if !tm.Phase().IsBreak() {
		t.Fatalf("Auto-start should have entered a break, got %v", tm.Phase())
	}

	for i := 0; i < settings.ShortBreakMinutes*60; i++ {
		event = tm.Tick()
	}
	if event != EventBreakComplete {
		t.Fatalf("Expected EventBreakComplete, got %v", event)
	}
	if tm.Phase() != PhaseWork {
		t.Errorf("Auto-start should have begun the next work session, got %v", tm.Phase())
	}
}

// TestReset tests that reset returns the timer to idle
func TestReset(t *testing.T) {
	tm := New(testSettings())
	tm.StartWork()
	tm.Tick()
	tm.Reset()

	if tm.Phase() != PhaseIdle {
		t.Errorf("Expected idle phase after reset, got %v", tm.Phase())
	}
	if tm.Remaining() != 0 {
		t.Errorf("Expected 0 remaining after reset, got %d", tm.Remaining())
	}
	if tm.Completed() != 0 {
		t.Errorf("Expected 0 completed sessions after reset, got %d", tm.Completed())
	}
}

// TestFormatClock tests the MM:SS display conversion
func TestFormatClock(t *testing.T) {
	cases := map[int]string{
		0:    "00:00",
		59:   "00:59",
		60:   "01:00",
		1500: "25:00",
		-5:   "00:00",
	}
	for seconds, want := range cases {
		if got := FormatClock(seconds); got != want {
			t.Errorf("FormatClock(%d) = %q, want %q", seconds, got, want)
		}
	}
}
