package models

// Settings represents the configurable timer durations and behavior flags
type Settings struct {
	WorkMinutes          int  `json:"work_duration"`           // in minutes
	ShortBreakMinutes    int  `json:"short_break"`             // in minutes
	LongBreakMinutes     int  `json:"long_break"`              // in minutes
	SessionsPerLongBreak int  `json:"sessions_per_long_break"` // work sessions before a long break
	AutoStart            bool `json:"auto_start"`
	AlwaysOnTop          bool `json:"always_on_top"`
}

// DefaultSettings returns default timer settings
func DefaultSettings() *Settings {
	return &Settings{
		WorkMinutes:          25,
		ShortBreakMinutes:    5,
		LongBreakMinutes:     15,
		SessionsPerLongBreak: 4,
		AutoStart:            false,
		AlwaysOnTop:          false,
	}
}

// Normalize clamps non-positive durations back to their defaults. Values
// loaded from a hand-edited or partially written data file pass through
// here before the timer ever sees them.
func (s *Settings) Normalize() {
	defaults := DefaultSettings()

	if s.WorkMinutes <= 0 {
		s.WorkMinutes = defaults.WorkMinutes
	}
	if s.ShortBreakMinutes <= 0 {
		s.ShortBreakMinutes = defaults.ShortBreakMinutes
	}
	if s.LongBreakMinutes <= 0 {
		s.LongBreakMinutes = defaults.LongBreakMinutes
	}
	if s.SessionsPerLongBreak < 1 {
		s.SessionsPerLongBreak = defaults.SessionsPerLongBreak
	}
}
