package models

// AppData is the single document persisted on disk: the user's settings plus
// the full history of completed work sessions.
type AppData struct {
	Settings *Settings        `json:"settings"`
	Sessions []*SessionRecord `json:"sessions"`
}

// NewAppData returns a fresh document with default settings and no history
func NewAppData() *AppData {
	return &AppData{
		Settings: DefaultSettings(),
		Sessions: []*SessionRecord{},
	}
}
