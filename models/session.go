package models

import (
	"time"

	"github.com/google/uuid"
)

// SessionKindWork is the only session kind recorded today. Breaks are not
// counted toward statistics.
const SessionKindWork = "work"

// SessionRecord represents one completed work session
type SessionRecord struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Kind      string    `json:"kind"`
}

// NewSessionRecord creates a work session record stamped with the given time
func NewSessionRecord(at time.Time) *SessionRecord {
	return &SessionRecord{
		ID:        uuid.New().String(),
		Timestamp: at,
		Kind:      SessionKindWork,
	}
}
