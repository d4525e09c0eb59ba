package stats

import (
	"fmt"
	"pomodorotimer/models"
	"sort"
	"sync"
	"time"
)

// WeekCount is the number of completed work sessions in one ISO week
type WeekCount struct {
	Label string // e.g. "2025-W11"
	Count int
}

// WeekView holds one calendar week of daily counts for the stats window.
// Days run Monday through Sunday.
type WeekView struct {
	Start time.Time
	End   time.Time
	Days  [7]int
	Total int
}

// Saver is the slice of the storage manager the aggregator needs
type Saver interface {
	Save(doc *models.AppData) error
}

// Aggregator is the custodian of the data document: it records completed
// sessions, answers questions about them, and persists every mutation. All
// methods are safe to call from the tick goroutine and the UI thread at
// the same time.
type Aggregator struct {
	mu    sync.Mutex
	data  *models.AppData
	store Saver
	now   func() time.Time
}

// NewAggregator creates an aggregator over the given document
func NewAggregator(data *models.AppData, store Saver) *Aggregator {
	return &Aggregator{
		data:  data,
		store: store,
		now:   time.Now,
	}
}

// Record appends a work session stamped with the current time and persists
// the document
func (a *Aggregator) Record() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.data.Sessions = append(a.data.Sessions, models.NewSessionRecord(a.now()))
	return a.store.Save(a.data)
}

// Clear empties the session history and persists the document
func (a *Aggregator) Clear() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.data.Sessions = a.data.Sessions[:0]
	return a.store.Save(a.data)
}

// UpdateSettings applies a settings change and persists the document. The
// change runs under the same lock that guards saves, so a concurrent Record
// never serializes a half-updated document.
func (a *Aggregator) UpdateSettings(apply func(*models.Settings)) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	apply(a.data.Settings)
	return a.store.Save(a.data)
}

// Total returns the number of recorded sessions
func (a *Aggregator) Total() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	return len(a.data.Sessions)
}

// WeeklyCounts groups the history by ISO-8601 calendar week. Weeks are
// ordered oldest first, so the most recent week is always last.
func (a *Aggregator) WeeklyCounts() []WeekCount {
	a.mu.Lock()
	defer a.mu.Unlock()

	counts := make(map[string]int)
	for _, session := range a.data.Sessions {
		year, week := session.Timestamp.ISOWeek()
		counts[fmt.Sprintf("%d-W%02d", year, week)]++
	}

	labels := make([]string, 0, len(counts))
	for label := range counts {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	result := make([]WeekCount, 0, len(labels))
	for _, label := range labels {
		result = append(result, WeekCount{Label: label, Count: counts[label]})
	}
	return result
}

// Week returns the daily counts for the week `offset` weeks away from the
// current one. Offset 0 is this week, -1 the previous, +1 the next.
func (a *Aggregator) Week(offset int) WeekView {
	a.mu.Lock()
	defer a.mu.Unlock()

	start := startOfWeek(a.now()).AddDate(0, 0, offset*7)
	end := start.AddDate(0, 0, 7)

	view := WeekView{
		Start: start,
		End:   end.AddDate(0, 0, -1),
	}
	for _, session := range a.data.Sessions {
		ts := session.Timestamp.In(start.Location())
		if ts.Before(start) || !ts.Before(end) {
			continue
		}
		view.Days[weekdayIndex(ts)]++
		view.Total++
	}
	return view
}

// startOfWeek returns midnight on the Monday of t's week
func startOfWeek(t time.Time) time.Time {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return midnight.AddDate(0, 0, -weekdayIndex(midnight))
}

// weekdayIndex maps time.Weekday onto 0=Monday .. 6=Sunday
func weekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
