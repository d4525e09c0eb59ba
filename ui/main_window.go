package ui

import (
	"context"
	"fmt"
	"image/color"
	"pomodorotimer/models"
	"pomodorotimer/quotes"
	"pomodorotimer/stats"
	"pomodorotimer/storage"
	"pomodorotimer/timer"
	"strconv"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/ncruces/zenity"
)

// MainWindow represents the main application window
type MainWindow struct {
	app    fyne.App
	window fyne.Window

	storage      *storage.Manager
	data         *models.AppData
	timer        *timer.Timer
	aggregator   *stats.Aggregator
	quoteService *quotes.Service

	// Protects the timer and its settings reads against the tick
	// goroutine. The aggregator guards the document itself.
	stateMutex sync.Mutex

	timeText    *canvas.Text
	statusLabel *widget.Label
	workButton  *widget.Button
	breakButton *widget.Button
	quoteLabel  *QuoteLabel

	ticker *time.Ticker
}

// NewMainWindow creates a new main window
func NewMainWindow() *MainWindow {
	myApp := app.New()
	myApp.SetIcon(theme.HistoryIcon())

	window := myApp.NewWindow("Pomodoro Timer")
	window.Resize(fyne.NewSize(300, 420))
	window.SetFixedSize(true)

	mw := &MainWindow{
		app:          myApp,
		window:       window,
		storage:      storage.NewManager(),
		quoteService: quotes.NewService(),
	}

	mw.loadData()
	mw.setupUI()
	mw.refreshQuote()
	mw.startTicker()

	return mw
}

// ShowAndRun shows the window and runs the application
func (mw *MainWindow) ShowAndRun() {
	mw.window.ShowAndRun()
	if mw.ticker != nil {
		mw.ticker.Stop()
	}
}

// loadData loads the persisted document and builds the timer on top of it
func (mw *MainWindow) loadData() {
	mw.data = mw.storage.Load()
	mw.timer = timer.New(mw.data.Settings)
	mw.aggregator = stats.NewAggregator(mw.data, mw.storage)
}

// setupUI sets up the user interface
func (mw *MainWindow) setupUI() {
	mw.timeText = canvas.NewText(timer.FormatClock(mw.data.Settings.WorkMinutes*60), theme.ForegroundColor())
	mw.timeText.TextSize = 52
	mw.timeText.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	mw.timeText.Alignment = fyne.TextAlignCenter

	mw.statusLabel = widget.NewLabel("Ready To Work.")
	mw.statusLabel.Alignment = fyne.TextAlignCenter

	mw.workButton = widget.NewButton("Start Work", mw.toggleWork)
	mw.breakButton = widget.NewButton("Start Break", mw.toggleBreak)

	buttons := container.NewGridWithColumns(2,
		mw.workButton,
		mw.breakButton,
		widget.NewButton("Reset Timer", mw.resetTimer),
		widget.NewButton("Reset Stats", mw.confirmResetStats),
		widget.NewButton("Show Stats", mw.showStats),
		widget.NewButton("Settings", mw.showSettings),
	)

	mw.quoteLabel = NewQuoteLabel("Fetching quote...")
	mw.quoteLabel.OnTapped = mw.refreshQuote

	footer := widget.NewLabel("Click the quote for a new one")
	footer.Alignment = fyne.TextAlignCenter
	footer.TextStyle = fyne.TextStyle{Monospace: true}

	content := container.NewVBox(
		mw.timeText,
		mw.statusLabel,
		buttons,
		mw.quoteLabel,
		footer,
	)
	mw.window.SetContent(content)
}

// startTicker drives the countdown once per second
func (mw *MainWindow) startTicker() {
	mw.ticker = time.NewTicker(time.Second)
	go func() {
		for range mw.ticker.C {
			mw.stateMutex.Lock()
			event := mw.timer.Tick()
			mw.stateMutex.Unlock()

			mw.handleCompletion(event)
			mw.updateUI()
		}
	}()
}

// handleCompletion records and announces a finished phase
func (mw *MainWindow) handleCompletion(event timer.Event) {
	switch event {
	case timer.EventWorkComplete:
		if err := mw.aggregator.Record(); err != nil {
			dialog.ShowInformation("Save Failed",
				fmt.Sprintf("Could not save your session history:\n%v\n\nThe session is still counted for this run.", err),
				mw.window)
		}
		mw.notify("Work Session Complete", "Well done! Time for a break.")
	case timer.EventBreakComplete:
		mw.notify("Break Complete", "Ready to get back to work.")
	}
}

// notify sends a desktop notification, preferring the native service
func (mw *MainWindow) notify(title, message string) {
	if zenity.IsAvailable() {
		if err := zenity.Notify(message, zenity.Title(title), zenity.InfoIcon); err == nil {
			return
		}
	}
	mw.app.SendNotification(&fyne.Notification{
		Title:   title,
		Content: message,
	})
}

// toggleWork handles the Start/Pause Work button
func (mw *MainWindow) toggleWork() {
	mw.stateMutex.Lock()
	switch {
	case mw.timer.Phase() != timer.PhaseWork:
		mw.timer.StartWork()
	case mw.timer.Paused():
		mw.timer.Resume()
	default:
		mw.timer.Pause()
	}
	mw.stateMutex.Unlock()
	mw.updateUI()
}

// toggleBreak handles the Start/Pause Break button
func (mw *MainWindow) toggleBreak() {
	mw.stateMutex.Lock()
	switch {
	case !mw.timer.Phase().IsBreak():
		mw.timer.StartBreak()
	case mw.timer.Paused():
		mw.timer.Resume()
	default:
		mw.timer.Pause()
	}
	mw.stateMutex.Unlock()
	mw.updateUI()
}

// resetTimer returns the countdown to idle without touching history
func (mw *MainWindow) resetTimer() {
	mw.stateMutex.Lock()
	mw.timer.Reset()
	mw.stateMutex.Unlock()
	mw.updateUI()
}

// confirmResetStats asks before clearing the session history
func (mw *MainWindow) confirmResetStats() {
	dialog.ShowConfirm("Reset Statistics",
		"Delete all recorded sessions? This cannot be undone.",
		func(confirm bool) {
			if !confirm {
				return
			}
			if err := mw.aggregator.Clear(); err != nil {
				dialog.ShowInformation("Save Failed",
					fmt.Sprintf("Could not save the cleared history:\n%v", err), mw.window)
			}
		}, mw.window)
}

// refreshQuote fetches a new quote off the UI thread and delivers it back
// to the quote label
func (mw *MainWindow) refreshQuote() {
	mw.quoteLabel.SetText("Fetching quote...")

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), quotes.FetchTimeout)
		defer cancel()

		quote := mw.quoteService.Fetch(ctx)
		mw.quoteLabel.SetText(quote.String())
	}()
}

// showStats opens the statistics window
func (mw *MainWindow) showStats() {
	NewStatsWindow(mw.app, mw.aggregator).Show()
}

// showSettings opens the settings dialog
func (mw *MainWindow) showSettings() {
	settings := mw.data.Settings

	workEntry := newDurationEntry(settings.WorkMinutes)
	shortEntry := newDurationEntry(settings.ShortBreakMinutes)
	longEntry := newDurationEntry(settings.LongBreakMinutes)
	sessionsEntry := newDurationEntry(settings.SessionsPerLongBreak)

	autoStartCheck := widget.NewCheck("Start the next phase automatically", nil)
	autoStartCheck.SetChecked(settings.AutoStart)

	pinCheck := widget.NewCheck("Keep the window on top", nil)
	pinCheck.SetChecked(settings.AlwaysOnTop)

	form := dialog.NewForm("Settings", "Save", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Work (minutes)", workEntry),
			widget.NewFormItem("Short Break (minutes)", shortEntry),
			widget.NewFormItem("Long Break (minutes)", longEntry),
			widget.NewFormItem("Sessions per Long Break", sessionsEntry),
			widget.NewFormItem("Auto Start", autoStartCheck),
			widget.NewFormItem("Pin Window", pinCheck),
		},
		func(confirm bool) {
			if !confirm {
				return
			}

			mw.stateMutex.Lock()
			// Invalid fields keep their previous value
			err := mw.aggregator.UpdateSettings(func(s *models.Settings) {
				applyDuration(workEntry, &s.WorkMinutes)
				applyDuration(shortEntry, &s.ShortBreakMinutes)
				applyDuration(longEntry, &s.LongBreakMinutes)
				applyDuration(sessionsEntry, &s.SessionsPerLongBreak)
				s.AutoStart = autoStartCheck.Checked
				s.AlwaysOnTop = pinCheck.Checked
			})
			mw.stateMutex.Unlock()

			if err != nil {
				dialog.ShowInformation("Save Failed",
					fmt.Sprintf("Could not save settings:\n%v\n\nThey still apply for this run.", err),
					mw.window)
			}
			mw.updateUI()
		},
		mw.window)

	form.Resize(fyne.NewSize(340, 320))
	form.Show()
}

// newDurationEntry creates an entry pre-filled with a positive integer
func newDurationEntry(value int) *widget.Entry {
	entry := widget.NewEntry()
	entry.SetText(strconv.Itoa(value))
	return entry
}

// applyDuration parses an entry into target, rejecting anything that is not
// a positive integer
func applyDuration(entry *widget.Entry, target *int) {
	value, err := strconv.Atoi(entry.Text)
	if err != nil || value <= 0 {
		return
	}
	*target = value
}

// updateUI refreshes the clock, status text and button labels
func (mw *MainWindow) updateUI() {
	mw.stateMutex.Lock()
	phase := mw.timer.Phase()
	paused := mw.timer.Paused()
	remaining := mw.timer.Remaining()
	workMinutes := mw.data.Settings.WorkMinutes
	mw.stateMutex.Unlock()

	// An idle timer previews the upcoming work duration
	if phase == timer.PhaseIdle && remaining == 0 {
		remaining = workMinutes * 60
	}
	mw.timeText.Text = timer.FormatClock(remaining)
	mw.timeText.Refresh()

	status := "Ready To Work."
	workText := "Start Work"
	breakText := "Start Break"
	switch {
	case phase == timer.PhaseWork && !paused:
		status = "Working..."
		workText = "Pause Work"
	case phase == timer.PhaseWork && paused:
		status = "Work Paused"
	case phase.IsBreak() && !paused:
		status = "Break..."
		breakText = "Pause Break"
	case phase.IsBreak() && paused:
		status = "Break Paused"
	}

	mw.statusLabel.SetText(status)
	mw.workButton.SetText(workText)
	mw.breakButton.SetText(breakText)
}

// statsBannerColor is the background of the weekly total banner
var statsBannerColor = color.NRGBA{R: 0x1f, G: 0xa3, B: 0x1f, A: 0xff}
