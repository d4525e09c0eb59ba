package ui

import (
	"fmt"
	"image/color"
	"pomodorotimer/stats"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

var weekdayNames = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// StatsWindow shows one week of session counts with prev/next navigation
type StatsWindow struct {
	window     fyne.Window
	aggregator *stats.Aggregator
	weekOffset int

	rangeLabel  *widget.Label
	countLabels [7]*widget.Label
	totalBanner *BannerLabel
}

// NewStatsWindow creates a new statistics window showing the current week
func NewStatsWindow(app fyne.App, aggregator *stats.Aggregator) *StatsWindow {
	sw := &StatsWindow{
		window:     app.NewWindow("Pomodoro Statistics"),
		aggregator: aggregator,
	}
	sw.window.Resize(fyne.NewSize(340, 360))
	sw.window.SetFixedSize(true)

	sw.setupUI()
	sw.refresh()

	return sw
}

// Show displays the window
func (sw *StatsWindow) Show() {
	sw.window.Show()
}

// setupUI builds the navigation row, the seven day rows and the total banner
func (sw *StatsWindow) setupUI() {
	prevButton := widget.NewButton("← Previous Week", func() {
		sw.changeWeek(-1)
	})
	nextButton := widget.NewButton("Next Week →", func() {
		sw.changeWeek(1)
	})
	nav := container.NewGridWithColumns(2, prevButton, nextButton)

	sw.rangeLabel = widget.NewLabel("")
	sw.rangeLabel.Alignment = fyne.TextAlignCenter
	sw.rangeLabel.TextStyle = fyne.TextStyle{Bold: true}

	days := container.NewVBox()
	for i, name := range weekdayNames {
		countLabel := widget.NewLabel("0")
		countLabel.TextStyle = fyne.TextStyle{Bold: true}
		sw.countLabels[i] = countLabel

		row := container.NewBorder(nil, nil,
			widget.NewLabel(name),
			container.NewHBox(countLabel, widget.NewLabel("🍅")),
		)
		days.Add(row)
	}

	sw.totalBanner = NewBannerLabel("", statsBannerColor, color.White)

	content := container.NewBorder(
		container.NewVBox(nav, sw.rangeLabel),
		sw.totalBanner,
		nil, nil,
		days,
	)
	sw.window.SetContent(content)
}

// changeWeek navigates the view forward or backward
func (sw *StatsWindow) changeWeek(direction int) {
	sw.weekOffset += direction
	sw.refresh()
}

// refresh recomputes the displayed week
func (sw *StatsWindow) refresh() {
	view := sw.aggregator.Week(sw.weekOffset)

	sw.rangeLabel.SetText(fmt.Sprintf("%s - %s",
		view.Start.Format("January 02"),
		view.End.Format("January 02, 2006")))

	for i, count := range view.Days {
		sw.countLabels[i].SetText(fmt.Sprintf("%d", count))
	}

	sw.totalBanner.SetText(fmt.Sprintf("Weekly Total: %d Pomodoros", view.Total))
}
