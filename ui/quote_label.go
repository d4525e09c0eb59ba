package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// QuoteLabel is a wrapped, italic label that reacts to taps. Tapping the
// quote area fetches a fresh quote.
type QuoteLabel struct {
	widget.Label
	OnTapped func()
}

// NewQuoteLabel creates a new quote label
func NewQuoteLabel(text string) *QuoteLabel {
	ql := &QuoteLabel{}
	ql.Text = text
	ql.Wrapping = fyne.TextWrapWord
	ql.Alignment = fyne.TextAlignCenter
	ql.TextStyle = fyne.TextStyle{Italic: true}
	ql.ExtendBaseWidget(ql)
	return ql
}

// Tapped implements fyne.Tappable
func (ql *QuoteLabel) Tapped(_ *fyne.PointEvent) {
	if ql.OnTapped != nil {
		ql.OnTapped()
	}
}
