package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// BannerLabel is a custom widget that displays centered bold text on a
// colored background, used for the weekly total banner in the stats window
type BannerLabel struct {
	widget.BaseWidget
	text      string
	bgColor   color.Color
	textColor color.Color
	textObj   *canvas.Text
	bgRect    *canvas.Rectangle
	container *fyne.Container
}

// NewBannerLabel creates a new banner label
func NewBannerLabel(text string, bgColor, textColor color.Color) *BannerLabel {
	bl := &BannerLabel{
		text:      text,
		bgColor:   bgColor,
		textColor: textColor,
	}
	bl.ExtendBaseWidget(bl)
	return bl
}

// CreateRenderer implements fyne.Widget
func (bl *BannerLabel) CreateRenderer() fyne.WidgetRenderer {
	bl.textObj = canvas.NewText(bl.text, bl.textColor)
	bl.textObj.TextStyle = fyne.TextStyle{Bold: true}
	bl.textObj.Alignment = fyne.TextAlignCenter

	bl.bgRect = canvas.NewRectangle(bl.bgColor)

	bl.container = container.NewStack(bl.bgRect, bl.textObj)

	return &bannerLabelRenderer{
		label:     bl,
		container: bl.container,
		bgRect:    bl.bgRect,
		textObj:   bl.textObj,
	}
}

// SetText updates the banner text
func (bl *BannerLabel) SetText(text string) {
	bl.text = text
	if bl.textObj != nil {
		bl.textObj.Text = text
		bl.textObj.Refresh()
	}
}

// bannerLabelRenderer implements fyne.WidgetRenderer
type bannerLabelRenderer struct {
	label     *BannerLabel
	container *fyne.Container
	bgRect    *canvas.Rectangle
	textObj   *canvas.Text
}

func (r *bannerLabelRenderer) MinSize() fyne.Size {
	min := r.container.MinSize()
	// Breathing room around the text
	return fyne.NewSize(min.Width+16, min.Height+12)
}

func (r *bannerLabelRenderer) Layout(size fyne.Size) {
	r.container.Resize(size)
}

func (r *bannerLabelRenderer) Refresh() {
	r.textObj.Text = r.label.text
	r.textObj.Color = r.label.textColor
	r.bgRect.FillColor = r.label.bgColor
	r.textObj.Refresh()
	r.bgRect.Refresh()
}

func (r *bannerLabelRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.container}
}

func (r *bannerLabelRenderer) Destroy() {
	// Nothing to destroy
}
