package board

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

var (
	sweepColor = color.NRGBA{R: 0xff, G: 0xc0, B: 0xcb, A: 0xff}
	labelColor = color.NRGBA{R: 0x1e, G: 0x1e, B: 0x1e, A: 0xff}
)

const labelSize = 48

// periodRow is a full-width tappable row whose background fills from the left
// in proportion to sweep progress while its period is armed.
type periodRow struct {
	widget.BaseWidget
	label    string
	progress float64
	armed    bool
	onTapped func()
}

func newPeriodRow(label string, onTapped func()) *periodRow {
	row := &periodRow{label: label, onTapped: onTapped}
	row.ExtendBaseWidget(row)
	return row
}

func (row *periodRow) Tapped(*fyne.PointEvent) {
	if row.onTapped != nil {
		row.onTapped()
	}
}

func (row *periodRow) setProgress(progress float64, armed bool) {
	row.progress = progress
	row.armed = armed
	row.Refresh()
}

func (row *periodRow) fillFraction() float32 {
	if !row.armed {
		return 0
	}
	if row.progress < 0 {
		return 0
	}
	if row.progress > 1 {
		return 1
	}
	return float32(row.progress)
}

func (row *periodRow) CreateRenderer() fyne.WidgetRenderer {
	fill := canvas.NewRectangle(sweepColor)
	text := canvas.NewText(row.label, labelColor)
	text.Alignment = fyne.TextAlignCenter
	text.TextStyle = fyne.TextStyle{Bold: true}
	text.TextSize = labelSize
	return &periodRowRenderer{row: row, fill: fill, text: text}
}

type periodRowRenderer struct {
	row  *periodRow
	fill *canvas.Rectangle
	text *canvas.Text
	size fyne.Size
}

func (renderer *periodRowRenderer) Layout(size fyne.Size) {
	renderer.size = size
	renderer.fill.Move(fyne.NewPos(0, 0))
	renderer.fill.Resize(fyne.NewSize(size.Width*renderer.row.fillFraction(), size.Height))

	textSize := renderer.text.MinSize()
	renderer.text.Move(fyne.NewPos(0, (size.Height-textSize.Height)/2))
	renderer.text.Resize(fyne.NewSize(size.Width, textSize.Height))
}

func (renderer *periodRowRenderer) MinSize() fyne.Size {
	textSize := renderer.text.MinSize()
	return fyne.NewSize(textSize.Width*3, textSize.Height*2)
}

func (renderer *periodRowRenderer) Refresh() {
	renderer.text.Text = renderer.row.label
	renderer.Layout(renderer.size)
	canvas.Refresh(renderer.fill)
	renderer.text.Refresh()
}

func (renderer *periodRowRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{renderer.fill, renderer.text}
}

func (renderer *periodRowRenderer) Destroy() {}
