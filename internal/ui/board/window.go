// Package board renders one row per pulse period. It only consumes progress
// values and the armed state; tapping a row reports the selection back.
package board

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"pulsetimer/internal/core/model"
)

// Window manages the period board UI.
type Window struct {
	window fyne.Window
	rows   map[model.PeriodOption]*periodRow
	state  model.ArmedState
}

// New creates the board window. onSelect runs on the UI goroutine.
func New(app fyne.App, title string, onSelect func(model.PeriodOption)) *Window {
	window := app.NewWindow(title)
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	board := &Window{
		window: window,
		rows:   make(map[model.PeriodOption]*periodRow),
	}

	objects := make([]fyne.CanvasObject, 0, len(model.Options()))
	for _, option := range model.Options() {
		option := option
		row := newPeriodRow(fmt.Sprintf("%d", option.Seconds()), func() {
			if onSelect != nil {
				onSelect(option)
			}
		})
		board.rows[option] = row
		objects = append(objects, row)
	}

	window.SetContent(container.NewGridWithRows(len(objects), objects...))
	window.Resize(fyne.NewSize(360, 540))
	return board
}

// Window returns the underlying fyne window.
func (board *Window) Window() fyne.Window {
	return board.window
}

// Show displays the board.
func (board *Window) Show() {
	board.window.Show()
	board.window.RequestFocus()
}

// SetState updates which row is armed. Safe from any goroutine.
func (board *Window) SetState(state model.ArmedState) {
	fyne.Do(func() {
		board.applyState(state)
	})
}

// SetProgress updates one row's sweep. Safe from any goroutine.
func (board *Window) SetProgress(option model.PeriodOption, progress float64) {
	fyne.Do(func() {
		board.applyProgress(option, progress)
	})
}

func (board *Window) applyState(state model.ArmedState) {
	board.state = state
	for option, row := range board.rows {
		if !state.Is(option) {
			row.setProgress(0, false)
		}
	}
}

// applyProgress ignores progress for rows that are not armed, so a late frame
// from a torn down cycle cannot repaint its row.
func (board *Window) applyProgress(option model.PeriodOption, progress float64) {
	row, ok := board.rows[option]
	if !ok {
		return
	}
	row.setProgress(progress, board.state.Is(option))
}
