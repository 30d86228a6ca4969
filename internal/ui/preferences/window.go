package preferences

import (
	"fmt"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"pulsetimer/internal/config"
	"pulsetimer/internal/haptics"
)

// Window handles the preferences UI.
type Window struct {
	window    fyne.Window
	settings  config.Settings
	onSave    func(config.Settings)
	pulseMode *widget.Select
	frequency *widget.Entry
	length    *widget.Entry
	frameRate *widget.Entry
}

// New creates a preferences window.
func New(app fyne.App, settings config.Settings, onSave func(config.Settings)) *Window {
	window := app.NewWindow("Pulse Timer Settings")

	modes := make([]string, 0, len(haptics.Modes()))
	for _, mode := range haptics.Modes() {
		modes = append(modes, string(mode))
	}
	pulseMode := widget.NewSelect(modes, nil)
	frequency := widget.NewEntry()
	length := widget.NewEntry()
	frameRate := widget.NewEntry()

	form := container.NewVBox(
		widget.NewLabelWithStyle("Pulse", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Pulse effect"), pulseMode),
		container.NewHBox(widget.NewLabel("Tone pitch"), frequency, widget.NewLabel("Hz")),
		container.NewHBox(widget.NewLabel("Tone length"), length, widget.NewLabel("ms")),
		widget.NewLabelWithStyle("Animation", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Sweep frame rate"), frameRate, widget.NewLabel("fps")),
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(360, 280))
	window.SetCloseIntercept(window.Hide)

	prefs := &Window{
		window:    window,
		onSave:    onSave,
		pulseMode: pulseMode,
		frequency: frequency,
		length:    length,
		frameRate: frameRate,
	}
	prefs.UpdateSettings(settings)

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	}

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings config.Settings) {
	prefs.settings = settings
	prefs.pulseMode.SetSelected(string(settings.PulseMode))
	prefs.frequency.SetText(fmt.Sprintf("%d", int(settings.ToneFrequency)))
	prefs.length.SetText(fmt.Sprintf("%d", settings.PulseLength.Milliseconds()))
	prefs.frameRate.SetText(fmt.Sprintf("%d", settings.FrameRate))
}

func (prefs *Window) handleSave() {
	settings := prefs.settings

	if mode, err := haptics.ParseMode(prefs.pulseMode.Selected); err == nil {
		settings.PulseMode = mode
	}
	if hz, ok := parsePositiveInt(prefs.frequency.Text); ok && config.ValidToneFrequency(float64(hz)) {
		settings.ToneFrequency = float64(hz)
	}
	if ms, ok := parsePositiveInt(prefs.length.Text); ok && config.ValidPulseLength(time.Duration(ms)*time.Millisecond) {
		settings.PulseLength = time.Duration(ms) * time.Millisecond
	}
	if fps, ok := parsePositiveInt(prefs.frameRate.Text); ok && config.ValidFrameRate(fps) {
		settings.FrameRate = fps
	}

	prefs.UpdateSettings(settings)
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
