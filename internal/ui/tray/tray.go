package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"pulsetimer/internal/core/model"
)

const menuTitle = "Pulse Timer"

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow        func()
	OnSelect      func(model.PeriodOption)
	OnDisarm      func()
	OnPreferences func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app        desktop.App
	callbacks  Callbacks
	statusItem *fyne.MenuItem
	periods    map[model.PeriodOption]*fyne.MenuItem
	disarmItem *fyne.MenuItem
	state      model.ArmedState
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
		periods:   make(map[model.PeriodOption]*fyne.MenuItem),
	}

	manager.statusItem = fyne.NewMenuItem("", nil)
	manager.statusItem.Disabled = true

	for _, option := range model.Options() {
		option := option
		manager.periods[option] = fyne.NewMenuItem(periodLabel(option), func() {
			if manager.callbacks.OnSelect != nil {
				manager.callbacks.OnSelect(option)
			}
		})
	}

	manager.disarmItem = fyne.NewMenuItem("Stop", func() {
		if manager.callbacks.OnDisarm != nil {
			manager.callbacks.OnDisarm()
		}
	})

	manager.SetState(model.Idle())
	return manager
}

// SetState reflects the armed period in the menu.
func (manager *Manager) SetState(state model.ArmedState) {
	manager.state = state
	for option, item := range manager.periods {
		item.Checked = state.Is(option)
	}
	manager.disarmItem.Disabled = !state.IsArmed()
	manager.statusItem.Label = statusLabel(state)
	manager.refreshMenu()
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	items := []*fyne.MenuItem{
		manager.statusItem,
		fyne.NewMenuItem("Show", func() {
			if manager.callbacks.OnShow != nil {
				manager.callbacks.OnShow()
			}
		}),
		fyne.NewMenuItemSeparator(),
	}
	for _, option := range model.Options() {
		items = append(items, manager.periods[option])
	}
	items = append(items,
		manager.disarmItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Preferences", func() {
			if manager.callbacks.OnPreferences != nil {
				manager.callbacks.OnPreferences()
			}
		}),
		fyne.NewMenuItem("Quit", func() {
			if manager.callbacks.OnQuit != nil {
				manager.callbacks.OnQuit()
			}
		}),
	)
	manager.app.SetSystemTrayMenu(fyne.NewMenu(menuTitle, items...))
}

func periodLabel(option model.PeriodOption) string {
	return fmt.Sprintf("Pulse every %d seconds", option.Seconds())
}

func statusLabel(state model.ArmedState) string {
	option, ok := state.Option()
	if !ok {
		return "Status: idle"
	}
	return fmt.Sprintf("Status: pulsing every %s", option)
}
