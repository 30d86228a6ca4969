package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/urfave/cli"

	"pulsetimer/internal/config"
	"pulsetimer/internal/core/model"
	"pulsetimer/internal/core/selector"
	"pulsetimer/internal/core/session"
	"pulsetimer/internal/haptics"
	"pulsetimer/internal/storage"
	"pulsetimer/internal/ui/board"
	"pulsetimer/internal/ui/preferences"
	"pulsetimer/internal/ui/tray"
	"pulsetimer/resources"
)

const appName = "PulseTimer"

func main() {
	cliApp := cli.NewApp()
	cliApp.Name = "pulsetimer"
	cliApp.Usage = "arm a 10, 15 or 30 second pulse with a synchronized progress sweep"
	cliApp.Version = "1.0.0"
	cliApp.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config",
			Usage: "Path to settings.yaml (default: user config directory)",
		},
		cli.StringFlag{
			Name:  "pulse",
			Usage: "Pulse effect: beep, log or off (overrides settings)",
		},
		cli.BoolFlag{
			Name:  "headless",
			Usage: "Run without a window, logging pulses and sweeps",
		},
		cli.StringFlag{
			Name:  "arm",
			Usage: "Period to arm at startup: 10, 15 or 30",
		},
		cli.DurationFlag{
			Name:  "for",
			Usage: "Stop after this long in headless mode (0 = until interrupted)",
		},
		cli.BoolFlag{
			Name:  "verbose",
			Usage: "Enable debug logging",
		},
	}
	cliApp.Action = run

	if err := cliApp.Run(os.Args); err != nil {
		slog.Error("pulsetimer failed", "error", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	level := slog.LevelInfo
	if c.Bool("verbose") {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	settings, err := loadSettings(c.String("config"))
	if err != nil {
		logger.Warn("using default settings", "error", err)
	}
	if value := c.String("pulse"); value != "" {
		mode, err := haptics.ParseMode(value)
		if err != nil {
			return err
		}
		settings.PulseMode = mode
	}

	var armAtStart *model.PeriodOption
	if value := c.String("arm"); value != "" {
		option, ok := model.ParsePeriod(value)
		if !ok {
			return fmt.Errorf("unsupported period %q: choose 10, 15 or 30", value)
		}
		armAtStart = &option
	}

	if c.Bool("headless") {
		if armAtStart == nil {
			return errors.New("headless mode requires --arm")
		}
		return runHeadless(settings, logger, *armAtStart, c.Duration("for"))
	}
	return runDesktop(settings, logger, c.String("config"), armAtStart)
}

func runHeadless(settings config.Settings, logger *slog.Logger, option model.PeriodOption, limit time.Duration) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if limit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, limit)
		defer cancel()
	}

	sess := session.New(settings.RuntimeConfig(), buildPulser(settings, logger), logger)
	events := sess.Subscribe(256)
	go func() {
		for event := range events {
			switch event.Type {
			case selector.EventPulse:
				logger.Info("pulse fired", "period", event.Option, "count", event.Count)
			case selector.EventSweep:
				logger.Info("sweep completed", "period", event.Option, "count", event.Count)
			}
		}
	}()

	runErr := make(chan error, 1)
	go func() {
		runErr <- sess.Run(ctx)
	}()

	if err := sess.Select(option); err != nil {
		return err
	}
	logger.Info("running headless", "period", option, "limit", limit)

	err := <-runErr
	if errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}

func runDesktop(settings config.Settings, logger *slog.Logger, configPath string, armAtStart *model.PeriodOption) error {
	fyneApp := app.NewWithID("com.pulsetimer.app")
	fyneApp.SetIcon(resources.Icon())

	pulser := haptics.NewSwitch(buildPulser(settings, logger))
	sess := session.New(settings.RuntimeConfig(), pulser, logger)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	boardWindow := board.New(fyneApp, "Pulse Timer", func(option model.PeriodOption) {
		if err := sess.Select(option); err != nil {
			logger.Warn("select failed", "period", option, "error", err)
		}
	})

	prefsWindow := preferences.New(fyneApp, settings, func(updated config.Settings) {
		if updated.FrameRate != settings.FrameRate {
			logger.Info("frame rate change applies after restart", "frame_rate", updated.FrameRate)
		}
		if updated.PulseMode != settings.PulseMode ||
			updated.ToneFrequency != settings.ToneFrequency ||
			updated.PulseLength != settings.PulseLength {
			pulser.Set(buildPulser(updated, logger))
		}
		settings = updated
		if err := saveSettings(configPath, settings); err != nil {
			logger.Error("save settings", "error", err)
		}
	})

	quit := func() {
		cancel()
		fyneApp.Quit()
	}

	var trayManager *tray.Manager
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShow: boardWindow.Show,
			OnSelect: func(option model.PeriodOption) {
				if err := sess.Select(option); err != nil {
					logger.Warn("select failed", "period", option, "error", err)
				}
			},
			OnDisarm: func() {
				if err := sess.Disarm(); err != nil {
					logger.Warn("disarm failed", "error", err)
				}
			},
			OnPreferences: prefsWindow.Show,
			OnQuit:        quit,
		})
		desktopApp.SetSystemTrayIcon(resources.Icon())
		boardWindow.Window().SetCloseIntercept(boardWindow.Window().Hide)
	} else {
		logger.Info("system tray unsupported on this platform")
		boardWindow.Window().SetOnClosed(quit)
	}

	events := sess.Subscribe(64)
	go func() {
		for event := range events {
			switch event.Type {
			case selector.EventStateChange:
				boardWindow.SetState(event.State)
				if trayManager != nil {
					state := event.State
					fyne.Do(func() {
						trayManager.SetState(state)
					})
				}
			case selector.EventProgress:
				boardWindow.SetProgress(event.Option, event.Progress)
			}
		}
	}()

	runErr := make(chan error, 1)
	go func() {
		runErr <- sess.Run(ctx)
	}()

	if armAtStart != nil {
		if err := sess.Select(*armAtStart); err != nil {
			logger.Warn("arm at start failed", "period", *armAtStart, "error", err)
		}
	}

	boardWindow.Show()
	fyneApp.Run()

	cancel()
	if err := <-runErr; err != nil {
		return fmt.Errorf("session stopped: %w", err)
	}
	return nil
}

func buildPulser(settings config.Settings, logger *slog.Logger) haptics.Pulser {
	options := settings.PulseOptions()
	options.Logger = logger
	options.Trace = logger.Enabled(context.Background(), slog.LevelDebug)
	pulser, err := haptics.New(settings.PulseMode, options)
	if err != nil {
		logger.Warn("pulse effect unavailable", "mode", settings.PulseMode, "error", err)
	}
	if pulser == nil {
		return haptics.NewLogger(logger)
	}
	return pulser
}

func loadSettings(path string) (config.Settings, error) {
	if path != "" {
		return storage.LoadSettingsFile(path)
	}
	return storage.LoadSettings(appName)
}

func saveSettings(path string, settings config.Settings) error {
	if path != "" {
		return storage.SaveSettingsFile(path, settings)
	}
	return storage.SaveSettings(appName, settings)
}
