package app

import (
	"os"
	"runtime"

	"telegraph/internal/config"
	"telegraph/internal/gui"
	"telegraph/internal/logger"
	"telegraph/internal/shutdown"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName    = "Telegraph"
	AppID      = "io.github.telegraph"
	AppVersion = "1.0.0"
)

type Application struct {
	fyneApp     fyne.App
	window      fyne.Window
	config      config.Config
	logger      logger.Logger
	guiManager  *gui.Manager
	settings    *WindowSettings
	shutdownMgr *shutdown.Manager
	lifecycle   *Lifecycle
}

func NewApplication(cfg config.Config) (*Application, error) {
	log, err := logger.New(os.Stderr, cfg.LogLevel, cfg.JSONLogs)
	if err != nil {
		return nil, err
	}

	return newApplication(app.NewWithID(AppID), cfg, log), nil
}

func newApplication(fyneApp fyne.App, cfg config.Config, log logger.Logger) *Application {
	title := AppName
	if cfg.IsDevel() {
		title += " (Development)"
	}

	window := fyneApp.NewWindow(title)
	settings := NewWindowSettings(fyneApp.Preferences())

	size := settings.Load()
	window.Resize(size)
	window.SetMaster()
	window.CenterOnScreen()

	log.Info("Application", "starting application", map[string]interface{}{
		"version":       AppVersion,
		"profile":       cfg.Profile,
		"window_width":  size.Width,
		"window_height": size.Height,
		"go_version":    runtime.Version(),
	})

	guiManager := gui.NewManager(window, window.Clipboard(), log, cfg.ToastDuration.Duration)

	// stopped in reverse: the GUI first, then the size is written
	shutdownMgr := shutdown.NewManager(log)
	shutdownMgr.Register(settings)
	shutdownMgr.Register(guiManager)

	lifecycle := NewLifecycle(window, settings, shutdownMgr, log)

	return &Application{
		fyneApp:     fyneApp,
		window:      window,
		config:      cfg,
		logger:      log,
		guiManager:  guiManager,
		settings:    settings,
		shutdownMgr: shutdownMgr,
		lifecycle:   lifecycle,
	}
}

// Show builds the window content and seeds the message slot.
func (a *Application) Show() {
	a.window.SetCloseIntercept(a.lifecycle.Close)
	a.window.SetContent(a.guiManager.GetMainContainer())

	a.guiManager.SetMessage(a.config.InitialMessage)
	a.window.Show()
	a.guiManager.Focus()

	a.logger.Info("Application", "GUI displayed", nil)
}

func (a *Application) Run() error {
	a.shutdownMgr.Listen(func() {
		fyne.Do(a.lifecycle.Close)
	})

	a.Show()
	a.fyneApp.Run()

	// fyne returns here once the window is gone; Shutdown only acts once
	a.lifecycle.Shutdown()
	return nil
}
