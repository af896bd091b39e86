package app

import (
	"telegraph/internal/logger"
	"telegraph/internal/shutdown"

	"fyne.io/fyne/v2"
)

type Lifecycle struct {
	window      fyne.Window
	settings    *WindowSettings
	shutdownMgr *shutdown.Manager
	logger      logger.Logger
	isClosed    bool
}

func NewLifecycle(window fyne.Window, settings *WindowSettings, sm *shutdown.Manager, log logger.Logger) *Lifecycle {
	return &Lifecycle{
		window:      window,
		settings:    settings,
		shutdownMgr: sm,
		logger:      log,
	}
}

// Close hands the window size to the settings, stops the components and
// closes the window. Must run on the UI goroutine.
func (l *Lifecycle) Close() {
	if l.isClosed {
		return
	}
	l.isClosed = true

	size := l.window.Canvas().Size()
	l.settings.Remember(size)
	l.logger.Debug("Lifecycle", "window size captured", map[string]interface{}{
		"width":  size.Width,
		"height": size.Height,
	})

	l.Shutdown()
	l.window.Close()
}

func (l *Lifecycle) Shutdown() {
	l.shutdownMgr.Shutdown()
}
