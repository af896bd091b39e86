package app

import (
	"sync"

	"fyne.io/fyne/v2"
)

const (
	keyWindowWidth  = "window-size.width"
	keyWindowHeight = "window-size.height"

	DefaultWindowWidth  = 360
	DefaultWindowHeight = 540
	MinWindowWidth      = 320
	MinWindowHeight     = 450
)

// WindowSettings persists the window size between runs
type WindowSettings struct {
	preferences fyne.Preferences

	mu      sync.Mutex
	pending *fyne.Size
}

func NewWindowSettings(preferences fyne.Preferences) *WindowSettings {
	return &WindowSettings{preferences: preferences}
}

// Load returns the stored size, never smaller than the minimum.
func (ws *WindowSettings) Load() fyne.Size {
	width := ws.preferences.FloatWithFallback(keyWindowWidth, DefaultWindowWidth)
	height := ws.preferences.FloatWithFallback(keyWindowHeight, DefaultWindowHeight)

	return clampSize(fyne.NewSize(float32(width), float32(height)))
}

func (ws *WindowSettings) Save(size fyne.Size) {
	size = clampSize(size)
	ws.preferences.SetFloat(keyWindowWidth, float64(size.Width))
	ws.preferences.SetFloat(keyWindowHeight, float64(size.Height))
}

// Remember records the size to write on Shutdown. The canvas must be read
// on the UI goroutine, while Shutdown runs on the shutdown manager's.
func (ws *WindowSettings) Remember(size fyne.Size) {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	ws.pending = &size
}

// Shutdown saves the remembered size, if any.
func (ws *WindowSettings) Shutdown() {
	ws.mu.Lock()
	pending := ws.pending
	ws.pending = nil
	ws.mu.Unlock()

	if pending != nil {
		ws.Save(*pending)
	}
}

func clampSize(size fyne.Size) fyne.Size {
	if size.Width < MinWindowWidth {
		size.Width = MinWindowWidth
	}
	if size.Height < MinWindowHeight {
		size.Height = MinWindowHeight
	}
	return size
}
