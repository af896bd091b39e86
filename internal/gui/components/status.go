package components

import (
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusBar shows short-lived toast messages under the text groups
type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label

	mu         sync.Mutex
	generation int
	timer      *time.Timer
	stopped    bool
}

func NewStatusBar() *StatusBar {
	statusLabel := widget.NewLabel("")
	statusLabel.Alignment = fyne.TextAlignCenter

	return &StatusBar{
		container:   container.NewStack(statusLabel),
		statusLabel: statusLabel,
	}
}

func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

// ShowToast replaces the current toast and clears it after duration unless
// a newer toast has been shown meanwhile. Does nothing once stopped.
func (sb *StatusBar) ShowToast(message string, duration time.Duration) {
	sb.mu.Lock()
	if sb.stopped {
		sb.mu.Unlock()
		return
	}
	if sb.timer != nil {
		sb.timer.Stop()
	}
	sb.generation++
	generation := sb.generation
	sb.timer = time.AfterFunc(duration, func() {
		fyne.Do(func() { sb.expire(generation) })
	})
	sb.mu.Unlock()

	sb.statusLabel.SetText(message)
}

func (sb *StatusBar) ClearToast() {
	sb.statusLabel.SetText("")
}

func (sb *StatusBar) Toast() string {
	return sb.statusLabel.Text
}

// Stop cancels the pending clear and ignores later toasts. Safe to call
// from any goroutine.
func (sb *StatusBar) Stop() {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	sb.stopped = true
	if sb.timer != nil {
		sb.timer.Stop()
		sb.timer = nil
	}
}

func (sb *StatusBar) expire(generation int) {
	sb.mu.Lock()
	current := sb.generation == generation && !sb.stopped
	sb.mu.Unlock()

	if current {
		sb.ClearToast()
	}
}
