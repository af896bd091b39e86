package gui

import (
	"sync/atomic"
	"time"

	"telegraph/internal/gui/components"
	"telegraph/internal/gui/sync"
	"telegraph/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/lang"
)

// Clipboard is the part of fyne.Clipboard the copy buttons need
type Clipboard interface {
	SetContent(content string)
}

type Manager struct {
	window        fyne.Window
	clipboard     Clipboard
	logger        logger.Logger
	toastDuration time.Duration
	isShutdown    atomic.Bool

	message    *components.TextGroup
	morse      *components.TextGroup
	statusBar  *components.StatusBar
	controller *sync.Controller
}

func NewManager(window fyne.Window, clipboard Clipboard, log logger.Logger, toastDuration time.Duration) *Manager {
	message := components.NewTextGroup(lang.L("Message"), lang.L("Type a message"))
	morse := components.NewTextGroup(lang.L("Morse Code"), "... --- ...")

	controller := sync.NewController(
		sync.NewEntrySlot(message.Entry()),
		sync.NewEntrySlot(morse.Entry()),
		sync.FyneEchoesPerWrite,
		log,
	)

	manager := &Manager{
		window:        window,
		clipboard:     clipboard,
		logger:        log,
		toastDuration: toastDuration,
		message:       message,
		morse:         morse,
		statusBar:     components.NewStatusBar(),
		controller:    controller,
	}

	controller.SetContentHandler(manager.onContentChanged)
	message.SetCopyHandler(func() { manager.Copy(sync.RoleMessage) })
	morse.SetCopyHandler(func() { manager.Copy(sync.RoleMorse) })

	log.Info("GUIManager", "initialized", map[string]interface{}{
		"echoes_per_write": sync.FyneEchoesPerWrite,
	})

	return manager
}

func (m *Manager) GetMainContainer() *fyne.Container {
	groups := container.NewGridWithRows(2,
		m.message.GetContainer(),
		m.morse.GetContainer(),
	)

	return container.NewBorder(nil, m.statusBar.GetContainer(), nil, nil, groups)
}

func (m *Manager) Controller() *sync.Controller {
	return m.controller
}

// SetMessage replaces the message text and lets it propagate like an edit.
func (m *Manager) SetMessage(text string) {
	m.controller.Slot(sync.RoleMessage).SetText(text)
}

// Focus puts the keyboard focus into the message entry
func (m *Manager) Focus() {
	if m.window != nil {
		m.window.Canvas().Focus(m.message.Entry())
	}
}

// Copy places the text of role on the clipboard and shows a toast. Empty
// slots are ignored, as is everything after Shutdown.
func (m *Manager) Copy(role sync.Role) {
	if m.isShutdown.Load() {
		return
	}

	text := m.controller.Slot(role).Text()
	if len(text) == 0 {
		return
	}

	m.clipboard.SetContent(text)

	var toast string
	if role == sync.RoleMessage {
		toast = lang.L("Message copied")
	} else {
		toast = lang.L("Morse code copied")
	}
	m.statusBar.ShowToast(toast, m.toastDuration)

	m.logger.Debug("GUIManager", "copied to clipboard", map[string]interface{}{
		"slot":   role.String(),
		"length": len(text),
	})
}

func (m *Manager) Toast() string {
	return m.statusBar.Toast()
}

func (m *Manager) CopyEnabled(role sync.Role) bool {
	return !m.group(role).CopyButton().Disabled()
}

// Shutdown stops pending toasts and disables copying. It may run off the
// UI goroutine.
func (m *Manager) Shutdown() {
	if m.isShutdown.Swap(true) {
		return
	}

	m.statusBar.Stop()
	m.logger.Info("GUIManager", "shutdown completed", nil)
}

func (m *Manager) onContentChanged(role sync.Role, hasContent bool) {
	m.group(role).SetCopyEnabled(hasContent)
}

func (m *Manager) group(role sync.Role) *components.TextGroup {
	if role == sync.RoleMessage {
		return m.message
	}
	return m.morse
}
