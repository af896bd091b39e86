// Package sync keeps the message and Morse slots translated into each other
// while swallowing the change notifications caused by its own writes.
package sync

import (
	"telegraph/internal/logger"
	"telegraph/internal/morse"
)

// ContentHandler receives the has-content state of a slot after every
// notification
type ContentHandler func(role Role, hasContent bool)

// Controller is not safe for concurrent use. All notifications must be
// delivered on the UI goroutine.
type Controller struct {
	slots          [2]Slot
	echoesPerWrite int
	logger         logger.Logger

	// re-entrancy guard for the write currently being absorbed
	suppressionCount int
	suppressedSlot   Role
	suppressing      bool

	contentHandler ContentHandler
	writes         [2]int
}

// NewController links the two slots. echoesPerWrite must match the number
// of notifications a single SetText raises on the slots; values below one
// fall back to FyneEchoesPerWrite.
func NewController(message, code Slot, echoesPerWrite int, log logger.Logger) *Controller {
	if echoesPerWrite < 1 {
		echoesPerWrite = FyneEchoesPerWrite
	}
	if log == nil {
		log = logger.NoOpLogger{}
	}

	c := &Controller{
		slots:          [2]Slot{RoleMessage: message, RoleMorse: code},
		echoesPerWrite: echoesPerWrite,
		logger:         log,
	}

	message.OnChanged(func() { c.handleChanged(RoleMessage) })
	code.OnChanged(func() { c.handleChanged(RoleMorse) })

	return c
}

func (c *Controller) SetContentHandler(handler ContentHandler) {
	c.contentHandler = handler
	c.reportContent()
}

func (c *Controller) Slot(role Role) Slot {
	return c.slots[role]
}

// Pending reports the slot whose upcoming notifications will be ignored.
func (c *Controller) Pending() (role Role, count int, ok bool) {
	return c.suppressedSlot, c.suppressionCount, c.suppressing
}

// Writes returns how many translations have been written into role.
func (c *Controller) Writes(role Role) int {
	return c.writes[role]
}

func (c *Controller) handleChanged(source Role) {
	if c.suppressing && c.suppressedSlot == source && c.suppressionCount > 0 {
		c.suppressionCount--
		if c.suppressionCount == 0 {
			c.suppressing = false
		}
		c.logger.Debug("SyncController", "echo absorbed", map[string]interface{}{
			"slot":      source.String(),
			"remaining": c.suppressionCount,
		})
	} else {
		c.propagate(source)
	}

	c.reportContent()
}

func (c *Controller) propagate(source Role) {
	text := c.slots[source].Text()
	target := source.Other()

	var translated string
	if source == RoleMessage {
		translated = morse.Encode(text)
	} else {
		translated = morse.Decode(text)
	}

	c.suppressionCount = c.echoesPerWrite
	c.suppressedSlot = target
	c.suppressing = true
	c.writes[target]++

	c.logger.Debug("SyncController", "translation written", map[string]interface{}{
		"from":   source.String(),
		"to":     target.String(),
		"input":  len(text),
		"output": len(translated),
	})

	c.slots[target].SetText(translated)
}

func (c *Controller) reportContent() {
	if c.contentHandler == nil {
		return
	}
	for _, role := range []Role{RoleMessage, RoleMorse} {
		c.contentHandler(role, len(c.slots[role].Text()) > 0)
	}
}
