package sync

import (
	"fyne.io/fyne/v2/widget"
)

// Role identifies one of the two linked text slots
type Role int

const (
	RoleMessage Role = iota
	RoleMorse
)

func (r Role) String() string {
	switch r {
	case RoleMessage:
		return "message"
	case RoleMorse:
		return "morse"
	default:
		return "unknown"
	}
}

// Other returns the slot that receives the translation of r
func (r Role) Other() Role {
	if r == RoleMessage {
		return RoleMorse
	}
	return RoleMessage
}

// Slot is an editable text surface. Handlers registered with OnChanged run
// synchronously every time the content is replaced, whether by the user or
// by SetText.
type Slot interface {
	Text() string
	SetText(text string)
	OnChanged(handler func())
}

// Number of change notifications one SetText produces, per slot kind.
const (
	// EntrySlot guarantees exactly one.
	FyneEchoesPerWrite = 1
	// A GTK text buffer reports a delete and an insert for each set_text.
	GTKEchoesPerWrite = 2
)

// EntrySlot adapts a fyne entry to Slot
type EntrySlot struct {
	entry    *widget.Entry
	handlers []func()
	fired    int
}

func NewEntrySlot(entry *widget.Entry) *EntrySlot {
	slot := &EntrySlot{entry: entry}
	entry.OnChanged = func(string) {
		slot.notify()
	}
	return slot
}

func (s *EntrySlot) Entry() *widget.Entry {
	return s.entry
}

func (s *EntrySlot) Text() string {
	return s.entry.Text
}

// SetText replaces the entry content. The entry stays silent when the text
// is unchanged, so the notification is raised here instead to keep the
// count at FyneEchoesPerWrite.
func (s *EntrySlot) SetText(text string) {
	before := s.fired
	s.entry.SetText(text)
	if s.fired == before {
		s.notify()
	}
}

func (s *EntrySlot) OnChanged(handler func()) {
	s.handlers = append(s.handlers, handler)
}

func (s *EntrySlot) notify() {
	s.fired++
	for _, handler := range s.handlers {
		handler()
	}
}
