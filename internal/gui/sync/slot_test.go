package sync

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
)

func TestEntrySlotNotifiesOncePerWrite(t *testing.T) {
	test.NewTempApp(t)

	slot := NewEntrySlot(widget.NewMultiLineEntry())
	notifications := 0
	slot.OnChanged(func() { notifications++ })

	slot.SetText("... --- ...")
	assert.Equal(t, 1, notifications)

	slot.SetText("... --- ...")
	assert.Equal(t, 2, notifications, "unchanged text still notifies")

	slot.SetText("")
	assert.Equal(t, 3, notifications)
	assert.Equal(t, "", slot.Text())
}

func TestEntrySlotsStayInSync(t *testing.T) {
	test.NewTempApp(t)

	message := widget.NewMultiLineEntry()
	code := widget.NewMultiLineEntry()
	c := NewController(NewEntrySlot(message), NewEntrySlot(code), FyneEchoesPerWrite, nil)

	test.Type(message, "sos")
	assert.Equal(t, "... --- ...", code.Text)
	assert.Equal(t, "sos", message.Text)
	assert.Equal(t, 3, c.Writes(RoleMorse))
	assert.Zero(t, c.Writes(RoleMessage))
	assertSettled(t, c)

	code.SetText(".- / -...")
	assert.Equal(t, "a b ", message.Text)
	assert.Equal(t, 1, c.Writes(RoleMessage))
	assertSettled(t, c)
}

func TestEntrySlotReportsContent(t *testing.T) {
	test.NewTempApp(t)

	message := NewEntrySlot(widget.NewMultiLineEntry())
	code := NewEntrySlot(widget.NewMultiLineEntry())
	c := NewController(message, code, FyneEchoesPerWrite, nil)

	enabled := map[Role]bool{}
	c.SetContentHandler(func(role Role, hasContent bool) {
		enabled[role] = hasContent
	})

	message.SetText("SOS")
	assert.Equal(t, "... --- ...", code.Text())
	assert.True(t, enabled[RoleMessage])
	assert.True(t, enabled[RoleMorse])
}
