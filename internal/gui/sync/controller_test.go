package sync

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memorySlot raises `echoes` notifications per SetText. With two echoes it
// behaves like a GTK buffer: a delete followed by an insert.
type memorySlot struct {
	text     string
	echoes   int
	handlers []func()
	sets     int
}

func newMemorySlot(echoes int) *memorySlot {
	return &memorySlot{echoes: echoes}
}

func (s *memorySlot) Text() string { return s.text }

func (s *memorySlot) SetText(text string) {
	s.sets++
	if s.echoes == 2 {
		s.text = ""
		s.fire()
		s.text = text
		s.fire()
		return
	}
	s.text = text
	for i := 0; i < s.echoes; i++ {
		s.fire()
	}
}

func (s *memorySlot) OnChanged(handler func()) {
	s.handlers = append(s.handlers, handler)
}

// edit simulates a user keystroke
func (s *memorySlot) edit(text string) {
	s.text = text
	s.fire()
}

func (s *memorySlot) fire() {
	for _, handler := range s.handlers {
		handler()
	}
}

func assertSettled(t *testing.T, c *Controller) {
	t.Helper()
	_, count, pending := c.Pending()
	assert.False(t, pending, "suppression still pending")
	assert.Zero(t, count)
}

func TestMessageEditWritesMorseOnce(t *testing.T) {
	for _, echoes := range []int{FyneEchoesPerWrite, GTKEchoesPerWrite} {
		message, code := newMemorySlot(echoes), newMemorySlot(echoes)
		c := NewController(message, code, echoes, nil)

		message.edit("sos")

		assert.Equal(t, "... --- ...", code.Text())
		assert.Equal(t, "sos", message.Text())
		assert.Equal(t, 1, code.sets)
		assert.Zero(t, message.sets, "no write back into the edited slot")
		assert.Equal(t, 1, c.Writes(RoleMorse))
		assertSettled(t, c)
	}
}

func TestMorseEditWritesMessageOnce(t *testing.T) {
	for _, echoes := range []int{FyneEchoesPerWrite, GTKEchoesPerWrite} {
		message, code := newMemorySlot(echoes), newMemorySlot(echoes)
		c := NewController(message, code, echoes, nil)

		code.edit(".... .. / -.-- ---")

		assert.Equal(t, "hi yo ", message.Text())
		assert.Equal(t, 1, message.sets)
		assert.Zero(t, code.sets)
		assertSettled(t, c)
	}
}

func TestAlternatingEditsSettle(t *testing.T) {
	message, code := newMemorySlot(GTKEchoesPerWrite), newMemorySlot(GTKEchoesPerWrite)
	c := NewController(message, code, GTKEchoesPerWrite, nil)

	typed := ""
	for _, r := range "hello world" {
		typed += string(r)
		message.edit(typed)
		assertSettled(t, c)
	}
	assert.Equal(t, len("hello world"), c.Writes(RoleMorse))

	code.edit("... --- ...")
	assertSettled(t, c)
	assert.Equal(t, "sos ", message.Text())

	message.edit("")
	assertSettled(t, c)
	assert.Equal(t, "", code.Text())

	assert.Equal(t, len("hello world")+1, c.Writes(RoleMorse))
	assert.Equal(t, 1, c.Writes(RoleMessage))
}

func TestClearingMorseLeavesSingleSpace(t *testing.T) {
	message, code := newMemorySlot(1), newMemorySlot(1)
	NewController(message, code, 1, nil)

	code.edit("")
	assert.Equal(t, " ", message.Text())
}

func TestContentHandlerRunsAfterEveryNotification(t *testing.T) {
	message, code := newMemorySlot(1), newMemorySlot(1)
	c := NewController(message, code, 1, nil)

	state := map[Role]bool{}
	calls := 0
	c.SetContentHandler(func(role Role, hasContent bool) {
		state[role] = hasContent
		calls++
	})
	assert.False(t, state[RoleMessage])
	assert.False(t, state[RoleMorse])
	calls = 0

	message.edit("e")
	assert.True(t, state[RoleMessage])
	assert.True(t, state[RoleMorse])
	// one report per slot for the echo and one for the edit itself
	assert.Equal(t, 4, calls)

	message.edit("")
	assert.False(t, state[RoleMessage])
	assert.False(t, state[RoleMorse])
}

func TestMismatchedEchoCountSwallowsNextEdit(t *testing.T) {
	message, code := newMemorySlot(1), newMemorySlot(1)
	c := NewController(message, code, GTKEchoesPerWrite, nil)

	message.edit("e")
	role, count, pending := c.Pending()
	require.True(t, pending)
	assert.Equal(t, RoleMorse, role)
	assert.Equal(t, 1, count)

	// the leftover suppression eats a genuine edit
	code.edit("-")
	assert.Equal(t, "e", message.Text())
	assertSettled(t, c)

	code.edit("-")
	assert.Equal(t, "t ", message.Text())
}

func TestEchoCountDefaults(t *testing.T) {
	message, code := newMemorySlot(1), newMemorySlot(1)
	c := NewController(message, code, 0, nil)

	message.edit("a")
	assertSettled(t, c)
	assert.Equal(t, ".-", code.Text())
}

func TestRole(t *testing.T) {
	assert.Equal(t, RoleMorse, RoleMessage.Other())
	assert.Equal(t, RoleMessage, RoleMorse.Other())
	assert.Equal(t, "message", RoleMessage.String())
	assert.Equal(t, "morse", RoleMorse.String())
	assert.Equal(t, "unknown", Role(7).String())
}
