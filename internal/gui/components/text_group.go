package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// TextGroup is a titled multi-line entry with a copy button in its header
type TextGroup struct {
	container  *fyne.Container
	titleLabel *widget.Label
	entry      *widget.Entry
	copyButton *widget.Button

	copyHandler func()
}

func NewTextGroup(title, placeholder string) *TextGroup {
	group := &TextGroup{}
	group.setupControls(title, placeholder)
	return group
}

func (tg *TextGroup) setupControls(title, placeholder string) {
	tg.titleLabel = widget.NewLabelWithStyle(title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	tg.entry = widget.NewMultiLineEntry()
	tg.entry.Wrapping = fyne.TextWrapWord
	tg.entry.SetPlaceHolder(placeholder)

	tg.copyButton = widget.NewButtonWithIcon("", theme.ContentCopyIcon(), tg.onCopy)
	tg.copyButton.Disable()

	header := container.NewBorder(nil, nil, tg.titleLabel, tg.copyButton)

	tg.container = container.NewBorder(header, nil, nil, nil, tg.entry)
}

func (tg *TextGroup) GetContainer() *fyne.Container {
	return tg.container
}

func (tg *TextGroup) Entry() *widget.Entry {
	return tg.entry
}

func (tg *TextGroup) CopyButton() *widget.Button {
	return tg.copyButton
}

func (tg *TextGroup) SetCopyHandler(handler func()) {
	tg.copyHandler = handler
}

func (tg *TextGroup) SetCopyEnabled(enabled bool) {
	if enabled {
		tg.copyButton.Enable()
	} else {
		tg.copyButton.Disable()
	}
}

func (tg *TextGroup) onCopy() {
	if tg.copyHandler != nil {
		tg.copyHandler()
	}
}
