package keymanager

import (
	"fyne.io/fyne/v2"
)

// MessageKeyHandler blocks input to the deletion window while a result or
// error message is shown. Return and Escape dismiss the message.
type MessageKeyHandler struct {
	dismiss func()
}

func NewMessageKeyHandler(dismiss func()) *MessageKeyHandler {
	return &MessageKeyHandler{dismiss: dismiss}
}

func (m *MessageKeyHandler) GetName() string { return "Message" }

func (m *MessageKeyHandler) OnKeyDown(_ *fyne.KeyEvent) bool { return true }
func (m *MessageKeyHandler) OnKeyUp(_ *fyne.KeyEvent) bool   { return true }
func (m *MessageKeyHandler) OnTypedRune(_ rune) bool         { return true }

func (m *MessageKeyHandler) OnTypedKey(ev *fyne.KeyEvent) bool {
	switch ev.Name {
	case fyne.KeyReturn, fyne.KeyEnter, fyne.KeyEscape:
		if m.dismiss != nil {
			m.dismiss()
		}
	}
	return true
}
