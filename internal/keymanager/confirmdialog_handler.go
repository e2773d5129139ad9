package keymanager

import (
	"fyne.io/fyne/v2"
)

// ConfirmDialogInterface defines the interface needed by ConfirmDialogKeyHandler
type ConfirmDialogInterface interface {
	Confirm()
	Decline()
}

// ConfirmDialogKeyHandler handles keyboard events for the irreversible-delete
// question. Only Y confirms; Return picks the default answer, which is No.
type ConfirmDialogKeyHandler struct {
	dialog     ConfirmDialogInterface
	debugPrint func(format string, args ...interface{})
}

// NewConfirmDialogKeyHandler creates a new confirmation key handler
func NewConfirmDialogKeyHandler(d ConfirmDialogInterface, debugPrint func(format string, args ...interface{})) *ConfirmDialogKeyHandler {
	return &ConfirmDialogKeyHandler{
		dialog:     d,
		debugPrint: debugPrint,
	}
}

// GetName returns the name of this handler
func (h *ConfirmDialogKeyHandler) GetName() string {
	return "ConfirmDialog"
}

// OnKeyDown handles key press events
func (h *ConfirmDialogKeyHandler) OnKeyDown(ev *fyne.KeyEvent) bool {
	// Consume all key down events to prevent them from reaching the deletion window
	return true
}

// OnKeyUp handles key release events
func (h *ConfirmDialogKeyHandler) OnKeyUp(ev *fyne.KeyEvent) bool {
	return true
}

// OnTypedKey handles typed key events
func (h *ConfirmDialogKeyHandler) OnTypedKey(ev *fyne.KeyEvent) bool {
	switch ev.Name {
	case fyne.KeyY:
		h.debugPrint("ConfirmDialog: Y detected - confirming")
		h.dialog.Confirm()
	case fyne.KeyN, fyne.KeyEscape, fyne.KeyReturn, fyne.KeyEnter:
		h.debugPrint("ConfirmDialog: %s detected - declining", ev.Name)
		h.dialog.Decline()
	default:
		h.debugPrint("ConfirmDialog: Consuming key event: %s", ev.Name)
	}
	return true
}

// OnTypedRune consumes all text input
func (h *ConfirmDialogKeyHandler) OnTypedRune(r rune) bool {
	return true
}
