package keymanager

import (
	"fyne.io/fyne/v2"
)

// DeleteDialogInterface defines the interface needed by DeleteDialogKeyHandler
type DeleteDialogInterface interface {
	RequestTrash()
	RequestDelete()
	Cancel()
}

// DeleteDialogKeyHandler handles keyboard events for the deletion window
type DeleteDialogKeyHandler struct {
	dialog     DeleteDialogInterface
	debugPrint func(format string, args ...interface{})
}

// NewDeleteDialogKeyHandler creates a new deletion window key handler
func NewDeleteDialogKeyHandler(d DeleteDialogInterface, debugPrint func(format string, args ...interface{})) *DeleteDialogKeyHandler {
	return &DeleteDialogKeyHandler{
		dialog:     d,
		debugPrint: debugPrint,
	}
}

// GetName returns the name of this handler
func (h *DeleteDialogKeyHandler) GetName() string {
	return "DeleteDialog"
}

// OnKeyDown handles key press events
func (h *DeleteDialogKeyHandler) OnKeyDown(ev *fyne.KeyEvent) bool {
	return false
}

// OnKeyUp handles key release events
func (h *DeleteDialogKeyHandler) OnKeyUp(ev *fyne.KeyEvent) bool {
	return false
}

// OnTypedKey handles typed key events
func (h *DeleteDialogKeyHandler) OnTypedKey(ev *fyne.KeyEvent) bool {
	switch ev.Name {
	case fyne.KeyT:
		h.debugPrint("DeleteDialog: T detected - move to trash")
		h.dialog.RequestTrash()
	case fyne.KeyD, fyne.KeyDelete:
		h.debugPrint("DeleteDialog: %s detected - delete permanently", ev.Name)
		h.dialog.RequestDelete()
	case fyne.KeyEscape, fyne.KeyC:
		h.debugPrint("DeleteDialog: %s detected - cancel", ev.Name)
		h.dialog.Cancel()
	default:
		return false
	}
	return true
}

// OnTypedRune handles text input
func (h *DeleteDialogKeyHandler) OnTypedRune(r rune) bool {
	return false
}
