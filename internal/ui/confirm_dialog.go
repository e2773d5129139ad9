package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"fileremover/internal/keymanager"
)

// ConfirmDialog asks a yes/no question whose default answer is No.
type ConfirmDialog struct {
	keyManager *keymanager.KeyManager
	debugPrint func(format string, args ...interface{})
	dialog     *dialog.ConfirmDialog
	callback   func(bool)
	parent     fyne.Window
	closed     bool // Prevent double-close/pop
	sink       *KeySink
}

// NewConfirmDialog creates a new confirmation dialog
func NewConfirmDialog(keyManager *keymanager.KeyManager, debugPrint func(format string, args ...interface{})) *ConfirmDialog {
	return &ConfirmDialog{
		keyManager: keyManager,
		debugPrint: debugPrint,
	}
}

// ShowDialog shows the question; callback receives the answer exactly once
func (cd *ConfirmDialog) ShowDialog(parent fyne.Window, title, question string, callback func(bool)) {
	cd.callback = callback
	cd.parent = parent

	cd.keyManager.PushHandler(keymanager.NewConfirmDialogKeyHandler(cd, cd.debugPrint))

	message := widget.NewLabel(question)
	message.Alignment = fyne.TextAlignCenter
	message.Wrapping = fyne.TextWrapWord

	cd.sink = NewKeySink(message, cd.keyManager)
	cd.sink.Resize(fyne.NewSize(400, 100))

	cd.dialog = dialog.NewCustomConfirm(title, "Yes", "No", cd.sink, cd.finish, parent)
	cd.dialog.SetConfirmImportance(widget.DangerImportance)
	cd.dialog.Show()

	// Ensure focus goes to our KeySink so keyboard events are captured
	if cd.parent != nil && cd.sink != nil {
		cd.parent.Canvas().Focus(cd.sink)
	}
}

// Confirm answers Yes
func (cd *ConfirmDialog) Confirm() {
	cd.debugPrint("ConfirmDialog: confirmed via keyboard")
	cd.hideWith(true)
}

// Decline answers No
func (cd *ConfirmDialog) Decline() {
	cd.debugPrint("ConfirmDialog: declined via keyboard")
	cd.hideWith(false)
}

func (cd *ConfirmDialog) hideWith(answer bool) {
	if cd.closed {
		return
	}
	// Hide fires the dialog callback with false; finish ignores it once closed
	cd.finish(answer)
	if cd.dialog != nil {
		cd.dialog.Hide()
	}
}

func (cd *ConfirmDialog) finish(answer bool) {
	if cd.closed {
		return
	}
	cd.closed = true
	cd.keyManager.PopHandler()
	if cd.callback != nil {
		cd.callback(answer)
	}
}
