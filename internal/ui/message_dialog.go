package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"fileremover/internal/keymanager"
)

// ShowMessageDialog displays an OK dialog with a scrollable message.
// Keyboard input is held by the dialog until it closes; onClosed runs
// afterwards and may be nil. It returns immediately after showing.
func ShowMessageDialog(parent fyne.Window, km *keymanager.KeyManager, title, message string, isError bool, onClosed func()) {
	body := widget.NewLabel(message)
	body.Wrapping = fyne.TextWrapWord
	if isError {
		body.Importance = widget.DangerImportance
	}
	scroll := container.NewVScroll(body)
	scroll.SetMinSize(fyne.NewSize(380, 120))

	d := dialog.NewCustom(title, "OK", scroll, parent)

	closed := false
	km.PushHandler(keymanager.NewMessageKeyHandler(d.Hide))
	d.SetOnClosed(func() {
		if closed {
			return
		}
		closed = true
		km.PopHandler()
		if onClosed != nil {
			onClosed()
		}
	})
	d.Show()
}
