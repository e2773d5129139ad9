package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"fileremover/internal/constants"
	"fileremover/internal/keymanager"
)

// DeleteWindow renders the deletion dialog inside a Fyne window and acts
// as the controller's Presenter.
type DeleteWindow struct {
	window     fyne.Window
	controller *DeleteController
	keyManager *keymanager.KeyManager
	debugPrint func(format string, args ...interface{})
	sink       *KeySink
	size       fyne.Size
	onClosing  func(size fyne.Size)
}

// NewDeleteWindow fills w with the deletion dialog for targets.
func NewDeleteWindow(w fyne.Window, targets []string, runner BatchRunner, size fyne.Size, km *keymanager.KeyManager, debugPrint func(format string, args ...interface{})) *DeleteWindow {
	dw := &DeleteWindow{
		window:     w,
		keyManager: km,
		debugPrint: debugPrint,
		size:       size,
	}
	dw.controller = NewDeleteController(targets, runner, dw, debugPrint)
	km.PushHandler(keymanager.NewDeleteDialogKeyHandler(dw.controller, debugPrint))
	dw.setupUI()
	return dw
}

// Controller exposes the state machine behind the window.
func (dw *DeleteWindow) Controller() *DeleteController { return dw.controller }

// SetOnClosing registers fn to receive the window size right before the
// window closes.
func (dw *DeleteWindow) SetOnClosing(fn func(size fyne.Size)) { dw.onClosing = fn }

func (dw *DeleteWindow) closeWindow() {
	if dw.onClosing != nil {
		dw.onClosing(dw.window.Canvas().Size())
	}
	dw.window.Close()
}

func (dw *DeleteWindow) setupUI() {
	targets := dw.controller.Targets()

	summary := widget.NewLabel(SummaryText(targets))
	summary.Wrapping = fyne.TextWrapWord
	summary.Alignment = fyne.TextAlignCenter

	trashButton := widget.NewButtonWithIcon("Move to trash", theme.DeleteIcon(), dw.controller.RequestTrash)

	deleteButton := widget.NewButtonWithIcon("Delete permanently", theme.WarningIcon(), dw.controller.RequestDelete)
	deleteButton.Importance = widget.DangerImportance

	cancelButton := widget.NewButtonWithIcon("Cancel", theme.CancelIcon(), dw.controller.Cancel)

	content := container.NewVBox(
		summary,
		withMinHeight(trashButton, constants.ActionButtonHeight),
		withMinHeight(deleteButton, constants.ActionButtonHeight),
		withMinHeight(cancelButton, constants.CancelButtonHeight),
	)

	dw.sink = NewKeySink(container.NewPadded(content), dw.keyManager)
	dw.window.SetTitle(constants.ApplicationTitle)
	dw.window.SetContent(dw.sink)
	dw.window.Resize(dw.size)
	dw.window.CenterOnScreen()
	dw.focus()

	// Closing the window is a cancel while nothing has run yet
	dw.window.SetCloseIntercept(func() {
		dw.debugPrint("DeleteWindow: close intercepted in state %s", dw.controller.State())
		switch dw.controller.State() {
		case StateOpen:
			dw.controller.Cancel()
		case StateAwaitingConfirmation:
			// answer the pending question first
		default:
			dw.closeWindow()
		}
	})

	// Keys typed while nothing holds focus still reach the KeyManager
	if dc, ok := dw.window.Canvas().(desktop.Canvas); ok {
		dc.SetOnKeyDown(dw.keyManager.HandleKeyDown)
		dc.SetOnKeyUp(dw.keyManager.HandleKeyUp)
	}
	dw.window.Canvas().SetOnTypedKey(dw.keyManager.HandleTypedKey)
	dw.window.Canvas().SetOnTypedRune(dw.keyManager.HandleTypedRune)
}

func (dw *DeleteWindow) focus() {
	if dw.sink != nil {
		dw.window.Canvas().Focus(dw.sink)
	}
}

// AskConfirmation implements Presenter.
func (dw *DeleteWindow) AskConfirmation(question string, answer func(confirmed bool)) {
	NewConfirmDialog(dw.keyManager, dw.debugPrint).ShowDialog(dw.window, "Confirmation", question, func(confirmed bool) {
		answer(confirmed)
		dw.focus()
	})
}

// ShowMessage implements Presenter.
func (dw *DeleteWindow) ShowMessage(title, message string, isError bool, then func()) {
	ShowMessageDialog(dw.window, dw.keyManager, title, message, isError, func() {
		if then != nil {
			then()
			return
		}
		dw.focus()
	})
}

// Close implements Presenter.
func (dw *DeleteWindow) Close() {
	dw.debugPrint("DeleteWindow: closing with result %d", dw.controller.Result())
	dw.closeWindow()
}

// withMinHeight stacks obj over an invisible spacer so it is at least h tall.
func withMinHeight(obj fyne.CanvasObject, h float32) fyne.CanvasObject {
	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(0, h))
	return container.NewStack(spacer, obj)
}
