package ui

import (
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"

	apperrors "fileremover/internal/errors"
)

// ShowFilePicker lets the user choose a single file, starting in the home
// directory. onCancel runs when the picker is dismissed, onError when the
// chosen file cannot be opened.
func ShowFilePicker(parent fyne.Window, debugPrint func(format string, args ...interface{}), onPicked func(path string), onCancel func(), onError func(err error)) {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		path, err := pickedPath(reader, err)
		switch {
		case err != nil:
			debugPrint("FilePicker: %v", err)
			onError(err)
		case path == "":
			debugPrint("FilePicker: cancelled")
			onCancel()
		default:
			debugPrint("FilePicker: picked %s", path)
			onPicked(path)
		}
	}, parent)

	if home, err := os.UserHomeDir(); err == nil {
		if lister, err := storage.ListerForURI(storage.NewFileURI(home)); err == nil {
			d.SetLocation(lister)
		}
	}
	d.Resize(parent.Canvas().Size())
	d.Show()
}

// pickedPath interprets a file dialog result. An empty path with a nil
// error means the dialog was cancelled.
func pickedPath(reader fyne.URIReadCloser, err error) (string, error) {
	if err != nil {
		return "", apperrors.NewUIError("pick_file", "cannot open the chosen file", err)
	}
	if reader == nil {
		return "", nil
	}
	defer reader.Close()
	return reader.URI().Path(), nil
}
