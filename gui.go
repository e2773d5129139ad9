package main

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"

	"fileremover/internal/config"
	"fileremover/internal/constants"
	"fileremover/internal/jobs"
	"fileremover/internal/keymanager"
	customtheme "fileremover/internal/theme"
	"fileremover/internal/trash"
	"fileremover/internal/ui"
)

func newApp(cfg *config.Config) fyne.App {
	a := app.NewWithID(constants.ApplicationID)
	a.Settings().SetTheme(customtheme.NewCustomTheme(cfg.Theme))
	return a
}

// newRunner wires the configured trash backend and protected patterns.
// An unusable backend still allows permanent deletion.
func newRunner(cfg *config.Config) *jobs.Runner {
	trasher, err := trash.New(cfg.Trash.Backend, cfg.Trash.Command)
	if err != nil {
		log.Printf("Error creating trash backend: %v", err)
	}
	return jobs.NewRunner(trasher, cfg.IsProtected)
}

func showDeleteWindow(w fyne.Window, cfg *config.Config, targets []string) *ui.DeleteWindow {
	size := fyne.NewSize(float32(cfg.Window.Width), float32(cfg.Window.Height))
	km := keymanager.NewKeyManager(debugPrint)
	dw := ui.NewDeleteWindow(w, targets, newRunner(cfg), size, km, debugPrint)
	dw.SetOnClosing(func(size fyne.Size) {
		saveWindowSize(config.NewManager(), cfg, size)
	})
	return dw
}

// saveWindowSize remembers the dialog size for the next launch
func saveWindowSize(manager *config.Manager, cfg *config.Config, size fyne.Size) {
	width, height := int(size.Width), int(size.Height)
	if width <= 0 || height <= 0 {
		return
	}
	if width == cfg.Window.Width && height == cfg.Window.Height {
		return
	}
	cfg.Window.Width = width
	cfg.Window.Height = height
	if err := manager.Save(cfg); err != nil {
		debugPrint("Error saving window size: %v", err)
	}
}

// runDeleteDialog blocks until the deletion dialog is closed
func runDeleteDialog(cfg *config.Config, targets []string) error {
	a := newApp(cfg)
	w := a.NewWindow(constants.ApplicationTitle)
	w.SetMaster()

	debugPrint("Opening dialog for %d target(s)", len(targets))
	showDeleteWindow(w, cfg, targets)
	w.ShowAndRun()
	return nil
}

// runFilePicker asks for a single file and then shows the deletion dialog
// for it in the same window. Cancelling quits.
func runFilePicker(cfg *config.Config) error {
	a := newApp(cfg)
	w := a.NewWindow(constants.ApplicationTitle)
	w.SetMaster()
	w.SetContent(container.NewStack())
	w.Resize(fyne.NewSize(constants.PickerWindowWidth, constants.PickerWindowHeight))
	w.Show()

	ui.ShowFilePicker(w, debugPrint, func(path string) {
		targets := jobs.FilterExisting([]string{path})
		if len(targets) == 0 {
			debugPrint("Picked path %s vanished", path)
			w.Close()
			return
		}
		showDeleteWindow(w, cfg, targets)
	}, w.Close, func(err error) {
		ui.ShowMessageDialog(w, keymanager.NewKeyManager(debugPrint), "Error", err.Error(), true, w.Close)
	})

	a.Run()
	return nil
}
