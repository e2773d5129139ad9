package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fyne.io/fyne/v2"

	"fileremover/internal/config"
	"fileremover/internal/console"
	"fileremover/internal/constants"
)

type launchRecorder struct {
	dialogCalls int
	pickerCalls int
	targets     []string
	cfg         *config.Config
}

// stubGUI replaces the Fyne entry points and isolates config/data dirs
func stubGUI(t *testing.T) *launchRecorder {
	t.Helper()
	rec := &launchRecorder{}

	origDialog, origPicker := runDialog, runPicker
	runDialog = func(cfg *config.Config, targets []string) error {
		rec.dialogCalls++
		rec.cfg = cfg
		rec.targets = targets
		return nil
	}
	runPicker = func(cfg *config.Config) error {
		rec.pickerCalls++
		rec.cfg = cfg
		return nil
	}

	origOut, origErr := console.Output, console.ErrOutput
	console.Output = &bytes.Buffer{}
	console.ErrOutput = &bytes.Buffer{}

	t.Cleanup(func() {
		runDialog, runPicker = origDialog, origPicker
		console.Output, console.ErrOutput = origOut, origErr
		debugMode = false
	})

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	return rec
}

func execute(args ...string) error {
	cmd := newRootCommand()
	cmd.SetArgs(args)
	return cmd.Execute()
}

func TestOnlyMissingPathsShowNoDialog(t *testing.T) {
	rec := stubGUI(t)
	dir := t.TempDir()

	err := execute(filepath.Join(dir, "gone.txt"), filepath.Join(dir, "also-gone"))
	if err != nil {
		t.Fatalf("Expected success, got %v", err)
	}
	if rec.dialogCalls != 0 || rec.pickerCalls != 0 {
		t.Errorf("Expected no UI, got dialog=%d picker=%d", rec.dialogCalls, rec.pickerCalls)
	}
}

func TestExistingPathsOpenDialog(t *testing.T) {
	rec := stubGUI(t)
	dir := t.TempDir()
	kept := filepath.Join(dir, "kept.txt")
	if err := os.WriteFile(kept, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	sub := filepath.Join(dir, "sub")
	if err := os.Mkdir(sub, 0755); err != nil {
		t.Fatal(err)
	}

	if err := execute(kept, filepath.Join(dir, "missing"), sub); err != nil {
		t.Fatalf("Expected success, got %v", err)
	}
	if rec.dialogCalls != 1 {
		t.Fatalf("Expected one dialog, got %d", rec.dialogCalls)
	}
	if len(rec.targets) != 2 || rec.targets[0] != kept || rec.targets[1] != sub {
		t.Errorf("Expected [%s %s], got %v", kept, sub, rec.targets)
	}
	if rec.cfg == nil || rec.cfg.Trash.Backend != constants.TrashBackendFreedesktop {
		t.Errorf("Expected default config, got %+v", rec.cfg)
	}
}

func TestNoArgumentsOpensPicker(t *testing.T) {
	rec := stubGUI(t)

	if err := execute(); err != nil {
		t.Fatalf("Expected success, got %v", err)
	}
	if rec.pickerCalls != 1 || rec.dialogCalls != 0 {
		t.Errorf("Expected picker only, got picker=%d dialog=%d", rec.pickerCalls, rec.dialogCalls)
	}
}

func TestDebugFlag(t *testing.T) {
	stubGUI(t)

	if err := execute("-d", filepath.Join(t.TempDir(), "missing")); err != nil {
		t.Fatalf("Expected success, got %v", err)
	}
	if !debugMode {
		t.Error("Expected -d to enable debug mode")
	}
}

func TestInvalidConfigFails(t *testing.T) {
	rec := stubGUI(t)
	writeConfig(t, "{not json")

	file := filepath.Join(t.TempDir(), "f.txt")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := execute(file); err == nil {
		t.Error("Expected error for unparsable config")
	}
	if rec.dialogCalls != 0 {
		t.Error("Expected no dialog when config fails to load")
	}
}

// writeConfig places content at the config path under XDG_CONFIG_HOME
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	configDir := filepath.Join(configHome, constants.ApplicationName)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(configDir, "config.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestMissingPathsIgnoreBrokenConfig(t *testing.T) {
	rec := stubGUI(t)
	writeConfig(t, "{not json")

	if err := execute(filepath.Join(t.TempDir(), "gone.txt")); err != nil {
		t.Errorf("Expected exit 0 for only missing paths despite broken config, got %v", err)
	}
	if rec.dialogCalls+rec.pickerCalls != 0 {
		t.Error("Expected no UI")
	}
}

func TestSaveWindowSize(t *testing.T) {
	stubGUI(t)
	path := writeConfig(t, `{"theme": {"fontSize": 16}}`)
	manager := config.NewManagerWithPath(path)
	cfg, err := manager.Load()
	if err != nil {
		t.Fatal(err)
	}

	saveWindowSize(manager, cfg, fyne.NewSize(512.4, 300))

	reloaded, err := manager.Load()
	if err != nil {
		t.Fatal(err)
	}
	if reloaded.Window.Width != 512 || reloaded.Window.Height != 300 {
		t.Errorf("Expected saved size 512x300, got %dx%d", reloaded.Window.Width, reloaded.Window.Height)
	}
	if reloaded.Theme.FontSize != 16 || !reloaded.Theme.Dark {
		t.Errorf("Expected other settings preserved, got %+v", reloaded.Theme)
	}
}

func TestSaveWindowSizeIgnoresEmptySize(t *testing.T) {
	stubGUI(t)
	path := filepath.Join(t.TempDir(), "config.json")
	manager := config.NewManagerWithPath(path)
	cfg, err := manager.Load()
	if err != nil {
		t.Fatal(err)
	}

	saveWindowSize(manager, cfg, fyne.NewSize(0, 0))
	saveWindowSize(manager, cfg, fyne.NewSize(float32(cfg.Window.Width), float32(cfg.Window.Height)))

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("Expected no config written for unchanged or empty size, got %v", err)
	}
}

func TestInstallService(t *testing.T) {
	rec := stubGUI(t)
	dataHome := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)

	if err := execute("--install-service"); err != nil {
		t.Fatalf("Expected install to succeed, got %v", err)
	}

	path := filepath.Join(dataHome, filepath.FromSlash(constants.ServiceMenuSubdir), constants.ServiceMenuFileName)
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Expected service menu at %s: %v", path, err)
	}
	if info.Mode().Perm() != constants.ServiceMenuFileMode {
		t.Errorf("Expected mode %o, got %o", constants.ServiceMenuFileMode, info.Mode().Perm())
	}

	out := console.Output.(*bytes.Buffer).String()
	if !strings.Contains(out, path) || !strings.Contains(out, "Restart Dolphin") {
		t.Errorf("Expected confirmation and hint, got %q", out)
	}
	if rec.dialogCalls+rec.pickerCalls != 0 {
		t.Error("Installer must not open any UI")
	}
}

func TestInstallServiceFailure(t *testing.T) {
	stubGUI(t)
	// A regular file where the data directory should be
	blocker := filepath.Join(t.TempDir(), "data")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("XDG_DATA_HOME", blocker)

	if err := execute("--install-service"); err == nil {
		t.Error("Expected install to fail")
	}
}
