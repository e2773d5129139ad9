package trash

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Bios-Marcel/wastebasket/v2"

	"fileremover/internal/constants"
)

// Freedesktop trashes through the platform trash following the XDG trash
// specification: the home trash under $XDG_DATA_HOME/Trash, or the
// $topdir/.Trash-$uid directory of the mount a path lives on.
type Freedesktop struct {
	dir  string
	move func(paths ...string) error
}

// NewFreedesktop locates the home trash. The result is unusable (Available
// fails) when neither XDG_DATA_HOME nor the home directory is known.
func NewFreedesktop() *Freedesktop {
	return NewFreedesktopAt(homeTrashDir())
}

// NewFreedesktopAt probes dir as the home trash root.
func NewFreedesktopAt(dir string) *Freedesktop {
	return &Freedesktop{dir: dir, move: wastebasket.Trash}
}

func homeTrashDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil || home == "" {
			return ""
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "Trash")
}

// Name implements Trasher.
func (f *Freedesktop) Name() string { return constants.TrashBackendFreedesktop }

// Dir returns the home trash root.
func (f *Freedesktop) Dir() string { return f.dir }

// Available ensures the home trash directories exist.
func (f *Freedesktop) Available() error {
	if f.dir == "" {
		return unavailable("cannot determine the user data directory")
	}
	for _, d := range []string{filepath.Join(f.dir, "files"), filepath.Join(f.dir, "info")} {
		if err := os.MkdirAll(d, 0700); err != nil {
			return unavailable("cannot create %s: %v", d, err)
		}
	}
	return nil
}

// Trash moves a single existing path to the trash.
func (f *Freedesktop) Trash(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if _, err := os.Lstat(abs); err != nil {
		return err
	}
	if f.dir != "" && strings.HasPrefix(abs+string(filepath.Separator), f.dir+string(filepath.Separator)) {
		return fmt.Errorf("%s is inside the trash", abs)
	}

	dbg("trash %s", abs)
	return f.move(abs)
}
