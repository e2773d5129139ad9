// Package installer writes the Dolphin service menu that adds a
// "Delete (with choice)" entry to the file manager's context menu.
package installer

import (
	"os"
	"path/filepath"

	"fileremover/internal/constants"
	apperrors "fileremover/internal/errors"
)

// ServiceMenu is the descriptor content. %F passes every selected file.
const ServiceMenu = `[Desktop Entry]
Type=Service
X-KDE-ServiceTypes=KonqPopupMenu/Plugin
MimeType=all/all;
Actions=delete_choice;

[Desktop Action delete_choice]
Name=Delete (with choice)
Icon=edit-delete
Exec=` + constants.ApplicationName + ` %F
`

// Installer places the service menu in a service-menu directory.
type Installer struct {
	dir string
}

// New returns an installer targeting the user's KDE service-menu
// directory under $XDG_DATA_HOME (default ~/.local/share).
func New() (*Installer, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, apperrors.NewInstallError("locate", "", "cannot determine home directory", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return NewAt(filepath.Join(dataHome, filepath.FromSlash(constants.ServiceMenuSubdir))), nil
}

// NewAt returns an installer targeting dir.
func NewAt(dir string) *Installer {
	return &Installer{dir: dir}
}

// Path returns where the descriptor is written.
func (i *Installer) Path() string {
	return filepath.Join(i.dir, constants.ServiceMenuFileName)
}

// Install writes the descriptor, overwriting any previous one, and marks
// it executable. It returns the descriptor path.
func (i *Installer) Install() (string, error) {
	if err := os.MkdirAll(i.dir, 0755); err != nil {
		return "", apperrors.NewInstallError("create_directory", i.dir, "cannot create service menu directory", err)
	}

	path := i.Path()
	if err := os.WriteFile(path, []byte(ServiceMenu), constants.ServiceMenuFileMode); err != nil {
		return "", apperrors.NewInstallError("write_descriptor", path, "cannot write service menu", err)
	}
	// WriteFile keeps the mode of an existing file
	if err := os.Chmod(path, constants.ServiceMenuFileMode); err != nil {
		return "", apperrors.NewInstallError("chmod_descriptor", path, "cannot mark service menu executable", err)
	}
	return path, nil
}
