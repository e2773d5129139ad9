// Package trash moves paths into a recoverable holding area.
//
// Two backends exist: Freedesktop uses the platform trash through the
// wastebasket library, Command delegates to a helper program such as
// "gio trash". A backend may be unavailable on a given system; callers
// must check Available before trashing anything.
package trash

import (
	"errors"
	"fmt"

	"fileremover/internal/constants"
)

// ErrUnavailable is returned by Available when the backend cannot be used.
var ErrUnavailable = errors.New("trash is not available")

// debug hook, set from main; should print only when -d enabled
var debugf func(format string, args ...interface{})

// SetDebug installs a debug logger used when -d flag is on.
func SetDebug(fn func(format string, args ...interface{})) { debugf = fn }

func dbg(format string, args ...interface{}) {
	if debugf != nil {
		debugf("trash: "+format, args...)
	}
}

// Trasher is the trash capability consumed by the batch runner.
type Trasher interface {
	// Available reports whether Trash can be called at all.
	// A non-nil result wraps ErrUnavailable.
	Available() error
	// Trash moves a single path to the trash.
	Trash(path string) error
	// Name identifies the backend in messages.
	Name() string
}

// New returns the backend selected by name.
func New(backend string, command []string) (Trasher, error) {
	switch backend {
	case "", constants.TrashBackendFreedesktop:
		return NewFreedesktop(), nil
	case constants.TrashBackendCommand:
		return NewCommand(command), nil
	default:
		return nil, fmt.Errorf("unknown trash backend %q", backend)
	}
}

// unavailable wraps the reason a backend cannot be used.
func unavailable(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrUnavailable, fmt.Sprintf(format, args...))
}
