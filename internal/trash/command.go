package trash

import (
	"fmt"
	"os/exec"
	"strings"

	"fileremover/internal/constants"
)

// Command delegates trashing to an external helper. The target path is
// appended to argv, e.g. ["gio", "trash"] runs "gio trash <path>".
type Command struct {
	argv     []string
	lookPath func(file string) (string, error)
	run      func(name string, args ...string) ([]byte, error)
}

// NewCommand creates a command backend for argv.
func NewCommand(argv []string) *Command {
	return &Command{
		argv:     append([]string(nil), argv...),
		lookPath: exec.LookPath,
		run: func(name string, args ...string) ([]byte, error) {
			return exec.Command(name, args...).CombinedOutput()
		},
	}
}

// Name implements Trasher.
func (c *Command) Name() string { return constants.TrashBackendCommand }

// Available checks the helper can be found on PATH.
func (c *Command) Available() error {
	if len(c.argv) == 0 {
		return unavailable("no trash command configured")
	}
	if _, err := c.lookPath(c.argv[0]); err != nil {
		return unavailable("%s not found: %v", c.argv[0], err)
	}
	return nil
}

// Trash runs the helper for one path.
func (c *Command) Trash(path string) error {
	if len(c.argv) == 0 {
		return unavailable("no trash command configured")
	}
	args := append(append([]string(nil), c.argv[1:]...), path)
	dbg("exec %s %v", c.argv[0], args)
	out, err := c.run(c.argv[0], args...)
	if err != nil {
		if msg := strings.TrimSpace(string(out)); msg != "" {
			return fmt.Errorf("%s: %s", err, msg)
		}
		return err
	}
	return nil
}
