package jobs

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	apperrors "fileremover/internal/errors"
	"fileremover/internal/trash"
)

// debug hook, set from main; should print only when -d enabled
var debugf func(format string, args ...interface{})

// SetDebug installs a debug logger used when -d flag is on.
func SetDebug(fn func(format string, args ...interface{})) { debugf = fn }

func dbg(format string, args ...interface{}) {
	if debugf != nil {
		debugf("jobs: "+format, args...)
	}
}

// ErrProtected is recorded for targets matching a protected pattern.
var ErrProtected = errors.New("protected path, refusing to remove")

// Runner processes a batch of targets serially on the caller's goroutine.
// A failing path never stops the batch.
type Runner struct {
	trasher     trash.Trasher
	isProtected func(path string) bool

	// removal primitives, replaceable in tests
	lstat     func(path string) (os.FileInfo, error)
	removeAll func(path string) error
	remove    func(path string) error
}

// NewRunner creates a runner. isProtected may be nil.
func NewRunner(trasher trash.Trasher, isProtected func(path string) bool) *Runner {
	if isProtected == nil {
		isProtected = func(string) bool { return false }
	}
	return &Runner{
		trasher:     trasher,
		isProtected: isProtected,
		lstat:       os.Lstat,
		removeAll:   os.RemoveAll,
		remove:      os.Remove,
	}
}

// Trash moves every target to the trash. When the trash backend is
// unavailable it returns an error and touches nothing.
func (r *Runner) Trash(targets []string) (Report, error) {
	if r.trasher == nil {
		return Report{}, apperrors.NewTrashError("probe", "no trash backend configured", trash.ErrUnavailable)
	}
	if err := r.trasher.Available(); err != nil {
		dbg("trash backend %s unavailable: %v", r.trasher.Name(), err)
		return Report{}, apperrors.NewTrashError("probe", err.Error(), err)
	}
	return r.run(TypeTrash, targets, func(path string) error {
		return r.trasher.Trash(path)
	}), nil
}

// Delete removes every target permanently: directories recursively,
// everything else as a single entry.
func (r *Runner) Delete(targets []string) Report {
	return r.run(TypeDelete, targets, r.removePath)
}

func (r *Runner) removePath(path string) error {
	fi, err := r.lstat(path)
	if err != nil {
		return err
	}
	switch KindOf(fi) {
	case KindDirectory:
		dbg("remove tree %s", path)
		return r.removeAll(path)
	default:
		dbg("remove %s", path)
		return r.remove(path)
	}
}

func (r *Runner) run(t Type, targets []string, op func(path string) error) Report {
	report := Report{Type: t, Total: len(targets), StartedAt: time.Now()}
	var failures []JobFailure

	dbg("run type=%s n=%d", t, len(targets))
	for _, path := range targets {
		var err error
		if r.isProtected(path) {
			err = ErrProtected
		} else {
			err = op(path)
		}
		if err != nil {
			failure := apperrors.NewFileSystemError(string(t), path, describe(path, err), err)
			dbg("%v", failure)
			failures = append(failures, JobFailure{Path: path, Error: failure.Message, Err: failure})
			continue
		}
		dbg("%s done for %s", t, path)
	}

	report.Failures = failures
	report.CompletedAt = time.Now()
	dbg("run type=%s finished failures=%d in %s", t, len(failures), report.Elapsed())
	return report
}

// describe strips the path from *PathError/*LinkError messages since the
// report already shows it next to the message.
func describe(path string, err error) string {
	var pe *os.PathError
	if errors.As(err, &pe) && pe.Path == path {
		return pe.Op + ": " + pe.Err.Error()
	}
	return err.Error()
}

// FilterExisting makes each argument absolute and silently drops the ones
// that do not exist. Order and duplicates are preserved.
func FilterExisting(args []string) []string {
	out := make([]string, 0, len(args))
	for _, arg := range args {
		if arg == "" {
			continue
		}
		path := arg
		if abs, err := filepath.Abs(arg); err == nil {
			path = abs
		}
		if _, err := os.Lstat(path); err != nil {
			dbg("dropping missing target %s: %v", arg, err)
			continue
		}
		out = append(out, path)
	}
	return out
}
