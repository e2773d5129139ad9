package jobs

import (
	"os"
	"time"

	apperrors "fileremover/internal/errors"
)

// Type represents job type.
type Type string

const (
	TypeTrash  Type = "trash"
	TypeDelete Type = "delete"
)

// Kind tells which removal primitive applies to a path.
type Kind int

const (
	KindFile Kind = iota
	KindDirectory
)

// String returns a string representation of the kind
func (k Kind) String() string {
	if k == KindDirectory {
		return "directory"
	}
	return "file"
}

// KindOf resolves the kind from Lstat information. Symlinks are files:
// only the link itself is ever removed.
func KindOf(fi os.FileInfo) Kind {
	if fi.IsDir() {
		return KindDirectory
	}
	return KindFile
}

// JobFailure records a single failing path and error message.
type JobFailure struct {
	Path  string
	Error string
	Err   *apperrors.AppError // filesystem error wrapping the cause
}

// Report is the read-only outcome of one batch.
type Report struct {
	Type        Type
	Total       int
	Failures    []JobFailure
	StartedAt   time.Time
	CompletedAt time.Time
}

// OK reports whether every path succeeded.
func (r Report) OK() bool { return len(r.Failures) == 0 }

// Succeeded returns the number of paths processed without error.
func (r Report) Succeeded() int { return r.Total - len(r.Failures) }

// Elapsed returns how long the batch ran.
func (r Report) Elapsed() time.Duration {
	if r.StartedAt.IsZero() || r.CompletedAt.Before(r.StartedAt) {
		return 0
	}
	return r.CompletedAt.Sub(r.StartedAt)
}

// FailedPaths lists the failing paths in input order.
func (r Report) FailedPaths() []string {
	out := make([]string, len(r.Failures))
	for i, f := range r.Failures {
		out[i] = f.Path
	}
	return out
}
