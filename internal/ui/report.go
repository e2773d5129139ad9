package ui

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"fileremover/internal/constants"
	apperrors "fileremover/internal/errors"
	"fileremover/internal/jobs"
)

// SummaryText is the question shown above the three actions.
func SummaryText(targets []string) string {
	if len(targets) == 1 {
		return fmt.Sprintf("What do you want to do with:\n\n%s", filepath.Base(targets[0]))
	}
	return fmt.Sprintf("What do you want to do with these %d items:\n\n%s", len(targets), listNames(targets))
}

// FormatReport turns a batch report into a dialog title and message.
// Partial success is an error listing only the failed paths.
func FormatReport(r jobs.Report, targets []string) (title, message string, isError bool) {
	if r.OK() {
		return "Success", fmt.Sprintf("%s:\n\n%s", successLine(r.Type, r.Total), listNames(targets)), false
	}

	var b strings.Builder
	b.WriteString(failureLine(r.Type, len(r.Failures), r.Total) + ":\n")
	for _, f := range r.Failures {
		fmt.Fprintf(&b, "\n%s\n    %s", f.Path, f.Error)
	}
	return "Error", b.String(), true
}

func successLine(t jobs.Type, n int) string {
	if t == jobs.TypeTrash {
		return fmt.Sprintf("Moved %s to the trash", countItems(n))
	}
	return fmt.Sprintf("Permanently deleted %s", countItems(n))
}

func failureLine(t jobs.Type, failed, total int) string {
	if t == jobs.TypeTrash {
		return fmt.Sprintf("Could not move %d of %s to the trash", failed, countItems(total))
	}
	return fmt.Sprintf("Could not delete %d of %s", failed, countItems(total))
}

func countItems(n int) string {
	if n == 1 {
		return "1 item"
	}
	return fmt.Sprintf("%d items", n)
}

// listNames shows base names, eliding after MaxListedTargets.
func listNames(targets []string) string {
	shown := targets
	overflow := 0
	if len(targets) > constants.MaxListedTargets {
		shown = targets[:constants.MaxListedTargets]
		overflow = len(targets) - constants.MaxListedTargets
	}
	names := make([]string, 0, len(shown)+1)
	for _, t := range shown {
		names = append(names, filepath.Base(t))
	}
	if overflow > 0 {
		names = append(names, fmt.Sprintf("... and %d more", overflow))
	}
	return strings.Join(names, "\n")
}

func trashUnavailableMessage(err error) string {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return "The trash cannot be used, nothing was changed.\n\n" + appErr.Message
	}
	return "The trash cannot be used, nothing was changed.\n\n" + err.Error()
}
