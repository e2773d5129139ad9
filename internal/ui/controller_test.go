package ui

import (
	"errors"
	"strings"
	"testing"

	apperrors "fileremover/internal/errors"
	"fileremover/internal/jobs"
	"fileremover/internal/trash"
)

func dummyDebug(format string, args ...interface{}) {}

// fakeRunner records calls and returns canned results
type fakeRunner struct {
	trashErr    error
	failures    []jobs.JobFailure
	trashCalls  int
	deleteCalls int
}

func (f *fakeRunner) Trash(targets []string) (jobs.Report, error) {
	f.trashCalls++
	if f.trashErr != nil {
		return jobs.Report{}, f.trashErr
	}
	return jobs.Report{Type: jobs.TypeTrash, Total: len(targets), Failures: f.failures}, nil
}

func (f *fakeRunner) Delete(targets []string) jobs.Report {
	f.deleteCalls++
	return jobs.Report{Type: jobs.TypeDelete, Total: len(targets), Failures: f.failures}
}

type shownMessage struct {
	title   string
	message string
	isError bool
}

// fakePresenter answers confirmations with a preset answer and runs
// message callbacks immediately
type fakePresenter struct {
	answer    bool
	deferAsk  bool
	pending   func(bool)
	questions []string
	messages  []shownMessage
	closed    int
}

func (p *fakePresenter) AskConfirmation(question string, answer func(bool)) {
	p.questions = append(p.questions, question)
	if p.deferAsk {
		p.pending = answer
		return
	}
	answer(p.answer)
}

func (p *fakePresenter) ShowMessage(title, message string, isError bool, then func()) {
	p.messages = append(p.messages, shownMessage{title, message, isError})
	if then != nil {
		then()
	}
}

func (p *fakePresenter) Close() { p.closed++ }

var targets = []string{"/home/user/a.txt", "/home/user/photos"}

func TestTrashSuccessClosesAccepted(t *testing.T) {
	runner := &fakeRunner{}
	p := &fakePresenter{}
	c := NewDeleteController(targets, runner, p, dummyDebug)

	c.RequestTrash()

	if runner.trashCalls != 1 {
		t.Errorf("Expected one trash batch, got %d", runner.trashCalls)
	}
	if c.State() != StateClosed || c.Result() != ResultAccepted {
		t.Errorf("Expected closed/accepted, got %s/%d", c.State(), c.Result())
	}
	if len(p.messages) != 1 || p.messages[0].isError || p.messages[0].title != "Success" {
		t.Errorf("Expected one success message, got %+v", p.messages)
	}
	if p.closed != 1 {
		t.Errorf("Expected window closed once, got %d", p.closed)
	}
	if report, ok := c.LastReport(); !ok || !report.OK() {
		t.Errorf("Expected clean last report, got %+v", report)
	}
}

func TestTrashPartialFailureStillCloses(t *testing.T) {
	runner := &fakeRunner{failures: []jobs.JobFailure{{Path: targets[1], Error: "permission denied"}}}
	p := &fakePresenter{}
	c := NewDeleteController(targets, runner, p, dummyDebug)

	c.RequestTrash()

	if c.Result() != ResultAccepted || p.closed != 1 {
		t.Errorf("Expected accepted close despite failures, result=%d closed=%d", c.Result(), p.closed)
	}
	msg := p.messages[0]
	if !msg.isError || !strings.Contains(msg.message, targets[1]) || strings.Contains(msg.message, targets[0]) {
		t.Errorf("Expected itemised failure for %s only, got %q", targets[1], msg.message)
	}
}

func TestTrashUnavailableKeepsDialogOpen(t *testing.T) {
	unavailable := apperrors.NewTrashError("probe", "gio not found", trash.ErrUnavailable)
	runner := &fakeRunner{trashErr: unavailable}
	p := &fakePresenter{}
	c := NewDeleteController(targets, runner, p, dummyDebug)

	c.RequestTrash()

	if c.State() != StateOpen || c.Result() != ResultNone {
		t.Errorf("Expected dialog to stay open, got %s/%d", c.State(), c.Result())
	}
	if len(p.messages) != 1 || !p.messages[0].isError {
		t.Fatalf("Expected exactly one diagnostic, got %+v", p.messages)
	}
	for _, target := range targets {
		if strings.Contains(p.messages[0].message, target) {
			t.Errorf("Diagnostic must not list paths, got %q", p.messages[0].message)
		}
	}
	if !strings.Contains(p.messages[0].message, "gio not found") {
		t.Errorf("Expected reason in diagnostic, got %q", p.messages[0].message)
	}
	if p.closed != 0 {
		t.Error("Expected window to remain open")
	}
	if _, ok := c.LastReport(); ok {
		t.Error("Expected no report when trash is unavailable")
	}
}

func TestDeleteConfirmed(t *testing.T) {
	runner := &fakeRunner{}
	p := &fakePresenter{answer: true}
	c := NewDeleteController(targets, runner, p, dummyDebug)

	c.RequestDelete()

	if len(p.questions) != 1 || p.questions[0] != IrreversibleQuestion {
		t.Errorf("Expected irreversible question, got %v", p.questions)
	}
	if runner.deleteCalls != 1 {
		t.Errorf("Expected one delete batch, got %d", runner.deleteCalls)
	}
	if c.State() != StateClosed || c.Result() != ResultAccepted || p.closed != 1 {
		t.Errorf("Expected closed/accepted, got %s/%d closed=%d", c.State(), c.Result(), p.closed)
	}
}

func TestDeleteDeclinedStaysOpen(t *testing.T) {
	runner := &fakeRunner{}
	p := &fakePresenter{answer: false}
	c := NewDeleteController(targets, runner, p, dummyDebug)

	c.RequestDelete()

	if runner.deleteCalls != 0 {
		t.Errorf("Expected no delete after declining, got %d", runner.deleteCalls)
	}
	if c.State() != StateOpen || p.closed != 0 || len(p.messages) != 0 {
		t.Errorf("Expected open dialog with no messages, state=%s closed=%d messages=%v", c.State(), p.closed, p.messages)
	}

	// The dialog is usable again afterwards
	c.RequestTrash()
	if runner.trashCalls != 1 || c.State() != StateClosed {
		t.Errorf("Expected trash to work after declining, calls=%d state=%s", runner.trashCalls, c.State())
	}
}

func TestActionsIgnoredWhileAwaitingConfirmation(t *testing.T) {
	runner := &fakeRunner{}
	p := &fakePresenter{deferAsk: true}
	c := NewDeleteController(targets, runner, p, dummyDebug)

	c.RequestDelete()
	if c.State() != StateAwaitingConfirmation {
		t.Fatalf("Expected awaiting-confirmation, got %s", c.State())
	}

	c.RequestTrash()
	c.RequestDelete()
	c.Cancel()
	if runner.trashCalls != 0 || len(p.questions) != 1 || p.closed != 0 {
		t.Errorf("Expected actions ignored, trash=%d questions=%d closed=%d", runner.trashCalls, len(p.questions), p.closed)
	}

	p.pending(true)
	if runner.deleteCalls != 1 || c.State() != StateClosed {
		t.Errorf("Expected delete after late confirmation, calls=%d state=%s", runner.deleteCalls, c.State())
	}

	// A stray second answer changes nothing
	c.AnswerDelete(true)
	if runner.deleteCalls != 1 {
		t.Errorf("Expected single delete batch, got %d", runner.deleteCalls)
	}
}

func TestCancel(t *testing.T) {
	runner := &fakeRunner{}
	p := &fakePresenter{}
	c := NewDeleteController(targets, runner, p, dummyDebug)

	c.Cancel()

	if c.State() != StateClosed || c.Result() != ResultRejected || p.closed != 1 {
		t.Errorf("Expected closed/rejected, got %s/%d closed=%d", c.State(), c.Result(), p.closed)
	}
	if runner.trashCalls+runner.deleteCalls != 0 || len(p.messages) != 0 {
		t.Error("Cancel must not run any batch or show messages")
	}

	c.RequestTrash()
	c.Cancel()
	if runner.trashCalls != 0 || p.closed != 1 {
		t.Error("Closed dialog must ignore further actions")
	}
}

func TestTargetsAreCopied(t *testing.T) {
	input := []string{"/a", "/b"}
	c := NewDeleteController(input, &fakeRunner{}, &fakePresenter{}, dummyDebug)
	input[0] = "/changed"
	if c.Targets()[0] != "/a" {
		t.Error("Controller must not share the caller's slice")
	}
}

func TestStateString(t *testing.T) {
	if StateOpen.String() != "open" || StateAwaitingConfirmation.String() != "awaiting-confirmation" || StateClosed.String() != "closed" || State(42).String() != "unknown" {
		t.Error("Unexpected state names")
	}
}

func TestTrashUnavailableMessageFallsBackToPlainError(t *testing.T) {
	msg := trashUnavailableMessage(errors.New("boom"))
	if !strings.HasSuffix(msg, "boom") {
		t.Errorf("Expected plain error text, got %q", msg)
	}
}
