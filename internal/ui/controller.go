package ui

import (
	"fileremover/internal/jobs"
)

// State is the deletion dialog's lifecycle state.
type State int

const (
	StateOpen State = iota
	StateAwaitingConfirmation
	StateClosed
)

// String returns a string representation of the state
func (s State) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateAwaitingConfirmation:
		return "awaiting-confirmation"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Result tells how the dialog was closed.
type Result int

const (
	ResultNone Result = iota
	ResultAccepted
	ResultRejected
)

// IrreversibleQuestion is asked before a permanent deletion.
const IrreversibleQuestion = "⚠️ This action is IRREVERSIBLE!\n\nAre you sure you want to permanently delete the selected item(s)?"

// BatchRunner performs the trash and delete batches.
type BatchRunner interface {
	Trash(targets []string) (jobs.Report, error)
	Delete(targets []string) jobs.Report
}

// Presenter is the toolkit side of the dialog. Callbacks run on the
// toolkit's event goroutine; then may be nil.
type Presenter interface {
	AskConfirmation(question string, answer func(confirmed bool))
	ShowMessage(title, message string, isError bool, then func())
	Close()
}

// DeleteController drives the Open → {Trash|Delete|Cancel} → Closed state
// machine. It holds no toolkit state, so every transition is testable.
type DeleteController struct {
	targets    []string
	runner     BatchRunner
	presenter  Presenter
	debugPrint func(format string, args ...interface{})

	state  State
	result Result
	report *jobs.Report
}

// NewDeleteController creates a controller for a non-empty target list.
func NewDeleteController(targets []string, runner BatchRunner, presenter Presenter, debugPrint func(format string, args ...interface{})) *DeleteController {
	return &DeleteController{
		targets:    append([]string(nil), targets...),
		runner:     runner,
		presenter:  presenter,
		debugPrint: debugPrint,
		state:      StateOpen,
	}
}

// Targets returns a copy of the target list.
func (c *DeleteController) Targets() []string { return append([]string(nil), c.targets...) }

// State returns the current state.
func (c *DeleteController) State() State { return c.state }

// Result returns how the dialog closed, ResultNone while open.
func (c *DeleteController) Result() Result { return c.result }

// LastReport returns the report of the executed batch, if any.
func (c *DeleteController) LastReport() (jobs.Report, bool) {
	if c.report == nil {
		return jobs.Report{}, false
	}
	return *c.report, true
}

// RequestTrash moves every target to the trash. An unavailable trash is
// reported once and the dialog stays open.
func (c *DeleteController) RequestTrash() {
	if c.state != StateOpen {
		c.debugPrint("DeleteController: trash ignored in state %s", c.state)
		return
	}

	report, err := c.runner.Trash(c.targets)
	if err != nil {
		c.debugPrint("DeleteController: trash unavailable: %v", err)
		c.presenter.ShowMessage("Error", trashUnavailableMessage(err), true, nil)
		return
	}
	c.finish(report)
}

// RequestDelete asks for confirmation before a permanent deletion.
func (c *DeleteController) RequestDelete() {
	if c.state != StateOpen {
		c.debugPrint("DeleteController: delete ignored in state %s", c.state)
		return
	}
	c.state = StateAwaitingConfirmation
	c.presenter.AskConfirmation(IrreversibleQuestion, c.AnswerDelete)
}

// AnswerDelete resolves the pending confirmation.
func (c *DeleteController) AnswerDelete(confirmed bool) {
	if c.state != StateAwaitingConfirmation {
		return
	}
	if !confirmed {
		c.debugPrint("DeleteController: permanent delete declined")
		c.state = StateOpen
		return
	}
	c.finish(c.runner.Delete(c.targets))
}

// Cancel closes the dialog without side effects.
func (c *DeleteController) Cancel() {
	if c.state != StateOpen {
		return
	}
	c.state = StateClosed
	c.result = ResultRejected
	c.presenter.Close()
}

func (c *DeleteController) finish(report jobs.Report) {
	c.report = &report
	c.state = StateClosed
	c.result = ResultAccepted

	title, message, isError := FormatReport(report, c.targets)
	c.debugPrint("DeleteController: %s finished in %s, %d/%d succeeded", report.Type, report.Elapsed(), report.Succeeded(), report.Total)
	c.presenter.ShowMessage(title, message, isError, c.presenter.Close)
}
