// Package fileop executes a validated file operation request against a
// platform backend and classifies the outcome as ok, cancelled, or an
// error with a code and a best-effort message.
package fileop

import (
	"fileops/pkg/request"
)

// StatusOK is the canonical no-error status code.
const StatusOK = 0

// StatusCancelled is the status code reported when the user aborts the
// operation through the platform's own UI (ERROR_CANCELLED on the
// reference platform).
const StatusCancelled = 0x4c7

// Flags adjust how the platform backend performs an operation.
type Flags struct {
	// AllowUndo requests recoverable deletion (recycle bin / trash)
	// when the platform supports it.
	AllowUndo bool

	// NoConfirmMkdir suppresses confirmation prompts when intermediate
	// destination directories have to be created.
	NoConfirmMkdir bool

	// WantNukeWarning requests a warning before a permanent,
	// non-recoverable deletion.
	WantNukeWarning bool

	// MultiDest signals that the destination list carries one entry
	// per source rather than a single shared destination.
	MultiDest bool
}

// Call is the assembled invocation of the platform capability.
type Call struct {
	Action       request.Action
	Sources      []string
	Destinations []string
	Flags        Flags
}

// Outcome is what the platform capability reports back: a raw status
// code and whether the user aborted any part of the operation.
type Outcome struct {
	Status  int
	Aborted bool
}

// Operator is the platform batch file-operation capability. Perform may
// block for the duration of the filesystem operation and may display
// native progress or confirmation UI of its own.
type Operator interface {
	Perform(call Call) Outcome
}

// Presenter displays a modal warning dialog. Implementations are
// best-effort: they must never influence the reported result.
type Presenter interface {
	Warn(title, body string)
}

// NopPresenter is a Presenter that shows nothing.
type NopPresenter struct{}

// Warn does nothing.
func (NopPresenter) Warn(title, body string) {}

// Kind partitions every possible outcome into exactly one bucket.
type Kind int

const (
	KindSuccess Kind = iota
	KindCancelled
	KindFailed
)

// Result is the classified outcome of one operation. Status carries the
// raw platform code verbatim so callers can propagate it as the process
// exit status; Message is only set for KindFailed.
type Result struct {
	Kind    Kind
	Status  int
	Message string
}
