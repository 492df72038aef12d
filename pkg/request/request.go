// Package request turns raw command-line tokens into a validated bulk
// file operation request.
package request

import (
	"errors"
	"strings"
)

// Action selects the file operation verb.
type Action string

const (
	ActionCopy   Action = "copy"
	ActionMove   Action = "move"
	ActionDelete Action = "delete"
)

// Validation errors, one per rejection. Each should be presented to the
// user together with the usage text.
var (
	ErrActionRequired        = errors.New("action is required")
	ErrUnknownAction         = errors.New("action must be one of: copy, move, delete")
	ErrNoSources             = errors.New("at least one source path is required")
	ErrDeleteWithDestination = errors.New("cannot specify destination path when action is delete")
	ErrNoDestinations        = errors.New("at least one destination path is required when action is not delete")
	ErrTooManyDestinations   = errors.New("number of destination paths cannot be more than number of source paths")
	ErrCountMismatch         = errors.New("number of source and destination paths must match when more than one destination path is specified")
)

// Usage is the CLI synopsis printed alongside every validation error.
const Usage = `usage: (action is one of: copy, move, delete)
  fileops <action> --from <sourcePath> [sourcePath]* --to <directoryPath>
  fileops <action> --from <sourcePath> [sourcePath]* --to <destPath> [destPath]*
  fileops delete --from <sourcePath> [sourcePath]*`

// Request is a validated file operation request. It is only constructed
// by Parse, after all validation rules pass, and is immutable once built.
type Request struct {
	action          Action
	sources         []string
	destinations    []string
	showErrorDialog bool
}

// Action returns the requested operation verb.
func (r Request) Action() Action { return r.action }

// Sources returns a copy of the source path list. It is never empty.
func (r Request) Sources() []string {
	return append([]string(nil), r.sources...)
}

// Destinations returns a copy of the destination path list. It is empty
// when Action is delete.
func (r Request) Destinations() []string {
	return append([]string(nil), r.destinations...)
}

// ShowErrorDialog reports whether failures should additionally be
// presented in a native modal dialog.
func (r Request) ShowErrorDialog() bool { return r.showErrorDialog }

// MultiDestination reports whether the destination list carries one
// entry per source rather than a single shared destination.
func (r Request) MultiDestination() bool { return len(r.destinations) > 1 }

// Parse consumes command-line tokens into a validated Request.
//
// Tokens are bucketed by the most recently seen section marker: the
// first non-flag token before any marker is the action, tokens after
// --from are sources and tokens after --to are destinations. The
// --show-errors flag may appear anywhere. Unrecognized tokens starting
// with "--" are ignored so that newer callers can pass flags this
// version does not know about.
func Parse(args []string) (Request, error) {
	const (
		bucketAction = iota
		bucketFrom
		bucketTo
	)

	var req Request
	bucket := bucketAction

	for _, arg := range args {
		switch {
		case arg == "--from":
			bucket = bucketFrom
			continue
		case arg == "--to":
			bucket = bucketTo
			continue
		case arg == "--show-errors":
			req.showErrorDialog = true
			continue
		case strings.HasPrefix(arg, "--"):
			// Unknown flag, ignore.
			continue
		}

		switch bucket {
		case bucketAction:
			if req.action == "" {
				req.action = Action(arg)
			}
		case bucketFrom:
			req.sources = append(req.sources, arg)
		case bucketTo:
			req.destinations = append(req.destinations, arg)
		}
	}

	if err := validate(req); err != nil {
		return Request{}, err
	}

	return req, nil
}

// validate applies the acceptance rules in order, returning the first
// violation.
func validate(req Request) error {
	if req.action == "" {
		return ErrActionRequired
	}

	switch req.action {
	case ActionCopy, ActionMove, ActionDelete:
	default:
		return ErrUnknownAction
	}

	if len(req.sources) == 0 {
		return ErrNoSources
	}

	if req.action == ActionDelete {
		if len(req.destinations) > 0 {
			return ErrDeleteWithDestination
		}
	} else if len(req.destinations) == 0 {
		return ErrNoDestinations
	}

	if len(req.destinations) > len(req.sources) {
		return ErrTooManyDestinations
	}

	if len(req.sources) > 1 && len(req.destinations) > 1 &&
		len(req.sources) != len(req.destinations) {
		return ErrCountMismatch
	}

	return nil
}
