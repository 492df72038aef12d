package fileop

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"fileops/pkg/request"
)

// Executor performs one blocking platform call per request and reports
// the classified result on a single stdout line.
type Executor struct {
	operator  Operator
	presenter Presenter
	out       io.Writer
	sysLookup func(code int) string
	log       zerolog.Logger
}

// Options configures an Executor. Operator is required; the rest have
// working defaults.
type Options struct {
	// Operator performs the actual copy/move/delete.
	Operator Operator

	// Presenter shows the optional error dialog. Defaults to a no-op.
	Presenter Presenter

	// Out receives the one-line result summary. Defaults to os.Stdout.
	Out io.Writer

	// SystemMessage resolves a status code through the platform's
	// generic message facility when the curated catalog has no entry.
	// May be nil on platforms without such a facility.
	SystemMessage func(code int) string

	// Logger receives diagnostics on stderr. Defaults to a disabled
	// logger; never writes to Out.
	Logger zerolog.Logger
}

// New creates an Executor.
func New(opts Options) *Executor {
	e := &Executor{
		operator:  opts.Operator,
		presenter: opts.Presenter,
		out:       opts.Out,
		sysLookup: opts.SystemMessage,
		log:       opts.Logger,
	}

	if e.presenter == nil {
		e.presenter = NopPresenter{}
	}
	if e.out == nil {
		e.out = os.Stdout
	}

	return e
}

// Execute runs the request through the platform capability, prints the
// result line, and shows the error dialog when the request asked for
// one. The returned Result's Status is the raw platform code, suitable
// for use as the process exit status.
func (e *Executor) Execute(req request.Request) Result {
	call := Call{
		Action:       req.Action(),
		Sources:      req.Sources(),
		Destinations: req.Destinations(),
		Flags: Flags{
			AllowUndo:       true,
			NoConfirmMkdir:  true,
			WantNukeWarning: true,
			MultiDest:       req.MultiDestination(),
		},
	}

	e.log.Debug().
		Str("action", string(call.Action)).
		Int("sources", len(call.Sources)).
		Int("destinations", len(call.Destinations)).
		Bool("multi_dest", call.Flags.MultiDest).
		Msg("invoking platform file operation")

	outcome := e.operator.Perform(call)
	result := e.classify(outcome)

	e.log.Debug().
		Int("status", outcome.Status).
		Bool("aborted", outcome.Aborted).
		Msg("platform file operation returned")

	e.render(result)

	if req.ShowErrorDialog() && result.Kind == KindFailed {
		title := fmt.Sprintf("Unable to %s files (ERR %s)", req.Action(), hexCode(result.Status))
		e.presenter.Warn(title, result.Message)
	}

	return result
}

// classify maps an Outcome to exactly one Result kind. The aborted flag
// and the cancelled status code are equivalent cancellation signals.
func (e *Executor) classify(outcome Outcome) Result {
	if outcome.Aborted || outcome.Status == StatusCancelled {
		return Result{Kind: KindCancelled, Status: outcome.Status}
	}

	if outcome.Status == StatusOK {
		return Result{Kind: KindSuccess, Status: StatusOK}
	}

	return Result{
		Kind:    KindFailed,
		Status:  outcome.Status,
		Message: e.resolveMessage(outcome.Status),
	}
}

// resolveMessage finds a human-readable message for a status code: the
// curated catalog wins, then the platform's generic lookup, and an
// empty message is acceptable rather than a fabricated one.
func (e *Executor) resolveMessage(code int) string {
	if msg, ok := CatalogMessage(code); ok {
		return msg
	}

	if e.sysLookup != nil {
		return e.sysLookup(code)
	}

	return ""
}

func (e *Executor) render(result Result) {
	switch result.Kind {
	case KindCancelled:
		fmt.Fprintln(e.out, "cancelled")
	case KindSuccess:
		fmt.Fprintln(e.out, "ok")
	default:
		fmt.Fprintf(e.out, "error %s: %s\n", hexCode(result.Status), result.Message)
	}
}

func hexCode(code int) string {
	return fmt.Sprintf("%#x", code)
}
