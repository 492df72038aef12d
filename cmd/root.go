package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"fileops/pkg/dialog"
	"fileops/pkg/fileop"
	"fileops/pkg/request"
)

// exitError carries the process exit status. The raw platform status
// code is propagated verbatim for scripting callers.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

func buildRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fileops <action> --from <sourcePath>... [--to <destPath>...] [--show-errors]",
		Short: "Bulk copy, move, or delete files through the OS file manager",
		Long: `fileops performs bulk copy, move, and delete operations by delegating
to the operating system's native file-management facilities, so
recoverability, confirmation prompts, and conflict handling match what
the system's graphical file manager would do.

Actions:
  copy    Copy sources to the destination(s)
  move    Move sources to the destination(s)
  delete  Delete sources recoverably (recycle bin / trash)

Examples:
  # Copy two files into a directory
  fileops copy --from a.txt b.txt --to backup/

  # Move files to explicit destinations, paired by position
  fileops move --from a.txt b.txt --to x.txt y.txt

  # Delete files
  fileops delete --from old.log stale.tmp

  # Show a native dialog when the operation fails
  fileops move --from a.txt --to locked/ --show-errors

Output is a single line: "ok", "cancelled", or "error 0x<code>: <message>".
Exit status is 0 on success, 1 on invalid arguments, and otherwise the
raw platform status code, so scripted callers can branch on it without
parsing text.`,
		Args: cobra.ArbitraryArgs,
		// The builder owns token semantics (--from/--to sections,
		// unknown -- flags ignored), so cobra must not parse flags.
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE:               run,
	}

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if hasFlag(args, "-h") || hasFlag(args, "--help") {
		return cmd.Help()
	}

	req, err := request.Parse(args)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		fmt.Println(request.Usage)
		return &exitError{code: 1}
	}

	executor := fileop.New(fileop.Options{
		Operator:      newOperator(),
		Presenter:     dialog.Native(),
		SystemMessage: systemMessage(),
		Logger:        newLogger(hasFlag(args, "--verbose")),
	})

	result := executor.Execute(req)
	if result.Status == fileop.StatusOK {
		return nil
	}

	return &exitError{code: result.Status}
}

func hasFlag(args []string, flag string) bool {
	for _, arg := range args {
		if arg == flag {
			return true
		}
	}

	return false
}

// newLogger builds the stderr diagnostic logger. Disabled unless
// --verbose is given; stdout carries only the result line.
func newLogger(verbose bool) zerolog.Logger {
	if !verbose {
		return zerolog.Nop()
	}

	writer := zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = os.Stderr
	})

	return zerolog.New(writer).With().Timestamp().Logger().Level(zerolog.DebugLevel)
}
