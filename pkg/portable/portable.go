// Package portable performs copy, move, and delete directly when no
// native batch file-operation capability is available. Failures are
// reported on the same status-code space as the Windows shell backend,
// so the result taxonomy and the curated error catalog apply unchanged.
package portable

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"fileops/pkg/fileop"
	"fileops/pkg/request"
	"fileops/pkg/trash"
)

// Status codes shared with the shell backend's error space.
const (
	statusSameFile     = 0x71
	statusRootSource   = 0x74
	statusDestSubtree  = 0x76
	statusAccessDenied = 0x78
	statusInvalidPath  = 0x7c
	statusUnknown      = 0x402
)

var (
	errSameFile    = errors.New("source and destination are the same file")
	errDestSubtree = errors.New("destination is a subtree of the source")
	errRootSource  = errors.New("source is a root directory")
)

// Operator performs file operations with plain filesystem calls.
type Operator struct {
	newTrasher func() (*trash.Trasher, error)
}

// New creates the portable operator. Recoverable deletion goes through
// the user's trash.
func New() *Operator {
	return &Operator{newTrasher: trash.New}
}

// Perform executes the call synchronously. The portable backend has no
// interactive UI, so the aborted flag is never set and every failure
// maps to a nonzero status code.
func (o *Operator) Perform(call fileop.Call) fileop.Outcome {
	if err := o.run(call); err != nil {
		return fileop.Outcome{Status: statusOf(err)}
	}

	return fileop.Outcome{Status: fileop.StatusOK}
}

func (o *Operator) run(call fileop.Call) error {
	if call.Action == request.ActionDelete {
		return o.deleteAll(call.Sources, call.Flags.AllowUndo)
	}

	pairs, err := pairDestinations(call.Sources, call.Destinations)
	if err != nil {
		return err
	}

	for _, pair := range pairs {
		if err := validatePair(pair.src, pair.dst, call.Action == request.ActionMove); err != nil {
			return err
		}

		if call.Flags.NoConfirmMkdir {
			if err := os.MkdirAll(filepath.Dir(pair.dst), 0o755); err != nil {
				return fmt.Errorf("create destination directory: %w", err)
			}
		}

		if call.Action == request.ActionMove {
			err = movePath(pair.src, pair.dst)
		} else {
			err = copyPath(pair.src, pair.dst)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// deleteAll removes each source independently. With allowUndo the file
// is moved to the user's trash; when no trash is usable the delete is
// permanent, matching the shell's allow-undo semantics.
func (o *Operator) deleteAll(sources []string, allowUndo bool) error {
	var trasher *trash.Trasher
	if allowUndo {
		trasher, _ = o.newTrasher()
	}

	for _, src := range sources {
		if _, err := os.Lstat(src); err != nil {
			return err
		}

		if trasher != nil {
			if err := trasher.Put(src); err == nil {
				continue
			}
		}

		if err := os.RemoveAll(src); err != nil {
			return err
		}
	}

	return nil
}

type pathPair struct {
	src string
	dst string
}

// pairDestinations resolves the destination list against the sources:
// a single destination shared by several sources is a directory target
// for every verb, a single source with a single destination targets the
// destination directly unless it is an existing directory, and equal
// counts pair positionally.
func pairDestinations(sources, destinations []string) ([]pathPair, error) {
	if len(destinations) == 0 {
		return nil, fmt.Errorf("%w: no destination given", fs.ErrInvalid)
	}

	if len(destinations) > 1 {
		pairs := make([]pathPair, len(sources))
		for i, src := range sources {
			pairs[i] = pathPair{src: src, dst: destinations[i]}
		}
		return pairs, nil
	}

	dst := destinations[0]

	if len(sources) == 1 {
		if info, err := os.Stat(dst); err == nil && info.IsDir() {
			return []pathPair{{src: sources[0], dst: filepath.Join(dst, filepath.Base(sources[0]))}}, nil
		}
		return []pathPair{{src: sources[0], dst: dst}}, nil
	}

	if err := os.MkdirAll(dst, 0o755); err != nil {
		return nil, fmt.Errorf("create shared destination: %w", err)
	}

	pairs := make([]pathPair, len(sources))
	for i, src := range sources {
		pairs[i] = pathPair{src: src, dst: filepath.Join(dst, filepath.Base(src))}
	}

	return pairs, nil
}

func validatePair(src, dst string, moving bool) error {
	if _, err := os.Lstat(src); err != nil {
		return err
	}

	absSrc, err := filepath.Abs(src)
	if err != nil {
		return err
	}

	absDst, err := filepath.Abs(dst)
	if err != nil {
		return err
	}

	if absSrc == absDst {
		return fmt.Errorf("%w: %s", errSameFile, src)
	}

	if strings.HasPrefix(absDst, absSrc+string(filepath.Separator)) {
		return fmt.Errorf("%w: %s -> %s", errDestSubtree, src, dst)
	}

	// Root directories cannot be moved, only copied.
	if moving && filepath.Dir(absSrc) == absSrc {
		return fmt.Errorf("%w: %s", errRootSource, src)
	}

	return nil
}

// movePath renames, falling back to copy-and-remove across filesystems.
func movePath(src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}

	var linkErr *os.LinkError
	if !errors.As(err, &linkErr) || !errors.Is(linkErr.Err, syscall.EXDEV) {
		return err
	}

	if err := copyPath(src, dst); err != nil {
		return err
	}

	return os.RemoveAll(src)
}

func copyPath(src, dst string) error {
	info, err := os.Lstat(src)
	if err != nil {
		return err
	}

	switch {
	case info.IsDir():
		return copyDir(src, dst, info.Mode().Perm())
	case info.Mode()&os.ModeSymlink != 0:
		return copySymlink(src, dst)
	default:
		return copyFile(src, dst, info.Mode().Perm())
	}
}

func copyDir(src, dst string, perm os.FileMode) error {
	if err := os.MkdirAll(dst, perm); err != nil {
		return err
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		srcEntry := filepath.Join(src, entry.Name())
		dstEntry := filepath.Join(dst, entry.Name())

		if err := copyPath(srcEntry, dstEntry); err != nil {
			return err
		}
	}

	return nil
}

func copyFile(src, dst string, perm os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}

	return out.Close()
}

func copySymlink(src, dst string) error {
	target, err := os.Readlink(src)
	if err != nil {
		return err
	}

	if _, err := os.Lstat(dst); err == nil {
		if err := os.Remove(dst); err != nil {
			return err
		}
	}

	return os.Symlink(target, dst)
}

// statusOf maps a failure onto the shared status-code space.
func statusOf(err error) int {
	switch {
	case errors.Is(err, errSameFile):
		return statusSameFile
	case errors.Is(err, errDestSubtree):
		return statusDestSubtree
	case errors.Is(err, errRootSource):
		return statusRootSource
	case errors.Is(err, fs.ErrNotExist):
		return statusInvalidPath
	case errors.Is(err, fs.ErrPermission):
		return statusAccessDenied
	default:
		return statusUnknown
	}
}
