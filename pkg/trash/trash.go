// Package trash provides recoverable deletion by moving files into the
// user's trash instead of removing them permanently. On Linux and the
// BSDs it follows the freedesktop.org trash layout (files/ plus
// info/*.trashinfo sidecars); on macOS it moves files into ~/.Trash.
package trash

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

// ErrNoTrashDir is returned when no user trash location can be resolved.
var ErrNoTrashDir = errors.New("no trash directory available")

// Trasher moves files into a trash directory.
type Trasher struct {
	filesDir string
	infoDir  string // empty when the layout has no sidecar files
}

// New resolves the current user's trash location.
func New() (*Trasher, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoTrashDir, err)
	}

	if runtime.GOOS == "darwin" {
		return &Trasher{filesDir: filepath.Join(home, ".Trash")}, nil
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		dataHome = filepath.Join(home, ".local", "share")
	}

	root := filepath.Join(dataHome, "Trash")

	return &Trasher{
		filesDir: filepath.Join(root, "files"),
		infoDir:  filepath.Join(root, "info"),
	}, nil
}

// NewAt creates a Trasher rooted at an explicit directory, using the
// freedesktop.org layout under it. Intended for tests.
func NewAt(root string) *Trasher {
	return &Trasher{
		filesDir: filepath.Join(root, "files"),
		infoDir:  filepath.Join(root, "info"),
	}
}

// Put moves the file or directory at path into the trash, picking a
// non-conflicting name and writing the .trashinfo sidecar when the
// layout calls for one.
func (t *Trasher) Put(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Lstat(absPath); err != nil {
		return err
	}

	if err := os.MkdirAll(t.filesDir, 0o700); err != nil {
		return fmt.Errorf("create trash directory: %w", err)
	}

	name := t.uniqueName(filepath.Base(absPath))

	if t.infoDir != "" {
		if err := t.writeInfo(name, absPath); err != nil {
			return err
		}
	}

	if err := os.Rename(absPath, filepath.Join(t.filesDir, name)); err != nil {
		if t.infoDir != "" {
			_ = os.Remove(filepath.Join(t.infoDir, name+".trashinfo"))
		}
		return fmt.Errorf("move to trash: %w", err)
	}

	return nil
}

// uniqueName finds a trash entry name that collides with neither an
// existing file nor an existing sidecar.
func (t *Trasher) uniqueName(base string) string {
	name := base
	for i := 1; ; i++ {
		if !t.nameTaken(name) {
			return name
		}
		name = fmt.Sprintf("%s.%d", base, i)
	}
}

func (t *Trasher) nameTaken(name string) bool {
	if _, err := os.Lstat(filepath.Join(t.filesDir, name)); err == nil {
		return true
	}

	if t.infoDir == "" {
		return false
	}

	_, err := os.Lstat(filepath.Join(t.infoDir, name+".trashinfo"))
	return err == nil
}

// writeInfo creates the .trashinfo sidecar recording the original
// location and deletion time, per the freedesktop.org trash spec.
func (t *Trasher) writeInfo(name, originalPath string) error {
	if err := os.MkdirAll(t.infoDir, 0o700); err != nil {
		return fmt.Errorf("create trash info directory: %w", err)
	}

	content := fmt.Sprintf(
		"[Trash Info]\nPath=%s\nDeletionDate=%s\n",
		escapeInfoPath(originalPath),
		time.Now().Format("2006-01-02T15:04:05"),
	)

	infoPath := filepath.Join(t.infoDir, name+".trashinfo")

	return os.WriteFile(infoPath, []byte(content), 0o600)
}

// escapeInfoPath percent-encodes each path segment the way the
// freedesktop.org trash layout requires, keeping separators literal.
func escapeInfoPath(path string) string {
	segments := strings.Split(filepath.ToSlash(path), "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}

	return strings.Join(segments, "/")
}
