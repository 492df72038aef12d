package portable

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"fileops/internal/testutil"
	"fileops/pkg/fileop"
	"fileops/pkg/request"
	"fileops/pkg/trash"
)

// newTestOperator routes recoverable deletes into a trash rooted inside
// the test's temp directory.
func newTestOperator(trashRoot string) *Operator {
	return &Operator{
		newTrasher: func() (*trash.Trasher, error) {
			return trash.NewAt(trashRoot), nil
		},
	}
}

func defaultFlags() fileop.Flags {
	return fileop.Flags{AllowUndo: true, NoConfirmMkdir: true, WantNukeWarning: true}
}

func TestPerform_CopyFileToNewName(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.txt")
	dst := filepath.Join(dir, "b.txt")
	testutil.CreateFile(t, src, "hello")

	outcome := New().Perform(fileop.Call{
		Action:       request.ActionCopy,
		Sources:      []string{src},
		Destinations: []string{dst},
		Flags:        defaultFlags(),
	})

	assert.Equal(t, fileop.Outcome{Status: 0}, outcome)
	assert.Equal(t, "hello", testutil.ReadFile(t, dst))
	assert.Equal(t, "hello", testutil.ReadFile(t, src), "copy keeps the source")
}

func TestPerform_CopyFileIntoExistingDirectory(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.txt")
	dstDir := filepath.Join(dir, "out")
	testutil.CreateFile(t, src, "hello")
	testutil.CreateDir(t, dstDir)

	outcome := New().Perform(fileop.Call{
		Action:       request.ActionCopy,
		Sources:      []string{src},
		Destinations: []string{dstDir},
		Flags:        defaultFlags(),
	})

	assert.Equal(t, 0, outcome.Status)
	assert.Equal(t, "hello", testutil.ReadFile(t, filepath.Join(dstDir, "a.txt")))
}

func TestPerform_CopyManyToSharedDestination(t *testing.T) {
	dir := t.TempDir()
	srcA := filepath.Join(dir, "a.txt")
	srcB := filepath.Join(dir, "b.txt")
	dstDir := filepath.Join(dir, "backup")
	testutil.CreateFile(t, srcA, "a")
	testutil.CreateFile(t, srcB, "b")

	// Destination directory does not exist yet; it must be created
	// without prompting.
	outcome := New().Perform(fileop.Call{
		Action:       request.ActionCopy,
		Sources:      []string{srcA, srcB},
		Destinations: []string{dstDir},
		Flags:        defaultFlags(),
	})

	assert.Equal(t, 0, outcome.Status)
	assert.Equal(t, "a", testutil.ReadFile(t, filepath.Join(dstDir, "a.txt")))
	assert.Equal(t, "b", testutil.ReadFile(t, filepath.Join(dstDir, "b.txt")))
}

func TestPerform_CopyPositionalPairs(t *testing.T) {
	dir := t.TempDir()
	srcA := filepath.Join(dir, "a.txt")
	srcB := filepath.Join(dir, "b.txt")
	dstX := filepath.Join(dir, "x.txt")
	dstY := filepath.Join(dir, "sub", "y.txt")
	testutil.CreateFile(t, srcA, "a")
	testutil.CreateFile(t, srcB, "b")

	outcome := New().Perform(fileop.Call{
		Action:       request.ActionCopy,
		Sources:      []string{srcA, srcB},
		Destinations: []string{dstX, dstY},
		Flags:        fileop.Flags{AllowUndo: true, NoConfirmMkdir: true, MultiDest: true},
	})

	assert.Equal(t, 0, outcome.Status)
	assert.Equal(t, "a", testutil.ReadFile(t, dstX))
	assert.Equal(t, "b", testutil.ReadFile(t, dstY))
}

func TestPerform_CopyDirectoryRecursive(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "tree")
	dst := filepath.Join(dir, "tree-copy")
	testutil.CreateFile(t, filepath.Join(src, "top.txt"), "top")
	testutil.CreateFile(t, filepath.Join(src, "nested", "deep.txt"), "deep")

	outcome := New().Perform(fileop.Call{
		Action:       request.ActionCopy,
		Sources:      []string{src},
		Destinations: []string{dst},
		Flags:        defaultFlags(),
	})

	assert.Equal(t, 0, outcome.Status)
	assert.Equal(t, "top", testutil.ReadFile(t, filepath.Join(dst, "top.txt")))
	assert.Equal(t, "deep", testutil.ReadFile(t, filepath.Join(dst, "nested", "deep.txt")))
}

func TestPerform_MoveFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.txt")
	dst := filepath.Join(dir, "b.txt")
	testutil.CreateFile(t, src, "hello")

	outcome := New().Perform(fileop.Call{
		Action:       request.ActionMove,
		Sources:      []string{src},
		Destinations: []string{dst},
		Flags:        defaultFlags(),
	})

	assert.Equal(t, 0, outcome.Status)
	assert.Equal(t, "hello", testutil.ReadFile(t, dst))
	_, err := os.Stat(src)
	assert.True(t, os.IsNotExist(err), "move removes the source")
}

func TestPerform_MoveIntoExistingDirectory(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.txt")
	dstDir := filepath.Join(dir, "out")
	testutil.CreateFile(t, src, "hello")
	testutil.CreateDir(t, dstDir)

	outcome := New().Perform(fileop.Call{
		Action:       request.ActionMove,
		Sources:      []string{src},
		Destinations: []string{dstDir},
		Flags:        defaultFlags(),
	})

	assert.Equal(t, 0, outcome.Status)
	assert.Equal(t, "hello", testutil.ReadFile(t, filepath.Join(dstDir, "a.txt")))
}

func TestPerform_DeleteRecoverable(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "doomed.txt")
	trashRoot := filepath.Join(dir, "Trash")
	testutil.CreateFile(t, src, "x")

	outcome := newTestOperator(trashRoot).Perform(fileop.Call{
		Action:  request.ActionDelete,
		Sources: []string{src},
		Flags:   defaultFlags(),
	})

	assert.Equal(t, 0, outcome.Status)
	_, err := os.Stat(src)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(trashRoot, "files", "doomed.txt"))
	assert.NoError(t, err, "deleted file should land in trash")
}

func TestPerform_DeletePermanentWithoutUndo(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "doomed.txt")
	trashRoot := filepath.Join(dir, "Trash")
	testutil.CreateFile(t, src, "x")

	outcome := newTestOperator(trashRoot).Perform(fileop.Call{
		Action:  request.ActionDelete,
		Sources: []string{src},
		Flags:   fileop.Flags{AllowUndo: false},
	})

	assert.Equal(t, 0, outcome.Status)
	_, err := os.Stat(src)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(trashRoot, "files", "doomed.txt"))
	assert.True(t, os.IsNotExist(err), "permanent delete must bypass trash")
}

func TestPerform_DeleteSeveralSources(t *testing.T) {
	dir := t.TempDir()
	srcA := filepath.Join(dir, "a.txt")
	srcB := filepath.Join(dir, "b")
	trashRoot := filepath.Join(dir, "Trash")
	testutil.CreateFile(t, srcA, "a")
	testutil.CreateFile(t, filepath.Join(srcB, "inner.txt"), "b")

	outcome := newTestOperator(trashRoot).Perform(fileop.Call{
		Action:  request.ActionDelete,
		Sources: []string{srcA, srcB},
		Flags:   defaultFlags(),
	})

	assert.Equal(t, 0, outcome.Status)
	for _, src := range []string{srcA, srcB} {
		_, err := os.Stat(src)
		assert.True(t, os.IsNotExist(err), src)
	}
}

func TestPerform_MissingSourceIsInvalidPath(t *testing.T) {
	dir := t.TempDir()

	outcome := New().Perform(fileop.Call{
		Action:       request.ActionCopy,
		Sources:      []string{filepath.Join(dir, "missing.txt")},
		Destinations: []string{filepath.Join(dir, "out.txt")},
		Flags:        defaultFlags(),
	})

	assert.Equal(t, statusInvalidPath, outcome.Status)
	assert.False(t, outcome.Aborted)
}

func TestPerform_SameFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.txt")
	testutil.CreateFile(t, src, "x")

	outcome := New().Perform(fileop.Call{
		Action:       request.ActionCopy,
		Sources:      []string{src},
		Destinations: []string{src},
		Flags:        defaultFlags(),
	})

	assert.Equal(t, statusSameFile, outcome.Status)
}

func TestPerform_DestinationInsideSource(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "tree")
	testutil.CreateFile(t, filepath.Join(src, "a.txt"), "x")

	outcome := New().Perform(fileop.Call{
		Action:       request.ActionCopy,
		Sources:      []string{src},
		Destinations: []string{filepath.Join(src, "copy")},
		Flags:        defaultFlags(),
	})

	assert.Equal(t, statusDestSubtree, outcome.Status)
}

func TestStatusOf_ErrorMapping(t *testing.T) {
	assert.Equal(t, statusSameFile, statusOf(errSameFile))
	assert.Equal(t, statusDestSubtree, statusOf(errDestSubtree))
	assert.Equal(t, statusRootSource, statusOf(errRootSource))
	assert.Equal(t, statusInvalidPath, statusOf(os.ErrNotExist))
	assert.Equal(t, statusAccessDenied, statusOf(os.ErrPermission))
	assert.Equal(t, statusUnknown, statusOf(assert.AnError))
}
