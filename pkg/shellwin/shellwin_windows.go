//go:build windows

package shellwin

import (
	"runtime"
	"strings"
	"unsafe"

	"golang.org/x/sys/windows"

	"fileops/pkg/fileop"
	"fileops/pkg/request"
)

var (
	shell32              = windows.NewLazySystemDLL("shell32.dll")
	procSHFileOperationW = shell32.NewProc("SHFileOperationW")
)

// SHFileOperation verb and flag constants, from shellapi.h.
const (
	foMove   = 0x0001
	foCopy   = 0x0002
	foDelete = 0x0003

	fofMultiDestFiles  = 0x0001
	fofAllowUndo       = 0x0040
	fofNoConfirmMkdir  = 0x0200
	fofWantNukeWarning = 0x4000
)

// shFileOpStruct mirrors SHFILEOPSTRUCTW.
type shFileOpStruct struct {
	hwnd                  windows.HWND
	wFunc                 uint32
	pFrom                 *uint16
	pTo                   *uint16
	fFlags                uint16
	fAnyOperationsAborted int32
	hNameMappings         uintptr
	lpszProgressTitle     *uint16
}

// Operator performs batch file operations through the Windows shell, so
// recoverability, confirmation prompts, and conflict handling match
// Explorer's behavior.
type Operator struct{}

// New creates the shell-backed operator.
func New() *Operator { return &Operator{} }

// Perform invokes SHFileOperationW synchronously. The shell may display
// its own progress and confirmation UI for the duration of the call.
func (o *Operator) Perform(call fileop.Call) fileop.Outcome {
	from := EncodePathList(call.Sources)
	to := EncodePathList(call.Destinations)

	op := shFileOpStruct{
		wFunc:  verbOf(call.Action),
		pFrom:  &from[0],
		pTo:    &to[0],
		fFlags: flagsOf(call.Flags),
	}

	status, _, _ := procSHFileOperationW.Call(uintptr(unsafe.Pointer(&op)))
	runtime.KeepAlive(from)
	runtime.KeepAlive(to)

	return fileop.Outcome{
		Status:  int(status),
		Aborted: op.fAnyOperationsAborted != 0,
	}
}

func verbOf(action request.Action) uint32 {
	switch action {
	case request.ActionMove:
		return foMove
	case request.ActionDelete:
		return foDelete
	default:
		return foCopy
	}
}

func flagsOf(flags fileop.Flags) uint16 {
	var f uint16

	if flags.AllowUndo {
		f |= fofAllowUndo
	}
	if flags.NoConfirmMkdir {
		f |= fofNoConfirmMkdir
	}
	if flags.WantNukeWarning {
		f |= fofWantNukeWarning
	}
	if flags.MultiDest {
		f |= fofMultiDestFiles
	}

	return f
}

// SystemMessage resolves a status code through FormatMessageW. Returns
// an empty string when the system has no message for the code.
func SystemMessage(code int) string {
	const flags = windows.FORMAT_MESSAGE_FROM_SYSTEM | windows.FORMAT_MESSAGE_IGNORE_INSERTS

	buf := make([]uint16, 512)
	n, err := windows.FormatMessage(flags, 0, uint32(code), 0, buf, nil)
	if err != nil {
		return ""
	}

	return strings.TrimSpace(windows.UTF16ToString(buf[:n]))
}
