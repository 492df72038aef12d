//go:build windows

package dialog

import "golang.org/x/sys/windows"

type messageBox struct{}

// Native returns a Warner backed by MessageBoxW.
func Native() Warner { return messageBox{} }

func (messageBox) Warn(title, body string) {
	caption, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return
	}

	text, err := windows.UTF16PtrFromString(body)
	if err != nil {
		return
	}

	_, _ = windows.MessageBox(0, text, caption, windows.MB_OK|windows.MB_ICONWARNING)
}
