//go:build linux

package dialog

import "os/exec"

type desktopDialog struct{}

// Native returns a Warner that shells out to the desktop environment's
// dialog tool, trying zenity first and xmessage as a fallback.
func Native() Warner { return desktopDialog{} }

func (desktopDialog) Warn(title, body string) {
	if path, err := exec.LookPath("zenity"); err == nil {
		_ = exec.Command(path, "--warning", "--title", title, "--text", body).Run()
		return
	}

	if path, err := exec.LookPath("xmessage"); err == nil {
		_ = exec.Command(path, "-center", title+"\n\n"+body).Run()
	}
}
