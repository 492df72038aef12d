//go:build darwin

package dialog

import (
	"fmt"
	"os/exec"
	"strings"
)

type osascript struct{}

// Native returns a Warner that displays an AppleScript alert dialog.
func Native() Warner { return osascript{} }

func (osascript) Warn(title, body string) {
	script := fmt.Sprintf(
		`display alert %s message %s as warning buttons {"OK"}`,
		quoteAppleScript(title), quoteAppleScript(body),
	)

	_ = exec.Command("osascript", "-e", script).Run()
}

func quoteAppleScript(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}
