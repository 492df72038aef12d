// Package dialog presents native modal warning dialogs. Presentation is
// best-effort UI sugar: every implementation swallows its own failures
// so the caller's reported result is never affected.
package dialog

// Warner presents a modal warning with a title and body text.
type Warner interface {
	Warn(title, body string)
}

// Nop is a Warner that shows nothing.
type Nop struct{}

// Warn does nothing.
func (Nop) Warn(title, body string) {}
