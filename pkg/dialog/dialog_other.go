//go:build !windows && !darwin && !linux

package dialog

// Native returns a no-op Warner on platforms without a native dialog
// facility.
func Native() Warner { return Nop{} }
