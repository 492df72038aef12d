//go:build !windows

package main

import (
	"fileops/pkg/fileop"
	"fileops/pkg/portable"
)

func newOperator() fileop.Operator {
	return portable.New()
}

// systemMessage returns nil: outside Windows there is no generic system
// message facility for the shell status-code space, and the curated
// catalog already covers every code the portable backend produces.
func systemMessage() func(code int) string {
	return nil
}
