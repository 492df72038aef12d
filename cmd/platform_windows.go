//go:build windows

package main

import (
	"fileops/pkg/fileop"
	"fileops/pkg/shellwin"
)

func newOperator() fileop.Operator {
	return shellwin.New()
}

func systemMessage() func(code int) string {
	return shellwin.SystemMessage
}
