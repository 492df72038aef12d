package main

import (
	"errors"
	"os"
)

func main() {
	rootCmd := buildRootCommand()

	err := rootCmd.Execute()
	if err == nil {
		return
	}

	var exitErr *exitError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.code)
	}

	os.Exit(1)
}
