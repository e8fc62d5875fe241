package main

import (
	"log"
	"os"
	"strings"

	"fib/cmd"
	"fib/pkg/logging"

	"golang.org/x/term"
)

func main() {
	err := cmd.Execute(os.Args[1:])

	// Syncing stderr fails with "invalid argument" on pipes and some consoles.
	if term.IsTerminal(int(os.Stderr.Fd())) || isRegularFile(os.Stderr) {
		if syncErr := logging.Logger.Sync(); syncErr != nil {
			if !strings.Contains(strings.ToLower(syncErr.Error()), "invalid argument") {
				log.Printf("Logger sync failed: %v", syncErr)
			}
		}
	}

	if err != nil {
		os.Exit(1)
	}
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return fileInfo.Mode().IsRegular()
}
