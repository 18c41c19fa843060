// Package util provides common utilities including logging helpers,
// the clock abstraction and file system locations.
package util

import (
	"io"
	"log"
)

// LogError logs an error with context if it is non-nil.
func LogError(context string, err error) {
	if err != nil {
		log.Printf("%s: %v", context, err)
	}
}

// DiscardLogs silences the standard logger. The alternate screen owns
// stdout and stderr while the program runs.
func DiscardLogs() {
	log.SetOutput(io.Discard)
}
