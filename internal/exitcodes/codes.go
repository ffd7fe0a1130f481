package exitcodes

import (
	"errors"
	"os"
)

// Exit codes for relcheck. The mapping is part of the CLI contract:
// scripts branch on 2 to detect an available update.
const (
	// NoUpdate indicates the check ran and the remote is not newer
	NoUpdate = 0

	// InvalidArgs indicates invalid or missing command-line arguments;
	// no check was performed
	InvalidArgs = 1

	// UpdateAvailable indicates the check ran and found a newer release
	UpdateAvailable = 2

	// CheckFailed indicates any failure while performing the check
	// (bad URL, transport fault, malformed metadata, unparseable version)
	CheckFailed = 3
)

// Exit terminates the program with the given code
func Exit(code int) {
	os.Exit(code)
}

// CodeForError returns the exit code for an error. Errors constructed
// with an explicit code keep it even when wrapped; anything else is a
// usage-level failure.
func CodeForError(err error) int {
	if err == nil {
		return NoUpdate
	}

	var ec *ErrorWithCode
	if errors.As(err, &ec) {
		return ec.Code
	}

	return InvalidArgs
}
