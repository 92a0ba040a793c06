package monitor

import "errors"

var (
	// ErrLogNotFound indicates the names log is missing at startup.
	ErrLogNotFound = errors.New("names log not found")

	// ErrRootNotFound indicates the library root directory is missing at startup.
	ErrRootNotFound = errors.New("library root not found")
)
