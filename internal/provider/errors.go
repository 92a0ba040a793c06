package provider

import "errors"

var (
	// ErrNoResults indicates no provider had a matching subtitle.
	// This is informational, not a failure.
	ErrNoResults = errors.New("no matching subtitles found")

	// ErrNotVideo indicates the provider rejected the item as not a video file.
	ErrNotVideo = errors.New("not a video file")

	// ErrUnavailable indicates the provider endpoint could not be reached.
	ErrUnavailable = errors.New("provider unavailable")
)
