package domain

import "errors"

var (
	// ErrInvalidURL is returned when the input URL does not match the
	// supported platform host patterns. Checked before any network call.
	ErrInvalidURL = errors.New("invalid TikTok URL")

	// ErrUpstream is returned when the mirror responds with a non-success
	// status or a malformed envelope.
	ErrUpstream = errors.New("unexpected response from upstream mirror")

	// ErrNoAssets is returned when a well-formed document yields no video
	// candidates and no album images.
	ErrNoAssets = errors.New("no video URLs found")
)
