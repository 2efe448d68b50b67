package services

import "errors"

var (
	// ErrEmptyQuery is returned when a search query is blank after trimming.
	ErrEmptyQuery = errors.New("search query is empty")

	// ErrUpstreamUnavailable is returned when the similarity provider cannot
	// be reached or answers with something unparsable.
	ErrUpstreamUnavailable = errors.New("similarity provider unavailable")

	// ErrTimeout is returned when the request budget ran out before the
	// pipeline finished. All in-flight sub-operations are cancelled through
	// the request context.
	ErrTimeout = errors.New("request timed out")
)
