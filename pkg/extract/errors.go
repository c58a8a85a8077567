// Package extract turns fiction and chapter pages into typed records.
package extract

import "errors"

var (
	ErrMarkerNotFound     = errors.New("marker not found")
	ErrUnbalancedBrackets = errors.New("unbalanced brackets")
	ErrMissingField       = errors.New("missing field")
	ErrMalformedTimestamp = errors.New("malformed timestamp")

	// ErrPathNotFound is returned when an index path leaves the document.
	ErrPathNotFound = errors.New("index path not found")
)
