package pipeline

import "errors"

var (
	// ErrNoRecords is returned when a file has no header row
	ErrNoRecords = errors.New("no records in complaint file")
	// ErrUnknownView is returned for a report view name that does not exist
	ErrUnknownView = errors.New("unknown report view")
	// ErrUnsupportedFormat is returned for an export format that is not supported
	ErrUnsupportedFormat = errors.New("unsupported export format")
)
