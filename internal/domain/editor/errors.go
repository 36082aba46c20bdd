package editor

import "errors"

// Pending-edit domain errors
var (
	ErrInvalidTimeFormat = errors.New("invalid time format, expected HH:MM")
	ErrUnknownField      = errors.New("field is not editable")
	ErrRecordNotFound    = errors.New("no daily record for this employee and date")
)
