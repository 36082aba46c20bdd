package analysis

import "errors"

// Analysis domain errors
var (
	ErrNoResult = errors.New("no analysis result available for this session")
)
