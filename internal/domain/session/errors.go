package session

import "errors"

// Session domain errors
var (
	ErrSessionNotFound    = errors.New("session not found or expired")
	ErrInvalidView        = errors.New("unknown view")
	ErrInvalidTransition  = errors.New("invalid view transition")
	ErrSelectionForbidden = errors.New("employee selection is only valid for the individual view")
)
