package exception

import "errors"

// Scheduling-exception domain errors
var (
	ErrEmployeeNotFound   = errors.New("employee not found in this session")
	ErrEntryNotFound      = errors.New("exception entry not found")
	ErrInvalidWeekday     = errors.New("weekday must be between 0 (Monday) and 6 (Sunday)")
	ErrInvalidLeaveType   = errors.New("unknown leave type")
	ErrUnknownLeaveField  = errors.New("unknown leave period field")
	ErrNoEmployees        = errors.New("no employees discovered for this session")
	ErrContractEndMissing = errors.New("contract end is not enabled for this employee")
)
