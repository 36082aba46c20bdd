package response

import (
	"errors"
	"net/http"

	"github.com/presencelab/presence-gateway-go/internal/domain/analysis"
	"github.com/presencelab/presence-gateway-go/internal/domain/editor"
	"github.com/presencelab/presence-gateway-go/internal/domain/exception"
	"github.com/presencelab/presence-gateway-go/internal/domain/session"
	"github.com/presencelab/presence-gateway-go/internal/pkg/analyzer"
	"github.com/presencelab/presence-gateway-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Analyzer boundary errors
	var apiErr *analyzer.APIError
	if errors.As(err, &apiErr) {
		BadGateway(w, "Analyzer error: "+apiErr.Detail)
		return
	}
	if errors.Is(err, analyzer.ErrUnreachable) {
		ServiceUnavailable(w, "Analyzer service unreachable")
		return
	}

	switch {
	// Session domain errors
	case errors.Is(err, session.ErrSessionNotFound):
		NotFound(w, "Session not found")
	case errors.Is(err, session.ErrInvalidView):
		BadRequest(w, "Unknown view", nil)
	case errors.Is(err, session.ErrInvalidTransition):
		Conflict(w, "Individual view is only reachable from the roster")
	case errors.Is(err, session.ErrSelectionForbidden):
		BadRequest(w, "Employee selection is only valid for the individual view", nil)

	// Exception domain errors
	case errors.Is(err, exception.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, exception.ErrEntryNotFound):
		NotFound(w, "Entry not found")
	case errors.Is(err, exception.ErrInvalidWeekday):
		BadRequest(w, "Weekday must be between 0 and 6", nil)
	case errors.Is(err, exception.ErrInvalidLeaveType):
		BadRequest(w, "Unknown leave type", nil)
	case errors.Is(err, exception.ErrUnknownLeaveField):
		BadRequest(w, "Unknown leave period field", nil)
	case errors.Is(err, exception.ErrNoEmployees):
		Conflict(w, "No employees discovered yet")
	case errors.Is(err, exception.ErrContractEndMissing):
		Conflict(w, "Contract end is not enabled for this employee")

	// Analysis domain errors
	case errors.Is(err, analysis.ErrNoResult):
		Conflict(w, "No analysis result available yet")

	// Editor domain errors
	case errors.Is(err, editor.ErrInvalidTimeFormat):
		BadRequest(w, "Time must be in HH:MM format", nil)
	case errors.Is(err, editor.ErrUnknownField):
		BadRequest(w, "Field is not editable", nil)
	case errors.Is(err, editor.ErrRecordNotFound):
		NotFound(w, "No attendance record for that employee and date")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
