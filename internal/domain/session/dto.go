package session

import (
	"io"

	"github.com/presencelab/presence-gateway-go/internal/domain/analysis"
	"github.com/presencelab/presence-gateway-go/internal/domain/editor"
	"github.com/presencelab/presence-gateway-go/internal/domain/exception"
	"github.com/presencelab/presence-gateway-go/internal/pkg/validator"
)

// ========================================
// SESSION DTOs
// ========================================

type CreateResponse struct {
	SessionID  string             `json:"session_id"`
	FileName   string             `json:"file_name"`
	Employees  []string           `json:"employees"`
	Exceptions exception.Snapshot `json:"exceptions"`
}

type RestDayRequest struct {
	EmployeeName string `json:"employee_name"`
	Day          int    `json:"day"`
	Enabled      bool   `json:"enabled"`
}

func (r *RestDayRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.EmployeeName) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_name",
			Message: "employee_name is required",
		})
	}
	if r.Day < 0 || r.Day > 6 {
		errs = append(errs, validator.ValidationError{
			Field:   "day",
			Message: "day must be between 0 (Monday) and 6 (Sunday)",
		})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type HolidayDateRequest struct {
	Date string `json:"date"`
}

func (r *HolidayDateRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.Date != "" {
		if _, ok := validator.IsValidDate(r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveFieldRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

var leavePeriodFields = []string{"employeeName", "startDate", "endDate", "leaveType"}

func (r *LeaveFieldRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Field) {
		errs = append(errs, validator.ValidationError{
			Field:   "field",
			Message: "field is required",
		})
	} else if !validator.IsInSlice(r.Field, leavePeriodFields) {
		errs = append(errs, validator.ValidationError{
			Field:   "field",
			Message: "field must be one of employeeName, startDate, endDate, leaveType",
		})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ContractEndRequest struct {
	EmployeeName string  `json:"employee_name"`
	Enabled      bool    `json:"enabled"`
	Date         *string `json:"date,omitempty"`
}

func (r *ContractEndRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.EmployeeName) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_name",
			Message: "employee_name is required",
		})
	}
	if r.Date != nil && *r.Date != "" {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========================================
// VIEW DTOs
// ========================================

type NavigateRequest struct {
	View        string `json:"view"`
	EmployeeRef string `json:"employee_ref,omitempty"`
}

// ViewResponse carries the current navigation state plus exactly one
// populated projection, matching the view tag.
type ViewResponse struct {
	View       View                    `json:"view"`
	Status     string                  `json:"status,omitempty"`
	Aggregate  *analysis.AggregateView `json:"aggregate,omitempty"`
	Roster     *analysis.RosterView    `json:"roster,omitempty"`
	Individual *analysis.EmployeeView  `json:"individual,omitempty"`
}

type SubmitResponse struct {
	Status   string `json:"status"`
	ReportID string `json:"report_id"`
	Message  string `json:"message,omitempty"`
	View     ViewResponse
}

// ========================================
// EDIT DTOs
// ========================================

type EditRequest struct {
	Date         string `json:"date"`
	Field        string `json:"field"`
	EmployeeName string `json:"employee_name"`
	NewValue     string `json:"new_value"`
}

func (r *EditRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	}
	if validator.IsEmpty(r.Field) {
		errs = append(errs, validator.ValidationError{
			Field:   "field",
			Message: "field is required",
		})
	}
	if validator.IsEmpty(r.EmployeeName) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_name",
			Message: "employee_name is required",
		})
	}
	if validator.IsEmpty(r.NewValue) {
		errs = append(errs, validator.ValidationError{
			Field:   "new_value",
			Message: "new_value is required",
		})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// EditResponse reports what the ledger did with a proposal. Accepted is
// false for the silent no-op case where the new value equals the stored
// one.
type EditResponse struct {
	Accepted bool         `json:"accepted"`
	Edit     *editor.Edit `json:"edit,omitempty"`
	Pending  int          `json:"pending"`
}

type LedgerResponse struct {
	Edits   []editor.Edit `json:"edits"`
	Pending int           `json:"pending"`
}

type CommitResponse struct {
	Committed int `json:"committed"`
}

// ReportDownload is the proxied report artifact. FileName is the
// date-stamped name suggested for local save; the caller owns closing the
// body.
type ReportDownload struct {
	FileName string
	Body     io.ReadCloser
}
