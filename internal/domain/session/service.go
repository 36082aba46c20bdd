package session

import (
	"context"
	"io"

	"github.com/presencelab/presence-gateway-go/internal/domain/exception"
)

// Service owns the full lifecycle of a viewer session: discovery,
// exception editing, analysis submission, view navigation, report
// download and the pending-edit ledger. Every method resolves the session
// by id and serializes access to it.
type Service interface {
	// Create uploads a spreadsheet, discovers its employees and opens a
	// session seeded with default rest days.
	Create(ctx context.Context, fileName string, file io.Reader) (CreateResponse, error)

	// Exception configuration
	Exceptions(sessionID string) (exception.Snapshot, error)
	ToggleRestDay(sessionID string, req RestDayRequest) (exception.Snapshot, error)
	AddHoliday(sessionID string) (exception.HolidaySnapshot, error)
	SetHolidayDate(sessionID, holidayID string, req HolidayDateRequest) error
	RemoveHoliday(sessionID, holidayID string) error
	AddLeavePeriod(sessionID string) (exception.LeavePeriodSnapshot, error)
	UpdateLeavePeriod(sessionID, periodID string, req LeaveFieldRequest) error
	RemoveLeavePeriod(sessionID, periodID string) error
	SetContractEnd(sessionID string, req ContractEndRequest) (exception.Snapshot, error)

	// Submit sends the stored file and the serialized exception payload
	// to the analyzer. Success replaces the result wholesale and
	// hard-resets navigation to the aggregate view.
	Submit(ctx context.Context, sessionID string) (SubmitResponse, error)

	// Views
	CurrentView(sessionID string) (ViewResponse, error)
	Navigate(sessionID string, req NavigateRequest) (ViewResponse, error)

	// DownloadReport proxies the generated report as opaque bytes.
	DownloadReport(ctx context.Context, sessionID string) (ReportDownload, error)

	// Pending edits
	ProposeEdit(sessionID string, req EditRequest) (EditResponse, error)
	PendingEdits(sessionID string) (LedgerResponse, error)
	CommitEdits(ctx context.Context, sessionID string) (CommitResponse, error)
	DiscardEdits(sessionID string) error
}
