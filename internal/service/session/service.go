package session

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/presencelab/presence-gateway-go/internal/domain/analysis"
	"github.com/presencelab/presence-gateway-go/internal/domain/editor"
	"github.com/presencelab/presence-gateway-go/internal/domain/exception"
	"github.com/presencelab/presence-gateway-go/internal/domain/session"
	"github.com/presencelab/presence-gateway-go/internal/pkg/analyzer"
	"github.com/presencelab/presence-gateway-go/internal/pkg/sessionstore"
)

// Status lines shown to the user. Boundary failures never propagate as
// structured errors into the view payload; they collapse into one of
// these.
const (
	statusAnalyzed    = "analysis completed successfully"
	statusUnreachable = "connection to analyzer failed"
	statusRejected    = "analyzer error: %s"
)

type SessionServiceImpl struct {
	store     *sessionstore.Store
	client    *analyzer.Client
	projector analysis.ProjectionService
}

func NewSessionService(store *sessionstore.Store, client *analyzer.Client, projector analysis.ProjectionService) session.Service {
	return &SessionServiceImpl{
		store:     store,
		client:    client,
		projector: projector,
	}
}

// Create implements session.Service.
func (s *SessionServiceImpl) Create(ctx context.Context, fileName string, file io.Reader) (session.CreateResponse, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return session.CreateResponse{}, fmt.Errorf("read upload: %w", err)
	}

	employees, err := s.client.Employees(ctx, fileName, bytes.NewReader(data))
	if err != nil {
		return session.CreateResponse{}, err
	}

	sess := session.New(fileName, data, employees)
	s.store.Put(sess)
	slog.Info("session created", "session_id", sess.ID, "file", fileName, "employees", len(employees))

	return session.CreateResponse{
		SessionID:  sess.ID,
		FileName:   fileName,
		Employees:  employees,
		Exceptions: sess.Exceptions.Snapshot(),
	}, nil
}

func (s *SessionServiceImpl) acquire(sessionID string) (*session.Session, func(), error) {
	sess, err := s.store.Get(sessionID)
	if err != nil {
		return nil, nil, err
	}
	sess.Lock()
	sess.Touch()
	return sess, sess.Unlock, nil
}

// Exceptions implements session.Service.
func (s *SessionServiceImpl) Exceptions(sessionID string) (exception.Snapshot, error) {
	sess, release, err := s.acquire(sessionID)
	if err != nil {
		return exception.Snapshot{}, err
	}
	defer release()
	return sess.Exceptions.Snapshot(), nil
}

// ToggleRestDay implements session.Service.
func (s *SessionServiceImpl) ToggleRestDay(sessionID string, req session.RestDayRequest) (exception.Snapshot, error) {
	if err := req.Validate(); err != nil {
		return exception.Snapshot{}, err
	}
	sess, release, err := s.acquire(sessionID)
	if err != nil {
		return exception.Snapshot{}, err
	}
	defer release()

	if err := sess.Exceptions.ToggleRestDay(req.EmployeeName, req.Day, req.Enabled); err != nil {
		return exception.Snapshot{}, err
	}
	return sess.Exceptions.Snapshot(), nil
}

// AddHoliday implements session.Service.
func (s *SessionServiceImpl) AddHoliday(sessionID string) (exception.HolidaySnapshot, error) {
	sess, release, err := s.acquire(sessionID)
	if err != nil {
		return exception.HolidaySnapshot{}, err
	}
	defer release()

	h := sess.Exceptions.AddHoliday()
	return exception.HolidaySnapshot{ID: h.ID, Date: h.Date}, nil
}

// SetHolidayDate implements session.Service.
func (s *SessionServiceImpl) SetHolidayDate(sessionID, holidayID string, req session.HolidayDateRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	sess, release, err := s.acquire(sessionID)
	if err != nil {
		return err
	}
	defer release()
	return sess.Exceptions.SetHolidayDate(holidayID, req.Date)
}

// RemoveHoliday implements session.Service.
func (s *SessionServiceImpl) RemoveHoliday(sessionID, holidayID string) error {
	sess, release, err := s.acquire(sessionID)
	if err != nil {
		return err
	}
	defer release()
	return sess.Exceptions.RemoveHoliday(holidayID)
}

// AddLeavePeriod implements session.Service.
func (s *SessionServiceImpl) AddLeavePeriod(sessionID string) (exception.LeavePeriodSnapshot, error) {
	sess, release, err := s.acquire(sessionID)
	if err != nil {
		return exception.LeavePeriodSnapshot{}, err
	}
	defer release()

	p, err := sess.Exceptions.AddLeavePeriod()
	if err != nil {
		return exception.LeavePeriodSnapshot{}, err
	}
	return exception.LeavePeriodSnapshot{
		ID:           p.ID,
		EmployeeName: p.EmployeeName,
		StartDate:    p.StartDate,
		EndDate:      p.EndDate,
		LeaveType:    string(p.LeaveType),
	}, nil
}

// UpdateLeavePeriod implements session.Service.
func (s *SessionServiceImpl) UpdateLeavePeriod(sessionID, periodID string, req session.LeaveFieldRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	sess, release, err := s.acquire(sessionID)
	if err != nil {
		return err
	}
	defer release()
	return sess.Exceptions.UpdateLeavePeriod(periodID, req.Field, req.Value)
}

// RemoveLeavePeriod implements session.Service.
func (s *SessionServiceImpl) RemoveLeavePeriod(sessionID, periodID string) error {
	sess, release, err := s.acquire(sessionID)
	if err != nil {
		return err
	}
	defer release()
	return sess.Exceptions.RemoveLeavePeriod(periodID)
}

// SetContractEnd implements session.Service.
func (s *SessionServiceImpl) SetContractEnd(sessionID string, req session.ContractEndRequest) (exception.Snapshot, error) {
	if err := req.Validate(); err != nil {
		return exception.Snapshot{}, err
	}
	sess, release, err := s.acquire(sessionID)
	if err != nil {
		return exception.Snapshot{}, err
	}
	defer release()

	if err := sess.Exceptions.ToggleContractEnd(req.EmployeeName, req.Enabled); err != nil {
		return exception.Snapshot{}, err
	}
	if req.Enabled && req.Date != nil {
		if err := sess.Exceptions.SetContractEnd(req.EmployeeName, *req.Date); err != nil {
			return exception.Snapshot{}, err
		}
	}
	return sess.Exceptions.Snapshot(), nil
}

// Submit implements session.Service. The previous result, if any, is
// overwritten wholesale; concurrent submissions are not deduplicated and
// the last response received wins.
func (s *SessionServiceImpl) Submit(ctx context.Context, sessionID string) (session.SubmitResponse, error) {
	sess, release, err := s.acquire(sessionID)
	if err != nil {
		return session.SubmitResponse{}, err
	}
	fileName := sess.FileName
	fileData := sess.FileData
	payload := sess.Exceptions.Payload()
	release()

	// The analyzer call runs without the session lock held; other
	// operations on the session stay responsive while it computes.
	result, err := s.client.Analyze(ctx, fileName, bytes.NewReader(fileData), payload)

	sess, release2, lockErr := s.acquire(sessionID)
	if lockErr != nil {
		return session.SubmitResponse{}, lockErr
	}
	defer release2()

	if err != nil {
		sess.Status = statusLine(err)
		slog.Error("analysis submission failed", "session_id", sessionID, "error", err)
		return session.SubmitResponse{}, err
	}

	sess.SetResult(result)
	sess.Status = statusAnalyzed
	slog.Info("analysis result installed",
		"session_id", sessionID,
		"report_id", result.ReportID,
		"employees", len(result.DetailedStats.StatsParEmploye))

	return session.SubmitResponse{
		Status:   result.Status,
		ReportID: result.ReportID,
		Message:  result.Message,
		View:     s.viewLocked(sess),
	}, nil
}

// CurrentView implements session.Service.
func (s *SessionServiceImpl) CurrentView(sessionID string) (session.ViewResponse, error) {
	sess, release, err := s.acquire(sessionID)
	if err != nil {
		return session.ViewResponse{}, err
	}
	defer release()

	if sess.Result == nil {
		return session.ViewResponse{}, analysis.ErrNoResult
	}
	return s.viewLocked(sess), nil
}

// Navigate implements session.Service.
func (s *SessionServiceImpl) Navigate(sessionID string, req session.NavigateRequest) (session.ViewResponse, error) {
	sess, release, err := s.acquire(sessionID)
	if err != nil {
		return session.ViewResponse{}, err
	}
	defer release()

	if sess.Result == nil {
		return session.ViewResponse{}, analysis.ErrNoResult
	}
	if err := sess.Navigate(session.View(req.View), req.EmployeeRef); err != nil {
		return session.ViewResponse{}, err
	}
	return s.viewLocked(sess), nil
}

// viewLocked projects the session's current view. Callers hold the
// session lock.
func (s *SessionServiceImpl) viewLocked(sess *session.Session) session.ViewResponse {
	resp := session.ViewResponse{View: sess.View(), Status: sess.Status}
	switch sess.View() {
	case session.ViewAggregate:
		view := s.projector.Aggregate(sess.Result, sess.Refs)
		resp.Aggregate = &view
	case session.ViewRoster:
		view := s.projector.Roster(sess.Result, sess.Refs)
		resp.Roster = &view
	case session.ViewIndividual:
		// An unresolvable selection projects an empty drill-down; the
		// view renders nothing rather than failing.
		ref, _ := sess.RefByID(sess.SelectedRef())
		view := s.projector.Employee(sess.Result, ref)
		resp.Individual = &view
	}
	return resp
}

// DownloadReport implements session.Service.
func (s *SessionServiceImpl) DownloadReport(ctx context.Context, sessionID string) (session.ReportDownload, error) {
	sess, release, err := s.acquire(sessionID)
	if err != nil {
		return session.ReportDownload{}, err
	}
	if sess.Result == nil {
		release()
		return session.ReportDownload{}, analysis.ErrNoResult
	}
	reportID := sess.Result.ReportID
	release()

	body, err := s.client.Download(ctx, reportID)
	if err != nil {
		return session.ReportDownload{}, err
	}
	return session.ReportDownload{
		FileName: fmt.Sprintf("rapport_presence_%s.xlsx", time.Now().Format("2006-01-02")),
		Body:     body,
	}, nil
}

// ProposeEdit implements session.Service.
func (s *SessionServiceImpl) ProposeEdit(sessionID string, req session.EditRequest) (session.EditResponse, error) {
	if err := req.Validate(); err != nil {
		return session.EditResponse{}, err
	}
	sess, release, err := s.acquire(sessionID)
	if err != nil {
		return session.EditResponse{}, err
	}
	defer release()

	if sess.Result == nil {
		return session.EditResponse{}, analysis.ErrNoResult
	}

	edit, err := sess.Ledger.Propose(
		sess.Result.DetailedStats.DailyRecords,
		req.Date,
		editor.Field(req.Field),
		req.EmployeeName,
		req.NewValue,
	)
	if err != nil {
		return session.EditResponse{}, err
	}
	return session.EditResponse{
		Accepted: edit != nil,
		Edit:     edit,
		Pending:  sess.Ledger.Len(),
	}, nil
}

// PendingEdits implements session.Service.
func (s *SessionServiceImpl) PendingEdits(sessionID string) (session.LedgerResponse, error) {
	sess, release, err := s.acquire(sessionID)
	if err != nil {
		return session.LedgerResponse{}, err
	}
	defer release()
	edits := sess.Ledger.Edits()
	return session.LedgerResponse{Edits: edits, Pending: len(edits)}, nil
}

// CommitEdits implements session.Service. The batch leaves the core here
// and nowhere else; on success the ledger is cleared.
func (s *SessionServiceImpl) CommitEdits(ctx context.Context, sessionID string) (session.CommitResponse, error) {
	sess, release, err := s.acquire(sessionID)
	if err != nil {
		return session.CommitResponse{}, err
	}
	edits := sess.Ledger.Edits()
	release()

	if len(edits) == 0 {
		return session.CommitResponse{Committed: 0}, nil
	}

	for _, commit := range editor.GroupForCommit(edits) {
		if err := s.client.SaveModifications(ctx, commit); err != nil {
			sess, release2, lockErr := s.acquire(sessionID)
			if lockErr == nil {
				sess.Status = statusLine(err)
				release2()
			}
			return session.CommitResponse{}, err
		}
	}

	sess, release3, err := s.acquire(sessionID)
	if err != nil {
		return session.CommitResponse{}, err
	}
	defer release3()
	sess.Ledger.Discard()
	slog.Info("edits committed", "session_id", sessionID, "count", len(edits))
	return session.CommitResponse{Committed: len(edits)}, nil
}

// DiscardEdits implements session.Service.
func (s *SessionServiceImpl) DiscardEdits(sessionID string) error {
	sess, release, err := s.acquire(sessionID)
	if err != nil {
		return err
	}
	defer release()
	sess.Ledger.Discard()
	return nil
}

// statusLine collapses a boundary failure into the single user-visible
// status string.
func statusLine(err error) string {
	var apiErr *analyzer.APIError
	if errors.As(err, &apiErr) {
		return fmt.Sprintf(statusRejected, apiErr.Detail)
	}
	return statusUnreachable
}
