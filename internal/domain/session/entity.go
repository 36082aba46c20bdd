package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/presencelab/presence-gateway-go/internal/domain/analysis"
	"github.com/presencelab/presence-gateway-go/internal/domain/editor"
	"github.com/presencelab/presence-gateway-go/internal/domain/exception"
)

// View tags which dashboard screen a session is showing.
type View string

const (
	ViewAggregate  View = "aggregate"
	ViewRoster     View = "roster"
	ViewIndividual View = "individual"
)

func (v View) Valid() bool {
	switch v {
	case ViewAggregate, ViewRoster, ViewIndividual:
		return true
	}
	return false
}

// Session is one viewer session: the uploaded file, the exception
// configuration under construction, the latest analysis result, the
// navigation state and the pending-edit ledger. All fields are guarded by
// the session mutex; callers go through the session service, which locks
// around every operation. Nothing survives the session.
type Session struct {
	ID        string
	CreatedAt time.Time
	LastSeen  time.Time

	FileName string
	FileData []byte

	Exceptions *exception.Config
	Result     *analysis.Result
	Refs       []analysis.EmployeeRef
	Ledger     *editor.Ledger

	// Status is the single user-visible status line; every boundary
	// failure collapses into it.
	Status string

	view     View
	selected string // employee ref id, individual view only

	mu sync.Mutex
}

// New creates a session around an uploaded file and its discovered
// employee list.
func New(fileName string, fileData []byte, employees []string) *Session {
	now := time.Now()
	return &Session{
		ID:         uuid.NewString(),
		CreatedAt:  now,
		LastSeen:   now,
		FileName:   fileName,
		FileData:   fileData,
		Exceptions: exception.NewConfig(employees),
		Ledger:     editor.NewLedger(),
		view:       ViewAggregate,
	}
}

func (s *Session) Lock()   { s.mu.Lock() }
func (s *Session) Unlock() { s.mu.Unlock() }

func (s *Session) View() View {
	return s.view
}

// SelectedRef returns the employee ref id selected for the individual
// view; empty in every other view.
func (s *Session) SelectedRef() string {
	return s.selected
}

// Navigate applies one transition of the view machine:
//
//	aggregate <-> roster        free navigation
//	roster -> individual(ref)   records the selection
//	individual -> roster        clears the selection
//	individual -> aggregate     clears the selection
//
// There is no aggregate -> individual shortcut; the drill-down is only
// reachable through the roster. A ref that matches nothing is accepted:
// the projection for it renders empty rather than failing.
func (s *Session) Navigate(target View, ref string) error {
	if !target.Valid() {
		return ErrInvalidView
	}
	if target != ViewIndividual && ref != "" {
		return ErrSelectionForbidden
	}
	if target == ViewIndividual && s.view != ViewRoster {
		return ErrInvalidTransition
	}

	s.view = target
	if target == ViewIndividual {
		s.selected = ref
	} else {
		s.selected = ""
	}
	return nil
}

// SetResult installs a new analysis result wholesale and hard-resets
// navigation to the aggregate view with no selection. Pending edits are
// discarded with the records they referenced.
func (s *Session) SetResult(result *analysis.Result) {
	s.Result = result
	s.Refs = make([]analysis.EmployeeRef, 0, len(result.DetailedStats.StatsParEmploye))
	for _, row := range result.DetailedStats.StatsParEmploye {
		s.Refs = append(s.Refs, analysis.EmployeeRef{ID: uuid.NewString(), Name: row.Nom})
	}
	s.view = ViewAggregate
	s.selected = ""
	s.Ledger.Discard()
}

// RefByID resolves a ref id against the current result's roster.
func (s *Session) RefByID(id string) (analysis.EmployeeRef, bool) {
	for _, ref := range s.Refs {
		if ref.ID == id {
			return ref, true
		}
	}
	return analysis.EmployeeRef{}, false
}

func (s *Session) Touch() {
	s.LastSeen = time.Now()
}
