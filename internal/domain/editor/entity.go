package editor

import (
	"slices"
	"time"

	"github.com/presencelab/presence-gateway-go/internal/domain/analysis"
	"github.com/presencelab/presence-gateway-go/internal/pkg/timefmt"
)

// Field names an editable daily duration column. The admin editor exposes
// this subset of the daily record's columns; values are the analyzer's
// column headers.
type Field string

const (
	FieldRetard       Field = "Retard"
	FieldHeuresSup50  Field = "Heures_Sup_50"
	FieldHeuresSup100 Field = "Heures_Sup_100"
	FieldTempsTravail Field = "Temps_Travail"
)

var editableFields = []Field{
	FieldRetard,
	FieldHeuresSup50,
	FieldHeuresSup100,
	FieldTempsTravail,
}

func (f Field) Editable() bool {
	return slices.Contains(editableFields, f)
}

// Edit is one accepted correction. Immutable once appended; the new value
// is stored normalized.
type Edit struct {
	Date         string    `json:"date"`
	Field        Field     `json:"field"`
	OldValue     string    `json:"old_value"`
	NewValue     string    `json:"new_value"`
	EmployeeName string    `json:"employee_name"`
	Timestamp    time.Time `json:"timestamp"`
}

// Ledger accumulates proposed corrections until they are committed as one
// batch or discarded. Insertion order is display and commit order. The
// ledger never calls out; Commit only hands the batch over.
type Ledger struct {
	edits []Edit
	now   func() time.Time
}

func NewLedger() *Ledger {
	return &Ledger{now: time.Now}
}

// Propose validates a correction against the strict edit-time format,
// looks up the currently stored value in the daily records, and appends an
// edit. A new value equal to the stored one is silently dropped to keep
// the ledger free of noise; the returned edit is nil in that case.
func (l *Ledger) Propose(daily []analysis.DailyRecord, date string, field Field, employeeName, newValue string) (*Edit, error) {
	if !field.Editable() {
		return nil, ErrUnknownField
	}
	if !timefmt.ValidEditTime(newValue) {
		return nil, ErrInvalidTimeFormat
	}

	record, ok := findRecord(daily, employeeName, date)
	if !ok {
		return nil, ErrRecordNotFound
	}

	oldValue := fieldValue(record, field)
	normalized := timefmt.Normalize(newValue)
	if normalized == timefmt.Normalize(oldValue) {
		return nil, nil
	}

	edit := Edit{
		Date:         date,
		Field:        field,
		OldValue:     oldValue,
		NewValue:     normalized,
		EmployeeName: employeeName,
		Timestamp:    l.now(),
	}
	l.edits = append(l.edits, edit)
	return &edit, nil
}

func fieldValue(r analysis.DailyRecord, f Field) string {
	switch f {
	case FieldRetard:
		return r.Retard.String()
	case FieldHeuresSup50:
		return r.HeuresSup50.String()
	case FieldHeuresSup100:
		return r.HeuresSup100.String()
	case FieldTempsTravail:
		return r.TempsTravail.String()
	}
	return ""
}

func findRecord(daily []analysis.DailyRecord, name, date string) (analysis.DailyRecord, bool) {
	for _, r := range daily {
		if r.Name == name && r.Date == date {
			return r, true
		}
	}
	return analysis.DailyRecord{}, false
}

// Edits returns the pending batch in insertion order.
func (l *Ledger) Edits() []Edit {
	return slices.Clone(l.edits)
}

func (l *Ledger) Len() int {
	return len(l.edits)
}

// Discard drops every pending edit without committing.
func (l *Ledger) Discard() {
	l.edits = nil
}
