package analysis

import (
	"encoding/json"
)

// RawDuration is a duration field as the analyzer sends it: sometimes a
// "HH:MM" string, sometimes a bare seconds count, occasionally empty. The
// raw text is kept verbatim; normalization happens at projection time.
type RawDuration string

func (d *RawDuration) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*d = RawDuration(s)
		return nil
	}
	// Numeric form: keep the number's own text.
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*d = RawDuration(n.String())
	return nil
}

func (d RawDuration) String() string {
	return string(d)
}

// Result is the analyzer's response to a submission. It is read-only for
// the gateway: replaced wholesale on every new analysis, never mutated.
// The three flat collections are optional; consumers treat a missing one
// as empty.
type Result struct {
	Status        string          `json:"status"`
	Filename      string          `json:"filename"`
	ReportID      string          `json:"report_id"`
	Analysis      Summary         `json:"analysis"`
	DetailedStats DetailedStats   `json:"detailed_stats"`
	Message       string          `json:"message"`
	Absences      []AbsenceRecord `json:"absences,omitempty"`
	Conges        []LeaveRecord   `json:"conges,omitempty"`
}

type Summary struct {
	TotalRecords int       `json:"total_records"`
	Employees    int       `json:"employees"`
	DateRange    DateRange `json:"date_range"`
}

type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type DetailedStats struct {
	TotalRetards        RawDuration     `json:"total_retards"`
	TotalHeuresSup50    RawDuration     `json:"total_heures_sup_50"`
	TotalHeuresSup100   RawDuration     `json:"total_heures_sup_100"`
	TotalTempsTravail   RawDuration     `json:"total_temps_travail"`
	MoyenneTempsTravail RawDuration     `json:"moyenne_temps_travail"`
	StatsParEmploye     []EmployeeStats `json:"stats_par_employe"`
	DailyRecords        []DailyRecord   `json:"daily_records,omitempty"`
}

// EmployeeStats is one per-employee summary row. The display name is the
// only join key the analyzer provides across collections.
type EmployeeStats struct {
	Nom             string      `json:"nom"`
	Retards         RawDuration `json:"retards"`
	HeuresSup       RawDuration `json:"heures_sup"`
	TempsTravail    RawDuration `json:"temps_travail"`
	JoursTravailles int         `json:"jours_travailles"`
}

// DailyRecord is one attendance day for one employee. Field names follow
// the analyzer's column headers.
type DailyRecord struct {
	Date           string      `json:"Date"`
	Name           string      `json:"Name"`
	Retard         RawDuration `json:"Retard"`
	DepartAnticipe RawDuration `json:"Depart_Anticipe"`
	HeuresSup50    RawDuration `json:"Heures_Sup_50"`
	HeuresSup100   RawDuration `json:"Heures_Sup_100"`
	PauseEffective RawDuration `json:"Pause_Effective"`
	TempsTravail   RawDuration `json:"Temps_Travail"`
	Penalites      RawDuration `json:"Penalites"`
}

type AbsenceRecord struct {
	Name string `json:"Name"`
	Date string `json:"Date"`
}

type LeaveRecord struct {
	Employe     string `json:"Employe"`
	Debut       string `json:"Debut"`
	Fin         string `json:"Fin"`
	Type        string `json:"Type"`
	NombreJours int    `json:"Nombre_Jours"`
}

// EmployeeRef is the synthetic identity assigned to each summary row at
// ingestion. Display names are not guaranteed unique by the analyzer, so
// the roster and drill-down routes address employees by ref; the name is
// kept as a plain attribute and as the join key into the flat collections.
type EmployeeRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
