package analysis

import (
	"github.com/shopspring/decimal"
)

// ========================================
// VIEW PROJECTIONS
// ========================================

// AggregateView backs the general dashboard: headline totals plus one
// chart-series point per summary row, in source order, no deduplication.
type AggregateView struct {
	TotalTempsTravail   string       `json:"total_temps_travail"`
	MoyenneTempsTravail string       `json:"moyenne_temps_travail"`
	TotalRetards        string       `json:"total_retards"`
	TotalHeuresSup50    string       `json:"total_heures_sup_50"`
	TotalHeuresSup100   string       `json:"total_heures_sup_100"`
	DateRange           DateRange    `json:"date_range"`
	Series              []ChartPoint `json:"series"`
}

// ChartPoint carries both the display string and the decimal-hour
// magnitude for each measure, derived from the same canonical value so
// tables and charts can never disagree.
type ChartPoint struct {
	EmployeeRef       string          `json:"employee_ref"`
	Name              string          `json:"name"`
	TempsTravail      string          `json:"temps_travail"`
	Retards           string          `json:"retards"`
	HeuresSup         string          `json:"heures_sup"`
	TempsTravailHours decimal.Decimal `json:"temps_travail_hours"`
	RetardsHours      decimal.Decimal `json:"retards_hours"`
	HeuresSupHours    decimal.Decimal `json:"heures_sup_hours"`
}

// RosterView backs the tabular per-employee list.
type RosterView struct {
	Rows []RosterRow `json:"rows"`
}

type RosterRow struct {
	EmployeeRef     string `json:"employee_ref"`
	Nom             string `json:"nom"`
	TempsTravail    string `json:"temps_travail"`
	Retards         string `json:"retards"`
	HeuresSup       string `json:"heures_sup"`
	JoursTravailles int    `json:"jours_travailles"`
}

// EmployeeView is the single-employee drill-down. When the requested
// employee has no summary row, Found is false and every collection is
// empty; the view renders nothing rather than failing.
type EmployeeView struct {
	EmployeeRef string      `json:"employee_ref,omitempty"`
	Name        string      `json:"name,omitempty"`
	Found       bool        `json:"found"`
	Stats       *RosterRow  `json:"stats,omitempty"`
	Daily       []DailyView `json:"daily"`
	Conges      []LeaveView `json:"conges"`
	Absences    []string    `json:"absences"`
}

type DailyView struct {
	Date           string `json:"date"`
	Retard         string `json:"retard"`
	DepartAnticipe string `json:"depart_anticipe"`
	HeuresSup50    string `json:"heures_sup_50"`
	HeuresSup100   string `json:"heures_sup_100"`
	PauseEffective string `json:"pause_effective"`
	TempsTravail   string `json:"temps_travail"`
	Penalites      string `json:"penalites"`
}

type LeaveView struct {
	Debut       string `json:"debut"`
	Fin         string `json:"fin"`
	Type        string `json:"type"`
	NombreJours int    `json:"nombre_jours"`
}
