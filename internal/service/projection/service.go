package projection

import (
	"github.com/presencelab/presence-gateway-go/internal/domain/analysis"
	"github.com/presencelab/presence-gateway-go/internal/pkg/timefmt"
)

type projectionServiceImpl struct{}

func NewProjectionService() analysis.ProjectionService {
	return &projectionServiceImpl{}
}

// Aggregate implements analysis.ProjectionService. One series point per
// summary row, source order, no deduplication: duplicate names chart as
// separate bars. The decimal magnitudes are derived from the normalized
// strings so chart and table always agree.
func (p *projectionServiceImpl) Aggregate(result *analysis.Result, refs []analysis.EmployeeRef) analysis.AggregateView {
	stats := result.DetailedStats
	view := analysis.AggregateView{
		TotalTempsTravail:   timefmt.Normalize(stats.TotalTempsTravail.String()),
		MoyenneTempsTravail: timefmt.Normalize(stats.MoyenneTempsTravail.String()),
		TotalRetards:        timefmt.Normalize(stats.TotalRetards.String()),
		TotalHeuresSup50:    timefmt.Normalize(stats.TotalHeuresSup50.String()),
		TotalHeuresSup100:   timefmt.Normalize(stats.TotalHeuresSup100.String()),
		DateRange:           result.Analysis.DateRange,
		Series:              make([]analysis.ChartPoint, 0, len(stats.StatsParEmploye)),
	}

	for i, row := range stats.StatsParEmploye {
		point := analysis.ChartPoint{
			Name:         row.Nom,
			TempsTravail: timefmt.Normalize(row.TempsTravail.String()),
			Retards:      timefmt.Normalize(row.Retards.String()),
			HeuresSup:    timefmt.Normalize(row.HeuresSup.String()),
		}
		if i < len(refs) {
			point.EmployeeRef = refs[i].ID
		}
		point.TempsTravailHours = timefmt.Hours(point.TempsTravail)
		point.RetardsHours = timefmt.Hours(point.Retards)
		point.HeuresSupHours = timefmt.Hours(point.HeuresSup)
		view.Series = append(view.Series, point)
	}
	return view
}

// Roster implements analysis.ProjectionService.
func (p *projectionServiceImpl) Roster(result *analysis.Result, refs []analysis.EmployeeRef) analysis.RosterView {
	rows := result.DetailedStats.StatsParEmploye
	view := analysis.RosterView{Rows: make([]analysis.RosterRow, 0, len(rows))}
	for i, row := range rows {
		out := rosterRow(row)
		if i < len(refs) {
			out.EmployeeRef = refs[i].ID
		}
		view.Rows = append(view.Rows, out)
	}
	return view
}

// Employee implements analysis.ProjectionService. Every collection is
// filtered by exact, case-sensitive equality on the display name, keeping
// source order. With no matching summary row the projection is empty and
// Found is false; the caller renders nothing.
func (p *projectionServiceImpl) Employee(result *analysis.Result, ref analysis.EmployeeRef) analysis.EmployeeView {
	view := analysis.EmployeeView{
		EmployeeRef: ref.ID,
		Name:        ref.Name,
		Daily:       []analysis.DailyView{},
		Conges:      []analysis.LeaveView{},
		Absences:    []string{},
	}

	for _, row := range result.DetailedStats.StatsParEmploye {
		if row.Nom == ref.Name {
			stats := rosterRow(row)
			stats.EmployeeRef = ref.ID
			view.Stats = &stats
			view.Found = true
			break
		}
	}
	if !view.Found {
		return view
	}

	for _, rec := range result.DetailedStats.DailyRecords {
		if rec.Name != ref.Name {
			continue
		}
		view.Daily = append(view.Daily, analysis.DailyView{
			Date:           rec.Date,
			Retard:         timefmt.Normalize(rec.Retard.String()),
			DepartAnticipe: timefmt.Normalize(rec.DepartAnticipe.String()),
			HeuresSup50:    timefmt.Normalize(rec.HeuresSup50.String()),
			HeuresSup100:   timefmt.Normalize(rec.HeuresSup100.String()),
			PauseEffective: timefmt.Normalize(rec.PauseEffective.String()),
			TempsTravail:   timefmt.Normalize(rec.TempsTravail.String()),
			Penalites:      timefmt.Normalize(rec.Penalites.String()),
		})
	}

	for _, leave := range result.Conges {
		if leave.Employe != ref.Name {
			continue
		}
		view.Conges = append(view.Conges, analysis.LeaveView{
			Debut:       leave.Debut,
			Fin:         leave.Fin,
			Type:        leave.Type,
			NombreJours: leave.NombreJours,
		})
	}

	for _, absence := range result.Absences {
		if absence.Name == ref.Name {
			view.Absences = append(view.Absences, absence.Date)
		}
	}

	return view
}

func rosterRow(row analysis.EmployeeStats) analysis.RosterRow {
	return analysis.RosterRow{
		Nom:             row.Nom,
		TempsTravail:    timefmt.Normalize(row.TempsTravail.String()),
		Retards:         timefmt.Normalize(row.Retards.String()),
		HeuresSup:       timefmt.Normalize(row.HeuresSup.String()),
		JoursTravailles: row.JoursTravailles,
	}
}
