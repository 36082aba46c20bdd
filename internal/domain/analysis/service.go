package analysis

// ProjectionService derives per-view data from an analysis result. All
// projections are pure reads over the session's current result.
type ProjectionService interface {
	// Aggregate builds the chart-ready general view. Output cardinality
	// equals the number of summary rows.
	Aggregate(result *Result, refs []EmployeeRef) AggregateView

	// Roster builds the tabular per-employee list.
	Roster(result *Result, refs []EmployeeRef) RosterView

	// Employee builds the drill-down for one display name: the matching
	// summary row plus the daily, leave and absence rows filtered to that
	// name by exact string equality, in source order. An unknown name
	// yields an empty projection, not an error.
	Employee(result *Result, ref EmployeeRef) EmployeeView
}
