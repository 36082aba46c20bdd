package exception

import (
	"slices"

	"github.com/google/uuid"
)

// LeaveType enumerates the leave categories the analyzer understands. The
// values are the analyzer's wire labels and must not be translated.
type LeaveType string

const (
	LeaveAnnual      LeaveType = "Congé annuel"
	LeaveSick        LeaveType = "Congé maladie"
	LeaveExceptional LeaveType = "Congé exceptionnel"
	LeaveUnpaid      LeaveType = "Congé sans solde"
	LeaveParental    LeaveType = "Congé maternité/paternité"
)

var leaveTypes = []LeaveType{
	LeaveAnnual,
	LeaveSick,
	LeaveExceptional,
	LeaveUnpaid,
	LeaveParental,
}

func (t LeaveType) Valid() bool {
	return slices.Contains(leaveTypes, t)
}

// DefaultRestDays is applied to every employee when a configuration is
// created: Friday and Saturday (0 = Monday).
var DefaultRestDays = []int{4, 5}

// RestDays holds the recurring non-working weekdays for one employee.
type RestDays struct {
	EmployeeName string
	Days         []int
}

// Holiday is a calendar date off for everyone. Entries carry a generated key
// so removal and updates address a stable identity instead of a list index.
// Duplicate dates are deliberately not deduplicated.
type Holiday struct {
	ID   string
	Date string
}

// LeavePeriod is an inclusive date range of planned leave for one employee.
// Start/end ordering is not checked here; the analyzer is the authority on
// malformed ranges.
type LeavePeriod struct {
	ID           string
	EmployeeName string
	StartDate    string
	EndDate      string
	LeaveType    LeaveType
}

// Config is the per-session scheduling-exception model. It lives only for
// the analysis request it is attached to and is serialized verbatim into
// the request payload on submission.
type Config struct {
	employees    []string
	restDays     []RestDays
	holidays     []Holiday
	leavePeriods []LeavePeriod
	contractEnds map[string]string
}

// NewConfig seeds a configuration from the discovered employee list, in
// discovery order, with default rest days for everyone.
func NewConfig(employees []string) *Config {
	cfg := &Config{
		employees:    slices.Clone(employees),
		restDays:     make([]RestDays, 0, len(employees)),
		contractEnds: make(map[string]string),
	}
	for _, name := range employees {
		cfg.restDays = append(cfg.restDays, RestDays{
			EmployeeName: name,
			Days:         slices.Clone(DefaultRestDays),
		})
	}
	return cfg
}

func (c *Config) Employees() []string {
	return slices.Clone(c.employees)
}

// ToggleRestDay adds or removes one weekday from one employee's rest-day
// set. Toggling to the current state is a no-op; other employees' entries
// are never touched.
func (c *Config) ToggleRestDay(employeeName string, day int, enabled bool) error {
	if day < 0 || day > 6 {
		return ErrInvalidWeekday
	}
	for i := range c.restDays {
		if c.restDays[i].EmployeeName != employeeName {
			continue
		}
		has := slices.Contains(c.restDays[i].Days, day)
		switch {
		case enabled && !has:
			c.restDays[i].Days = append(c.restDays[i].Days, day)
			slices.Sort(c.restDays[i].Days)
		case !enabled && has:
			c.restDays[i].Days = slices.DeleteFunc(c.restDays[i].Days, func(d int) bool {
				return d == day
			})
		}
		return nil
	}
	return ErrEmployeeNotFound
}

func (c *Config) RestDays() []RestDays {
	out := make([]RestDays, len(c.restDays))
	for i, rd := range c.restDays {
		out[i] = RestDays{EmployeeName: rd.EmployeeName, Days: slices.Clone(rd.Days)}
	}
	return out
}

// AddHoliday appends an empty-dated holiday entry and returns it.
func (c *Config) AddHoliday() Holiday {
	h := Holiday{ID: uuid.NewString()}
	c.holidays = append(c.holidays, h)
	return h
}

func (c *Config) RemoveHoliday(id string) error {
	before := len(c.holidays)
	c.holidays = slices.DeleteFunc(c.holidays, func(h Holiday) bool { return h.ID == id })
	if len(c.holidays) == before {
		return ErrEntryNotFound
	}
	return nil
}

func (c *Config) SetHolidayDate(id, date string) error {
	for i := range c.holidays {
		if c.holidays[i].ID == id {
			c.holidays[i].Date = date
			return nil
		}
	}
	return ErrEntryNotFound
}

func (c *Config) Holidays() []Holiday {
	return slices.Clone(c.holidays)
}

// AddLeavePeriod appends a period defaulting to the first discovered
// employee and annual leave, and returns it.
func (c *Config) AddLeavePeriod() (LeavePeriod, error) {
	if len(c.employees) == 0 {
		return LeavePeriod{}, ErrNoEmployees
	}
	p := LeavePeriod{
		ID:           uuid.NewString(),
		EmployeeName: c.employees[0],
		LeaveType:    LeaveAnnual,
	}
	c.leavePeriods = append(c.leavePeriods, p)
	return p, nil
}

func (c *Config) RemoveLeavePeriod(id string) error {
	before := len(c.leavePeriods)
	c.leavePeriods = slices.DeleteFunc(c.leavePeriods, func(p LeavePeriod) bool { return p.ID == id })
	if len(c.leavePeriods) == before {
		return ErrEntryNotFound
	}
	return nil
}

// UpdateLeavePeriod sets one field of one period. Field names follow the
// request payload keys.
func (c *Config) UpdateLeavePeriod(id, field, value string) error {
	for i := range c.leavePeriods {
		if c.leavePeriods[i].ID != id {
			continue
		}
		switch field {
		case "employeeName":
			c.leavePeriods[i].EmployeeName = value
		case "startDate":
			c.leavePeriods[i].StartDate = value
		case "endDate":
			c.leavePeriods[i].EndDate = value
		case "leaveType":
			lt := LeaveType(value)
			if !lt.Valid() {
				return ErrInvalidLeaveType
			}
			c.leavePeriods[i].LeaveType = lt
		default:
			return ErrUnknownLeaveField
		}
		return nil
	}
	return ErrEntryNotFound
}

func (c *Config) LeavePeriods() []LeavePeriod {
	return slices.Clone(c.leavePeriods)
}

// ToggleContractEnd enables or disables a contract-end marker. Disabling
// removes the mapping entirely so no stale date survives a re-enable.
func (c *Config) ToggleContractEnd(employeeName string, enabled bool) error {
	if !slices.Contains(c.employees, employeeName) {
		return ErrEmployeeNotFound
	}
	if enabled {
		if _, ok := c.contractEnds[employeeName]; !ok {
			c.contractEnds[employeeName] = ""
		}
		return nil
	}
	delete(c.contractEnds, employeeName)
	return nil
}

// SetContractEnd records the date for an already-enabled marker.
func (c *Config) SetContractEnd(employeeName, date string) error {
	if _, ok := c.contractEnds[employeeName]; !ok {
		return ErrContractEndMissing
	}
	c.contractEnds[employeeName] = date
	return nil
}

func (c *Config) HasContractEnd(employeeName string) bool {
	_, ok := c.contractEnds[employeeName]
	return ok
}

func (c *Config) ContractEnds() map[string]string {
	out := make(map[string]string, len(c.contractEnds))
	for k, v := range c.contractEnds {
		out[k] = v
	}
	return out
}
