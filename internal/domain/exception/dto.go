package exception

// ========================================
// ANALYSIS REQUEST PAYLOAD
// ========================================

// Payload is the JSON document sent to the analyzer as the "params" form
// field of an analysis submission. Field names and casing are the
// analyzer's contract; entry keys are a gateway detail and are stripped.
type Payload struct {
	RestDays     []RestDaysPayload    `json:"restDays"`
	Holidays     []HolidayPayload     `json:"holidays"`
	LeavePeriods []LeavePeriodPayload `json:"leavePeriods"`
	ContractEnds map[string]string    `json:"contractEnds,omitempty"`
}

type RestDaysPayload struct {
	EmployeeName string `json:"employeeName"`
	Days         []int  `json:"days"`
}

type HolidayPayload struct {
	Date string `json:"date"`
}

type LeavePeriodPayload struct {
	EmployeeName string `json:"employeeName"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	LeaveType    string `json:"leaveType"`
}

// Payload serializes the configuration for submission.
func (c *Config) Payload() Payload {
	p := Payload{
		RestDays:     make([]RestDaysPayload, 0, len(c.restDays)),
		Holidays:     make([]HolidayPayload, 0, len(c.holidays)),
		LeavePeriods: make([]LeavePeriodPayload, 0, len(c.leavePeriods)),
	}
	for _, rd := range c.restDays {
		p.RestDays = append(p.RestDays, RestDaysPayload{
			EmployeeName: rd.EmployeeName,
			Days:         append([]int{}, rd.Days...),
		})
	}
	for _, h := range c.holidays {
		p.Holidays = append(p.Holidays, HolidayPayload{Date: h.Date})
	}
	for _, lp := range c.leavePeriods {
		p.LeavePeriods = append(p.LeavePeriods, LeavePeriodPayload{
			EmployeeName: lp.EmployeeName,
			StartDate:    lp.StartDate,
			EndDate:      lp.EndDate,
			LeaveType:    string(lp.LeaveType),
		})
	}
	if len(c.contractEnds) > 0 {
		p.ContractEnds = c.ContractEnds()
	}
	return p
}

// ========================================
// GATEWAY RESPONSE DTOs
// ========================================

// Snapshot is the editable representation returned to the frontend,
// including the stable entry keys used to address holidays and periods.
type Snapshot struct {
	Employees    []string              `json:"employees"`
	RestDays     []RestDaysSnapshot    `json:"rest_days"`
	Holidays     []HolidaySnapshot     `json:"holidays"`
	LeavePeriods []LeavePeriodSnapshot `json:"leave_periods"`
	ContractEnds map[string]string     `json:"contract_ends"`
	LeaveTypes   []string              `json:"leave_types"`
}

type RestDaysSnapshot struct {
	EmployeeName string `json:"employee_name"`
	Days         []int  `json:"days"`
}

type HolidaySnapshot struct {
	ID   string `json:"id"`
	Date string `json:"date"`
}

type LeavePeriodSnapshot struct {
	ID           string `json:"id"`
	EmployeeName string `json:"employee_name"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	LeaveType    string `json:"leave_type"`
}

func (c *Config) Snapshot() Snapshot {
	s := Snapshot{
		Employees:    c.Employees(),
		RestDays:     make([]RestDaysSnapshot, 0, len(c.restDays)),
		Holidays:     make([]HolidaySnapshot, 0, len(c.holidays)),
		LeavePeriods: make([]LeavePeriodSnapshot, 0, len(c.leavePeriods)),
		ContractEnds: c.ContractEnds(),
		LeaveTypes:   make([]string, 0, len(leaveTypes)),
	}
	for _, rd := range c.restDays {
		s.RestDays = append(s.RestDays, RestDaysSnapshot{
			EmployeeName: rd.EmployeeName,
			Days:         append([]int{}, rd.Days...),
		})
	}
	for _, h := range c.holidays {
		s.Holidays = append(s.Holidays, HolidaySnapshot{ID: h.ID, Date: h.Date})
	}
	for _, lp := range c.leavePeriods {
		s.LeavePeriods = append(s.LeavePeriods, LeavePeriodSnapshot{
			ID:           lp.ID,
			EmployeeName: lp.EmployeeName,
			StartDate:    lp.StartDate,
			EndDate:      lp.EndDate,
			LeaveType:    string(lp.LeaveType),
		})
	}
	for _, lt := range leaveTypes {
		s.LeaveTypes = append(s.LeaveTypes, string(lt))
	}
	return s
}
