package exception

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_DefaultRestDays(t *testing.T) {
	cfg := NewConfig([]string{"Alice", "Bob"})

	rest := cfg.RestDays()
	require.Len(t, rest, 2)
	assert.Equal(t, "Alice", rest[0].EmployeeName)
	assert.Equal(t, []int{4, 5}, rest[0].Days)
	assert.Equal(t, "Bob", rest[1].EmployeeName)
	assert.Equal(t, []int{4, 5}, rest[1].Days)
}

func TestToggleRestDay(t *testing.T) {
	cfg := NewConfig([]string{"Alice", "Bob"})

	require.NoError(t, cfg.ToggleRestDay("Alice", 0, true))
	assert.Equal(t, []int{0, 4, 5}, cfg.RestDays()[0].Days)
	// Bob untouched
	assert.Equal(t, []int{4, 5}, cfg.RestDays()[1].Days)

	// Toggling twice restores the original set.
	require.NoError(t, cfg.ToggleRestDay("Alice", 0, false))
	assert.Equal(t, []int{4, 5}, cfg.RestDays()[0].Days)

	// Enabling an already-enabled day is a no-op.
	require.NoError(t, cfg.ToggleRestDay("Alice", 4, true))
	assert.Equal(t, []int{4, 5}, cfg.RestDays()[0].Days)

	assert.ErrorIs(t, cfg.ToggleRestDay("Alice", 7, true), ErrInvalidWeekday)
	assert.ErrorIs(t, cfg.ToggleRestDay("Nobody", 0, true), ErrEmployeeNotFound)
}

func TestHolidays(t *testing.T) {
	cfg := NewConfig([]string{"Alice"})

	first := cfg.AddHoliday()
	second := cfg.AddHoliday()
	require.NotEqual(t, first.ID, second.ID)

	require.NoError(t, cfg.SetHolidayDate(first.ID, "2025-05-01"))
	// Duplicate dates are allowed.
	require.NoError(t, cfg.SetHolidayDate(second.ID, "2025-05-01"))

	require.NoError(t, cfg.RemoveHoliday(first.ID))
	remaining := cfg.Holidays()
	require.Len(t, remaining, 1)
	assert.Equal(t, second.ID, remaining[0].ID)

	assert.ErrorIs(t, cfg.RemoveHoliday(first.ID), ErrEntryNotFound)
	assert.ErrorIs(t, cfg.SetHolidayDate("missing", "2025-01-01"), ErrEntryNotFound)
}

func TestLeavePeriods(t *testing.T) {
	cfg := NewConfig([]string{"Alice", "Bob"})

	p, err := cfg.AddLeavePeriod()
	require.NoError(t, err)
	assert.Equal(t, "Alice", p.EmployeeName)
	assert.Equal(t, LeaveAnnual, p.LeaveType)

	require.NoError(t, cfg.UpdateLeavePeriod(p.ID, "employeeName", "Bob"))
	require.NoError(t, cfg.UpdateLeavePeriod(p.ID, "startDate", "2025-03-01"))
	require.NoError(t, cfg.UpdateLeavePeriod(p.ID, "endDate", "2025-03-07"))
	require.NoError(t, cfg.UpdateLeavePeriod(p.ID, "leaveType", string(LeaveSick)))

	got := cfg.LeavePeriods()[0]
	assert.Equal(t, "Bob", got.EmployeeName)
	assert.Equal(t, "2025-03-01", got.StartDate)
	assert.Equal(t, "2025-03-07", got.EndDate)
	assert.Equal(t, LeaveSick, got.LeaveType)

	assert.ErrorIs(t, cfg.UpdateLeavePeriod(p.ID, "leaveType", "Congé inconnu"), ErrInvalidLeaveType)
	assert.ErrorIs(t, cfg.UpdateLeavePeriod(p.ID, "color", "blue"), ErrUnknownLeaveField)
	assert.ErrorIs(t, cfg.UpdateLeavePeriod("missing", "startDate", "2025-01-01"), ErrEntryNotFound)

	// Reversed ranges pass through untouched; the analyzer decides.
	require.NoError(t, cfg.UpdateLeavePeriod(p.ID, "startDate", "2025-03-09"))
	assert.Equal(t, "2025-03-09", cfg.LeavePeriods()[0].StartDate)

	require.NoError(t, cfg.RemoveLeavePeriod(p.ID))
	assert.Empty(t, cfg.LeavePeriods())
}

func TestAddLeavePeriod_NoEmployees(t *testing.T) {
	cfg := NewConfig(nil)
	_, err := cfg.AddLeavePeriod()
	assert.ErrorIs(t, err, ErrNoEmployees)
}

func TestContractEnds(t *testing.T) {
	cfg := NewConfig([]string{"Alice"})

	require.NoError(t, cfg.ToggleContractEnd("Alice", true))
	assert.True(t, cfg.HasContractEnd("Alice"))
	require.NoError(t, cfg.SetContractEnd("Alice", "2025-06-30"))
	assert.Equal(t, "2025-06-30", cfg.ContractEnds()["Alice"])

	// Disabling removes the entry, date included.
	require.NoError(t, cfg.ToggleContractEnd("Alice", false))
	assert.False(t, cfg.HasContractEnd("Alice"))
	_, present := cfg.ContractEnds()["Alice"]
	assert.False(t, present)

	// Re-enabling starts from an empty date, not the stale one.
	require.NoError(t, cfg.ToggleContractEnd("Alice", true))
	assert.Equal(t, "", cfg.ContractEnds()["Alice"])

	assert.ErrorIs(t, cfg.SetContractEnd("Bob", "2025-01-01"), ErrContractEndMissing)
	assert.ErrorIs(t, cfg.ToggleContractEnd("Bob", true), ErrEmployeeNotFound)
}

func TestPayload_DefaultsUntouched(t *testing.T) {
	cfg := NewConfig([]string{"Alice", "Bob"})

	raw, err := json.Marshal(cfg.Payload())
	require.NoError(t, err)

	want := `{"restDays":[{"employeeName":"Alice","days":[4,5]},{"employeeName":"Bob","days":[4,5]}],"holidays":[],"leavePeriods":[]}`
	assert.JSONEq(t, want, string(raw))
}

func TestPayload_StripsEntryKeys(t *testing.T) {
	cfg := NewConfig([]string{"Alice"})
	h := cfg.AddHoliday()
	require.NoError(t, cfg.SetHolidayDate(h.ID, "2025-05-01"))
	p, err := cfg.AddLeavePeriod()
	require.NoError(t, err)
	require.NoError(t, cfg.UpdateLeavePeriod(p.ID, "startDate", "2025-07-01"))
	require.NoError(t, cfg.UpdateLeavePeriod(p.ID, "endDate", "2025-07-15"))
	require.NoError(t, cfg.ToggleContractEnd("Alice", true))
	require.NoError(t, cfg.SetContractEnd("Alice", "2025-12-31"))

	raw, err := json.Marshal(cfg.Payload())
	require.NoError(t, err)

	want := `{
		"restDays":[{"employeeName":"Alice","days":[4,5]}],
		"holidays":[{"date":"2025-05-01"}],
		"leavePeriods":[{"employeeName":"Alice","startDate":"2025-07-01","endDate":"2025-07-15","leaveType":"Congé annuel"}],
		"contractEnds":{"Alice":"2025-12-31"}
	}`
	assert.JSONEq(t, want, string(raw))
}
