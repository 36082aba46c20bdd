package editor

// ========================================
// COMMIT PAYLOAD
// ========================================

// CommitRequest is one save-modifications call to the analyzer, which
// accepts corrections one employee at a time.
type CommitRequest struct {
	Employee      string                `json:"employee"`
	Modifications []ModificationPayload `json:"modifications"`
}

type ModificationPayload struct {
	Field    string `json:"field"`
	OldValue string `json:"old_value"`
	NewValue string `json:"new_value"`
	Date     string `json:"date"`
}

// GroupForCommit splits an ordered batch into per-employee requests.
// Employees appear in first-edit order; within an employee, edits keep
// their insertion order.
func GroupForCommit(edits []Edit) []CommitRequest {
	var order []string
	byEmployee := make(map[string][]ModificationPayload)
	for _, e := range edits {
		if _, seen := byEmployee[e.EmployeeName]; !seen {
			order = append(order, e.EmployeeName)
		}
		byEmployee[e.EmployeeName] = append(byEmployee[e.EmployeeName], ModificationPayload{
			Field:    string(e.Field),
			OldValue: e.OldValue,
			NewValue: e.NewValue,
			Date:     e.Date,
		})
	}
	out := make([]CommitRequest, 0, len(order))
	for _, name := range order {
		out = append(out, CommitRequest{Employee: name, Modifications: byEmployee[name]})
	}
	return out
}
