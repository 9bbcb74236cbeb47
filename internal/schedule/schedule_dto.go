package schedule

type SaveEntryRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Date       string `json:"date" binding:"required"`
	ShiftID    string `json:"shift_id" binding:"required,uuid"`
}

type GenerateRequest struct {
	Month string `json:"month" binding:"required"`
}

type EntryResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	ShiftID    string `json:"shift_id"`
	ShiftCode  string `json:"shift_code,omitempty"`
	Source     string `json:"source"`
}

// DayAssignment is what the swap workflow needs to know about one
// side of a proposed exchange.
type DayAssignment struct {
	ShiftID   string `json:"shift_id"`
	ShiftCode string `json:"shift_code"`
	ShiftName string `json:"shift_name"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type ShiftSummaryRow struct {
	EmployeeID string         `json:"employee_id"`
	FullName   string         `json:"full_name"`
	Counts     map[string]int `json:"counts"`
	Total      int            `json:"total"`
}
