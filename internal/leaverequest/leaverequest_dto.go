package leaverequest

import "go-shiftdesk/internal/approval"

type CreateLeaveRequest struct {
	LeaveType string `json:"leave_type" binding:"required"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	Reason    string `json:"reason" binding:"required"`
}

type DecideRequest struct {
	Reason string `json:"reason"`
}

type LeaveResponse struct {
	ID            string  `json:"id"`
	StoreID       string  `json:"store_id"`
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  string  `json:"employee_name,omitempty"`
	EmployeeRole  string  `json:"employee_role,omitempty"`
	LeaveType     string  `json:"leave_type"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	TotalDays     int     `json:"total_days"`
	Reason        string  `json:"reason"`
	Status        string  `json:"status"`
	DecidedByID   *string `json:"decided_by_id,omitempty"`
	DecidedByName string  `json:"decided_by_name,omitempty"`
	DecidedByRole string  `json:"decided_by_role,omitempty"`
	DecidedAt     *string `json:"decided_at,omitempty"`
	RejectReason  *string `json:"reject_reason,omitempty"`
	CancelReason  *string `json:"cancel_reason,omitempty"`

	Narrative approval.Narrative `json:"narrative"`

	Capabilities *approval.Capabilities `json:"capabilities,omitempty"`
}
