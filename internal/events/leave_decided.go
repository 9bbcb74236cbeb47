package events

import "time"

const LeaveDecidedTopic = "workforce.leave.decided.v1"

// LeaveDecidedEvent is emitted whenever a leave request reaches a new
// decision state (approved, rejected, canceled).
type LeaveDecidedEvent struct {
	EventType   string    `json:"event_type"`
	RequestID   string    `json:"request_id,omitempty"`
	LeaveID     string    `json:"leave_id"`
	StoreID     string    `json:"store_id"`
	EmployeeID  string    `json:"employee_id"`
	LeaveType   string    `json:"leave_type"`
	Status      string    `json:"status"`
	DecidedByID string    `json:"decided_by_id,omitempty"`
	DecidedRole string    `json:"decided_by_role,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}
