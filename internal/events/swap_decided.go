package events

import "time"

const SwapDecidedTopic = "workforce.swap.decided.v1"

// SwapDecidedEvent is emitted on every swap state change that a
// downstream consumer may need to notify about: partner responses,
// approver decisions, and requester cancellations.
type SwapDecidedEvent struct {
	EventType     string    `json:"event_type"`
	RequestID     string    `json:"request_id,omitempty"`
	SwapID        string    `json:"swap_id"`
	StoreID       string    `json:"store_id"`
	RequesterID   string    `json:"requester_id"`
	PartnerID     string    `json:"partner_id"`
	Status        string    `json:"status"`
	PartnerStatus string    `json:"partner_status"`
	DecidedByID   string    `json:"decided_by_id,omitempty"`
	DecidedRole   string    `json:"decided_by_role,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}
