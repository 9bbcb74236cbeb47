package shiftswap

import "go-shiftdesk/internal/approval"

type CreateSwapRequest struct {
	PartnerID string `json:"partner_id" binding:"required,uuid"`
	Date      string `json:"date" binding:"required"`
	Reason    string `json:"reason" binding:"required"`
}

type PreviewSwapRequest struct {
	PartnerID string `json:"partner_id" binding:"required,uuid"`
	Date      string `json:"date" binding:"required"`
}

type PartnerRespondRequest struct {
	Response string `json:"response" binding:"required"`
	Reason   string `json:"reason"`
}

type DecideSwapRequest struct {
	Reason string `json:"reason"`
}

// SwapPreview shows both sides of the exchange before the request is
// submitted.
type SwapPreview struct {
	Date           string     `json:"date"`
	RequesterShift *ShiftSlot `json:"requester_shift"`
	PartnerShift   *ShiftSlot `json:"partner_shift"`
}

type ShiftSlot struct {
	ShiftID   string `json:"shift_id"`
	ShiftCode string `json:"shift_code"`
	ShiftName string `json:"shift_name"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type SwapResponse struct {
	ID            string `json:"id"`
	StoreID       string `json:"store_id"`
	RequesterID   string `json:"requester_id"`
	RequesterName string `json:"requester_name,omitempty"`
	RequesterRole string `json:"requester_role,omitempty"`
	PartnerID     string `json:"partner_id"`
	PartnerName   string `json:"partner_name,omitempty"`
	Date          string `json:"date"`
	Reason        string `json:"reason"`

	RequesterShiftID   string `json:"requester_shift_id"`
	RequesterShiftCode string `json:"requester_shift_code"`
	PartnerShiftID     string `json:"partner_shift_id"`
	PartnerShiftCode   string `json:"partner_shift_code"`

	Status        string `json:"status"`
	PartnerStatus string `json:"partner_status"`

	PartnerRespondedAt *string `json:"partner_responded_at,omitempty"`
	DeclineReason      *string `json:"decline_reason,omitempty"`

	DecidedByID   *string `json:"decided_by_id,omitempty"`
	DecidedByName string  `json:"decided_by_name,omitempty"`
	DecidedByRole string  `json:"decided_by_role,omitempty"`
	DecidedAt     *string `json:"decided_at,omitempty"`
	RejectReason  *string `json:"reject_reason,omitempty"`
	CancelReason  *string `json:"cancel_reason,omitempty"`

	Narrative approval.Narrative `json:"narrative"`

	Capabilities *approval.Capabilities `json:"capabilities,omitempty"`
}
