package approval

// Status is the approver-track state of a request.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
	StatusCanceled Status = "canceled"
)

// PartnerStatus is the partner-track state of a shift swap. It stays
// orthogonal to Status until it gates the approver: a decline closes the
// request outright, and a requester cancel freezes it to canceled.
type PartnerStatus string

const (
	PartnerWaiting  PartnerStatus = "waiting"
	PartnerAccepted PartnerStatus = "accepted"
	PartnerDeclined PartnerStatus = "declined"
	PartnerCanceled PartnerStatus = "canceled"
)

// IsTerminalStatus reports whether the approver track permits no further
// transitions.
func IsTerminalStatus(s Status) bool {
	switch s {
	case StatusApproved, StatusRejected, StatusCanceled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the request as a whole is closed. A partner
// decline is terminal regardless of the approver track.
func IsTerminal(s Status, ps PartnerStatus) bool {
	if IsTerminalStatus(s) {
		return true
	}
	return ps == PartnerDeclined
}
