package approval

// Actor is the acting user, reduced to what capability resolution needs.
type Actor struct {
	ID   string
	Role Role
}

// RequestMeta is the slice of a request that determines who may act on it.
// HasPartner distinguishes shift swaps (two-party) from leave requests.
type RequestMeta struct {
	RequesterID   string
	RequesterRole Role
	PartnerID     string
	HasPartner    bool
	Status        Status
	PartnerStatus PartnerStatus
}

// Capabilities is the full set of actions the actor may take on one
// request, resolved up front so no call site re-derives permissions.
type Capabilities struct {
	CanActAsPartner      bool
	CanApprove           bool
	CanCancelAsRequester bool
	CanDelete            bool
}

// Resolve computes the actor's capabilities for a request. Pure function of
// its inputs and the role hierarchy.
func Resolve(actor Actor, req RequestMeta) Capabilities {
	pending := req.Status == StatusPending

	partnerGate := true
	if req.HasPartner {
		partnerGate = req.PartnerStatus == PartnerAccepted
	}

	return Capabilities{
		CanActAsPartner: req.HasPartner &&
			actor.ID == req.PartnerID &&
			pending &&
			req.PartnerStatus == PartnerWaiting,

		CanApprove: pending &&
			partnerGate &&
			CanApprove(actor.Role, req.RequesterRole),

		CanCancelAsRequester: actor.ID == req.RequesterID &&
			pending &&
			(!req.HasPartner || req.PartnerStatus == PartnerWaiting),

		CanDelete: actor.Role == RoleAdmin,
	}
}
