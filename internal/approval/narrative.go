package approval

import (
	"fmt"
	"strings"
)

// Severity classifies a narrative line for display and notifications.
type Severity string

const (
	SeverityPositive Severity = "positive"
	SeverityNegative Severity = "negative"
	SeverityNeutral  Severity = "neutral"
)

// Narrative is the human-readable audit line derived from a request.
type Narrative struct {
	Label    string   `json:"label"`
	Text     string   `json:"text,omitempty"`
	Severity Severity `json:"severity"`
}

// DecisionView is the denormalized request data Describe reads. Names may
// be empty; the builder degrades to role-only labels.
type DecisionView struct {
	Status        Status
	PartnerStatus PartnerStatus
	HasPartner    bool

	RequesterName string
	RequesterRole Role
	PartnerName   string

	ApproverName string
	ApproverRole Role

	RejectReason  string
	PartnerReason string
	CancelReason  string
	CanceledBy    string
}

// Describe derives the audit line for a request. Conditions are evaluated
// in priority order and the first match wins; in particular a partner
// decline always outranks the approver-track status.
func Describe(v DecisionView) Narrative {
	if v.HasPartner && v.PartnerStatus == PartnerDeclined {
		label := "Declined by partner"
		if v.PartnerName != "" {
			label = fmt.Sprintf("Declined by partner (%s)", v.PartnerName)
		}
		return Narrative{Label: label, Text: v.PartnerReason, Severity: SeverityNegative}
	}

	if v.Status == StatusPending {
		if v.HasPartner && v.PartnerStatus == PartnerAccepted {
			roles := ApproverRolesFor(v.RequesterRole)
			names := make([]string, len(roles))
			for i, r := range roles {
				names[i] = string(r)
			}
			return Narrative{
				Label:    fmt.Sprintf("Awaiting approver (%s)", strings.Join(names, "/")),
				Severity: SeverityNeutral,
			}
		}
		if v.HasPartner {
			return Narrative{Label: "Awaiting partner response", Text: v.PartnerName, Severity: SeverityNeutral}
		}
		roles := ApproverRolesFor(v.RequesterRole)
		names := make([]string, len(roles))
		for i, r := range roles {
			names[i] = string(r)
		}
		return Narrative{
			Label:    fmt.Sprintf("Awaiting approver (%s)", strings.Join(names, "/")),
			Severity: SeverityNeutral,
		}
	}

	switch v.Status {
	case StatusApproved:
		role := v.ApproverRole
		if role == "" {
			role = "approver"
		}
		return Narrative{
			Label:    fmt.Sprintf("Approved by %s", role),
			Text:     v.ApproverName,
			Severity: SeverityPositive,
		}
	case StatusRejected:
		role := v.ApproverRole
		if role == "" {
			role = "approver"
		}
		return Narrative{
			Label:    fmt.Sprintf("Rejected by approver (%s)", role),
			Text:     v.RejectReason,
			Severity: SeverityNegative,
		}
	case StatusCanceled:
		by := v.CanceledBy
		if by == "" {
			by = v.RequesterName
		}
		label := "Canceled by requester"
		if by != "" {
			label = fmt.Sprintf("Canceled by requester (%s)", by)
		}
		return Narrative{Label: label, Text: v.CancelReason, Severity: SeverityNeutral}
	}

	return Narrative{Label: string(v.Status), Severity: SeverityNeutral}
}
