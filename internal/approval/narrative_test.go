package approval_test

import (
	"testing"

	"go-shiftdesk/internal/approval"

	"github.com/stretchr/testify/assert"
)

func TestDescribe_PriorityOrder(t *testing.T) {
	t.Run("partner decline wins over everything", func(t *testing.T) {
		n := approval.Describe(approval.DecisionView{
			Status:        approval.StatusPending,
			PartnerStatus: approval.PartnerDeclined,
			HasPartner:    true,
			PartnerName:   "Budi",
			PartnerReason: "conflict",
		})
		assert.Equal(t, "Declined by partner (Budi)", n.Label)
		assert.Equal(t, "conflict", n.Text)
		assert.Equal(t, approval.SeverityNegative, n.Severity)
	})

	t.Run("pending waiting", func(t *testing.T) {
		n := approval.Describe(approval.DecisionView{
			Status:        approval.StatusPending,
			PartnerStatus: approval.PartnerWaiting,
			HasPartner:    true,
			PartnerName:   "Budi",
		})
		assert.Equal(t, "Awaiting partner response", n.Label)
		assert.Equal(t, approval.SeverityNeutral, n.Severity)
	})

	t.Run("pending accepted infers approver from requester role", func(t *testing.T) {
		n := approval.Describe(approval.DecisionView{
			Status:        approval.StatusPending,
			PartnerStatus: approval.PartnerAccepted,
			HasPartner:    true,
			RequesterRole: approval.RoleEmployee,
		})
		assert.Equal(t, "Awaiting approver (cos)", n.Label)

		n = approval.Describe(approval.DecisionView{
			Status:        approval.StatusPending,
			PartnerStatus: approval.PartnerAccepted,
			HasPartner:    true,
			RequesterRole: approval.RoleCos,
		})
		assert.Equal(t, "Awaiting approver (ac/admin)", n.Label)
	})

	t.Run("approved", func(t *testing.T) {
		n := approval.Describe(approval.DecisionView{
			Status:       approval.StatusApproved,
			ApproverRole: approval.RoleCos,
			ApproverName: "Sari",
		})
		assert.Equal(t, "Approved by cos", n.Label)
		assert.Equal(t, "Sari", n.Text)
		assert.Equal(t, approval.SeverityPositive, n.Severity)
	})

	t.Run("rejected", func(t *testing.T) {
		n := approval.Describe(approval.DecisionView{
			Status:       approval.StatusRejected,
			ApproverRole: approval.RoleCos,
			RejectReason: "insufficient coverage",
		})
		assert.Equal(t, "Rejected by approver (cos)", n.Label)
		assert.Equal(t, "insufficient coverage", n.Text)
		assert.Equal(t, approval.SeverityNegative, n.Severity)
	})

	t.Run("canceled", func(t *testing.T) {
		n := approval.Describe(approval.DecisionView{
			Status:        approval.StatusCanceled,
			PartnerStatus: approval.PartnerCanceled,
			HasPartner:    true,
			RequesterName: "Andi",
			CancelReason:  "plans changed",
		})
		assert.Equal(t, "Canceled by requester (Andi)", n.Label)
		assert.Equal(t, "plans changed", n.Text)
		assert.Equal(t, approval.SeverityNeutral, n.Severity)
	})

	t.Run("decline outranks recorded rejection", func(t *testing.T) {
		// Both tracks carry a terminal value; the partner decline is the
		// one reported.
		n := approval.Describe(approval.DecisionView{
			Status:        approval.StatusRejected,
			PartnerStatus: approval.PartnerDeclined,
			HasPartner:    true,
			PartnerReason: "not available",
		})
		assert.Equal(t, "Declined by partner", n.Label)
		assert.Equal(t, "not available", n.Text)
	})
}

func TestDescribe_LeaveRequest(t *testing.T) {
	t.Run("pending leave names expected approver", func(t *testing.T) {
		n := approval.Describe(approval.DecisionView{
			Status:        approval.StatusPending,
			RequesterRole: approval.RoleAcos,
		})
		assert.Equal(t, "Awaiting approver (cos)", n.Label)
	})

	t.Run("missing approver role degrades gracefully", func(t *testing.T) {
		n := approval.Describe(approval.DecisionView{Status: approval.StatusApproved})
		assert.Equal(t, "Approved by approver", n.Label)
	})
}
