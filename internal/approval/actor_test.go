package approval_test

import (
	"testing"

	"go-shiftdesk/internal/approval"

	"github.com/stretchr/testify/assert"
)

func TestCanApprove(t *testing.T) {
	t.Run("cos approves employee and acos", func(t *testing.T) {
		assert.True(t, approval.CanApprove(approval.RoleCos, approval.RoleEmployee))
		assert.True(t, approval.CanApprove(approval.RoleCos, approval.RoleAcos))
	})

	t.Run("ac approves cos only", func(t *testing.T) {
		assert.True(t, approval.CanApprove(approval.RoleAc, approval.RoleCos))
		assert.False(t, approval.CanApprove(approval.RoleAc, approval.RoleEmployee))
		assert.False(t, approval.CanApprove(approval.RoleAc, approval.RoleAcos))
	})

	t.Run("admin approves anything", func(t *testing.T) {
		assert.True(t, approval.CanApprove(approval.RoleAdmin, approval.RoleEmployee))
		assert.True(t, approval.CanApprove(approval.RoleAdmin, approval.RoleCos))
		assert.True(t, approval.CanApprove(approval.RoleAdmin, approval.RoleAdmin))
	})

	t.Run("negative peers cannot approve", func(t *testing.T) {
		assert.False(t, approval.CanApprove(approval.RoleEmployee, approval.RoleEmployee))
		assert.False(t, approval.CanApprove(approval.RoleCos, approval.RoleCos))
	})
}

func TestResolve_Swap(t *testing.T) {
	requesterID := "emp-a"
	partnerID := "emp-b"

	base := approval.RequestMeta{
		RequesterID:   requesterID,
		RequesterRole: approval.RoleEmployee,
		PartnerID:     partnerID,
		HasPartner:    true,
		Status:        approval.StatusPending,
		PartnerStatus: approval.PartnerWaiting,
	}

	t.Run("partner may act only while pending and waiting", func(t *testing.T) {
		caps := approval.Resolve(approval.Actor{ID: partnerID, Role: approval.RoleEmployee}, base)
		assert.True(t, caps.CanActAsPartner)

		accepted := base
		accepted.PartnerStatus = approval.PartnerAccepted
		caps = approval.Resolve(approval.Actor{ID: partnerID, Role: approval.RoleEmployee}, accepted)
		assert.False(t, caps.CanActAsPartner)

		canceled := base
		canceled.Status = approval.StatusCanceled
		caps = approval.Resolve(approval.Actor{ID: partnerID, Role: approval.RoleEmployee}, canceled)
		assert.False(t, caps.CanActAsPartner)
	})

	t.Run("approver gated on partner acceptance", func(t *testing.T) {
		cos := approval.Actor{ID: "cos-1", Role: approval.RoleCos}

		caps := approval.Resolve(cos, base)
		assert.False(t, caps.CanApprove)

		accepted := base
		accepted.PartnerStatus = approval.PartnerAccepted
		caps = approval.Resolve(cos, accepted)
		assert.True(t, caps.CanApprove)
	})

	t.Run("requester cancel window closes when partner accepts", func(t *testing.T) {
		requester := approval.Actor{ID: requesterID, Role: approval.RoleEmployee}

		caps := approval.Resolve(requester, base)
		assert.True(t, caps.CanCancelAsRequester)

		accepted := base
		accepted.PartnerStatus = approval.PartnerAccepted
		caps = approval.Resolve(requester, accepted)
		assert.False(t, caps.CanCancelAsRequester)
	})

	t.Run("delete is admin only", func(t *testing.T) {
		caps := approval.Resolve(approval.Actor{ID: "hq-1", Role: approval.RoleAdmin}, base)
		assert.True(t, caps.CanDelete)

		caps = approval.Resolve(approval.Actor{ID: "cos-1", Role: approval.RoleCos}, base)
		assert.False(t, caps.CanDelete)
	})

	t.Run("uninvolved user has no capabilities", func(t *testing.T) {
		caps := approval.Resolve(approval.Actor{ID: "emp-c", Role: approval.RoleEmployee}, base)
		assert.False(t, caps.CanActAsPartner)
		assert.False(t, caps.CanApprove)
		assert.False(t, caps.CanCancelAsRequester)
		assert.False(t, caps.CanDelete)
	})
}

func TestResolve_Leave(t *testing.T) {
	meta := approval.RequestMeta{
		RequesterID:   "emp-a",
		RequesterRole: approval.RoleAcos,
		Status:        approval.StatusPending,
	}

	t.Run("no partner gate on single-approver requests", func(t *testing.T) {
		caps := approval.Resolve(approval.Actor{ID: "cos-1", Role: approval.RoleCos}, meta)
		assert.True(t, caps.CanApprove)
	})

	t.Run("requester may cancel while pending", func(t *testing.T) {
		caps := approval.Resolve(approval.Actor{ID: "emp-a", Role: approval.RoleAcos}, meta)
		assert.True(t, caps.CanCancelAsRequester)

		done := meta
		done.Status = approval.StatusApproved
		caps = approval.Resolve(approval.Actor{ID: "emp-a", Role: approval.RoleAcos}, done)
		assert.False(t, caps.CanCancelAsRequester)
	})
}

func TestValidReason(t *testing.T) {
	assert.True(t, approval.ValidReason("too busy"))
	assert.True(t, approval.ValidReason("  oke "))
	assert.False(t, approval.ValidReason("no"))
	assert.False(t, approval.ValidReason("   "))
	assert.False(t, approval.ValidReason(""))
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, approval.IsTerminal(approval.StatusPending, approval.PartnerWaiting))
	assert.False(t, approval.IsTerminal(approval.StatusPending, approval.PartnerAccepted))
	assert.True(t, approval.IsTerminal(approval.StatusPending, approval.PartnerDeclined))
	assert.True(t, approval.IsTerminal(approval.StatusApproved, approval.PartnerAccepted))
	assert.True(t, approval.IsTerminal(approval.StatusRejected, approval.PartnerAccepted))
	assert.True(t, approval.IsTerminal(approval.StatusCanceled, approval.PartnerCanceled))
}
