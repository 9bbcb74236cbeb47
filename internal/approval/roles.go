package approval

// Role is an employee's position in the store hierarchy.
type Role string

const (
	RoleEmployee Role = "employee"
	RoleAcos     Role = "acos"
	RoleCos      Role = "cos"
	RoleAc       Role = "ac"
	RoleAdmin    Role = "admin"
)

// approverRoles maps a requester's role to the roles allowed to decide the
// request. Admin is handled separately as a global override.
var approverRoles = map[Role][]Role{
	RoleEmployee: {RoleCos},
	RoleAcos:     {RoleCos},
	RoleCos:      {RoleAc, RoleAdmin},
}

// CanApprove reports whether actorRole may decide a request submitted by
// requesterRole.
func CanApprove(actorRole, requesterRole Role) bool {
	if actorRole == RoleAdmin {
		return true
	}
	for _, r := range approverRoles[requesterRole] {
		if r == actorRole {
			return true
		}
	}
	return false
}

// ApproverRolesFor returns the roles expected to decide a request from the
// given requester role. Used to infer the pending approver for display when
// no decision has been recorded yet.
func ApproverRolesFor(requesterRole Role) []Role {
	if roles, ok := approverRoles[requesterRole]; ok {
		return roles
	}
	return []Role{RoleAdmin}
}
