package product

import "designhub/internal/domain"

// Role is the per-project role of the acting user.
type Role string

const (
	RoleDesigner Role = "designer"
	RoleClient   Role = "client"
)

// transitionRoles maps each legal target status to the roles allowed to
// request it. Targets outside this map are invalid status values. The gate
// is role/target based only; reachability from the current status is not
// checked, matching how the workflow behaves in practice.
var transitionRoles = map[domain.ProductStatus][]Role{
	domain.ProductApproved:  {RoleDesigner, RoleClient},
	domain.ProductOrdered:   {RoleDesigner},
	domain.ProductDelivered: {RoleDesigner},
	domain.ProductPending:   {RoleDesigner, RoleClient},
}

// KnownTarget reports whether the status is reachable through the
// update-status workflow at all. "rejected" is a valid stored status but
// is never a legal target here.
func KnownTarget(status domain.ProductStatus) bool {
	_, ok := transitionRoles[status]
	return ok
}

// StatusTransitionPolicy decides whether a user with the given project
// roles may move a product to the requested status.
type StatusTransitionPolicy struct {
	DesignerFor bool
	ClientFor   bool
}

func (p StatusTransitionPolicy) roles() []Role {
	var roles []Role
	if p.DesignerFor {
		roles = append(roles, RoleDesigner)
	}
	if p.ClientFor {
		roles = append(roles, RoleClient)
	}
	return roles
}

// Allowed returns false both for unknown target statuses and for role
// mismatches; callers distinguish the two with ValidProductStatus.
func (p StatusTransitionPolicy) Allowed(newStatus domain.ProductStatus) bool {
	allowedRoles, ok := transitionRoles[newStatus]
	if !ok {
		return false
	}
	for _, have := range p.roles() {
		for _, want := range allowedRoles {
			if have == want {
				return true
			}
		}
	}
	return false
}
