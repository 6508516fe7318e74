// Package access decides whether a principal may act on a lead's
// opportunity. It is pure: no I/O, the caller supplies everything.
package access

// Role is the closed set of caller roles.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
	RoleAgent Role = "agent"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleStaff, RoleAgent:
		return true
	default:
		return false
	}
}

// Principal is the resolved caller identity, produced by the auth layer.
type Principal struct {
	ID                 int
	Role               Role
	HasExclusiveAccess bool
}

// CanAccessOpportunity reports whether the principal may view or mutate
// an opportunity whose owning lead is assigned to leadOwnerAgentID.
// For staff principals the caller passes the freshly fetched roster of
// linked agent ids; it is ignored for every other role.
func CanAccessOpportunity(p Principal, leadOwnerAgentID int, linkedAgentIDs []int) bool {
	switch p.Role {
	case RoleAdmin:
		return true
	case RoleStaff:
		for _, id := range linkedAgentIDs {
			if id == leadOwnerAgentID {
				return true
			}
		}
		return false
	case RoleAgent:
		return leadOwnerAgentID == p.ID
	default:
		return false
	}
}
