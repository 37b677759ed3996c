package domain

import "github.com/google/uuid"

type Role string

const (
	RoleInvestor     Role = "investor"
	RoleEntrepreneur Role = "entrepreneur"
	RoleAdmin        Role = "admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleInvestor || r == RoleEntrepreneur || r == RoleAdmin
}

// Capability is a single permission granted to a role.
type Capability string

const (
	CapInvest          Capability = "invest"
	CapManageCampaigns Capability = "manage_campaigns"
	CapViewAll         Capability = "view_all"
	CapManagePayouts   Capability = "manage_payouts"
)

var roleCapabilities = map[Role][]Capability{
	RoleInvestor:     {CapInvest},
	RoleEntrepreneur: {CapInvest, CapManageCampaigns},
	RoleAdmin:        {CapInvest, CapManageCampaigns, CapViewAll, CapManagePayouts},
}

// Principal is the authenticated caller of a use-case operation. The zero
// value is anonymous.
type Principal struct {
	UserID uuid.UUID
	Role   Role
}

// SystemPrincipal is used by trusted in-process callers such as the CLI.
func SystemPrincipal() Principal {
	return Principal{UserID: uuid.Nil, Role: RoleAdmin}
}

// Anonymous reports whether the principal carries no identity.
func (p Principal) Anonymous() bool {
	return p.Role == ""
}

// Can reports whether the principal's role grants c.
func (p Principal) Can(c Capability) bool {
	for _, granted := range roleCapabilities[p.Role] {
		if granted == c {
			return true
		}
	}
	return false
}

// Predicate decides whether a principal may perform an operation.
type Predicate func(Principal) bool

// HasCapability allows principals whose role grants c.
func HasCapability(c Capability) Predicate {
	return func(p Principal) bool { return p.Can(c) }
}

// IsUser allows only the principal identified by id.
func IsUser(id uuid.UUID) Predicate {
	return func(p Principal) bool { return p.UserID == id && id != uuid.Nil }
}

// AnyOf allows the principal when at least one predicate does.
func AnyOf(preds ...Predicate) Predicate {
	return func(p Principal) bool {
		for _, pred := range preds {
			if pred(p) {
				return true
			}
		}
		return false
	}
}

// Authorize evaluates allow against p. Anonymous principals get
// ErrUnauthorized, denied ones ErrForbidden.
func Authorize(p Principal, allow Predicate) error {
	if p.Anonymous() {
		return ErrUnauthorized
	}
	if !allow(p) {
		return ErrForbidden
	}
	return nil
}
