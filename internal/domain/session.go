package domain

// ActorRole identifies who performs an action
type ActorRole string

const (
	RoleCustomer ActorRole = "customer"
	RoleBusiness ActorRole = "business"
)

// IsValid returns true for known roles
func (r ActorRole) IsValid() bool {
	return r == RoleCustomer || r == RoleBusiness
}

// Session carries the identity of the current actor through a request.
// BusinessID is set only for business actors.
type Session struct {
	UserID     string
	Role       ActorRole
	BusinessID string
}

// IsBusiness returns true if the actor acts on behalf of a business
func (s *Session) IsBusiness() bool {
	return s.Role == RoleBusiness
}

// IsCustomer returns true if the actor is a customer
func (s *Session) IsCustomer() bool {
	return s.Role == RoleCustomer
}

// OwnsBusiness returns true if the actor manages the given business
func (s *Session) OwnsBusiness(businessID string) bool {
	return s.IsBusiness() && s.BusinessID != "" && s.BusinessID == businessID
}
