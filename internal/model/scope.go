package model

const (
	RoleAdmin  = "ADMIN"
	RoleMember = "MEMBER"
)

// Scope is the authenticated principal attached to a request after the
// auth middleware has verified the token and resolved the subject.
type Scope struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"` // ADMIN or MEMBER
	JTI    string `json:"jti"`
}

// IsAdmin checks if the scope has admin role.
func (s Scope) IsAdmin() bool {
	return s.Role == RoleAdmin
}

// IsMember checks if the scope has member role.
func (s Scope) IsMember() bool {
	return s.Role == RoleMember
}
