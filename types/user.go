package types

import "time"

// Role is a permission level within a project. Roles form a total order:
// viewer < editor < owner.
type Role string

const (
	RoleViewer Role = "viewer"
	RoleEditor Role = "editor"
	RoleOwner  Role = "owner"
)

// roleRanks assigns each role its position in the total order.
var roleRanks = map[Role]int{
	RoleViewer: 1,
	RoleEditor: 2,
	RoleOwner:  3,
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	_, ok := roleRanks[r]
	return ok
}

// Rank returns the role's position in the total order, or 0 for an
// unknown role so that unknown roles never satisfy a requirement.
func (r Role) Rank() int {
	return roleRanks[r]
}

// AtLeast reports whether r is at least as privileged as required.
func (r Role) AtLeast(required Role) bool {
	return r.Rank() >= required.Rank() && required.Valid()
}

// User is a project member. User records are immutable once created;
// tasks reference them by ID.
type User struct {
	ID        string    `json:"id" yaml:"id"`
	Email     string    `json:"email" yaml:"email"`
	Name      string    `json:"name" yaml:"name"`
	Avatar    string    `json:"avatar,omitempty" yaml:"avatar"`
	Role      Role      `json:"role" yaml:"role"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}
