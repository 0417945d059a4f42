package types

import "time"

// Project groups tasks and members. The store manages one project's tasks
// at a time; Project itself carries the membership roster.
type Project struct {
	ID          string          `json:"id" yaml:"id"`
	Name        string          `json:"name" yaml:"name"`
	Description string          `json:"description" yaml:"description"`
	OwnerID     string          `json:"owner_id" yaml:"owner_id"`
	Members     []ProjectMember `json:"members" yaml:"members"`
	CreatedAt   time.Time       `json:"created_at" yaml:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at" yaml:"updated_at"`
}

// ProjectMember is a user's membership in a project with the role they
// hold there.
type ProjectMember struct {
	UserID   string    `json:"user_id" yaml:"user_id"`
	Role     Role      `json:"role" yaml:"role"`
	JoinedAt time.Time `json:"joined_at" yaml:"joined_at"`
}

// MemberRole returns the role userID holds in the project, or false when
// the user is not a member.
func (p Project) MemberRole(userID string) (Role, bool) {
	if userID == p.OwnerID {
		return RoleOwner, true
	}
	for _, m := range p.Members {
		if m.UserID == userID {
			return m.Role, true
		}
	}
	return "", false
}
