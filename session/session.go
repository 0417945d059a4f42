// Package session carries the authenticated user through the system as
// an explicit value instead of ambient global state. Every store
// mutation takes a session for attribution; permission checks read the
// session's role.
package session

import (
	"time"

	"github.com/nlnadialigiaconcursos-cmd/tasks-pro/types"
)

// Session is an authenticated user's context. A nil Session or a nil
// User means "not authenticated".
type Session struct {
	User     *types.User
	IssuedAt time.Time
}

// New creates a session for the given user.
func New(user types.User, issuedAt time.Time) *Session {
	return &Session{User: &user, IssuedAt: issuedAt}
}

// Authenticated reports whether the session belongs to a signed-in user.
// Safe to call on a nil session.
func (s *Session) Authenticated() bool {
	return s != nil && s.User != nil
}

// HasPermission reports whether the session's role is at least as
// privileged as required, using the total order viewer < editor < owner.
// An unauthenticated session never has permission. The check is
// advisory: the stores do not enforce it, callers gate their own
// affordances with it.
func (s *Session) HasPermission(required types.Role) bool {
	if !s.Authenticated() {
		return false
	}
	return s.User.Role.AtLeast(required)
}

// CanEdit is shorthand for editor-level access.
func (s *Session) CanEdit() bool {
	return s.HasPermission(types.RoleEditor)
}

// CanManage is shorthand for owner-level access.
func (s *Session) CanManage() bool {
	return s.HasPermission(types.RoleOwner)
}
