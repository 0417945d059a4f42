// Package validation holds the field-level checks shared by the stores.
// It reports problems as plain strings so callers can wrap them in their
// own error types.
package validation

import (
	"strings"

	"github.com/nlnadialigiaconcursos-cmd/tasks-pro/types"
)

// TitleProblem returns a non-empty reason when title is unusable as a
// task title.
func TitleProblem(title string) string {
	if strings.TrimSpace(title) == "" {
		return "title is required"
	}
	return ""
}

// StatusProblem returns a non-empty reason when s is not a known status.
// The empty string is accepted so callers can apply their default.
func StatusProblem(s types.TaskStatus) string {
	if s == "" || s.Valid() {
		return ""
	}
	return "unknown status " + string(s)
}

// PriorityProblem returns a non-empty reason when p is not a known
// priority. The empty string is accepted so callers can apply their
// default.
func PriorityProblem(p types.TaskPriority) string {
	if p == "" || p.Valid() {
		return ""
	}
	return "unknown priority " + string(p)
}

// EmailProblem returns a non-empty reason when email cannot identify an
// account. This is deliberately shallow; there is no real authentication
// behind it.
func EmailProblem(email string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		return "email is required"
	}
	if !strings.Contains(email, "@") {
		return "email is malformed"
	}
	return ""
}

// NameProblem returns a non-empty reason when name is blank.
func NameProblem(name string) string {
	if strings.TrimSpace(name) == "" {
		return "name is required"
	}
	return ""
}
