// Package query is the pure filter engine over task collections. It
// never mutates its inputs and preserves the store's ordering, so views
// can recompute on every state change without touching the store.
package query

import (
	"strings"

	"github.com/nlnadialigiaconcursos-cmd/tasks-pro/types"
)

// Apply returns the subset of tasks matching every constraint in f plus
// the free-text search, in the original order. The search argument is
// matched case-insensitively against title, description, and tags; it
// takes precedence over f.Search when both are set because the search
// box and the filter popover are separate inputs in the dashboard.
func Apply(tasks []types.Task, f types.TaskFilters, search string) []types.Task {
	if search == "" {
		search = f.Search
	}

	result := make([]types.Task, 0, len(tasks))
	for _, t := range tasks {
		if !Matches(t, f, search) {
			continue
		}
		result = append(result, t)
	}
	return result
}

// Matches reports whether a single task satisfies all constraints.
func Matches(t types.Task, f types.TaskFilters, search string) bool {
	if search != "" && !matchesSearch(t, search) {
		return false
	}
	if len(f.Status) > 0 && !containsStatus(f.Status, t.Status) {
		return false
	}
	if len(f.Priority) > 0 && !containsPriority(f.Priority, t.Priority) {
		return false
	}
	if len(f.Assignee) > 0 {
		if !t.Assigned() || !containsString(f.Assignee, t.AssigneeID) {
			return false
		}
	}
	if f.DateRange != nil {
		if t.DueDate == nil || !f.DateRange.Contains(*t.DueDate) {
			return false
		}
	}
	if !f.ShowDeleted && t.Deleted() {
		return false
	}
	return true
}

// matchesSearch does a case-insensitive substring search over title,
// description, and every tag.
func matchesSearch(t types.Task, search string) bool {
	query := strings.ToLower(search)

	if strings.Contains(strings.ToLower(t.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(t.Description), query) {
		return true
	}
	for _, tag := range t.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

func containsStatus(values []types.TaskStatus, v types.TaskStatus) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

func containsPriority(values []types.TaskPriority, v types.TaskPriority) bool {
	for _, p := range values {
		if p == v {
			return true
		}
	}
	return false
}

func containsString(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
