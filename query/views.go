package query

import (
	"time"

	"github.com/nlnadialigiaconcursos-cmd/tasks-pro/types"
)

// Derived views over an already-filtered slice. These back the dashboard
// tabs and never re-query the store.

// Mine returns the tasks assigned to the given user. An empty userID
// matches nothing rather than the unassigned tasks.
func Mine(tasks []types.Task, userID string) []types.Task {
	result := make([]types.Task, 0, len(tasks))
	if userID == "" {
		return result
	}
	for _, t := range tasks {
		if t.AssigneeID == userID {
			result = append(result, t)
		}
	}
	return result
}

// Unassigned returns the tasks with no assignee.
func Unassigned(tasks []types.Task) []types.Task {
	result := make([]types.Task, 0, len(tasks))
	for _, t := range tasks {
		if !t.Assigned() {
			result = append(result, t)
		}
	}
	return result
}

// ByStatus returns the tasks in the given status.
func ByStatus(tasks []types.Task, status types.TaskStatus) []types.Task {
	result := make([]types.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Status == status {
			result = append(result, t)
		}
	}
	return result
}

// IsOverdue reports whether the task's due date has passed and the task
// is neither done nor deleted.
func IsOverdue(t types.Task, now time.Time) bool {
	if t.DueDate == nil || t.Status == types.StatusDone || t.Deleted() {
		return false
	}
	return t.DueDate.Before(now)
}

// Overdue returns the tasks that are overdue as of now.
func Overdue(tasks []types.Task, now time.Time) []types.Task {
	result := make([]types.Task, 0, len(tasks))
	for _, t := range tasks {
		if IsOverdue(t, now) {
			result = append(result, t)
		}
	}
	return result
}

// CountByStatus tallies tasks per status. Every known status appears in
// the map so dashboard widgets can render zeros.
func CountByStatus(tasks []types.Task) map[types.TaskStatus]int {
	counts := make(map[types.TaskStatus]int, len(types.TaskStatuses))
	for _, s := range types.TaskStatuses {
		counts[s] = 0
	}
	for _, t := range tasks {
		counts[t.Status]++
	}
	return counts
}
