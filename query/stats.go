package query

import (
	"time"

	"github.com/nlnadialigiaconcursos-cmd/tasks-pro/types"
)

// Stats summarizes a task collection for the dashboard header cards.
type Stats struct {
	Total    int                      `json:"total"`
	ByStatus map[types.TaskStatus]int `json:"by_status"`
	Overdue  int                      `json:"overdue"`
}

// Summarize computes stats over the supplied slice. Callers pass the
// filtered view so the cards agree with the grid beneath them.
func Summarize(tasks []types.Task, now time.Time) Stats {
	stats := Stats{
		Total:    len(tasks),
		ByStatus: CountByStatus(tasks),
	}
	for _, t := range tasks {
		if IsOverdue(t, now) {
			stats.Overdue++
		}
	}
	return stats
}
