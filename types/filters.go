package types

import "time"

// DateRange is an inclusive due-date window.
type DateRange struct {
	Start time.Time `json:"start" yaml:"start"`
	End   time.Time `json:"end" yaml:"end"`
}

// Contains reports whether t falls within the range, inclusive at both ends.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// TaskFilters describes which tasks to include in a view. Every field is
// optional; a zero value means "no constraint on this dimension". Filters
// are pure query criteria, constructed and discarded per view.
type TaskFilters struct {
	// Status keeps tasks whose status is in the set.
	Status []TaskStatus `json:"status,omitempty"`
	// Priority keeps tasks whose priority is in the set.
	Priority []TaskPriority `json:"priority,omitempty"`
	// Assignee keeps tasks assigned to one of the given user IDs.
	// Unassigned tasks never match a non-empty assignee filter.
	Assignee []string `json:"assignee,omitempty"`
	// DateRange keeps tasks whose due date falls inside the range,
	// inclusive. Tasks without a due date are excluded when set.
	DateRange *DateRange `json:"date_range,omitempty"`
	// Search is a free-text query matched case-insensitively against
	// title, description, and tags.
	Search string `json:"search,omitempty"`
	// ShowDeleted includes soft-deleted tasks. Deleted tasks are
	// excluded by default.
	ShowDeleted bool `json:"show_deleted,omitempty"`
}

// Empty reports whether no constraint is set on any dimension.
func (f TaskFilters) Empty() bool {
	return len(f.Status) == 0 &&
		len(f.Priority) == 0 &&
		len(f.Assignee) == 0 &&
		f.DateRange == nil &&
		f.Search == "" &&
		!f.ShowDeleted
}
