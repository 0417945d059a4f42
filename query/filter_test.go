package query_test

import (
	"testing"
	"time"

	"github.com/nlnadialigiaconcursos-cmd/tasks-pro/query"
	"github.com/nlnadialigiaconcursos-cmd/tasks-pro/testutil"
	"github.com/nlnadialigiaconcursos-cmd/tasks-pro/types"
)

func TestApplyEmptyFiltersExcludesDeleted(t *testing.T) {
	_, _, u := testutil.LoadUniverse(t)

	got := query.Apply(u.AllTasks, types.TaskFilters{}, "")
	want := u.Active()
	if len(got) != len(want) {
		t.Fatalf("expected %d tasks, got %d", len(want), len(got))
	}
	for _, task := range got {
		if task.Deleted() {
			t.Errorf("deleted task %s leaked through default filters", task.ID)
		}
	}
}

func TestApplyShowDeleted(t *testing.T) {
	_, _, u := testutil.LoadUniverse(t)

	got := query.Apply(u.AllTasks, types.TaskFilters{ShowDeleted: true}, "")
	if len(got) != len(u.AllTasks) {
		t.Fatalf("expected all %d tasks, got %d", len(u.AllTasks), len(got))
	}
}

func TestApplyPreservesOrder(t *testing.T) {
	_, _, u := testutil.LoadUniverse(t)

	got := query.Apply(u.AllTasks, types.TaskFilters{ShowDeleted: true}, "")
	for i := range got {
		if got[i].ID != u.AllTasks[i].ID {
			t.Fatalf("order changed at %d: %s vs %s", i, got[i].ID, u.AllTasks[i].ID)
		}
	}
}

func TestApplySearch(t *testing.T) {
	_, _, u := testutil.LoadUniverse(t)

	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{"title match", "release notes", []string{u.ShipNotes.ID}},
		{"case insensitive", "RELEASE NOTES", []string{u.ShipNotes.ID}},
		{"description match", "bounce between", []string{u.FixLogin.ID}},
		{"tag match", "onboarding", []string{u.PolishOnboarding.ID}},
		{"shared tag", "docs", []string{u.ShipNotes.ID, u.PolishOnboarding.ID, u.WriteChangelog.ID}},
		{"no match", "zzzz", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := query.Apply(u.AllTasks, types.TaskFilters{}, tt.search)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d results, got %d", len(tt.want), len(got))
			}
			for i, id := range tt.want {
				if got[i].ID != id {
					t.Errorf("result %d: expected %s, got %s", i, id, got[i].ID)
				}
			}
		})
	}
}

func TestApplySearchFallsBackToFilterField(t *testing.T) {
	_, _, u := testutil.LoadUniverse(t)

	got := query.Apply(u.AllTasks, types.TaskFilters{Search: "roadmap"}, "")
	if len(got) != 1 || got[0].ID != u.DraftRoadmap.ID {
		t.Fatalf("expected only the roadmap task, got %d results", len(got))
	}

	// The explicit argument wins over the filter field.
	got = query.Apply(u.AllTasks, types.TaskFilters{Search: "roadmap"}, "login")
	if len(got) != 1 || got[0].ID != u.FixLogin.ID {
		t.Fatalf("explicit search should win, got %d results", len(got))
	}
}

func TestApplyStatusAndPriority(t *testing.T) {
	_, _, u := testutil.LoadUniverse(t)

	got := query.Apply(u.AllTasks, types.TaskFilters{
		Status: []types.TaskStatus{types.StatusInProgress},
	}, "")
	if len(got) != 2 {
		t.Fatalf("expected 2 in-progress tasks, got %d", len(got))
	}

	got = query.Apply(u.AllTasks, types.TaskFilters{
		Status:   []types.TaskStatus{types.StatusInProgress},
		Priority: []types.TaskPriority{types.PriorityUrgent},
	}, "")
	if len(got) != 1 || got[0].ID != u.FixLogin.ID {
		t.Fatalf("expected only the urgent in-progress task, got %d", len(got))
	}

	// Multiple values in one dimension are a union.
	got = query.Apply(u.AllTasks, types.TaskFilters{
		Status: []types.TaskStatus{types.StatusReview, types.StatusDone},
	}, "")
	if len(got) != 2 {
		t.Fatalf("expected review+done union of 2, got %d", len(got))
	}
}

func TestApplyAssignee(t *testing.T) {
	_, _, u := testutil.LoadUniverse(t)

	got := query.Apply(u.AllTasks, types.TaskFilters{Assignee: []string{u.Ethan.ID}}, "")
	if len(got) != 3 {
		t.Fatalf("expected 3 tasks for ethan, got %d", len(got))
	}
	for _, task := range got {
		if task.AssigneeID != u.Ethan.ID {
			t.Errorf("task %s not assigned to ethan", task.ID)
		}
	}

	// Unassigned tasks never match an assignee filter.
	got = query.Apply(u.AllTasks, types.TaskFilters{
		Assignee: []string{u.Ethan.ID, u.Maya.ID, u.Olivia.ID, u.Vera.ID},
	}, "")
	for _, task := range got {
		if !task.Assigned() {
			t.Errorf("unassigned task %s matched an assignee filter", task.ID)
		}
	}
}

func TestApplyDateRange(t *testing.T) {
	_, _, u := testutil.LoadUniverse(t)

	r := &types.DateRange{
		Start: time.Date(2025, 6, 25, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
	}
	got := query.Apply(u.AllTasks, types.TaskFilters{DateRange: r}, "")
	// FixLogin due 6/28 and RotateKeys due 6/30 (inclusive end).
	if len(got) != 2 {
		t.Fatalf("expected 2 tasks in range, got %d", len(got))
	}
	for _, task := range got {
		if task.DueDate == nil {
			t.Errorf("task %s without due date matched a date range", task.ID)
		}
	}
}

func TestApplyDateRangeExcludesUndated(t *testing.T) {
	_, _, u := testutil.LoadUniverse(t)

	wide := &types.DateRange{
		Start: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	got := query.Apply(u.AllTasks, types.TaskFilters{DateRange: wide}, "")
	for _, task := range got {
		if task.ID == u.DraftRoadmap.ID {
			t.Error("task without a due date must not match any date range")
		}
	}
}

func TestFilterMonotonicity(t *testing.T) {
	// Adding a constraint never grows the result set.
	_, _, u := testutil.LoadUniverse(t)

	base := query.Apply(u.AllTasks, types.TaskFilters{}, "")
	narrowed := query.Apply(u.AllTasks, types.TaskFilters{
		Status: []types.TaskStatus{types.StatusTodo},
	}, "")
	if len(narrowed) > len(base) {
		t.Errorf("narrowing grew the result set: %d > %d", len(narrowed), len(base))
	}

	further := query.Apply(u.AllTasks, types.TaskFilters{
		Status:   []types.TaskStatus{types.StatusTodo},
		Priority: []types.TaskPriority{types.PriorityHigh},
	}, "")
	if len(further) > len(narrowed) {
		t.Errorf("narrowing grew the result set: %d > %d", len(further), len(narrowed))
	}

	// Every narrowed result also appears in the base.
	baseIDs := make(map[string]bool, len(base))
	for _, task := range base {
		baseIDs[task.ID] = true
	}
	for _, task := range narrowed {
		if !baseIDs[task.ID] {
			t.Errorf("narrowed result %s missing from base", task.ID)
		}
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	_, _, u := testutil.LoadUniverse(t)

	before := make([]types.Task, len(u.AllTasks))
	copy(before, u.AllTasks)

	query.Apply(u.AllTasks, types.TaskFilters{Status: []types.TaskStatus{types.StatusDone}}, "x")

	for i := range before {
		if u.AllTasks[i].ID != before[i].ID || u.AllTasks[i].Title != before[i].Title {
			t.Fatal("Apply mutated its input slice")
		}
	}
}

func TestFiltersEmpty(t *testing.T) {
	if !(types.TaskFilters{}).Empty() {
		t.Error("zero filters should be empty")
	}
	if (types.TaskFilters{Search: "x"}).Empty() {
		t.Error("filters with a search term are not empty")
	}
	if (types.TaskFilters{ShowDeleted: true}).Empty() {
		t.Error("filters with ShowDeleted are not empty")
	}
}
