package taskstore_test

import (
	"errors"
	"testing"

	"github.com/nlnadialigiaconcursos-cmd/tasks-pro/taskstore"
	"github.com/nlnadialigiaconcursos-cmd/tasks-pro/testutil"
	"github.com/nlnadialigiaconcursos-cmd/tasks-pro/types"
)

func TestUndoEmptyJournal(t *testing.T) {
	store, _, _ := testutil.LoadUniverse(t)

	_, err := store.Undo()
	if !errors.Is(err, taskstore.ErrNothingToUndo) {
		t.Fatalf("expected ErrNothingToUndo, got %v", err)
	}
}

func TestUndoCreate(t *testing.T) {
	store, _, u := testutil.LoadUniverse(t)

	task, err := store.Create(u.EditorSession, taskstore.Draft{Title: "Ephemeral"})
	if err != nil {
		t.Fatal(err)
	}

	inv, err := store.Undo()
	if err != nil {
		t.Fatal(err)
	}
	if inv.Op != taskstore.OpRemove {
		t.Errorf("expected inverse op remove, got %s", inv.Op)
	}
	if _, err := store.Get(task.ID); !types.IsNotFound(err) {
		t.Error("undone create should remove the record")
	}
	if store.Len() != len(u.AllTasks) {
		t.Errorf("expected %d tasks after undo, got %d", len(u.AllTasks), store.Len())
	}
}

func TestUndoUpdateRestoresBefore(t *testing.T) {
	store, _, u := testutil.LoadUniverse(t)

	title := "Renamed"
	if _, err := store.Update(u.EditorSession, u.ShipNotes.ID, taskstore.Patch{Title: &title}); err != nil {
		t.Fatal(err)
	}

	inv, err := store.Undo()
	if err != nil {
		t.Fatal(err)
	}
	if inv.Op != taskstore.OpUpdate {
		t.Errorf("expected inverse op update, got %s", inv.Op)
	}

	task, err := store.Get(u.ShipNotes.ID)
	if err != nil {
		t.Fatal(err)
	}
	if task.Title != u.ShipNotes.Title {
		t.Errorf("expected original title %q, got %q", u.ShipNotes.Title, task.Title)
	}
	if !task.UpdatedAt.Equal(u.ShipNotes.UpdatedAt) {
		t.Error("undo should restore the previous UpdatedAt")
	}
}

func TestUndoSoftDelete(t *testing.T) {
	store, _, u := testutil.LoadUniverse(t)

	if err := store.SoftDelete(u.EditorSession, u.ShipNotes.ID); err != nil {
		t.Fatal(err)
	}

	inv, err := store.Undo()
	if err != nil {
		t.Fatal(err)
	}
	if inv.Op != taskstore.OpRestore {
		t.Errorf("expected inverse op restore, got %s", inv.Op)
	}

	task, err := store.Get(u.ShipNotes.ID)
	if err != nil {
		t.Fatal(err)
	}
	if task.Deleted() {
		t.Error("undoing a delete should restore the task")
	}
}

func TestUndoPopsJournal(t *testing.T) {
	store, _, u := testutil.LoadUniverse(t)

	if _, err := store.Create(u.EditorSession, taskstore.Draft{Title: "one"}); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Create(u.EditorSession, taskstore.Draft{Title: "two"}); err != nil {
		t.Fatal(err)
	}
	if len(store.Journal()) != 2 {
		t.Fatalf("expected 2 journal entries, got %d", len(store.Journal()))
	}

	if _, err := store.Undo(); err != nil {
		t.Fatal(err)
	}
	if len(store.Journal()) != 1 {
		t.Errorf("undo should pop one entry, got %d", len(store.Journal()))
	}

	// The remaining entry is the first create.
	remaining := store.Journal()[0]
	if remaining.After == nil || remaining.After.Title != "one" {
		t.Error("the oldest entry should survive the undo")
	}
}

func TestMutationInvertRoundTrip(t *testing.T) {
	before := &types.Task{ID: "t1", Title: "before"}
	after := &types.Task{ID: "t1", Title: "after"}

	tests := []struct {
		op   taskstore.MutationOp
		want taskstore.MutationOp
	}{
		{taskstore.OpCreate, taskstore.OpRemove},
		{taskstore.OpRemove, taskstore.OpCreate},
		{taskstore.OpSoftDelete, taskstore.OpRestore},
		{taskstore.OpRestore, taskstore.OpSoftDelete},
		{taskstore.OpUpdate, taskstore.OpUpdate},
	}
	for _, tt := range tests {
		m := taskstore.Mutation{Op: tt.op, Before: before, After: after}
		inv := m.Invert()
		if inv.Op != tt.want {
			t.Errorf("Invert(%s) = %s, want %s", tt.op, inv.Op, tt.want)
		}
		if inv.Before != after || inv.After != before {
			t.Errorf("Invert(%s) should swap before and after", tt.op)
		}
	}
}
