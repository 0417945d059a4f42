package notify_test

import (
	"testing"
	"time"

	"github.com/nlnadialigiaconcursos-cmd/tasks-pro/notify"
	"github.com/nlnadialigiaconcursos-cmd/tasks-pro/types"
)

func TestPushAndList(t *testing.T) {
	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	feed := notify.NewFeed(notify.WithClock(func() time.Time { return now }))

	first := feed.Push("u1", types.NotifyTaskAssigned, "New task assigned", "You were assigned one", "t1")
	second := feed.Push("u1", types.NotifyTaskUpdated, "Task updated", "Someone edited it", "t1")
	feed.Push("u2", types.NotifyTaskCompleted, "Task completed", "Done", "t2")

	if first.ID == "" || first.Read {
		t.Errorf("pushed notification should be unread with an ID: %+v", first)
	}
	if !first.CreatedAt.Equal(now) {
		t.Errorf("expected CreatedAt %v, got %v", now, first.CreatedAt)
	}

	list := feed.List("u1")
	if len(list) != 2 {
		t.Fatalf("expected 2 notifications for u1, got %d", len(list))
	}
	if list[0].ID != second.ID {
		t.Error("newest notification should be first")
	}
	for _, n := range list {
		if n.UserID != "u1" {
			t.Errorf("notification for %s leaked into u1's feed", n.UserID)
		}
	}
}

func TestUnreadAndMarkRead(t *testing.T) {
	feed := notify.NewFeed()

	a := feed.Push("u1", types.NotifyTaskAssigned, "a", "", "t1")
	feed.Push("u1", types.NotifyTaskUpdated, "b", "", "t1")

	if got := feed.Unread("u1"); got != 2 {
		t.Fatalf("expected 2 unread, got %d", got)
	}

	if err := feed.MarkRead(a.ID); err != nil {
		t.Fatal(err)
	}
	if got := feed.Unread("u1"); got != 1 {
		t.Errorf("expected 1 unread after MarkRead, got %d", got)
	}

	if err := feed.MarkRead("missing"); !types.IsNotFound(err) {
		t.Errorf("expected not found for unknown id, got %v", err)
	}
}

func TestMarkAllRead(t *testing.T) {
	feed := notify.NewFeed()

	feed.Push("u1", types.NotifyTaskAssigned, "a", "", "t1")
	feed.Push("u1", types.NotifyTaskUpdated, "b", "", "t1")
	feed.Push("u2", types.NotifyTaskAssigned, "c", "", "t2")

	changed := feed.MarkAllRead("u1")
	if changed != 2 {
		t.Errorf("expected 2 changed, got %d", changed)
	}
	if got := feed.Unread("u1"); got != 0 {
		t.Errorf("expected 0 unread for u1, got %d", got)
	}
	// Other users are untouched.
	if got := feed.Unread("u2"); got != 1 {
		t.Errorf("expected 1 unread for u2, got %d", got)
	}

	// A second pass changes nothing.
	if changed := feed.MarkAllRead("u1"); changed != 0 {
		t.Errorf("expected 0 changed on repeat, got %d", changed)
	}
}
