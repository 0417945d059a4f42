// Package notify holds per-user notification feeds for the dashboard
// bell menu.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nlnadialigiaconcursos-cmd/tasks-pro/types"
)

// Feed is an in-memory notification inbox, newest first.
type Feed struct {
	mu            sync.RWMutex
	notifications []types.Notification

	clock func() time.Time
}

// Option configures a Feed.
type Option func(*Feed)

// WithClock sets a custom time source.
func WithClock(fn func() time.Time) Option {
	return func(f *Feed) {
		f.clock = fn
	}
}

// NewFeed creates an empty feed.
func NewFeed(opts ...Option) *Feed {
	f := &Feed{
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Push adds an unread notification for userID and returns it.
func (f *Feed) Push(userID string, kind types.NotificationType, title, message, taskID string) types.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()

	n := types.Notification{
		ID:        uuid.New().String(),
		UserID:    userID,
		Type:      kind,
		Title:     title,
		Message:   message,
		TaskID:    taskID,
		Read:      false,
		CreatedAt: f.clock(),
	}
	f.notifications = append([]types.Notification{n}, f.notifications...)
	return n
}

// List returns the notifications addressed to userID, newest first.
func (f *Feed) List(userID string) []types.Notification {
	f.mu.RLock()
	defer f.mu.RUnlock()

	result := make([]types.Notification, 0, len(f.notifications))
	for _, n := range f.notifications {
		if n.UserID == userID {
			result = append(result, n)
		}
	}
	return result
}

// Unread counts the unread notifications for userID. Drives the bell
// badge.
func (f *Feed) Unread(userID string) int {
	f.mu.RLock()
	defer f.mu.RUnlock()

	count := 0
	for _, n := range f.notifications {
		if n.UserID == userID && !n.Read {
			count++
		}
	}
	return count
}

// MarkRead flags one notification as read.
func (f *Feed) MarkRead(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.notifications {
		if f.notifications[i].ID == id {
			f.notifications[i].Read = true
			return nil
		}
	}
	return &types.NotFoundError{Resource: "notification", ID: id}
}

// MarkAllRead flags every notification for userID as read and returns
// how many changed.
func (f *Feed) MarkAllRead(userID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	changed := 0
	for i := range f.notifications {
		if f.notifications[i].UserID == userID && !f.notifications[i].Read {
			f.notifications[i].Read = true
			changed++
		}
	}
	return changed
}
