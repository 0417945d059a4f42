// Package activity keeps the project's audit trail: who did what to
// which task, newest first. It implements taskstore.ActivityRecorder so
// the store can emit entries without knowing about this package.
package activity

import (
	"encoding/json"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nlnadialigiaconcursos-cmd/tasks-pro/types"
	"github.com/nlnadialigiaconcursos-cmd/tasks-pro/users"
)

// Log is the in-memory activity trail. Entries reference acting users
// by ID; search resolves names through the user repository at query
// time.
type Log struct {
	mu      sync.RWMutex
	entries []types.ActivityLog

	users  *users.Repo
	clock  func() time.Time
	logger *zap.Logger
}

// Option configures a Log.
type Option func(*Log)

// WithClock sets a custom time source.
func WithClock(fn func() time.Time) Option {
	return func(l *Log) {
		l.clock = fn
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(l *Log) {
		l.logger = logger
	}
}

// NewLog creates an empty trail that resolves user names against repo.
func NewLog(repo *users.Repo, opts ...Option) *Log {
	l := &Log{
		users:  repo,
		clock:  time.Now,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Record appends an entry for a task mutation. The task title is
// denormalized so the trail still reads sensibly after the task is
// gone. Satisfies taskstore.ActivityRecorder.
func (l *Log) Record(actorID string, action types.ActivityAction, task types.Task, details string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry := types.ActivityLog{
		ID:        uuid.New().String(),
		Action:    action,
		TaskID:    task.ID,
		TaskTitle: task.Title,
		UserID:    actorID,
		Details:   details,
		Timestamp: l.clock(),
	}
	// Newest first, same ordering as the task store.
	l.entries = append([]types.ActivityLog{entry}, l.entries...)

	l.logger.Debug("activity recorded",
		zap.String("action", string(action)),
		zap.String("task_id", task.ID))
}

// Entries returns a copy of the trail, newest first.
func (l *Log) Entries() []types.ActivityLog {
	l.mu.RLock()
	defer l.mu.RUnlock()

	result := make([]types.ActivityLog, len(l.entries))
	copy(result, l.entries)
	return result
}

// Len returns the number of entries.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

// Search filters the trail. The query is matched case-insensitively
// against entry details, the acting user's name, and the task title.
// action narrows to one action kind; "" or "all" means no constraint.
func (l *Log) Search(query string, action string) []types.ActivityLog {
	l.mu.RLock()
	defer l.mu.RUnlock()

	q := strings.ToLower(query)
	result := make([]types.ActivityLog, 0, len(l.entries))
	for _, entry := range l.entries {
		if action != "" && action != "all" && string(entry.Action) != action {
			continue
		}
		if q != "" && !l.matchesQuery(entry, q) {
			continue
		}
		result = append(result, entry)
	}
	return result
}

// matchesQuery checks one entry against a lowercased query.
func (l *Log) matchesQuery(entry types.ActivityLog, q string) bool {
	if strings.Contains(strings.ToLower(entry.Details), q) {
		return true
	}
	if strings.Contains(strings.ToLower(entry.TaskTitle), q) {
		return true
	}
	if l.users != nil {
		if u, err := l.users.Get(entry.UserID); err == nil {
			if strings.Contains(strings.ToLower(u.Name), q) {
				return true
			}
		}
	}
	return false
}

// ExportJSON writes the full trail to w, newest first. Backs the
// dashboard's export button.
func (l *Log) ExportJSON(w io.Writer) error {
	entries := l.Entries()

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}
