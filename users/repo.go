// Package users provides the user repository. Tasks reference users by
// ID; the repository resolves those references at read time so renaming
// a user never leaves stale snapshots on task records.
package users

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nlnadialigiaconcursos-cmd/tasks-pro/types"
)

// Repo holds the project's user records. Reads vastly outnumber writes;
// the only write path is registration.
type Repo struct {
	mu    sync.RWMutex
	byID  map[string]types.User
	order []string // insertion order for stable listings
}

// NewRepo creates a repository seeded with the given users.
func NewRepo(seed ...types.User) *Repo {
	r := &Repo{byID: make(map[string]types.User, len(seed))}
	for _, u := range seed {
		if _, exists := r.byID[u.ID]; exists {
			continue
		}
		r.byID[u.ID] = u
		r.order = append(r.order, u.ID)
	}
	return r
}

// Get returns the user with the given ID.
func (r *Repo) Get(id string) (types.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return types.User{}, &types.NotFoundError{Resource: "user", ID: id}
	}
	return u, nil
}

// GetByEmail returns the user with the given email, compared
// case-insensitively.
func (r *Repo) GetByEmail(email string) (types.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		u := r.byID[id]
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return types.User{}, &types.NotFoundError{Resource: "user", ID: email}
}

// List returns all users in insertion order.
func (r *Repo) List() []types.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]types.User, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.byID[id])
	}
	return result
}

// ListByName returns all users sorted by display name.
func (r *Repo) ListByName() []types.User {
	result := r.List()
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

// Add registers a new user and returns the stored record with its
// assigned ID and creation time.
func (r *Repo) Add(u types.User, now time.Time) types.User {
	r.mu.Lock()
	defer r.mu.Unlock()

	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	if _, exists := r.byID[u.ID]; !exists {
		r.order = append(r.order, u.ID)
	}
	r.byID[u.ID] = u
	return u
}

// Len returns the number of users.
func (r *Repo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}

// Resolve looks up a task's assignee and creator. The assignee is nil
// for unassigned tasks. A dangling reference is an error; the mock data
// is supposed to be internally consistent.
func (r *Repo) Resolve(task types.Task) (assignee, creator *types.User, err error) {
	if task.AssigneeID != "" {
		u, err := r.Get(task.AssigneeID)
		if err != nil {
			return nil, nil, err
		}
		assignee = &u
	}
	if task.CreatedByID != "" {
		u, err := r.Get(task.CreatedByID)
		if err != nil {
			return nil, nil, err
		}
		creator = &u
	}
	return assignee, creator, nil
}
