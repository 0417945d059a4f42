package taskstore

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nlnadialigiaconcursos-cmd/tasks-pro/internal/validation"
	"github.com/nlnadialigiaconcursos-cmd/tasks-pro/session"
	"github.com/nlnadialigiaconcursos-cmd/tasks-pro/types"
)

// ActivityRecorder receives a trail entry for every successful mutation.
// The activity package provides the canonical implementation.
type ActivityRecorder interface {
	Record(actorID string, action types.ActivityAction, task types.Task, details string)
}

// Store holds one project's task collection, newest first. All methods
// are safe for concurrent use; a single RWMutex serializes writers the
// same way a UI event loop would.
type Store struct {
	projectID string

	mu      sync.RWMutex
	tasks   []types.Task
	journal []Mutation

	clock    func() time.Time
	logger   *zap.Logger
	recorder ActivityRecorder
}

// New creates an empty store for the given project.
func New(projectID string, opts ...Option) *Store {
	s := &Store{
		projectID: projectID,
		clock:     time.Now,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ProjectID returns the project this store belongs to.
func (s *Store) ProjectID() string {
	return s.projectID
}

// Len returns the number of records in the store, soft-deleted included.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}

// List returns a copy of the full collection in store order (newest
// first). Soft-deleted tasks are included; use the query package to
// project visible subsets.
func (s *Store) List() []types.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]types.Task, len(s.tasks))
	for i := range s.tasks {
		result[i] = *cloneTask(s.tasks[i])
	}
	return result
}

// Get returns the task with the given ID.
func (s *Store) Get(id string) (types.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return types.Task{}, &types.NotFoundError{Resource: "task", ID: id}
	}
	return *cloneTask(s.tasks[idx]), nil
}

// Create validates the draft and prepends a new task to the collection.
// Status defaults to todo and priority to medium; tags and attachments
// default to empty. The task is attributed to the session user.
func (s *Store) Create(sess *session.Session, draft Draft) (types.Task, error) {
	actorID, err := requireActor(sess)
	if err != nil {
		return types.Task{}, err
	}
	if problem := validation.TitleProblem(draft.Title); problem != "" {
		return types.Task{}, &types.ValidationError{Field: "title", Reason: problem}
	}
	if problem := validation.StatusProblem(draft.Status); problem != "" {
		return types.Task{}, &types.ValidationError{Field: "status", Reason: problem}
	}
	if problem := validation.PriorityProblem(draft.Priority); problem != "" {
		return types.Task{}, &types.ValidationError{Field: "priority", Reason: problem}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock()
	task := types.Task{
		ID:          uuid.New().String(),
		Title:       draft.Title,
		Description: draft.Description,
		Status:      draft.Status,
		Priority:    draft.Priority,
		AssigneeID:  draft.AssigneeID,
		CreatedByID: actorID,
		ProjectID:   s.projectID,
		DueDate:     draft.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
		Attachments: draft.Attachments,
		Tags:        draft.Tags,
	}
	if task.Status == "" {
		task.Status = types.StatusTodo
	}
	if task.Priority == "" {
		task.Priority = types.PriorityMedium
	}
	if task.Attachments == nil {
		task.Attachments = []types.Attachment{}
	}
	if task.Tags == nil {
		task.Tags = []string{}
	}

	// Newest first.
	s.tasks = append([]types.Task{task}, s.tasks...)
	s.record(Mutation{Op: OpCreate, After: cloneTask(task), ActorID: actorID, At: now})

	s.logger.Debug("task created",
		zap.String("task_id", task.ID),
		zap.String("actor_id", actorID))
	s.notifyRecorder(actorID, types.ActionTaskCreated, task,
		fmt.Sprintf("created task %q", task.Title))

	return *cloneTask(task), nil
}

// Update merges the set fields of patch over the existing record and
// bumps UpdatedAt. ID, CreatedAt, CreatedByID, and ProjectID cannot be
// changed.
func (s *Store) Update(sess *session.Session, id string, patch Patch) (types.Task, error) {
	actorID, err := requireActor(sess)
	if err != nil {
		return types.Task{}, err
	}
	if patch.Status != nil {
		if problem := validation.StatusProblem(*patch.Status); problem != "" || *patch.Status == "" {
			if problem == "" {
				problem = "status cannot be empty"
			}
			return types.Task{}, &types.ValidationError{Field: "status", Reason: problem}
		}
	}
	if patch.Priority != nil {
		if problem := validation.PriorityProblem(*patch.Priority); problem != "" || *patch.Priority == "" {
			if problem == "" {
				problem = "priority cannot be empty"
			}
			return types.Task{}, &types.ValidationError{Field: "priority", Reason: problem}
		}
	}
	if patch.Title != nil {
		if problem := validation.TitleProblem(*patch.Title); problem != "" {
			return types.Task{}, &types.ValidationError{Field: "title", Reason: problem}
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return types.Task{}, &types.NotFoundError{Resource: "task", ID: id}
	}

	before := cloneTask(s.tasks[idx])
	task := &s.tasks[idx]

	statusChanged := false
	assigneeChanged := false

	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.Status != nil && *patch.Status != task.Status {
		task.Status = *patch.Status
		statusChanged = true
	}
	if patch.AssigneeID != nil && *patch.AssigneeID != task.AssigneeID {
		task.AssigneeID = *patch.AssigneeID
		assigneeChanged = true
	}
	if patch.Priority != nil {
		task.Priority = *patch.Priority
	}
	if patch.DueDate != nil {
		task.DueDate = patch.DueDate
	}
	if patch.Tags != nil {
		task.Tags = patch.Tags
	}
	if patch.Attachments != nil {
		task.Attachments = patch.Attachments
	}
	task.UpdatedAt = s.clock()

	updated := *cloneTask(*task)
	s.record(Mutation{Op: OpUpdate, Before: before, After: cloneTask(updated), ActorID: actorID, At: task.UpdatedAt})

	s.logger.Debug("task updated",
		zap.String("task_id", id),
		zap.String("actor_id", actorID))

	switch {
	case statusChanged:
		s.notifyRecorder(actorID, types.ActionStatusChanged, updated,
			fmt.Sprintf("moved task %q to %s", updated.Title, updated.Status))
		if assigneeChanged {
			s.notifyRecorder(actorID, types.ActionAssigneeChanged, updated,
				fmt.Sprintf("reassigned task %q", updated.Title))
		}
	case assigneeChanged:
		s.notifyRecorder(actorID, types.ActionAssigneeChanged, updated,
			fmt.Sprintf("reassigned task %q", updated.Title))
	default:
		s.notifyRecorder(actorID, types.ActionTaskUpdated, updated,
			fmt.Sprintf("updated task %q", updated.Title))
	}

	return updated, nil
}

// SoftDelete marks the task as deleted by stamping DeletedAt. The record
// stays in the store and can be restored. Deleting an already-deleted
// task is a no-op that preserves the original DeletedAt, so the trash
// keeps a stable deletion time.
func (s *Store) SoftDelete(sess *session.Session, id string) error {
	actorID, err := requireActor(sess)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return &types.NotFoundError{Resource: "task", ID: id}
	}
	if s.tasks[idx].Deleted() {
		return nil
	}

	before := cloneTask(s.tasks[idx])
	now := s.clock()
	s.tasks[idx].DeletedAt = &now
	after := cloneTask(s.tasks[idx])

	s.record(Mutation{Op: OpSoftDelete, Before: before, After: after, ActorID: actorID, At: now})
	s.logger.Debug("task soft-deleted",
		zap.String("task_id", id),
		zap.String("actor_id", actorID))
	s.notifyRecorder(actorID, types.ActionTaskDeleted, *after,
		fmt.Sprintf("moved task %q to trash", after.Title))

	return nil
}

// Restore clears DeletedAt. Restoring a task that is not deleted is a
// no-op.
func (s *Store) Restore(sess *session.Session, id string) error {
	actorID, err := requireActor(sess)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return &types.NotFoundError{Resource: "task", ID: id}
	}
	if !s.tasks[idx].Deleted() {
		return nil
	}

	before := cloneTask(s.tasks[idx])
	now := s.clock()
	s.tasks[idx].DeletedAt = nil
	after := cloneTask(s.tasks[idx])

	s.record(Mutation{Op: OpRestore, Before: before, After: after, ActorID: actorID, At: now})
	s.logger.Debug("task restored",
		zap.String("task_id", id),
		zap.String("actor_id", actorID))
	s.notifyRecorder(actorID, types.ActionTaskRestored, *after,
		fmt.Sprintf("restored task %q", after.Title))

	return nil
}

// indexOf returns the position of the task with the given ID, or -1.
// Caller must hold the lock.
func (s *Store) indexOf(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) notifyRecorder(actorID string, action types.ActivityAction, task types.Task, details string) {
	if s.recorder != nil {
		s.recorder.Record(actorID, action, task, details)
	}
}

// requireActor extracts the acting user from the session. Mutations need
// attribution even though role enforcement stays with the caller.
func requireActor(sess *session.Session) (string, error) {
	if !sess.Authenticated() {
		return "", &types.ValidationError{Field: "session", Reason: "an authenticated session is required"}
	}
	return sess.User.ID, nil
}

// cloneTask deep-copies the slices so journal entries and returned
// records cannot alias store state.
func cloneTask(t types.Task) *types.Task {
	c := t
	if t.Tags != nil {
		c.Tags = make([]string, len(t.Tags))
		copy(c.Tags, t.Tags)
	}
	if t.Attachments != nil {
		c.Attachments = make([]types.Attachment, len(t.Attachments))
		copy(c.Attachments, t.Attachments)
	}
	if t.DueDate != nil {
		due := *t.DueDate
		c.DueDate = &due
	}
	if t.DeletedAt != nil {
		del := *t.DeletedAt
		c.DeletedAt = &del
	}
	return &c
}
