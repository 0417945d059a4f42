package taskstore

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/nlnadialigiaconcursos-cmd/tasks-pro/types"
)

// MutationOp identifies the kind of store mutation.
type MutationOp string

const (
	OpCreate     MutationOp = "create"
	OpUpdate     MutationOp = "update"
	OpSoftDelete MutationOp = "soft_delete"
	OpRestore    MutationOp = "restore"
	// OpRemove only appears as the inverse of a create. The store
	// exposes no hard delete; undoing a create is the one path that
	// physically drops a record.
	OpRemove MutationOp = "remove"
)

// Mutation captures one store change with enough state to build its
// inverse: the record before and after the change (nil Before for a
// create, nil After for a remove).
type Mutation struct {
	Op      MutationOp
	Before  *types.Task
	After   *types.Task
	ActorID string
	At      time.Time
}

// TaskID returns the ID of the affected task.
func (m Mutation) TaskID() string {
	if m.After != nil {
		return m.After.ID
	}
	if m.Before != nil {
		return m.Before.ID
	}
	return ""
}

// Invert returns the command that undoes this mutation.
func (m Mutation) Invert() Mutation {
	inv := Mutation{Before: m.After, After: m.Before, ActorID: m.ActorID, At: m.At}
	switch m.Op {
	case OpCreate:
		inv.Op = OpRemove
	case OpRemove:
		inv.Op = OpCreate
	case OpSoftDelete:
		inv.Op = OpRestore
	case OpRestore:
		inv.Op = OpSoftDelete
	default:
		inv.Op = OpUpdate
	}
	return inv
}

// ErrNothingToUndo is returned by Undo on an empty journal.
var ErrNothingToUndo = errors.New("nothing to undo")

// record appends a journal entry. Caller must hold the write lock.
func (s *Store) record(m Mutation) {
	s.journal = append(s.journal, m)
}

// Journal returns a copy of the mutation history, oldest first.
func (s *Store) Journal() []Mutation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]Mutation, len(s.journal))
	copy(result, s.journal)
	return result
}

// Undo reverts the most recent mutation and pops it from the journal.
// It returns the inverse command that was applied. This backs the
// undo-via-toast flow: the caller deletes optimistically and offers
// Undo for a short window.
func (s *Store) Undo() (Mutation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.journal) == 0 {
		return Mutation{}, ErrNothingToUndo
	}

	last := s.journal[len(s.journal)-1]
	inv := last.Invert()
	if err := s.applyInverse(inv); err != nil {
		return Mutation{}, err
	}
	s.journal = s.journal[:len(s.journal)-1]

	s.logger.Debug("mutation undone",
		zap.String("op", string(last.Op)),
		zap.String("task_id", last.TaskID()))
	return inv, nil
}

// applyInverse rewrites store state from an inverse command. Caller must
// hold the write lock.
func (s *Store) applyInverse(inv Mutation) error {
	switch inv.Op {
	case OpRemove:
		idx := s.indexOf(inv.Before.ID)
		if idx < 0 {
			return &types.NotFoundError{Resource: "task", ID: inv.Before.ID}
		}
		s.tasks = append(s.tasks[:idx], s.tasks[idx+1:]...)
	case OpCreate:
		s.tasks = append([]types.Task{*cloneTask(*inv.After)}, s.tasks...)
	default:
		idx := s.indexOf(inv.After.ID)
		if idx < 0 {
			return &types.NotFoundError{Resource: "task", ID: inv.After.ID}
		}
		s.tasks[idx] = *cloneTask(*inv.After)
	}
	return nil
}
