package taskstore

import (
	"time"

	"go.uber.org/zap"

	"github.com/nlnadialigiaconcursos-cmd/tasks-pro/types"
)

// Option configures a Store.
type Option func(*Store)

// WithClock sets a custom time source. Tests use this for deterministic
// timestamps.
func WithClock(fn func() time.Time) Option {
	return func(s *Store) {
		s.clock = fn
	}
}

// WithLogger sets the logger. The default is a no-op logger so the store
// stays quiet when embedded.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithActivityRecorder wires an audit trail sink that receives an entry
// for every successful mutation.
func WithActivityRecorder(r ActivityRecorder) Option {
	return func(s *Store) {
		s.recorder = r
	}
}

// WithSeed pre-populates the collection. Seeded records bypass
// validation and the journal; they are assumed to come from a trusted
// snapshot. Order is preserved as given (newest first).
func WithSeed(tasks []types.Task) Option {
	return func(s *Store) {
		seeded := make([]types.Task, len(tasks))
		for i := range tasks {
			seeded[i] = *cloneTask(tasks[i])
		}
		s.tasks = seeded
	}
}
