// Package testutil provides the shared fixture universe for package
// tests: a fixed set of users and tasks with known counts, so tests can
// assert against the data instead of building their own.
package testutil

import (
	_ "embed"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/nlnadialigiaconcursos-cmd/tasks-pro/session"
	"github.com/nlnadialigiaconcursos-cmd/tasks-pro/taskstore"
	"github.com/nlnadialigiaconcursos-cmd/tasks-pro/types"
	"github.com/nlnadialigiaconcursos-cmd/tasks-pro/users"
)

//go:embed testdata/universe.yaml
var universeYAML []byte

// Universe gives typed access to the fixture data. Handles are loaded
// by ID from testdata/universe.yaml; tests reference them instead of
// repeating IDs.
type Universe struct {
	// Now is the fixed reference time. The fixture's overdue and
	// date-range expectations are relative to it.
	Now time.Time

	// Users, by role.
	Olivia types.User // owner
	Ethan  types.User // editor
	Maya   types.User // editor
	Vera   types.User // viewer

	// Sessions for each fixture user, issued at Now.
	OwnerSession  *session.Session
	EditorSession *session.Session
	ViewerSession *session.Session

	// Tasks, newest first as stored.
	ShipNotes        types.Task // in_progress, high, ethan, due after Now
	FixLogin         types.Task // in_progress, urgent, maya, overdue
	DraftRoadmap     types.Task // todo, unassigned, no due date
	PolishOnboarding types.Task // review, low, ethan
	RotateKeys       types.Task // todo, high, maya, overdue
	WriteChangelog   types.Task // done, due date passed but not overdue
	ArchiveDocs      types.Task // soft-deleted, unassigned
	OldBranding      types.Task // soft-deleted, maya, due date passed

	AllUsers []types.User
	AllTasks []types.Task

	ByID map[string]types.Task
}

type universeFile struct {
	ReferenceTime time.Time    `yaml:"reference_time"`
	Users         []types.User `yaml:"users"`
	Tasks         []types.Task `yaml:"tasks"`
}

// LoadUniverse decodes the fixture and returns a seeded store, a user
// repository, and the typed handles.
func LoadUniverse(t *testing.T) (*taskstore.Store, *users.Repo, *Universe) {
	t.Helper()

	var file universeFile
	if err := yaml.Unmarshal(universeYAML, &file); err != nil {
		t.Fatalf("failed to parse fixture: %v", err)
	}

	u := &Universe{
		Now:      file.ReferenceTime,
		AllUsers: file.Users,
		AllTasks: file.Tasks,
		ByID:     make(map[string]types.Task, len(file.Tasks)),
	}
	for _, task := range file.Tasks {
		u.ByID[task.ID] = task
	}

	byUserID := make(map[string]types.User, len(file.Users))
	for _, usr := range file.Users {
		byUserID[usr.ID] = usr
	}

	u.Olivia = mustUser(t, byUserID, "user-olivia")
	u.Ethan = mustUser(t, byUserID, "user-ethan")
	u.Maya = mustUser(t, byUserID, "user-maya")
	u.Vera = mustUser(t, byUserID, "user-vera")

	u.OwnerSession = session.New(u.Olivia, u.Now)
	u.EditorSession = session.New(u.Ethan, u.Now)
	u.ViewerSession = session.New(u.Vera, u.Now)

	u.ShipNotes = mustTask(t, u.ByID, "task-ship-notes")
	u.FixLogin = mustTask(t, u.ByID, "task-fix-login")
	u.DraftRoadmap = mustTask(t, u.ByID, "task-draft-roadmap")
	u.PolishOnboarding = mustTask(t, u.ByID, "task-polish-onboarding")
	u.RotateKeys = mustTask(t, u.ByID, "task-rotate-keys")
	u.WriteChangelog = mustTask(t, u.ByID, "task-write-changelog")
	u.ArchiveDocs = mustTask(t, u.ByID, "task-archive-docs")
	u.OldBranding = mustTask(t, u.ByID, "task-old-branding")

	repo := users.NewRepo(file.Users...)
	store := taskstore.New("apollo",
		taskstore.WithSeed(file.Tasks),
		taskstore.WithClock(func() time.Time { return file.ReferenceTime }),
	)

	return store, repo, u
}

// Active returns the fixture tasks that are not soft-deleted, in store
// order.
func (u *Universe) Active() []types.Task {
	result := make([]types.Task, 0, len(u.AllTasks))
	for _, t := range u.AllTasks {
		if !t.Deleted() {
			result = append(result, t)
		}
	}
	return result
}

// Deleted returns the soft-deleted fixture tasks, in store order.
func (u *Universe) Deleted() []types.Task {
	result := make([]types.Task, 0, len(u.AllTasks))
	for _, t := range u.AllTasks {
		if t.Deleted() {
			result = append(result, t)
		}
	}
	return result
}

func mustUser(t *testing.T, byID map[string]types.User, id string) types.User {
	t.Helper()
	u, ok := byID[id]
	if !ok {
		t.Fatalf("fixture user %s missing", id)
	}
	return u
}

func mustTask(t *testing.T, byID map[string]types.Task, id string) types.Task {
	t.Helper()
	task, ok := byID[id]
	if !ok {
		t.Fatalf("fixture task %s missing", id)
	}
	return task
}
