// Package mockapi simulates a remote backend for the dashboard. Every
// call sleeps a configured latency before touching the in-memory state,
// mirroring what a network round trip would feel like, and honors
// context cancellation during the wait.
package mockapi

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/nlnadialigiaconcursos-cmd/tasks-pro/activity"
	"github.com/nlnadialigiaconcursos-cmd/tasks-pro/internal/validation"
	"github.com/nlnadialigiaconcursos-cmd/tasks-pro/notify"
	"github.com/nlnadialigiaconcursos-cmd/tasks-pro/session"
	"github.com/nlnadialigiaconcursos-cmd/tasks-pro/taskstore"
	"github.com/nlnadialigiaconcursos-cmd/tasks-pro/types"
	"github.com/nlnadialigiaconcursos-cmd/tasks-pro/users"
)

const (
	// DefaultAPILatency matches the simulated delay of ordinary calls.
	DefaultAPILatency = 1000 * time.Millisecond
	// DefaultOAuthLatency is the longer delay of the OAuth handshake.
	DefaultOAuthLatency = 1500 * time.Millisecond
)

// Client fronts the stores with simulated-latency calls. It is safe for
// concurrent use; the underlying stores do their own locking.
type Client struct {
	store *taskstore.Store
	users *users.Repo
	trail *activity.Log
	feed  *notify.Feed

	apiLatency   time.Duration
	oauthLatency time.Duration
	failure      error
	clock        func() time.Time
	logger       *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithLatency overrides both simulated delays. Tests pass tiny values
// here so they stay fast.
func WithLatency(api, oauth time.Duration) Option {
	return func(c *Client) {
		c.apiLatency = api
		c.oauthLatency = oauth
	}
}

// WithFailure makes every subsequent call fail with err after its
// simulated round trip. Pass nil to clear.
func WithFailure(err error) Option {
	return func(c *Client) {
		c.failure = err
	}
}

// WithClock sets a custom time source.
func WithClock(fn func() time.Time) Option {
	return func(c *Client) {
		c.clock = fn
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient wires a client over the given stores. trail and feed may be
// nil when the caller does not care about audit entries or
// notifications.
func NewClient(store *taskstore.Store, repo *users.Repo, trail *activity.Log, feed *notify.Feed, opts ...Option) *Client {
	c := &Client{
		store:        store,
		users:        repo,
		trail:        trail,
		feed:         feed,
		apiLatency:   DefaultAPILatency,
		oauthLatency: DefaultOAuthLatency,
		clock:        time.Now,
		logger:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Configure applies options after construction. Tests use it to inject
// a failure mid-scenario.
func (c *Client) Configure(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// roundTrip simulates the network delay, then surfaces an injected
// failure if one is configured.
func (c *Client) roundTrip(ctx context.Context, latency time.Duration) error {
	if latency > 0 {
		timer := time.NewTimer(latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return err
	}
	if c.failure != nil {
		return c.failure
	}
	return nil
}

// Login authenticates by email and returns a session. The password is
// accepted as-is; this is a mock backend, not an auth system. Unknown
// emails fail with NotFoundError.
func (c *Client) Login(ctx context.Context, email, password string) (*session.Session, error) {
	if err := c.roundTrip(ctx, c.apiLatency); err != nil {
		return nil, err
	}

	u, err := c.users.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	c.logger.Info("user logged in", zap.String("user_id", u.ID))
	return session.New(u, c.clock()), nil
}

// LoginWithOAuth signs in through a simulated provider. Only google and
// github are recognized. The provider account is registered on first
// use with a provider-titled display name.
func (c *Client) LoginWithOAuth(ctx context.Context, provider string) (*session.Session, error) {
	if err := c.roundTrip(ctx, c.oauthLatency); err != nil {
		return nil, err
	}

	provider = strings.ToLower(provider)
	if provider != "google" && provider != "github" {
		return nil, &types.ValidationError{Field: "provider", Reason: "must be google or github"}
	}

	email := fmt.Sprintf("user@%s.example.com", provider)
	u, err := c.users.GetByEmail(email)
	if err != nil {
		u = c.users.Add(types.User{
			Email: email,
			Name:  titleCase(provider) + " User",
			Role:  types.RoleEditor,
		}, c.clock())
	}

	c.logger.Info("oauth login",
		zap.String("provider", provider),
		zap.String("user_id", u.ID))
	return session.New(u, c.clock()), nil
}

// Register creates a new account and returns its session. The first
// registered user of a fresh repository becomes the owner; later ones
// join as editors.
func (c *Client) Register(ctx context.Context, email, password, name string) (*session.Session, error) {
	if err := c.roundTrip(ctx, c.apiLatency); err != nil {
		return nil, err
	}

	if reason := validation.EmailProblem(email); reason != "" {
		return nil, &types.ValidationError{Field: "email", Reason: reason}
	}
	if reason := validation.NameProblem(name); reason != "" {
		return nil, &types.ValidationError{Field: "name", Reason: reason}
	}
	if _, err := c.users.GetByEmail(email); err == nil {
		return nil, &types.ValidationError{Field: "email", Reason: "already registered"}
	}

	role := types.RoleEditor
	if c.users.Len() == 0 {
		role = types.RoleOwner
	}
	u := c.users.Add(types.User{
		Email: email,
		Name:  strings.TrimSpace(name),
		Role:  role,
	}, c.clock())

	c.logger.Info("user registered", zap.String("user_id", u.ID))
	return session.New(u, c.clock()), nil
}

// Logout ends a session. Nothing server-side to tear down in the mock,
// but the call still pays the round trip so UIs exercise their spinner.
func (c *Client) Logout(ctx context.Context, sess *session.Session) error {
	if err := c.roundTrip(ctx, c.apiLatency); err != nil {
		return err
	}
	if sess.Authenticated() {
		c.logger.Info("user logged out", zap.String("user_id", sess.User.ID))
	}
	return nil
}

// FetchTasks returns the project's tasks, newest first.
func (c *Client) FetchTasks(ctx context.Context, sess *session.Session) ([]types.Task, error) {
	if err := c.roundTrip(ctx, c.apiLatency); err != nil {
		return nil, err
	}
	if !sess.Authenticated() {
		return nil, &types.ValidationError{Field: "session", Reason: "not authenticated"}
	}
	return c.store.List(), nil
}

// SaveTask creates or updates depending on whether the draft carries an
// ID, matching the single dialog the dashboard uses for both. A created
// task with an assignee pushes a notification to that user.
func (c *Client) SaveTask(ctx context.Context, sess *session.Session, draft taskstore.Draft) (types.Task, error) {
	if err := c.roundTrip(ctx, c.apiLatency); err != nil {
		return types.Task{}, err
	}

	if draft.ID != "" {
		task, err := c.store.Update(sess, draft.ID, taskstore.PatchFromDraft(draft))
		if err != nil {
			return types.Task{}, fmt.Errorf("save task: %w", err)
		}
		return task, nil
	}

	task, err := c.store.Create(sess, draft)
	if err != nil {
		return types.Task{}, fmt.Errorf("save task: %w", err)
	}
	if c.feed != nil && task.Assigned() && task.AssigneeID != sess.User.ID {
		c.feed.Push(task.AssigneeID, types.NotifyTaskAssigned,
			"New task assigned",
			fmt.Sprintf("You were assigned %q", task.Title),
			task.ID)
	}
	return task, nil
}

// FetchActivity returns matching audit trail entries, newest first.
// Query and action semantics follow activity.Log.Search.
func (c *Client) FetchActivity(ctx context.Context, sess *session.Session, query, action string) ([]types.ActivityLog, error) {
	if err := c.roundTrip(ctx, c.apiLatency); err != nil {
		return nil, err
	}
	if !sess.Authenticated() {
		return nil, &types.ValidationError{Field: "session", Reason: "not authenticated"}
	}
	if c.trail == nil {
		return nil, nil
	}
	return c.trail.Search(query, action), nil
}

// FetchNotifications returns the session user's notifications, newest
// first.
func (c *Client) FetchNotifications(ctx context.Context, sess *session.Session) ([]types.Notification, error) {
	if err := c.roundTrip(ctx, c.apiLatency); err != nil {
		return nil, err
	}
	if !sess.Authenticated() {
		return nil, &types.ValidationError{Field: "session", Reason: "not authenticated"}
	}
	if c.feed == nil {
		return nil, nil
	}
	return c.feed.List(sess.User.ID), nil
}

// DeleteTask moves a task to the trash.
func (c *Client) DeleteTask(ctx context.Context, sess *session.Session, id string) error {
	if err := c.roundTrip(ctx, c.apiLatency); err != nil {
		return err
	}
	if err := c.store.SoftDelete(sess, id); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}

// RestoreTask brings a trashed task back.
func (c *Client) RestoreTask(ctx context.Context, sess *session.Session, id string) error {
	if err := c.roundTrip(ctx, c.apiLatency); err != nil {
		return err
	}
	if err := c.store.Restore(sess, id); err != nil {
		return fmt.Errorf("restore task: %w", err)
	}
	return nil
}

// titleCase capitalizes the first letter of an ASCII word.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
