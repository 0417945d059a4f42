// Package types defines the core value types shared across the task
// dashboard domain: tasks, users, roles, filter criteria, activity log
// entries, and notifications.
package types

import "time"

// TaskStatus is the workflow state of a task.
type TaskStatus string

const (
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "in_progress"
	StatusReview     TaskStatus = "review"
	StatusDone       TaskStatus = "done"
)

// TaskStatuses lists every valid status in workflow order.
var TaskStatuses = []TaskStatus{StatusTodo, StatusInProgress, StatusReview, StatusDone}

// Valid reports whether s is one of the known statuses.
func (s TaskStatus) Valid() bool {
	for _, v := range TaskStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// TaskPriority is the urgency level of a task.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
	PriorityUrgent TaskPriority = "urgent"
)

// TaskPriorities lists every valid priority from lowest to highest.
var TaskPriorities = []TaskPriority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}

// Valid reports whether p is one of the known priorities.
func (p TaskPriority) Valid() bool {
	for _, v := range TaskPriorities {
		if p == v {
			return true
		}
	}
	return false
}

// Task is a single task record. Assignee and creator are stored as user IDs
// and resolved against a users.Repo at read time; an empty AssigneeID means
// the task is unassigned.
type Task struct {
	ID          string       `json:"id" yaml:"id"`
	Title       string       `json:"title" yaml:"title"`
	Description string       `json:"description" yaml:"description"`
	Status      TaskStatus   `json:"status" yaml:"status"`
	Priority    TaskPriority `json:"priority" yaml:"priority"`
	AssigneeID  string       `json:"assignee_id,omitempty" yaml:"assignee_id"`
	CreatedByID string       `json:"created_by_id" yaml:"created_by_id"`
	ProjectID   string       `json:"project_id" yaml:"project_id"`
	DueDate     *time.Time   `json:"due_date,omitempty" yaml:"due_date"`
	CreatedAt   time.Time    `json:"created_at" yaml:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at" yaml:"updated_at"`
	// DeletedAt implements soft delete: a non-nil value marks the task as
	// deleted while the record stays in the store.
	DeletedAt   *time.Time   `json:"deleted_at,omitempty" yaml:"deleted_at"`
	Attachments []Attachment `json:"attachments" yaml:"attachments"`
	Tags        []string     `json:"tags" yaml:"tags"`
}

// Deleted reports whether the task is soft-deleted.
func (t Task) Deleted() bool {
	return t.DeletedAt != nil
}

// Assigned reports whether the task has an assignee.
func (t Task) Assigned() bool {
	return t.AssigneeID != ""
}

// Attachment is a file attached to a task.
type Attachment struct {
	ID           string    `json:"id" yaml:"id"`
	Name         string    `json:"name" yaml:"name"`
	URL          string    `json:"url" yaml:"url"`
	ContentType  string    `json:"content_type" yaml:"content_type"`
	Size         int64     `json:"size" yaml:"size"`
	UploadedByID string    `json:"uploaded_by_id" yaml:"uploaded_by_id"`
	UploadedAt   time.Time `json:"uploaded_at" yaml:"uploaded_at"`
}
