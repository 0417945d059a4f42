package types

import "time"

// ActivityAction identifies the kind of action an activity entry records.
type ActivityAction string

const (
	ActionTaskCreated     ActivityAction = "task_created"
	ActionTaskUpdated     ActivityAction = "task_updated"
	ActionTaskDeleted     ActivityAction = "task_deleted"
	ActionTaskRestored    ActivityAction = "task_restored"
	ActionStatusChanged   ActivityAction = "status_changed"
	ActionAssigneeChanged ActivityAction = "assignee_changed"
	ActionCommentAdded    ActivityAction = "comment_added"
	ActionAttachmentAdded ActivityAction = "attachment_added"
	ActionMemberAdded     ActivityAction = "member_added"
	ActionMemberRemoved   ActivityAction = "member_removed"
)

// ActivityLog is a single audit trail entry. The acting user is referenced
// by ID; TaskTitle is denormalized on purpose so the trail survives task
// deletion.
type ActivityLog struct {
	ID        string         `json:"id"`
	Action    ActivityAction `json:"action"`
	TaskID    string         `json:"task_id,omitempty"`
	TaskTitle string         `json:"task_title,omitempty"`
	UserID    string         `json:"user_id"`
	Details   string         `json:"details"`
	Timestamp time.Time      `json:"timestamp"`
}

// NotificationType identifies the kind of a notification.
type NotificationType string

const (
	NotifyTaskAssigned    NotificationType = "task_assigned"
	NotifyTaskUpdated     NotificationType = "task_updated"
	NotifyCommentMention  NotificationType = "comment_mention"
	NotifyDueDateReminder NotificationType = "due_date_reminder"
	NotifyTaskCompleted   NotificationType = "task_completed"
)

// Notification is a dashboard notification for the current user.
type Notification struct {
	ID        string           `json:"id"`
	UserID    string           `json:"user_id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Read      bool             `json:"read"`
	TaskID    string           `json:"task_id,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}
