package taskstore

import (
	"time"

	"github.com/nlnadialigiaconcursos-cmd/tasks-pro/types"
)

// Draft carries the fields a caller provides when creating a task. Title
// is required; everything else falls back to the store defaults. ID is
// ignored by Create and exists so dialog-style callers can route a
// single form to create-or-update (see mockapi.Client.SaveTask).
type Draft struct {
	ID          string
	Title       string
	Description string
	Status      types.TaskStatus
	Priority    types.TaskPriority
	AssigneeID  string
	DueDate     *time.Time
	Tags        []string
	Attachments []types.Attachment
}

// Patch carries a partial update. Only non-nil fields are applied; a
// shallow merge over the existing record. Clearing the assignee is done
// by setting AssigneeID to a pointer to the empty string. ID, CreatedAt,
// CreatedByID, and ProjectID are not patchable.
type Patch struct {
	Title       *string
	Description *string
	Status      *types.TaskStatus
	Priority    *types.TaskPriority
	AssigneeID  *string
	DueDate     *time.Time
	Tags        []string
	Attachments []types.Attachment
}

// PatchFromDraft converts a fully-populated form into a patch that sets
// every field, matching the dialog flow where the form always carries
// the complete task.
func PatchFromDraft(d Draft) Patch {
	p := Patch{
		Title:       &d.Title,
		Description: &d.Description,
		AssigneeID:  &d.AssigneeID,
		DueDate:     d.DueDate,
		Tags:        d.Tags,
		Attachments: d.Attachments,
	}
	if d.Status != "" {
		status := d.Status
		p.Status = &status
	}
	if d.Priority != "" {
		priority := d.Priority
		p.Priority = &priority
	}
	return p
}
