package model

import (
	"math"
	"time"
)

// TaskCategory scopes a task to a stage of the client relationship.
type TaskCategory string

// Task categories.
const (
	CategoryOnboarding TaskCategory = "onboarding"
	CategoryOperation  TaskCategory = "operation"
	CategoryOther      TaskCategory = "other"
)

// Valid reports whether c is a known category.
func (c TaskCategory) Valid() bool {
	switch c {
	case CategoryOnboarding, CategoryOperation, CategoryOther:
		return true
	}
	return false
}

// TaskStatus is the work state of a task.
type TaskStatus string

// Task statuses.
const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in_progress"
	TaskDone       TaskStatus = "done"
	TaskBlocked    TaskStatus = "blocked"
)

// Valid reports whether s is a known status.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskTodo, TaskInProgress, TaskDone, TaskBlocked:
		return true
	}
	return false
}

// Defaults applied when a task is created without the field.
const (
	DefaultTaskTitle  = "タスク"
	DefaultTaskSource = "manual"
)

// Task is one unit of onboarding or operational work for a client.
// Source and Assignee are open strings ("template", "manual", "sales", ...).
type Task struct {
	ID          string       `json:"id"`
	ClientID    string       `json:"client_id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Category    TaskCategory `json:"category"`
	Status      TaskStatus   `json:"status"`
	DueDate     *Time        `json:"due_date,omitempty"`
	CompletedAt *Time        `json:"completed_at,omitempty"`
	Assignee    string       `json:"assignee,omitempty"`
	Source      string       `json:"source"`
	TemplateID  string       `json:"template_id,omitempty"`
	CreatedAt   Time         `json:"created_at"`
	UpdatedAt   Time         `json:"updated_at"`
}

// IsOverdue reports whether the task has a due date strictly before now and
// is not done.
func (t Task) IsOverdue(now time.Time) bool {
	if t.DueDate == nil || t.Status == TaskDone {
		return false
	}
	return t.DueDate.Before(now)
}

// CreateTask is the payload for adding a task to a client.
type CreateTask struct {
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description,omitempty"`
	Category    TaskCategory `json:"category,omitempty"`
	Status      TaskStatus   `json:"status,omitempty"`
	DueDate     *Time        `json:"due_date,omitempty"`
	Assignee    string       `json:"assignee,omitempty"`
	Source      string       `json:"source,omitempty"`
	TemplateID  string       `json:"template_id,omitempty"`
}

// WithDefaults fills blank fields with the creation defaults.
func (c CreateTask) WithDefaults() CreateTask {
	if c.Title == "" {
		c.Title = DefaultTaskTitle
	}
	if c.Category == "" {
		c.Category = CategoryOperation
	}
	if c.Status == "" {
		c.Status = TaskTodo
	}
	if c.Source == "" {
		c.Source = DefaultTaskSource
	}
	return c
}

// TaskPatch is a partial task update. Nil fields are left untouched.
type TaskPatch struct {
	Title       *string       `json:"title,omitempty"`
	Description *string       `json:"description,omitempty"`
	Category    *TaskCategory `json:"category,omitempty"`
	Status      *TaskStatus   `json:"status,omitempty"`
	DueDate     *Time         `json:"due_date,omitempty"`
	CompletedAt *Time         `json:"completed_at,omitempty"`
	Assignee    *string       `json:"assignee,omitempty"`
	Source      *string       `json:"source,omitempty"`
}

// Apply merges the non-nil fields of p into t.
func (p TaskPatch) Apply(t *Task) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.DueDate != nil {
		t.DueDate = clonePtr(p.DueDate)
	}
	if p.CompletedAt != nil {
		t.CompletedAt = clonePtr(p.CompletedAt)
	}
	if p.Assignee != nil {
		t.Assignee = *p.Assignee
	}
	if p.Source != nil {
		t.Source = *p.Source
	}
}

// StaleContactAfter is how long without contact raises a client alert.
const StaleContactAfter = 14 * 24 * time.Hour

// OnboardingProgress returns the done fraction of onboarding tasks rounded to
// two decimals, or nil when the client has no onboarding tasks.
func OnboardingProgress(tasks []Task) *float64 {
	var total, done int
	for _, t := range tasks {
		if t.Category != CategoryOnboarding {
			continue
		}
		total++
		if t.Status == TaskDone {
			done++
		}
	}
	if total == 0 {
		return nil
	}
	p := math.Round(float64(done)/float64(total)*100) / 100
	return &p
}

// HasAlert reports whether any task is overdue or the last contact is at
// least StaleContactAfter old.
func HasAlert(c Client, tasks []Task, now time.Time) bool {
	for _, t := range tasks {
		if t.IsOverdue(now) {
			return true
		}
	}
	return c.LastContactAt != nil && now.Sub(c.LastContactAt.Time) >= StaleContactAfter
}
