package models

import "time"

// TaskStatus is the closed vocabulary of task workflow states.
type TaskStatus string

// Priority is the closed vocabulary of task priorities.
type Priority string

const (
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "in_progress"
	StatusDone       TaskStatus = "done"
)

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether s is one of the enumerated task statuses.
// The zero value is not valid; defaults are applied before validation.
func (s TaskStatus) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Valid reports whether p is one of the enumerated priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task represents a single task record.
//
// UserID is nullable: tasks created without an authenticated caller have no
// owner. CreatedAt and UpdatedAt are server-assigned; UpdatedAt is refreshed
// on every mutation.
type Task struct {
	// ID is the unique identifier of the task, assigned by the database.
	ID int64 `json:"id"`

	// Title is the required short description of the task, at most 100
	// characters.
	Title string `json:"title"`

	// Description is optional free-form text.
	Description *string `json:"description"`

	// Status is one of the TaskStatus values. Defaults to "todo".
	Status TaskStatus `json:"status"`

	// Priority is one of the Priority values. Defaults to "medium".
	Priority Priority `json:"priority"`

	// DueDate is the optional deadline of the task.
	DueDate *time.Time `json:"due_date"`

	// CreatedAt is set once at insertion time.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is refreshed by the store on every mutation.
	UpdatedAt time.Time `json:"updated_at"`

	// UserID references the owning user, when the task was created by an
	// authenticated caller.
	UserID *int64 `json:"user_id"`
}

// TableName returns the name of the database table
// associated with the Task model.
func (t Task) TableName() string {
	return "tasks"
}

// TaskInput is the payload accepted by the create and update task
// operations. Updates have full-replace semantics: every field of the stored
// record is overwritten from the input, with omitted optional fields
// reverting to their defaults.
type TaskInput struct {
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Status      TaskStatus `json:"status"`
	Priority    Priority   `json:"priority"`
	DueDate     *time.Time `json:"due_date"`
}

// ApplyDefaults fills in the default status and priority for fields omitted
// from the request body. Non-empty unknown values are left untouched so that
// validation can reject them.
func (in *TaskInput) ApplyDefaults() {
	if in.Status == "" {
		in.Status = StatusTodo
	}
	if in.Priority == "" {
		in.Priority = PriorityMedium
	}
}
