package domain

import "time"

// Priority levels accepted for a task. Anything else submitted through the
// form falls back to PriorityMedium.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Status of a task. Only Pending is ever assigned; no transition exists.
type Status string

const StatusPending Status = "Pending"

const DefaultCategory = "General"

// Task represents a single to-do item owned by one account. Tasks are
// immutable after creation except for deletion.
type Task struct {
	ID          string     `json:"id"`
	OwnerID     string     `json:"owner_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Priority    Priority   `json:"priority"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Status      Status     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ApplyDefaults fills the documented fallbacks for fields left empty on
// submission: category "General", priority Medium, status Pending.
func (t *Task) ApplyDefaults() {
	if t == nil {
		return
	}
	if t.Category == "" {
		t.Category = DefaultCategory
	}
	switch t.Priority {
	case PriorityLow, PriorityMedium, PriorityHigh:
	default:
		t.Priority = PriorityMedium
	}
	if t.Status == "" {
		t.Status = StatusPending
	}
}
