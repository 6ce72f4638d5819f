package model

import "time"

const (
	StatusPending   = "Pending"
	StatusCompleted = "Completed"
)

// Task is a unit of work tracked by the system
type Task struct {
	ID          int64        `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Status      string       `json:"status"` // "Pending" or "Completed"
	CreatedBy   *int         `json:"created_by,omitempty"`
	Creator     *UserSummary `json:"creator,omitempty"` // Resolved {name, email} on read paths
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// CreateTaskRequest is used for creating a new task
type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	Status      *string `json:"status" binding:"omitempty,oneof=Pending Completed"`
}

// UpdateTaskRequest allows partial updates; only these fields are mutable
type UpdateTaskRequest struct {
	Title       *string `json:"title,omitempty"` // Pointers to allow partial updates
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty" binding:"omitempty,oneof=Pending Completed"`
}

// TaskPage is one page of the task listing
type TaskPage struct {
	Tasks      []Task `json:"tasks"`
	Total      int64  `json:"total"`
	TotalPages int64  `json:"totalPages"`
	Page       int    `json:"page"`
}
