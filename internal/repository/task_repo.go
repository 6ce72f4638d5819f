package repository

import (
	"context"
	"errors"
	"fmt"

	"task_manager/internal/model"

	"github.com/jackc/pgx/v5"
)

// taskColumns selects a task row joined with its creator; the join is LEFT so
// tasks without a creator (or whose creator was removed) still come back.
const taskColumns = `SELECT t.id, t.title, t.description, t.status, t.created_by, t.created_at, t.updated_at, u.name, u.email
            FROM tasks t LEFT JOIN users u ON t.created_by = u.id`

// TaskRepository defines operations for task data
type TaskRepository interface {
	Create(ctx context.Context, task *model.Task) error
	FindByID(ctx context.Context, id int64) (*model.Task, error)
	FindPage(ctx context.Context, offset, limit int) ([]model.Task, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, task *model.Task) error
	Delete(ctx context.Context, id int64) (int64, error)
}

type taskRepository struct {
	db DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db DB) TaskRepository {
	return &taskRepository{db: db}
}

// Create inserts a new task into the database
func (r *taskRepository) Create(ctx context.Context, t *model.Task) error {
	sql := `INSERT INTO tasks (title, description, status, created_by, created_at, updated_at)
            VALUES ($1, $2, $3, $4, $5, $5) RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, sql, t.Title, t.Description, t.Status, t.CreatedBy, t.CreatedAt).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

// FindByID retrieves a task by its ID with the creator resolved
func (r *taskRepository) FindByID(ctx context.Context, id int64) (*model.Task, error) {
	sql := taskColumns + ` WHERE t.id = $1`
	t, err := scanTask(r.db.QueryRow(ctx, sql, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find task by ID: %w", err)
	}
	return t, nil
}

// FindPage retrieves one page of tasks ordered newest-first
func (r *taskRepository) FindPage(ctx context.Context, offset, limit int) ([]model.Task, error) {
	sql := taskColumns + ` ORDER BY t.created_at DESC, t.id DESC OFFSET $1 LIMIT $2`
	rows, err := r.db.Query(ctx, sql, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks page: %w", err)
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task row: %w", err)
		}
		tasks = append(tasks, *t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating task rows: %w", err)
	}
	return tasks, nil
}

// CountAll returns the total number of tasks
func (r *taskRepository) CountAll(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM tasks`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to count tasks: %w", err)
	}
	return total, nil
}

// Update writes the mutable columns of an existing task
func (r *taskRepository) Update(ctx context.Context, t *model.Task) error {
	sql := `UPDATE tasks
            SET title = $1, description = $2, status = $3, updated_at = NOW()
            WHERE id = $4 RETURNING updated_at`
	err := r.db.QueryRow(ctx, sql, t.Title, t.Description, t.Status, t.ID).Scan(&t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("task not found for update")
		}
		return fmt.Errorf("failed to update task: %w", err)
	}
	return nil
}

// Delete removes a task and reports how many rows were affected.
// Zero affected rows is not an error; the service layer decides the policy.
func (r *taskRepository) Delete(ctx context.Context, id int64) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete task: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

func scanTask(row pgx.Row) (*model.Task, error) {
	t := &model.Task{}
	var creatorName, creatorEmail *string
	err := row.Scan(
		&t.ID, &t.Title, &t.Description, &t.Status, &t.CreatedBy,
		&t.CreatedAt, &t.UpdatedAt, &creatorName, &creatorEmail,
	)
	if err != nil {
		return nil, err
	}
	if creatorEmail != nil {
		summary := &model.UserSummary{Email: *creatorEmail}
		if creatorName != nil {
			summary.Name = *creatorName
		}
		t.Creator = summary
	}
	return t, nil
}
