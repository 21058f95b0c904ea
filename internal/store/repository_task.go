package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/giancarlosisasi/task-management-api/internal/logger"
	"github.com/giancarlosisasi/task-management-api/models"
)

// taskRepository is the PostgreSQL-backed implementation of [TaskRepository].
// It executes all task CRUD operations directly against the "tasks" table
// using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (task id, owner id, etc.).
type taskRepository struct {
	*DB
	logger *logger.Logger
}

// NewTaskRepository constructs a [TaskRepository] backed by the provided
// database connection and logger.
func NewTaskRepository(db *DB, logger *logger.Logger) TaskRepository {
	logger.Debug().Msg("creating task repository")
	return &taskRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateTask inserts a new task record and returns the fully populated
// [models.Task] with server-assigned fields (ID, CreatedAt, UpdatedAt).
//
// The owner reference is nullable: a nil task.UserID inserts a NULL user_id.
func (t *taskRepository) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	log := logger.FromContext(ctx)

	var created models.Task
	row := t.DB.QueryRowContext(ctx, createTask,
		task.Title,
		task.Description,
		task.Status,
		task.Priority,
		task.DueDate,
		task.UserID,
	)

	if err := scanTask(row, &created); err != nil {
		log.Err(err).Str("func", "taskRepository.CreateTask").Str("title", task.Title).Msg("failed to insert task")
		return models.Task{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// GetTask retrieves the task with the given id.
//
// Error handling:
//   - No matching row → [ErrTaskNotFound].
//   - Any other driver-level error → wrapped with [ErrExecutingQuery].
func (t *taskRepository) GetTask(ctx context.Context, id int64) (models.Task, error) {
	log := logger.FromContext(ctx)

	var task models.Task
	row := t.DB.QueryRowContext(ctx, getTaskByID, id)

	if err := scanTask(row, &task); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Task{}, ErrTaskNotFound
		}

		log.Err(err).Str("func", "taskRepository.GetTask").Int64("task_id", id).Msg("failed to query task")
		return models.Task{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return task, nil
}

// GetAllTasks returns task records as an unordered full scan.
//
// When ownerID is non-nil the scan is narrowed to tasks owned by that user;
// otherwise every task is returned regardless of owner.
func (t *taskRepository) GetAllTasks(ctx context.Context, ownerID *int64) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetAllTasksQuery(ownerID)
	if err != nil {
		log.Err(err).Str("func", "taskRepository.GetAllTasks").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := t.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "taskRepository.GetAllTasks").Msg("failed to execute query for getting tasks")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tasks := make([]models.Task, 0, 50)

	for rows.Next() {
		var task models.Task

		scanErr := rows.Scan(
			&task.ID,
			&task.Title,
			&task.Description,
			&task.Status,
			&task.Priority,
			&task.DueDate,
			&task.CreatedAt,
			&task.UpdatedAt,
			&task.UserID,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "taskRepository.GetAllTasks").Msg("failed to scan task row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		tasks = append(tasks, task)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "taskRepository.GetAllTasks").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return tasks, nil
}

// UpdateTask overwrites every mutable column of the task with the given id
// (full-replace semantics, nil optional fields reset their columns to NULL)
// and refreshes updated_at. The owner reference is never changed by an
// update.
//
// Error handling:
//   - No matching row → [ErrTaskNotFound].
//   - Any other driver-level error → wrapped with [ErrExecutingQuery].
func (t *taskRepository) UpdateTask(ctx context.Context, id int64, task models.Task) (models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateTaskQuery(id, task)
	if err != nil {
		log.Err(err).Str("func", "taskRepository.UpdateTask").Int64("task_id", id).Msg("failed to build update query")
		return models.Task{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.Task
	row := t.DB.QueryRowContext(ctx, query, args...)

	if err := scanTask(row, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Task{}, ErrTaskNotFound
		}

		log.Err(err).Str("func", "taskRepository.UpdateTask").Int64("task_id", id).Msg("failed to execute update query")
		return models.Task{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return updated, nil
}

// DeleteTask removes the task with the given id.
//
// Error handling:
//   - Zero affected rows → [ErrTaskNotFound].
//   - Any driver-level error → wrapped with [ErrExecutingQuery].
func (t *taskRepository) DeleteTask(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := t.DB.ExecContext(ctx, deleteTask, id)
	if err != nil {
		log.Err(err).Str("func", "taskRepository.DeleteTask").Int64("task_id", id).Msg("failed to execute delete query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "taskRepository.DeleteTask").Int64("task_id", id).Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if affected == 0 {
		return ErrTaskNotFound
	}

	return nil
}

// scanTask scans one full task row in the canonical column order shared by
// every RETURNING clause and [getTaskByID].
func scanTask(row *sql.Row, task *models.Task) error {
	return row.Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&task.Status,
		&task.Priority,
		&task.DueDate,
		&task.CreatedAt,
		&task.UpdatedAt,
		&task.UserID,
	)
}
