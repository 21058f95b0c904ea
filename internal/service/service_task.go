package service

import (
	"context"
	"fmt"

	"github.com/giancarlosisasi/task-management-api/internal/config"
	"github.com/giancarlosisasi/task-management-api/internal/logger"
	"github.com/giancarlosisasi/task-management-api/internal/store"
	"github.com/giancarlosisasi/task-management-api/internal/validators"
	"github.com/giancarlosisasi/task-management-api/models"
)

// taskService is the concrete implementation of TaskService.
type taskService struct {
	taskRepository store.TaskRepository

	// validator enforces title and enum rules before any write.
	validator validators.Validator

	// ownerScopedLists restricts List to the caller's own tasks when enabled.
	ownerScopedLists bool

	logger *logger.Logger
}

// NewTaskService constructs a TaskService backed by the given TaskRepository.
func NewTaskService(taskRepository store.TaskRepository, cfg config.Tasks, logger *logger.Logger) TaskService {
	return &taskService{
		taskRepository:   taskRepository,
		validator:        validators.NewTaskValidator(),
		ownerScopedLists: cfg.OwnerScopedLists,
		logger:           logger,
	}
}

// Create validates the input, fills in defaulted fields, stamps the owner
// when one is present, and persists the task.
//
// Validation failures are wrapped in ErrValidation with the specific
// validator sentinel joined in.
func (t *taskService) Create(ctx context.Context, input models.TaskInput, owner *models.User) (models.Task, error) {
	log := logger.FromContext(ctx)

	if err := t.validator.Validate(ctx, input); err != nil {
		log.Error().Str("title", input.Title).Err(err).Msg("invalid task data provided")
		return models.Task{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	input.ApplyDefaults()

	task := models.Task{
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		Priority:    input.Priority,
		DueDate:     input.DueDate,
	}
	if owner != nil {
		task.UserID = &owner.ID
	}

	createdTask, err := t.taskRepository.CreateTask(ctx, task)
	if err != nil {
		log.Err(err).Str("title", task.Title).Msg("task creation ended with error")
		return models.Task{}, fmt.Errorf("task creation ended with error: %w", err)
	}

	return createdTask, nil
}

// List returns tasks. By default the listing is shared across all accounts;
// when owner-scoped listing is configured and an authenticated caller is
// present, only the caller's tasks are returned.
func (t *taskService) List(ctx context.Context, caller *models.User) ([]models.Task, error) {
	var ownerID *int64
	if t.ownerScopedLists && caller != nil {
		ownerID = &caller.ID
	}

	tasks, err := t.taskRepository.GetAllTasks(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("task listing ended with error: %w", err)
	}

	return tasks, nil
}

// Get returns a single task by ID. Not-found errors from the repository pass
// through unwrapped for transport-layer mapping.
func (t *taskService) Get(ctx context.Context, id int64) (models.Task, error) {
	return t.taskRepository.GetTask(ctx, id)
}

// Update validates the input and replaces every mutable field of the task.
// Omitted optional fields reset to their defaults (status=todo,
// priority=medium) or to NULL (description, due_date).
func (t *taskService) Update(ctx context.Context, id int64, input models.TaskInput) (models.Task, error) {
	log := logger.FromContext(ctx)

	if err := t.validator.Validate(ctx, input); err != nil {
		log.Error().Int64("id", id).Err(err).Msg("invalid task data provided")
		return models.Task{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	input.ApplyDefaults()

	task := models.Task{
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		Priority:    input.Priority,
		DueDate:     input.DueDate,
	}

	updatedTask, err := t.taskRepository.UpdateTask(ctx, id, task)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("task update ended with error")
		return models.Task{}, err
	}

	return updatedTask, nil
}

// Delete removes a task by ID.
func (t *taskService) Delete(ctx context.Context, id int64) error {
	return t.taskRepository.DeleteTask(ctx, id)
}
