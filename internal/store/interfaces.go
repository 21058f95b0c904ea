package store

import (
	"context"

	"github.com/giancarlosisasi/task-management-api/models"
)

// UserRepository is the persistence boundary for user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
}

// TaskRepository is the persistence boundary for task records.
//
// UpdateTask has full-replace semantics: every mutable column is overwritten
// from the given task and updated_at is refreshed by the store.
type TaskRepository interface {
	CreateTask(ctx context.Context, task models.Task) (models.Task, error)
	GetTask(ctx context.Context, id int64) (models.Task, error)
	GetAllTasks(ctx context.Context, ownerID *int64) ([]models.Task, error)
	UpdateTask(ctx context.Context, id int64, task models.Task) (models.Task, error)
	DeleteTask(ctx context.Context, id int64) error
}
