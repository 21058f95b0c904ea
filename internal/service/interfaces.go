package service

import (
	"context"

	"github.com/giancarlosisasi/task-management-api/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, email string, password string) (models.User, error)
	Authenticate(ctx context.Context, email string, password string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ResolveUser(ctx context.Context, tokenString string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}

type TaskService interface {
	Create(ctx context.Context, input models.TaskInput, owner *models.User) (models.Task, error)
	List(ctx context.Context, caller *models.User) ([]models.Task, error)
	Get(ctx context.Context, id int64) (models.Task, error)
	Update(ctx context.Context, id int64, input models.TaskInput) (models.Task, error)
	Delete(ctx context.Context, id int64) error
}
