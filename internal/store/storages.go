package store

import "github.com/giancarlosisasi/task-management-api/internal/logger"

// Storages bundles all repositories sharing one database connection.
type Storages struct {
	UserRepository UserRepository
	TaskRepository TaskRepository
}

// NewStorages constructs every repository on top of the given connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, logger),
		TaskRepository: NewTaskRepository(db, logger),
	}
}
