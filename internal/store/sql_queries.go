package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/giancarlosisasi/task-management-api/models"
)

const (
	createUser = `INSERT INTO users (email, hashed_password, is_active)
    VALUES ($1, $2, $3)
    RETURNING id, email, hashed_password, is_active, created_at;`

	findUserByEmail = `SELECT id, email, hashed_password, is_active, created_at
    FROM users
    WHERE email = $1;`

	getAllUsers = `SELECT id, email, hashed_password, is_active, created_at
    FROM users;`

	createTask = `INSERT INTO tasks (title, description, status, priority, due_date, user_id)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING id, title, description, status, priority, due_date, created_at, updated_at, user_id;`

	getTaskByID = `SELECT id, title, description, status, priority, due_date, created_at, updated_at, user_id
    FROM tasks
    WHERE id = $1;`

	deleteTask = `DELETE FROM tasks WHERE id = $1;`
)

// taskColumns is the canonical column order shared by every task query that
// scans full records.
var taskColumns = []string{
	"id", "title", "description", "status", "priority",
	"due_date", "created_at", "updated_at", "user_id",
}

// psql is a squirrel statement builder preconfigured for PostgreSQL
// positional placeholders ($1, $2, ...).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildGetAllTasksQuery builds the task listing query. The listing is a full
// scan; when ownerID is non-nil an owner filter is added for owner-scoped
// boards.
func buildGetAllTasksQuery(ownerID *int64) (string, []any, error) {
	builder := psql.Select(taskColumns...).From("tasks")

	if ownerID != nil {
		builder = builder.Where(sq.Eq{"user_id": *ownerID})
	}

	return builder.ToSql()
}

// buildUpdateTaskQuery builds the full-replace UPDATE for a task: every
// mutable column is overwritten from task (including nil optional fields,
// which reset the column to NULL) and updated_at is refreshed server-side.
func buildUpdateTaskQuery(id int64, task models.Task) (string, []any, error) {
	return psql.Update("tasks").
		Set("title", task.Title).
		Set("description", task.Description).
		Set("status", task.Status).
		Set("priority", task.Priority).
		Set("due_date", task.DueDate).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, title, description, status, priority, due_date, created_at, updated_at, user_id").
		ToSql()
}
