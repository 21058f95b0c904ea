package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/giancarlosisasi/task-management-api/models"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validTaskInput() models.TaskInput {
	return models.TaskInput{
		Title:    "Write project report",
		Status:   models.StatusTodo,
		Priority: models.PriorityMedium,
	}
}

func validRegisterRequest() models.RegisterRequest {
	return models.RegisterRequest{
		Email:    "user@example.com",
		Password: "secret",
	}
}

// ---------------------------------------------------------------------------
// TestNewTaskValidator
// ---------------------------------------------------------------------------

func TestNewTaskValidator(t *testing.T) {
	v := NewTaskValidator()
	require.NotNil(t, v)
}

// ---------------------------------------------------------------------------
// TestValidate_Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewTaskValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		err := v.Validate(ctx, 42)
		require.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("TaskInput value", func(t *testing.T) {
		in := validTaskInput()
		require.NoError(t, v.Validate(ctx, in))
	})

	t.Run("TaskInput pointer", func(t *testing.T) {
		in := validTaskInput()
		require.NoError(t, v.Validate(ctx, &in))
	})

	t.Run("RegisterRequest value", func(t *testing.T) {
		r := validRegisterRequest()
		require.NoError(t, v.Validate(ctx, r))
	})

	t.Run("RegisterRequest pointer", func(t *testing.T) {
		r := validRegisterRequest()
		require.NoError(t, v.Validate(ctx, &r))
	})

	t.Run("unknown field", func(t *testing.T) {
		in := validTaskInput()
		require.ErrorIs(t, v.Validate(ctx, in, "nonexistent"), ErrUnknownField)
	})
}

// ---------------------------------------------------------------------------
// TestValidateTaskInput
// ---------------------------------------------------------------------------

func TestValidateTaskInput(t *testing.T) {
	v := NewTaskValidator()
	ctx := context.Background()

	t.Run("empty title", func(t *testing.T) {
		in := validTaskInput()
		in.Title = ""
		require.ErrorIs(t, v.Validate(ctx, in), ErrEmptyTitle)
	})

	t.Run("whitespace-only title", func(t *testing.T) {
		in := validTaskInput()
		in.Title = "   "
		require.ErrorIs(t, v.Validate(ctx, in), ErrEmptyTitle)
	})

	t.Run("title at limit", func(t *testing.T) {
		in := validTaskInput()
		in.Title = strings.Repeat("a", 100)
		require.NoError(t, v.Validate(ctx, in))
	})

	t.Run("title over limit", func(t *testing.T) {
		in := validTaskInput()
		in.Title = strings.Repeat("a", 101)
		require.ErrorIs(t, v.Validate(ctx, in), ErrTitleTooLong)
	})

	t.Run("empty status is allowed", func(t *testing.T) {
		in := validTaskInput()
		in.Status = ""
		require.NoError(t, v.Validate(ctx, in))
	})

	t.Run("unknown status", func(t *testing.T) {
		in := validTaskInput()
		in.Status = "urgent"
		require.ErrorIs(t, v.Validate(ctx, in), ErrInvalidStatus)
	})

	t.Run("uppercase status is rejected", func(t *testing.T) {
		in := validTaskInput()
		in.Status = "TODO"
		require.ErrorIs(t, v.Validate(ctx, in), ErrInvalidStatus)
	})

	t.Run("empty priority is allowed", func(t *testing.T) {
		in := validTaskInput()
		in.Priority = ""
		require.NoError(t, v.Validate(ctx, in))
	})

	t.Run("unknown priority", func(t *testing.T) {
		in := validTaskInput()
		in.Priority = "critical"
		require.ErrorIs(t, v.Validate(ctx, in), ErrInvalidPriority)
	})

	t.Run("field scoping skips other checks", func(t *testing.T) {
		in := validTaskInput()
		in.Title = ""
		in.Status = "urgent"
		require.ErrorIs(t, v.Validate(ctx, in, FieldStatus), ErrInvalidStatus)
	})
}

// ---------------------------------------------------------------------------
// TestValidateRegisterRequest
// ---------------------------------------------------------------------------

func TestValidateRegisterRequest(t *testing.T) {
	v := NewTaskValidator()
	ctx := context.Background()

	t.Run("empty email", func(t *testing.T) {
		r := validRegisterRequest()
		r.Email = ""
		require.ErrorIs(t, v.Validate(ctx, r), ErrEmptyEmail)
	})

	t.Run("email without at sign", func(t *testing.T) {
		r := validRegisterRequest()
		r.Email = "not-an-email"
		require.ErrorIs(t, v.Validate(ctx, r), ErrInvalidEmail)
	})

	t.Run("empty password", func(t *testing.T) {
		r := validRegisterRequest()
		r.Password = ""
		require.ErrorIs(t, v.Validate(ctx, r), ErrEmptyPassword)
	})
}
