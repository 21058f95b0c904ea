package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/giancarlosisasi/task-management-api/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a
// subset of fields (field-level scoping).
const (
	// FieldTitle targets the task title.
	FieldTitle = "title"

	// FieldStatus targets the task workflow status.
	FieldStatus = "status"

	// FieldPriority targets the task priority level.
	FieldPriority = "priority"

	// FieldEmail targets the account email of a registration request.
	FieldEmail = "email"

	// FieldPassword targets the plaintext password of a registration request.
	FieldPassword = "password"
)

// maxTitleLength mirrors the VARCHAR(100) column cap so oversized titles are
// rejected before reaching the database.
const maxTitleLength = 100

// TaskValidator implements the Validator interface for the task-management
// domain models: TaskInput and RegisterRequest.
//
// It supports both value and pointer receivers for every model type
// and allows optional field-level scoping via variadic field name arguments.
type TaskValidator struct {
}

// NewTaskValidator constructs a new TaskValidator
// and returns it as the Validator interface.
func NewTaskValidator() Validator {
	return &TaskValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Supported types:
//   - models.TaskInput / *models.TaskInput
//   - models.RegisterRequest / *models.RegisterRequest
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields restrict validation to the named subset; when omitted,
// every field of the model is validated.
func (v *TaskValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.TaskInput:
		return v.validateTaskInput(ctx, value, fields...)
	case *models.TaskInput:
		return v.validateTaskInput(ctx, *value, fields...)
	case models.RegisterRequest:
		return v.validateRegisterRequest(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *TaskValidator) validateTaskInput(_ context.Context, input models.TaskInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldStatus, FieldPriority}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if strings.TrimSpace(input.Title) == "" {
				return ErrEmptyTitle
			}
			if utf8.RuneCountInString(input.Title) > maxTitleLength {
				return ErrTitleTooLong
			}
		case FieldStatus:
			// empty means "use the default", only non-empty values must
			// belong to the closed vocabulary
			if input.Status != "" && !input.Status.Valid() {
				return ErrInvalidStatus
			}
		case FieldPriority:
			if input.Priority != "" && !input.Priority.Valid() {
				return ErrInvalidPriority
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *TaskValidator) validateRegisterRequest(_ context.Context, request models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if request.Email == "" {
				return ErrEmptyEmail
			}
			if !strings.Contains(request.Email, "@") {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if request.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
