// Package validators holds input validation for the API's domain models,
// decoupled from transport and storage so services can enforce business
// rules through a single injectable interface.
package validators

import "context"

// Validator validates arbitrary input values. Implementations may perform
// structural validation, semantic checks, cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
