package service

import (
	"context"
	"fmt"
	"time"

	"github.com/giancarlosisasi/task-management-api/internal/config"
	"github.com/giancarlosisasi/task-management-api/internal/logger"
	"github.com/giancarlosisasi/task-management-api/internal/store"
	"github.com/giancarlosisasi/task-management-api/internal/utils"
	"github.com/giancarlosisasi/task-management-api/internal/validators"
	"github.com/giancarlosisasi/task-management-api/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// validator checks registration input before any hashing or persistence.
	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		validator:      validators.NewTaskValidator(),
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// It validates the registration input, hashes the password with bcrypt, and
// delegates persistence to the UserRepository.
//
// Returns the persisted user (with a server-assigned ID) or:
//   - ErrInvalidDataProvided (wrapping the validator sentinel) on bad input.
//   - A wrapped storage error if the repository call fails (e.g. email already
//     taken — see store.ErrEmailAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, email string, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	request := models.RegisterRequest{Email: email, Password: password}
	if err := a.validator.Validate(ctx, request); err != nil {
		log.Error().Str("email", email).Err(err).Msg("invalid registration data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	digest, err := utils.HashPassword(password)
	if err != nil {
		log.Err(err).Str("email", email).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Email:          email,
		HashedPassword: digest,
		IsActive:       true,
	})
	if err != nil {
		log.Err(err).Str("email", email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Authenticate verifies a user's credentials.
//
// Unknown email and wrong password both return the bare ErrInvalidCredentials
// so callers cannot distinguish which check failed.
func (a *authService) Authenticate(ctx context.Context, email string, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, ErrInvalidCredentials
	}

	if !utils.CheckPassword(password, foundUser.HashedPassword) {
		log.Error().Int64("id", foundUser.ID).Str("email", foundUser.Email).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim and the user's email as the subject, and
// expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.Email, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ResolveUser validates a raw JWT string and loads the account it belongs to.
//
// Signature, issuer, and expiry failures are normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect low-level
// JWT errors. A token whose subject no longer matches a stored user yields a
// wrapped store.ErrNoUserWasFound.
func (a *authService) ResolveUser(ctx context.Context, tokenString string) (models.User, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.User{}, ErrTokenIsExpiredOrInvalid
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, token.Email)
	if err != nil {
		log.Err(err).Str("email", token.Email).Msg("token subject lookup failed")
		return models.User{}, fmt.Errorf("token subject lookup failed: %w", err)
	}

	return foundUser, nil
}

// ListUsers returns every registered account.
func (a *authService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := a.userRepository.GetAllUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("user listing ended with error: %w", err)
	}

	return users, nil
}
