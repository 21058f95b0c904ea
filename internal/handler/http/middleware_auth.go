package http

import (
	"context"
	"net/http"

	"github.com/giancarlosisasi/task-management-api/internal/logger"
	"github.com/giancarlosisasi/task-management-api/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// resolves the account via [service.AuthService.ResolveUser], and — on
// success — stores the authenticated user in the request context under
// [utils.UserCtxKey] before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized in the following cases:
//   - The "Authorization" header is absent ([ErrEmptyAuthorizationHeader]).
//   - The header value cannot be parsed as a bearer token
//     ([ErrInvalidAuthorizationHeader]).
//   - The token has expired, is otherwise invalid, or its subject no longer
//     matches a stored account.
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteError(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			utils.WriteError(w, ErrInvalidAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.ResolveUser(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during resolving token")
			utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		// Store the authenticated user in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserCtxKey, &user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// optionalAuth resolves the caller when a valid bearer token is present and
// passes the request through anonymously otherwise. Invalid or expired
// tokens are treated the same as no token at all.
func (h *Handler) optionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.ResolveUser(ctx, tokenString)
		if err != nil {
			logger.FromRequest(r).Debug().Err(err).Msg("ignoring invalid token on optional-auth route")
			next.ServeHTTP(w, r)
			return
		}

		ctx = context.WithValue(ctx, utils.UserCtxKey, &user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
