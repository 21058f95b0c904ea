package http

import (
	"errors"
	"net/http"

	"github.com/giancarlosisasi/task-management-api/internal/logger"
	"github.com/giancarlosisasi/task-management-api/internal/service"
	"github.com/giancarlosisasi/task-management-api/internal/utils"
	"github.com/giancarlosisasi/task-management-api/models"
)

// login exchanges form credentials for a bearer token. The request body is
// form-encoded with "username" carrying the account email, matching the
// OAuth2 password-flow shape the API has always exposed.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Str("func", "*Handler.login").Msg("invalid form body")
		utils.WriteError(w, "invalid form body", http.StatusBadRequest)
		return
	}

	email := r.PostFormValue("username")
	password := r.PostFormValue("password")

	foundUser, err := h.services.AuthService.Authenticate(ctx, email, password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Err(err).Str("email", email).Msg("authentication failed")
			utils.WriteError(w, service.ErrInvalidCredentials.Error(), http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", foundUser.ID).Str("email", foundUser.Email).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.TokenResponse{
		AccessToken: token.SignedString,
		TokenType:   "bearer",
	}, http.StatusOK)
}
