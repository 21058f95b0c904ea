package models

// RegisterRequest is the JSON payload accepted by the user registration
// endpoint. The password is transported in plaintext over the wire (TLS is
// assumed) and hashed before it ever reaches the store.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse is the body returned by a successful login.
// TokenType is always "bearer".
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// MessageResponse carries a human-readable confirmation message,
// e.g. after a successful delete.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the uniform error body of the API.
// Detail holds a human-readable description of the failure.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
