// Package dto provides Data Transfer Objects for API requests and responses.
package dto

// CredentialsRequest represents the request body for signup and signin.
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse carries a freshly issued access token.
// The user record itself is never returned from the auth endpoints.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

// ErrorResponse represents an API error.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}
