// Package entity defines the response envelope and auth payloads shared by
// every API endpoint.
package entity

// ApiResponse is the uniform JSON envelope. Every endpoint, for every
// resource, answers with this shape so clients can treat all six resources
// identically.
type ApiResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Details string `json:"details,omitempty"`
}

// LoginForm is the login request body.
type LoginForm struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// TokenUser is the identity embedded in and recovered from a bearer token.
type TokenUser struct {
	Id       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}

// LoginResponse is returned on successful authentication.
type LoginResponse struct {
	Success bool      `json:"success"`
	Token   string    `json:"token"`
	User    TokenUser `json:"user"`
}

// VerifyResponse is returned by the token verification endpoint.
type VerifyResponse struct {
	Success bool       `json:"success"`
	User    *TokenUser `json:"user"`
}
