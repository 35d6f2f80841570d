package dto

import "time"

// LoginRequest represents the JSON request body for the login endpoint.
//
// @Description Request to open a session
// @Example {"username": "admin", "password": "move1234"}
type LoginRequest struct {
	// Username is the account name.
	Username string `json:"username" binding:"required" example:"admin"`
	// Password is the account password.
	Password string `json:"password" binding:"required" example:"move1234"`
} // @name LoginRequest

// LoginResponse is returned on a successful login. The same token is also
// set as the session cookie.
//
// @Description Successful login with the session token
type LoginResponse struct {
	// Token is the signed session token.
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	// ExpiresAt is when the session stops being accepted.
	ExpiresAt time.Time `json:"expiresAt" example:"2026-02-01T10:00:00Z"`
	// User is the authenticated account.
	User UserResponse `json:"user"`
} // @name LoginResponse

// SessionClaims is the identity carried inside a session token.
type SessionClaims struct {
	UserID   string `json:"uid"`
	Username string `json:"username"`
}

// UserResponse represents user information in API responses.
type UserResponse struct {
	ID       string `json:"id" example:"665f1c2e8b3e4a0012a1b2c3"`
	Username string `json:"username" example:"admin"`
} // @name UserResponse

// Validate performs custom validation on the login request.
func (r *LoginRequest) Validate() error {
	if r.Username == "" {
		return &ValidationError{
			Field:   "username",
			Message: "username is required",
		}
	}
	if r.Password == "" {
		return &ValidationError{
			Field:   "password",
			Message: "password is required",
		}
	}
	return nil
}
