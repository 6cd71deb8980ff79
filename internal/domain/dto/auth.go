package dto

import "time"

// AdminLoginRequest represents the JSON request body for the admin login endpoint.
//
// @Description Admin panel credentials
// @Example {"username": "admin", "password": "bordadefogo2024"}
type AdminLoginRequest struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required" example:"bordadefogo2024"`
} // @name AdminLoginRequest

// AdminToken is the admin session issued on a successful login. ExpiresAt is
// nil when tokens do not expire.
//
// @Description Admin session token
type AdminToken struct {
	Token     string     `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	Username  string     `json:"username" example:"admin"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
} // @name AdminToken

// AdminClaims are the claims carried by an admin token (kept here to avoid
// an import cycle between service and middleware).
type AdminClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}
