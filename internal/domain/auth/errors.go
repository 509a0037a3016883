package auth

import "errors"

// Auth domain errors
var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidToken        = errors.New("invalid or malformed token")
	ErrRefreshTokenRevoked = errors.New("refresh token revoked")
)
