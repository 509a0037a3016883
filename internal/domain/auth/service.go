package auth

import "context"

// AuthService defines authentication business logic.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (RefreshResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}
