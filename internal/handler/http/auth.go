package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/workflowhq/workforce-backend-go/internal/domain/auth"
	"github.com/workflowhq/workforce-backend-go/internal/handler/http/response"
	"github.com/workflowhq/workforce-backend-go/internal/pkg/jwt"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	RefreshToken(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	jwtService  jwt.Service
	authService auth.AuthService
}

func NewAuthHandler(jwtService jwt.Service, authService auth.AuthService) AuthHandler {
	return &AuthHandlerImpl{
		jwtService:  jwtService,
		authService: authService,
	}
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := loginReq.Validate(); err != nil {
		slog.Error("Login validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	result, err := a.authService.Login(r.Context(), loginReq)
	if err != nil {
		slog.Error("Login service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Refresh token travels in an HttpOnly cookie, never in the body.
	http.SetCookie(w, a.jwtService.RefreshTokenCookie(result.RefreshToken, result.RefreshExp))

	slog.Info("Employee logged in", "employee_id", result.Employee.ID)
	response.SuccessWithMessage(w, "Login successful", result)
}

// RefreshToken implements AuthHandler.
func (a *AuthHandlerImpl) RefreshToken(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie("refresh_token")
	if err != nil {
		response.Unauthorized(w, "Refresh token missing")
		return
	}

	result, err := a.authService.Refresh(r.Context(), cookie.Value)
	if err != nil {
		slog.Error("RefreshToken service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Logout implements AuthHandler.
func (a *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie("refresh_token")
	if err == nil {
		if logoutErr := a.authService.Logout(r.Context(), cookie.Value); logoutErr != nil {
			slog.Warn("Logout revoke error", "error", logoutErr)
		}
	}

	// Expire the cookie regardless of token validity.
	http.SetCookie(w, &http.Cookie{
		Name:     "refresh_token",
		Value:    "",
		Path:     "/api/v1/auth",
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	response.SuccessWithMessage(w, "Logged out", nil)
}
