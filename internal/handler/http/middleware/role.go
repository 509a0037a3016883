package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/workflowhq/workforce-backend-go/internal/domain/employee"
	"github.com/workflowhq/workforce-backend-go/internal/handler/http/response"
)

// RequireAdmin requires the Admin role
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Forbidden(w, "Admin access required")
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != string(employee.RoleAdmin) {
			response.Forbidden(w, "Admin access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireManager requires Manager or Admin role
func RequireManager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Forbidden(w, "Manager access required")
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.Forbidden(w, "Manager access required")
			return
		}

		role := employee.Role(roleStr)
		if role != employee.RoleManager && role != employee.RoleAdmin {
			response.Forbidden(w, "Manager access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
