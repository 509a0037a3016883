package auth

import (
	"github.com/workflowhq/workforce-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoginResponse struct {
	AccessToken  string       `json:"access_token"`
	ExpiresAt    int64        `json:"expires_at"`
	RefreshToken string       `json:"-"`
	RefreshExp   int64        `json:"-"`
	Employee     LoginProfile `json:"employee"`
}

type LoginProfile struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

type RefreshResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"`
}
