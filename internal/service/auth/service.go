package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/workflowhq/workforce-backend-go/internal/domain/auth"
	"github.com/workflowhq/workforce-backend-go/internal/domain/employee"
	"github.com/workflowhq/workforce-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	jwtService   jwt.Service
}

func NewAuthService(employeeRepo employee.EmployeeRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		employeeRepo: employeeRepo,
		jwtService:   jwtService,
	}
}

func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	emp, err := s.employeeRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			// Same answer for unknown email and wrong password.
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.Password)) != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	accessToken, accessExp, err := s.jwtService.GenerateAccessToken(emp.ID, emp.Email, emp.Role)
	if err != nil {
		return auth.LoginResponse{}, err
	}
	refreshToken, refreshExp, err := s.jwtService.GenerateRefreshToken(emp.ID)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		AccessToken:  accessToken,
		ExpiresAt:    accessExp,
		RefreshToken: refreshToken,
		RefreshExp:   refreshExp,
		Employee: auth.LoginProfile{
			ID:        emp.ID,
			FirstName: emp.FirstName,
			LastName:  emp.LastName,
			Email:     emp.Email,
			Role:      string(emp.Role),
		},
	}, nil
}

func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.RefreshResponse, error) {
	if s.jwtService.IsTokenRevoked(refreshToken) {
		return auth.RefreshResponse{}, auth.ErrRefreshTokenRevoked
	}

	employeeID, err := s.jwtService.ParseRefreshToken(refreshToken)
	if err != nil {
		return auth.RefreshResponse{}, auth.ErrInvalidToken
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.RefreshResponse{}, auth.ErrInvalidToken
		}
		return auth.RefreshResponse{}, err
	}

	accessToken, expiresAt, err := s.jwtService.GenerateAccessToken(emp.ID, emp.Email, emp.Role)
	if err != nil {
		return auth.RefreshResponse{}, err
	}

	return auth.RefreshResponse{
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
	}, nil
}

func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	if _, err := s.jwtService.ParseRefreshToken(refreshToken); err != nil {
		return auth.ErrInvalidToken
	}
	s.jwtService.RevokeToken(refreshToken)
	return nil
}
