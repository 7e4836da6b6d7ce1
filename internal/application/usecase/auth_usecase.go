package usecase

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/nmthanh/backoffice-api/internal/application/dto"
	"github.com/nmthanh/backoffice-api/internal/domain"
	"github.com/nmthanh/backoffice-api/pkg/config"
	"github.com/nmthanh/backoffice-api/pkg/jwt"
)

// AuthUseCase handles employee sign-in.
type AuthUseCase struct {
	employees *EmployeeUseCase
	cfg       config.JWTConfig
}

func NewAuthUseCase(employees *EmployeeUseCase, cfg config.JWTConfig) *AuthUseCase {
	return &AuthUseCase{employees: employees, cfg: cfg}
}

// Login checks the credentials and issues a token. Unknown usernames and bad
// passwords report the same error so callers cannot probe for accounts.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	employee, err := uc.employees.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := jwt.Generate(uc.cfg.Secret, employee.ID, employee.FullName, employee.Role, uc.cfg.Issuer, uc.cfg.Expiration)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:    token,
		Employee: toEmployeeResponse(*employee),
	}, nil
}
