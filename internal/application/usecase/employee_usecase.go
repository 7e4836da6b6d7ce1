package usecase

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/nmthanh/backoffice-api/internal/application/dto"
	"github.com/nmthanh/backoffice-api/internal/application/store"
	"github.com/nmthanh/backoffice-api/internal/domain"
	"github.com/nmthanh/backoffice-api/internal/domain/entity"
	"github.com/nmthanh/backoffice-api/internal/domain/format"
)

// EmployeeUseCase manages back-office accounts. Account changes are not
// audit-logged; the history log covers warehouse entities only.
type EmployeeUseCase struct {
	store *store.EntityStore[entity.Employee]
	now   func() time.Time
}

func NewEmployeeUseCase(s *store.EntityStore[entity.Employee]) *EmployeeUseCase {
	return &EmployeeUseCase{store: s, now: time.Now}
}

// List returns all accounts, optionally filtered by username or full name.
func (uc *EmployeeUseCase) List(ctx context.Context, search string) (*dto.EmployeeListResponse, error) {
	employees := uc.store.List(ctx, search)
	items := make([]dto.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		items = append(items, toEmployeeResponse(e))
	}
	return &dto.EmployeeListResponse{Items: items, Total: len(employees)}, nil
}

// GetByID returns one account, or (nil, nil).
func (uc *EmployeeUseCase) GetByID(ctx context.Context, id string) (*dto.EmployeeResponse, error) {
	employee, found := uc.store.Get(ctx, id)
	if !found {
		return nil, nil
	}
	resp := toEmployeeResponse(employee)
	return &resp, nil
}

// GetByUsername returns the raw record for credential checks.
func (uc *EmployeeUseCase) GetByUsername(ctx context.Context, username string) (*entity.Employee, error) {
	for _, e := range uc.store.List(ctx, "") {
		if e.Username == username {
			return &e, nil
		}
	}
	return nil, nil
}

// Create registers an account. Usernames are unique.
func (uc *EmployeeUseCase) Create(ctx context.Context, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	existing, err := uc.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	employee := entity.Employee{
		ID:           uc.store.NewID(),
		Username:     in.Username,
		FullName:     in.FullName,
		Role:         in.Role,
		Status:       in.Status,
		CreatedDate:  uc.now().Format(format.CanonicalDateLayout),
		PasswordHash: string(hash),
	}
	if employee.Status == "" {
		employee.Status = "active"
	}
	if err := uc.store.Insert(ctx, employee); err != nil {
		return nil, err
	}
	resp := toEmployeeResponse(employee)
	return &resp, nil
}

// Update patches an account; the username is immutable. The password is
// hashed up front so a hashing failure leaves the record fully untouched.
func (uc *EmployeeUseCase) Update(ctx context.Context, id string, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	var newHash string
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		newHash = string(hash)
	}
	employee, found, err := uc.store.Update(ctx, id, func(e *entity.Employee) {
		if in.FullName != nil {
			e.FullName = *in.FullName
		}
		if in.Role != nil {
			e.Role = *in.Role
		}
		if in.Status != nil {
			e.Status = *in.Status
		}
		if in.Password != nil {
			e.PasswordHash = newHash
		}
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	resp := toEmployeeResponse(employee)
	return &resp, nil
}

// Delete removes an account, reporting (nil, nil) for unknown ids.
func (uc *EmployeeUseCase) Delete(ctx context.Context, id string) (*dto.EmployeeResponse, error) {
	removed, found, err := uc.store.Remove(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	resp := toEmployeeResponse(removed)
	return &resp, nil
}

func toEmployeeResponse(e entity.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:          e.ID,
		Username:    e.Username,
		FullName:    e.FullName,
		Role:        e.Role,
		Status:      e.Status,
		CreatedDate: e.CreatedDate,
	}
}
