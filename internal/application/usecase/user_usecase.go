package usecase

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/hwelikannage/pos-api/internal/application/dto"
	"github.com/hwelikannage/pos-api/internal/domain"
	"github.com/hwelikannage/pos-api/internal/domain/entity"
	"github.com/hwelikannage/pos-api/internal/domain/repository"
)

// UserUseCase CRUD operations for staff users. Passwords are bcrypt-hashed
// before they reach the repository.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase builds the use case.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Create validates and persists a new staff user.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if err := uc.validateUser(in.FirstName, in.LastName, in.Username, in.Role, 0); err != nil {
		return nil, err
	}
	if in.Password == "" {
		return nil, domain.Validationf("Password can not be empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Username:     in.Username,
		PasswordHash: string(hash),
		Role:         in.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// GetByID returns one user or NotFound.
func (uc *UserUseCase) GetByID(id int64) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NotFound("user", id)
	}
	return toUserResponse(user), nil
}

// List returns a page of users.
func (uc *UserUseCase) List(limit, offset int) ([]dto.UserResponse, error) {
	users, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *toUserResponse(u))
	}
	return out, nil
}

// Update applies the non-nil fields and persists the user. A new password,
// when present, is re-hashed.
func (uc *UserUseCase) Update(id int64, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NotFound("user", id)
	}
	if in.FirstName != nil {
		user.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		user.LastName = *in.LastName
	}
	if in.Username != nil {
		user.Username = *in.Username
	}
	if in.Role != nil {
		user.Role = *in.Role
	}
	if err := uc.validateUser(user.FirstName, user.LastName, user.Username, user.Role, id); err != nil {
		return nil, err
	}
	if in.Password != nil {
		if *in.Password == "" {
			return nil, domain.Validationf("Password can not be empty")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Delete removes a user or fails with NotFound.
func (uc *UserUseCase) Delete(id int64) error {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.NotFound("user", id)
	}
	return uc.repo.Delete(id)
}

// validateUser enforces the field rules plus username uniqueness. selfID
// excludes the record being updated from the uniqueness check.
func (uc *UserUseCase) validateUser(firstName, lastName, username, role string, selfID int64) error {
	if firstName == "" {
		return domain.Validationf("First name can not be empty")
	}
	if lastName == "" {
		return domain.Validationf("Last name can not be empty")
	}
	if username == "" {
		return domain.Validationf("User name can not be empty")
	}
	if err := validate.Var(role, "required,oneof=ADMIN CASHIER"); err != nil {
		return domain.Validationf("User role must be ADMIN or CASHIER")
	}
	existing, err := uc.repo.GetByUsername(username)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != selfID {
		return domain.Validationf("Username is already taken")
	}
	return nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Username:  u.Username,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
