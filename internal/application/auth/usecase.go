package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/hwelikannage/pos-api/internal/application/dto"
	"github.com/hwelikannage/pos-api/internal/domain"
	"github.com/hwelikannage/pos-api/internal/domain/repository"
	pkgjwt "github.com/hwelikannage/pos-api/pkg/jwt"
)

// JWTConfig token issuing parameters.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase verifies credentials and issues signed tokens. The token's
// user id is what the bill workflow later treats as the acting user.
type AuthUseCase struct {
	users repository.UserRepository
	jwt   JWTConfig
}

// NewAuthUseCase builds the use case.
func NewAuthUseCase(users repository.UserRepository, jwt JWTConfig) *AuthUseCase {
	return &AuthUseCase{users: users, jwt: jwt}
}

// Login checks username and password and returns a signed token with the
// authenticated user. Wrong username and wrong password produce the same
// message.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Username == "" {
		return nil, domain.Validationf("Username can not be empty")
	}
	if in.Password == "" {
		return nil, domain.Validationf("Password can not be empty")
	}
	user, err := uc.users.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.Validationf("Invalid username or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.Validationf("Invalid username or password")
	}
	token, err := pkgjwt.Generate(uc.jwt.Secret, user.ID, user.Username, user.Role, uc.jwt.Issuer, uc.jwt.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			ID:        user.ID,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Username:  user.Username,
			Role:      user.Role,
			CreatedAt: user.CreatedAt,
			UpdatedAt: user.UpdatedAt,
		},
	}, nil
}
