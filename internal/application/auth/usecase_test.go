package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/hwelikannage/pos-api/internal/application/auth"
	"github.com/hwelikannage/pos-api/internal/application/dto"
	"github.com/hwelikannage/pos-api/internal/domain"
	"github.com/hwelikannage/pos-api/internal/domain/entity"
	pkgjwt "github.com/hwelikannage/pos-api/pkg/jwt"
)

type memUsers struct{ byUsername map[string]*entity.User }

func (r *memUsers) Create(u *entity.User) error                    { r.byUsername[u.Username] = u; return nil }
func (r *memUsers) GetByID(id int64) (*entity.User, error)         { return nil, nil }
func (r *memUsers) GetByUsername(n string) (*entity.User, error)   { return r.byUsername[n], nil }
func (r *memUsers) List(limit, offset int) ([]*entity.User, error) { return nil, nil }
func (r *memUsers) Update(u *entity.User) error                    { return nil }
func (r *memUsers) Delete(id int64) error                          { return nil }

func newAuthFixture(t *testing.T) *auth.AuthUseCase {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("right-password"), bcrypt.MinCost)
	require.NoError(t, err)
	users := &memUsers{byUsername: map[string]*entity.User{
		"sam": {ID: 5, FirstName: "Sam", LastName: "Perera", Username: "sam", PasswordHash: string(hash), Role: entity.RoleCashier},
	}}
	return auth.NewAuthUseCase(users, auth.JWTConfig{
		Secret:     "login-test-secret",
		ExpMinutes: 30,
		Issuer:     "pos-api-test",
	})
}

func TestLogin_Success_IssuesToken(t *testing.T) {
	uc := newAuthFixture(t)

	resp, err := uc.Login(dto.LoginRequest{Username: "sam", Password: "right-password"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, "sam", resp.User.Username)
	assert.Equal(t, entity.RoleCashier, resp.User.Role)

	userID, username, role, err := pkgjwt.Parse("login-test-secret", resp.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(5), userID)
	assert.Equal(t, "sam", username)
	assert.Equal(t, entity.RoleCashier, role)
}

func TestLogin_WrongPassword_SameMessageAsWrongUsername(t *testing.T) {
	uc := newAuthFixture(t)

	_, errPass := uc.Login(dto.LoginRequest{Username: "sam", Password: "wrong"})
	require.Error(t, errPass)
	_, errUser := uc.Login(dto.LoginRequest{Username: "nobody", Password: "right-password"})
	require.Error(t, errUser)

	// identical message so a caller cannot probe which part was wrong
	assert.EqualError(t, errPass, "Invalid username or password")
	assert.EqualError(t, errUser, "Invalid username or password")
	assert.True(t, domain.IsValidation(errPass))
}

func TestLogin_EmptyCredentials_Rejected(t *testing.T) {
	uc := newAuthFixture(t)

	_, err := uc.Login(dto.LoginRequest{Username: "", Password: "x"})
	assert.EqualError(t, err, "Username can not be empty")

	_, err = uc.Login(dto.LoginRequest{Username: "sam", Password: ""})
	assert.EqualError(t, err, "Password can not be empty")
}
