package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hwelikannage/pos-api/internal/domain"
	"github.com/hwelikannage/pos-api/internal/domain/entity"
	"github.com/hwelikannage/pos-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implements UserRepository (usable with pool or tx).
type UserRepo struct {
	q Querier
}

// NewUserRepository builds the adapter. Pass a pool or a tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `id, first_name, last_name, username, password_hash, role, created_at, updated_at`

// Create inserts a new user and assigns the generated id.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (first_name, last_name, username, password_hash, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		user.FirstName, user.LastName, user.Username, user.PasswordHash, user.Role,
		user.CreatedAt, user.UpdatedAt,
	).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Validationf("Username is already taken")
		}
		return domain.Persistence("insert user", err)
	}
	return nil
}

// GetByID returns one user or (nil, nil) when absent.
func (r *UserRepo) GetByID(id int64) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), fmt.Sprintf("get user %d", id))
}

// GetByUsername returns the user holding the username, or (nil, nil).
func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, username), "get user by username")
}

// List returns a page of users ordered by id.
func (r *UserRepo) List(limit, offset int) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, domain.Persistence("list users", err)
	}
	defer rows.Close()
	var users []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Username, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, domain.Persistence("scan user", err)
		}
		users = append(users, &u)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Persistence("list users", err)
	}
	return users, nil
}

// Update persists all mutable user fields, including the password hash.
func (r *UserRepo) Update(user *entity.User) error {
	query := `
		UPDATE users
		SET first_name = $2, last_name = $3, username = $4, password_hash = $5, role = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.FirstName, user.LastName, user.Username, user.PasswordHash,
		user.Role, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Validationf("Username is already taken")
		}
		return domain.Persistence(fmt.Sprintf("update user %d", user.ID), err)
	}
	return nil
}

// Delete removes a user by id.
func (r *UserRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return domain.Persistence(fmt.Sprintf("delete user %d", id), err)
	}
	return nil
}

func (r *UserRepo) scanOne(row pgx.Row, op string) (*entity.User, error) {
	var u entity.User
	err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Username, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.Persistence(op, err)
	}
	return &u, nil
}
