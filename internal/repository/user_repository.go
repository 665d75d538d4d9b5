package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"
)

// Roles form a closed set. Self-registered users start as students; only the
// role-update operation can promote them.
const (
	RoleStudent    = "student"
	RoleInstructor = "instructor"
	RoleAdmin      = "admin"
)

// User mirrors the 'users' table.
type User struct {
	ID        uint64    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	PhotoURL  string    `json:"photoUrl"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// Create inserts a user and returns its ID. A collision on the email unique
// key is reported as ErrEmailExists so callers can treat registration as
// idempotent.
func (r *UserRepo) Create(ctx context.Context, email, name, photoURL, role string) (uint64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (email, name, photo_url, role) VALUES (?,?,?,?)",
		email, name, photoURL, role)
	if err != nil {
		if isDuplicateEntryError(err) {
			return 0, ErrEmailExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var u User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,email,name,photo_url,role,created_at,updated_at FROM users WHERE email=? LIMIT 1",
		email).Scan(&u.ID, &u.Email, &u.Name, &u.PhotoURL, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrUserNotFound
	}
	return u, err
}

// RoleOf looks up the stored role for an email. Authorization checks call
// this on every request; roles are never read from token claims.
func (r *UserRepo) RoleOf(ctx context.Context, email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var role string
	err := r.DB.QueryRowContext(ctx,
		"SELECT role FROM users WHERE email=? LIMIT 1", email).Scan(&role)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrUserNotFound
	}
	if err != nil {
		return "", err
	}
	return role, nil
}

// UpdateRole sets the role for the user with the given email and returns the
// number of rows touched.
func (r *UserRepo) UpdateRole(ctx context.Context, email, role string) (int64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	res, err := r.DB.ExecContext(ctx,
		"UPDATE users SET role=? WHERE email=?", role, email)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// ListAll returns every user, newest first.
func (r *UserRepo) ListAll(ctx context.Context) ([]User, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,email,name,photo_url,role,created_at,updated_at FROM users ORDER BY id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]User, 0)
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Email, &u.Name, &u.PhotoURL, &u.Role, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
