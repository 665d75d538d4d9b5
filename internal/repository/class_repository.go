package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"
)

// Class statuses form a closed set; a class is publicly visible only while
// approved.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusDenied   = "denied"
)

// Class mirrors the 'classes' table.
type Class struct {
	ID              uint64    `json:"id"`
	Name            string    `json:"name"`
	Image           string    `json:"image"`
	InstructorName  string    `json:"instructorName"`
	InstructorEmail string    `json:"instructorEmail"`
	AvailableSeats  uint32    `json:"availableSeats"`
	Price           float64   `json:"price"`
	Status          string    `json:"status"`
	Feedback        *string   `json:"feedback,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type ClassRepo struct{ DB *sql.DB }

func NewClassRepo(db *sql.DB) *ClassRepo { return &ClassRepo{DB: db} }

const classColumns = "id,name,image,instructor_name,instructor_email,available_seats,price,status,feedback,created_at,updated_at"

func scanClass(row interface{ Scan(...any) error }) (Class, error) {
	var (
		cl       Class
		feedback sql.NullString
	)
	err := row.Scan(&cl.ID, &cl.Name, &cl.Image, &cl.InstructorName, &cl.InstructorEmail,
		&cl.AvailableSeats, &cl.Price, &cl.Status, &feedback, &cl.CreatedAt, &cl.UpdatedAt)
	if err != nil {
		return Class{}, err
	}
	if feedback.Valid {
		cl.Feedback = &feedback.String
	}
	return cl, nil
}

// Create inserts a class. Status always starts as pending regardless of what
// the caller submitted; approval is an admin operation.
func (r *ClassRepo) Create(ctx context.Context, cl Class) (uint64, error) {
	cl.InstructorEmail = strings.ToLower(strings.TrimSpace(cl.InstructorEmail))
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO classes (name, image, instructor_name, instructor_email, available_seats, price, status) VALUES (?,?,?,?,?,?,?)",
		cl.Name, cl.Image, cl.InstructorName, cl.InstructorEmail, cl.AvailableSeats, cl.Price, StatusPending)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByID fetches a single class.
func (r *ClassRepo) GetByID(ctx context.Context, id uint64) (Class, error) {
	row := r.DB.QueryRowContext(ctx,
		"SELECT "+classColumns+" FROM classes WHERE id=? LIMIT 1", id)
	return scanClass(row)
}

// ListApproved returns the publicly visible classes.
func (r *ClassRepo) ListApproved(ctx context.Context) ([]Class, error) {
	return r.list(ctx,
		"SELECT "+classColumns+" FROM classes WHERE status=? ORDER BY id DESC", StatusApproved)
}

// ListByInstructor returns every class submitted by the given instructor,
// regardless of status.
func (r *ClassRepo) ListByInstructor(ctx context.Context, email string) ([]Class, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	return r.list(ctx,
		"SELECT "+classColumns+" FROM classes WHERE instructor_email=? ORDER BY id DESC", email)
}

// ListAll returns every class for the admin review screen.
func (r *ClassRepo) ListAll(ctx context.Context) ([]Class, error) {
	return r.list(ctx, "SELECT "+classColumns+" FROM classes ORDER BY id DESC")
}

func (r *ClassRepo) list(ctx context.Context, query string, args ...any) ([]Class, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Class, 0)
	for rows.Next() {
		cl, err := scanClass(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, cl)
	}
	return out, rows.Err()
}

// UpdateStatus sets the review status for a class and returns the number of
// rows touched.
func (r *ClassRepo) UpdateStatus(ctx context.Context, id uint64, status string) (int64, error) {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE classes SET status=? WHERE id=?", status, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// UpdateFeedback sets the admin feedback for a class and returns the number
// of rows touched.
func (r *ClassRepo) UpdateFeedback(ctx context.Context, id uint64, feedback string) (int64, error) {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE classes SET feedback=? WHERE id=?", feedback, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
