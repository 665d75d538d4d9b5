package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"
)

// SelectedClass mirrors the 'selected_classes' table. A row links a student
// to a class they intend to pay for.
type SelectedClass struct {
	ID        uint64    `json:"id"`
	ClassID   uint64    `json:"classId"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type SelectedClassRepo struct{ DB *sql.DB }

func NewSelectedClassRepo(db *sql.DB) *SelectedClassRepo { return &SelectedClassRepo{DB: db} }

// Create inserts a selection. The unique key on class_id makes the insert
// itself the duplicate check, so two concurrent requests for the same class
// cannot both succeed; the loser gets ErrAlreadySelected.
func (r *SelectedClassRepo) Create(ctx context.Context, classID uint64, email string) (uint64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO selected_classes (class_id, email) VALUES (?,?)",
		classID, email)
	if err != nil {
		if isDuplicateEntryError(err) {
			return 0, ErrAlreadySelected
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// ListByEmail returns every selection belonging to the given student.
func (r *SelectedClassRepo) ListByEmail(ctx context.Context, email string) ([]SelectedClass, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,class_id,email,created_at FROM selected_classes WHERE email=? ORDER BY id DESC",
		email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]SelectedClass, 0)
	for rows.Next() {
		var s SelectedClass
		if err := rows.Scan(&s.ID, &s.ClassID, &s.Email, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Delete removes a selection by id and returns the number of rows deleted.
func (r *SelectedClassRepo) Delete(ctx context.Context, id uint64) (int64, error) {
	res, err := r.DB.ExecContext(ctx,
		"DELETE FROM selected_classes WHERE id=?", id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
