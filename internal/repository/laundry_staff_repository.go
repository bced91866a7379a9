package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/boarding-admin-api/internal/models"
)

const laundryStaffColumns = `id, name, phone, per_cloth_rate, status, created_at, updated_at`

// LaundryStaffRepository persists dhobis.
type LaundryStaffRepository struct {
	db *sqlx.DB
}

// NewLaundryStaffRepository constructs a LaundryStaffRepository.
func NewLaundryStaffRepository(db *sqlx.DB) *LaundryStaffRepository {
	return &LaundryStaffRepository{db: db}
}

// List returns every staff member ordered by name, optionally restricted to a status.
func (r *LaundryStaffRepository) List(ctx context.Context, status string) ([]models.LaundryStaff, error) {
	query := "SELECT " + laundryStaffColumns + " FROM laundry_staff"
	var args []interface{}
	if status != "" {
		query += " WHERE status = $1"
		args = append(args, status)
	}
	query += " ORDER BY name ASC"

	staff := make([]models.LaundryStaff, 0)
	if err := r.db.SelectContext(ctx, &staff, query, args...); err != nil {
		return nil, fmt.Errorf("list laundry staff: %w", err)
	}
	return staff, nil
}

// FindByID fetches a staff member. sql.ErrNoRows is returned unwrapped when absent.
func (r *LaundryStaffRepository) FindByID(ctx context.Context, id string) (*models.LaundryStaff, error) {
	var staff models.LaundryStaff
	if err := r.db.GetContext(ctx, &staff, "SELECT "+laundryStaffColumns+" FROM laundry_staff WHERE id = $1", id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find laundry staff: %w", err)
	}
	return &staff, nil
}

// Create inserts a staff member.
func (r *LaundryStaffRepository) Create(ctx context.Context, staff *models.LaundryStaff) error {
	if staff.ID == "" {
		staff.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	staff.CreatedAt = now
	staff.UpdatedAt = now
	const query = `INSERT INTO laundry_staff (id, name, phone, per_cloth_rate, status, created_at, updated_at)
        VALUES (:id, :name, :phone, :per_cloth_rate, :status, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, staff); err != nil {
		return fmt.Errorf("create laundry staff: %w", err)
	}
	return nil
}

// Update modifies a staff member.
func (r *LaundryStaffRepository) Update(ctx context.Context, staff *models.LaundryStaff) error {
	staff.UpdatedAt = time.Now().UTC()
	const query = `UPDATE laundry_staff SET name = :name, phone = :phone, per_cloth_rate = :per_cloth_rate, status = :status, updated_at = :updated_at WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, staff); err != nil {
		return fmt.Errorf("update laundry staff: %w", err)
	}
	return nil
}

// Delete removes a staff member together with their laundry records.
func (r *LaundryStaffRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM laundry_staff WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete laundry staff: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
