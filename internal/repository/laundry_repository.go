package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/boarding-admin-api/internal/models"
)

// LaundryRepository persists laundry records and their monthly roll-ups.
type LaundryRepository struct {
	db *sqlx.DB
}

// NewLaundryRepository constructs a LaundryRepository.
func NewLaundryRepository(db *sqlx.DB) *LaundryRepository {
	return &LaundryRepository{db: db}
}

// Create inserts a laundry record. TotalAmount must already be computed.
func (r *LaundryRepository) Create(ctx context.Context, record *models.LaundryRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	record.CreatedAt = now
	record.UpdatedAt = now
	const query = `INSERT INTO laundry_records (id, student_id, staff_id, clothes_count, rate_per_cloth, total_amount, record_date, created_at, updated_at)
        VALUES (:id, :student_id, :staff_id, :clothes_count, :rate_per_cloth, :total_amount, :record_date, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, record); err != nil {
		return fmt.Errorf("create laundry record: %w", err)
	}
	return nil
}

// List returns the records of a month with student and dhobi names, newest first.
func (r *LaundryRepository) List(ctx context.Context, filter models.LaundryFilter) ([]models.LaundryEntry, error) {
	query := `SELECT l.id, l.student_id, s.student_code, s.name AS student_name, l.staff_id, d.name AS staff_name,
        l.clothes_count, l.rate_per_cloth, l.total_amount, l.record_date
        FROM laundry_records l
        JOIN laundry_staff d ON d.id = l.staff_id
        JOIN students s ON s.id = l.student_id
        WHERE EXTRACT(MONTH FROM l.record_date) = $1 AND EXTRACT(YEAR FROM l.record_date) = $2`
	args := []interface{}{filter.Month, filter.Year}
	if filter.StudentID != "" {
		args = append(args, filter.StudentID)
		query += fmt.Sprintf(" AND l.student_id = $%d", len(args))
	}
	if filter.StaffID != "" {
		args = append(args, filter.StaffID)
		query += fmt.Sprintf(" AND l.staff_id = $%d", len(args))
	}
	query += " ORDER BY l.record_date DESC, l.created_at DESC"

	entries := make([]models.LaundryEntry, 0)
	if err := r.db.SelectContext(ctx, &entries, query, args...); err != nil {
		return nil, fmt.Errorf("list laundry records: %w", err)
	}
	return entries, nil
}

// StaffReport aggregates clothes and earnings per dhobi for a month.
func (r *LaundryRepository) StaffReport(ctx context.Context, period models.Period) ([]models.LaundryStaffReport, error) {
	const query = `SELECT d.id AS staff_id, d.name,
        COALESCE(SUM(l.clothes_count), 0) AS total_clothes,
        COALESCE(SUM(l.total_amount), 0) AS total_amount
        FROM laundry_records l
        JOIN laundry_staff d ON d.id = l.staff_id
        WHERE EXTRACT(MONTH FROM l.record_date) = $1 AND EXTRACT(YEAR FROM l.record_date) = $2
        GROUP BY d.id, d.name
        ORDER BY d.name ASC`
	report := make([]models.LaundryStaffReport, 0)
	if err := r.db.SelectContext(ctx, &report, query, period.Month, period.Year); err != nil {
		return nil, fmt.Errorf("laundry staff report: %w", err)
	}
	return report, nil
}

// StudentSummary aggregates laundry per student for a month.
func (r *LaundryRepository) StudentSummary(ctx context.Context, period models.Period) ([]models.LaundryStudentSummary, error) {
	const query = `SELECT s.id AS student_id, s.student_code, s.name,
        CASE WHEN s.section IS NULL OR s.section = '' THEN s.class ELSE s.class || ' - ' || s.section END AS class_section,
        COALESCE(SUM(l.clothes_count), 0) AS total_clothes,
        COALESCE(SUM(l.total_amount), 0) AS total_cost,
        COUNT(l.id) AS entries
        FROM laundry_records l
        JOIN students s ON s.id = l.student_id
        WHERE EXTRACT(MONTH FROM l.record_date) = $1 AND EXTRACT(YEAR FROM l.record_date) = $2
        GROUP BY s.id, s.student_code, s.name, s.class, s.section
        ORDER BY s.name ASC`
	summary := make([]models.LaundryStudentSummary, 0)
	if err := r.db.SelectContext(ctx, &summary, query, period.Month, period.Year); err != nil {
		return nil, fmt.Errorf("laundry student summary: %w", err)
	}
	return summary, nil
}
