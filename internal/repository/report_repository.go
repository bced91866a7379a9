package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/boarding-admin-api/internal/models"
)

// ReportRepository runs the read-only monthly aggregation queries behind the reports.
// Every sum and count is zero-filled so empty months yield zero values instead of NULLs.
type ReportRepository struct {
	db *sqlx.DB
}

// NewReportRepository constructs the repository.
func NewReportRepository(db *sqlx.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

const (
	pocketMoneyMonthlyQuery = `SELECT COALESCE(SUM(amount), 0) AS total_given, COUNT(DISTINCT student_id) AS students
        FROM pocket_money_transactions
        WHERE month = $1 AND year = $2`

	pocketMoneyOutstandingQuery = `SELECT s.student_code, s.name, s.monthly_pocket_money,
        COALESCE(SUM(p.amount), 0) AS given_amount,
        s.monthly_pocket_money - COALESCE(SUM(p.amount), 0) AS remaining
        FROM students s
        LEFT JOIN pocket_money_transactions p ON p.student_id = s.id AND p.month = $1 AND p.year = $2
        GROUP BY s.id, s.student_code, s.name, s.monthly_pocket_money
        HAVING s.monthly_pocket_money - COALESCE(SUM(p.amount), 0) > 0
        ORDER BY s.name ASC`

	laundryMonthlyQuery = `SELECT COUNT(id) AS total_entries,
        COALESCE(SUM(clothes_count), 0) AS total_clothes,
        COALESCE(SUM(total_amount), 0) AS total_cost
        FROM laundry_records
        WHERE EXTRACT(MONTH FROM record_date) = $1 AND EXTRACT(YEAR FROM record_date) = $2`

	laundryCostQuery = `SELECT TO_CHAR(record_date, 'YYYY-MM-DD') AS date, COALESCE(SUM(total_amount), 0) AS cost
        FROM laundry_records
        WHERE EXTRACT(MONTH FROM record_date) = $1 AND EXTRACT(YEAR FROM record_date) = $2
        GROUP BY record_date
        ORDER BY date ASC`

	dhobiSummaryQuery = `SELECT d.name,
        COALESCE(SUM(l.clothes_count), 0) AS total_clothes,
        COALESCE(SUM(l.total_amount), 0) AS total_earning
        FROM laundry_records l
        JOIN laundry_staff d ON d.id = l.staff_id
        WHERE EXTRACT(MONTH FROM l.record_date) = $1 AND EXTRACT(YEAR FROM l.record_date) = $2
        GROUP BY d.name
        ORDER BY d.name ASC`

	// Each child table is collapsed to one row per student before the join so the two
	// sums cannot multiply each other.
	studentFullQuery = `SELECT s.student_code, s.name, s.monthly_pocket_money,
        COALESCE(p.given, 0) AS pocket_given,
        COALESCE(l.cost, 0) AS laundry_cost
        FROM students s
        LEFT JOIN (
            SELECT student_id, SUM(amount) AS given
            FROM pocket_money_transactions
            WHERE month = $1 AND year = $2
            GROUP BY student_id
        ) p ON p.student_id = s.id
        LEFT JOIN (
            SELECT student_id, SUM(total_amount) AS cost
            FROM laundry_records
            WHERE EXTRACT(MONTH FROM record_date) = $1 AND EXTRACT(YEAR FROM record_date) = $2
            GROUP BY student_id
        ) l ON l.student_id = s.id
        ORDER BY s.name ASC`
)

// PocketMoneyMonthly totals the pocket money given in the period and the distinct recipients.
func (r *ReportRepository) PocketMoneyMonthly(ctx context.Context, period models.Period) (models.PocketMoneyMonthlySummary, error) {
	var summary models.PocketMoneyMonthlySummary
	if err := r.db.GetContext(ctx, &summary, pocketMoneyMonthlyQuery, period.Month, period.Year); err != nil {
		return models.PocketMoneyMonthlySummary{}, fmt.Errorf("query pocket money monthly: %w", err)
	}
	return summary, nil
}

// PocketMoneyOutstanding lists students whose remaining allowance for the period is positive.
func (r *ReportRepository) PocketMoneyOutstanding(ctx context.Context, period models.Period) ([]models.OutstandingBalanceRow, error) {
	rows := make([]models.OutstandingBalanceRow, 0)
	if err := r.db.SelectContext(ctx, &rows, pocketMoneyOutstandingQuery, period.Month, period.Year); err != nil {
		return nil, fmt.Errorf("query pocket money outstanding: %w", err)
	}
	return rows, nil
}

// LaundryMonthly counts entries and totals clothes and cost for the period.
func (r *ReportRepository) LaundryMonthly(ctx context.Context, period models.Period) (models.LaundryMonthlySummary, error) {
	var summary models.LaundryMonthlySummary
	if err := r.db.GetContext(ctx, &summary, laundryMonthlyQuery, period.Month, period.Year); err != nil {
		return models.LaundryMonthlySummary{}, fmt.Errorf("query laundry monthly: %w", err)
	}
	return summary, nil
}

// LaundryCost returns laundry spend per calendar day, earliest first.
func (r *ReportRepository) LaundryCost(ctx context.Context, period models.Period) ([]models.LaundryCostRow, error) {
	rows := make([]models.LaundryCostRow, 0)
	if err := r.db.SelectContext(ctx, &rows, laundryCostQuery, period.Month, period.Year); err != nil {
		return nil, fmt.Errorf("query laundry cost: %w", err)
	}
	return rows, nil
}

// DhobiSummary totals clothes and earnings per staff member with activity in the period.
func (r *ReportRepository) DhobiSummary(ctx context.Context, period models.Period) ([]models.DhobiSummaryRow, error) {
	rows := make([]models.DhobiSummaryRow, 0)
	if err := r.db.SelectContext(ctx, &rows, dhobiSummaryQuery, period.Month, period.Year); err != nil {
		return nil, fmt.Errorf("query dhobi summary: %w", err)
	}
	return rows, nil
}

// StudentFull lists every student with the pocket money given and laundry cost of the period.
func (r *ReportRepository) StudentFull(ctx context.Context, period models.Period) ([]models.StudentFullRow, error) {
	rows := make([]models.StudentFullRow, 0)
	if err := r.db.SelectContext(ctx, &rows, studentFullQuery, period.Month, period.Year); err != nil {
		return nil, fmt.Errorf("query student full: %w", err)
	}
	return rows, nil
}
