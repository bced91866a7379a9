package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/boarding-admin-api/internal/models"
)

// DashboardRepository exposes the aggregate reads behind the dashboard.
type DashboardRepository struct {
	db *sqlx.DB
}

// NewDashboardRepository instantiates the repository.
func NewDashboardRepository(db *sqlx.DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

// ActiveStudents counts active students and sums their monthly allowance.
func (r *DashboardRepository) ActiveStudents(ctx context.Context) (count int, assigned float64, err error) {
	const query = `SELECT COUNT(*) AS count, COALESCE(SUM(monthly_pocket_money), 0) AS assigned FROM students WHERE status = $1`
	var row struct {
		Count    int     `db:"count"`
		Assigned float64 `db:"assigned"`
	}
	if err := r.db.GetContext(ctx, &row, query, models.StatusActive); err != nil {
		return 0, 0, fmt.Errorf("active students: %w", err)
	}
	return row.Count, row.Assigned, nil
}

// PocketMoneyGiven sums the pocket money handed out in a period.
func (r *DashboardRepository) PocketMoneyGiven(ctx context.Context, period models.Period) (float64, error) {
	const query = `SELECT COALESCE(SUM(amount), 0) FROM pocket_money_transactions WHERE month = $1 AND year = $2`
	var given float64
	if err := r.db.GetContext(ctx, &given, query, period.Month, period.Year); err != nil {
		return 0, fmt.Errorf("pocket money given: %w", err)
	}
	return given, nil
}

// LaundryTotals sums clothes washed and laundry cost for a period.
func (r *DashboardRepository) LaundryTotals(ctx context.Context, period models.Period) (models.LaundryTotals, error) {
	const query = `SELECT COALESCE(SUM(clothes_count), 0) AS clothes, COALESCE(SUM(total_amount), 0) AS cost
        FROM laundry_records
        WHERE EXTRACT(MONTH FROM record_date) = $1 AND EXTRACT(YEAR FROM record_date) = $2`
	var totals models.LaundryTotals
	if err := r.db.GetContext(ctx, &totals, query, period.Month, period.Year); err != nil {
		return models.LaundryTotals{}, fmt.Errorf("laundry totals: %w", err)
	}
	return totals, nil
}

// PocketMoneyByMonth returns the pocket money given per month of a year. Months without
// transactions are absent.
func (r *DashboardRepository) PocketMoneyByMonth(ctx context.Context, year int) ([]models.MonthlyPocketMoneyTotal, error) {
	const query = `SELECT month, COALESCE(SUM(amount), 0) AS given
        FROM pocket_money_transactions
        WHERE year = $1
        GROUP BY month
        ORDER BY month ASC`
	totals := make([]models.MonthlyPocketMoneyTotal, 0)
	if err := r.db.SelectContext(ctx, &totals, query, year); err != nil {
		return nil, fmt.Errorf("pocket money by month: %w", err)
	}
	return totals, nil
}

// LaundryByMonth returns clothes and cost per month of a year. Months without records are absent.
func (r *DashboardRepository) LaundryByMonth(ctx context.Context, year int) ([]models.MonthlyLaundryTotal, error) {
	const query = `SELECT EXTRACT(MONTH FROM record_date)::INT AS month,
        COALESCE(SUM(clothes_count), 0) AS clothes,
        COALESCE(SUM(total_amount), 0) AS cost
        FROM laundry_records
        WHERE EXTRACT(YEAR FROM record_date) = $1
        GROUP BY 1
        ORDER BY 1 ASC`
	totals := make([]models.MonthlyLaundryTotal, 0)
	if err := r.db.SelectContext(ctx, &totals, query, year); err != nil {
		return nil, fmt.Errorf("laundry by month: %w", err)
	}
	return totals, nil
}
