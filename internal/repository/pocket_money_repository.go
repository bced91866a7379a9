package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/boarding-admin-api/internal/models"
)

// PocketMoneyRepository persists pocket money disbursements.
type PocketMoneyRepository struct {
	db *sqlx.DB
}

// NewPocketMoneyRepository constructs a PocketMoneyRepository.
func NewPocketMoneyRepository(db *sqlx.DB) *PocketMoneyRepository {
	return &PocketMoneyRepository{db: db}
}

// Create inserts a transaction. Month and Year must already mirror TransactionDate.
func (r *PocketMoneyRepository) Create(ctx context.Context, tx *models.PocketMoneyTransaction) error {
	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	tx.CreatedAt = now
	tx.UpdatedAt = now
	const query = `INSERT INTO pocket_money_transactions (id, student_id, amount, month, year, transaction_date, remarks, created_at, updated_at)
        VALUES (:id, :student_id, :amount, :month, :year, :transaction_date, :remarks, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, tx); err != nil {
		return fmt.Errorf("create pocket money transaction: %w", err)
	}
	return nil
}

// ListByPeriod returns the transactions of a month joined with their student, newest first.
func (r *PocketMoneyRepository) ListByPeriod(ctx context.Context, period models.Period) ([]models.PocketMoneyEntry, error) {
	const query = `SELECT p.id, p.student_id, s.student_code, s.name AS student_name, p.month, p.year,
        s.monthly_pocket_money AS amount_assigned, p.amount AS amount_given, p.transaction_date, p.remarks
        FROM pocket_money_transactions p
        JOIN students s ON s.id = p.student_id
        WHERE p.month = $1 AND p.year = $2
        ORDER BY p.transaction_date DESC, p.created_at DESC`
	entries := make([]models.PocketMoneyEntry, 0)
	if err := r.db.SelectContext(ctx, &entries, query, period.Month, period.Year); err != nil {
		return nil, fmt.Errorf("list pocket money: %w", err)
	}
	return entries, nil
}

// MonthlyBalances returns every student's assigned, given and remaining pocket money for a month.
func (r *PocketMoneyRepository) MonthlyBalances(ctx context.Context, period models.Period) ([]models.PocketMoneyBalance, error) {
	const query = `SELECT s.id AS student_id, s.student_code, s.name, s.monthly_pocket_money,
        COALESCE(p.given, 0) AS given,
        s.monthly_pocket_money - COALESCE(p.given, 0) AS remaining
        FROM students s
        LEFT JOIN (
            SELECT student_id, SUM(amount) AS given
            FROM pocket_money_transactions
            WHERE month = $1 AND year = $2
            GROUP BY student_id
        ) p ON p.student_id = s.id
        ORDER BY s.name ASC`
	balances := make([]models.PocketMoneyBalance, 0)
	if err := r.db.SelectContext(ctx, &balances, query, period.Month, period.Year); err != nil {
		return nil, fmt.Errorf("pocket money balances: %w", err)
	}
	return balances, nil
}
