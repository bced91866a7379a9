package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/boarding-admin-api/internal/models"
)

func newPocketMoneyMock(t *testing.T) (*PocketMoneyRepository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return NewPocketMoneyRepository(sqlx.NewDb(db, "sqlmock")), mock, func() { db.Close() }
}

func TestPocketMoneyRepositoryCreate(t *testing.T) {
	repo, mock, cleanup := newPocketMoneyMock(t)
	defer cleanup()

	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	mock.ExpectExec("INSERT INTO pocket_money_transactions").
		WithArgs(sqlmock.AnyArg(), "student-1", 700.0, 3, 2024, date, nil, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	tx := &models.PocketMoneyTransaction{StudentID: "student-1", Amount: 700, Month: 3, Year: 2024, TransactionDate: date}
	require.NoError(t, repo.Create(context.Background(), tx))
	assert.NotEmpty(t, tx.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPocketMoneyRepositoryListByPeriod(t *testing.T) {
	repo, mock, cleanup := newPocketMoneyMock(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"id", "student_id", "student_code", "student_name", "month", "year", "amount_assigned", "amount_given", "transaction_date", "remarks"}).
		AddRow("tx-1", "student-1", "S-001", "Aarav", 3, 2024, 1000.0, 700.0, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), nil)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE p.month = $1 AND p.year = $2 ORDER BY p.transaction_date DESC")).
		WithArgs(3, 2024).
		WillReturnRows(rows)

	entries, err := repo.ListByPeriod(context.Background(), models.Period{Month: 3, Year: 2024})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Aarav", entries[0].StudentName)
	assert.Nil(t, entries[0].Remarks)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPocketMoneyRepositoryMonthlyBalances(t *testing.T) {
	repo, mock, cleanup := newPocketMoneyMock(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"student_id", "student_code", "name", "monthly_pocket_money", "given", "remaining"}).
		AddRow("student-1", "S-001", "Aarav", 1000.0, 700.0, 300.0).
		AddRow("student-2", "S-002", "Bela", 500.0, 0.0, 500.0)
	mock.ExpectQuery(regexp.QuoteMeta("COALESCE(p.given, 0) AS given")).
		WithArgs(3, 2024).
		WillReturnRows(rows)

	balances, err := repo.MonthlyBalances(context.Background(), models.Period{Month: 3, Year: 2024})
	require.NoError(t, err)
	require.Len(t, balances, 2)
	assert.Equal(t, 300.0, balances[0].Remaining)
	assert.Equal(t, 500.0, balances[1].Remaining)
	assert.NoError(t, mock.ExpectationsWereMet())
}
