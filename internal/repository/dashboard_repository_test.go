package repository

import (
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/boarding-admin-api/internal/models"
)

func TestDashboardRepositoryAggregates(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()
	repo := NewDashboardRepository(sqlx.NewDb(db, "sqlmock"))
	ctx := context.Background()
	period := models.Period{Month: 3, Year: 2024}

	mock.ExpectQuery(regexp.QuoteMeta("FROM students WHERE status = $1")).
		WithArgs("active").
		WillReturnRows(sqlmock.NewRows([]string{"count", "assigned"}).AddRow(2, 1500.0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(SUM(amount), 0) FROM pocket_money_transactions WHERE month = $1 AND year = $2")).
		WithArgs(3, 2024).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(700.0))
	mock.ExpectQuery(regexp.QuoteMeta("AS clothes, COALESCE(SUM(total_amount), 0) AS cost")).
		WithArgs(3, 2024).
		WillReturnRows(sqlmock.NewRows([]string{"clothes", "cost"}).AddRow(30, 150.0))

	count, assigned, err := repo.ActiveStudents(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, 1500.0, assigned)

	given, err := repo.PocketMoneyGiven(ctx, period)
	require.NoError(t, err)
	assert.Equal(t, 700.0, given)

	totals, err := repo.LaundryTotals(ctx, period)
	require.NoError(t, err)
	assert.Equal(t, models.LaundryTotals{Clothes: 30, Cost: 150}, totals)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDashboardRepositoryLaundryByMonth(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()
	repo := NewDashboardRepository(sqlx.NewDb(db, "sqlmock"))

	mock.ExpectQuery(regexp.QuoteMeta("WHERE EXTRACT(YEAR FROM record_date) = $1 GROUP BY 1")).
		WithArgs(2024).
		WillReturnRows(sqlmock.NewRows([]string{"month", "clothes", "cost"}).AddRow(3, 30, 150.0))

	totals, err := repo.LaundryByMonth(context.Background(), 2024)
	require.NoError(t, err)
	require.Len(t, totals, 1)
	assert.Equal(t, 3, totals[0].Month)
	assert.NoError(t, mock.ExpectationsWereMet())
}
