package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/boarding-admin-api/internal/models"
)

func newLaundryMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestLaundryRepositoryListFilters(t *testing.T) {
	db, mock, cleanup := newLaundryMock(t)
	defer cleanup()
	repo := NewLaundryRepository(db)

	rows := sqlmock.NewRows([]string{"id", "student_id", "student_code", "student_name", "staff_id", "staff_name", "clothes_count", "rate_per_cloth", "total_amount", "record_date"}).
		AddRow("rec-1", "student-1", "S-001", "Aarav", "staff-1", "Ramesh", 10, 5.0, 50.0, time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC))
	mock.ExpectQuery(regexp.QuoteMeta("AND l.staff_id = $3 ORDER BY l.record_date DESC")).
		WithArgs(3, 2024, "staff-1").
		WillReturnRows(rows)

	entries, err := repo.List(context.Background(), models.LaundryFilter{Month: 3, Year: 2024, StaffID: "staff-1"})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Ramesh", entries[0].StaffName)
	assert.Equal(t, 50.0, entries[0].TotalAmount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLaundryRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newLaundryMock(t)
	defer cleanup()
	repo := NewLaundryRepository(db)

	date := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	mock.ExpectExec("INSERT INTO laundry_records").
		WithArgs(sqlmock.AnyArg(), "student-1", "staff-1", 10, 5.0, 50.0, date, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	record := &models.LaundryRecord{StudentID: "student-1", StaffID: "staff-1", ClothesCount: 10, RatePerCloth: 5, TotalAmount: 50, RecordDate: date}
	require.NoError(t, repo.Create(context.Background(), record))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLaundryRepositoryStudentSummary(t *testing.T) {
	db, mock, cleanup := newLaundryMock(t)
	defer cleanup()
	repo := NewLaundryRepository(db)

	rows := sqlmock.NewRows([]string{"student_id", "student_code", "name", "class_section", "total_clothes", "total_cost", "entries"}).
		AddRow("student-1", "S-001", "Aarav", "8 - A", 18, 90.0, 2)
	mock.ExpectQuery(regexp.QuoteMeta("GROUP BY s.id, s.student_code, s.name, s.class, s.section")).
		WithArgs(3, 2024).
		WillReturnRows(rows)

	summary, err := repo.StudentSummary(context.Background(), models.Period{Month: 3, Year: 2024})
	require.NoError(t, err)
	require.Len(t, summary, 1)
	assert.Equal(t, "8 - A", summary[0].ClassSection)
	assert.Equal(t, 2, summary[0].Entries)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLaundryStaffRepositoryFindByIDMissing(t *testing.T) {
	db, mock, cleanup := newLaundryMock(t)
	defer cleanup()
	repo := NewLaundryStaffRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM laundry_staff WHERE id = $1")).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	staff, err := repo.FindByID(context.Background(), "missing")
	assert.Nil(t, staff)
	assert.Equal(t, sql.ErrNoRows, err)
}

func TestLaundryStaffRepositoryListByStatus(t *testing.T) {
	db, mock, cleanup := newLaundryMock(t)
	defer cleanup()
	repo := NewLaundryStaffRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name", "phone", "per_cloth_rate", "status", "created_at", "updated_at"}).
		AddRow("staff-1", "Ramesh", "98450", 5.0, "active", time.Now(), time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("FROM laundry_staff WHERE status = $1 ORDER BY name ASC")).
		WithArgs("active").
		WillReturnRows(rows)

	staff, err := repo.List(context.Background(), models.StatusActive)
	require.NoError(t, err)
	require.Len(t, staff, 1)
	assert.Equal(t, 5.0, staff[0].PerClothRate)
	assert.NoError(t, mock.ExpectationsWereMet())
}
