package repositories_test

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/mohsinshafique7/clays-notes-backend/domain"
	"github.com/mohsinshafique7/clays-notes-backend/models"
	"github.com/mohsinshafique7/clays-notes-backend/repositories"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

func TestFindByAccountAndDate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repositories.NewSleepRecordRepository(db)
	date := time.Date(2024, 5, 4, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "sleep_records" WHERE account_id = \$1 AND date = \$2`).
		WithArgs(uint(1), date).
		WillReturnRows(sqlmock.NewRows([]string{"id", "sleep_hours", "date", "account_id"}).
			AddRow(1, 19, date, 1).
			AddRow(2, 2, date, 1))

	records, err := repo.FindByAccountAndDate(1, date)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, 19, records[0].SleepHours)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repositories.NewSleepRecordRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "sleep_records"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "sleep_hours", "date", "account_id"}))

	_, err := repo.FindByID(42)
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAssignsID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repositories.NewSleepRecordRepository(db)
	date := time.Date(2024, 5, 4, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "sleep_records"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectCommit()

	record := &models.SleepRecord{AccountID: 1, Date: date, SleepHours: 8}
	require.NoError(t, repo.Create(record))
	assert.Equal(t, uint(7), record.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindAllReturnsRowsAndTotal(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repositories.NewSleepRecordRepository(db)
	date := time.Date(2024, 5, 4, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "sleep_records"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))
	mock.ExpectQuery(`SELECT \* FROM "sleep_records"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "sleep_hours", "date", "account_id"}).
			AddRow(3, 8, date, 1).
			AddRow(4, 6, date, 2))

	records, count, err := repo.FindAll(2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), count)
	assert.Len(t, records, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteMissingRowIsNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repositories.NewSleepRecordRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "sleep_records"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	assert.ErrorIs(t, repo.Delete(42), domain.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInTransactionSharesOneTx(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repositories.NewSleepRecordRepository(db)
	date := time.Date(2024, 5, 4, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "sleep_records" WHERE account_id = \$1 AND date = \$2`).
		WithArgs(uint(1), date).
		WillReturnRows(sqlmock.NewRows([]string{"id", "sleep_hours", "date", "account_id"}))
	mock.ExpectQuery(`INSERT INTO "sleep_records"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	err := repo.InTransaction(func(tx repositories.SleepRecordRepository) error {
		if _, err := tx.FindByAccountAndDate(1, date); err != nil {
			return err
		}
		return tx.Create(&models.SleepRecord{AccountID: 1, Date: date, SleepHours: 8})
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStorageFailureIsWrapped(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repositories.NewSleepRecordRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "sleep_records"`).
		WillReturnError(assert.AnError)

	_, err := repo.FindSince(1, time.Now())
	var storage *domain.StorageError
	require.ErrorAs(t, err, &storage)
	assert.ErrorIs(t, err, assert.AnError)
}
