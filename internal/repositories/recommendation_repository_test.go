package repositories

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func mockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("gorm open: %v", err)
	}
	return gdb, mock
}

func TestGetActiveByUserIDFiltersDismissedAndExpired(t *testing.T) {
	gdb, mock := mockDB(t)
	repo := NewPostgresRecommendationRepository(gdb)
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "user_id", "type", "title", "dismissed", "expires_at"}).
		AddRow(1, 7, "breathing", "Try a breathing exercise", false, now.Add(12*time.Hour)).
		AddRow(2, 7, "checkin", "How are you feeling today?", false, now.Add(20*time.Hour))
	mock.ExpectQuery(`SELECT \* FROM "recommendations" WHERE user_id = \$1 AND dismissed = \$2 AND expires_at > \$3`).
		WithArgs(7, false, now).
		WillReturnRows(rows)

	recs, err := repo.GetActiveByUserID(7, now)

	assert.NoError(t, err)
	assert.Len(t, recs, 2)
	assert.Equal(t, "breathing", recs[0].Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountActiveByUserID(t *testing.T) {
	gdb, mock := mockDB(t)
	repo := NewPostgresRecommendationRepository(gdb)
	now := time.Now()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "recommendations"`).
		WithArgs(7, false, now).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	count, err := repo.CountActiveByUserID(7, now)

	assert.NoError(t, err)
	assert.Equal(t, int64(5), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkDismissed(t *testing.T) {
	gdb, mock := mockDB(t)
	repo := NewPostgresRecommendationRepository(gdb)

	mock.ExpectExec(`UPDATE "recommendations" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.MarkDismissed(3))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteExpiredReturnsRowsRemoved(t *testing.T) {
	gdb, mock := mockDB(t)
	repo := NewPostgresRecommendationRepository(gdb)
	now := time.Now()

	mock.ExpectExec(`DELETE FROM "recommendations" WHERE expires_at <= \$1`).
		WithArgs(now).
		WillReturnResult(sqlmock.NewResult(0, 4))

	n, err := repo.DeleteExpired(now)

	assert.NoError(t, err)
	assert.Equal(t, int64(4), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
