package gormpersistence

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/SageMyrloc/FinalProject/internal/domain"
	"github.com/SageMyrloc/FinalProject/internal/repository"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestActivityRepository_CreateForUser_InsertsLogAndLink(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGormActivityRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `activity_logs`")).WillReturnResult(sqlmock.NewResult(42, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `user_logs`")).WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectCommit()

	log := &domain.ActivityLog{
		ActivityItemID: 3,
		ActivityTypeID: domain.KindFood,
		CO2e:           1.5,
		LogTime:        time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	err := repo.CreateForUser(context.Background(), 9, log)

	require.NoError(t, err)
	assert.Equal(t, uint(42), log.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActivityRepository_CreateForUser_RollsBackWhenLinkFails(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGormActivityRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `activity_logs`")).WillReturnResult(sqlmock.NewResult(42, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `user_logs`")).WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	err := repo.CreateForUser(context.Background(), 9, &domain.ActivityLog{ActivityTypeID: domain.KindFood, LogTime: time.Now()})

	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActivityRepository_DeleteForUser_DeletesLinkThenLog(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGormActivityRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `user_logs` WHERE activity_log_id = ? AND user_id = ?")).
		WithArgs(5, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `activity_logs` WHERE id = ?")).
		WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.DeleteForUser(context.Background(), 1, 5))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActivityRepository_DeleteForUser_NotOwned(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGormActivityRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `user_logs`")).
		WithArgs(5, 1).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.DeleteForUser(context.Background(), 1, 5)

	assert.True(t, errors.Is(err, repository.ErrLogNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActivityRepository_DeleteForUser_RollsBackWhenLogDeleteFails(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGormActivityRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `user_logs`")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `activity_logs`")).WillReturnError(errors.New("lock wait timeout"))
	mock.ExpectRollback()

	err := repo.DeleteForUser(context.Background(), 1, 5)

	require.Error(t, err)
	assert.False(t, errors.Is(err, repository.ErrLogNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActivityRepository_ListByUser_ResolvesNames(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGormActivityRepository(db)

	logTime := time.Date(2024, 3, 2, 8, 30, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "kind", "activity_name", "co2e", "log_time"}).
		AddRow(11, 1, "Kettle", 0.4, logTime).
		AddRow(10, 3, nil, 2.0, logTime.Add(-time.Hour))
	mock.ExpectQuery(regexp.QuoteMeta("WHERE ul.user_id = ?")).
		WithArgs(1, 2, 3, 1, 2, 3, 1, 10, 20).
		WillReturnRows(rows)

	entries, err := repo.ListByUser(context.Background(), 1, 10, 20)

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, domain.LogEntry{ID: 11, Kind: domain.KindAppliance, ActivityName: "Kettle", CO2e: 0.4, LogTime: logTime}, entries[0])
	assert.Equal(t, domain.KindFood, entries[1].Kind)
	assert.Empty(t, entries[1].ActivityName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActivityRepository_DailyTotals(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGormActivityRepository(db)

	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"day", "kind", "total"}).
		AddRow(day, 1, 3.5).
		AddRow(day, 2, 1.25)
	mock.ExpectQuery(regexp.QuoteMeta("SUM(al.co2e) AS total")).
		WithArgs(1, "2024-03-01", "2024-03-08", 1, 3, 2).
		WillReturnRows(rows)

	totals, err := repo.DailyTotals(context.Background(), 1, day, day.AddDate(0, 0, 7))

	require.NoError(t, err)
	assert.Equal(t, []domain.DailyTotal{
		{Day: day, Kind: domain.KindAppliance, Total: 3.5},
		{Day: day, Kind: domain.KindTransport, Total: 1.25},
	}, totals)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActivityRepository_ListByUser_ScopedToUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGormActivityRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE ul.user_id = ?")).
		WithArgs(1, 2, 3, 1, 2, 3, 42, 10, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "kind", "activity_name", "co2e", "log_time"}))

	entries, err := repo.ListByUser(context.Background(), 42, 10, 0)

	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByUsername_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGormUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `users` WHERE username = ?")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}))

	user, err := repo.FindByUsername(context.Background(), "ghost")

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))
}

func TestUserRepository_Create_MapsDuplicateEntry(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGormUserRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `users`")).
		WillReturnError(&mysqldriver.MySQLError{Number: 1062, Message: "Duplicate entry 'alice' for key 'idx_username'"})

	err := repo.Create(context.Background(), &domain.User{Username: "alice", Password: "x", Email: "y"})

	assert.True(t, errors.Is(err, repository.ErrDuplicateEntry))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_ExistsByUsernameOrEmailDigest(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGormUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `users`")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	taken, err := repo.ExistsByUsernameOrEmailDigest(context.Background(), "alice", "digest")

	require.NoError(t, err)
	assert.True(t, taken)
}

func TestCatalogRepository_TransportUnknownCategory(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGormCatalogRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM `transport_types`")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	items, err := repo.ItemsByCategory(context.Background(), domain.KindTransport, "teleport")

	assert.Nil(t, items)
	assert.True(t, errors.Is(err, repository.ErrCategoryUnknown))
}

func TestCatalogRepository_ApplianceEmptyCategory(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGormCatalogRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM `appliances`")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "average_kwh", "appliance_type_id"}))

	items, err := repo.ItemsByCategory(context.Background(), domain.KindAppliance, "Kitchen")

	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestCatalogRepository_FindItem(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGormCatalogRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM `foods`")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "product", "co2e_per_kg", "food_type_id"}).AddRow(4, "Beef", 27.0, 2))

	item, err := repo.FindItem(context.Background(), domain.KindFood, "Beef")

	require.NoError(t, err)
	assert.Equal(t, &domain.CatalogItem{ID: 4, Kind: domain.KindFood, Name: "Beef", Factor: 27.0}, item)
}
