// internal/repository/submissions_sql_test.go
package repository

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"jobapp-back/internal/apperrors"
	"jobapp-back/internal/models"
)

// openTestDB gives the test its own in-memory SQLite database so the ORDER
// BY and JOIN clauses actually execute against real SQL.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One connection keeps every query on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Submission{}))
	return db
}

func seedUser(t *testing.T, users *GormUsers, first, last, email string) *models.User {
	t.Helper()
	u := &models.User{FirstName: first, LastName: last, Email: email}
	require.NoError(t, users.Create(context.Background(), u))
	return u
}

func seedSubmission(t *testing.T, subs *GormSubmissions, userID string, createdAt time.Time) *models.Submission {
	t.Helper()
	s := &models.Submission{
		UserID:         userID,
		JobDescription: "Senior engineer role focused on backend systems and tooling.",
		Status:         models.StatusPending,
		CreatedAt:      createdAt,
	}
	require.NoError(t, subs.Create(context.Background(), s))
	return s
}

func TestGormSubmissionsSortByUserFields(t *testing.T) {
	db := openTestDB(t)
	users := NewGormUsers(db)
	subs := NewGormSubmissions(db)
	ctx := context.Background()

	ada := seedUser(t, users, "Ada", "Lovelace", "ada@example.com")
	grace := seedUser(t, users, "Grace", "Hopper", "grace@example.com")
	now := time.Now().UTC().Truncate(time.Second)
	adaSub := seedSubmission(t, subs, ada.ID, now)
	graceSub := seedSubmission(t, subs, grace.ID, now.Add(time.Minute))

	got, total, err := subs.FindByStatus(ctx, models.StatusPending, Page{SortBy: "firstName", Order: "asc"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, got, 2)
	assert.Equal(t, adaSub.ID, got[0].ID)
	assert.Equal(t, graceSub.ID, got[1].ID)
	assert.Equal(t, "Ada", got[0].User.FirstName)
	assert.Equal(t, "Grace", got[1].User.FirstName)

	got, _, err = subs.FindByStatus(ctx, models.StatusPending, Page{SortBy: "firstName", Order: "desc"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, graceSub.ID, got[0].ID)

	// Hopper sorts before Lovelace.
	got, _, err = subs.FindByStatus(ctx, models.StatusPending, Page{SortBy: "lastName", Order: "asc"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, graceSub.ID, got[0].ID)
}

func TestGormSubmissionsFindByUserIDWithUserSort(t *testing.T) {
	db := openTestDB(t)
	users := NewGormUsers(db)
	subs := NewGormSubmissions(db)
	ctx := context.Background()

	ada := seedUser(t, users, "Ada", "Lovelace", "ada@example.com")
	grace := seedUser(t, users, "Grace", "Hopper", "grace@example.com")
	now := time.Now().UTC().Truncate(time.Second)
	mine := seedSubmission(t, subs, ada.ID, now)
	seedSubmission(t, subs, grace.ID, now)

	got, total, err := subs.FindByUserID(ctx, ada.ID, Page{SortBy: "email", Order: "asc"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, got, 1)
	assert.Equal(t, mine.ID, got[0].ID)
}

func TestGormSubmissionsSortBySubmissionColumns(t *testing.T) {
	db := openTestDB(t)
	users := NewGormUsers(db)
	subs := NewGormSubmissions(db)
	ctx := context.Background()

	ada := seedUser(t, users, "Ada", "Lovelace", "ada@example.com")
	now := time.Now().UTC().Truncate(time.Second)
	older := seedSubmission(t, subs, ada.ID, now.Add(-time.Hour))
	newer := seedSubmission(t, subs, ada.ID, now)

	got, _, err := subs.FindByUserID(ctx, ada.ID, Page{SortBy: "createdAt", Order: "asc"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, older.ID, got[0].ID)

	// Anything off the allow-list falls back to created_at descending.
	got, _, err = subs.FindByUserID(ctx, ada.ID, Page{SortBy: "password; DROP TABLE users"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, newer.ID, got[0].ID)
}

func TestGormUsersDuplicateEmailConflict(t *testing.T) {
	db := openTestDB(t)
	users := NewGormUsers(db)
	ctx := context.Background()

	first := seedUser(t, users, "Ada", "Lovelace", "ada@example.com")

	err := users.Create(ctx, &models.User{FirstName: "Augusta", LastName: "King", Email: "ada@example.com"})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))

	got, err := users.FindOrCreate(ctx, &models.User{FirstName: "Augusta", LastName: "King", Email: "ada@example.com"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
}
