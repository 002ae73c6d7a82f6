package mysql

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/avezina/inkwell/domain"
	"github.com/avezina/inkwell/internal/repository"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	return gdb, mock
}

func postRows(created time.Time) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "title", "content", "category_id", "tags", "total_likes", "updated_at", "created_at"}).
		AddRow(1, "hello", "body", 2, `["go","redis"]`, 5, created, created)
}

func TestPostFetch(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewPostRepository(gdb)

	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	mock.ExpectQuery("SELECT \\* FROM `post` WHERE created_at > \\?").
		WillReturnRows(postRows(created))

	posts, err := repo.Fetch(context.Background(), "", 10)
	require.NoError(t, err)
	require.Len(t, posts, 1)

	assert.EqualValues(t, 1, posts[0].ID)
	assert.Equal(t, "hello", posts[0].Title)
	assert.EqualValues(t, 2, posts[0].Category.ID)
	assert.Equal(t, []string{"go", "redis"}, posts[0].Tags)
	assert.EqualValues(t, 5, posts[0].TotalLikes)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostFetchRejectsBadCursor(t *testing.T) {
	gdb, _ := newMockDB(t)
	repo := NewPostRepository(gdb)

	_, err := repo.Fetch(context.Background(), "not-base64!", 10)
	assert.ErrorIs(t, err, domain.ErrBadParamInput)
}

func TestPostFetchDecodesCursor(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewPostRepository(gdb)

	after := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	cursor := repository.EncodeCursor(after)

	mock.ExpectQuery("SELECT \\* FROM `post` WHERE created_at > \\?").
		WithArgs(after).
		WillReturnRows(postRows(after.Add(time.Hour)))

	posts, err := repo.Fetch(context.Background(), cursor, 10)
	require.NoError(t, err)
	assert.Len(t, posts, 1)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostGetByIDNotFound(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewPostRepository(gdb)

	mock.ExpectQuery("SELECT \\* FROM `post` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPostDeleteNotFound(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewPostRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `post`").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPostFetchByCategoryScopesQuery(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewPostRepository(gdb)

	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	mock.ExpectQuery("SELECT \\* FROM `post` WHERE category_id = \\? AND created_at > \\?").
		WillReturnRows(postRows(created))

	posts, err := repo.FetchByCategory(context.Background(), 2, "", 10)
	require.NoError(t, err)
	assert.Len(t, posts, 1)

	require.NoError(t, mock.ExpectationsWereMet())
}
