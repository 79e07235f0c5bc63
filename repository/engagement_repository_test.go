package repository

import (
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nagarseva/apperr"
	"nagarseva/models"
)

func TestToggleUpvote_AddsWhenNoPair(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEngagementRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT upvotes FROM complaints")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"upvotes"}).AddRow(3))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT upvote_id FROM complaint_upvotes")).
		WithArgs(int64(7), int64(1)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO complaint_upvotes")).
		WithArgs(int64(7), int64(1)).
		WillReturnResult(sqlmock.NewResult(5, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE complaints SET upvotes = upvotes + 1")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	action, upvotes, err := repo.ToggleUpvote(7, 1)
	require.NoError(t, err)
	assert.Equal(t, "added", action)
	assert.Equal(t, 4, upvotes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToggleUpvote_RemovesExistingPair(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEngagementRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT upvotes FROM complaints")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"upvotes"}).AddRow(4))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT upvote_id FROM complaint_upvotes")).
		WithArgs(int64(7), int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"upvote_id"}).AddRow(int64(5)))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM complaint_upvotes WHERE upvote_id = ?")).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE complaints SET upvotes = upvotes - 1")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	action, upvotes, err := repo.ToggleUpvote(7, 1)
	require.NoError(t, err)
	assert.Equal(t, "removed", action)
	assert.Equal(t, 3, upvotes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToggleUpvote_MissingComplaint(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEngagementRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT upvotes FROM complaints")).
		WithArgs(int64(42)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	_, _, err := repo.ToggleUpvote(7, 42)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddComment_InsertsAndIncrementsCounter(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEngagementRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT total_comments FROM complaints")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"total_comments"}).AddRow(2))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO comments")).
		WithArgs(int64(7), int64(1), "please fix this soon").
		WillReturnResult(sqlmock.NewResult(9, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE complaints SET total_comments = total_comments + 1")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	comment := &models.Comment{UserID: 7, ComplaintID: 1, CommentText: "please fix this soon"}
	require.NoError(t, repo.AddComment(comment))
	assert.Equal(t, int64(9), comment.CommentID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddComment_MissingComplaint(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEngagementRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT total_comments FROM complaints")).
		WithArgs(int64(42)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	err := repo.AddComment(&models.Comment{UserID: 7, ComplaintID: 42, CommentText: "hello"})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
