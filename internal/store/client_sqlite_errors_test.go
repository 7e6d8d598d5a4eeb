package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/models"
)

// Ошибочные пути проверяются на sqlmock: реальный sqlite их почти не выдаёт.

func newMockedStore(t *testing.T) (LocalStore, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewLocalStore(db, logger.Nop()), mock
}

func TestWatermark_QueryFails(t *testing.T) {
	s, mock := newMockedStore(t)

	mock.ExpectQuery("SELECT COALESCE").WillReturnError(errors.New("disk I/O error"))

	_, err := s.Watermark(context.Background())
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveRecord_BeginFails(t *testing.T) {
	s, mock := newMockedStore(t)

	mock.ExpectBegin().WillReturnError(errors.New("database is locked"))

	_, err := s.SaveRecord(context.Background(), models.CollectionRecipes, models.Record{ID: "r1", UpdatedAt: 1})
	assert.ErrorIs(t, err, ErrBeginningTransaction)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveRecord_CommitFails(t *testing.T) {
	s, mock := newMockedStore(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO records").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit().WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	_, err := s.SaveRecord(context.Background(), models.CollectionRecipes, models.Record{ID: "r1", UpdatedAt: 1})
	assert.ErrorIs(t, err, ErrCommitingTransaction)
}

func TestReplaceSnapshot_ClearFails(t *testing.T) {
	s, mock := newMockedStore(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM records").WillReturnError(errors.New("database is locked"))
	mock.ExpectRollback()

	err := s.ReplaceSnapshot(context.Background(), models.EmptySnapshot(1))
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestGetSnapshot_QueryFails(t *testing.T) {
	s, mock := newMockedStore(t)

	mock.ExpectQuery("SELECT collection, id, fields").WillReturnError(errors.New("disk I/O error"))

	_, err := s.GetSnapshot(context.Background())
	assert.ErrorIs(t, err, ErrExecutingQuery)
}
