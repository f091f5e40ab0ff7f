package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func TestContentWriteRepository_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewContentWriteRepository(db, nil)

		mock.ExpectExec("INSERT INTO content_records").
			WithArgs(int64(1), "Widget", "text A", "headline A").
			WillReturnResult(sqlmock.NewResult(1, 1))

		err := repo.Save(ctx, 1, "Widget", "text A", "headline A")
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ForeignKeyViolation", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewContentWriteRepository(db, nil)

		mock.ExpectExec("INSERT INTO content_records").
			WithArgs(int64(999), "Widget", "text A", "headline A").
			WillReturnError(errors.New(`insert or update on table "content_records" violates foreign key constraint`))

		err := repo.Save(ctx, 999, "Widget", "text A", "headline A")
		assert.Error(t, err)
	})

	t.Run("RunsInTransactionFromContext", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO content_records").
			WithArgs(int64(1), "Widget", "text A", "headline A").
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		tx, err := db.Beginx()
		assert.NoError(t, err)

		repo := NewContentWriteRepository(db, func(context.Context) *sqlx.Tx { return tx })

		err = repo.Save(ctx, 1, "Widget", "text A", "headline A")
		assert.NoError(t, err)

		assert.NoError(t, tx.Commit())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestContentReadRepository_ListByUser(t *testing.T) {
	ctx := context.Background()
	cols := []string{"id", "user_id", "product_name", "generated_text", "headline", "created_at"}

	t.Run("OrderedMostRecentFirst", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewContentReadRepository(db)

		now := time.Now()
		rows := sqlmock.NewRows(cols).
			AddRow(int64(2), int64(1), "Widget", "text B", "headline B", now).
			AddRow(int64(1), int64(1), "Widget", "text A", "headline A", now.Add(-time.Minute))
		mock.ExpectQuery("SELECT id, user_id, product_name, generated_text, headline, created_at").
			WithArgs(int64(1), 50, 0).
			WillReturnRows(rows)

		records, err := repo.ListByUser(ctx, 1, 50, 0)
		assert.NoError(t, err)
		assert.Len(t, records, 2)
		assert.Equal(t, "text B", records[0].GeneratedText)
		assert.Equal(t, "text A", records[1].GeneratedText)
	})

	t.Run("EmptyHistory", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewContentReadRepository(db)

		mock.ExpectQuery("SELECT id, user_id, product_name, generated_text, headline, created_at").
			WithArgs(int64(2), 50, 0).
			WillReturnRows(sqlmock.NewRows(cols))

		records, err := repo.ListByUser(ctx, 2, 50, 0)
		assert.NoError(t, err)
		assert.NotNil(t, records)
		assert.Empty(t, records)
	})

	t.Run("StoreError", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewContentReadRepository(db)

		mock.ExpectQuery("SELECT id, user_id, product_name, generated_text, headline, created_at").
			WithArgs(int64(1), 50, 0).
			WillReturnError(errors.New("connection refused"))

		records, err := repo.ListByUser(ctx, 1, 50, 0)
		assert.Error(t, err)
		assert.Nil(t, records)
	})
}
