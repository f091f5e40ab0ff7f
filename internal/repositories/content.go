package repositories

import (
	"context"
	"strings"

	"github.com/akozyreva/marketing-kit/internal/logger"
	"github.com/akozyreva/marketing-kit/internal/models"
	"github.com/jmoiron/sqlx"
)

// ContentWriteRepository handles content record write operations
type ContentWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewContentWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ContentWriteRepository {
	return &ContentWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts one content record with created_at defaulting to the
// database clock. A user_id that violates the foreign key propagates as
// an error, the record is not inserted.
func (r *ContentWriteRepository) Save(ctx context.Context, userID int64, productName, generatedText, headline string) error {
	query := `
		INSERT INTO content_records (user_id, product_name, generated_text, headline)
		VALUES ($1, $2, $3, $4)
	`

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	res, err := executor.ExecContext(ctx, query, userID, productName, generatedText, headline)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	// Log query, args, result, error
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, productName},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// ContentReadRepository handles content record read operations
type ContentReadRepository struct {
	db *sqlx.DB
}

func NewContentReadRepository(db *sqlx.DB) *ContentReadRepository {
	return &ContentReadRepository{db: db}
}

// ListByUser returns the user's records ordered most recent first.
// The id tiebreak keeps records inserted within the same timestamp in
// insertion order. A user with no history gets an empty slice.
func (r *ContentReadRepository) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]models.ContentRecordDB, error) {
	const query = `
		SELECT id, user_id, product_name, generated_text, headline, created_at
		FROM content_records
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`

	records := make([]models.ContentRecordDB, 0)
	err := r.db.SelectContext(ctx, &records, query, userID, limit, offset)

	// Log query, args, result, error
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, limit, offset},
		"result", len(records),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return records, nil
}
