package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/grevocab/pkg/models"
	"github.com/jmoiron/sqlx"
)

// ReviewRepository handles database operations for the review ledger
type ReviewRepository struct {
	db *sqlx.DB
}

// NewReviewRepository creates a new repository instance
func NewReviewRepository(db *sqlx.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// SaveReview records a mastery judgment for a word. The first review of a
// word inserts a record with review_count 1; every later review updates the
// mastery level, stamps last_reviewed and increments the count.
func (r *ReviewRepository) SaveReview(ctx context.Context, userID, wordID int64, word string, level models.MasteryLevel, now time.Time) error {
	var existingID int64
	err := r.db.QueryRowContext(ctx,
		"SELECT id FROM review_records WHERE user_id = $1 AND word_id = $2",
		userID, wordID).Scan(&existingID)

	if err == sql.ErrNoRows {
		_, err = r.db.ExecContext(ctx, `
			INSERT INTO review_records (user_id, word_id, word, mastery_level, last_reviewed, review_count)
			VALUES ($1, $2, $3, $4, $5, 1)`,
			userID, wordID, word, level, now)
		if err != nil {
			return fmt.Errorf("failed to create review record: %v", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to look up review record: %v", err)
	}

	_, err = r.db.ExecContext(ctx, `
		UPDATE review_records SET
			mastery_level = $1,
			last_reviewed = $2,
			review_count = review_count + 1
		WHERE id = $3`,
		level, now, existingID)
	if err != nil {
		return fmt.Errorf("failed to update review record: %v", err)
	}
	return nil
}

// ByUser returns the user's full review ledger, most recently reviewed first
func (r *ReviewRepository) ByUser(ctx context.Context, userID int64) ([]models.ReviewRecord, error) {
	records := []models.ReviewRecord{}
	err := r.db.SelectContext(ctx, &records, `
		SELECT id, user_id, word_id, word, mastery_level, last_reviewed, review_count, is_bookmarked
		FROM review_records
		WHERE user_id = $1
		ORDER BY last_reviewed DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get review records: %v", err)
	}
	return records, nil
}

// SetBookmarked toggles the bookmark flag independently of mastery
func (r *ReviewRepository) SetBookmarked(ctx context.Context, userID, wordID int64, bookmarked bool) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE review_records SET is_bookmarked = $1 WHERE user_id = $2 AND word_id = $3",
		bookmarked, userID, wordID)
	if err != nil {
		return fmt.Errorf("failed to set bookmark: %v", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %v", err)
	}
	if rows == 0 {
		return fmt.Errorf("no review record for word %d", wordID)
	}
	return nil
}

// WordsToReview returns words still rated unknown or unsure, longest-unreviewed first
func (r *ReviewRepository) WordsToReview(ctx context.Context, userID int64, limit int) ([]models.Word, error) {
	words := []models.Word{}
	err := r.db.SelectContext(ctx, &words, `
		SELECT w.id, w.list_id, w.list_name, w.word, w.definition, w.created_at
		FROM words w
		INNER JOIN review_records rr ON w.id = rr.word_id
		WHERE rr.user_id = $1 AND rr.mastery_level IN ('unknown', 'unsure')
		ORDER BY rr.last_reviewed ASC
		LIMIT $2`,
		userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get words to review: %v", err)
	}
	return words, nil
}

// Reset deletes the user's entire review ledger
func (r *ReviewRepository) Reset(ctx context.Context, userID int64) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM review_records WHERE user_id = $1", userID)
	if err != nil {
		return fmt.Errorf("failed to reset review records: %v", err)
	}
	return nil
}
