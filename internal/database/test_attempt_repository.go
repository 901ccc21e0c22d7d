package database

import (
	"context"
	"fmt"
	"time"

	"github.com/example/grevocab/pkg/models"
	"github.com/jmoiron/sqlx"
)

// TestAttemptRepository handles database operations for test attempts
type TestAttemptRepository struct {
	db *sqlx.DB
}

// NewTestAttemptRepository creates a new repository instance
func NewTestAttemptRepository(db *sqlx.DB) *TestAttemptRepository {
	return &TestAttemptRepository{db: db}
}

// Create appends a new test attempt. Attempts are immutable once written.
func (r *TestAttemptRepository) Create(ctx context.Context, attempt *models.TestAttempt) error {
	if attempt.TestDate.IsZero() {
		attempt.TestDate = time.Now()
	}
	if attempt.CreatedAt.IsZero() {
		attempt.CreatedAt = time.Now()
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO test_attempts (user_id, test_type, correct_answers, total_questions, duration, test_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		attempt.UserID,
		attempt.TestType,
		attempt.Correct,
		attempt.Total,
		attempt.Duration,
		attempt.TestDate,
		attempt.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create test attempt: %v", err)
	}
	return nil
}

// ByUser returns all test attempts for a user, most recent first
func (r *TestAttemptRepository) ByUser(ctx context.Context, userID int64) ([]models.TestAttempt, error) {
	attempts := []models.TestAttempt{}
	err := r.db.SelectContext(ctx, &attempts, `
		SELECT id, user_id, test_type, correct_answers, total_questions, duration, test_date, created_at
		FROM test_attempts
		WHERE user_id = $1
		ORDER BY created_at DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get test attempts: %v", err)
	}
	return attempts, nil
}

// Reset deletes all of the user's test attempts
func (r *TestAttemptRepository) Reset(ctx context.Context, userID int64) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM test_attempts WHERE user_id = $1", userID)
	if err != nil {
		return fmt.Errorf("failed to reset test attempts: %v", err)
	}
	return nil
}
