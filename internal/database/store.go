package database

import (
	"context"

	"github.com/example/grevocab/pkg/models"
	"github.com/jmoiron/sqlx"
)

// Store bundles the repositories into the read-only ledger view the
// analytics engine consumes
type Store struct {
	Reviews  *ReviewRepository
	Attempts *TestAttemptRepository
	Words    *WordRepository
	Users    *UserRepository
}

// NewStore creates repositories over one database handle
func NewStore(db *sqlx.DB) *Store {
	return &Store{
		Reviews:  NewReviewRepository(db),
		Attempts: NewTestAttemptRepository(db),
		Words:    NewWordRepository(db),
		Users:    NewUserRepository(db),
	}
}

// ReviewRecords returns the user's review ledger, most recent first
func (s *Store) ReviewRecords(ctx context.Context, userID int64) ([]models.ReviewRecord, error) {
	return s.Reviews.ByUser(ctx, userID)
}

// TestAttempts returns the user's test attempts, most recent first
func (s *Store) TestAttempts(ctx context.Context, userID int64) ([]models.TestAttempt, error) {
	return s.Attempts.ByUser(ctx, userID)
}

// Profile returns the user's profile snapshot
func (s *Store) Profile(ctx context.Context, userID int64) (models.UserProfile, error) {
	return s.Users.Profile(ctx, userID)
}

// ListProgress returns per-list word and mastery counts for the user
func (s *Store) ListProgress(ctx context.Context, userID int64) ([]models.WordListProgress, error) {
	return s.Words.ListProgress(ctx, userID)
}

// TotalWordsAvailable returns the size of the imported vocabulary
func (s *Store) TotalWordsAvailable(ctx context.Context) (int, error) {
	return s.Words.TotalWords(ctx)
}
