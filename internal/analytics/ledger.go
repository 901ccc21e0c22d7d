// Package analytics turns a user's raw review history into derived learning
// metrics: forgetting risk, retention health, efficiency, consistency,
// progress quality, exam readiness, weakness rankings, performance trends
// and micro insights. Every computation is a pure function over a Snapshot
// read once per request with a single injected clock, so results are
// deterministic and internally consistent.
package analytics

import (
	"context"
	"time"

	"github.com/example/grevocab/pkg/models"
	"golang.org/x/sync/errgroup"
)

// Ledger is the read-only view of a user's learning history the engine
// computes from. The database repositories satisfy it in production; tests
// inject fixtures.
type Ledger interface {
	// ReviewRecords returns the user's per-word review ledger
	ReviewRecords(ctx context.Context, userID int64) ([]models.ReviewRecord, error)
	// TestAttempts returns the user's test attempts, most recent first
	TestAttempts(ctx context.Context, userID int64) ([]models.TestAttempt, error)
	// Profile returns the user's profile snapshot
	Profile(ctx context.Context, userID int64) (models.UserProfile, error)
	// ListProgress returns per-list word and mastery counts
	ListProgress(ctx context.Context, userID int64) ([]models.WordListProgress, error)
	// TotalWordsAvailable returns the size of the full vocabulary
	TotalWordsAvailable(ctx context.Context) (int, error)
}

// Snapshot is an immutable point-in-time copy of everything the analytics
// computations need. It is read eagerly before any fan-out so sibling
// computations cannot observe different ledger states.
type Snapshot struct {
	Now                 time.Time
	Records             []models.ReviewRecord
	Attempts            []models.TestAttempt // most recent first
	Profile             models.UserProfile
	Lists               []models.WordListProgress
	TotalWordsAvailable int
}

// LoadSnapshot performs the five ledger reads concurrently and fails as a
// whole if any of them does. A failed read never degrades into an empty
// snapshot.
func LoadSnapshot(ctx context.Context, ledger Ledger, userID int64, now time.Time) (*Snapshot, error) {
	snap := &Snapshot{Now: now}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		records, err := ledger.ReviewRecords(ctx, userID)
		snap.Records = records
		return err
	})
	g.Go(func() error {
		attempts, err := ledger.TestAttempts(ctx, userID)
		snap.Attempts = attempts
		return err
	})
	g.Go(func() error {
		profile, err := ledger.Profile(ctx, userID)
		snap.Profile = profile
		return err
	})
	g.Go(func() error {
		lists, err := ledger.ListProgress(ctx, userID)
		snap.Lists = lists
		return err
	})
	g.Go(func() error {
		total, err := ledger.TotalWordsAvailable(ctx)
		snap.TotalWordsAvailable = total
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snap, nil
}
