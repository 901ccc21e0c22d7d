package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/example/grevocab/pkg/models"
	"golang.org/x/sync/errgroup"
)

// Engine is the single entry point for the learning analytics. It owns
// nothing but the injected ledger; every request reads one snapshot and
// computes from it.
type Engine struct {
	ledger Ledger
}

// NewEngine creates an analytics engine over the given ledger
func NewEngine(ledger Ledger) *Engine {
	return &Engine{ledger: ledger}
}

// AdvancedStatistics computes the full aggregate for one user at the given
// instant. The same now threads through every time-relative computation, so
// all derived metrics agree on what "today" means. Any ledger read failure
// fails the whole request; no partially-populated aggregate is ever
// returned.
func (e *Engine) AdvancedStatistics(ctx context.Context, userID int64, now time.Time) (*models.AdvancedStats, error) {
	snap, err := LoadSnapshot(ctx, e.ledger, userID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger snapshot: %v", err)
	}
	return ComputeAdvancedStats(snap)
}

// ComputeAdvancedStats runs the task graph over one snapshot: the
// independent scorers fan out in parallel, then the composite scorers that
// depend on their outputs, then the insight generator over everything.
func ComputeAdvancedStats(snap *Snapshot) (*models.AdvancedStats, error) {
	stats := &models.AdvancedStats{}

	// Level one: independent pure computations over the immutable snapshot
	var g errgroup.Group
	g.Go(func() error {
		stats.ForgettingRisk = ClassifyForgettingRisk(snap.Records, snap.Now)
		return nil
	})
	g.Go(func() error {
		stats.RetentionHealth = ScoreRetention(snap.Records, snap.Now)
		return nil
	})
	g.Go(func() error {
		stats.LearningEfficiency = AnalyzeEfficiency(snap.Records)
		return nil
	})
	g.Go(func() error {
		stats.WeaknessAnalysis = AnalyzeWeakness(snap.Records, snap.Lists, snap.Now)
		return nil
	})
	g.Go(func() error {
		stats.ConsistencyMetrics = AnalyzeConsistency(snap.Records, snap.Profile, snap.Now)
		return nil
	})
	g.Go(func() error {
		stats.BookmarkEffectiveness = BookmarkEffectiveness(snap.Records)
		return nil
	})
	g.Go(func() error {
		stats.AccuracyTrend = DetectAccuracyTrend(snap.Attempts)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Level two: composites over level-one outputs
	stats.ProgressQuality = ClassifyProgressQuality(snap.Records, stats.RetentionHealth, snap.Profile, snap.Now)
	stats.Readiness = ComposeReadiness(snap.Records, snap.Attempts, stats.RetentionHealth, stats.ConsistencyMetrics, snap.TotalWordsAvailable)

	// Level three: insights over everything above
	stats.MicroInsights = GenerateInsights(stats.LearningEfficiency, stats.RetentionHealth, stats.ConsistencyMetrics, stats.ProgressQuality, snap.Attempts)

	return stats, nil
}
