package analytics

import (
	"testing"

	"github.com/example/grevocab/pkg/models"
)

func attempt(correct, total, duration, daysAgo int) models.TestAttempt {
	when := testNow.AddDate(0, 0, -daysAgo)
	return models.TestAttempt{
		UserID:    1,
		TestType:  "MCQ - Learned Words",
		Correct:   correct,
		Total:     total,
		Duration:  duration,
		TestDate:  when,
		CreatedAt: when,
	}
}

func TestComposeReadiness_WeightedSum(t *testing.T) {
	// coverage 50 -> 15 pts, retention 60 -> 15 pts, accuracy 80 -> 24 pts,
	// consistency 50 -> 7.5 pts; total 61.5 -> 62, On Track
	records := masteredRecords(5, 2)
	attempts := []models.TestAttempt{attempt(8, 10, 120, 1)}

	readiness := ComposeReadiness(records, attempts,
		models.RetentionHealth{Score: 60},
		models.ConsistencyMetrics{Score: 50},
		10)

	if readiness.Score != 62 {
		t.Errorf("expected composite 62, got %d", readiness.Score)
	}
	if readiness.Status != StatusOnTrack {
		t.Errorf("expected status %q, got %q", StatusOnTrack, readiness.Status)
	}
	if readiness.VocabularyCoverage != 50 {
		t.Errorf("expected coverage 50, got %d", readiness.VocabularyCoverage)
	}
	if readiness.TestAccuracy != 80 {
		t.Errorf("expected test accuracy 80, got %d", readiness.TestAccuracy)
	}
}

func TestComposeReadiness_PerfectScores(t *testing.T) {
	records := masteredRecords(10, 1)
	attempts := []models.TestAttempt{attempt(10, 10, 60, 1)}

	readiness := ComposeReadiness(records, attempts,
		models.RetentionHealth{Score: 100},
		models.ConsistencyMetrics{Score: 100},
		10)

	if readiness.Score != 100 {
		t.Errorf("expected composite 100, got %d", readiness.Score)
	}
	if readiness.Status != StatusExamReady {
		t.Errorf("expected status %q, got %q", StatusExamReady, readiness.Status)
	}
}

func TestComposeReadiness_NoAttempts(t *testing.T) {
	// The accuracy term contributes exactly 0 and the composite still
	// computes from the other three terms
	records := masteredRecords(5, 2)

	readiness := ComposeReadiness(records, nil,
		models.RetentionHealth{Score: 80},
		models.ConsistencyMetrics{Score: 40},
		10)

	// coverage 50 -> 15, retention 80 -> 20, accuracy 0, consistency 40 -> 6
	if readiness.Score != 41 {
		t.Errorf("expected composite 41, got %d", readiness.Score)
	}
	if readiness.TestAccuracy != 0 {
		t.Errorf("expected test accuracy 0 with no attempts, got %d", readiness.TestAccuracy)
	}
	if readiness.Status != StatusNeedsWork {
		t.Errorf("expected status %q, got %q", StatusNeedsWork, readiness.Status)
	}
}

func TestComposeReadiness_NoVocabulary(t *testing.T) {
	readiness := ComposeReadiness(nil, nil, models.RetentionHealth{}, models.ConsistencyMetrics{}, 0)

	if readiness.Score != 0 {
		t.Errorf("expected composite 0, got %d", readiness.Score)
	}
	if readiness.Status != StatusJustStarting {
		t.Errorf("expected status %q, got %q", StatusJustStarting, readiness.Status)
	}
}

func TestComposeReadiness_Monotonic(t *testing.T) {
	records := masteredRecords(5, 2)
	attempts := []models.TestAttempt{attempt(5, 10, 120, 1)}

	base := ComposeReadiness(records, attempts,
		models.RetentionHealth{Score: 50}, models.ConsistencyMetrics{Score: 50}, 20)

	higherRetention := ComposeReadiness(records, attempts,
		models.RetentionHealth{Score: 90}, models.ConsistencyMetrics{Score: 50}, 20)
	if higherRetention.Score < base.Score {
		t.Errorf("raising retention lowered the composite: %d -> %d", base.Score, higherRetention.Score)
	}

	higherConsistency := ComposeReadiness(records, attempts,
		models.RetentionHealth{Score: 50}, models.ConsistencyMetrics{Score: 100}, 20)
	if higherConsistency.Score < base.Score {
		t.Errorf("raising consistency lowered the composite: %d -> %d", base.Score, higherConsistency.Score)
	}

	betterAccuracy := ComposeReadiness(records, []models.TestAttempt{attempt(10, 10, 120, 1)},
		models.RetentionHealth{Score: 50}, models.ConsistencyMetrics{Score: 50}, 20)
	if betterAccuracy.Score < base.Score {
		t.Errorf("raising accuracy lowered the composite: %d -> %d", base.Score, betterAccuracy.Score)
	}

	moreCoverage := ComposeReadiness(masteredRecords(10, 2), attempts,
		models.RetentionHealth{Score: 50}, models.ConsistencyMetrics{Score: 50}, 20)
	if moreCoverage.Score < base.Score {
		t.Errorf("raising coverage lowered the composite: %d -> %d", base.Score, moreCoverage.Score)
	}
}

func TestRecentPooledAccuracy_WindowsTen(t *testing.T) {
	// 12 attempts, newest first: the two oldest (all wrong) must be ignored
	attempts := []models.TestAttempt{}
	for i := 0; i < 10; i++ {
		attempts = append(attempts, attempt(10, 10, 60, i))
	}
	attempts = append(attempts, attempt(0, 10, 60, 11), attempt(0, 10, 60, 12))

	if got := recentPooledAccuracy(attempts); got != 100 {
		t.Errorf("expected pooled accuracy 100 over the recent window, got %v", got)
	}
}
