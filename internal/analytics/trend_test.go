package analytics

import (
	"testing"

	"github.com/example/grevocab/pkg/models"
)

// attemptsNewestFirst builds the storage order (most recent first) from a
// chronological list of (correct, duration) pairs, all out of 10 questions
func attemptsNewestFirst(chronological [][2]int) []models.TestAttempt {
	attempts := []models.TestAttempt{}
	n := len(chronological)
	for i := n - 1; i >= 0; i-- {
		attempts = append(attempts, attempt(chronological[i][0], 10, chronological[i][1], n-1-i))
	}
	return attempts
}

func TestDetectAccuracyTrend_NoAttempts(t *testing.T) {
	trend := DetectAccuracyTrend(nil)

	if trend.Trend != models.TrendStable {
		t.Errorf("expected stable trend, got %q", trend.Trend)
	}
	if len(trend.RecentTests) != 0 {
		t.Errorf("expected no recent tests, got %d", len(trend.RecentTests))
	}
	if trend.Insight != insightNoTests {
		t.Errorf("unexpected insight: %q", trend.Insight)
	}
}

func TestDetectAccuracyTrend_FewerThanThreeAlwaysStable(t *testing.T) {
	// Even a dramatic jump cannot classify with under 3 attempts
	attempts := attemptsNewestFirst([][2]int{{2, 100}, {10, 50}})

	trend := DetectAccuracyTrend(attempts)

	if trend.Trend != models.TrendStable {
		t.Errorf("expected stable with 2 attempts, got %q", trend.Trend)
	}
}

func TestDetectAccuracyTrend_Improving(t *testing.T) {
	// First half 50% avg, second half 80% avg, no slowdown
	attempts := attemptsNewestFirst([][2]int{
		{5, 100}, {5, 100}, {8, 90}, {8, 90},
	})

	trend := DetectAccuracyTrend(attempts)

	if trend.Trend != models.TrendImproving {
		t.Errorf("expected improving, got %q", trend.Trend)
	}
	if trend.Insight != insightImproving {
		t.Errorf("unexpected insight: %q", trend.Insight)
	}
	// Chronological order in the output
	if trend.RecentTests[0].Accuracy != 50 || trend.RecentTests[3].Accuracy != 80 {
		t.Errorf("recent tests not chronological: %+v", trend.RecentTests)
	}
}

func TestDetectAccuracyTrend_ImprovingRequiresNoSlowdown(t *testing.T) {
	// Accuracy rises but time rises too: not improving
	attempts := attemptsNewestFirst([][2]int{
		{5, 100}, {5, 100}, {8, 200}, {8, 200},
	})

	trend := DetectAccuracyTrend(attempts)

	if trend.Trend != models.TrendStable {
		t.Errorf("expected stable when getting slower, got %q", trend.Trend)
	}
}

func TestDetectAccuracyTrend_Declining(t *testing.T) {
	attempts := attemptsNewestFirst([][2]int{
		{9, 100}, {9, 100}, {5, 100}, {5, 100},
	})

	trend := DetectAccuracyTrend(attempts)

	if trend.Trend != models.TrendDeclining {
		t.Errorf("expected declining, got %q", trend.Trend)
	}
	if trend.Insight != insightDeclining {
		t.Errorf("unexpected insight: %q", trend.Insight)
	}
}

func TestDetectAccuracyTrend_NoiseMargin(t *testing.T) {
	// A 5-point swing sits exactly on the margin and stays stable
	attempts := attemptsNewestFirst([][2]int{
		{6, 100}, {6, 100}, {5, 100}, {5, 100}, // 60% -> 50%... 10pt: declining
	})
	if got := DetectAccuracyTrend(attempts).Trend; got != models.TrendDeclining {
		t.Errorf("10-point drop should decline, got %q", got)
	}

	attempts = attemptsNewestFirst([][2]int{
		{6, 100}, {6, 100}, {7, 100}, {5, 100}, // 60% -> 60%
	})
	if got := DetectAccuracyTrend(attempts).Trend; got != models.TrendStable {
		t.Errorf("flat halves should be stable, got %q", got)
	}
}

func TestDetectAccuracyTrend_WindowsTen(t *testing.T) {
	chronological := [][2]int{}
	for i := 0; i < 12; i++ {
		chronological = append(chronological, [2]int{7, 60})
	}
	attempts := attemptsNewestFirst(chronological)

	trend := DetectAccuracyTrend(attempts)

	if len(trend.RecentTests) != trendWindow {
		t.Errorf("expected %d recent tests, got %d", trendWindow, len(trend.RecentTests))
	}
}

func TestDetectAccuracyTrend_OddSplit(t *testing.T) {
	// 5 points: first half gets the floor (2), second half 3
	attempts := attemptsNewestFirst([][2]int{
		{5, 100}, {5, 100}, {9, 90}, {9, 90}, {9, 90},
	})

	trend := DetectAccuracyTrend(attempts)

	if trend.Trend != models.TrendImproving {
		t.Errorf("expected improving on odd split, got %q", trend.Trend)
	}
}
