package analytics

import (
	"testing"

	"github.com/example/grevocab/pkg/models"
)

func TestGenerateInsights_FixedOrderAndCap(t *testing.T) {
	// Fire every co-firable rule: quick learner, retention alert,
	// consistency champion, test master, peak performance
	efficiency := models.LearningEfficiency{AverageReviewsToMaster: 2.5}
	retention := models.RetentionHealth{Score: 30}
	consistency := models.ConsistencyMetrics{
		ActiveDaysLast30: 25,
		BestLearningDays: []models.DayActivity{{Day: "Monday", Count: 12, Percentage: 40}},
	}
	quality := models.ProgressQuality{
		SpeedVsStability: models.SpeedStability{Category: CategorySlowFragile},
	}
	attempts := []models.TestAttempt{}
	for i := 0; i < 5; i++ {
		attempts = append(attempts, attempt(9, 10, 60, i))
	}

	insights := GenerateInsights(efficiency, retention, consistency, quality, attempts)

	if len(insights) > maxInsights {
		t.Fatalf("insight list exceeds cap: %d", len(insights))
	}
	want := []string{"Quick Learner", "Review Alert", "Consistency Champion", "Test Master", "Peak Performance"}
	if len(insights) != len(want) {
		t.Fatalf("expected %d insights, got %d: %+v", len(want), len(insights), insights)
	}
	for i, title := range want {
		if insights[i].Title != title {
			t.Errorf("insight %d: expected %q, got %q", i, title, insights[i].Title)
		}
	}
}

func TestGenerateInsights_EmptyLedgerNoQuickLearner(t *testing.T) {
	// averageReviewsToMaster of 0 means nothing mastered yet; the quick
	// learner rule must not fire on it
	insights := GenerateInsights(
		models.LearningEfficiency{},
		models.RetentionHealth{Score: 0},
		models.ConsistencyMetrics{},
		models.ProgressQuality{SpeedVsStability: models.SpeedStability{Category: CategorySlowFragile}},
		nil)

	for _, insight := range insights {
		if insight.Title == "Quick Learner" {
			t.Errorf("quick learner fired on an empty ledger")
		}
	}
	if len(insights) == 0 || insights[0].Title != "Review Alert" {
		t.Errorf("expected the retention alert first, got %+v", insights)
	}
}

func TestGenerateInsights_DeepLearningVsQuickLearner(t *testing.T) {
	deep := GenerateInsights(
		models.LearningEfficiency{AverageReviewsToMaster: 8},
		models.RetentionHealth{Score: 90},
		models.ConsistencyMetrics{},
		models.ProgressQuality{SpeedVsStability: models.SpeedStability{Category: CategorySlowStable}},
		nil)

	if len(deep) == 0 || deep[0].Title != "Deep Learning" {
		t.Errorf("expected deep learning insight, got %+v", deep)
	}
	if deep[0].Type != models.InsightNeutral {
		t.Errorf("deep learning should be neutral, got %q", deep[0].Type)
	}
}

func TestGenerateInsights_OptimalLearning(t *testing.T) {
	insights := GenerateInsights(
		models.LearningEfficiency{AverageReviewsToMaster: 5},
		models.RetentionHealth{Score: 90},
		models.ConsistencyMetrics{},
		models.ProgressQuality{SpeedVsStability: models.SpeedStability{Category: CategoryFastStable}},
		nil)

	if len(insights) != 1 || insights[0].Title != "Optimal Learning" {
		t.Errorf("expected only the optimal learning insight, got %+v", insights)
	}
	if insights[0].Type != models.InsightPositive {
		t.Errorf("optimal learning should be positive, got %q", insights[0].Type)
	}
}

func TestGenerateInsights_TestMasterNeedsFiveAttempts(t *testing.T) {
	attempts := []models.TestAttempt{}
	for i := 0; i < 4; i++ {
		attempts = append(attempts, attempt(10, 10, 60, i))
	}

	insights := GenerateInsights(
		models.LearningEfficiency{AverageReviewsToMaster: 5},
		models.RetentionHealth{Score: 90},
		models.ConsistencyMetrics{},
		models.ProgressQuality{SpeedVsStability: models.SpeedStability{Category: CategorySlowStable}},
		attempts)

	for _, insight := range insights {
		if insight.Title == "Test Master" {
			t.Errorf("test master fired with only 4 attempts")
		}
	}
}
