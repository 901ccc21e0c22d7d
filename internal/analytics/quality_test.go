package analytics

import (
	"testing"

	"github.com/example/grevocab/pkg/models"
)

func masteredRecords(n, reviewsEach int) []models.ReviewRecord {
	records := []models.ReviewRecord{}
	for i := 0; i < n; i++ {
		records = append(records, record(int64(i), "w", models.MasteryKnown, 1, reviewsEach))
	}
	return records
}

func TestClassifyProgressQuality_QuadrantTable(t *testing.T) {
	// Two days of history; 10 mastered words -> 5.0/day (fast),
	// 2 mastered -> 1.0/day (slow)
	profile := models.UserProfile{StartDate: testNow.AddDate(0, 0, -2)}

	cases := []struct {
		name           string
		mastered       int
		retentionScore int
		want           string
	}{
		{"fast stable", 10, 60, CategoryFastStable},
		{"fast fragile", 10, 59, CategoryFastFragile},
		{"slow stable", 2, 80, CategorySlowStable},
		{"slow fragile", 2, 20, CategorySlowFragile},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			records := masteredRecords(tc.mastered, 3)
			retention := models.RetentionHealth{Score: tc.retentionScore}

			quality := ClassifyProgressQuality(records, retention, profile, testNow)

			if quality.SpeedVsStability.Category != tc.want {
				t.Errorf("expected category %q, got %q", tc.want, quality.SpeedVsStability.Category)
			}
			if quality.SpeedVsStability.RetentionRate != tc.retentionScore {
				t.Errorf("retention rate not carried through: %d", quality.SpeedVsStability.RetentionRate)
			}
		})
	}
}

func TestClassifyProgressQuality_Depth(t *testing.T) {
	records := []models.ReviewRecord{
		record(1, "a", models.MasteryKnown, 1, 4),
		record(2, "b", models.MasteryKnown, 1, 3),
		record(3, "c", models.MasteryUnsure, 1, 5),
	}
	profile := models.UserProfile{StartDate: testNow.AddDate(0, 0, -10)}

	quality := ClassifyProgressQuality(records, models.RetentionHealth{Score: 70}, profile, testNow)

	// 12 total reviews over 2 mastered words
	if quality.LearningDepth != 6.0 {
		t.Errorf("expected learning depth 6.0, got %v", quality.LearningDepth)
	}
	if quality.SpeedVsStability.WordsPerDay != 0.2 {
		t.Errorf("expected 0.2 words per day, got %v", quality.SpeedVsStability.WordsPerDay)
	}
}

func TestClassifyProgressQuality_EmptyLedger(t *testing.T) {
	profile := models.UserProfile{StartDate: testNow.AddDate(0, 0, -5)}

	quality := ClassifyProgressQuality(nil, models.RetentionHealth{}, profile, testNow)

	if quality.LearningDepth != 0 || quality.SpeedVsStability.WordsPerDay != 0 {
		t.Errorf("expected zero metrics on empty ledger, got %+v", quality)
	}
	if quality.SpeedVsStability.Category != CategorySlowFragile {
		t.Errorf("empty ledger should classify slow & fragile, got %q", quality.SpeedVsStability.Category)
	}
}
