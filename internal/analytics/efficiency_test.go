package analytics

import (
	"testing"

	"github.com/example/grevocab/pkg/models"
)

func TestAnalyzeEfficiency(t *testing.T) {
	records := []models.ReviewRecord{
		record(1, "a", models.MasteryUnknown, 1, 4),
		record(2, "b", models.MasteryUnsure, 1, 6),
		record(3, "c", models.MasteryKnown, 1, 2),
		record(4, "d", models.MasteryKnown, 1, 4),
	}

	eff := AnalyzeEfficiency(records)

	if eff.MasteryFunnel != (models.MasteryFunnel{Unknown: 1, Unsure: 1, Known: 2}) {
		t.Errorf("unexpected funnel: %+v", eff.MasteryFunnel)
	}
	// All 16 reviews spread over 2 mastered words
	if eff.ReviewsPerLearnedWord != 8.0 {
		t.Errorf("expected 8.0 reviews per learned word, got %v", eff.ReviewsPerLearnedWord)
	}
	// Only the 6 reviews of the mastered words count here
	if eff.AverageReviewsToMaster != 3.0 {
		t.Errorf("expected 3.0 average reviews to master, got %v", eff.AverageReviewsToMaster)
	}
}

func TestAnalyzeEfficiency_DistinctMetrics(t *testing.T) {
	// A word hoarding reviews without mastery inflates one metric only
	records := []models.ReviewRecord{
		record(1, "stubborn", models.MasteryUnsure, 1, 20),
		record(2, "easy", models.MasteryKnown, 1, 2),
	}

	eff := AnalyzeEfficiency(records)

	if eff.ReviewsPerLearnedWord != 22.0 {
		t.Errorf("expected 22.0 reviews per learned word, got %v", eff.ReviewsPerLearnedWord)
	}
	if eff.AverageReviewsToMaster != 2.0 {
		t.Errorf("expected 2.0 average reviews to master, got %v", eff.AverageReviewsToMaster)
	}
}

func TestAnalyzeEfficiency_NoMasteredWords(t *testing.T) {
	records := []models.ReviewRecord{
		record(1, "a", models.MasteryUnsure, 1, 9),
	}

	eff := AnalyzeEfficiency(records)

	if eff.ReviewsPerLearnedWord != 0 || eff.AverageReviewsToMaster != 0 {
		t.Errorf("expected zero ratios with no mastered words, got %+v", eff)
	}
	if eff.MasteryFunnel.Unsure != 1 {
		t.Errorf("funnel should still tally: %+v", eff.MasteryFunnel)
	}
}
