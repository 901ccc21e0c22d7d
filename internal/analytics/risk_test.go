package analytics

import (
	"testing"
	"time"

	"github.com/example/grevocab/pkg/models"
)

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func record(wordID int64, word string, level models.MasteryLevel, reviewedDaysAgo int, reviewCount int) models.ReviewRecord {
	return models.ReviewRecord{
		ID:           wordID,
		UserID:       1,
		WordID:       wordID,
		Word:         word,
		MasteryLevel: level,
		LastReviewed: testNow.AddDate(0, 0, -reviewedDaysAgo),
		ReviewCount:  reviewCount,
	}
}

func TestClassifyForgettingRisk_Partition(t *testing.T) {
	records := []models.ReviewRecord{
		record(1, "abate", models.MasteryKnown, 20, 5),
		record(2, "cogent", models.MasteryUnsure, 10, 3),
		record(3, "dearth", models.MasteryKnown, 2, 4),
		record(4, "ephemeral", models.MasteryUnknown, 30, 1),
	}

	risk := ClassifyForgettingRisk(records, testNow)

	if len(risk.HighRisk) != 1 || risk.HighRisk[0].Word != "abate" {
		t.Errorf("expected abate as the only high-risk word, got %+v", risk.HighRisk)
	}
	if len(risk.MediumRisk) != 1 || risk.MediumRisk[0].Word != "cogent" {
		t.Errorf("expected cogent as the only medium-risk word, got %+v", risk.MediumRisk)
	}
	if risk.SafeWords != 1 {
		t.Errorf("expected 1 safe word, got %d", risk.SafeWords)
	}

	// Unknown words never appear; learned words land in exactly one bucket
	learned := 3
	if got := len(risk.HighRisk) + len(risk.MediumRisk) + risk.SafeWords; got != learned {
		t.Errorf("partition not total: %d buckets for %d learned words", got, learned)
	}
}

func TestClassifyForgettingRisk_Boundaries(t *testing.T) {
	records := []models.ReviewRecord{
		record(1, "fourteen", models.MasteryKnown, 14, 1),
		record(2, "seven", models.MasteryKnown, 7, 1),
		record(3, "six", models.MasteryKnown, 6, 1),
	}

	risk := ClassifyForgettingRisk(records, testNow)

	if len(risk.HighRisk) != 1 || risk.HighRisk[0].DaysSinceReview != 14 {
		t.Errorf("day 14 should be high risk, got %+v", risk.HighRisk)
	}
	if len(risk.MediumRisk) != 1 || risk.MediumRisk[0].DaysSinceReview != 7 {
		t.Errorf("day 7 should be medium risk, got %+v", risk.MediumRisk)
	}
	if risk.SafeWords != 1 {
		t.Errorf("day 6 should be safe, got %d safe words", risk.SafeWords)
	}
}

func TestClassifyForgettingRisk_OldestFirst(t *testing.T) {
	records := []models.ReviewRecord{
		record(1, "newer", models.MasteryKnown, 15, 1),
		record(2, "older", models.MasteryKnown, 30, 1),
	}

	risk := ClassifyForgettingRisk(records, testNow)

	if len(risk.HighRisk) != 2 {
		t.Fatalf("expected 2 high-risk words, got %d", len(risk.HighRisk))
	}
	if risk.HighRisk[0].Word != "older" || risk.HighRisk[1].Word != "newer" {
		t.Errorf("high-risk words not ordered oldest first: %+v", risk.HighRisk)
	}
	if risk.HighRisk[0].DaysSinceReview != 30 {
		t.Errorf("expected 30 days since review, got %d", risk.HighRisk[0].DaysSinceReview)
	}
}

func TestClassifyForgettingRisk_Empty(t *testing.T) {
	risk := ClassifyForgettingRisk(nil, testNow)
	if len(risk.HighRisk) != 0 || len(risk.MediumRisk) != 0 || risk.SafeWords != 0 {
		t.Errorf("empty ledger should yield empty risk buckets, got %+v", risk)
	}
}
