package analytics

import (
	"time"

	"github.com/example/grevocab/pkg/models"
)

// Retention status labels
const (
	StatusExcellent = "Excellent"
	StatusGood      = "Good"
	StatusFair      = "Fair"
	StatusNeedsWork = "Needs Work"
)

// ScoreRetention computes a 0-100 health score from how much of the learned
// vocabulary was revisited in the last 7 and 14 days, weighting the recent
// window 0.6 to 0.4. With no learned words the score floors at 0; this is a
// defined empty-dataset value, not an error.
func ScoreRetention(records []models.ReviewRecord, now time.Time) models.RetentionHealth {
	reviewed7 := reviewedWithin(records, now, 7)
	reviewed14 := reviewedWithin(records, now, 14)
	totalKnown := countKnown(records)

	score := 0
	if totalKnown > 0 {
		rate7 := float64(reviewed7) / float64(totalKnown) * 100
		rate14 := float64(reviewed14) / float64(totalKnown) * 100
		score = roundInt(rate7*0.6 + rate14*0.4)
		if score > 100 {
			score = 100
		}
	}

	return models.RetentionHealth{
		Score:                   score,
		Status:                  retentionStatus(score),
		WordsReviewedLast7Days:  reviewed7,
		WordsReviewedLast14Days: reviewed14,
		TotalLearnedWords:       totalKnown,
	}
}

func retentionStatus(score int) string {
	switch {
	case score >= 80:
		return StatusExcellent
	case score >= 60:
		return StatusGood
	case score >= 40:
		return StatusFair
	default:
		return StatusNeedsWork
	}
}
