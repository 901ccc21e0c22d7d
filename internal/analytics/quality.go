package analytics

import (
	"math"
	"time"

	"github.com/example/grevocab/pkg/models"
)

// Speed/stability quadrant labels
const (
	CategoryFastStable  = "Fast & Stable"
	CategoryFastFragile = "Fast & Fragile"
	CategorySlowStable  = "Slow & Stable"
	CategorySlowFragile = "Slow & Fragile"
)

// Classification thresholds: learning speed in mastered words per day and
// retention score
const (
	fastWordsPerDay    = 5.0
	stableRetentionMin = 60
)

// ClassifyProgressQuality places the learner on the 2x2 speed/stability
// quadrant. Both axes are judged independently and every combination maps
// to exactly one label.
func ClassifyProgressQuality(records []models.ReviewRecord, retention models.RetentionHealth, profile models.UserProfile, now time.Time) models.ProgressQuality {
	mastered := 0
	totalReviews := 0
	for _, rec := range records {
		totalReviews += rec.ReviewCount
		if rec.MasteryLevel == models.MasteryKnown {
			mastered++
		}
	}

	learningDepth := 0.0
	if mastered > 0 {
		learningDepth = round1(float64(totalReviews) / float64(mastered))
	}

	wordsPerDay := 0.0
	daysActive := int(math.Ceil(now.Sub(profile.StartDate).Hours() / 24))
	if daysActive > 0 {
		wordsPerDay = round1(float64(mastered) / float64(daysActive))
	}

	isFast := wordsPerDay >= fastWordsPerDay
	isStable := retention.Score >= stableRetentionMin

	var category string
	switch {
	case isFast && isStable:
		category = CategoryFastStable
	case isFast && !isStable:
		category = CategoryFastFragile
	case !isFast && isStable:
		category = CategorySlowStable
	default:
		category = CategorySlowFragile
	}

	return models.ProgressQuality{
		LearningDepth: learningDepth,
		SpeedVsStability: models.SpeedStability{
			Category:      category,
			WordsPerDay:   wordsPerDay,
			RetentionRate: retention.Score,
		},
	}
}
