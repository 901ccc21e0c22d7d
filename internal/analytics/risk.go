package analytics

import (
	"sort"
	"time"

	"github.com/example/grevocab/pkg/models"
)

// Forgetting-risk boundaries in days since last review
const (
	highRiskDays   = 14
	mediumRiskDays = 7
)

// ClassifyForgettingRisk partitions every learned word (unsure or known)
// into exactly one risk tier by review recency. Words still at unknown
// mastery were never learned and carry no forgetting risk. High- and
// medium-risk words are listed oldest review first; low-risk words are
// only counted.
func ClassifyForgettingRisk(records []models.ReviewRecord, now time.Time) models.ForgettingRisk {
	risk := models.ForgettingRisk{
		HighRisk:   []models.AtRiskWord{},
		MediumRisk: []models.AtRiskWord{},
	}

	for _, rec := range records {
		if rec.MasteryLevel == models.MasteryUnknown {
			continue
		}

		days := daysSince(rec.LastReviewed, now)
		switch {
		case days >= highRiskDays:
			risk.HighRisk = append(risk.HighRisk, atRiskWord(rec, days))
		case days >= mediumRiskDays:
			risk.MediumRisk = append(risk.MediumRisk, atRiskWord(rec, days))
		default:
			risk.SafeWords++
		}
	}

	sortOldestFirst(risk.HighRisk)
	sortOldestFirst(risk.MediumRisk)
	return risk
}

func atRiskWord(rec models.ReviewRecord, days int) models.AtRiskWord {
	return models.AtRiskWord{
		WordID:          rec.WordID,
		Word:            rec.Word,
		MasteryLevel:    rec.MasteryLevel,
		LastReviewed:    rec.LastReviewed,
		DaysSinceReview: days,
	}
}

func sortOldestFirst(words []models.AtRiskWord) {
	sort.Slice(words, func(i, j int) bool {
		return words[i].LastReviewed.Before(words[j].LastReviewed)
	})
}
