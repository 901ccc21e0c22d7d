package analytics

import "github.com/example/grevocab/pkg/models"

// AnalyzeEfficiency walks the ledger once, tallying the mastery funnel and
// the two review-cost metrics. ReviewsPerLearnedWord spreads every review,
// including those spent on never-mastered words, over the mastered count;
// AverageReviewsToMaster looks at mastered words only. The two are distinct
// on purpose.
func AnalyzeEfficiency(records []models.ReviewRecord) models.LearningEfficiency {
	var funnel models.MasteryFunnel
	totalReviews := 0
	knownReviews := 0

	for _, rec := range records {
		totalReviews += rec.ReviewCount
		switch rec.MasteryLevel {
		case models.MasteryUnknown:
			funnel.Unknown++
		case models.MasteryUnsure:
			funnel.Unsure++
		case models.MasteryKnown:
			funnel.Known++
			knownReviews += rec.ReviewCount
		}
	}

	eff := models.LearningEfficiency{MasteryFunnel: funnel}
	if funnel.Known > 0 {
		eff.ReviewsPerLearnedWord = round1(float64(totalReviews) / float64(funnel.Known))
		eff.AverageReviewsToMaster = round1(float64(knownReviews) / float64(funnel.Known))
	}
	return eff
}
