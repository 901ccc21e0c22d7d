package analytics

import (
	"fmt"

	"github.com/example/grevocab/pkg/models"
)

// maxInsights caps the generated list. Rules run in a fixed order and the
// first five emitted insights win; they are never re-ranked, since the
// order itself carries the severity-then-positivity narrative.
const maxInsights = 5

// Insight rule thresholds
const (
	quickLearnerMaxReviews  = 3.0
	deepLearningMinReviews  = 7.0
	retentionAlertBelow     = 50
	consistencyChampionDays = 20
	testMasterMinAttempts   = 5
	testMasterMinAccuracy   = 80.0
)

// GenerateInsights evaluates each rule independently against the already
// computed metrics and emits at most maxInsights observations.
func GenerateInsights(efficiency models.LearningEfficiency, retention models.RetentionHealth, consistency models.ConsistencyMetrics, quality models.ProgressQuality, attempts []models.TestAttempt) []models.MicroInsight {
	insights := []models.MicroInsight{}

	// Review efficiency. The zero guard keeps an empty ledger from
	// claiming words are mastered in zero reviews.
	if efficiency.AverageReviewsToMaster > 0 && efficiency.AverageReviewsToMaster <= quickLearnerMaxReviews {
		insights = append(insights, models.MicroInsight{
			Title:   "Quick Learner",
			Message: fmt.Sprintf("You master words in just %.1f reviews on average!", efficiency.AverageReviewsToMaster),
			Type:    models.InsightPositive,
			Icon:    "⚡",
		})
	} else if efficiency.AverageReviewsToMaster >= deepLearningMinReviews {
		insights = append(insights, models.MicroInsight{
			Title:   "Deep Learning",
			Message: "You prefer thorough understanding over speed. Great for long-term retention!",
			Type:    models.InsightNeutral,
			Icon:    "🧠",
		})
	}

	// Retention drop-off
	if retention.Score < retentionAlertBelow {
		insights = append(insights, models.MicroInsight{
			Title:   "Review Alert",
			Message: "Your retention could improve. Try reviewing words more frequently.",
			Type:    models.InsightSuggestion,
			Icon:    "⚠️",
		})
	}

	// Consistency
	if consistency.ActiveDaysLast30 >= consistencyChampionDays {
		insights = append(insights, models.MicroInsight{
			Title:   "Consistency Champion",
			Message: fmt.Sprintf("You've been active %d out of 30 days!", consistency.ActiveDaysLast30),
			Type:    models.InsightPositive,
			Icon:    "🎯",
		})
	}

	// Learning style
	if quality.SpeedVsStability.Category == CategoryFastStable {
		insights = append(insights, models.MicroInsight{
			Title:   "Optimal Learning",
			Message: "You learn quickly AND retain well. Keep it up!",
			Type:    models.InsightPositive,
			Icon:    "🚀",
		})
	}

	// Test performance over the recent attempts
	if len(attempts) >= testMasterMinAttempts {
		recent := attempts[:testMasterMinAttempts]
		sum := 0.0
		for _, a := range recent {
			sum += a.Accuracy()
		}
		avg := sum / float64(len(recent))
		if avg >= testMasterMinAccuracy {
			insights = append(insights, models.MicroInsight{
				Title:   "Test Master",
				Message: fmt.Sprintf("Your average test accuracy is %d%%!", roundInt(avg)),
				Type:    models.InsightPositive,
				Icon:    "🏆",
			})
		}
	}

	// Best learning day
	if len(consistency.BestLearningDays) > 0 {
		best := consistency.BestLearningDays[0]
		insights = append(insights, models.MicroInsight{
			Title:   "Peak Performance",
			Message: fmt.Sprintf("You learn best on %ss with %d words reviewed!", best.Day, best.Count),
			Type:    models.InsightNeutral,
			Icon:    "📊",
		})
	}

	if len(insights) > maxInsights {
		insights = insights[:maxInsights]
	}
	return insights
}
