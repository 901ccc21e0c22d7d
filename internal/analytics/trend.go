package analytics

import "github.com/example/grevocab/pkg/models"

// Trend detection parameters. The 5-point margin is a deliberate noise
// floor: smaller accuracy swings between halves stay "stable".
const (
	trendWindow         = 10
	trendMinAttempts    = 3
	trendAccuracyMargin = 5.0
)

// Trend insight strings keyed by direction
const (
	insightNoTests   = "Take some tests to track your accuracy over time."
	insightImproving = "Excellent! Your accuracy is improving while maintaining or reducing time. Exam-ready behavior!"
	insightDeclining = "Your accuracy is declining. Consider reviewing more before taking tests."
	insightStable    = "Your performance is stable. Keep practicing to improve further!"
)

// DetectAccuracyTrend classifies the direction of recent test performance.
// Attempts arrive most recent first; the latest trendWindow of them are
// re-reversed to chronological order, split into halves (the first half
// takes the floor on odd counts), and compared on mean accuracy and mean
// time taken. Improving requires both better accuracy and no slowdown.
// Fewer than trendMinAttempts attempts always classify as stable.
func DetectAccuracyTrend(attempts []models.TestAttempt) models.AccuracyTrend {
	if len(attempts) == 0 {
		return models.AccuracyTrend{
			RecentTests: []models.TestPoint{},
			Trend:       models.TrendStable,
			Insight:     insightNoTests,
		}
	}

	recent := attempts
	if len(recent) > trendWindow {
		recent = recent[:trendWindow]
	}

	// Reverse to chronological order for the trend math
	points := make([]models.TestPoint, len(recent))
	for i, a := range recent {
		points[len(recent)-1-i] = models.TestPoint{
			Accuracy:  a.Accuracy(),
			TimeTaken: a.Duration,
			Date:      a.TestDate,
		}
	}

	trend := models.TrendStable
	if len(points) >= trendMinAttempts {
		mid := len(points) / 2
		firstAcc, firstTime := halfMeans(points[:mid])
		secondAcc, secondTime := halfMeans(points[mid:])

		switch {
		case secondAcc > firstAcc+trendAccuracyMargin && secondTime <= firstTime:
			trend = models.TrendImproving
		case secondAcc < firstAcc-trendAccuracyMargin:
			trend = models.TrendDeclining
		}
	}

	insight := insightStable
	switch trend {
	case models.TrendImproving:
		insight = insightImproving
	case models.TrendDeclining:
		insight = insightDeclining
	}

	return models.AccuracyTrend{
		RecentTests: points,
		Trend:       trend,
		Insight:     insight,
	}
}

func halfMeans(points []models.TestPoint) (accuracy, timeTaken float64) {
	if len(points) == 0 {
		return 0, 0
	}
	for _, p := range points {
		accuracy += p.Accuracy
		timeTaken += float64(p.TimeTaken)
	}
	n := float64(len(points))
	return accuracy / n, timeTaken / n
}
