package analytics

import "github.com/example/grevocab/pkg/models"

// Readiness status labels
const (
	StatusExamReady    = "Exam Ready"
	StatusOnTrack      = "On Track"
	StatusJustStarting = "Just Starting"
)

// Fixed point budgets of the readiness composite. The relative weights are
// a design constant; they sum to 100.
const (
	coverageMaxPoints    = 30.0
	retentionMaxPoints   = 25.0
	accuracyMaxPoints    = 30.0
	consistencyMaxPoints = 15.0
)

// Test accuracy pools the most recent attempts
const recentAttemptsWindow = 10

// ComposeReadiness combines vocabulary coverage, retention, pooled accuracy
// over the recent test attempts, and consistency into one weighted 0-100
// score. Increasing any sub-score while holding the others never decreases
// the composite. With no attempts the accuracy term contributes exactly 0.
func ComposeReadiness(records []models.ReviewRecord, attempts []models.TestAttempt, retention models.RetentionHealth, consistency models.ConsistencyMetrics, totalAvailable int) models.ExamReadiness {
	mastered := countKnown(records)

	coverage := 0
	if totalAvailable > 0 {
		coverage = roundInt(float64(mastered) / float64(totalAvailable) * 100)
	}
	coveragePoints := float64(coverage) / 100 * coverageMaxPoints
	if coveragePoints > coverageMaxPoints {
		coveragePoints = coverageMaxPoints
	}

	retentionPoints := float64(retention.Score) / 100 * retentionMaxPoints

	accuracy := recentPooledAccuracy(attempts)
	accuracyPoints := accuracy / 100 * accuracyMaxPoints

	consistencyPoints := float64(consistency.Score) / 100 * consistencyMaxPoints

	score := roundInt(coveragePoints + retentionPoints + accuracyPoints + consistencyPoints)

	testAccuracy := 0
	if len(attempts) > 0 {
		testAccuracy = roundInt(accuracy)
	}

	return models.ExamReadiness{
		Score:              score,
		Status:             readinessStatus(score),
		VocabularyCoverage: coverage,
		RetentionScore:     retention.Score,
		TestAccuracy:       testAccuracy,
		ConsistencyScore:   consistency.Score,
	}
}

// recentPooledAccuracy pools correct/total over the most recent attempts
// and returns a percentage. Empty input yields 0, never NaN.
func recentPooledAccuracy(attempts []models.TestAttempt) float64 {
	recent := attempts
	if len(recent) > recentAttemptsWindow {
		recent = recent[:recentAttemptsWindow]
	}

	totalCorrect := 0
	totalQuestions := 0
	for _, a := range recent {
		totalCorrect += a.Correct
		totalQuestions += a.Total
	}
	if totalQuestions == 0 {
		return 0
	}
	return float64(totalCorrect) / float64(totalQuestions) * 100
}

func readinessStatus(score int) string {
	switch {
	case score >= 80:
		return StatusExamReady
	case score >= 60:
		return StatusOnTrack
	case score >= 30:
		return StatusNeedsWork
	default:
		return StatusJustStarting
	}
}
