package analytics

import (
	"math"
	"time"

	"github.com/example/grevocab/pkg/models"
)

// round1 rounds to one decimal place
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// roundInt rounds to the nearest integer
func roundInt(v float64) int {
	return int(math.Round(v))
}

// daysSince returns the number of whole days between t and now
func daysSince(t, now time.Time) int {
	d := now.Sub(t)
	if d < 0 {
		return 0
	}
	return int(d.Hours() / 24)
}

// countKnown returns how many records are at known mastery
func countKnown(records []models.ReviewRecord) int {
	n := 0
	for _, rec := range records {
		if rec.MasteryLevel == models.MasteryKnown {
			n++
		}
	}
	return n
}

// reviewedWithin counts distinct words reviewed inside the trailing window
func reviewedWithin(records []models.ReviewRecord, now time.Time, days int) int {
	cutoff := now.AddDate(0, 0, -days)
	n := 0
	for _, rec := range records {
		if rec.LastReviewed.After(cutoff) {
			n++
		}
	}
	return n
}
