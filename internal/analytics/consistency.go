package analytics

import (
	"sort"
	"time"

	"github.com/example/grevocab/pkg/models"
)

const consistencyWindowDays = 30

// AnalyzeConsistency scores how regularly the user studies: the share of
// active days in the trailing 30-day window, the current streak relative to
// the best one, and the top weekdays by review activity.
//
// The weekday histogram is built from each record's last_reviewed snapshot,
// one entry per word, since no per-event log exists. It approximates
// review-day activity rather than counting every historical event.
func AnalyzeConsistency(records []models.ReviewRecord, profile models.UserProfile, now time.Time) models.ConsistencyMetrics {
	activeDays := activeDaysWithin(records, now, consistencyWindowDays)

	score := roundInt(float64(activeDays) / consistencyWindowDays * 100)
	if score > 100 {
		score = 100
	}

	streakStability := 0
	if profile.MaxStreak > 0 {
		streakStability = roundInt(float64(profile.Streak) / float64(profile.MaxStreak) * 100)
	}

	return models.ConsistencyMetrics{
		Score:            score,
		ActiveDaysLast30: activeDays,
		StreakStability:  streakStability,
		BestLearningDays: bestLearningDays(records, 3),
	}
}

// activeDaysWithin counts distinct calendar days with at least one review
// inside the trailing window
func activeDaysWithin(records []models.ReviewRecord, now time.Time, days int) int {
	cutoff := now.AddDate(0, 0, -days)
	seen := make(map[string]struct{})
	for _, rec := range records {
		if rec.LastReviewed.After(cutoff) {
			seen[rec.LastReviewed.Format("2006-01-02")] = struct{}{}
		}
	}
	return len(seen)
}

// bestLearningDays returns the top weekdays by review count, each annotated
// with its share of all histogram entries. Ties break on weekday order so
// output is deterministic.
func bestLearningDays(records []models.ReviewRecord, top int) []models.DayActivity {
	counts := make(map[time.Weekday]int)
	for _, rec := range records {
		counts[rec.LastReviewed.Weekday()]++
	}
	if len(counts) == 0 {
		return []models.DayActivity{}
	}

	total := len(records)
	days := make([]models.DayActivity, 0, len(counts))
	order := make(map[string]int, len(counts))
	for wd, count := range counts {
		days = append(days, models.DayActivity{
			Day:        wd.String(),
			Count:      count,
			Percentage: roundInt(float64(count) / float64(total) * 100),
		})
		order[wd.String()] = int(wd)
	}

	sort.Slice(days, func(i, j int) bool {
		if days[i].Count != days[j].Count {
			return days[i].Count > days[j].Count
		}
		return order[days[i].Day] < order[days[j].Day]
	})

	if len(days) > top {
		days = days[:top]
	}
	return days
}
