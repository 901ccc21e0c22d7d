package analytics

import (
	"sort"
	"time"

	"github.com/example/grevocab/pkg/models"
)

const (
	hardestWordsLimit   = 10
	weakestListsLimit   = 5
	neglectedWordsLimit = 20
	neglectedAfterDays  = 21
)

// AnalyzeWeakness computes the three independent weak-spot projections:
// unmastered words with the most reviews, word lists with the lowest
// mastery percentage, and mastered words left unreviewed for over three
// weeks.
func AnalyzeWeakness(records []models.ReviewRecord, lists []models.WordListProgress, now time.Time) models.WeaknessAnalysis {
	return models.WeaknessAnalysis{
		HardestWords:   hardestWords(records, hardestWordsLimit),
		WeakestLists:   weakestLists(lists, weakestListsLimit),
		NeglectedWords: neglectedWords(records, now, neglectedWordsLimit),
	}
}

// hardestWords ranks unmastered words by how many reviews they have eaten
func hardestWords(records []models.ReviewRecord, limit int) []models.HardWord {
	words := []models.HardWord{}
	for _, rec := range records {
		if rec.MasteryLevel == models.MasteryKnown {
			continue
		}
		words = append(words, models.HardWord{
			WordID:       rec.WordID,
			Word:         rec.Word,
			MasteryLevel: rec.MasteryLevel,
			ReviewCount:  rec.ReviewCount,
		})
	}

	sort.Slice(words, func(i, j int) bool {
		if words[i].ReviewCount != words[j].ReviewCount {
			return words[i].ReviewCount > words[j].ReviewCount
		}
		return words[i].Word < words[j].Word
	})

	if len(words) > limit {
		words = words[:limit]
	}
	return words
}

// weakestLists ranks non-empty lists by mastery percentage, lowest first
func weakestLists(lists []models.WordListProgress, limit int) []models.WordListProgress {
	weak := []models.WordListProgress{}
	for _, list := range lists {
		if list.TotalWords == 0 {
			continue
		}
		list.MasteryPercentage = roundInt(float64(list.LearnedWords) / float64(list.TotalWords) * 100)
		weak = append(weak, list)
	}

	sort.Slice(weak, func(i, j int) bool {
		if weak[i].MasteryPercentage != weak[j].MasteryPercentage {
			return weak[i].MasteryPercentage < weak[j].MasteryPercentage
		}
		return weak[i].Name < weak[j].Name
	})

	if len(weak) > limit {
		weak = weak[:limit]
	}
	return weak
}

// neglectedWords finds mastered words not reviewed for over neglectedAfterDays,
// most neglected first
func neglectedWords(records []models.ReviewRecord, now time.Time, limit int) []models.NeglectedWord {
	cutoff := now.AddDate(0, 0, -neglectedAfterDays)
	neglected := []models.NeglectedWord{}
	for _, rec := range records {
		if rec.MasteryLevel != models.MasteryKnown || !rec.LastReviewed.Before(cutoff) {
			continue
		}
		neglected = append(neglected, models.NeglectedWord{
			WordID:          rec.WordID,
			Word:            rec.Word,
			LastReviewed:    rec.LastReviewed,
			DaysSinceReview: daysSince(rec.LastReviewed, now),
		})
	}

	sort.Slice(neglected, func(i, j int) bool {
		return neglected[i].LastReviewed.Before(neglected[j].LastReviewed)
	})

	if len(neglected) > limit {
		neglected = neglected[:limit]
	}
	return neglected
}
