package analytics

import "github.com/example/grevocab/pkg/models"

// Bookmark effectiveness message thresholds
const (
	bookmarkStrongMin = 60
	bookmarkMixedMin  = 30
)

// BookmarkEffectiveness measures how often bookmarked words end up mastered
func BookmarkEffectiveness(records []models.ReviewRecord) models.BookmarkEffectiveness {
	bookmarked := 0
	mastered := 0
	for _, rec := range records {
		if !rec.IsBookmarked {
			continue
		}
		bookmarked++
		if rec.MasteryLevel == models.MasteryKnown {
			mastered++
		}
	}

	pct := 0
	if bookmarked > 0 {
		pct = roundInt(float64(mastered) / float64(bookmarked) * 100)
	}

	var insight string
	switch {
	case pct >= bookmarkStrongMin:
		insight = "Bookmarking works well for you. Most words you flag end up mastered."
	case pct >= bookmarkMixedMin:
		insight = "Some bookmarked words are sticking. Review your bookmarks more often to master the rest."
	default:
		insight = "Your bookmarked words need attention. Try a dedicated bookmark review session."
	}

	return models.BookmarkEffectiveness{
		TotalBookmarked:         bookmarked,
		BookmarkedMastered:      mastered,
		EffectivenessPercentage: pct,
		Insight:                 insight,
	}
}
