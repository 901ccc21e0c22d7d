package analytics

import (
	"testing"

	"github.com/example/grevocab/pkg/models"
)

func bookmarked(rec models.ReviewRecord) models.ReviewRecord {
	rec.IsBookmarked = true
	return rec
}

func TestBookmarkEffectiveness(t *testing.T) {
	records := []models.ReviewRecord{
		bookmarked(record(1, "a", models.MasteryKnown, 1, 3)),
		bookmarked(record(2, "b", models.MasteryKnown, 1, 3)),
		bookmarked(record(3, "c", models.MasteryUnsure, 1, 3)),
		record(4, "d", models.MasteryKnown, 1, 3), // not bookmarked
	}

	eff := BookmarkEffectiveness(records)

	if eff.TotalBookmarked != 3 || eff.BookmarkedMastered != 2 {
		t.Errorf("unexpected counts: %+v", eff)
	}
	if eff.EffectivenessPercentage != 67 {
		t.Errorf("expected 67%%, got %d", eff.EffectivenessPercentage)
	}
}

func TestBookmarkEffectiveness_InsightThresholds(t *testing.T) {
	strong := BookmarkEffectiveness([]models.ReviewRecord{
		bookmarked(record(1, "a", models.MasteryKnown, 1, 1)),
		bookmarked(record(2, "b", models.MasteryKnown, 1, 1)),
		bookmarked(record(3, "c", models.MasteryUnsure, 1, 1)),
	}) // 67%
	mixed := BookmarkEffectiveness([]models.ReviewRecord{
		bookmarked(record(1, "a", models.MasteryKnown, 1, 1)),
		bookmarked(record(2, "b", models.MasteryUnsure, 1, 1)),
		bookmarked(record(3, "c", models.MasteryUnsure, 1, 1)),
	}) // 33%
	weak := BookmarkEffectiveness([]models.ReviewRecord{
		bookmarked(record(1, "a", models.MasteryUnsure, 1, 1)),
	}) // 0%

	if strong.Insight == mixed.Insight || mixed.Insight == weak.Insight || strong.Insight == weak.Insight {
		t.Errorf("threshold bands should produce distinct insights: %q / %q / %q",
			strong.Insight, mixed.Insight, weak.Insight)
	}
}

func TestBookmarkEffectiveness_NoBookmarks(t *testing.T) {
	eff := BookmarkEffectiveness([]models.ReviewRecord{
		record(1, "a", models.MasteryKnown, 1, 1),
	})

	if eff.TotalBookmarked != 0 || eff.EffectivenessPercentage != 0 {
		t.Errorf("expected zeroes with no bookmarks, got %+v", eff)
	}
}
