package bot

import (
	"fmt"
	"strings"

	"github.com/example/grevocab/pkg/models"
)

// escapeHTML escapes the characters Telegram's HTML parse mode cares about
func escapeHTML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

func statusEmoji(status string) string {
	switch status {
	case "Excellent", "Exam Ready":
		return "🟢"
	case "Good", "On Track":
		return "🟡"
	case "Fair", "Needs Work":
		return "🟠"
	default:
		return "🔴"
	}
}

// renderStats formats the full statistics dashboard
func renderStats(stats *models.AdvancedStats) string {
	var sb strings.Builder

	sb.WriteString("📊 <b>Your Statistics</b>\n\n")

	r := stats.Readiness
	sb.WriteString(fmt.Sprintf("%s <b>Exam Readiness:</b> %d/100 (%s)\n", statusEmoji(r.Status), r.Score, r.Status))

	h := stats.RetentionHealth
	sb.WriteString(fmt.Sprintf("%s <b>Retention:</b> %d/100 (%s)\n", statusEmoji(h.Status), h.Score, h.Status))
	sb.WriteString(fmt.Sprintf("   Reviewed %d words in the last 7 days, %d in 14\n\n",
		h.WordsReviewedLast7Days, h.WordsReviewedLast14Days))

	funnel := stats.LearningEfficiency.MasteryFunnel
	sb.WriteString("📚 <b>Mastery funnel</b>\n")
	sb.WriteString(fmt.Sprintf("   ❌ Unknown: %d  🤔 Unsure: %d  ✅ Known: %d\n", funnel.Unknown, funnel.Unsure, funnel.Known))
	if stats.LearningEfficiency.AverageReviewsToMaster > 0 {
		sb.WriteString(fmt.Sprintf("   Average reviews to master a word: %.1f\n", stats.LearningEfficiency.AverageReviewsToMaster))
	}
	sb.WriteString("\n")

	c := stats.ConsistencyMetrics
	sb.WriteString(fmt.Sprintf("📅 <b>Consistency:</b> %d/100 (%d active days of the last 30)\n", c.Score, c.ActiveDaysLast30))
	if len(c.BestLearningDays) > 0 {
		days := make([]string, 0, len(c.BestLearningDays))
		for _, d := range c.BestLearningDays {
			days = append(days, fmt.Sprintf("%s (%d%%)", d.Day, d.Percentage))
		}
		sb.WriteString("   Best days: " + strings.Join(days, ", ") + "\n")
	}
	sb.WriteString("\n")

	q := stats.ProgressQuality.SpeedVsStability
	sb.WriteString(fmt.Sprintf("⚖️ <b>Learning style:</b> %s (%.1f words/day)\n\n", q.Category, q.WordsPerDay))

	risk := stats.ForgettingRisk
	sb.WriteString(fmt.Sprintf("🧠 <b>Forgetting risk:</b> 🔴 %d high, 🟡 %d medium, 🟢 %d safe\n",
		len(risk.HighRisk), len(risk.MediumRisk), risk.SafeWords))

	if len(stats.WeaknessAnalysis.HardestWords) > 0 {
		hardest := stats.WeaknessAnalysis.HardestWords
		if len(hardest) > 3 {
			hardest = hardest[:3]
		}
		names := make([]string, 0, len(hardest))
		for _, w := range hardest {
			names = append(names, escapeHTML(w.Word))
		}
		sb.WriteString("   Hardest words: " + strings.Join(names, ", ") + "\n")
	}

	sb.WriteString("\nUse /readiness, /risk and /insights for the details.")
	return sb.String()
}

// renderReadiness formats the readiness breakdown
func renderReadiness(r models.ExamReadiness) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s <b>Exam Readiness: %d/100</b>\n<i>%s</i>\n\n", statusEmoji(r.Status), r.Score, r.Status))
	sb.WriteString("Component scores:\n")
	sb.WriteString(fmt.Sprintf("   📖 Vocabulary coverage: %d/100\n", r.VocabularyCoverage))
	sb.WriteString(fmt.Sprintf("   🧠 Retention: %d/100\n", r.RetentionScore))
	sb.WriteString(fmt.Sprintf("   ✅ Test accuracy: %d/100\n", r.TestAccuracy))
	sb.WriteString(fmt.Sprintf("   📅 Consistency: %d/100\n", r.ConsistencyScore))
	return sb.String()
}

// renderRisk formats the forgetting-risk report, worst words first
func renderRisk(risk models.ForgettingRisk) string {
	var sb strings.Builder
	sb.WriteString("🧠 <b>Forgetting Risk</b>\n\n")

	if len(risk.HighRisk) == 0 && len(risk.MediumRisk) == 0 {
		sb.WriteString(fmt.Sprintf("🎉 Nothing is slipping. %d learned words are safely fresh.", risk.SafeWords))
		return sb.String()
	}

	if len(risk.HighRisk) > 0 {
		sb.WriteString(fmt.Sprintf("🔴 <b>High risk</b> (%d):\n", len(risk.HighRisk)))
		for _, w := range topRisk(risk.HighRisk, 5) {
			sb.WriteString(fmt.Sprintf("   %s — %d days since review\n", escapeHTML(w.Word), w.DaysSinceReview))
		}
		sb.WriteString("\n")
	}
	if len(risk.MediumRisk) > 0 {
		sb.WriteString(fmt.Sprintf("🟡 <b>Medium risk</b> (%d):\n", len(risk.MediumRisk)))
		for _, w := range topRisk(risk.MediumRisk, 5) {
			sb.WriteString(fmt.Sprintf("   %s — %d days since review\n", escapeHTML(w.Word), w.DaysSinceReview))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(fmt.Sprintf("🟢 %d words are safe.\n\nStart a /review to refresh the slipping ones.", risk.SafeWords))
	return sb.String()
}

func topRisk(words []models.AtRiskWord, limit int) []models.AtRiskWord {
	if len(words) > limit {
		return words[:limit]
	}
	return words
}

// renderInsights formats micro insights plus the trend and bookmark read-outs
func renderInsights(insights []models.MicroInsight, trend models.AccuracyTrend, bookmarks models.BookmarkEffectiveness) string {
	var sb strings.Builder
	sb.WriteString("💡 <b>Insights</b>\n\n")

	if len(insights) == 0 {
		sb.WriteString("Not enough history for insights yet. Keep reviewing!\n\n")
	}
	for _, insight := range insights {
		sb.WriteString(fmt.Sprintf("%s <b>%s</b>\n   %s\n\n", insight.Icon, escapeHTML(insight.Title), escapeHTML(insight.Message)))
	}

	sb.WriteString(fmt.Sprintf("📈 <b>Test trend:</b> %s\n   %s\n", trend.Trend, escapeHTML(trend.Insight)))

	if bookmarks.TotalBookmarked > 0 {
		sb.WriteString(fmt.Sprintf("\n🔖 <b>Bookmarks:</b> %d of %d mastered (%d%%)\n   %s\n",
			bookmarks.BookmarkedMastered, bookmarks.TotalBookmarked,
			bookmarks.EffectivenessPercentage, escapeHTML(bookmarks.Insight)))
	}
	return sb.String()
}
