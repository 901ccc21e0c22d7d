package models

import "time"

// Derived analytics types. All of these are recomputed on demand from the
// review ledger, test attempts and profile; none are persisted.

// AtRiskWord is a learned word that has not been reviewed recently
type AtRiskWord struct {
	WordID          int64        `json:"word_id"`
	Word            string       `json:"word"`
	MasteryLevel    MasteryLevel `json:"mastery_level"`
	LastReviewed    time.Time    `json:"last_reviewed"`
	DaysSinceReview int          `json:"days_since_review"`
}

// ForgettingRisk buckets learned words by review recency
type ForgettingRisk struct {
	HighRisk   []AtRiskWord `json:"high_risk"`   // not reviewed for 14+ days, oldest first
	MediumRisk []AtRiskWord `json:"medium_risk"` // not reviewed for 7-13 days, oldest first
	SafeWords  int          `json:"safe_words"`
}

// RetentionHealth is a 0-100 score of how actively learned words are revisited
type RetentionHealth struct {
	Score                   int    `json:"score"`
	Status                  string `json:"status"` // Excellent / Good / Fair / Needs Work
	WordsReviewedLast7Days  int    `json:"words_reviewed_last_7_days"`
	WordsReviewedLast14Days int    `json:"words_reviewed_last_14_days"`
	TotalLearnedWords       int    `json:"total_learned_words"`
}

// MasteryFunnel counts words per mastery stage
type MasteryFunnel struct {
	Unknown int `json:"unknown"`
	Unsure  int `json:"unsure"`
	Known   int `json:"known"`
}

// LearningEfficiency measures how much review effort mastery costs.
// ReviewsPerLearnedWord spreads all reviews over mastered words;
// AverageReviewsToMaster averages counts of mastered words only.
type LearningEfficiency struct {
	ReviewsPerLearnedWord  float64       `json:"reviews_per_learned_word"`
	MasteryFunnel          MasteryFunnel `json:"mastery_funnel"`
	AverageReviewsToMaster float64       `json:"average_reviews_to_master"`
}

// ExamReadiness is the weighted composite exam-readiness score.
// Weights: coverage 30, retention 25, test accuracy 30, consistency 15.
type ExamReadiness struct {
	Score              int    `json:"score"`
	Status             string `json:"status"` // Exam Ready / On Track / Needs Work / Just Starting
	VocabularyCoverage int    `json:"vocabulary_coverage"`
	RetentionScore     int    `json:"retention_score"`
	TestAccuracy       int    `json:"test_accuracy"`
	ConsistencyScore   int    `json:"consistency_score"`
}

// HardWord is an unmastered word with a high review count
type HardWord struct {
	WordID       int64        `json:"word_id"`
	Word         string       `json:"word"`
	MasteryLevel MasteryLevel `json:"mastery_level"`
	ReviewCount  int          `json:"review_count"`
}

// NeglectedWord is a mastered word that has gone unreviewed too long
type NeglectedWord struct {
	WordID          int64     `json:"word_id"`
	Word            string    `json:"word"`
	LastReviewed    time.Time `json:"last_reviewed"`
	DaysSinceReview int       `json:"days_since_review"`
}

// WeaknessAnalysis collects the three weak-spot projections
type WeaknessAnalysis struct {
	HardestWords   []HardWord         `json:"hardest_words"`
	WeakestLists   []WordListProgress `json:"weakest_lists"`
	NeglectedWords []NeglectedWord    `json:"neglected_words"`
}

// DayActivity is one weekday's share of review activity
type DayActivity struct {
	Day        string `json:"day"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

// ConsistencyMetrics scores how regularly the user studies
type ConsistencyMetrics struct {
	Score            int           `json:"score"`
	ActiveDaysLast30 int           `json:"active_days_last_30"`
	StreakStability  int           `json:"streak_stability"`
	BestLearningDays []DayActivity `json:"best_learning_days"` // top 3 by count
}

// SpeedStability places the learner on the speed/stability quadrant
type SpeedStability struct {
	Category      string  `json:"category"` // Fast & Stable / Fast & Fragile / Slow & Stable / Slow & Fragile
	WordsPerDay   float64 `json:"words_per_day"`
	RetentionRate int     `json:"retention_rate"`
}

// ProgressQuality characterizes how the user learns, not just how much
type ProgressQuality struct {
	LearningDepth    float64        `json:"learning_depth"`
	SpeedVsStability SpeedStability `json:"speed_vs_stability"`
}

// InsightType is the qualitative flavor of a micro insight
type InsightType string

const (
	InsightPositive   InsightType = "positive"
	InsightNeutral    InsightType = "neutral"
	InsightSuggestion InsightType = "suggestion"
)

// MicroInsight is one short natural-language observation about the learner
type MicroInsight struct {
	Title   string      `json:"title"`
	Message string      `json:"message"`
	Type    InsightType `json:"type"`
	Icon    string      `json:"icon"`
}

// Trend directions for test performance
const (
	TrendImproving = "improving"
	TrendStable    = "stable"
	TrendDeclining = "declining"
)

// TestPoint is one test attempt projected onto the accuracy/time plane
type TestPoint struct {
	Accuracy  float64   `json:"accuracy"`
	TimeTaken int       `json:"time_taken"` // seconds
	Date      time.Time `json:"date"`
}

// AccuracyTrend classifies the direction of recent test performance
type AccuracyTrend struct {
	RecentTests []TestPoint `json:"recent_tests"` // chronological order
	Trend       string      `json:"trend"`
	Insight     string      `json:"insight"`
}

// BookmarkEffectiveness summarizes whether bookmarking leads to mastery
type BookmarkEffectiveness struct {
	TotalBookmarked         int    `json:"total_bookmarked"`
	BookmarkedMastered      int    `json:"bookmarked_mastered"`
	EffectivenessPercentage int    `json:"effectiveness_percentage"`
	Insight                 string `json:"insight"`
}

// AdvancedStats is the aggregate returned by the statistics engine
type AdvancedStats struct {
	ForgettingRisk        ForgettingRisk        `json:"forgetting_risk"`
	RetentionHealth       RetentionHealth       `json:"retention_health"`
	LearningEfficiency    LearningEfficiency    `json:"learning_efficiency"`
	Readiness             ExamReadiness         `json:"readiness"`
	WeaknessAnalysis      WeaknessAnalysis      `json:"weakness_analysis"`
	ConsistencyMetrics    ConsistencyMetrics    `json:"consistency_metrics"`
	BookmarkEffectiveness BookmarkEffectiveness `json:"bookmark_effectiveness"`
	ProgressQuality       ProgressQuality       `json:"progress_quality"`
	MicroInsights         []MicroInsight        `json:"micro_insights"` // at most 5, fixed rule order
	AccuracyTrend         AccuracyTrend         `json:"accuracy_trend"`
}
