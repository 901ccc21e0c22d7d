package models

import "time"

// MasteryLevel is the tri-state classification of how well a user knows a word
type MasteryLevel string

const (
	// MasteryUnknown means the user did not know the word at the last review
	MasteryUnknown MasteryLevel = "unknown"
	// MasteryUnsure means the user was hesitant at the last review
	MasteryUnsure MasteryLevel = "unsure"
	// MasteryKnown means the user knew the word at the last review
	MasteryKnown MasteryLevel = "known"
)

// ReviewRecord tracks a user's latest mastery judgment for a single word.
// A record is created on the first review and updated on every subsequent
// one; review_count only ever grows.
type ReviewRecord struct {
	ID           int64        `json:"id" db:"id"`
	UserID       int64        `json:"user_id" db:"user_id"`
	WordID       int64        `json:"word_id" db:"word_id"`
	Word         string       `json:"word" db:"word"`
	MasteryLevel MasteryLevel `json:"mastery_level" db:"mastery_level"`
	LastReviewed time.Time    `json:"last_reviewed" db:"last_reviewed"`
	ReviewCount  int          `json:"review_count" db:"review_count"`
	IsBookmarked bool         `json:"is_bookmarked" db:"is_bookmarked"`
}
