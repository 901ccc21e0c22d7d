package models

import "time"

// WordList represents a named collection of words
type WordList struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// WordListProgress is a word list annotated with a user's mastery counts
type WordListProgress struct {
	ID                int64  `json:"id" db:"id"`
	Name              string `json:"name" db:"name"`
	TotalWords        int    `json:"total_words" db:"total_words"`
	LearnedWords      int    `json:"learned_words" db:"learned_words"`
	MasteryPercentage int    `json:"mastery_percentage" db:"mastery_percentage"`
}
