package models

import "time"

// TestAttempt records one completed test session. The score is kept as a
// structured correct/total pair; attempts are append-only.
type TestAttempt struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	TestType  string    `json:"test_type" db:"test_type"`
	Correct   int       `json:"correct_answers" db:"correct_answers"`
	Total     int       `json:"total_questions" db:"total_questions"`
	Duration  int       `json:"duration" db:"duration"` // seconds
	TestDate  time.Time `json:"test_date" db:"test_date"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Accuracy returns the attempt's score as a percentage in [0, 100].
func (a TestAttempt) Accuracy() float64 {
	if a.Total == 0 {
		return 0
	}
	return float64(a.Correct) / float64(a.Total) * 100
}
