package models

import "time"

// UserProfile represents a Telegram user of the trainer together with the
// streak counters maintained by the activity tracker
type UserProfile struct {
	ID                  int64     `json:"id" db:"id"` // Telegram user ID
	Username            string    `json:"username" db:"username"`
	FirstName           string    `json:"first_name" db:"first_name"`
	Streak              int       `json:"streak" db:"streak"`
	MaxStreak           int       `json:"max_streak" db:"max_streak"`
	DailyGoal           int       `json:"daily_goal" db:"daily_goal"`
	StartDate           time.Time `json:"start_date" db:"start_date"`
	LastActiveDate      time.Time `json:"last_active_date" db:"last_active_date"`
	NotificationEnabled bool      `json:"notification_enabled" db:"notification_enabled"`
	NotificationHour    int       `json:"notification_hour" db:"notification_hour"` // Hour of day (0-23)
	IsAdmin             bool      `json:"is_admin" db:"is_admin"`
	CreatedAt           time.Time `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time `json:"updated_at" db:"updated_at"`
}
