package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/grevocab/pkg/models"
	"github.com/jmoiron/sqlx"
)

// UserRepository handles database operations for user profiles
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new repository instance
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetOrCreate returns the user's profile, registering the user on first contact
func (r *UserRepository) GetOrCreate(ctx context.Context, id int64, username, firstName string, now time.Time) (models.UserProfile, error) {
	profile, err := r.Profile(ctx, id)
	if err == nil {
		return profile, nil
	}
	if err != sql.ErrNoRows {
		return models.UserProfile{}, err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO users (id, username, first_name, start_date, last_active_date)
		VALUES ($1, $2, $3, $4, $5)`,
		id, username, firstName, now, now)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("failed to create user: %v", err)
	}
	return r.Profile(ctx, id)
}

// Profile returns a read-only snapshot of the user's profile
func (r *UserRepository) Profile(ctx context.Context, id int64) (models.UserProfile, error) {
	var profile models.UserProfile
	err := r.db.GetContext(ctx, &profile, `
		SELECT id, username, first_name, streak, max_streak, daily_goal,
		       start_date, last_active_date, notification_enabled,
		       notification_hour, is_admin, created_at, updated_at
		FROM users WHERE id = $1`,
		id)
	if err == sql.ErrNoRows {
		return models.UserProfile{}, err
	}
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("failed to get user profile: %v", err)
	}
	return profile, nil
}

// TouchActivity maintains the streak counters. Same-day activity is a no-op,
// next-day activity extends the streak, anything later resets it to 1.
func (r *UserRepository) TouchActivity(ctx context.Context, id int64, now time.Time) error {
	profile, err := r.Profile(ctx, id)
	if err != nil {
		return err
	}

	today := now.Truncate(24 * time.Hour)
	lastActive := profile.LastActiveDate.Truncate(24 * time.Hour)

	streak := profile.Streak
	switch {
	case lastActive.Equal(today):
		return nil
	case today.Sub(lastActive) == 24*time.Hour:
		streak++
	default:
		streak = 1
	}

	maxStreak := profile.MaxStreak
	if streak > maxStreak {
		maxStreak = streak
	}

	_, err = r.db.ExecContext(ctx, `
		UPDATE users SET
			streak = $1,
			max_streak = $2,
			last_active_date = $3,
			updated_at = $4
		WHERE id = $5`,
		streak, maxStreak, now, now, id)
	if err != nil {
		return fmt.Errorf("failed to update activity: %v", err)
	}
	return nil
}

// SetDailyGoal updates the user's target words per day
func (r *UserRepository) SetDailyGoal(ctx context.Context, id int64, goal int) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE users SET daily_goal = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2",
		goal, id)
	if err != nil {
		return fmt.Errorf("failed to set daily goal: %v", err)
	}
	return nil
}

// UsersForNotification returns users who want reminders at the given hour
func (r *UserRepository) UsersForNotification(ctx context.Context, hour int) ([]models.UserProfile, error) {
	users := []models.UserProfile{}
	err := r.db.SelectContext(ctx, &users, `
		SELECT id, username, first_name, streak, max_streak, daily_goal,
		       start_date, last_active_date, notification_enabled,
		       notification_hour, is_admin, created_at, updated_at
		FROM users
		WHERE notification_enabled = true AND notification_hour = $1`,
		hour)
	if err != nil {
		return nil, fmt.Errorf("failed to get users for notification: %v", err)
	}
	return users, nil
}
