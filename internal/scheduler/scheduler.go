// Package scheduler runs the hourly review-reminder loop.
package scheduler

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/example/grevocab/internal/analytics"
	"github.com/example/grevocab/internal/database"
	"github.com/go-co-op/gocron"
)

// Default notification window
const (
	DefaultNotificationStartHour = 8
	DefaultNotificationEndHour   = 22
)

// Notifier interface for sending notifications
type Notifier interface {
	SendRiskReminder(userID int64, highRisk, mediumRisk int) error
}

// Scheduler manages scheduled tasks for the application
type Scheduler struct {
	scheduler *gocron.Scheduler
	notifier  Notifier
	users     *database.UserRepository
	reviews   *database.ReviewRepository
}

// New creates a new scheduler instance
func New(notifier Notifier, users *database.UserRepository, reviews *database.ReviewRepository) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		notifier:  notifier,
		users:     users,
		reviews:   reviews,
	}
}

// Start begins running all scheduled tasks
func (s *Scheduler) Start() {
	// Hourly check for users whose words are slipping
	s.scheduler.Every(1).Hour().Do(s.checkAndSendReminders)
	s.scheduler.StartAsync()
}

// Stop terminates all scheduled tasks
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// checkAndSendReminders finds users scheduled for the current hour and
// reminds those with words at risk of being forgotten
func (s *Scheduler) checkAndSendReminders() {
	now := time.Now().UTC()
	currentHour := now.Hour()

	startHour := envHour("NOTIFICATION_START_HOUR", DefaultNotificationStartHour)
	endHour := envHour("NOTIFICATION_END_HOUR", DefaultNotificationEndHour)

	if currentHour < startHour || currentHour > endHour {
		log.Printf("Current hour %d is outside notification hours (%d-%d), skipping reminders",
			currentHour, startHour, endHour)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	users, err := s.users.UsersForNotification(ctx, currentHour)
	if err != nil {
		log.Printf("Error getting users for notification: %v", err)
		return
	}

	for _, user := range users {
		records, err := s.reviews.ByUser(ctx, user.ID)
		if err != nil {
			log.Printf("Error getting review records for user %d: %v", user.ID, err)
			continue
		}

		risk := analytics.ClassifyForgettingRisk(records, now)
		if len(risk.HighRisk) == 0 && len(risk.MediumRisk) == 0 {
			continue
		}

		if err := s.notifier.SendRiskReminder(user.ID, len(risk.HighRisk), len(risk.MediumRisk)); err != nil {
			log.Printf("Error sending reminder to user %d: %v", user.ID, err)
		}
	}
}

// RunManualCheck forces a reminder check for a specific user
func (s *Scheduler) RunManualCheck(ctx context.Context, userID int64) error {
	records, err := s.reviews.ByUser(ctx, userID)
	if err != nil {
		return err
	}

	risk := analytics.ClassifyForgettingRisk(records, time.Now().UTC())
	if len(risk.HighRisk) == 0 && len(risk.MediumRisk) == 0 {
		return nil
	}
	return s.notifier.SendRiskReminder(userID, len(risk.HighRisk), len(risk.MediumRisk))
}

func envHour(name string, fallback int) int {
	if raw := os.Getenv(name); raw != "" {
		if h, err := strconv.Atoi(raw); err == nil && h >= 0 && h <= 23 {
			return h
		}
	}
	return fallback
}
