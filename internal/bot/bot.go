// Package bot is the Telegram front end: commands, inline keyboards and
// the session state for review and quiz flows.
package bot

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/example/grevocab/internal/ai"
	"github.com/example/grevocab/internal/analytics"
	"github.com/example/grevocab/internal/database"
	"github.com/example/grevocab/internal/quiz"
	"github.com/example/grevocab/pkg/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// MenuButton represents a button in the menu
type MenuButton struct {
	Text         string
	CallbackData string
}

// createKeyboard creates a keyboard from menu buttons
func createKeyboard(buttons [][]MenuButton) tgbotapi.InlineKeyboardMarkup {
	var keyboard [][]tgbotapi.InlineKeyboardButton
	for _, row := range buttons {
		var keyboardRow []tgbotapi.InlineKeyboardButton
		for _, button := range row {
			keyboardRow = append(keyboardRow, tgbotapi.NewInlineKeyboardButtonData(button.Text, button.CallbackData))
		}
		keyboard = append(keyboard, keyboardRow)
	}
	return tgbotapi.NewInlineKeyboardMarkup(keyboard...)
}

// reviewSession tracks a user's progress through a review batch
type reviewSession struct {
	Words []models.Word
	Idx   int
}

// quizSession tracks an in-flight quiz
type quizSession struct {
	Questions []quiz.Question
	Idx       int
	Correct   int
	TestType  string
	StartedAt time.Time
}

// Bot represents the Telegram bot application
type Bot struct {
	api       *tgbotapi.BotAPI
	store     *database.Store
	engine    *analytics.Engine
	quizzes   *quiz.Service
	chatGPT   *ai.ChatGPT
	aiEnabled bool
	config    *BotConfig

	mu             sync.Mutex
	reviewSessions map[int64]*reviewSession
	quizSessions   map[int64]*quizSession
}

// New creates a new bot instance. chatGPT may be nil; the explain button is
// hidden when it is.
func New(token string, store *database.Store, engine *analytics.Engine, quizzes *quiz.Service, chatGPT *ai.ChatGPT) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %v", err)
	}

	return &Bot{
		api:            api,
		store:          store,
		engine:         engine,
		quizzes:        quizzes,
		chatGPT:        chatGPT,
		aiEnabled:      chatGPT != nil,
		config:         DefaultConfig(),
		reviewSessions: make(map[int64]*reviewSession),
		quizSessions:   make(map[int64]*quizSession),
	}, nil
}

// Start begins polling for updates and blocks until ctx is cancelled
func (b *Bot) Start(ctx context.Context) error {
	log.Printf("Authorized on account %s", b.api.Self.UserName)

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60
	updates := b.api.GetUpdatesChan(updateConfig)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			go b.handleUpdate(ctx, update)
		}
	}
}

// Stop halts update polling
func (b *Bot) Stop() {
	b.api.StopReceivingUpdates()
	log.Println("Bot stopped")
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	var err error
	switch {
	case update.Message != nil && update.Message.IsCommand():
		err = b.HandleCommand(ctx, update.Message)
	case update.CallbackQuery != nil:
		err = b.HandleCallback(ctx, update.CallbackQuery)
	}
	if err != nil {
		log.Printf("Error handling update: %v", err)
	}
}

// SendRiskReminder notifies a user how many of their words are slipping.
// It implements scheduler.Notifier.
func (b *Bot) SendRiskReminder(userID int64, highRisk, mediumRisk int) error {
	text := fmt.Sprintf(
		"⏰ Time to review!\n\n🔴 %d words at high risk of being forgotten\n🟡 %d words need attention soon\n\nUse /review to work through them.",
		highRisk, mediumRisk,
	)
	msg := tgbotapi.NewMessage(userID, text)
	return b.sendMessage(msg)
}

func (b *Bot) sendMessage(msg tgbotapi.MessageConfig) error {
	if _, err := b.api.Send(msg); err != nil {
		return fmt.Errorf("failed to send message: %v", err)
	}
	return nil
}

func (b *Bot) sendText(chatID int64, text string) error {
	return b.sendMessage(tgbotapi.NewMessage(chatID, text))
}

func (b *Bot) sendHTML(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	return b.sendMessage(msg)
}

func (b *Bot) reviewSession(userID int64) (*reviewSession, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	s, ok := b.reviewSessions[userID]
	return s, ok
}

func (b *Bot) quizSession(userID int64) (*quizSession, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	s, ok := b.quizSessions[userID]
	return s, ok
}

func (b *Bot) setReviewSession(userID int64, s *reviewSession) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if s == nil {
		delete(b.reviewSessions, userID)
	} else {
		b.reviewSessions[userID] = s
	}
}

func (b *Bot) setQuizSession(userID int64, s *quizSession) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if s == nil {
		delete(b.quizSessions, userID)
	} else {
		b.quizSessions[userID] = s
	}
}

func (b *Bot) clearSessions(userID int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.reviewSessions, userID)
	delete(b.quizSessions, userID)
}
