package bot

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/example/grevocab/internal/quiz"
	"github.com/example/grevocab/pkg/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Callback data prefixes
const (
	callbackRate     = "rate"     // rate:<level>
	callbackBookmark = "bookmark" // bookmark:<wordID>
	callbackExplain  = "explain"  // explain:<wordID>
	callbackAnswer   = "answer"   // answer:<optionIndex>
)

// HandleCommand handles bot commands
func (b *Bot) HandleCommand(ctx context.Context, message *tgbotapi.Message) error {
	if message == nil || message.From == nil || message.Chat == nil {
		return fmt.Errorf("invalid message: required fields are missing")
	}

	var err error
	switch message.Command() {
	case "start":
		err = b.handleStart(ctx, message)
	case "help":
		err = b.handleHelp(message)
	case "review":
		err = b.handleReview(ctx, message)
	case "quiz":
		err = b.handleQuiz(ctx, message, true)
	case "quizall":
		err = b.handleQuiz(ctx, message, false)
	case "stats":
		err = b.handleStats(ctx, message)
	case "readiness":
		err = b.handleReadiness(ctx, message)
	case "risk":
		err = b.handleRisk(ctx, message)
	case "insights":
		err = b.handleInsights(ctx, message)
	case "search":
		err = b.handleSearch(ctx, message)
	case "goal":
		err = b.handleGoal(ctx, message)
	case "cancel":
		err = b.handleCancel(message)
	default:
		err = b.handleUnknownCommand(message)
	}
	return err
}

func (b *Bot) handleStart(ctx context.Context, message *tgbotapi.Message) error {
	_, err := b.store.Users.GetOrCreate(ctx, message.From.ID, message.From.UserName, message.From.FirstName, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to create user: %v", err)
	}

	text := "👋 Welcome to the GRE Vocabulary Coach!\n\n" +
		"I track every word you review and turn that history into readiness analytics.\n\n" +
		"🔹 How it works:\n" +
		"1. /review words and rate how well you know them\n" +
		"2. Take a /quiz to test your learned words\n" +
		"3. Check /stats, /readiness and /insights to see how exam-ready you are"

	return b.sendText(message.Chat.ID, text)
}

func (b *Bot) handleHelp(message *tgbotapi.Message) error {
	text := "📖 Commands\n\n" +
		"📚 Studying:\n" +
		"/review - Review words due for practice\n" +
		"/quiz - Quiz yourself on learned words\n" +
		"/quizall - Quiz across the whole vocabulary\n" +
		"/search <term> - Look up a word\n\n" +
		"📊 Analytics:\n" +
		"/stats - Full statistics dashboard\n" +
		"/readiness - Exam readiness score\n" +
		"/risk - Words at risk of being forgotten\n" +
		"/insights - Personalized learning insights\n\n" +
		"⚙️ Settings:\n" +
		"/goal <n> - Set your daily word goal\n" +
		"/cancel - Abandon the current review or quiz"

	return b.sendText(message.Chat.ID, text)
}

func (b *Bot) handleReview(ctx context.Context, message *tgbotapi.Message) error {
	userID := message.From.ID
	words, err := b.store.Reviews.WordsToReview(ctx, userID, b.config.ReviewBatchSize)
	if err != nil {
		return fmt.Errorf("failed to load words to review: %v", err)
	}
	if len(words) == 0 {
		return b.sendText(message.Chat.ID, "🎉 Nothing due for review. Take a /quiz or check your /stats.")
	}

	b.setReviewSession(userID, &reviewSession{Words: words})
	return b.sendReviewCard(message.Chat.ID, words[0], 1, len(words))
}

func (b *Bot) sendReviewCard(chatID int64, word models.Word, position, total int) error {
	text := fmt.Sprintf("📇 Word %d of %d\n\n<b>%s</b>\n\n%s\n\nHow well do you know this word?",
		position, total, escapeHTML(word.Word), escapeHTML(word.Definition))

	rows := [][]MenuButton{
		{
			{Text: "❌ Don't know", CallbackData: callbackRate + ":" + string(models.MasteryUnknown)},
			{Text: "🤔 Unsure", CallbackData: callbackRate + ":" + string(models.MasteryUnsure)},
			{Text: "✅ Know it", CallbackData: callbackRate + ":" + string(models.MasteryKnown)},
		},
		{
			{Text: "🔖 Bookmark", CallbackData: fmt.Sprintf("%s:%d", callbackBookmark, word.ID)},
		},
	}
	if b.aiEnabled {
		rows[1] = append(rows[1], MenuButton{
			Text:         "💡 Explain",
			CallbackData: fmt.Sprintf("%s:%d", callbackExplain, word.ID),
		})
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = createKeyboard(rows)
	return b.sendMessage(msg)
}

func (b *Bot) handleQuiz(ctx context.Context, message *tgbotapi.Message, learnedOnly bool) error {
	userID := message.From.ID
	questions, err := b.quizzes.NewQuiz(ctx, userID, b.config.QuizLength, learnedOnly)
	if err != nil {
		log.Printf("Error building quiz for user %d: %v", userID, err)
		if learnedOnly {
			return b.sendText(message.Chat.ID, "You have no learned words to quiz yet. Try /review first, or /quizall for the full vocabulary.")
		}
		return b.sendText(message.Chat.ID, "No words are available for a quiz yet.")
	}

	testType := quiz.TypeAllWords
	if learnedOnly {
		testType = quiz.TypeLearnedWords
	}
	b.setQuizSession(userID, &quizSession{
		Questions: questions,
		TestType:  testType,
		StartedAt: time.Now().UTC(),
	})
	return b.sendQuizQuestion(message.Chat.ID, questions[0], 1, len(questions))
}

func (b *Bot) sendQuizQuestion(chatID int64, question quiz.Question, position, total int) error {
	text := fmt.Sprintf("❓ Question %d of %d\n\nWhich definition matches <b>%s</b>?",
		position, total, escapeHTML(question.Word.Word))

	var rows [][]MenuButton
	for i, option := range question.Options {
		label := option
		if len(label) > 60 {
			label = label[:57] + "..."
		}
		rows = append(rows, []MenuButton{{
			Text:         fmt.Sprintf("%d. %s", i+1, label),
			CallbackData: fmt.Sprintf("%s:%d", callbackAnswer, i),
		}})
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = createKeyboard(rows)
	return b.sendMessage(msg)
}

func (b *Bot) handleStats(ctx context.Context, message *tgbotapi.Message) error {
	stats, err := b.engine.AdvancedStatistics(ctx, message.From.ID, time.Now().UTC())
	if err != nil {
		log.Printf("Error computing statistics for user %d: %v", message.From.ID, err)
		return b.sendText(message.Chat.ID, "❌ Could not compute your statistics right now. Please try again later.")
	}
	return b.sendHTML(message.Chat.ID, renderStats(stats))
}

func (b *Bot) handleReadiness(ctx context.Context, message *tgbotapi.Message) error {
	stats, err := b.engine.AdvancedStatistics(ctx, message.From.ID, time.Now().UTC())
	if err != nil {
		log.Printf("Error computing readiness for user %d: %v", message.From.ID, err)
		return b.sendText(message.Chat.ID, "❌ Could not compute your readiness right now. Please try again later.")
	}
	return b.sendHTML(message.Chat.ID, renderReadiness(stats.Readiness))
}

func (b *Bot) handleRisk(ctx context.Context, message *tgbotapi.Message) error {
	stats, err := b.engine.AdvancedStatistics(ctx, message.From.ID, time.Now().UTC())
	if err != nil {
		log.Printf("Error computing forgetting risk for user %d: %v", message.From.ID, err)
		return b.sendText(message.Chat.ID, "❌ Could not compute your forgetting risk right now. Please try again later.")
	}
	return b.sendHTML(message.Chat.ID, renderRisk(stats.ForgettingRisk))
}

func (b *Bot) handleInsights(ctx context.Context, message *tgbotapi.Message) error {
	stats, err := b.engine.AdvancedStatistics(ctx, message.From.ID, time.Now().UTC())
	if err != nil {
		log.Printf("Error computing insights for user %d: %v", message.From.ID, err)
		return b.sendText(message.Chat.ID, "❌ Could not compute your insights right now. Please try again later.")
	}
	return b.sendHTML(message.Chat.ID, renderInsights(stats.MicroInsights, stats.AccuracyTrend, stats.BookmarkEffectiveness))
}

func (b *Bot) handleSearch(ctx context.Context, message *tgbotapi.Message) error {
	term := strings.TrimSpace(message.CommandArguments())
	if term == "" {
		return b.sendText(message.Chat.ID, "Usage: /search <term>")
	}

	words, err := b.store.Words.Search(ctx, term, 10)
	if err != nil {
		return fmt.Errorf("failed to search words: %v", err)
	}
	if len(words) == 0 {
		return b.sendText(message.Chat.ID, fmt.Sprintf("No words matching %q.", term))
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🔍 Results for %q:\n\n", term))
	for _, w := range words {
		sb.WriteString(fmt.Sprintf("<b>%s</b> — %s\n", escapeHTML(w.Word), escapeHTML(w.Definition)))
	}
	return b.sendHTML(message.Chat.ID, sb.String())
}

func (b *Bot) handleGoal(ctx context.Context, message *tgbotapi.Message) error {
	arg := strings.TrimSpace(message.CommandArguments())
	goal, err := strconv.Atoi(arg)
	if err != nil || goal < 1 || goal > 100 {
		return b.sendText(message.Chat.ID, "Usage: /goal <1-100>")
	}

	if err := b.store.Users.SetDailyGoal(ctx, message.From.ID, goal); err != nil {
		return fmt.Errorf("failed to set daily goal: %v", err)
	}
	return b.sendText(message.Chat.ID, fmt.Sprintf("🎯 Daily goal set to %d words.", goal))
}

func (b *Bot) handleCancel(message *tgbotapi.Message) error {
	b.clearSessions(message.From.ID)
	return b.sendText(message.Chat.ID, "Session cancelled.")
}

func (b *Bot) handleUnknownCommand(message *tgbotapi.Message) error {
	return b.sendText(message.Chat.ID, "Unknown command. Use /help to see what I can do.")
}

// HandleCallback handles inline keyboard presses
func (b *Bot) HandleCallback(ctx context.Context, callback *tgbotapi.CallbackQuery) error {
	if callback.Message == nil {
		return nil
	}

	// Acknowledge the press so the client stops the spinner
	if _, err := b.api.Request(tgbotapi.NewCallback(callback.ID, "")); err != nil {
		log.Printf("Error answering callback: %v", err)
	}

	parts := strings.SplitN(callback.Data, ":", 2)
	if len(parts) != 2 {
		return nil
	}
	action, arg := parts[0], parts[1]
	userID := callback.From.ID
	chatID := callback.Message.Chat.ID

	switch action {
	case callbackRate:
		return b.handleRateCallback(ctx, userID, chatID, models.MasteryLevel(arg))
	case callbackBookmark:
		return b.handleBookmarkCallback(ctx, userID, chatID, arg)
	case callbackExplain:
		return b.handleExplainCallback(ctx, chatID, arg)
	case callbackAnswer:
		return b.handleAnswerCallback(ctx, userID, chatID, arg)
	}
	return nil
}

func (b *Bot) handleRateCallback(ctx context.Context, userID, chatID int64, level models.MasteryLevel) error {
	session, ok := b.reviewSession(userID)
	if !ok || session.Idx >= len(session.Words) {
		return b.sendText(chatID, "No review in progress. Start one with /review.")
	}
	if level != models.MasteryUnknown && level != models.MasteryUnsure && level != models.MasteryKnown {
		return nil
	}

	now := time.Now().UTC()
	word := session.Words[session.Idx]
	if err := b.store.Reviews.SaveReview(ctx, userID, word.ID, word.Word, level, now); err != nil {
		return fmt.Errorf("failed to save review: %v", err)
	}
	if err := b.store.Users.TouchActivity(ctx, userID, now); err != nil {
		log.Printf("Error updating streak for user %d: %v", userID, err)
	}

	session.Idx++
	if session.Idx >= len(session.Words) {
		b.setReviewSession(userID, nil)
		return b.sendText(chatID, fmt.Sprintf("✅ Review complete! You went through %d words.\n\nCheck /risk to see what is still slipping.", len(session.Words)))
	}
	return b.sendReviewCard(chatID, session.Words[session.Idx], session.Idx+1, len(session.Words))
}

func (b *Bot) handleBookmarkCallback(ctx context.Context, userID, chatID int64, arg string) error {
	wordID, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return nil
	}
	if err := b.store.Reviews.SetBookmarked(ctx, userID, wordID, true); err != nil {
		return fmt.Errorf("failed to bookmark word: %v", err)
	}
	return b.sendText(chatID, "🔖 Bookmarked. Bookmarked words show up in your /insights.")
}

func (b *Bot) handleExplainCallback(ctx context.Context, chatID int64, arg string) error {
	if !b.aiEnabled {
		return nil
	}
	wordID, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return nil
	}

	word, err := b.store.Words.ByID(ctx, wordID)
	if err != nil {
		return fmt.Errorf("failed to load word: %v", err)
	}
	return b.sendText(chatID, b.chatGPT.ExplainWordWithFallback(ctx, &word))
}

func (b *Bot) handleAnswerCallback(ctx context.Context, userID, chatID int64, arg string) error {
	session, ok := b.quizSession(userID)
	if !ok || session.Idx >= len(session.Questions) {
		return b.sendText(chatID, "No quiz in progress. Start one with /quiz.")
	}

	choice, err := strconv.Atoi(arg)
	if err != nil {
		return nil
	}

	question := session.Questions[session.Idx]
	if choice == question.CorrectIndex {
		session.Correct++
		if err := b.sendText(chatID, "✅ Correct!"); err != nil {
			return err
		}
	} else {
		reply := fmt.Sprintf("❌ Not quite. <b>%s</b> means: %s",
			escapeHTML(question.Word.Word), escapeHTML(question.Word.Definition))
		if err := b.sendHTML(chatID, reply); err != nil {
			return err
		}
	}

	session.Idx++
	if session.Idx < len(session.Questions) {
		return b.sendQuizQuestion(chatID, session.Questions[session.Idx], session.Idx+1, len(session.Questions))
	}

	// Quiz finished: persist the attempt and report the score
	now := time.Now().UTC()
	duration := int(now.Sub(session.StartedAt).Seconds())
	total := len(session.Questions)
	correct := session.Correct
	b.setQuizSession(userID, nil)

	if err := b.quizzes.RecordResult(ctx, userID, session.TestType, correct, total, duration, now); err != nil {
		log.Printf("Error recording quiz result for user %d: %v", userID, err)
	}
	if err := b.store.Users.TouchActivity(ctx, userID, now); err != nil {
		log.Printf("Error updating streak for user %d: %v", userID, err)
	}

	percent := 0
	if total > 0 {
		percent = correct * 100 / total
	}
	return b.sendText(chatID, fmt.Sprintf("🏁 Quiz complete: %d/%d (%d%%) in %ds.\n\nSee how this moved your /readiness.",
		correct, total, percent, duration))
}
