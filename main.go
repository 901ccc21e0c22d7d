package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/example/grevocab/internal/ai"
	"github.com/example/grevocab/internal/analytics"
	"github.com/example/grevocab/internal/bot"
	"github.com/example/grevocab/internal/database"
	"github.com/example/grevocab/internal/excel"
	"github.com/example/grevocab/internal/quiz"
	"github.com/example/grevocab/internal/scheduler"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	db, err := database.Connect(database.ConfigFromEnv())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	store := database.NewStore(db)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Optional one-shot vocabulary import on startup
	if path := os.Getenv("IMPORT_FILE"); path != "" {
		config := excel.DefaultImportConfig()
		config.FilePath = path
		result, err := excel.NewImporter(store.Words).ImportWords(ctx, config)
		if err != nil {
			log.Fatalf("Failed to import %s: %v", path, err)
		}
		log.Printf("Imported %s: %d created, %d skipped, %d lists created, %d errors",
			path, result.Created, result.Skipped, result.ListsCreated, len(result.Errors))
		for _, importErr := range result.Errors {
			log.Printf("Import error: %s", importErr)
		}
	}

	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		log.Fatal("TELEGRAM_BOT_TOKEN environment variable is not set")
	}

	var chatGPT *ai.ChatGPT
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		chatGPT, err = ai.New(key)
		if err != nil {
			log.Printf("Warning: unable to initialize OpenAI client: %v", err)
		}
	}

	engine := analytics.NewEngine(store)
	quizzes := quiz.NewService(store.Words, store.Attempts)

	b, err := bot.New(token, store, engine, quizzes, chatGPT)
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}

	var sched *scheduler.Scheduler
	if os.Getenv("ENABLE_SCHEDULER") != "false" {
		sched = scheduler.New(b, store.Users, store.Reviews)
		sched.Start()
		log.Println("Reminder scheduler started")
	}

	// Shut down on SIGINT/SIGTERM
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		log.Printf("Received signal: %v", sig)
		if sched != nil {
			sched.Stop()
		}
		cancel()
	}()

	log.Println("Bot started. Press Ctrl+C to stop.")
	if err := b.Start(ctx); err != nil && err != context.Canceled {
		log.Fatalf("Bot error: %v", err)
	}
	log.Println("Bot stopped successfully")
}
