package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// Config holds the database connection settings
type Config struct {
	Driver string // "sqlite3" or "postgres"
	DSN    string
}

// ConfigFromEnv builds a Config from DB_TYPE and DATABASE_URL.
// SQLite in ./data is the default, matching a single-device install.
func ConfigFromEnv() Config {
	switch os.Getenv("DB_TYPE") {
	case "postgres":
		return Config{Driver: "postgres", DSN: os.Getenv("DATABASE_URL")}
	default:
		dsn := os.Getenv("DATABASE_URL")
		if dsn == "" {
			dsn = filepath.Join("data", "grevocab.db")
		}
		return Config{Driver: "sqlite3", DSN: dsn}
	}
}

// Connect opens the database and initializes the schema
func Connect(cfg Config) (*sqlx.DB, error) {
	if cfg.Driver == "sqlite3" {
		if err := os.MkdirAll(filepath.Dir(cfg.DSN), 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %v", err)
		}
	}

	db, err := sqlx.Connect(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	if cfg.Driver == "sqlite3" {
		if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
			return nil, fmt.Errorf("failed to enable foreign keys: %v", err)
		}
		// SQLite doesn't support multiple writers
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	if err := initializeSchema(db, cfg.Driver); err != nil {
		return nil, err
	}
	return db, nil
}

// initializeSchema creates necessary tables if they don't exist
func initializeSchema(db *sqlx.DB, driver string) error {
	autoID := "INTEGER PRIMARY KEY AUTOINCREMENT"
	if driver == "postgres" {
		autoID = "BIGSERIAL PRIMARY KEY"
	}

	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id BIGINT PRIMARY KEY,
			username TEXT,
			first_name TEXT,
			streak INTEGER DEFAULT 0,
			max_streak INTEGER DEFAULT 0,
			daily_goal INTEGER DEFAULT 10,
			start_date TIMESTAMP NOT NULL,
			last_active_date TIMESTAMP NOT NULL,
			notification_enabled BOOLEAN DEFAULT true,
			notification_hour INTEGER DEFAULT 9,
			is_admin BOOLEAN DEFAULT false,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS word_lists (
			id %s,
			name TEXT NOT NULL UNIQUE,
			description TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`, autoID),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS words (
			id %s,
			list_id BIGINT NOT NULL,
			list_name TEXT NOT NULL,
			word TEXT NOT NULL,
			definition TEXT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (list_id) REFERENCES word_lists(id),
			UNIQUE(word, list_id)
		)`, autoID),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS review_records (
			id %s,
			user_id BIGINT NOT NULL,
			word_id BIGINT NOT NULL,
			word TEXT NOT NULL,
			mastery_level TEXT NOT NULL CHECK(mastery_level IN ('unknown', 'unsure', 'known')),
			last_reviewed TIMESTAMP NOT NULL,
			review_count INTEGER DEFAULT 1,
			is_bookmarked BOOLEAN DEFAULT false,
			FOREIGN KEY (user_id) REFERENCES users(id),
			FOREIGN KEY (word_id) REFERENCES words(id),
			UNIQUE(user_id, word_id)
		)`, autoID),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS test_attempts (
			id %s,
			user_id BIGINT NOT NULL,
			test_type TEXT NOT NULL,
			correct_answers INTEGER NOT NULL,
			total_questions INTEGER NOT NULL,
			duration INTEGER NOT NULL,
			test_date TIMESTAMP NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (user_id) REFERENCES users(id)
		)`, autoID),
		`CREATE INDEX IF NOT EXISTS idx_words_list ON words(list_id)`,
		`CREATE INDEX IF NOT EXISTS idx_words_word ON words(word)`,
		`CREATE INDEX IF NOT EXISTS idx_reviews_user ON review_records(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_reviews_mastery ON review_records(mastery_level)`,
		`CREATE INDEX IF NOT EXISTS idx_attempts_user ON test_attempts(user_id)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to initialize schema: %v", err)
		}
	}
	return nil
}
