package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/grevocab/pkg/models"
	"github.com/jmoiron/sqlx"
)

// WordRepository handles database operations for words and word lists
type WordRepository struct {
	db *sqlx.DB
}

// NewWordRepository creates a new repository instance
func NewWordRepository(db *sqlx.DB) *WordRepository {
	return &WordRepository{db: db}
}

// GetOrCreateList returns the ID of a word list, creating it if needed
func (r *WordRepository) GetOrCreateList(ctx context.Context, name, description string) (int64, bool, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, "SELECT id FROM word_lists WHERE name = $1", name).Scan(&id)
	if err == nil {
		return id, false, nil
	}
	if err != sql.ErrNoRows {
		return 0, false, fmt.Errorf("failed to look up word list: %v", err)
	}

	res, err := r.db.ExecContext(ctx,
		"INSERT INTO word_lists (name, description) VALUES ($1, $2)",
		name, description)
	if err != nil {
		return 0, false, fmt.Errorf("failed to create word list: %v", err)
	}
	id, err = res.LastInsertId()
	if err != nil {
		// Postgres doesn't report LastInsertId; fetch the row instead
		if selErr := r.db.QueryRowContext(ctx, "SELECT id FROM word_lists WHERE name = $1", name).Scan(&id); selErr != nil {
			return 0, false, fmt.Errorf("failed to get created word list: %v", selErr)
		}
	}
	return id, true, nil
}

// CreateWord inserts a word into a list, skipping duplicates.
// Returns true if a new row was created.
func (r *WordRepository) CreateWord(ctx context.Context, word *models.Word) (bool, error) {
	var existingID int64
	err := r.db.QueryRowContext(ctx,
		"SELECT id FROM words WHERE word = $1 AND list_id = $2",
		word.Word, word.ListID).Scan(&existingID)
	if err == nil {
		word.ID = existingID
		return false, nil
	}
	if err != sql.ErrNoRows {
		return false, fmt.Errorf("failed to look up word: %v", err)
	}

	res, err := r.db.ExecContext(ctx,
		"INSERT INTO words (list_id, list_name, word, definition) VALUES ($1, $2, $3, $4)",
		word.ListID, word.ListName, word.Word, word.Definition)
	if err != nil {
		return false, fmt.Errorf("failed to create word: %v", err)
	}
	if id, err := res.LastInsertId(); err == nil {
		word.ID = id
	}
	return true, nil
}

// ListProgress enumerates all word lists with the user's mastery counts
func (r *WordRepository) ListProgress(ctx context.Context, userID int64) ([]models.WordListProgress, error) {
	lists := []models.WordListProgress{}
	err := r.db.SelectContext(ctx, &lists, `
		SELECT
			wl.id,
			wl.name,
			COUNT(w.id) AS total_words,
			COUNT(CASE WHEN rr.mastery_level = 'known' THEN 1 END) AS learned_words
		FROM word_lists wl
		LEFT JOIN words w ON w.list_id = wl.id
		LEFT JOIN review_records rr ON rr.word_id = w.id AND rr.user_id = $1
		GROUP BY wl.id, wl.name
		ORDER BY wl.name`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get list progress: %v", err)
	}
	for i := range lists {
		if lists[i].TotalWords > 0 {
			lists[i].MasteryPercentage = int(float64(lists[i].LearnedWords)/float64(lists[i].TotalWords)*100 + 0.5)
		}
	}
	return lists, nil
}

// TotalWords returns the number of words available across all lists
func (r *WordRepository) TotalWords(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM words"); err != nil {
		return 0, fmt.Errorf("failed to count words: %v", err)
	}
	return count, nil
}

// ByID fetches a single word
func (r *WordRepository) ByID(ctx context.Context, id int64) (models.Word, error) {
	var word models.Word
	err := r.db.GetContext(ctx, &word,
		"SELECT id, list_id, list_name, word, definition, created_at FROM words WHERE id = $1", id)
	if err != nil {
		return models.Word{}, fmt.Errorf("failed to get word %d: %v", id, err)
	}
	return word, nil
}

// RandomWords returns up to count random words, optionally excluding ones the
// user has already mastered
func (r *WordRepository) RandomWords(ctx context.Context, userID int64, count int, excludeKnown bool) ([]models.Word, error) {
	words := []models.Word{}
	query := "SELECT id, list_id, list_name, word, definition, created_at FROM words"
	args := []interface{}{}
	if excludeKnown {
		query += ` WHERE id NOT IN (
			SELECT word_id FROM review_records WHERE user_id = $1 AND mastery_level = 'known'
		) ORDER BY RANDOM() LIMIT $2`
		args = append(args, userID, count)
	} else {
		query += " ORDER BY RANDOM() LIMIT $1"
		args = append(args, count)
	}
	if err := r.db.SelectContext(ctx, &words, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get random words: %v", err)
	}
	return words, nil
}

// LearnedWords returns up to count random words the user has mastered
func (r *WordRepository) LearnedWords(ctx context.Context, userID int64, count int) ([]models.Word, error) {
	words := []models.Word{}
	err := r.db.SelectContext(ctx, &words, `
		SELECT w.id, w.list_id, w.list_name, w.word, w.definition, w.created_at
		FROM words w
		INNER JOIN review_records rr ON w.id = rr.word_id
		WHERE rr.user_id = $1 AND rr.mastery_level = 'known'
		ORDER BY RANDOM()
		LIMIT $2`,
		userID, count)
	if err != nil {
		return nil, fmt.Errorf("failed to get learned words: %v", err)
	}
	return words, nil
}

// RandomDefinitions returns distinct definitions of other words, for use as
// quiz distractors
func (r *WordRepository) RandomDefinitions(ctx context.Context, excludeWord string, count int) ([]string, error) {
	defs := []string{}
	err := r.db.SelectContext(ctx, &defs, `
		SELECT DISTINCT definition FROM words
		WHERE word != $1
		ORDER BY RANDOM()
		LIMIT $2`,
		excludeWord, count)
	if err != nil {
		return nil, fmt.Errorf("failed to get random definitions: %v", err)
	}
	return defs, nil
}

// Search finds words matching the term
func (r *WordRepository) Search(ctx context.Context, term string, limit int) ([]models.Word, error) {
	words := []models.Word{}
	err := r.db.SelectContext(ctx, &words, `
		SELECT id, list_id, list_name, word, definition, created_at
		FROM words
		WHERE word LIKE $1
		ORDER BY word
		LIMIT $2`,
		"%"+term+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search words: %v", err)
	}
	return words, nil
}
