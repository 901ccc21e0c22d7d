// Package quiz generates multiple-choice vocabulary tests and records the
// resulting attempts.
package quiz

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/example/grevocab/internal/database"
	"github.com/example/grevocab/pkg/models"
)

// Test type labels stored on attempts
const (
	TypeLearnedWords = "MCQ - Learned Words"
	TypeAllWords     = "MCQ - All Words"
)

const optionsPerQuestion = 4

// Question is a single multiple-choice question: pick the definition that
// matches the word
type Question struct {
	Word         models.Word
	Options      []string
	CorrectIndex int
}

// Service builds quizzes from the word store and persists attempts
type Service struct {
	words    *database.WordRepository
	attempts *database.TestAttemptRepository
	rnd      *rand.Rand
}

// NewService creates a quiz service
func NewService(words *database.WordRepository, attempts *database.TestAttemptRepository) *Service {
	return &Service{
		words:    words,
		attempts: attempts,
		rnd:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewQuiz builds a quiz of up to count questions. learnedOnly restricts the
// pool to words the user has already mastered.
func (s *Service) NewQuiz(ctx context.Context, userID int64, count int, learnedOnly bool) ([]Question, error) {
	var words []models.Word
	var err error
	if learnedOnly {
		words, err = s.words.LearnedWords(ctx, userID, count)
	} else {
		words, err = s.words.RandomWords(ctx, userID, count, false)
	}
	if err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("no words available for a quiz")
	}

	questions := make([]Question, 0, len(words))
	for _, word := range words {
		distractors, err := s.words.RandomDefinitions(ctx, word.Word, optionsPerQuestion-1)
		if err != nil {
			return nil, err
		}
		options, correct := buildOptions(word.Definition, distractors, s.rnd)
		questions = append(questions, Question{
			Word:         word,
			Options:      options,
			CorrectIndex: correct,
		})
	}
	return questions, nil
}

// RecordResult appends a finished quiz as an immutable test attempt
func (s *Service) RecordResult(ctx context.Context, userID int64, testType string, correct, total, durationSeconds int, now time.Time) error {
	return s.attempts.Create(ctx, &models.TestAttempt{
		UserID:    userID,
		TestType:  testType,
		Correct:   correct,
		Total:     total,
		Duration:  durationSeconds,
		TestDate:  now,
		CreatedAt: now,
	})
}

// buildOptions shuffles the correct definition in among the distractors and
// returns the index it landed on
func buildOptions(correct string, distractors []string, rnd *rand.Rand) ([]string, int) {
	options := append([]string{correct}, distractors...)
	rnd.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	for i, opt := range options {
		if opt == correct {
			return options, i
		}
	}
	return options, 0
}
