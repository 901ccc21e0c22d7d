package bot

// BotConfig represents the configuration for the bot
type BotConfig struct {
	// Number of words served per /review session
	ReviewBatchSize int
	// Number of questions per quiz
	QuizLength int
	// Default notification hour for new users
	DefaultNotificationHour int
}

// DefaultConfig returns the default bot configuration
func DefaultConfig() *BotConfig {
	return &BotConfig{
		ReviewBatchSize:         10,
		QuizLength:              10,
		DefaultNotificationHour: 9,
	}
}
