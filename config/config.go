package config

// DefaultQuestionsPath is where the question collection is read from,
// relative to the working directory.
const DefaultQuestionsPath = "questions.json"

// Config holds all the configuration for the application
type Config struct {
	QuestionsPath string
}

// Load loads the configuration. The tool takes no flags and reads no
// environment variables, so every value is fixed.
func Load() (*Config, error) {
	return &Config{
		QuestionsPath: DefaultQuestionsPath,
	}, nil
}
