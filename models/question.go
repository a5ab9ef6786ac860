package models

// Question represents a question from the questions.json file
type Question struct {
	ID           int      `json:"id" yaml:"id"`
	Text         string   `json:"text" yaml:"text"`
	Options      []string `json:"options" yaml:"options"`
	CorrectIndex int      `json:"correctIndex" yaml:"correctIndex"`
}

// IsCorrect reports whether the option at index i is the right answer
func (q Question) IsCorrect(i int) bool {
	return i == q.CorrectIndex
}
