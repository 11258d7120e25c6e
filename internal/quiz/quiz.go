// Package quiz runs short multiple-choice comprehension checks.
package quiz

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	// ErrOptionOutOfRange is returned when selecting an option that does not exist.
	ErrOptionOutOfRange = errors.New("option out of range")
	// ErrEmptyBank is returned for a bank without questions.
	ErrEmptyBank = errors.New("quiz bank has no questions")
)

// Question is a single multiple-choice prompt.
type Question struct {
	Prompt  string   `yaml:"question"`
	Options []string `yaml:"options"`
	Correct int      `yaml:"answer"`
}

// Bank is an ordered set of questions.
type Bank struct {
	Title     string     `yaml:"title"`
	Questions []Question `yaml:"questions"`
}

// DefaultBank returns the built-in questions.
func DefaultBank() Bank {
	return Bank{
		Title: "Reading Comprehension Quiz",
		Questions: []Question{
			{
				Prompt: "What was the main topic of the text?",
				Options: []string{
					"The history of speed reading",
					"The benefits of regular exercise",
					"The impact of technology on society",
					"The importance of sleep",
				},
				Correct: 0,
			},
			{
				Prompt: "Which technique was mentioned as most effective?",
				Options: []string{
					"Reading word by word",
					"Using a pointer",
					"Subvocalization",
					"Reading backwards",
				},
				Correct: 1,
			},
			{
				Prompt: "What was the recommended reading speed?",
				Options: []string{
					"100-200 WPM",
					"200-300 WPM",
					"300-400 WPM",
					"400-500 WPM",
				},
				Correct: 2,
			},
		},
	}
}

// LoadBank reads a YAML question bank.
func LoadBank(path string) (Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Bank{}, fmt.Errorf("read quiz bank: %w", err)
	}
	return ParseBank(data)
}

// ParseBank decodes and validates a YAML question bank.
func ParseBank(data []byte) (Bank, error) {
	var b Bank
	if err := yaml.Unmarshal(data, &b); err != nil {
		return Bank{}, fmt.Errorf("decode quiz bank: %w", err)
	}
	if err := b.Validate(); err != nil {
		return Bank{}, err
	}
	if b.Title == "" {
		b.Title = DefaultBank().Title
	}
	return b, nil
}

// Validate checks that every question has options and a valid answer.
func (b Bank) Validate() error {
	if len(b.Questions) == 0 {
		return ErrEmptyBank
	}
	for i, q := range b.Questions {
		if q.Prompt == "" {
			return fmt.Errorf("question %d: empty prompt", i+1)
		}
		if len(q.Options) < 2 {
			return fmt.Errorf("question %d: need at least two options", i+1)
		}
		if q.Correct < 0 || q.Correct >= len(q.Options) {
			return fmt.Errorf("question %d: answer %d: %w", i+1, q.Correct, ErrOptionOutOfRange)
		}
	}
	return nil
}
