package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDifficulty is returned when a difficulty label is not recognised
var ErrInvalidDifficulty = errors.New("invalid difficulty")

// Difficulty is the level of a vocabulary item
type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
)

// Rank orders difficulties from easiest to hardest. Unknown values sort last.
func (d Difficulty) Rank() int {
	switch d {
	case Beginner:
		return 0
	case Intermediate:
		return 1
	case Advanced:
		return 2
	default:
		return 3
	}
}

// Valid reports whether d is one of the known levels
func (d Difficulty) Valid() bool {
	return d.Rank() < 3
}

// ParseDifficulty accepts the level names case-insensitively, plus the
// numeric shorthand 1-3 used by spreadsheet decks.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "beginner", "1":
		return Beginner, nil
	case "intermediate", "2":
		return Intermediate, nil
	case "advanced", "3":
		return Advanced, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDifficulty, s)
}

// VocabularyItem represents a Thai word or phrase to be learned
type VocabularyItem struct {
	ID          string     `json:"id"`
	Text        string     `json:"text"`
	Translation string     `json:"translation"`
	Difficulty  Difficulty `json:"difficulty"`
}
