package models

// Difficulty is a seeded lookup row. The three descriptions below are
// inserted when the schema is first created and never change afterwards.
type Difficulty struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
}

const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)
