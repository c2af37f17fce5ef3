package models

// SpellingList groups the words a user practices together
type SpellingList struct {
	ID           int64  `json:"id"`
	UserID       int64  `json:"user_id"`
	Name         string `json:"name"`
	Type         string `json:"type,omitempty"`
	DifficultyID *int64 `json:"difficulty_id,omitempty"`
}

// Word is a single entry in a spelling list. Only Spelling is required;
// the descriptive columns are optional and may be empty.
type Word struct {
	ID              int64  `json:"id"`
	ListID          int64  `json:"list_id"`
	Spelling        string `json:"spelling"`
	Definition      string `json:"definition,omitempty"`
	ExampleSentence string `json:"example_sentence,omitempty"`
	DifficultyID    *int64 `json:"difficulty_id,omitempty"`
	Type            string `json:"type,omitempty"`
}
