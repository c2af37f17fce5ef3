package models

import "time"

// SpellingListStat records the outcome of one completed quiz session.
// Rows are append-only; a session that is abandoned writes nothing.
type SpellingListStat struct {
	ID              int64     `json:"id"`
	ListID          int64     `json:"list_id"`
	Date            time.Time `json:"date"`
	ElapsedTime     int64     `json:"elapsed_time_ms"`
	NumberCorrect   int       `json:"number_correct"`
	NumberIncorrect int       `json:"number_incorrect"`
}

// ScorePercent returns the whole-number grade for the session,
// or 0 when no answers were recorded.
func (s SpellingListStat) ScorePercent() int {
	total := s.NumberCorrect + s.NumberIncorrect
	if total == 0 {
		return 0
	}
	return 100 * s.NumberCorrect / total
}
