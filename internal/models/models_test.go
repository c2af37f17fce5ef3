package models

import "testing"

func TestScorePercent(t *testing.T) {
	tests := []struct {
		name      string
		correct   int
		incorrect int
		want      int
	}{
		{"all correct", 4, 0, 100},
		{"all incorrect", 0, 4, 0},
		{"half", 2, 2, 50},
		{"rounds down", 2, 1, 66},
		{"no answers", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stat := SpellingListStat{NumberCorrect: tt.correct, NumberIncorrect: tt.incorrect}
			if got := stat.ScorePercent(); got != tt.want {
				t.Errorf("ScorePercent() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestUserFullName(t *testing.T) {
	tests := []struct {
		name string
		user User
		want string
	}{
		{"both names", User{FirstName: "Alice", LastName: "Smith"}, "Alice Smith"},
		{"first only", User{FirstName: "Alice"}, "Alice"},
		{"last only", User{LastName: "Smith"}, "Smith"},
		{"empty", User{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.user.FullName(); got != tt.want {
				t.Errorf("FullName() = %q, want %q", got, tt.want)
			}
		})
	}
}
