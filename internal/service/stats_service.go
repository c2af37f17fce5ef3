package service

import (
	"spelltest/internal/models"
	"spelltest/internal/repository"
)

// StatsService reports on completed spelling tests
type StatsService struct {
	statRepo *repository.StatRepository
}

// NewStatsService creates a new stats service
func NewStatsService(statRepo *repository.StatRepository) *StatsService {
	return &StatsService{statRepo: statRepo}
}

// StatSummary is a stat row together with its computed grade
type StatSummary struct {
	models.SpellingListStat
	ScorePercent int `json:"score_percent"`
}

// GetStat returns one result with its grade, or nil when it does not exist
func (s *StatsService) GetStat(statID int64) (*StatSummary, error) {
	stat, err := s.statRepo.GetStat(statID)
	if err != nil {
		return nil, err
	}
	if stat == nil {
		return nil, nil
	}
	return &StatSummary{SpellingListStat: *stat, ScorePercent: stat.ScorePercent()}, nil
}

// GetListStats returns all results for a list, most recent first
func (s *StatsService) GetListStats(listID int64) ([]StatSummary, error) {
	stats, err := s.statRepo.GetListStats(listID)
	if err != nil {
		return nil, err
	}
	return summarize(stats), nil
}

// GetUserStats returns all results across a user's lists, most recent first
func (s *StatsService) GetUserStats(userID int64) ([]StatSummary, error) {
	stats, err := s.statRepo.GetUserStats(userID)
	if err != nil {
		return nil, err
	}
	return summarize(stats), nil
}

func summarize(stats []models.SpellingListStat) []StatSummary {
	summaries := make([]StatSummary, 0, len(stats))
	for _, stat := range stats {
		summaries = append(summaries, StatSummary{SpellingListStat: stat, ScorePercent: stat.ScorePercent()})
	}
	return summaries
}
