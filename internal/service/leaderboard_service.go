package service

import (
	"strings"

	"leaderboard_backend/internal/config"
	"leaderboard_backend/internal/model"
	"leaderboard_backend/internal/repository"
	"leaderboard_backend/internal/util"
)

type LeaderboardService struct {
	ScoreRepo *repository.ScoreRepository
	Cfg       *config.LeaderboardConfig
}

func NewLeaderboardService(scoreRepo *repository.ScoreRepository, cfg *config.LeaderboardConfig) *LeaderboardService {
	return &LeaderboardService{ScoreRepo: scoreRepo, Cfg: cfg}
}

// SubmitOutcome 是一次提交的业务结果。
// Inserted/Updated 都为 false 表示新分数没有超过已有分数，Message 给出说明。
type SubmitOutcome struct {
	Inserted bool
	Updated  bool
	ID       uint
	Message  string
}

// Submit 提交一次成绩，只在没有记录或新分数更高时落库。
func (s *LeaderboardService) Submit(name string, points int, difficulty string) (*SubmitOutcome, error) {
	name = strings.TrimSpace(name)
	difficulty = strings.TrimSpace(difficulty)
	if name == "" || difficulty == "" {
		return nil, util.ErrMissingFields
	}

	result, err := s.ScoreRepo.SubmitBest(name, points, difficulty)
	if err != nil {
		return nil, err
	}

	outcome := &SubmitOutcome{
		Inserted: result.Inserted,
		Updated:  result.Updated,
		ID:       result.ID,
	}
	if !result.Inserted && !result.Updated {
		outcome.Message = "New score is not higher than existing score for this difficulty."
	}
	return outcome, nil
}

// Top 返回指定难度的榜单，难度为空时查默认难度。
func (s *LeaderboardService) Top(difficulty string) ([]model.LeaderboardEntry, error) {
	difficulty = strings.TrimSpace(difficulty)
	if difficulty == "" {
		difficulty = s.Cfg.DefaultDifficulty
	}
	return s.ScoreRepo.Top(difficulty, s.Cfg.TopLimit)
}
