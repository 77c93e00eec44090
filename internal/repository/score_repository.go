package repository

import (
	"leaderboard_backend/internal/model"

	"gorm.io/gorm"
)

type ScoreRepository struct {
	DB *gorm.DB
}

func NewScoreRepository(db *gorm.DB) *ScoreRepository {
	return &ScoreRepository{DB: db}
}

// SubmitResult 区分一次提交落库后的三种结果。
type SubmitResult struct {
	Inserted bool
	Updated  bool
	ID       uint
}

// SubmitBest 按“只保留最高分”规则写入：
// 已有记录且新分数更高则原地更新，没有记录则插入，否则不落库。
// 整个判断在一个事务里完成，(name, difficulty) 上的唯一索引兜底，
// 并发提交同一组合不会产生重复行。
func (r *ScoreRepository) SubmitBest(name string, points int, difficulty string) (*SubmitResult, error) {
	result := &SubmitResult{}

	err := r.DB.Transaction(func(tx *gorm.DB) error {
		update := tx.Model(&model.Score{}).
			Where("name = ? AND difficulty = ? AND score < ?", name, difficulty, points).
			Update("score", points)
		if update.Error != nil {
			return update.Error
		}
		if update.RowsAffected > 0 {
			result.Updated = true
			return nil
		}

		var count int64
		if err := tx.Model(&model.Score{}).
			Where("name = ? AND difficulty = ?", name, difficulty).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			// 已有记录且分数不低于新分数，不更新
			return nil
		}

		record := model.Score{Name: name, Score: points, Difficulty: difficulty}
		if err := tx.Create(&record).Error; err != nil {
			return err
		}
		result.Inserted = true
		result.ID = record.ID
		return nil
	})

	return result, err
}

// Top 返回指定难度下的前 limit 名，按分数降序，同分先达成者在前。
func (r *ScoreRepository) Top(difficulty string, limit int) ([]model.LeaderboardEntry, error) {
	entries := make([]model.LeaderboardEntry, 0, limit)
	err := r.DB.Model(&model.Score{}).
		Select("name", "score", "created_at").
		Where("difficulty = ?", difficulty).
		Order("score DESC").
		Order("created_at ASC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}

// DeleteAll 清空整张榜单（维护操作用）。
func (r *ScoreRepository) DeleteAll() error {
	return r.DB.Exec("DELETE FROM scores").Error
}
