package model

import "time"

// DefaultDifficulty 是历史数据补列时使用的默认难度。
const DefaultDifficulty = "beginner"

// Score 记录玩家在某个难度下的最好成绩。
// (name, difficulty) 唯一，分数只增不减（见 repository.SubmitBest）。
type Score struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_scores_name_difficulty" json:"name"`
	Score      int       `gorm:"not null" json:"score"`
	Difficulty string    `gorm:"type:varchar(32);not null;default:beginner;uniqueIndex:idx_scores_name_difficulty" json:"difficulty"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Score) TableName() string {
	return "scores"
}

// LeaderboardEntry 是榜单查询返回给客户端的行，不回传 id 和 difficulty。
type LeaderboardEntry struct {
	Name      string    `json:"name"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}
