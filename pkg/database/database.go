package database

import (
	"log"

	"leaderboard_backend/internal/config"
	"leaderboard_backend/internal/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if err := migrateScores(db); err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	return db, nil
}

// migrateScores 保证 scores 表存在且包含 difficulty 列。
// 旧版本的表没有 difficulty 列，这里先补列再回填默认值；
// 检查-补列的顺序保证重复执行不会出错。
func migrateScores(db *gorm.DB) error {
	m := db.Migrator()

	if m.HasTable(&model.Score{}) && !m.HasColumn(&model.Score{}, "difficulty") {
		if err := m.AddColumn(&model.Score{}, "Difficulty"); err != nil {
			return err
		}
		if err := db.Model(&model.Score{}).
			Where("difficulty IS NULL OR difficulty = ''").
			Update("difficulty", model.DefaultDifficulty).Error; err != nil {
			return err
		}
		log.Println("Added 'difficulty' column to 'scores' table")
	}

	return db.AutoMigrate(&model.Score{})
}
