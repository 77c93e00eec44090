package database

import (
	"path/filepath"
	"testing"

	"leaderboard_backend/internal/config"
	"leaderboard_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestInitDBCreatesScoresTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.db")

	db, err := InitDB(&config.DatabaseConfig{Path: path})
	require.NoError(t, err)

	m := db.Migrator()
	assert.True(t, m.HasTable(&model.Score{}))
	for _, col := range []string{"id", "name", "score", "difficulty", "created_at"} {
		assert.True(t, m.HasColumn(&model.Score{}, col), "missing column %s", col)
	}
}

func TestInitDBAddsDifficultyToLegacyTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.db")

	// 旧版本的表结构，没有 difficulty 列
	legacy, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, legacy.Exec(`CREATE TABLE scores (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		score INTEGER NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`).Error)
	require.NoError(t, legacy.Exec(`INSERT INTO scores (name, score) VALUES ('alice', 42)`).Error)
	sqlDB, err := legacy.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	db, err := InitDB(&config.DatabaseConfig{Path: path})
	require.NoError(t, err)

	require.True(t, db.Migrator().HasColumn(&model.Score{}, "difficulty"))

	// 历史数据回填默认难度，原有字段保持不变
	var record model.Score
	require.NoError(t, db.First(&record).Error)
	assert.Equal(t, "alice", record.Name)
	assert.Equal(t, 42, record.Score)
	assert.Equal(t, model.DefaultDifficulty, record.Difficulty)
}

func TestInitDBIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.db")

	db, err := InitDB(&config.DatabaseConfig{Path: path})
	require.NoError(t, err)
	require.NoError(t, db.Create(&model.Score{Name: "alice", Score: 50, Difficulty: "beginner"}).Error)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	// 重复初始化不报错、不丢数据
	db, err = InitDB(&config.DatabaseConfig{Path: path})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&model.Score{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
