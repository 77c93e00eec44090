package main

import (
	"flag"
	"log"

	"leaderboard_backend/internal/app"
	"leaderboard_backend/internal/config"
	"leaderboard_backend/pkg/logger"
)

func main() {
	// 命令行参数
	migrateOnly := flag.Bool("migrate-only", false, "只执行数据库迁移，完成后退出")
	reset := flag.Bool("reset", false, "清空排行榜，完成后退出")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	// 建表/补列在 NewApp 里已经完成，迁移模式直接退出
	if *migrateOnly {
		log.Println("数据库迁移完成，退出程序")
		return
	}

	if *reset {
		if err := application.ResetScores(); err != nil {
			log.Fatalf("Failed to reset leaderboard: %v", err)
		}
		log.Println("排行榜已清空，退出程序")
		return
	}

	application.Run()
}
