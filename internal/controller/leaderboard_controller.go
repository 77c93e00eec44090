package controller

import (
	"errors"
	"net/http"

	"leaderboard_backend/internal/model"
	"leaderboard_backend/internal/service"
	"leaderboard_backend/internal/util"
	"leaderboard_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type LeaderboardController struct {
	LeaderboardService *service.LeaderboardService
}

func NewLeaderboardController(leaderboardService *service.LeaderboardService) *LeaderboardController {
	return &LeaderboardController{LeaderboardService: leaderboardService}
}

type submitRequest struct {
	Name       string `json:"name" binding:"required"`
	Score      *int   `json:"score" binding:"required"`
	Difficulty string `json:"difficulty" binding:"required"`
}

// @Summary 查询排行榜
// @Description 返回指定难度的前10名，按分数降序、同分先达成者在前
// @Tags 排行榜
// @Produce json
// @Param difficulty query string false "难度标签，默认 beginner"
// @Success 200 {array} model.LeaderboardEntry
// @Router /leaderboard [get]
func (c *LeaderboardController) GetLeaderboard(ctx *gin.Context) {
	difficulty := ctx.Query("difficulty")

	entries, err := c.LeaderboardService.Top(difficulty)
	if err != nil {
		logger.Log.Error("leaderboard query failed",
			zap.String("difficulty", difficulty),
			zap.Error(err))
		// 客户端约定：出错也返回数组
		ctx.JSON(http.StatusInternalServerError, []model.LeaderboardEntry{})
		return
	}

	ctx.JSON(http.StatusOK, entries)
}

// @Summary 提交成绩
// @Description 同名同难度只保留最高分，低于已有分数的提交不落库
// @Tags 排行榜
// @Accept json
// @Produce json
// @Param submission body submitRequest true "成绩"
// @Success 200 {object} map[string]interface{}
// @Router /leaderboard [post]
func (c *LeaderboardController) SubmitScore(ctx *gin.Context) {
	var req submitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": util.ErrMissingFields.Error()})
		return
	}

	outcome, err := c.LeaderboardService.Submit(req.Name, *req.Score, req.Difficulty)
	if err != nil {
		if errors.Is(err, util.ErrMissingFields) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Log.Error("score submit failed",
			zap.String("name", req.Name),
			zap.String("difficulty", req.Difficulty),
			zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	switch {
	case outcome.Inserted:
		logger.Log.Info("score inserted",
			zap.String("name", req.Name),
			zap.Int("score", *req.Score),
			zap.String("difficulty", req.Difficulty),
			zap.Uint("id", outcome.ID))
		ctx.JSON(http.StatusOK, gin.H{"success": true, "inserted": true, "id": outcome.ID})
	case outcome.Updated:
		logger.Log.Info("score updated",
			zap.String("name", req.Name),
			zap.Int("score", *req.Score),
			zap.String("difficulty", req.Difficulty))
		ctx.JSON(http.StatusOK, gin.H{"success": true, "updated": true})
	default:
		ctx.JSON(http.StatusOK, gin.H{"success": false, "message": outcome.Message})
	}
}
