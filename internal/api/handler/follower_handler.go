package handler

import (
	"Birdseye/internal/api/dto"
	"Birdseye/internal/pkg/logger"
	"Birdseye/internal/pkg/response"
	"Birdseye/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FollowerHandler struct {
	syncSvc      service.SyncService
	analyticsSvc service.AnalyticsService
}

func NewFollowerHandler(syncSvc service.SyncService, analyticsSvc service.AnalyticsService) *FollowerHandler {
	return &FollowerHandler{
		syncSvc:      syncSvc,
		analyticsSvc: analyticsSvc,
	}
}

// Sync 立即返回 processing，同步在带新 trace id 的后台上下文里执行
func (s *FollowerHandler) Sync(c *gin.Context) {
	userID := c.GetString("user_id")
	account, err := s.syncSvc.AccountForUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	jobCtx := logger.NewTraceContext(uuid.NewString())
	go s.syncSvc.SyncAndAnalyze(jobCtx, account)

	response.Success(c, dto.SyncStatusDTO{Status: "processing"})
}

func (s *FollowerHandler) NonFollowers(c *gin.Context) {
	userID := c.GetString("user_id")
	result, err := s.analyticsSvc.GetNonFollowers(c.Request.Context(), userID, c.Query("sortBy"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *FollowerHandler) Inactive(c *gin.Context) {
	userID := c.GetString("user_id")
	result, err := s.analyticsSvc.GetInactiveFollowers(c.Request.Context(), userID, c.Query("activityLevel"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
