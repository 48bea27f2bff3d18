package handler

import (
	"Birdseye/internal/pkg/consts"
	"Birdseye/internal/pkg/response"
	"Birdseye/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsSvc service.AnalyticsService
}

func NewAnalyticsHandler(analyticsSvc service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsSvc: analyticsSvc}
}

func (s *AnalyticsHandler) Engagement(c *gin.Context) {
	userID := c.GetString("user_id")
	result, err := s.analyticsSvc.GetEngagementSummary(c.Request.Context(), userID, c.Query("tier"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *AnalyticsHandler) Growth(c *gin.Context) {
	userID := c.GetString("user_id")

	days := consts.DefaultGrowthWindowDays
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			response.Fail(c, response.BadRequest, "days must be a positive integer")
			return
		}
		days = parsed
	}

	result, err := s.analyticsSvc.GetGrowthSummary(c.Request.Context(), userID, days)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *AnalyticsHandler) Demographics(c *gin.Context) {
	userID := c.GetString("user_id")
	result, err := s.analyticsSvc.GetDemographics(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
