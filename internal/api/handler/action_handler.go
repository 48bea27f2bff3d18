package handler

import (
	"Birdseye/internal/api/dto"
	"Birdseye/internal/pkg/response"
	"Birdseye/internal/service"

	"github.com/gin-gonic/gin"
)

type ActionHandler struct {
	actionSvc service.ActionService
}

func NewActionHandler(actionSvc service.ActionService) *ActionHandler {
	return &ActionHandler{actionSvc: actionSvc}
}

func (s *ActionHandler) Unfollow(c *gin.Context) {
	userID := c.GetString("user_id")
	var unfollowDTO dto.UnfollowDTO
	if err := c.ShouldBind(&unfollowDTO); err != nil {
		response.Error(c, err)
		return
	}
	result, err := s.actionSvc.Unfollow(c.Request.Context(), userID, &unfollowDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
