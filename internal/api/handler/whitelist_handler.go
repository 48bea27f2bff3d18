package handler

import (
	"Birdseye/internal/api/dto"
	"Birdseye/internal/pkg/response"
	"Birdseye/internal/pkg/util"
	"Birdseye/internal/service"

	"github.com/gin-gonic/gin"
)

type WhitelistHandler struct {
	whitelistSvc service.WhitelistService
}

func NewWhitelistHandler(whitelistSvc service.WhitelistService) *WhitelistHandler {
	return &WhitelistHandler{whitelistSvc: whitelistSvc}
}

func (s *WhitelistHandler) List(c *gin.Context) {
	userID := c.GetString("user_id")
	entries, err := s.whitelistSvc.List(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, entries)
}

func (s *WhitelistHandler) Add(c *gin.Context) {
	userID := c.GetString("user_id")
	var addDTO dto.AddWhitelistDTO
	if err := c.ShouldBind(&addDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&addDTO); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}
	entry, err := s.whitelistSvc.Add(c.Request.Context(), userID, &addDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, entry)
}

func (s *WhitelistHandler) Remove(c *gin.Context) {
	userID := c.GetString("user_id")
	if err := s.whitelistSvc.Remove(c.Request.Context(), userID, c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
