package handler

import (
	"Birdseye/internal/pkg/response"
	"Birdseye/internal/service"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminSvc service.AdminService
}

func NewAdminHandler(adminSvc service.AdminService) *AdminHandler {
	return &AdminHandler{adminSvc: adminSvc}
}

func (s *AdminHandler) ListUsers(c *gin.Context) {
	users, err := s.adminSvc.ListUsers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, users)
}

func (s *AdminHandler) Health(c *gin.Context) {
	health, err := s.adminSvc.Health(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, health)
}
