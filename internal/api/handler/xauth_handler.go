package handler

import (
	"Birdseye/internal/api/config"
	"Birdseye/internal/pkg/response"
	"Birdseye/internal/service"
	"fmt"
	log "log/slog"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
)

type XAuthHandler struct {
	xauthSvc service.XAuthService
}

func NewXAuthHandler(xauthSvc service.XAuthService) *XAuthHandler {
	return &XAuthHandler{xauthSvc: xauthSvc}
}

// Authorize 可选登录：带 token 时绑定到当前用户，否则回调阶段按 X 身份落号
func (s *XAuthHandler) Authorize(c *gin.Context) {
	userID := c.GetString("user_id")
	result, err := s.xauthSvc.GetAuthorizeURL(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Callback 浏览器重定向中途，失败一律 302 回前端而不是 JSON 错误
func (s *XAuthHandler) Callback(c *gin.Context) {
	code := c.Query("code")
	state := c.Query("state")
	if errParam := c.Query("error"); errParam != "" || code == "" || state == "" {
		s.redirectFailure(c)
		return
	}

	token, err := s.xauthSvc.HandleCallback(c.Request.Context(), code, state)
	if err != nil {
		log.Error("xauth callback failed", "err", err)
		s.redirectFailure(c)
		return
	}

	target := fmt.Sprintf("%s/auth/callback?token=%s&connected=true",
		config.Cfg.Frontend.URL, url.QueryEscape(token))
	c.Redirect(http.StatusFound, target)
}

func (s *XAuthHandler) redirectFailure(c *gin.Context) {
	c.Redirect(http.StatusFound, config.Cfg.Frontend.URL+"/dashboard?error=auth_failed")
}

func (s *XAuthHandler) Disconnect(c *gin.Context) {
	userID := c.GetString("user_id")
	if err := s.xauthSvc.Disconnect(c.Request.Context(), userID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *XAuthHandler) Status(c *gin.Context) {
	userID := c.GetString("user_id")
	status, err := s.xauthSvc.GetStatus(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, status)
}
