package api

import "Birdseye/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	AuthHandler      *handler.AuthHandler
	XAuthHandler     *handler.XAuthHandler
	FollowerHandler  *handler.FollowerHandler
	AnalyticsHandler *handler.AnalyticsHandler
	WhitelistHandler *handler.WhitelistHandler
	ActionHandler    *handler.ActionHandler
	AdminHandler     *handler.AdminHandler
}
