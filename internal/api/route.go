package api

import (
	"Birdseye/internal/api/middleware"
	"Birdseye/internal/model"
	"Birdseye/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	// 存活探针，不挂鉴权
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiGroup := r.Group("/api")
	{
		authGroup := apiGroup.Group("/auth")
		{
			authGroup.POST("/register", group.AuthHandler.Register)
			authGroup.POST("/login", group.AuthHandler.Login)

			sessionGroup := authGroup.Group("")
			sessionGroup.Use(middleware.AuthMiddleware())
			{
				sessionGroup.GET("/profile", group.AuthHandler.GetProfile)
				sessionGroup.POST("/logout", group.AuthHandler.Logout)
			}

			xGroup := authGroup.Group("/x")
			{
				// 发起授权可匿名：带 token 则绑定当前用户
				authOptGroup := xGroup.Group("")
				authOptGroup.Use(middleware.AuthOptionalMiddleware())
				{
					authOptGroup.GET("/authorize", group.XAuthHandler.Authorize)
				}

				xGroup.GET("/callback", group.XAuthHandler.Callback)

				xAuthGroup := xGroup.Group("")
				xAuthGroup.Use(middleware.AuthMiddleware())
				{
					xAuthGroup.GET("/status", group.XAuthHandler.Status)
					xAuthGroup.DELETE("/disconnect", group.XAuthHandler.Disconnect)
				}
			}
		}

		followerGroup := apiGroup.Group("/followers")
		followerGroup.Use(middleware.AuthMiddleware())
		{
			followerGroup.POST("/sync", group.FollowerHandler.Sync)
			followerGroup.GET("/non-followers", group.FollowerHandler.NonFollowers)
			followerGroup.GET("/inactive", group.FollowerHandler.Inactive)
		}

		analyticsGroup := apiGroup.Group("/analytics")
		analyticsGroup.Use(middleware.AuthMiddleware())
		{
			analyticsGroup.GET("/engagement", group.AnalyticsHandler.Engagement)
			analyticsGroup.GET("/growth", group.AnalyticsHandler.Growth)
			analyticsGroup.GET("/demographics", group.AnalyticsHandler.Demographics)
		}

		whitelistGroup := apiGroup.Group("/whitelist")
		whitelistGroup.Use(middleware.AuthMiddleware())
		{
			whitelistGroup.GET("", group.WhitelistHandler.List)
			whitelistGroup.POST("", group.WhitelistHandler.Add)
			whitelistGroup.DELETE("/:id", group.WhitelistHandler.Remove)
		}

		actionGroup := apiGroup.Group("/actions")
		actionGroup.Use(middleware.AuthMiddleware())
		{
			actionGroup.POST("/unfollow", group.ActionHandler.Unfollow)
		}

		adminGroup := apiGroup.Group("/admin")
		adminGroup.Use(middleware.AuthMiddleware(), middleware.CheckRoles(model.RoleAdmin))
		{
			adminGroup.GET("/users", group.AdminHandler.ListUsers)
			adminGroup.GET("/health", group.AdminHandler.Health)
		}
	}

	return r
}
