package wire

import (
	"Birdseye/internal/api"
	"Birdseye/internal/api/config"
	"Birdseye/internal/api/handler"
	"Birdseye/internal/job"
	"Birdseye/internal/pkg/cron"
	"Birdseye/internal/pkg/xapi"
	"Birdseye/internal/repository"
	"Birdseye/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router      *gin.Engine
	DB          *mongo.Database
	CronManager *cron.Manager
}

func BuildApplication(db *mongo.Database, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	xAccountRepo := repository.NewXAccountRepo(db)
	followerRepo := repository.NewFollowerSnapshotRepo(db)
	followingRepo := repository.NewFollowingSnapshotRepo(db)
	growthRepo := repository.NewGrowthStatRepo(db)
	engagementRepo := repository.NewEngagementStatRepo(db)
	inactivityRepo := repository.NewInactivityScoreRepo(db)
	whitelistRepo := repository.NewWhitelistRepo(db)

	xClient := xapi.NewClient(cfg.XAPI)

	authService := service.NewAuthService(userRepo)
	xauthService := service.NewXAuthService(userRepo, xAccountRepo, xClient)
	inactivityService := service.NewInactivityService(followerRepo, inactivityRepo, xauthService, xClient)
	engagementService := service.NewEngagementService(followerRepo, engagementRepo, xauthService, xClient)
	syncService := service.NewSyncService(
		xAccountRepo, followerRepo, followingRepo, growthRepo,
		xauthService, inactivityService, engagementService, xClient,
	)
	analyticsService := service.NewAnalyticsService(
		xAccountRepo, followerRepo, followingRepo,
		growthRepo, engagementRepo, inactivityRepo,
	)
	whitelistService := service.NewWhitelistService(xAccountRepo, whitelistRepo)
	actionService := service.NewActionService(xAccountRepo, whitelistService, xClient)
	adminService := service.NewAdminService(userRepo, xAccountRepo, db)

	handlers := &api.HandlersGroup{
		AuthHandler:      handler.NewAuthHandler(authService),
		XAuthHandler:     handler.NewXAuthHandler(xauthService),
		FollowerHandler:  handler.NewFollowerHandler(syncService, analyticsService),
		AnalyticsHandler: handler.NewAnalyticsHandler(analyticsService),
		WhitelistHandler: handler.NewWhitelistHandler(whitelistService),
		ActionHandler:    handler.NewActionHandler(actionService),
		AdminHandler:     handler.NewAdminHandler(adminService),
	}

	router := api.SetupRouter(handlers)

	accountSyncJob := job.NewAccountSyncJob(xAccountRepo, syncService)
	cronMgr := cron.NewCronManager(accountSyncJob)

	return &ApplicationContainer{
		Router:      router,
		DB:          db,
		CronManager: cronMgr,
	}, nil
}
