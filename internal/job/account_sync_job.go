package job

import (
	"Birdseye/internal/pkg/logger"
	"Birdseye/internal/repository"
	"Birdseye/internal/service"
	log "log/slog"

	"github.com/google/uuid"
)

// AccountSyncJob 每日对所有已绑定账号做全量同步与分析
// 单个账号失败只记日志，不影响其余账号
type AccountSyncJob struct {
	xAccountRepo repository.XAccountRepo
	syncService  service.SyncService
}

func NewAccountSyncJob(xAccountRepo repository.XAccountRepo, syncService service.SyncService) *AccountSyncJob {
	return &AccountSyncJob{
		xAccountRepo: xAccountRepo,
		syncService:  syncService,
	}
}

func (s *AccountSyncJob) Run() {
	ctx := logger.NewTraceContext("job-account-sync-" + uuid.NewString())

	accounts, err := s.xAccountRepo.GetAll(ctx)
	if err != nil {
		log.ErrorContext(ctx, "account sync job: list accounts failed", "err", err)
		return
	}

	log.InfoContext(ctx, "AccountSyncJob processing", "account_count", len(accounts))

	for _, account := range accounts {
		s.syncService.SyncAndAnalyze(ctx, account)
	}

	log.InfoContext(ctx, "AccountSyncJob finished", "account_count", len(accounts))
}
