package cron

import (
	"Birdseye/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine         *cron.Cron
	accountSyncJob *job.AccountSyncJob
}

func NewCronManager(accountSyncJob *job.AccountSyncJob) *Manager {
	return &Manager{
		engine:         cron.New(cron.WithSeconds()),
		accountSyncJob: accountSyncJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob("@daily", s.accountSyncJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("cron engine started")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("cron engine stopped")
	s.engine.Stop()
}
