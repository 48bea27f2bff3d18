package service

import (
	"Birdseye/internal/api/config"
	"Birdseye/internal/api/dto"
	"Birdseye/internal/model"
	"Birdseye/internal/repository"
	"context"
	log "log/slog"

	"github.com/jinzhu/copier"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type AdminService interface {
	ListUsers(ctx context.Context) ([]*dto.AdminUserDTO, error)
	Health(ctx context.Context) (*dto.HealthDTO, error)
}

type AdminServiceImpl struct {
	userRepo     repository.UserRepo
	xAccountRepo repository.XAccountRepo
	db           *mongo.Database
}

func NewAdminService(userRepo repository.UserRepo, xAccountRepo repository.XAccountRepo, db *mongo.Database) AdminService {
	return &AdminServiceImpl{
		userRepo:     userRepo,
		xAccountRepo: xAccountRepo,
		db:           db,
	}
}

// ListUsers 全量用户加各自绑定的 X 账号卡片
func (s *AdminServiceImpl) ListUsers(ctx context.Context) ([]*dto.AdminUserDTO, error) {
	users, err := s.userRepo.GetAllUsers(ctx)
	if err != nil {
		log.Error("admin: user list failed", "err", err)
		return nil, UnExpectedError
	}

	rows := make([]*dto.AdminUserDTO, 0, len(users))
	for _, user := range users {
		userDTO, err := userToDTO(user)
		if err != nil {
			return nil, err
		}
		row := &dto.AdminUserDTO{User: userDTO}

		account, err := s.xAccountRepo.GetByUserID(ctx, user.ID)
		if err != nil {
			log.Error("admin: account lookup failed", "err", err)
			return nil, UnExpectedError
		}
		if account != nil {
			accountDTO := &dto.XAccountDTO{}
			if err := copier.Copy(accountDTO, account); err != nil {
				return nil, err
			}
			accountDTO.ID = account.ID.Hex()
			row.Account = accountDTO
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *AdminServiceImpl) Health(ctx context.Context) (*dto.HealthDTO, error) {
	health := &dto.HealthDTO{
		Status:      "ok",
		Database:    "up",
		Environment: config.Cfg.Server.Environment,
	}

	if err := s.db.Client().Ping(ctx, readpref.Primary()); err != nil {
		health.Status = "degraded"
		health.Database = "down"
	}

	userCount, err := s.userRepo.CountUsers(ctx)
	if err != nil {
		log.Error("admin: user count failed", "err", err)
		return nil, UnExpectedError
	}
	adminCount, err := s.userRepo.CountUsersByRole(ctx, model.RoleAdmin)
	if err != nil {
		log.Error("admin: admin count failed", "err", err)
		return nil, UnExpectedError
	}
	linked, err := s.xAccountRepo.Count(ctx)
	if err != nil {
		log.Error("admin: account count failed", "err", err)
		return nil, UnExpectedError
	}

	health.UserCount = userCount
	health.AdminCount = adminCount
	health.LinkedAccounts = linked
	return health, nil
}
