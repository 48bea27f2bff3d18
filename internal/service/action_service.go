package service

import (
	"Birdseye/internal/api/dto"
	"Birdseye/internal/model"
	"Birdseye/internal/pkg/xapi"
	"Birdseye/internal/repository"
	"context"
	log "log/slog"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ActionService interface {
	Unfollow(ctx context.Context, userID string, unfollowDTO *dto.UnfollowDTO) (*dto.UnfollowResultDTO, error)
}

type ActionServiceImpl struct {
	xAccountRepo     repository.XAccountRepo
	whitelistService WhitelistService
	client           xapi.Client
}

func NewActionService(xAccountRepo repository.XAccountRepo, whitelistService WhitelistService, client xapi.Client) ActionService {
	return &ActionServiceImpl{
		xAccountRepo:     xAccountRepo,
		whitelistService: whitelistService,
		client:           client,
	}
}

// Unfollow 必须显式确认，白名单账号拒绝执行
func (s *ActionServiceImpl) Unfollow(ctx context.Context, userID string, unfollowDTO *dto.UnfollowDTO) (*dto.UnfollowResultDTO, error) {
	if unfollowDTO.TargetXUserID == "" || unfollowDTO.TargetUsername == "" {
		return nil, ErrTargetRequired
	}
	if !unfollowDTO.Confirmed {
		return nil, ErrConfirmationRequired
	}

	account, err := s.accountForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	whitelisted, err := s.whitelistService.IsWhitelisted(ctx, account.ID, unfollowDTO.TargetXUserID)
	if err != nil {
		return nil, err
	}
	if whitelisted {
		return nil, ErrTargetWhitelisted
	}

	// TODO: 等应用拿到 write 权限后改为真正调用 client.UnfollowUser
	log.Info("action: unfollow recorded",
		"x_user_id", account.XUserID,
		"target_x_user_id", unfollowDTO.TargetXUserID,
		"target_username", unfollowDTO.TargetUsername)

	return &dto.UnfollowResultDTO{
		TargetXUserID:  unfollowDTO.TargetXUserID,
		TargetUsername: unfollowDTO.TargetUsername,
		Unfollowed:     true,
	}, nil
}

func (s *ActionServiceImpl) accountForUser(ctx context.Context, userID string) (*model.XAccount, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	account, err := s.xAccountRepo.GetByUserID(ctx, oid)
	if err != nil {
		log.Error("action: account lookup failed", "err", err)
		return nil, UnExpectedError
	}
	if account == nil {
		return nil, ErrXAccountNotConnected
	}
	return account, nil
}
