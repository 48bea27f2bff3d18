package service

import (
	"Birdseye/internal/api/dto"
	"Birdseye/internal/model"
	"Birdseye/internal/repository"
	"context"
	log "log/slog"

	"github.com/jinzhu/copier"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type WhitelistService interface {
	List(ctx context.Context, userID string) ([]*dto.WhitelistEntryDTO, error)
	Add(ctx context.Context, userID string, addDTO *dto.AddWhitelistDTO) (*dto.WhitelistEntryDTO, error)
	Remove(ctx context.Context, userID, entryID string) error
	IsWhitelisted(ctx context.Context, accountID primitive.ObjectID, xUserID string) (bool, error)
}

type WhitelistServiceImpl struct {
	xAccountRepo  repository.XAccountRepo
	whitelistRepo repository.WhitelistRepo
}

func NewWhitelistService(xAccountRepo repository.XAccountRepo, whitelistRepo repository.WhitelistRepo) WhitelistService {
	return &WhitelistServiceImpl{
		xAccountRepo:  xAccountRepo,
		whitelistRepo: whitelistRepo,
	}
}

func (s *WhitelistServiceImpl) List(ctx context.Context, userID string) ([]*dto.WhitelistEntryDTO, error) {
	account, err := s.accountForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries, err := s.whitelistRepo.Find(ctx, account.ID)
	if err != nil {
		log.Error("whitelist: list failed", "err", err)
		return nil, UnExpectedError
	}

	rows := make([]*dto.WhitelistEntryDTO, 0, len(entries))
	for _, entry := range entries {
		row, err := whitelistEntryToDTO(entry)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *WhitelistServiceImpl) Add(ctx context.Context, userID string, addDTO *dto.AddWhitelistDTO) (*dto.WhitelistEntryDTO, error) {
	account, err := s.accountForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	existing, err := s.whitelistRepo.Get(ctx, account.ID, addDTO.XUserID)
	if err != nil {
		log.Error("whitelist: lookup failed", "err", err)
		return nil, UnExpectedError
	}
	if existing != nil {
		return nil, ErrAlreadyWhitelisted
	}

	entry := &model.WhitelistedAccount{
		XAccountID:  account.ID,
		XUserID:     addDTO.XUserID,
		Username:    addDTO.Username,
		DisplayName: addDTO.DisplayName,
		Reason:      addDTO.Reason,
	}
	if err := s.whitelistRepo.Create(ctx, entry); err != nil {
		log.Error("whitelist: create failed", "err", err)
		return nil, UnExpectedError
	}

	return whitelistEntryToDTO(entry)
}

// Remove 按行 ID 删除，带账号过滤防越权，不存在返回 404
func (s *WhitelistServiceImpl) Remove(ctx context.Context, userID, entryID string) error {
	account, err := s.accountForUser(ctx, userID)
	if err != nil {
		return err
	}

	oid, err := primitive.ObjectIDFromHex(entryID)
	if err != nil {
		return ErrWhitelistNotFound
	}

	entry, err := s.whitelistRepo.GetByID(ctx, oid, account.ID)
	if err != nil {
		log.Error("whitelist: lookup failed", "err", err)
		return UnExpectedError
	}
	if entry == nil {
		return ErrWhitelistNotFound
	}

	if err := s.whitelistRepo.Delete(ctx, entry.ID); err != nil {
		log.Error("whitelist: delete failed", "err", err)
		return UnExpectedError
	}
	return nil
}

func (s *WhitelistServiceImpl) IsWhitelisted(ctx context.Context, accountID primitive.ObjectID, xUserID string) (bool, error) {
	entry, err := s.whitelistRepo.Get(ctx, accountID, xUserID)
	if err != nil {
		log.Error("whitelist: lookup failed", "err", err)
		return false, UnExpectedError
	}
	return entry != nil, nil
}

func (s *WhitelistServiceImpl) accountForUser(ctx context.Context, userID string) (*model.XAccount, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	account, err := s.xAccountRepo.GetByUserID(ctx, oid)
	if err != nil {
		log.Error("whitelist: account lookup failed", "err", err)
		return nil, UnExpectedError
	}
	if account == nil {
		return nil, ErrXAccountNotConnected
	}
	return account, nil
}

func whitelistEntryToDTO(entry *model.WhitelistedAccount) (*dto.WhitelistEntryDTO, error) {
	row := &dto.WhitelistEntryDTO{}
	if err := copier.Copy(row, entry); err != nil {
		return nil, err
	}
	row.ID = entry.ID.Hex()
	return row, nil
}
