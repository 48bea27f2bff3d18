package service

import (
	"Birdseye/internal/api/dto"
	"Birdseye/internal/model"
	"Birdseye/internal/pkg/consts"
	"Birdseye/internal/pkg/security"
	"Birdseye/internal/pkg/xapi"
	"Birdseye/internal/repository"
	"context"
	"fmt"
	log "log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type XAuthService interface {
	GetAuthorizeURL(ctx context.Context, userID string) (*dto.AuthorizeURLDTO, error)
	HandleCallback(ctx context.Context, code, state string) (string, error)
	Disconnect(ctx context.Context, userID string) error
	GetStatus(ctx context.Context, userID string) (*dto.XAuthStatusDTO, error)
	EnsureFreshToken(ctx context.Context, account *model.XAccount) (*model.XAccount, error)
}

type XAuthServiceImpl struct {
	userRepo     repository.UserRepo
	xAccountRepo repository.XAccountRepo
	client       xapi.Client
}

func NewXAuthService(userRepo repository.UserRepo, xAccountRepo repository.XAccountRepo, client xapi.Client) XAuthService {
	return &XAuthServiceImpl{
		userRepo:     userRepo,
		xAccountRepo: xAccountRepo,
		client:       client,
	}
}

// GetAuthorizeURL 生成 PKCE 授权地址
// userID 可为空：未登录发起时回调阶段按 X 身份找号或建号
func (s *XAuthServiceImpl) GetAuthorizeURL(ctx context.Context, userID string) (*dto.AuthorizeURLDTO, error) {
	verifier, err := security.GenerateCodeVerifier()
	if err != nil {
		return nil, err
	}

	state, err := security.GenerateStateToken(verifier, userID)
	if err != nil {
		return nil, err
	}

	challenge := security.CodeChallenge(verifier)
	return &dto.AuthorizeURLDTO{AuthURL: s.client.AuthorizeURL(state, challenge)}, nil
}

// HandleCallback 校验 state、换取令牌、找号或建号并落库，返回会话 JWT
func (s *XAuthServiceImpl) HandleCallback(ctx context.Context, code, state string) (string, error) {
	claims, err := security.ValidateStateToken(state)
	if err != nil {
		return "", ErrInvalidState
	}

	tokens, err := s.client.ExchangeCode(ctx, code, claims.CodeVerifier)
	if err != nil {
		log.Error("xauth: code exchange failed", "err", err)
		return "", ErrTokenExchangeFailed
	}

	profile, err := s.client.GetUserProfile(ctx, tokens.AccessToken)
	if err != nil {
		log.Error("xauth: profile fetch failed", "err", err)
		return "", ErrTokenExchangeFailed
	}

	user, err := s.resolveUser(ctx, claims.UserID, profile)
	if err != nil {
		return "", err
	}

	if err := s.upsertAccount(ctx, user, profile, tokens); err != nil {
		return "", err
	}

	return security.GenerateToken(user.ID.Hex(), user.Email, user.Role)
}

// resolveUser state 带用户时绑定到该用户，否则按 X 身份找号或自动建号
func (s *XAuthServiceImpl) resolveUser(ctx context.Context, userID string, profile *xapi.XUser) (*model.User, error) {
	var user *model.User
	var err error

	if userID != "" {
		oid, idErr := primitive.ObjectIDFromHex(userID)
		if idErr != nil {
			return nil, ErrInvalidState
		}
		user, err = s.userRepo.GetUserByID(ctx, oid)
	} else {
		user, err = s.userRepo.GetUserByXUserID(ctx, profile.ID)
	}
	if err != nil {
		log.Error("xauth: user lookup failed", "err", err)
		return nil, UnExpectedError
	}

	if user == nil {
		randomPassword, hashErr := security.HashPassword(uuid.NewString())
		if hashErr != nil {
			return nil, hashErr
		}
		user = &model.User{
			Email:    fmt.Sprintf("%s@%s", profile.Username, consts.ProvisionedEmailDomain),
			Password: randomPassword,
			Username: profile.Username,
			Role:     model.RoleUser,
		}
		if err := s.userRepo.CreateUser(ctx, user); err != nil {
			log.Error("xauth: auto-provision failed", "err", err)
			return nil, UnExpectedError
		}
	}

	user.XUserID = &profile.ID
	user.DisplayName = profile.Name
	user.ProfileImageURL = profile.ProfileImageURL
	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		log.Error("xauth: user update failed", "err", err)
		return nil, UnExpectedError
	}
	return user, nil
}

// upsertAccount 重新授权覆盖令牌与缓存计数
func (s *XAuthServiceImpl) upsertAccount(ctx context.Context, user *model.User, profile *xapi.XUser, tokens *xapi.TokenResponse) error {
	account, err := s.xAccountRepo.GetByXUserID(ctx, profile.ID)
	if err != nil {
		log.Error("xauth: account lookup failed", "err", err)
		return UnExpectedError
	}
	if account == nil {
		account = &model.XAccount{}
	}

	expiresAt := time.Now().Add(time.Duration(tokens.ExpiresIn) * time.Second)

	account.UserID = user.ID
	account.XUserID = profile.ID
	account.XUsername = profile.Username
	account.XDisplayName = profile.Name
	account.AccessToken = tokens.AccessToken
	account.RefreshToken = tokens.RefreshToken
	account.TokenExpiresAt = &expiresAt
	account.ProfileImageURL = profile.ProfileImageURL
	account.FollowersCount = profile.PublicMetrics.FollowersCount
	account.FollowingCount = profile.PublicMetrics.FollowingCount

	if account.ID.IsZero() {
		err = s.xAccountRepo.Create(ctx, account)
	} else {
		err = s.xAccountRepo.Update(ctx, account)
	}
	if err != nil {
		log.Error("xauth: account upsert failed", "err", err)
		return UnExpectedError
	}
	return nil
}

func (s *XAuthServiceImpl) Disconnect(ctx context.Context, userID string) error {
	account, err := s.accountForUser(ctx, userID)
	if err != nil {
		return err
	}
	if err := s.xAccountRepo.Delete(ctx, account.ID); err != nil {
		log.Error("xauth: account delete failed", "err", err)
		return UnExpectedError
	}
	return nil
}

func (s *XAuthServiceImpl) GetStatus(ctx context.Context, userID string) (*dto.XAuthStatusDTO, error) {
	account, err := s.accountForUser(ctx, userID)
	if err != nil {
		if err == ErrXAccountNotConnected {
			return &dto.XAuthStatusDTO{Connected: false}, nil
		}
		return nil, err
	}

	accountDTO := &dto.XAccountDTO{}
	if err := copier.Copy(accountDTO, account); err != nil {
		return nil, err
	}
	accountDTO.ID = account.ID.Hex()

	return &dto.XAuthStatusDTO{Connected: true, Account: accountDTO}, nil
}

// EnsureFreshToken 访问令牌过期时用 refresh token 换新并落库
func (s *XAuthServiceImpl) EnsureFreshToken(ctx context.Context, account *model.XAccount) (*model.XAccount, error) {
	if account.TokenExpiresAt == nil || account.TokenExpiresAt.After(time.Now()) {
		return account, nil
	}
	if account.RefreshToken == "" {
		return nil, ErrTokenExchangeFailed
	}

	tokens, err := s.client.RefreshToken(ctx, account.RefreshToken)
	if err != nil {
		log.Error("xauth: token refresh failed", "x_user_id", account.XUserID, "err", err)
		return nil, ErrTokenExchangeFailed
	}

	expiresAt := time.Now().Add(time.Duration(tokens.ExpiresIn) * time.Second)
	account.AccessToken = tokens.AccessToken
	if tokens.RefreshToken != "" {
		account.RefreshToken = tokens.RefreshToken
	}
	account.TokenExpiresAt = &expiresAt

	if err := s.xAccountRepo.Update(ctx, account); err != nil {
		log.Error("xauth: refreshed token persist failed", "err", err)
		return nil, UnExpectedError
	}
	return account, nil
}

func (s *XAuthServiceImpl) accountForUser(ctx context.Context, userID string) (*model.XAccount, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	account, err := s.xAccountRepo.GetByUserID(ctx, oid)
	if err != nil {
		log.Error("xauth: account lookup failed", "err", err)
		return nil, UnExpectedError
	}
	if account == nil {
		return nil, ErrXAccountNotConnected
	}
	return account, nil
}
