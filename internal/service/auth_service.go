package service

import (
	"Birdseye/internal/api/config"
	"Birdseye/internal/api/dto"
	"Birdseye/internal/model"
	"Birdseye/internal/pkg/consts"
	"Birdseye/internal/pkg/redis"
	"Birdseye/internal/pkg/security"
	"Birdseye/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/jinzhu/copier"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AuthService interface {
	Register(ctx context.Context, regDTO *dto.RegisterDTO) (*dto.AuthResultDTO, error)
	Login(ctx context.Context, loginDTO *dto.LoginDTO) (*dto.AuthResultDTO, error)
	Logout(ctx context.Context, token string) error
	GetProfile(ctx context.Context, userID string) (*dto.UserDTO, error)
}

type AuthServiceImpl struct {
	userRepo repository.UserRepo
}

func NewAuthService(userRepo repository.UserRepo) AuthService {
	return &AuthServiceImpl{userRepo: userRepo}
}

func (s *AuthServiceImpl) Register(ctx context.Context, regDTO *dto.RegisterDTO) (*dto.AuthResultDTO, error) {
	existing, err := s.userRepo.GetUserByEmail(ctx, regDTO.Email)
	if err != nil {
		log.Error("register: lookup by email failed", "err", err)
		return nil, UnExpectedError
	}
	if existing != nil {
		return nil, ErrEmailExists
	}

	existing, err = s.userRepo.GetUserByUsername(ctx, regDTO.Username)
	if err != nil {
		log.Error("register: lookup by username failed", "err", err)
		return nil, UnExpectedError
	}
	if existing != nil {
		return nil, ErrUsernameExists
	}

	passwordHash, err := security.HashPassword(regDTO.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:    regDTO.Email,
		Password: passwordHash,
		Username: regDTO.Username,
		Role:     model.RoleUser,
	}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		log.Error("register: create user failed", "err", err)
		return nil, UnExpectedError
	}

	return s.authResult(user)
}

func (s *AuthServiceImpl) Login(ctx context.Context, loginDTO *dto.LoginDTO) (*dto.AuthResultDTO, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, loginDTO.Email)
	if err != nil {
		log.Error("login: lookup by email failed", "err", err)
		return nil, UnExpectedError
	}
	// 未注册与密码错误返回同一错误，避免探测邮箱是否存在
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if !security.CheckPasswordHash(loginDTO.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	return s.authResult(user)
}

func (s *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return err
	}
	// 黑名单保留到 token 自身过期为止
	ttl := time.Duration(config.Cfg.JWT.ExpireHours) * time.Hour
	return redis.SetWithExpiration(ctx, consts.TokenBlacklistKey+signature, true, ttl)
}

func (s *AuthServiceImpl) GetProfile(ctx context.Context, userID string) (*dto.UserDTO, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	user, err := s.userRepo.GetUserByID(ctx, oid)
	if err != nil {
		log.Error("profile: lookup failed", "err", err)
		return nil, UnExpectedError
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return userToDTO(user)
}

func (s *AuthServiceImpl) authResult(user *model.User) (*dto.AuthResultDTO, error) {
	token, err := security.GenerateToken(user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		return nil, err
	}
	userDTO, err := userToDTO(user)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResultDTO{Token: token, User: userDTO}, nil
}

func userToDTO(user *model.User) (*dto.UserDTO, error) {
	userDTO := &dto.UserDTO{}
	if err := copier.Copy(userDTO, user); err != nil {
		return nil, err
	}
	userDTO.ID = user.ID.Hex()
	userDTO.CreatedAt = &user.CreatedAt
	return userDTO, nil
}
