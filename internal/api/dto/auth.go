package dto

import "time"

// RegisterDTO 注册
type RegisterDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Username string `json:"username" validate:"required,min=3,max=30"`
}

// LoginDTO 登录
type LoginDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserDTO 用户（不含密码）
type UserDTO struct {
	ID              string     `json:"id"`
	Email           string     `json:"email"`
	Username        string     `json:"username"`
	Role            string     `json:"role"`
	XUserID         *string    `json:"xUserId,omitempty"`
	DisplayName     string     `json:"displayName,omitempty"`
	ProfileImageURL string     `json:"profileImageUrl,omitempty"`
	CreatedAt       *time.Time `json:"createdAt,omitempty"`
}

// AuthResultDTO 注册/登录返回
type AuthResultDTO struct {
	Token string   `json:"token"`
	User  *UserDTO `json:"user"`
}
