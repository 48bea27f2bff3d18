package dto

import "time"

// AuthorizeURLDTO 授权跳转地址
type AuthorizeURLDTO struct {
	AuthURL string `json:"authUrl"`
}

// XAccountDTO 已绑定账号卡片，不含令牌
type XAccountDTO struct {
	ID              string     `json:"id"`
	XUserID         string     `json:"xUserId"`
	XUsername       string     `json:"xUsername"`
	XDisplayName    string     `json:"xDisplayName"`
	ProfileImageURL string     `json:"profileImageUrl,omitempty"`
	FollowersCount  int        `json:"followersCount"`
	FollowingCount  int        `json:"followingCount"`
	LastSyncedAt    *time.Time `json:"lastSyncedAt,omitempty"`
}

// XAuthStatusDTO 绑定状态
type XAuthStatusDTO struct {
	Connected bool         `json:"connected"`
	Account   *XAccountDTO `json:"account,omitempty"`
}
