package dto

import "time"

// SyncStatusDTO 异步同步回执
type SyncStatusDTO struct {
	Status string `json:"status"`
}

// FollowerDTO 粉丝/关注对象快照行
type FollowerDTO struct {
	XUserID         string     `json:"xUserId"`
	Username        string     `json:"username"`
	DisplayName     string     `json:"displayName"`
	ProfileImageURL string     `json:"profileImageUrl,omitempty"`
	Bio             string     `json:"bio,omitempty"`
	FollowersCount  int        `json:"followersCount"`
	FollowingCount  int        `json:"followingCount"`
	Location        string     `json:"location,omitempty"`
	Verified        bool       `json:"verified"`
	FollowedAt      *time.Time `json:"followedAt,omitempty"`
}

// NonFollowersDTO 未回关列表
type NonFollowersDTO struct {
	Total int            `json:"total"`
	Sort  string         `json:"sort"`
	Users []*FollowerDTO `json:"users"`
}
