package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// XAccount 已绑定的 X 账号，持有当前 OAuth 令牌与缓存的粉丝计数
// 每次重新授权回调都会覆盖令牌
type XAccount struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID          primitive.ObjectID `bson:"user_id" json:"userId"`
	XUserID         string             `bson:"x_user_id" json:"xUserId"`
	XUsername       string             `bson:"x_username" json:"xUsername"`
	XDisplayName    string             `bson:"x_display_name" json:"xDisplayName"`
	AccessToken     string             `bson:"access_token" json:"-"`
	RefreshToken    string             `bson:"refresh_token,omitempty" json:"-"`
	TokenExpiresAt  *time.Time         `bson:"token_expires_at,omitempty" json:"tokenExpiresAt,omitempty"`
	ProfileImageURL string             `bson:"profile_image_url,omitempty" json:"profileImageUrl,omitempty"`
	FollowersCount  int                `bson:"followers_count" json:"followersCount"`
	FollowingCount  int                `bson:"following_count" json:"followingCount"`
	LastSyncedAt    *time.Time         `bson:"last_synced_at,omitempty" json:"lastSyncedAt,omitempty"`
	CreatedAt       time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updated_at" json:"updatedAt"`
}
