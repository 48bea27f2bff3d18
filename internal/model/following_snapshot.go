package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FollowingSnapshot 某次同步抓取到的单个关注对象，按次追加、从不更新
type FollowingSnapshot struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	XAccountID        primitive.ObjectID `bson:"x_account_id" json:"xAccountId"`
	FollowingXUserID  string             `bson:"following_x_user_id" json:"followingXUserId"`
	Username          string             `bson:"username" json:"username"`
	DisplayName       string             `bson:"display_name" json:"displayName"`
	ProfileImageURL   string             `bson:"profile_image_url,omitempty" json:"profileImageUrl,omitempty"`
	Bio               string             `bson:"bio,omitempty" json:"bio,omitempty"`
	FollowersCount    int                `bson:"followers_count" json:"followersCount"`
	FollowingCount    int                `bson:"following_count" json:"followingCount"`
	Location          string             `bson:"location,omitempty" json:"location,omitempty"`
	AccountCreatedAt  *time.Time         `bson:"account_created_at,omitempty" json:"accountCreatedAt,omitempty"`
	Verified          bool               `bson:"verified" json:"verified"`
	FollowedAt        *time.Time         `bson:"followed_at,omitempty" json:"followedAt,omitempty"`
	SnapshotDate      time.Time          `bson:"snapshot_date" json:"snapshotDate"`
	CreatedAt         time.Time          `bson:"created_at" json:"createdAt"`
}
