package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FollowerSnapshot 某次同步抓取到的单个粉丝，按次追加、从不更新
// "最新一次同步" 定义为最近 24 小时窗口内的行
type FollowerSnapshot struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	XAccountID        primitive.ObjectID `bson:"x_account_id" json:"xAccountId"`
	FollowerXUserID   string             `bson:"follower_x_user_id" json:"followerXUserId"`
	Username          string             `bson:"username" json:"username"`
	DisplayName       string             `bson:"display_name" json:"displayName"`
	ProfileImageURL   string             `bson:"profile_image_url,omitempty" json:"profileImageUrl,omitempty"`
	Bio               string             `bson:"bio,omitempty" json:"bio,omitempty"`
	FollowersCount    int                `bson:"followers_count" json:"followersCount"`
	FollowingCount    int                `bson:"following_count" json:"followingCount"`
	Location          string             `bson:"location,omitempty" json:"location,omitempty"`
	AccountCreatedAt  *time.Time         `bson:"account_created_at,omitempty" json:"accountCreatedAt,omitempty"`
	Verified          bool               `bson:"verified" json:"verified"`
	SnapshotDate      time.Time          `bson:"snapshot_date" json:"snapshotDate"`
	CreatedAt         time.Time          `bson:"created_at" json:"createdAt"`
}
