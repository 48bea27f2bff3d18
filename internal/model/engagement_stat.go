package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	TierHighValue = "high_value"
	TierEngaged   = "engaged"
	TierPassive   = "passive"
	TierGhost     = "ghost"
)

// EngagementStat 每 (账号, 粉丝) 一行，按分析批次 upsert
type EngagementStat struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	XAccountID       primitive.ObjectID `bson:"x_account_id" json:"xAccountId"`
	FollowerXUserID  string             `bson:"follower_x_user_id" json:"followerXUserId"`
	EngagementScore  int                `bson:"engagement_score" json:"engagementScore"`
	EngagementTier   string             `bson:"engagement_tier" json:"engagementTier"`
	LikesReceived    int                `bson:"likes_received" json:"likesReceived"`
	RetweetsReceived int                `bson:"retweets_received" json:"retweetsReceived"`
	RepliesReceived  int                `bson:"replies_received" json:"repliesReceived"`
	MentionsCount    int                `bson:"mentions_count" json:"mentionsCount"`
	CalculatedAt     time.Time          `bson:"calculated_at" json:"calculatedAt"`
	UpdatedAt        time.Time          `bson:"updated_at" json:"updatedAt"`
}
