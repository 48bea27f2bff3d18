package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ActivityActive       = "active"
	ActivitySemiInactive = "semi_inactive"
	ActivityInactive     = "inactive"
	ActivityDormant      = "dormant"
)

// InactivityScore 每 (账号, 粉丝) 一行，按分析批次 upsert
type InactivityScore struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	XAccountID         primitive.ObjectID `bson:"x_account_id" json:"xAccountId"`
	FollowerXUserID    string             `bson:"follower_x_user_id" json:"followerXUserId"`
	ActivityStatus     string             `bson:"activity_status" json:"activityStatus"`
	DaysSinceLastTweet *int               `bson:"days_since_last_tweet,omitempty" json:"daysSinceLastTweet,omitempty"`
	LastTweetDate      *time.Time         `bson:"last_tweet_date,omitempty" json:"lastTweetDate,omitempty"`
	TweetCount30Days   int                `bson:"tweet_count_30_days" json:"tweetCount30Days"`
	TweetCount90Days   int                `bson:"tweet_count_90_days" json:"tweetCount90Days"`
	CalculatedAt       time.Time          `bson:"calculated_at" json:"calculatedAt"`
	UpdatedAt          time.Time          `bson:"updated_at" json:"updatedAt"`
}
