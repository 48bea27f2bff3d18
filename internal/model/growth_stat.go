package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GrowthStat 每 (账号, 自然日) 一行，按日 upsert
type GrowthStat struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	XAccountID        primitive.ObjectID `bson:"x_account_id" json:"xAccountId"`
	Date              time.Time          `bson:"date" json:"date"`
	FollowersCount    int                `bson:"followers_count" json:"followersCount"`
	FollowingCount    int                `bson:"following_count" json:"followingCount"`
	FollowersGained   int                `bson:"followers_gained" json:"followersGained"`
	FollowersLost     int                `bson:"followers_lost" json:"followersLost"`
	NetFollowerChange int                `bson:"net_follower_change" json:"netFollowerChange"`
	CreatedAt         time.Time          `bson:"created_at" json:"createdAt"`
}
