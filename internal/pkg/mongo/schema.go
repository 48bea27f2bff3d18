package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// 集合名统一在此定义，仓储层引用
const (
	ColUsers               = "users"
	ColXAccounts           = "x_accounts"
	ColFollowerSnapshots   = "follower_snapshots"
	ColFollowingSnapshots  = "following_snapshots"
	ColGrowthStats         = "growth_stats"
	ColEngagementStats     = "engagement_stats"
	ColInactivityScores    = "inactivity_scores"
	ColWhitelistedAccounts = "whitelisted_accounts"
)

// EnsureIndexes 建立唯一键与查询索引
// upsert 语义依赖这里的唯一索引：growth (账号+日)、score (账号+粉丝)、whitelist (账号+外部用户)
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)
	sparseUnique := options.Index().SetUnique(true).SetSparse(true)

	specs := map[string][]mongo.IndexModel{
		ColUsers: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "username", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "x_user_id", Value: 1}}, Options: sparseUnique},
		},
		ColXAccounts: {
			{Keys: bson.D{{Key: "x_user_id", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "user_id", Value: 1}}},
		},
		ColFollowerSnapshots: {
			{Keys: bson.D{{Key: "x_account_id", Value: 1}, {Key: "follower_x_user_id", Value: 1}}},
			{Keys: bson.D{{Key: "snapshot_date", Value: 1}}},
		},
		ColFollowingSnapshots: {
			{Keys: bson.D{{Key: "x_account_id", Value: 1}, {Key: "following_x_user_id", Value: 1}}},
			{Keys: bson.D{{Key: "snapshot_date", Value: 1}}},
		},
		ColGrowthStats: {
			{Keys: bson.D{{Key: "x_account_id", Value: 1}, {Key: "date", Value: 1}}, Options: unique},
		},
		ColEngagementStats: {
			{Keys: bson.D{{Key: "x_account_id", Value: 1}, {Key: "follower_x_user_id", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "engagement_tier", Value: 1}}},
		},
		ColInactivityScores: {
			{Keys: bson.D{{Key: "x_account_id", Value: 1}, {Key: "follower_x_user_id", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "activity_status", Value: 1}}},
		},
		ColWhitelistedAccounts: {
			{Keys: bson.D{{Key: "x_account_id", Value: 1}, {Key: "x_user_id", Value: 1}}, Options: unique},
		},
	}

	for col, models := range specs {
		if _, err := db.Collection(col).Indexes().CreateMany(ctx, models); err != nil {
			return err
		}
	}
	return nil
}
