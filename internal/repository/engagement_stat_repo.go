package repository

import (
	"Birdseye/internal/model"
	dbschema "Birdseye/internal/pkg/mongo"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type EngagementStatRepo interface {
	Upsert(ctx context.Context, stat *model.EngagementStat) error
	Find(ctx context.Context, accountID primitive.ObjectID, tier string) ([]*model.EngagementStat, error)
}

type engagementStatRepoImpl struct {
	col *mongo.Collection
}

func NewEngagementStatRepo(db *mongo.Database) EngagementStatRepo {
	return &engagementStatRepoImpl{col: db.Collection(dbschema.ColEngagementStats)}
}

// Upsert 以 (账号, 粉丝) 为键覆盖互动评分
func (s *engagementStatRepoImpl) Upsert(ctx context.Context, stat *model.EngagementStat) error {
	now := time.Now()
	filter := bson.M{
		"x_account_id":       stat.XAccountID,
		"follower_x_user_id": stat.FollowerXUserID,
	}
	update := bson.M{
		"$set": bson.M{
			"engagement_score":  stat.EngagementScore,
			"engagement_tier":   stat.EngagementTier,
			"likes_received":    stat.LikesReceived,
			"retweets_received": stat.RetweetsReceived,
			"replies_received":  stat.RepliesReceived,
			"mentions_count":    stat.MentionsCount,
			"calculated_at":     stat.CalculatedAt,
			"updated_at":        now,
		},
	}

	_, err := s.col.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

// Find tier 为空时返回全部，按评分倒序
func (s *engagementStatRepoImpl) Find(ctx context.Context, accountID primitive.ObjectID, tier string) ([]*model.EngagementStat, error) {
	filter := bson.M{"x_account_id": accountID}
	if tier != "" {
		filter["engagement_tier"] = tier
	}
	findOptions := options.Find().SetSort(bson.D{{Key: "engagement_score", Value: -1}})

	cursor, err := s.col.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	stats := make([]*model.EngagementStat, 0)
	if err := cursor.All(ctx, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}
