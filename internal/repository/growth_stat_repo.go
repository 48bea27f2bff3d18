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

type GrowthStatRepo interface {
	Upsert(ctx context.Context, stat *model.GrowthStat) error
	FindSince(ctx context.Context, accountID primitive.ObjectID, since time.Time) ([]*model.GrowthStat, error)
}

type growthStatRepoImpl struct {
	col *mongo.Collection
}

func NewGrowthStatRepo(db *mongo.Database) GrowthStatRepo {
	return &growthStatRepoImpl{col: db.Collection(dbschema.ColGrowthStats)}
}

// Upsert 以 (账号, 日期) 为键覆盖当日统计
func (s *growthStatRepoImpl) Upsert(ctx context.Context, stat *model.GrowthStat) error {
	filter := bson.M{
		"x_account_id": stat.XAccountID,
		"date":         stat.Date,
	}
	update := bson.M{
		"$set": bson.M{
			"followers_count":     stat.FollowersCount,
			"following_count":     stat.FollowingCount,
			"followers_gained":    stat.FollowersGained,
			"followers_lost":      stat.FollowersLost,
			"net_follower_change": stat.NetFollowerChange,
		},
		"$setOnInsert": bson.M{
			"created_at": time.Now(),
		},
	}

	_, err := s.col.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (s *growthStatRepoImpl) FindSince(ctx context.Context, accountID primitive.ObjectID, since time.Time) ([]*model.GrowthStat, error) {
	filter := bson.M{
		"x_account_id": accountID,
		"date":         bson.M{"$gte": since},
	}
	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})

	cursor, err := s.col.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	stats := make([]*model.GrowthStat, 0)
	if err := cursor.All(ctx, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}
