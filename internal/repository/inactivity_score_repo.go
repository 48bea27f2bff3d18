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

type InactivityScoreRepo interface {
	Upsert(ctx context.Context, score *model.InactivityScore) error
	Find(ctx context.Context, accountID primitive.ObjectID, status string) ([]*model.InactivityScore, error)
}

type inactivityScoreRepoImpl struct {
	col *mongo.Collection
}

func NewInactivityScoreRepo(db *mongo.Database) InactivityScoreRepo {
	return &inactivityScoreRepoImpl{col: db.Collection(dbschema.ColInactivityScores)}
}

// Upsert 以 (账号, 粉丝) 为键覆盖活跃度评估
func (s *inactivityScoreRepoImpl) Upsert(ctx context.Context, score *model.InactivityScore) error {
	now := time.Now()
	filter := bson.M{
		"x_account_id":       score.XAccountID,
		"follower_x_user_id": score.FollowerXUserID,
	}
	update := bson.M{
		"$set": bson.M{
			"activity_status":       score.ActivityStatus,
			"days_since_last_tweet": score.DaysSinceLastTweet,
			"last_tweet_date":       score.LastTweetDate,
			"tweet_count_30_days":   score.TweetCount30Days,
			"tweet_count_90_days":   score.TweetCount90Days,
			"calculated_at":         score.CalculatedAt,
			"updated_at":            now,
		},
	}

	_, err := s.col.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

// Find status 为空时返回全部，沉寂天数多的排前面
func (s *inactivityScoreRepoImpl) Find(ctx context.Context, accountID primitive.ObjectID, status string) ([]*model.InactivityScore, error) {
	filter := bson.M{"x_account_id": accountID}
	if status != "" {
		filter["activity_status"] = status
	}
	findOptions := options.Find().SetSort(bson.D{{Key: "days_since_last_tweet", Value: -1}})

	cursor, err := s.col.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	scores := make([]*model.InactivityScore, 0)
	if err := cursor.All(ctx, &scores); err != nil {
		return nil, err
	}
	return scores, nil
}
