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

type FollowerSnapshotRepo interface {
	InsertBatch(ctx context.Context, snapshots []*model.FollowerSnapshot) error
	FindSince(ctx context.Context, accountID primitive.ObjectID, since time.Time) ([]*model.FollowerSnapshot, error)
	FindBetween(ctx context.Context, accountID primitive.ObjectID, from, to time.Time) ([]*model.FollowerSnapshot, error)
	FindRecent(ctx context.Context, accountID primitive.ObjectID, limit int64) ([]*model.FollowerSnapshot, error)
}

type followerSnapshotRepoImpl struct {
	col *mongo.Collection
}

func NewFollowerSnapshotRepo(db *mongo.Database) FollowerSnapshotRepo {
	return &followerSnapshotRepoImpl{col: db.Collection(dbschema.ColFollowerSnapshots)}
}

func (s *followerSnapshotRepoImpl) InsertBatch(ctx context.Context, snapshots []*model.FollowerSnapshot) error {
	if len(snapshots) == 0 {
		return nil
	}

	now := time.Now()
	docs := make([]interface{}, 0, len(snapshots))
	for _, snapshot := range snapshots {
		snapshot.CreatedAt = now
		docs = append(docs, snapshot)
	}

	_, err := s.col.InsertMany(ctx, docs)
	return err
}

func (s *followerSnapshotRepoImpl) FindSince(ctx context.Context, accountID primitive.ObjectID, since time.Time) ([]*model.FollowerSnapshot, error) {
	filter := bson.M{
		"x_account_id":  accountID,
		"snapshot_date": bson.M{"$gte": since},
	}
	return s.find(ctx, filter, nil)
}

func (s *followerSnapshotRepoImpl) FindBetween(ctx context.Context, accountID primitive.ObjectID, from, to time.Time) ([]*model.FollowerSnapshot, error) {
	filter := bson.M{
		"x_account_id":  accountID,
		"snapshot_date": bson.M{"$gte": from, "$lt": to},
	}
	return s.find(ctx, filter, nil)
}

// FindRecent 取最近的快照行，供活跃度与互动分析限量遍历
func (s *followerSnapshotRepoImpl) FindRecent(ctx context.Context, accountID primitive.ObjectID, limit int64) ([]*model.FollowerSnapshot, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "snapshot_date", Value: -1}}).
		SetLimit(limit)
	return s.find(ctx, bson.M{"x_account_id": accountID}, findOptions)
}

func (s *followerSnapshotRepoImpl) find(ctx context.Context, filter bson.M, findOptions *options.FindOptions) ([]*model.FollowerSnapshot, error) {
	var cursor *mongo.Cursor
	var err error
	if findOptions != nil {
		cursor, err = s.col.Find(ctx, filter, findOptions)
	} else {
		cursor, err = s.col.Find(ctx, filter)
	}
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	snapshots := make([]*model.FollowerSnapshot, 0)
	if err := cursor.All(ctx, &snapshots); err != nil {
		return nil, err
	}
	return snapshots, nil
}
