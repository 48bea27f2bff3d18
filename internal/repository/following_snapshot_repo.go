package repository

import (
	"Birdseye/internal/model"
	dbschema "Birdseye/internal/pkg/mongo"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FollowingSnapshotRepo interface {
	InsertBatch(ctx context.Context, snapshots []*model.FollowingSnapshot) error
	FindSince(ctx context.Context, accountID primitive.ObjectID, since time.Time) ([]*model.FollowingSnapshot, error)
}

type followingSnapshotRepoImpl struct {
	col *mongo.Collection
}

func NewFollowingSnapshotRepo(db *mongo.Database) FollowingSnapshotRepo {
	return &followingSnapshotRepoImpl{col: db.Collection(dbschema.ColFollowingSnapshots)}
}

func (s *followingSnapshotRepoImpl) InsertBatch(ctx context.Context, snapshots []*model.FollowingSnapshot) error {
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

func (s *followingSnapshotRepoImpl) FindSince(ctx context.Context, accountID primitive.ObjectID, since time.Time) ([]*model.FollowingSnapshot, error) {
	filter := bson.M{
		"x_account_id":  accountID,
		"snapshot_date": bson.M{"$gte": since},
	}

	cursor, err := s.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	snapshots := make([]*model.FollowingSnapshot, 0)
	if err := cursor.All(ctx, &snapshots); err != nil {
		return nil, err
	}
	return snapshots, nil
}
