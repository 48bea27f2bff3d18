package repository

import (
	"Birdseye/internal/model"
	dbschema "Birdseye/internal/pkg/mongo"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type WhitelistRepo interface {
	Find(ctx context.Context, accountID primitive.ObjectID) ([]*model.WhitelistedAccount, error)
	Get(ctx context.Context, accountID primitive.ObjectID, xUserID string) (*model.WhitelistedAccount, error)
	GetByID(ctx context.Context, id, accountID primitive.ObjectID) (*model.WhitelistedAccount, error)
	Create(ctx context.Context, entry *model.WhitelistedAccount) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type whitelistRepoImpl struct {
	col *mongo.Collection
}

func NewWhitelistRepo(db *mongo.Database) WhitelistRepo {
	return &whitelistRepoImpl{col: db.Collection(dbschema.ColWhitelistedAccounts)}
}

func (s *whitelistRepoImpl) Find(ctx context.Context, accountID primitive.ObjectID) ([]*model.WhitelistedAccount, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := s.col.Find(ctx, bson.M{"x_account_id": accountID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	entries := make([]*model.WhitelistedAccount, 0)
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *whitelistRepoImpl) Get(ctx context.Context, accountID primitive.ObjectID, xUserID string) (*model.WhitelistedAccount, error) {
	return s.findOne(ctx, bson.M{"x_account_id": accountID, "x_user_id": xUserID})
}

// GetByID 带账号过滤，防止越权删除他人白名单
func (s *whitelistRepoImpl) GetByID(ctx context.Context, id, accountID primitive.ObjectID) (*model.WhitelistedAccount, error) {
	return s.findOne(ctx, bson.M{"_id": id, "x_account_id": accountID})
}

func (s *whitelistRepoImpl) findOne(ctx context.Context, filter bson.M) (*model.WhitelistedAccount, error) {
	var entry model.WhitelistedAccount
	err := s.col.FindOne(ctx, filter).Decode(&entry)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (s *whitelistRepoImpl) Create(ctx context.Context, entry *model.WhitelistedAccount) error {
	entry.CreatedAt = time.Now()

	result, err := s.col.InsertOne(ctx, entry)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		entry.ID = oid
	}
	return nil
}

func (s *whitelistRepoImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
