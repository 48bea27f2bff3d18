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
)

type XAccountRepo interface {
	GetByUserID(ctx context.Context, userID primitive.ObjectID) (*model.XAccount, error)
	GetByXUserID(ctx context.Context, xUserID string) (*model.XAccount, error)
	Create(ctx context.Context, account *model.XAccount) error
	Update(ctx context.Context, account *model.XAccount) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	GetAll(ctx context.Context) ([]*model.XAccount, error)
	Count(ctx context.Context) (int64, error)
}

type xAccountRepoImpl struct {
	col *mongo.Collection
}

func NewXAccountRepo(db *mongo.Database) XAccountRepo {
	return &xAccountRepoImpl{col: db.Collection(dbschema.ColXAccounts)}
}

func (s *xAccountRepoImpl) GetByUserID(ctx context.Context, userID primitive.ObjectID) (*model.XAccount, error) {
	return s.findOne(ctx, bson.M{"user_id": userID})
}

func (s *xAccountRepoImpl) GetByXUserID(ctx context.Context, xUserID string) (*model.XAccount, error) {
	return s.findOne(ctx, bson.M{"x_user_id": xUserID})
}

func (s *xAccountRepoImpl) findOne(ctx context.Context, filter bson.M) (*model.XAccount, error) {
	var account model.XAccount
	err := s.col.FindOne(ctx, filter).Decode(&account)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (s *xAccountRepoImpl) Create(ctx context.Context, account *model.XAccount) error {
	now := time.Now()
	account.CreatedAt = now
	account.UpdatedAt = now

	result, err := s.col.InsertOne(ctx, account)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		account.ID = oid
	}
	return nil
}

func (s *xAccountRepoImpl) Update(ctx context.Context, account *model.XAccount) error {
	account.UpdatedAt = time.Now()
	_, err := s.col.ReplaceOne(ctx, bson.M{"_id": account.ID}, account)
	return err
}

func (s *xAccountRepoImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// GetAll 定时全量同步遍历用
func (s *xAccountRepoImpl) GetAll(ctx context.Context) ([]*model.XAccount, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	accounts := make([]*model.XAccount, 0)
	if err := cursor.All(ctx, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (s *xAccountRepoImpl) Count(ctx context.Context) (int64, error) {
	return s.col.CountDocuments(ctx, bson.M{})
}
