package repository

import (
	"Lighthouse/internal/model"
	mongodb "Lighthouse/internal/pkg/mongo"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepo interface {
	GetUserByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	CreateUser(ctx context.Context, user *model.User) error
	// UpdateSecurityState 以 expected 为前置条件写回，返回是否命中
	UpdateSecurityState(ctx context.Context, id primitive.ObjectID, expected, next model.SecurityState, now time.Time) (bool, error)
	DeleteUser(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type userRepoImpl struct {
	col *mongo.Collection
}

func NewUserRepo(db *mongo.Database) UserRepo {
	return &userRepoImpl{col: db.Collection(mongodb.UserCollection)}
}

func (s *userRepoImpl) GetUserByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	return s.findOne(ctx, bson.M{"_id": id})
}

func (s *userRepoImpl) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	return s.findOne(ctx, bson.M{"username": username})
}

func (s *userRepoImpl) findOne(ctx context.Context, filter bson.M) (*model.User, error) {
	var user model.User
	err := s.col.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// CreateUser 用户名唯一索引冲突时返回 ErrDuplicate
func (s *userRepoImpl) CreateUser(ctx context.Context, user *model.User) error {
	res, err := s.col.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = id
	}
	return nil
}

func (s *userRepoImpl) UpdateSecurityState(ctx context.Context, id primitive.ObjectID, expected, next model.SecurityState, now time.Time) (bool, error) {
	filter := bson.M{
		"_id":                   id,
		"is_logged_in":          expected.IsLoggedIn,
		"is_active":             expected.IsActive,
		"failed_login_attempts": expected.FailedLoginAttempts,
	}
	set := bson.M{
		"is_logged_in":          next.IsLoggedIn,
		"is_active":             next.IsActive,
		"failed_login_attempts": next.FailedLoginAttempts,
		"updated_at":            now,
	}
	if next.LastLoginAttempt != nil {
		set["last_login_attempt"] = *next.LastLoginAttempt
	}
	if next.IPAddress != "" {
		set["ip_address"] = next.IPAddress
	}
	res, err := s.col.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return false, err
	}
	return res.MatchedCount == 1, nil
}

func (s *userRepoImpl) DeleteUser(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount == 1, nil
}
