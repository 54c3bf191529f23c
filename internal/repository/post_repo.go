package repository

import (
	"Lighthouse/internal/model"
	mongodb "Lighthouse/internal/pkg/mongo"
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PostRepo interface {
	CreatePost(ctx context.Context, post *model.Post) error
	GetLatestNumber(ctx context.Context) (int64, error)
	GetPosts(ctx context.Context) ([]*model.Post, error)
	GetPostByID(ctx context.Context, id primitive.ObjectID) (*model.Post, error)
	// AppendView 浏览数加一并追加浏览记录
	AppendView(ctx context.Context, id primitive.ObjectID, view model.ViewLog) (bool, error)
	UpdatePost(ctx context.Context, post *model.Post) (bool, error)
	DeletePost(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type postRepoImpl struct {
	col *mongo.Collection
}

func NewPostRepo(db *mongo.Database) PostRepo {
	return &postRepoImpl{col: db.Collection(mongodb.PostCollection)}
}

func (s *postRepoImpl) CreatePost(ctx context.Context, post *model.Post) error {
	if post.FileURL == nil {
		post.FileURL = []string{}
	}
	if post.ViewLogs == nil {
		post.ViewLogs = []model.ViewLog{}
	}
	res, err := s.col.InsertOne(ctx, post)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		post.ID = id
	}
	return nil
}

// GetLatestNumber 当前最大编号，无帖子时为 0
func (s *postRepoImpl) GetLatestNumber(ctx context.Context) (int64, error) {
	opts := options.FindOne().
		SetSort(bson.D{{Key: "number", Value: -1}}).
		SetProjection(bson.M{"number": 1})

	var latest struct {
		Number int64 `bson:"number"`
	}
	err := s.col.FindOne(ctx, bson.M{}, opts).Decode(&latest)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, nil
		}
		return 0, err
	}
	return latest.Number, nil
}

func (s *postRepoImpl) GetPosts(ctx context.Context) ([]*model.Post, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	posts := make([]*model.Post, 0)
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *postRepoImpl) GetPostByID(ctx context.Context, id primitive.ObjectID) (*model.Post, error) {
	var post model.Post
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (s *postRepoImpl) AppendView(ctx context.Context, id primitive.ObjectID, view model.ViewLog) (bool, error) {
	update := bson.M{
		"$inc":  bson.M{"views": 1},
		"$push": bson.M{"view_logs": view},
	}
	res, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return false, err
	}
	return res.MatchedCount == 1, nil
}

// UpdatePost 只覆盖可编辑字段，浏览数据不受影响
func (s *postRepoImpl) UpdatePost(ctx context.Context, post *model.Post) (bool, error) {
	fileURL := post.FileURL
	if fileURL == nil {
		fileURL = []string{}
	}
	set := bson.M{
		"title":      post.Title,
		"content":    post.Content,
		"file_url":   fileURL,
		"updated_at": post.UpdatedAt,
	}
	res, err := s.col.UpdateOne(ctx, bson.M{"_id": post.ID}, bson.M{"$set": set})
	if err != nil {
		return false, err
	}
	return res.MatchedCount == 1, nil
}

func (s *postRepoImpl) DeletePost(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount == 1, nil
}

