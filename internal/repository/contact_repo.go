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
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ContactRepo interface {
	CreateContact(ctx context.Context, contact *model.Contact) error
	GetContacts(ctx context.Context) ([]*model.Contact, error)
	GetContactByID(ctx context.Context, id primitive.ObjectID) (*model.Contact, error)
	// UpdateContactStatus 返回更新后的文档，不存在时为 nil
	UpdateContactStatus(ctx context.Context, id primitive.ObjectID, status string, now time.Time) (*model.Contact, error)
	DeleteContact(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type contactRepoImpl struct {
	col *mongo.Collection
}

func NewContactRepo(db *mongo.Database) ContactRepo {
	return &contactRepoImpl{col: db.Collection(mongodb.ContactCollection)}
}

func (s *contactRepoImpl) CreateContact(ctx context.Context, contact *model.Contact) error {
	res, err := s.col.InsertOne(ctx, contact)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		contact.ID = id
	}
	return nil
}

func (s *contactRepoImpl) GetContacts(ctx context.Context) ([]*model.Contact, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	contacts := make([]*model.Contact, 0)
	if err := cursor.All(ctx, &contacts); err != nil {
		return nil, err
	}
	return contacts, nil
}

func (s *contactRepoImpl) GetContactByID(ctx context.Context, id primitive.ObjectID) (*model.Contact, error) {
	var contact model.Contact
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&contact)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &contact, nil
}

func (s *contactRepoImpl) UpdateContactStatus(ctx context.Context, id primitive.ObjectID, status string, now time.Time) (*model.Contact, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$set": bson.M{"status": status, "updated_at": now}}

	var contact model.Contact
	err := s.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&contact)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &contact, nil
}

func (s *contactRepoImpl) DeleteContact(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount == 1, nil
}
