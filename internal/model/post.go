package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post 公告板帖子
type Post struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Number    int64              `bson:"number" json:"number"`
	Title     string             `bson:"title" json:"title"`
	Content   string             `bson:"content" json:"content"`
	FileURL   []string           `bson:"file_url" json:"fileUrl"`
	Views     int64              `bson:"views" json:"views"`
	ViewLogs  []ViewLog          `bson:"view_logs" json:"-"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}
