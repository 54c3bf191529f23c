package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ContactStatusInProgress = "in progress"
	ContactStatusPending    = "pending"
	ContactStatusCompleted  = "completed"
)

// Contact 访客咨询
type Contact struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Phone     string             `bson:"phone" json:"phone"`
	Message   string             `bson:"message" json:"message"`
	Status    string             `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}

func IsValidContactStatus(status string) bool {
	switch status {
	case ContactStatusInProgress, ContactStatusPending, ContactStatusCompleted:
		return true
	}
	return false
}
