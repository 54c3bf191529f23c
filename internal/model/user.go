package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User 后台账号
type User struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Username      string             `bson:"username" json:"username"`
	Password      string             `bson:"password" json:"-"`
	SecurityState `bson:",inline"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updatedAt"`
}

// SecurityState 登录安全状态，仅由登录策略修改
type SecurityState struct {
	IsLoggedIn          bool       `bson:"is_logged_in" json:"isLoggedIn"`
	IsActive            bool       `bson:"is_active" json:"isActive"`
	FailedLoginAttempts int        `bson:"failed_login_attempts" json:"failedLoginAttempts"`
	LastLoginAttempt    *time.Time `bson:"last_login_attempt,omitempty" json:"lastLoginAttempt,omitempty"`
	IPAddress           string     `bson:"ip_address,omitempty" json:"ipAddress,omitempty"`
}

// NewUser 新账号默认激活、未登录
func NewUser(username, passwordHash string, now time.Time) *User {
	return &User{
		Username: username,
		Password: passwordHash,
		SecurityState: SecurityState{
			IsActive: true,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}
