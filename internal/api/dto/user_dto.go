package dto

import "time"

// SignupDTO 注册
type SignupDTO struct {
	Username string `json:"username" binding:"required" validate:"min=2,max=30"`
	Password string `json:"password" binding:"required" validate:"min=1,max=72"`
}

// CredentialDTO 登录凭证
type CredentialDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserDTO 返回给前端的账号信息，不含密码
type UserDTO struct {
	ID                  string     `json:"_id" copier:"-"`
	Username            string     `json:"username"`
	IsLoggedIn          bool       `json:"isLoggedIn"`
	IsActive            bool       `json:"isActive"`
	FailedLoginAttempts int        `json:"failedLoginAttempts"`
	LastLoginAttempt    *time.Time `json:"lastLoginAttempt,omitempty"`
	IPAddress           string     `json:"ipAddress,omitempty"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}

// LoginResultDTO 登录成功结果
type LoginResultDTO struct {
	User  *UserDTO `json:"user"`
	Token string   `json:"-"`
}
