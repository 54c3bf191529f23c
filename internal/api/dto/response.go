package dto

// Response 统一返回结构
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// LoginFailureData 凭据错误时返回剩余次数
type LoginFailureData struct {
	RemainingAttempts int `json:"remainingAttempts"`
}

// TokenVerifyDTO 令牌校验结果
type TokenVerifyDTO struct {
	IsValid bool `json:"isValid"`
	User    any  `json:"user,omitempty"`
}
