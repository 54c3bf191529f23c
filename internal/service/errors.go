package service

import (
	"errors"
	"fmt"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid         = errors.New("参数错误")
	ErrUserNotFound         = errors.New("用户不存在")
	ErrUserExist            = errors.New("用户已存在")
	ErrAccountDisabled      = errors.New("账号已停用，请联系管理员")
	ErrAlreadyLoggedIn      = errors.New("账号已在其他设备登录")
	ErrPasswordIncorrect    = errors.New("密码错误")
	ErrAccountLocked        = errors.New("密码连续错误5次，账号已停用")
	ErrLoginConflict        = errors.New("登录状态已变更，请重试")
	ErrTokenMissing         = errors.New("Token 缺失")
	ErrTokenInvalid         = errors.New("Token 无效或已过期")
	ErrAlreadyLoggedOut     = errors.New("已处于登出状态")
	ErrPostNotFound         = errors.New("帖子不存在")
	ErrContactNotFound      = errors.New("咨询不存在")
	ErrContactStatusInvalid = errors.New("咨询状态无效")
	ErrFileNotSupported     = errors.New("不支持的文件类型")
	ErrFileTooLarge         = errors.New("文件过大")
	ErrUpstreamUnavailable  = errors.New("服务器错误，请稍后重试")
	UnExpectedError         = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:         BadRequest,
	ErrUserNotFound:         NotFound,
	ErrUserExist:            BadRequest,
	ErrAccountDisabled:      Unauthorized,
	ErrAlreadyLoggedIn:      Unauthorized,
	ErrPasswordIncorrect:    Unauthorized,
	ErrAccountLocked:        Unauthorized,
	ErrLoginConflict:        Unauthorized,
	ErrTokenMissing:         Forbidden,
	ErrTokenInvalid:         Forbidden,
	ErrAlreadyLoggedOut:     BadRequest,
	ErrPostNotFound:         NotFound,
	ErrContactNotFound:      NotFound,
	ErrContactStatusInvalid: BadRequest,
	ErrFileNotSupported:     BadRequest,
	ErrFileTooLarge:         BadRequest,
	ErrUpstreamUnavailable:  InternalServerError,
	UnExpectedError:         InternalServerError,
}

// CodeOf 按错误链匹配业务码
func CodeOf(err error) (int, bool) {
	_, code, ok := Lookup(err)
	return code, ok
}

// Lookup 返回错误链上的业务错误及其业务码，用于对外展示
func Lookup(err error) (error, int, bool) {
	if code, ok := ErrorMap[err]; ok {
		return err, code, true
	}
	for sentinel, code := range ErrorMap {
		if errors.Is(err, sentinel) {
			return sentinel, code, true
		}
	}
	return nil, 0, false
}

// LoginFailedError 凭据错误时附带剩余重试次数
type LoginFailedError struct {
	Err               error
	RemainingAttempts int
}

func (e *LoginFailedError) Error() string {
	return e.Err.Error()
}

func (e *LoginFailedError) Unwrap() error {
	return e.Err
}

// upstream 持久化或外部依赖失败，原始错误保留在链上用于日志
func upstream(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrUpstreamUnavailable, op, err)
}
