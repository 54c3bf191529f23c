package model

import "time"

// MaxFailedLoginAttempts 连续失败达到该次数后账号被永久停用
const MaxFailedLoginAttempts = 5

type LoginDecision int

const (
	LoginAccepted LoginDecision = iota
	LoginRejectedDisabled
	LoginRejectedLoggedIn
	LoginRejectedBadCredential
	LoginRejectedLockedOut
)

func (d LoginDecision) String() string {
	switch d {
	case LoginAccepted:
		return "accepted"
	case LoginRejectedDisabled:
		return "disabled"
	case LoginRejectedLoggedIn:
		return "logged_in_elsewhere"
	case LoginRejectedBadCredential:
		return "bad_credential"
	case LoginRejectedLockedOut:
		return "locked_out"
	default:
		return "unknown"
	}
}

// Admission 校验凭据之前的前置判断，停用优先于已登录
func (s *SecurityState) Admission() LoginDecision {
	if !s.IsActive {
		return LoginRejectedDisabled
	}
	if s.IsLoggedIn {
		return LoginRejectedLoggedIn
	}
	return LoginAccepted
}

// RecordFailure 记录一次凭据错误，达到阈值时停用账号
func (s *SecurityState) RecordFailure(now time.Time) LoginDecision {
	s.FailedLoginAttempts++
	s.LastLoginAttempt = &now
	if s.FailedLoginAttempts >= MaxFailedLoginAttempts {
		s.IsActive = false
		return LoginRejectedLockedOut
	}
	return LoginRejectedBadCredential
}

// RecordSuccess 登录成功：清零失败次数并占用会话
func (s *SecurityState) RecordSuccess(origin string, now time.Time) {
	s.FailedLoginAttempts = 0
	s.LastLoginAttempt = &now
	s.IsLoggedIn = true
	if origin != "" {
		s.IPAddress = origin
	}
}

// RecordLogout 释放会话，不影响失败计数
func (s *SecurityState) RecordLogout() {
	s.IsLoggedIn = false
}

// RemainingAttempts 剩余可重试次数
func (s *SecurityState) RemainingAttempts() int {
	remaining := MaxFailedLoginAttempts - s.FailedLoginAttempts
	if remaining < 0 {
		return 0
	}
	return remaining
}
