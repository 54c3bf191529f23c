package service

import (
	"Lighthouse/internal/api/dto"
	"Lighthouse/internal/model"
	"Lighthouse/internal/pkg/security"
	"Lighthouse/internal/repository"
	"context"
	"errors"
	log "log/slog"
	"time"

	"github.com/jinzhu/copier"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserService interface {
	Signup(ctx context.Context, dto *dto.SignupDTO) (*dto.UserDTO, error)
	Login(ctx context.Context, dto *dto.CredentialDTO, clientIP string) (*dto.LoginResultDTO, error)
	Logout(ctx context.Context, token string) error
	VerifyToken(ctx context.Context, token string) (*security.UserClaims, error)
	DeleteUser(ctx context.Context, id string) error
}

type userServiceImpl struct {
	userRepo repository.UserRepo
	tokens   TokenIssuer
	revoker  TokenRevoker
	resolver OriginResolver
	now      func() time.Time
}

func NewUserService(userRepo repository.UserRepo, tokens TokenIssuer, revoker TokenRevoker, resolver OriginResolver) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
		tokens:   tokens,
		revoker:  revoker,
		resolver: resolver,
		now:      time.Now,
	}
}

func (s *userServiceImpl) Signup(ctx context.Context, signupDTO *dto.SignupDTO) (*dto.UserDTO, error) {
	existing, err := s.userRepo.GetUserByUsername(ctx, signupDTO.Username)
	if err != nil {
		return nil, upstream("find user", err)
	}
	if existing != nil {
		return nil, ErrUserExist
	}

	passwordHash, err := security.HashPassword(signupDTO.Password)
	if err != nil {
		return nil, err
	}

	user := model.NewUser(signupDTO.Username, passwordHash, s.now())
	if err = s.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUserExist
		}
		return nil, upstream("create user", err)
	}

	return toUserDTO(user)
}

// Login 登录策略：停用 > 已登录 > 凭据校验，失败计数在返回前落库
func (s *userServiceImpl) Login(ctx context.Context, credential *dto.CredentialDTO, clientIP string) (*dto.LoginResultDTO, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, credential.Username)
	if err != nil {
		return nil, upstream("find user", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	switch user.Admission() {
	case model.LoginRejectedDisabled:
		return nil, ErrAccountDisabled
	case model.LoginRejectedLoggedIn:
		return nil, ErrAlreadyLoggedIn
	}

	expected := user.SecurityState
	now := s.now()

	if !security.ComparePassword(credential.Password, user.Password) {
		decision := user.RecordFailure(now)
		if err = s.saveSecurityState(ctx, user, expected, now); err != nil {
			return nil, err
		}
		log.WarnContext(ctx, "login rejected",
			"username", user.Username,
			"decision", decision.String(),
			"failed_attempts", user.FailedLoginAttempts,
		)
		cause := ErrPasswordIncorrect
		if decision == model.LoginRejectedLockedOut {
			cause = ErrAccountLocked
		}
		return nil, &LoginFailedError{Err: cause, RemainingAttempts: user.RemainingAttempts()}
	}

	origin := s.resolver.ResolveOr(ctx, clientIP)
	user.RecordSuccess(origin, now)

	token, err := s.tokens.GenerateToken(user.ID.Hex(), user.Username)
	if err != nil {
		return nil, err
	}
	if err = s.saveSecurityState(ctx, user, expected, now); err != nil {
		return nil, err
	}

	userDTO, err := toUserDTO(user)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResultDTO{User: userDTO, Token: token}, nil
}

// Logout 令牌无效或已注销时只清除 Cookie，不视为错误
func (s *userServiceImpl) Logout(ctx context.Context, token string) error {
	if token == "" {
		return ErrAlreadyLoggedOut
	}

	claims, err := s.tokens.ValidateToken(token)
	if err != nil {
		log.InfoContext(ctx, "logout with invalid token", "err", err)
		return nil
	}
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return nil
	}

	// 已注销的令牌不能释放账号当前的会话
	revoked, err := s.revoker.IsRevoked(ctx, signature)
	if err != nil {
		return upstream("check revoked token", err)
	}
	if revoked {
		log.InfoContext(ctx, "logout with revoked token", "user_id", claims.UserID)
		return nil
	}

	if id, err := primitive.ObjectIDFromHex(claims.UserID); err == nil {
		user, err := s.userRepo.GetUserByID(ctx, id)
		if err != nil {
			return upstream("find user", err)
		}
		if user != nil && user.IsLoggedIn {
			expected := user.SecurityState
			user.RecordLogout()
			if err = s.saveSecurityState(ctx, user, expected, s.now()); err != nil && !errors.Is(err, ErrLoginConflict) {
				return err
			}
		}
	}

	if err = s.revoker.Revoke(ctx, signature, s.tokens.RemainingTTL(claims)); err != nil {
		return upstream("revoke token", err)
	}
	return nil
}

// VerifyToken 签名、有效期与注销状态均需通过
func (s *userServiceImpl) VerifyToken(ctx context.Context, token string) (*security.UserClaims, error) {
	if token == "" {
		return nil, ErrTokenMissing
	}
	claims, err := s.tokens.ValidateToken(token)
	if err != nil {
		return nil, ErrTokenInvalid
	}
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return nil, ErrTokenInvalid
	}
	revoked, err := s.revoker.IsRevoked(ctx, signature)
	if err != nil {
		return nil, upstream("check revoked token", err)
	}
	if revoked {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

func (s *userServiceImpl) DeleteUser(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrUserNotFound
	}
	deleted, err := s.userRepo.DeleteUser(ctx, oid)
	if err != nil {
		return upstream("delete user", err)
	}
	if !deleted {
		return ErrUserNotFound
	}
	return nil
}

// saveSecurityState 以读取时的状态为前提写回，被并发修改时返回 ErrLoginConflict
func (s *userServiceImpl) saveSecurityState(ctx context.Context, user *model.User, expected model.SecurityState, now time.Time) error {
	matched, err := s.userRepo.UpdateSecurityState(ctx, user.ID, expected, user.SecurityState, now)
	if err != nil {
		return upstream("save security state", err)
	}
	if !matched {
		return ErrLoginConflict
	}
	user.UpdatedAt = now
	return nil
}

func toUserDTO(user *model.User) (*dto.UserDTO, error) {
	userDTO := &dto.UserDTO{}
	if err := copier.Copy(userDTO, user); err != nil {
		return nil, err
	}
	userDTO.ID = user.ID.Hex()
	return userDTO, nil
}
