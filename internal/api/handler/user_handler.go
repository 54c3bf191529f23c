package handler

import (
	"Lighthouse/internal/api/dto"
	"Lighthouse/internal/pkg/consts"
	"Lighthouse/internal/pkg/response"
	"Lighthouse/internal/pkg/util"
	"Lighthouse/internal/service"
	"errors"
	log "log/slog"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userSvc service.UserService
	cookie  CookieOptions
}

func NewUserHandler(userSvc service.UserService, cookie CookieOptions) *UserHandler {
	return &UserHandler{
		userSvc: userSvc,
		cookie:  cookie,
	}
}

func (s *UserHandler) Signup(c *gin.Context) {
	var signupDTO dto.SignupDTO
	if err := c.ShouldBindJSON(&signupDTO); err != nil {
		response.Error(c, err)
		return
	}
	util.TrimFields(&signupDTO.Username)
	if err := util.ValidateDTO(&signupDTO); err != nil {
		response.Error(c, err)
		return
	}
	user, err := s.userSvc.Signup(c.Request.Context(), &signupDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessCreated(c, user)
}

func (s *UserHandler) Login(c *gin.Context) {
	var loginDTO dto.CredentialDTO
	if err := c.ShouldBindJSON(&loginDTO); err != nil {
		response.Error(c, err)
		return
	}
	util.TrimFields(&loginDTO.Username)
	if loginDTO.Username == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	res, err := s.userSvc.Login(c.Request.Context(), &loginDTO, c.ClientIP())
	if err != nil {
		response.Error(c, err)
		return
	}

	setTokenCookie(c, s.cookie, res.Token)
	log.InfoContext(c.Request.Context(), "user logged in", "user_id", res.User.ID)
	response.Success(c, res)
}

func (s *UserHandler) Logout(c *gin.Context) {
	token, _ := c.Cookie(consts.TokenCookieName)
	err := s.userSvc.Logout(c.Request.Context(), token)
	clearTokenCookie(c, s.cookie)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// VerifyToken 前端用于判断登录状态，失败时也返回 isValid
func (s *UserHandler) VerifyToken(c *gin.Context) {
	token, _ := c.Cookie(consts.TokenCookieName)
	if token == "" {
		response.FailWithData(c, response.BadRequest, service.ErrTokenMissing.Error(), dto.TokenVerifyDTO{IsValid: false})
		return
	}

	claims, err := s.userSvc.VerifyToken(c.Request.Context(), token)
	if err != nil {
		if errors.Is(err, service.ErrTokenInvalid) {
			response.FailWithData(c, response.Unauthorized, err.Error(), dto.TokenVerifyDTO{IsValid: false})
			return
		}
		response.Error(c, err)
		return
	}
	response.Success(c, dto.TokenVerifyDTO{IsValid: true, User: claims})
}

func (s *UserHandler) DeleteUser(c *gin.Context) {
	if err := s.userSvc.DeleteUser(c.Request.Context(), c.Param("userId")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
