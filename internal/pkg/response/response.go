package response

import (
	"Lighthouse/internal/api/dto"
	"Lighthouse/internal/pkg/logger"
	"Lighthouse/internal/service"
	stdjson "encoding/json"
	"errors"
	"fmt"
	"io"
	log "log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

const (
	Ok                  = 200
	Created             = 201
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	InternalServerError = 500
)

// Success 成功返回封装
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, dto.Response{
		Code:    Ok,
		Message: "success",
		Data:    data,
	})
}

// SuccessCreated 资源创建成功
func SuccessCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, dto.Response{
		Code:    Created,
		Message: "success",
		Data:    data,
	})
}

// Fail 失败返回封装，业务码即 HTTP 状态码
func Fail(c *gin.Context, businessCode int, message string) {
	FailWithData(c, businessCode, message, nil)
}

func FailWithData(c *gin.Context, businessCode int, message string, data interface{}) {
	c.JSON(businessCode, dto.Response{
		Code:    businessCode,
		Message: message,
		Data:    data,
	})
}

// Error 处理错误
func Error(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		Fail(c, BadRequest, validationMessage(ve))
		return
	}

	if isJSONDecodeError(err) {
		Fail(c, BadRequest, "Json错误")
		return
	}

	var loginFailed *service.LoginFailedError
	if errors.As(err, &loginFailed) {
		code, _ := service.CodeOf(loginFailed.Err)
		FailWithData(c, code, loginFailed.Err.Error(), dto.LoginFailureData{
			RemainingAttempts: loginFailed.RemainingAttempts,
		})
		return
	}

	sentinel, code, ok := service.Lookup(err)
	if !ok {
		log.ErrorContext(c.Request.Context(), "Error", "err", err)
		logger.CaptureError(c.Request.Context(), err)
		Fail(c, InternalServerError, service.UnExpectedError.Error())
		return
	}
	if code >= InternalServerError {
		log.ErrorContext(c.Request.Context(), "Error", "err", err)
		logger.CaptureError(c.Request.Context(), err)
	}
	Fail(c, code, sentinel.Error())
}

// isJSONDecodeError gin 绑定使用 encoding/json，两种解码器的错误都要识别
func isJSONDecodeError(err error) bool {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}
	var syntaxErr *stdjson.SyntaxError
	var typeErr *stdjson.UnmarshalTypeError
	var goccySyntaxErr *json.SyntaxError
	var goccyTypeErr *json.UnmarshalTypeError
	return errors.As(err, &syntaxErr) || errors.As(err, &typeErr) ||
		errors.As(err, &goccySyntaxErr) || errors.As(err, &goccyTypeErr)
}

func validationMessage(ve validator.ValidationErrors) string {
	if len(ve) == 0 {
		return service.ErrParamInvalid.Error()
	}
	fe := ve[0]
	if fe.Param() != "" {
		return fmt.Sprintf("参数错误: %s (%s=%s)", fe.Field(), fe.Tag(), fe.Param())
	}
	return fmt.Sprintf("参数错误: %s (%s)", fe.Field(), fe.Tag())
}
