package handler

import (
	"Lighthouse/internal/pkg/consts"
	"Lighthouse/internal/pkg/response"
	"Lighthouse/internal/service"
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
)

type MediaHandler struct {
	mediaSvc service.MediaService
	maxBody  int64
}

// NewMediaHandler maxBody 为请求体上限，超出直接拒绝
func NewMediaHandler(mediaSvc service.MediaService, maxBody int64) *MediaHandler {
	return &MediaHandler{
		mediaSvc: mediaSvc,
		maxBody:  maxBody,
	}
}

func (s *MediaHandler) UploadImage(c *gin.Context) {
	header, ok := s.formFile(c, consts.UploadImageField)
	if !ok {
		return
	}
	reader, err := header.Open()
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	defer func() { _ = reader.Close() }()

	res, err := s.mediaSvc.UploadImage(c.Request.Context(), reader, header.Filename, header.Size)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

// UploadFile originalName 由前端以 URI 编码提交，缺省时使用上传文件名
func (s *MediaHandler) UploadFile(c *gin.Context) {
	header, ok := s.formFile(c, consts.UploadFileField)
	if !ok {
		return
	}
	originalName := c.PostForm("originalName")
	if originalName == "" {
		originalName = header.Filename
	}
	reader, err := header.Open()
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	defer func() { _ = reader.Close() }()

	res, err := s.mediaSvc.UploadFile(c.Request.Context(), reader, originalName, header.Size)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

func (s *MediaHandler) formFile(c *gin.Context, field string) (*multipart.FileHeader, bool) {
	if s.maxBody > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.maxBody)
	}
	header, err := c.FormFile(field)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.Error(c, service.ErrFileTooLarge)
			return nil, false
		}
		response.Error(c, service.ErrParamInvalid)
		return nil, false
	}
	return header, true
}
