package service

import (
	"Lighthouse/internal/api/config"
	"Lighthouse/internal/api/dto"
	"Lighthouse/internal/pkg/minio"
	"Lighthouse/internal/pkg/util"
	"context"
	"io"
	log "log/slog"
	"time"
)

type MediaService interface {
	UploadImage(ctx context.Context, reader io.ReadSeeker, filename string, size int64) (*dto.ImageUploadResult, error)
	UploadFile(ctx context.Context, reader io.ReadSeeker, originalName string, size int64) (*dto.FileUploadResult, error)
}

type mediaServiceImpl struct {
	storage  ObjectStorage
	registry UploadRegistry
	limits   config.UploadConfig
	now      func() time.Time
}

func NewMediaService(storage ObjectStorage, registry UploadRegistry, limits config.UploadConfig) MediaService {
	return &mediaServiceImpl{
		storage:  storage,
		registry: registry,
		limits:   limits,
		now:      time.Now,
	}
}

// UploadImage 仅接受按内容识别为图片的文件
func (s *mediaServiceImpl) UploadImage(ctx context.Context, reader io.ReadSeeker, filename string, size int64) (*dto.ImageUploadResult, error) {
	if size > s.limits.ImageMaxSize {
		return nil, ErrFileTooLarge
	}
	contentType, err := util.GetSafeContentType(reader)
	if err != nil {
		return nil, ErrParamInvalid
	}
	if !util.IsImage(contentType) {
		return nil, ErrFileNotSupported
	}

	objectName := util.ImageObjectName(filename)
	url, err := s.storage.Upload(ctx, objectName, reader, size, minio.UploadOptions{ContentType: contentType})
	if err != nil {
		return nil, upstream("upload image", err)
	}

	s.register(ctx, objectName, url, contentType, size)
	return &dto.ImageUploadResult{ImageURL: url}, nil
}

// UploadFile 附件按原始文件名保存，下载时以原名呈现
func (s *mediaServiceImpl) UploadFile(ctx context.Context, reader io.ReadSeeker, originalName string, size int64) (*dto.FileUploadResult, error) {
	if size > s.limits.FileMaxSize {
		return nil, ErrFileTooLarge
	}
	objectName, decodedName, err := util.FileObjectName(originalName)
	if err != nil {
		return nil, ErrParamInvalid
	}
	contentType, err := util.GetSafeContentType(reader)
	if err != nil {
		return nil, ErrParamInvalid
	}

	url, err := s.storage.Upload(ctx, objectName, reader, size, minio.UploadOptions{
		ContentType:        contentType,
		ContentDisposition: util.AttachmentDisposition(decodedName),
	})
	if err != nil {
		return nil, upstream("upload file", err)
	}

	s.register(ctx, objectName, url, contentType, size)
	return &dto.FileUploadResult{FileURL: url, OriginalName: decodedName}, nil
}

// register 登记为临时文件，未被帖子引用的由清理任务回收
func (s *mediaServiceImpl) register(ctx context.Context, objectName, url, contentType string, size int64) {
	meta := dto.MediaTempMetadata{
		URL:       url,
		MimeType:  contentType,
		Size:      size,
		CreatedAt: s.now().Unix(),
	}
	if err := s.registry.Register(ctx, objectName, meta); err != nil {
		log.WarnContext(ctx, "failed to register temp upload", "key", objectName, "err", err)
		return
	}
	log.InfoContext(ctx, "media upload success and metadata cached", "key", objectName, "type", contentType)
}
