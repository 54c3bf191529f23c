package minio

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/minio/minio-go/v7"
)

// UploadOptions 上传对象时附带的 HTTP 头
type UploadOptions struct {
	ContentType        string
	ContentDisposition string
}

// Upload 上传对象并返回公开访问地址
func (s *Storage) Upload(ctx context.Context, objectName string, reader io.Reader, size int64, opts UploadOptions) (string, error) {
	uploadInfo, err := s.client.PutObject(ctx, s.bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType:        opts.ContentType,
		ContentDisposition: opts.ContentDisposition,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}
	return s.PublicURL(uploadInfo.Key), nil
}

// Delete 删除对象，对象不存在不视为错误
func (s *Storage) Delete(ctx context.Context, objectName string) error {
	err := s.client.RemoveObject(ctx, s.bucket, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// PublicURL 获取对象的公共访问 URL
func (s *Storage) PublicURL(objectName string) string {
	return BuildPublicURL(s.baseURL, objectName)
}

// ObjectKey 从已保存的 URL 反解对象 key，非本桶地址返回 false
func (s *Storage) ObjectKey(rawURL string) (string, bool) {
	return ExtractObjectKey(s.baseURL, rawURL)
}

func BuildPublicURL(baseURL, objectName string) string {
	segments := strings.Split(objectName, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return baseURL + "/" + strings.Join(segments, "/")
}

func ExtractObjectKey(baseURL, rawURL string) (string, bool) {
	prefix := strings.TrimRight(baseURL, "/") + "/"
	if !strings.HasPrefix(rawURL, prefix) {
		return "", false
	}
	key := strings.TrimPrefix(rawURL, prefix)
	if i := strings.IndexAny(key, "?#"); i >= 0 {
		key = key[:i]
	}
	if unescaped, err := url.PathUnescape(key); err == nil {
		key = unescaped
	}
	if key == "" {
		return "", false
	}
	return key, true
}
