package util

import (
	"Lighthouse/internal/pkg/consts"
	"errors"
	"io"
	"net/url"
	"path"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

var ErrInvalidFileName = errors.New("invalid file name")

// GetSafeContentType 按文件内容嗅探类型，读取后复位
func GetSafeContentType(reader io.ReadSeeker) (string, error) {
	mtype, err := mimetype.DetectReader(reader)
	if err != nil {
		return "", err
	}
	if _, err = reader.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return mtype.String(), nil
}

// IsImage 是否为图片类型
func IsImage(contentType string) bool {
	return strings.HasPrefix(contentType, "image/")
}

// ImageObjectName 图片使用随机文件名，保留扩展名
func ImageObjectName(filename string) string {
	ext := strings.TrimPrefix(path.Ext(filename), ".")
	if ext == "" {
		return consts.PostImagePrefix + uuid.NewString()
	}
	return consts.PostImagePrefix + uuid.NewString() + "." + strings.ToLower(ext)
}

// FileObjectName 附件保留原始文件名，originalName 为 URI 编码
func FileObjectName(originalName string) (string, string, error) {
	decoded, err := url.PathUnescape(originalName)
	if err != nil {
		decoded = originalName
	}
	decoded = path.Base(strings.ReplaceAll(strings.TrimSpace(decoded), "\\", "/"))
	if decoded == "" || decoded == "." || decoded == "/" || decoded == ".." {
		return "", "", ErrInvalidFileName
	}
	return consts.PostFilePrefix + decoded, decoded, nil
}

// AttachmentDisposition 以 RFC 5987 形式声明下载文件名
func AttachmentDisposition(filename string) string {
	return "attachment; filename*=UTF-8''" + encodeURIComponent(filename)
}

func encodeURIComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
