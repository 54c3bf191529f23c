package dto

// MediaTempMetadata 已上传但尚未被帖子引用的对象
type MediaTempMetadata struct {
	URL       string `json:"url"`
	MimeType  string `json:"mime_type"`
	Size      int64  `json:"size"`
	CreatedAt int64  `json:"created_at"`
}

// ImageUploadResult 图片上传结果
type ImageUploadResult struct {
	ImageURL string `json:"imageUrl"`
}

// FileUploadResult 附件上传结果
type FileUploadResult struct {
	FileURL      string `json:"fileUrl"`
	OriginalName string `json:"originalName"`
}
