package dto

import "time"

// PostBaseDTO 创建与修改帖子
type PostBaseDTO struct {
	Title   string   `json:"title" binding:"required" validate:"min=1,max=255"`
	Content string   `json:"content" binding:"required" validate:"min=1"`
	FileURL []string `json:"fileUrl" validate:"max=20,dive,url"`
}

// PostDTO 帖子详情，不含浏览记录
type PostDTO struct {
	ID        string    `json:"_id" copier:"-"`
	Number    int64     `json:"number"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	FileURL   []string  `json:"fileUrl"`
	Views     int64     `json:"views"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
