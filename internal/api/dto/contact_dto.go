package dto

// ContactCreateDTO 访客提交咨询
type ContactCreateDTO struct {
	Name    string  `json:"name" binding:"required" validate:"min=1,max=50"`
	Email   string  `json:"email" binding:"required" validate:"email"`
	Phone   string  `json:"phone" binding:"required" validate:"min=1,max=30"`
	Message string  `json:"message" binding:"required" validate:"min=1,max=5000"`
	Status  *string `json:"status,omitempty" copier:"-"`
}

// ContactStatusDTO 修改咨询状态
type ContactStatusDTO struct {
	Status string `json:"status" binding:"required"`
}
