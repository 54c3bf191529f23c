package handler

import (
	"Lighthouse/internal/api/dto"
	"Lighthouse/internal/pkg/response"
	"Lighthouse/internal/pkg/util"
	"Lighthouse/internal/service"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postSvc service.PostService
}

func NewPostHandler(postSvc service.PostService) *PostHandler {
	return &PostHandler{
		postSvc: postSvc,
	}
}

func (s *PostHandler) CreatePost(c *gin.Context) {
	postDTO, ok := bindPostDTO(c)
	if !ok {
		return
	}
	post, err := s.postSvc.CreatePost(c.Request.Context(), postDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessCreated(c, post)
}

func (s *PostHandler) GetPosts(c *gin.Context) {
	posts, err := s.postSvc.GetPosts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

// GetPost 详情页浏览计数
func (s *PostHandler) GetPost(c *gin.Context) {
	post, err := s.postSvc.ViewPost(c.Request.Context(), c.Param("id"), c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostHandler) UpdatePost(c *gin.Context) {
	postDTO, ok := bindPostDTO(c)
	if !ok {
		return
	}
	post, err := s.postSvc.UpdatePost(c.Request.Context(), c.Param("id"), postDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostHandler) DeletePost(c *gin.Context) {
	if err := s.postSvc.DeletePost(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func bindPostDTO(c *gin.Context) (*dto.PostBaseDTO, bool) {
	var postDTO dto.PostBaseDTO
	if err := c.ShouldBindJSON(&postDTO); err != nil {
		response.Error(c, err)
		return nil, false
	}
	util.TrimFields(&postDTO.Title)
	if err := util.ValidateDTO(&postDTO); err != nil {
		response.Error(c, err)
		return nil, false
	}
	return &postDTO, true
}
