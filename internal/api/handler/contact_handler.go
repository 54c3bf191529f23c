package handler

import (
	"Lighthouse/internal/api/dto"
	"Lighthouse/internal/pkg/response"
	"Lighthouse/internal/pkg/util"
	"Lighthouse/internal/service"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactSvc service.ContactService
}

func NewContactHandler(contactSvc service.ContactService) *ContactHandler {
	return &ContactHandler{
		contactSvc: contactSvc,
	}
}

// CreateContact 公开接口
func (s *ContactHandler) CreateContact(c *gin.Context) {
	var contactDTO dto.ContactCreateDTO
	if err := c.ShouldBindJSON(&contactDTO); err != nil {
		response.Error(c, err)
		return
	}
	util.TrimFields(&contactDTO.Name, &contactDTO.Email, &contactDTO.Phone, &contactDTO.Message, contactDTO.Status)
	if err := util.ValidateDTO(&contactDTO); err != nil {
		response.Error(c, err)
		return
	}
	contact, err := s.contactSvc.CreateContact(c.Request.Context(), &contactDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessCreated(c, contact)
}

func (s *ContactHandler) GetContacts(c *gin.Context) {
	contacts, err := s.contactSvc.GetContacts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, contacts)
}

func (s *ContactHandler) GetContact(c *gin.Context) {
	contact, err := s.contactSvc.GetContact(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, contact)
}

func (s *ContactHandler) UpdateContactStatus(c *gin.Context) {
	var statusDTO dto.ContactStatusDTO
	if err := c.ShouldBindJSON(&statusDTO); err != nil {
		response.Error(c, err)
		return
	}
	util.TrimFields(&statusDTO.Status)
	contact, err := s.contactSvc.UpdateContactStatus(c.Request.Context(), c.Param("id"), statusDTO.Status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, contact)
}

func (s *ContactHandler) DeleteContact(c *gin.Context) {
	if err := s.contactSvc.DeleteContact(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
