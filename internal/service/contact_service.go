package service

import (
	"Lighthouse/internal/api/dto"
	"Lighthouse/internal/model"
	"Lighthouse/internal/repository"
	"context"
	"time"

	"github.com/jinzhu/copier"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ContactService interface {
	CreateContact(ctx context.Context, contactDTO *dto.ContactCreateDTO) (*model.Contact, error)
	GetContacts(ctx context.Context) ([]*model.Contact, error)
	GetContact(ctx context.Context, id string) (*model.Contact, error)
	UpdateContactStatus(ctx context.Context, id string, status string) (*model.Contact, error)
	DeleteContact(ctx context.Context, id string) error
}

type contactServiceImpl struct {
	contactRepo repository.ContactRepo
	now         func() time.Time
}

func NewContactService(contactRepo repository.ContactRepo) ContactService {
	return &contactServiceImpl{
		contactRepo: contactRepo,
		now:         time.Now,
	}
}

// CreateContact 未指定状态时默认为处理中
func (s *contactServiceImpl) CreateContact(ctx context.Context, contactDTO *dto.ContactCreateDTO) (*model.Contact, error) {
	contact := &model.Contact{}
	if err := copier.Copy(contact, contactDTO); err != nil {
		return nil, err
	}

	contact.Status = model.ContactStatusInProgress
	if contactDTO.Status != nil && *contactDTO.Status != "" {
		if !model.IsValidContactStatus(*contactDTO.Status) {
			return nil, ErrContactStatusInvalid
		}
		contact.Status = *contactDTO.Status
	}

	now := s.now()
	contact.CreatedAt = now
	contact.UpdatedAt = now
	if err := s.contactRepo.CreateContact(ctx, contact); err != nil {
		return nil, upstream("create contact", err)
	}
	return contact, nil
}

func (s *contactServiceImpl) GetContacts(ctx context.Context) ([]*model.Contact, error) {
	contacts, err := s.contactRepo.GetContacts(ctx)
	if err != nil {
		return nil, upstream("list contacts", err)
	}
	return contacts, nil
}

func (s *contactServiceImpl) GetContact(ctx context.Context, id string) (*model.Contact, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrContactNotFound
	}
	contact, err := s.contactRepo.GetContactByID(ctx, oid)
	if err != nil {
		return nil, upstream("find contact", err)
	}
	if contact == nil {
		return nil, ErrContactNotFound
	}
	return contact, nil
}

func (s *contactServiceImpl) UpdateContactStatus(ctx context.Context, id string, status string) (*model.Contact, error) {
	if !model.IsValidContactStatus(status) {
		return nil, ErrContactStatusInvalid
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrContactNotFound
	}
	contact, err := s.contactRepo.UpdateContactStatus(ctx, oid, status, s.now())
	if err != nil {
		return nil, upstream("update contact status", err)
	}
	if contact == nil {
		return nil, ErrContactNotFound
	}
	return contact, nil
}

func (s *contactServiceImpl) DeleteContact(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrContactNotFound
	}
	deleted, err := s.contactRepo.DeleteContact(ctx, oid)
	if err != nil {
		return upstream("delete contact", err)
	}
	if !deleted {
		return ErrContactNotFound
	}
	return nil
}
