package contacts

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/adeolu-ojo/applytrack/internal/common"
	"github.com/adeolu-ojo/applytrack/internal/entity"
	"github.com/adeolu-ojo/applytrack/internal/repository"
)

// Service handles networking contact business logic.
type Service struct {
	contactRepo repository.ContactRepository
	logger      *slog.Logger
}

// NewService creates a new contact service.
func NewService(contactRepo repository.ContactRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		contactRepo: contactRepo,
		logger:      logger,
	}
}

// CreateContactRequest represents contact creation parameters.
type CreateContactRequest struct {
	UserID  uuid.UUID
	Name    string
	Company string
	Email   string
	Role    string
	Notes   string
}

// CreateContact inserts a contact for the user.
func (s *Service) CreateContact(ctx context.Context, req CreateContactRequest) (*entity.Contact, error) {
	v := common.NewValidator()
	v.Field("name", req.Name, common.Required, common.MaxLength(255))
	v.Field("email", req.Email, common.MaxLength(255))
	if err := v.Error(); err != nil {
		return nil, err
	}

	contact, err := s.contactRepo.Create(ctx, &repository.CreateContactRequest{
		UserID:  req.UserID,
		Name:    req.Name,
		Company: req.Company,
		Email:   req.Email,
		Role:    req.Role,
		Notes:   req.Notes,
	})
	if err != nil {
		s.logger.Error("failed to create contact", "user_id", req.UserID, "error", err)
		return nil, err
	}
	s.logger.Info("contact created", "contact_id", contact.ID, "user_id", contact.UserID)
	return contact, nil
}

// ListContacts returns the user's contacts ordered by name.
func (s *Service) ListContacts(ctx context.Context, userID uuid.UUID) ([]*entity.Contact, error) {
	return s.contactRepo.ListForUser(ctx, userID)
}

// UpdateContactRequest carries the mutable contact fields; nil leaves a
// field unchanged.
type UpdateContactRequest struct {
	Name    *string
	Company *string
	Email   *string
	Role    *string
	Notes   *string
}

// UpdateContact applies a partial update to a contact owned by the user.
func (s *Service) UpdateContact(ctx context.Context, userID, contactID uuid.UUID, req UpdateContactRequest) (*entity.Contact, error) {
	v := common.NewValidator()
	if req.Name != nil {
		v.Field("name", *req.Name, common.Required, common.MaxLength(255))
	}
	if err := v.Error(); err != nil {
		return nil, err
	}

	return s.contactRepo.Update(ctx, userID, contactID, &repository.UpdateContactRequest{
		Name:    req.Name,
		Company: req.Company,
		Email:   req.Email,
		Role:    req.Role,
		Notes:   req.Notes,
	})
}

// DeleteContact removes a contact owned by the user.
func (s *Service) DeleteContact(ctx context.Context, userID, contactID uuid.UUID) error {
	if err := s.contactRepo.Delete(ctx, userID, contactID); err != nil {
		return err
	}
	s.logger.Info("contact deleted", "contact_id", contactID, "user_id", userID)
	return nil
}
