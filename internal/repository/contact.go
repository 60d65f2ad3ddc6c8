package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/adeolu-ojo/applytrack/gen/ent"
	"github.com/adeolu-ojo/applytrack/gen/ent/contact"
	"github.com/adeolu-ojo/applytrack/internal/common"
	"github.com/adeolu-ojo/applytrack/internal/entity"
	"github.com/adeolu-ojo/applytrack/internal/utils"
)

// CreateContactRequest wraps parameters for creating a contact.
type CreateContactRequest struct {
	UserID  uuid.UUID
	Name    string
	Company string
	Email   string
	Role    string
	Notes   string
}

// UpdateContactRequest carries the mutable contact fields; nil means
// "leave as is".
type UpdateContactRequest struct {
	Name    *string
	Company *string
	Email   *string
	Role    *string
	Notes   *string
}

type ContactRepository interface {
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*entity.Contact, error)
	GetForUser(ctx context.Context, userID, contactID uuid.UUID) (*entity.Contact, error)
	Create(ctx context.Context, req *CreateContactRequest) (*entity.Contact, error)
	Update(ctx context.Context, userID, contactID uuid.UUID, req *UpdateContactRequest) (*entity.Contact, error)
	Delete(ctx context.Context, userID, contactID uuid.UUID) error
}

type contactRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewContactRepository(client *ent.Client, logger *slog.Logger) ContactRepository {
	return &contactRepository{
		client: client,
		logger: logger,
	}
}

func (r *contactRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]*entity.Contact, error) {
	rows, err := r.client.Contact.Query().
		Where(contact.UserID(userID)).
		Order(contact.ByName()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list contacts", "user_id", userID, "error", err)
		return nil, err
	}
	out := make([]*entity.Contact, len(rows))
	for i, row := range rows {
		out[i] = utils.ToContact(row)
	}
	return out, nil
}

func (r *contactRepository) GetForUser(ctx context.Context, userID, contactID uuid.UUID) (*entity.Contact, error) {
	row, err := r.client.Contact.Query().
		Where(contact.ID(contactID), contact.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.logger.Error("failed to get contact", "contact_id", contactID, "error", err)
		return nil, err
	}
	return utils.ToContact(row), nil
}

func (r *contactRepository) Create(ctx context.Context, req *CreateContactRequest) (*entity.Contact, error) {
	builder := r.client.Contact.Create().
		SetUserID(req.UserID).
		SetName(req.Name)

	if req.Company != "" {
		builder = builder.SetCompany(req.Company)
	}
	if req.Email != "" {
		builder = builder.SetEmail(req.Email)
	}
	if req.Role != "" {
		builder = builder.SetRole(req.Role)
	}
	if req.Notes != "" {
		builder = builder.SetNotes(req.Notes)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create contact", "user_id", req.UserID, "error", err)
		return nil, err
	}
	return utils.ToContact(row), nil
}

func (r *contactRepository) Update(ctx context.Context, userID, contactID uuid.UUID, req *UpdateContactRequest) (*entity.Contact, error) {
	if _, err := r.GetForUser(ctx, userID, contactID); err != nil {
		return nil, err
	}

	builder := r.client.Contact.UpdateOneID(contactID)
	if req.Name != nil {
		builder = builder.SetName(*req.Name)
	}
	if req.Company != nil {
		builder = builder.SetCompany(*req.Company)
	}
	if req.Email != nil {
		builder = builder.SetEmail(*req.Email)
	}
	if req.Role != nil {
		builder = builder.SetRole(*req.Role)
	}
	if req.Notes != nil {
		builder = builder.SetNotes(*req.Notes)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to update contact", "contact_id", contactID, "error", err)
		return nil, err
	}
	return utils.ToContact(row), nil
}

func (r *contactRepository) Delete(ctx context.Context, userID, contactID uuid.UUID) error {
	if _, err := r.GetForUser(ctx, userID, contactID); err != nil {
		return err
	}
	return r.client.Contact.DeleteOneID(contactID).Exec(ctx)
}
