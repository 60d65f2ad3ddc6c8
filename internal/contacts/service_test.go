package contacts_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adeolu-ojo/applytrack/internal/common"
	"github.com/adeolu-ojo/applytrack/internal/contacts"
	"github.com/adeolu-ojo/applytrack/internal/entity"
	"github.com/adeolu-ojo/applytrack/internal/repository"
)

type memContacts struct {
	rows map[uuid.UUID]*entity.Contact
}

func newMemContacts() *memContacts {
	return &memContacts{rows: make(map[uuid.UUID]*entity.Contact)}
}

func (m *memContacts) ListForUser(ctx context.Context, userID uuid.UUID) ([]*entity.Contact, error) {
	var out []*entity.Contact
	for _, c := range m.rows {
		if c.UserID == userID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memContacts) GetForUser(ctx context.Context, userID, contactID uuid.UUID) (*entity.Contact, error) {
	c, ok := m.rows[contactID]
	if !ok || c.UserID != userID {
		return nil, common.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *memContacts) Create(ctx context.Context, req *repository.CreateContactRequest) (*entity.Contact, error) {
	c := &entity.Contact{ID: uuid.New(), UserID: req.UserID, Name: req.Name}
	if req.Company != "" {
		company := req.Company
		c.Company = &company
	}
	m.rows[c.ID] = c
	cp := *c
	return &cp, nil
}

func (m *memContacts) Update(ctx context.Context, userID, contactID uuid.UUID, req *repository.UpdateContactRequest) (*entity.Contact, error) {
	c, ok := m.rows[contactID]
	if !ok || c.UserID != userID {
		return nil, common.ErrNotFound
	}
	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Role != nil {
		c.Role = req.Role
	}
	cp := *c
	return &cp, nil
}

func (m *memContacts) Delete(ctx context.Context, userID, contactID uuid.UUID) error {
	c, ok := m.rows[contactID]
	if !ok || c.UserID != userID {
		return common.ErrNotFound
	}
	delete(m.rows, contactID)
	return nil
}

func TestCreateContact(t *testing.T) {
	repo := newMemContacts()
	svc := contacts.NewService(repo, nil)
	userID := uuid.New()

	c, err := svc.CreateContact(context.Background(), contacts.CreateContactRequest{
		UserID: userID, Name: "Ada Park", Company: "Stripe",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ada Park", c.Name)

	_, err = svc.CreateContact(context.Background(), contacts.CreateContactRequest{UserID: userID})
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestUpdateContact(t *testing.T) {
	repo := newMemContacts()
	svc := contacts.NewService(repo, nil)
	userID := uuid.New()

	c, err := svc.CreateContact(context.Background(), contacts.CreateContactRequest{
		UserID: userID, Name: "Ada Park",
	})
	require.NoError(t, err)

	role := "Recruiter"
	updated, err := svc.UpdateContact(context.Background(), userID, c.ID, contacts.UpdateContactRequest{Role: &role})
	require.NoError(t, err)
	require.NotNil(t, updated.Role)
	assert.Equal(t, "Recruiter", *updated.Role)

	empty := ""
	_, err = svc.UpdateContact(context.Background(), userID, c.ID, contacts.UpdateContactRequest{Name: &empty})
	assert.ErrorIs(t, err, common.ErrValidation)

	_, err = svc.UpdateContact(context.Background(), uuid.New(), c.ID, contacts.UpdateContactRequest{Role: &role})
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestDeleteContact(t *testing.T) {
	repo := newMemContacts()
	svc := contacts.NewService(repo, nil)
	userID := uuid.New()

	c, err := svc.CreateContact(context.Background(), contacts.CreateContactRequest{
		UserID: userID, Name: "Ada Park",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteContact(context.Background(), userID, c.ID))

	listed, err := svc.ListContacts(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, listed)

	assert.ErrorIs(t, svc.DeleteContact(context.Background(), userID, c.ID), common.ErrNotFound)
}
